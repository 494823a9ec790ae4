// internals/features/users/dto/user_dto.go
package dto

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserName    string `json:"user_name"`
	IsAdmin     bool   `json:"is_admin"`
}
