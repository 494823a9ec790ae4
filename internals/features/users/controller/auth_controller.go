// internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsg_backend/internals/configs"
	logService "schoolsg_backend/internals/features/activitylog/service"
	userDTO "schoolsg_backend/internals/features/users/dto"
	userModel "schoolsg_backend/internals/features/users/model"
	userService "schoolsg_backend/internals/features/users/service"
	helper "schoolsg_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB  *gorm.DB
	Log logService.Sink
}

func NewAuthController(db *gorm.DB, sink logService.Sink) *AuthController {
	if sink == nil {
		sink = logService.NoopSink{}
	}
	return &AuthController{DB: db, Log: sink}
}

/* ===================== HANDLERS ===================== */

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := userService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	u := userModel.UserModel{UserName: req.UserName, Password: hash}
	if err := h.DB.Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	h.Log.Append("user_register", map[string]any{"user_name": u.UserName})
	return helper.JsonCreated(c, "User registered", fiber.Map{
		"user_id":   u.UserID,
		"user_name": u.UserName,
	})
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u userModel.UserModel
	err := h.DB.First(&u, "user_name = ?", req.UserName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := userService.CheckPasswordHash(u.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := userService.IssueAccessToken(configs.JWTSecret, &u, 0)
	if err != nil {
		log.Printf("[ERROR] token issue: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	h.Log.Append("user_login", map[string]any{"user_name": u.UserName})
	return helper.JsonOK(c, "Login successful", userDTO.LoginResponse{
		AccessToken: token,
		UserName:    u.UserName,
		IsAdmin:     u.IsAdmin,
	})
}

// GET /api/auth/me (requires AuthJWT)
func (h *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"user_id":   c.Locals("user_id"),
		"user_name": c.Locals("user_name"),
		"is_admin":  c.Locals("is_admin"),
	})
}
