// internals/features/users/service/auth_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	userModel "schoolsg_backend/internals/features/users/model"
)

const accessTTLDefault = 24 * time.Hour

/* ===================== PASSWORDS ===================== */

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ===================== TOKENS ===================== */

// IssueAccessToken signs an HS256 access token carrying the identity and
// admin flag the middleware hydrates into Locals.
func IssueAccessToken(secret string, u *userModel.UserModel, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserName,
		"is_admin":  u.IsAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
