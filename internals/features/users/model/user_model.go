// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName string `gorm:"type:varchar(60);unique;not null;column:user_name" json:"user_name"`
	Password string `gorm:"not null;column:password" json:"-"` // bcrypt hash, never serialized
	IsAdmin  bool   `gorm:"not null;default:false;column:is_admin" json:"is_admin"`

	// Audit
	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
