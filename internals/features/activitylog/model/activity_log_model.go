// internals/features/activitylog/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel is append-only: rows are created on nearly every
// read/write request and never mutated or deleted by the core
// (dashboards read them, nothing else does).
type ActivityLogModel struct {
	ActivityLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_log_id" json:"activity_log_id"`

	ActivityLogAction string         `gorm:"type:varchar(80);not null;index;column:activity_log_action" json:"activity_log_action"`
	ActivityLogData   datatypes.JSON `gorm:"column:activity_log_data" json:"activity_log_data"` // schema-free payload

	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;autoCreateTime;index" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
