// internals/features/activitylog/service/sink.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	logModel "schoolsg_backend/internals/features/activitylog/model"
)

// Sink is the best-effort usage-log capability the rest of the app depends
// on. Contract: Append never blocks the caller's response and never
// propagates an error into it.
type Sink interface {
	Append(action string, data map[string]any)
}

/* =====================
   GORM sink (JSONB)
===================== */

type GormSink struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{DB: db, Timeout: 2 * time.Second}
}

func (s *GormSink) Append(action string, data map[string]any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("[activitylog] marshal failed for %q: %v", action, err)
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[activitylog] recovered: %v", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()
		entry := logModel.ActivityLogModel{
			ActivityLogAction: action,
			ActivityLogData:   datatypes.JSON(payload),
		}
		if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
			// swallowed: logging must never affect the caller
			log.Printf("[activitylog] append %q failed: %v", action, err)
		}
	}()
}

/* =====================
   Noop sink (tests, tooling)
===================== */

type NoopSink struct{}

func (NoopSink) Append(string, map[string]any) {}
