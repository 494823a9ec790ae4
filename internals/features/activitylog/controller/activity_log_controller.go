// internals/features/activitylog/controller/activity_log_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logModel "schoolsg_backend/internals/features/activitylog/model"
	helper "schoolsg_backend/internals/helpers"
)

// Dashboard-only read surface. The core never reads these rows.
type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GET /api/activity-logs?action=&limit= (admin)
func (h *ActivityLogController) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&logModel.ActivityLogModel{}).
		Order("activity_log_created_at DESC").
		Limit(limit)
	if action := c.Query("action"); action != "" {
		q = q.Where("activity_log_action = ?", action)
	}

	var rows []logModel.ActivityLogModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}
