// internals/features/schools/controller/school_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	logService "schoolsg_backend/internals/features/activitylog/service"
	schoolDTO "schoolsg_backend/internals/features/schools/dto"
	schoolService "schoolsg_backend/internals/features/schools/service"
	helper "schoolsg_backend/internals/helpers"
	"schoolsg_backend/internals/helpers/errs"
)

var validate = validator.New()

type SchoolController struct {
	Service *schoolService.DirectoryService
	Log     logService.Sink
}

func NewSchoolController(svc *schoolService.DirectoryService, sink logService.Sink) *SchoolController {
	if sink == nil {
		sink = logService.NoopSink{}
	}
	return &SchoolController{Service: svc, Log: sink}
}

func mapServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errs.ErrQueryExecution) {
		log.Printf("[ERROR] store: %v", err)
	}
	return helper.JsonError(c, errs.Status(err), err.Error())
}

/* ===================== READS ===================== */

// GET /api/schools?limit=&offset=
func (h *SchoolController) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	rows, total, err := h.Service.List(c.UserContext(), limit, offset)
	if err != nil {
		return mapServiceError(c, err)
	}

	h.Log.Append("list_schools", map[string]any{"count": len(rows), "offset": offset})
	return c.JSON(fiber.Map{
		"success": true,
		"results": rows,
		"count":   len(rows),
		"total":   total,
	})
}

// GET /api/schools/:id
func (h *SchoolController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
	}

	detail, err := h.Service.Detail(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	h.Log.Append("view_school", map[string]any{"school_id": id.String(), "school_name": detail.School.SchoolName})
	return c.JSON(fiber.Map{"success": true, "data": detail})
}

// GET /api/schools/name/:name
func (h *SchoolController) DetailByName(c *fiber.Ctx) error {
	name := c.Params("name")
	school, err := h.Service.GetByName(c.UserContext(), name)
	if err != nil {
		return mapServiceError(c, err)
	}
	detail, err := h.Service.Detail(c.UserContext(), school.SchoolID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": detail})
}

/* ===================== WRITES (admin) ===================== */

// POST /api/schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Service.Create(c.UserContext(), m); err != nil {
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	h.Log.Append("create_school", map[string]any{"school_id": m.SchoolID.String(), "school_name": m.SchoolName})
	return helper.JsonCreated(c, "School created", m)
}

// PUT /api/schools/:id
func (h *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	req.ApplyToModel(m)

	if err := h.Service.Update(c.UserContext(), m); err != nil {
		code, msg := helper.MapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	h.Log.Append("update_school", map[string]any{"school_id": id.String()})
	return helper.JsonOK(c, "School updated", m)
}

// DELETE /api/schools/:id
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
	}

	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return mapServiceError(c, err)
	}

	h.Log.Append("delete_school", map[string]any{"school_id": id.String()})
	return helper.JsonOK(c, "School deleted", fiber.Map{"school_id": id})
}
