// internals/features/catalog/controller/catalog_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	logService "schoolsg_backend/internals/features/activitylog/service"
	catalogModel "schoolsg_backend/internals/features/catalog/model"
	catalogService "schoolsg_backend/internals/features/catalog/service"
	schoolService "schoolsg_backend/internals/features/schools/service"
	helper "schoolsg_backend/internals/helpers"
	"schoolsg_backend/internals/helpers/errs"
)

var validate = validator.New()

type CatalogController struct {
	Service   *catalogService.CatalogService
	Directory *schoolService.DirectoryService
	Log       logService.Sink
}

func NewCatalogController(svc *catalogService.CatalogService, dir *schoolService.DirectoryService, sink logService.Sink) *CatalogController {
	if sink == nil {
		sink = logService.NoopSink{}
	}
	return &CatalogController{Service: svc, Directory: dir, Log: sink}
}

/* ===================== CATALOG LISTS ===================== */

// GET /api/subjects
func (h *CatalogController) ListSubjects(c *fiber.Ctx) error {
	rows, err := h.Service.ListSubjects(c.UserContext())
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}

// GET /api/ccas
func (h *CatalogController) ListCCAs(c *fiber.Ctx) error {
	rows, err := h.Service.ListCCAs(c.UserContext())
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}

// GET /api/programmes
func (h *CatalogController) ListProgrammes(c *fiber.Ctx) error {
	rows, err := h.Service.ListProgrammes(c.UserContext())
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}

// GET /api/distinctives
func (h *CatalogController) ListDistinctives(c *fiber.Ctx) error {
	rows, err := h.Service.ListDistinctives(c.UserContext())
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}

/* ===================== SCHOOLS BY CATALOG ITEM ===================== */

func (h *CatalogController) schoolsByItem(c *fiber.Ctx, kind string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+kind+" id")
	}
	rows, err := h.Service.SchoolsByCatalogItem(c.UserContext(), kind, id)
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}
	h.Log.Append("schools_by_"+kind, map[string]any{kind + "_id": id.String(), "count": len(rows)})
	return c.JSON(fiber.Map{"success": true, "results": rows, "count": len(rows)})
}

// GET /api/subjects/:id/schools
func (h *CatalogController) SchoolsBySubject(c *fiber.Ctx) error {
	return h.schoolsByItem(c, "subject")
}

// GET /api/ccas/:id/schools
func (h *CatalogController) SchoolsByCCA(c *fiber.Ctx) error {
	return h.schoolsByItem(c, "cca")
}

// GET /api/programmes/:id/schools
func (h *CatalogController) SchoolsByProgramme(c *fiber.Ctx) error {
	return h.schoolsByItem(c, "programme")
}

// GET /api/distinctives/:id/schools
func (h *CatalogController) SchoolsByDistinctive(c *fiber.Ctx) error {
	return h.schoolsByItem(c, "distinctive")
}

/* ===================== PER-SCHOOL READS ===================== */

// GET /api/schools/:id/subjects|ccas|programmes|distinctives
// Served off the aggregated detail so one code path owns the joins.
func (h *CatalogController) SchoolSection(section string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
		}
		detail, err := h.Directory.Detail(c.UserContext(), id)
		if err != nil {
			return helper.JsonError(c, errs.Status(err), err.Error())
		}
		var data any
		switch section {
		case "subjects":
			data = detail.Subjects
		case "ccas":
			data = detail.CCAs
		case "programmes":
			data = detail.Programmes
		case "distinctives":
			data = detail.Distinctives
		default:
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown section")
		}
		return c.JSON(fiber.Map{"success": true, "results": data})
	}
}

/* ===================== WRITES (admin) ===================== */

type attachCCARequest struct {
	CCAGenericName    string  `json:"cca_generic_name" validate:"required,min=2,max=150"`
	CCACustomizedName *string `json:"cca_customized_name" validate:"omitempty,max=150"`
	CCASection        string  `json:"cca_section" validate:"required,oneof=PRIMARY SECONDARY BOTH"`
}

// POST /api/schools/:id/ccas
func (h *CatalogController) AttachCCA(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
	}
	if _, err := h.Directory.GetByID(c.UserContext(), schoolID); err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}

	var req attachCCARequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	link, err := h.Service.AttachCCA(c.UserContext(), schoolID, req.CCAGenericName, req.CCACustomizedName, catalogModel.CCASection(req.CCASection))
	if err != nil {
		return helper.JsonError(c, errs.Status(err), err.Error())
	}

	h.Log.Append("attach_cca", map[string]any{
		"school_id":        schoolID.String(),
		"cca_generic_name": req.CCAGenericName,
	})
	return helper.JsonCreated(c, "CCA attached", link)
}
