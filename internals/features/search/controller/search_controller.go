// internals/features/search/controller/search_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	searchService "schoolsg_backend/internals/features/search/service"
	helper "schoolsg_backend/internals/helpers"
	"schoolsg_backend/internals/helpers/errs"
)

type SearchController struct {
	Service *searchService.AdvancedSearchService
}

func NewSearchController(svc *searchService.AdvancedSearchService) *SearchController {
	return &SearchController{Service: svc}
}

// POST /api/search/advanced
// Body: flat JSON object of field → string. Unrecognized keys are ignored;
// placeholder values are treated as absent; zero surviving criteria → 400.
func (h *SearchController) Advanced(c *fiber.Ctx) error {
	var raw map[string]string
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body must be a flat JSON object of field → string")
	}

	results, criteria, err := h.Service.Search(c.UserContext(), raw)
	if err != nil {
		if errors.Is(err, errs.ErrQueryExecution) {
			log.Printf("[ERROR] advanced search: %v", err)
		}
		return helper.JsonError(c, errs.Status(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"results":  results,
		"count":    len(results),
		"criteria": criteria,
	})
}
