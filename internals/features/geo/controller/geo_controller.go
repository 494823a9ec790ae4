// internals/features/geo/controller/geo_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	geoService "schoolsg_backend/internals/features/geo/service"
	helper "schoolsg_backend/internals/helpers"
	"schoolsg_backend/internals/helpers/errs"
)

type GeoController struct {
	Radius *geoService.RadiusSearchService
	Geo    geoService.Resolver
}

func NewGeoController(radius *geoService.RadiusSearchService, geo geoService.Resolver) *GeoController {
	return &GeoController{Radius: radius, Geo: geo}
}

type radiusSearchRequest struct {
	PostalCode string  `json:"postal_code"`
	RadiusKm   float64 `json:"radius_km"`
}

// POST /api/schools/search-by-postal-code
func (h *GeoController) SearchByPostalCode(c *fiber.Ctx) error {
	var req radiusSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	results, stats, err := h.Radius.Search(c.UserContext(), req.PostalCode, req.RadiusKm)
	if err != nil {
		if errors.Is(err, errs.ErrQueryExecution) {
			log.Printf("[ERROR] radius search: %v", err)
		}
		return helper.JsonError(c, errs.Status(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
		"count":   len(results),
		"search_params": fiber.Map{
			"postal_code":         req.PostalCode,
			"radius_km":           req.RadiusKm,
			"schools_processed":   stats.SchoolsProcessed,
			"coordinates_fetched": stats.CoordinatesFetched,
		},
	})
}

// GET /api/postal-code/:postalCode
func (h *GeoController) ResolvePostalCode(c *fiber.Ctx) error {
	postal := c.Params("postalCode")
	if !geoService.PostalCodePattern.MatchString(postal) {
		return helper.JsonError(c, fiber.StatusBadRequest, "postal code must be exactly 6 digits")
	}

	coords, err := h.Geo.Resolve(c.UserContext(), postal)
	if err != nil || coords == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "postal code "+postal+" could not be geocoded")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"postal_code": postal,
		"latitude":    coords.Latitude,
		"longitude":   coords.Longitude,
	})
}
