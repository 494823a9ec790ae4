package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geoService "schoolsg_backend/internals/features/geo/service"
)

type stubResolver struct {
	coords map[string]*geoService.Coordinates
}

func (s *stubResolver) Resolve(_ context.Context, postalCode string) (*geoService.Coordinates, error) {
	return s.coords[postalCode], nil
}

func newGeoApp(geo geoService.Resolver) *fiber.App {
	app := fiber.New()
	h := NewGeoController(geoService.NewRadiusSearchService(nil, geo, nil), geo)
	app.Post("/api/schools/search-by-postal-code", h.SearchByPostalCode)
	app.Get("/api/postal-code/:postalCode", h.ResolvePostalCode)
	return app
}

func TestSearchByPostalCode_Validation(t *testing.T) {
	app := newGeoApp(&stubResolver{})

	cases := []string{
		`{"postal_code":"12345","radius_km":5}`,
		`{"postal_code":"abcdef","radius_km":5}`,
		`{"postal_code":"510101","radius_km":0}`,
		`{"postal_code":"510101","radius_km":-1}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/api/schools/search-by-postal-code", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body=%s", body)
	}
}

func TestSearchByPostalCode_UnresolvableCenterIs404(t *testing.T) {
	app := newGeoApp(&stubResolver{}) // resolver knows nothing

	req := httptest.NewRequest("POST", "/api/schools/search-by-postal-code",
		strings.NewReader(`{"postal_code":"999999","radius_km":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResolvePostalCode(t *testing.T) {
	app := newGeoApp(&stubResolver{coords: map[string]*geoService.Coordinates{
		"510101": {Latitude: 1.3915, Longitude: 103.8860},
	}})

	t.Run("bad format is 400", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/postal-code/12345", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unresolvable is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/postal-code/999999", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("known code returns coordinates", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/postal-code/510101", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
