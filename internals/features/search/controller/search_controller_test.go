package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searchService "schoolsg_backend/internals/features/search/service"
)

func newSearchApp() *fiber.App {
	app := fiber.New()
	// nil DB: these tests exercise the paths that must reject before any query
	h := NewSearchController(searchService.NewAdvancedSearchService(nil, nil))
	app.Post("/api/search/advanced", h.Advanced)
	return app
}

func TestAdvanced_RejectsNonObjectBody(t *testing.T) {
	app := newSearchApp()

	req := httptest.NewRequest("POST", "/api/search/advanced", strings.NewReader(`[1,2,3]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdvanced_RejectsEmptyCriteria(t *testing.T) {
	app := newSearchApp()

	for _, body := range []string{
		`{}`,
		`{"school_name":"NA"}`,
		`{"school_name":"  ","address":"N/A"}`,
		`{"unknown_field":"value"}`,
	} {
		req := httptest.NewRequest("POST", "/api/search/advanced", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body=%s", body)
	}
}
