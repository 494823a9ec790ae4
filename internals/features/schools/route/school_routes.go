// internals/features/schools/route/school_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	schoolController "schoolsg_backend/internals/features/schools/controller"
)

// SchoolPublicRoutes: read-only directory surface.
func SchoolPublicRoutes(api fiber.Router, ctrl *schoolController.SchoolController) {
	g := api.Group("/schools")
	g.Get("/", ctrl.List)
	g.Get("/name/:name", ctrl.DetailByName)
	g.Get("/:id", ctrl.Detail)
}

// SchoolAdminRoutes: mutations, admin-only (mount under the guarded group).
func SchoolAdminRoutes(admin fiber.Router, ctrl *schoolController.SchoolController) {
	g := admin.Group("/schools")
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
