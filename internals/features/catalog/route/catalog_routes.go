// internals/features/catalog/route/catalog_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	catalogController "schoolsg_backend/internals/features/catalog/controller"
)

// CatalogPublicRoutes: catalog lists, schools-by-item, per-school sections.
func CatalogPublicRoutes(api fiber.Router, ctrl *catalogController.CatalogController) {
	api.Get("/subjects", ctrl.ListSubjects)
	api.Get("/subjects/:id/schools", ctrl.SchoolsBySubject)
	api.Get("/ccas", ctrl.ListCCAs)
	api.Get("/ccas/:id/schools", ctrl.SchoolsByCCA)
	api.Get("/programmes", ctrl.ListProgrammes)
	api.Get("/programmes/:id/schools", ctrl.SchoolsByProgramme)
	api.Get("/distinctives", ctrl.ListDistinctives)
	api.Get("/distinctives/:id/schools", ctrl.SchoolsByDistinctive)

	api.Get("/schools/:id/subjects", ctrl.SchoolSection("subjects"))
	api.Get("/schools/:id/ccas", ctrl.SchoolSection("ccas"))
	api.Get("/schools/:id/programmes", ctrl.SchoolSection("programmes"))
	api.Get("/schools/:id/distinctives", ctrl.SchoolSection("distinctives"))
}

// CatalogAdminRoutes: school↔catalog link writes.
func CatalogAdminRoutes(admin fiber.Router, ctrl *catalogController.CatalogController) {
	admin.Post("/schools/:id/ccas", ctrl.AttachCCA)
}
