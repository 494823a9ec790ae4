// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsg_backend/internals/configs"
	logController "schoolsg_backend/internals/features/activitylog/controller"
	logService "schoolsg_backend/internals/features/activitylog/service"
	catalogController "schoolsg_backend/internals/features/catalog/controller"
	catalogRoute "schoolsg_backend/internals/features/catalog/route"
	catalogService "schoolsg_backend/internals/features/catalog/service"
	geoController "schoolsg_backend/internals/features/geo/controller"
	geoService "schoolsg_backend/internals/features/geo/service"
	schoolController "schoolsg_backend/internals/features/schools/controller"
	schoolRoute "schoolsg_backend/internals/features/schools/route"
	schoolService "schoolsg_backend/internals/features/schools/service"
	searchController "schoolsg_backend/internals/features/search/controller"
	searchService "schoolsg_backend/internals/features/search/service"
	userRoute "schoolsg_backend/internals/features/users/route"
	authMiddleware "schoolsg_backend/internals/middlewares/auth"
)

// SetupRoutes is the single authoritative route table. Every route is
// registered exactly once, with its authorization requirement made
// explicit by the group it is mounted on.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Shared capabilities
	sink := logService.NewGormSink(db)
	geocoder := geoService.NewOneMapClient(configs.OneMapBaseURL)

	directory := schoolService.NewDirectoryService(db)
	catalog := catalogService.NewCatalogService(db)
	advSearch := searchService.NewAdvancedSearchService(db, sink)
	radius := geoService.NewRadiusSearchService(db, geocoder, sink)

	schoolCtrl := schoolController.NewSchoolController(directory, sink)
	catalogCtrl := catalogController.NewCatalogController(catalog, directory, sink)
	searchCtrl := searchController.NewSearchController(advSearch)
	geoCtrl := geoController.NewGeoController(radius, geocoder)
	logsCtrl := logController.NewActivityLogController(db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	api := app.Group("/api")

	userRoute.AuthRoutes(api, db, sink, configs.JWTSecret)
	schoolRoute.SchoolPublicRoutes(api, schoolCtrl)
	catalogRoute.CatalogPublicRoutes(api, catalogCtrl)

	api.Post("/search/advanced", searchCtrl.Advanced)
	api.Post("/schools/search-by-postal-code", geoCtrl.SearchByPostalCode)
	api.Get("/postal-code/:postalCode", geoCtrl.ResolvePostalCode)

	// ===================== ADMIN =====================
	// Mutations are admin-only (see DESIGN.md for the policy decision).
	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireAdmin(),
	)

	schoolRoute.SchoolAdminRoutes(admin, schoolCtrl)
	catalogRoute.CatalogAdminRoutes(admin, catalogCtrl)
	admin.Get("/activity-logs", logsCtrl.List)
}
