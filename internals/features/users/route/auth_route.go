// internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logService "schoolsg_backend/internals/features/activitylog/service"
	userController "schoolsg_backend/internals/features/users/controller"
	"schoolsg_backend/internals/middlewares"
	authMiddleware "schoolsg_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, sink logService.Sink, jwtSecret string) {
	ctrl := userController.NewAuthController(db, sink)

	g := api.Group("/auth")
	g.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Get("/me",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}),
		ctrl.Me,
	)
}
