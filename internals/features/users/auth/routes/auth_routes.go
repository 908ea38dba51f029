// file: internals/features/users/auth/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/users/auth/controller"
	"coursepay_backend/internals/middlewares"
)

// AuthPublicRoutes: reachable without a token.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.AuthHandler{DB: db}

	r.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	r.Post("/logout", h.Logout)
}

// AuthPrivateRoutes: requires a verified token.
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.AuthHandler{DB: db}

	r.Get("/me", h.Me)
}
