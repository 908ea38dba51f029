// file: internals/features/users/user/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/users/user/controller"
)

// UserSuperadminRoutes: account management is superadmin territory.
func UserSuperadminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.UserHandler{DB: db}

	r.Get("/users", h.ListUsers)
	r.Get("/users/:userId", h.GetUser)
	r.Post("/users", h.CreateUser)
	r.Patch("/users/:userId", h.UpdateUser)
	r.Delete("/users/:userId", h.DeleteUser)
}
