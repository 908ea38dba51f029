// file: internals/features/courses/courses/routes/course_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/courses/courses/controller"
)

// CourseReadRoutes: every authenticated user can browse the catalog.
func CourseReadRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.CourseHandler{DB: db}

	r.Get("/courses", h.ListCourses)
	r.Get("/courses/:courseId", h.GetCourse)
}

// CourseAdminRoutes: mutations, admin only.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.CourseHandler{DB: db}

	r.Post("/courses", h.CreateCourse)
	r.Put("/courses/:courseId", h.UpdateCourse)
	r.Patch("/courses/:courseId", h.UpdateCourse)
	r.Delete("/courses/:courseId", h.DeleteCourse)
}
