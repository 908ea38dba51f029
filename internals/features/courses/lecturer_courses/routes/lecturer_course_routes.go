// file: internals/features/courses/lecturer_courses/routes/lecturer_course_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/courses/lecturer_courses/controller"
)

func LecturerCourseReadRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.LecturerCourseHandler{DB: db}

	r.Get("/courses/:courseId/batches/:batchId/details", h.ListEntries)
}

func LecturerCourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.LecturerCourseHandler{DB: db}

	r.Post("/courses/:courseId/batches/:batchId/courses", h.AddEntry)
	r.Patch("/courses/:courseId/batches/:batchId/courses/:entryId", h.UpdateEntry)
	r.Delete("/courses/:courseId/batches/:batchId/courses/:entryId", h.DeleteEntry)

	r.Post("/payment-screenshots", h.UploadPaymentScreenshot)
	r.Patch("/lecturer-courses/:entryId/screenshot", h.AttachPaymentScreenshot)
}
