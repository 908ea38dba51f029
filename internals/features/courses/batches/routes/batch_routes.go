// file: internals/features/courses/batches/routes/batch_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/courses/batches/controller"
)

func BatchReadRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.BatchHandler{DB: db}

	r.Get("/courses/:courseId/batches", h.ListBatchesForCourse)
	r.Get("/courses/:courseId/batches/month/:month", h.ListBatchesByMonth)
	r.Get("/courses/:courseId/months", h.ListAvailableMonths)
}

func BatchAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.BatchHandler{DB: db}

	r.Post("/batches", h.CreateBatch)
	r.Patch("/courses/:courseId/batches/:batchId", h.UpdateBatch)
	r.Delete("/courses/:courseId/batches/:batchId", h.DeleteBatch)
}
