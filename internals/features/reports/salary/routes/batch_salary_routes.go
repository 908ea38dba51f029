// file: internals/features/reports/salary/routes/batch_salary_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/reports/salary/controller"
)

func BatchSalaryReadRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.BatchSalaryHandler{DB: db}

	r.Get("/batch-salary-data", h.GetBatchSalaryData)
	r.Get("/batch-salary-data/export", h.ExportBatchSalary)
}

func BatchSalaryAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.BatchSalaryHandler{DB: db}

	r.Patch("/batch-details/:id", h.UpdateBatchDetail)
}
