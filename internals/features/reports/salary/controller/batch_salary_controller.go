// file: internals/features/reports/salary/controller/batch_salary_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lcDTO "coursepay_backend/internals/features/courses/lecturer_courses/dto"
	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
	"coursepay_backend/internals/features/reports/salary/dto"
	"coursepay_backend/internals/features/reports/salary/service"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

type BatchSalaryHandler struct {
	DB *gorm.DB
}

// =======================================================
// REPORT (GET /api/batch-salary-data)
// =======================================================
func (h *BatchSalaryHandler) GetBatchSalaryData(c *fiber.Ctx) error {
	rows, err := service.FlattenRows(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch salary data")
	}

	f := dto.FilterFromQuery(c)
	rows = service.FilterRows(rows, f)
	service.SortRows(rows, f.SortBy, f.SortDir)

	return helper.JsonList(c, "ok", rows, fiber.Map{
		"totals": service.ComputeTotals(rows),
	})
}

// =======================================================
// EXPORT (GET /api/batch-salary-data/export?format=xlsx|pdf)
// =======================================================
func (h *BatchSalaryHandler) ExportBatchSalary(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	if format != "xlsx" && format != "pdf" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format must be xlsx or pdf")
	}

	rows, err := service.FlattenRows(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting batch salary data")
	}
	f := dto.FilterFromQuery(c)
	rows = service.FilterRows(rows, f)
	service.SortRows(rows, f.SortBy, f.SortDir)
	totals := service.ComputeTotals(rows)

	filename := fmt.Sprintf("batch-salary-%s", time.Now().Format("2006-01-02"))

	switch format {
	case "pdf":
		buf, err := service.BuildPDF(rows, totals)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting batch salary data")
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
		return c.Send(buf.Bytes())
	default:
		buf, err := service.BuildSpreadsheet(rows, totals)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error exporting batch salary data")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
		return c.Send(buf.Bytes())
	}
}

// =======================================================
// UPDATE BY ROW ID (PATCH /api/batch-details/:id)
// =======================================================
// The report addresses rows by lecturer course id, so edits made from the
// report screen land on the same record the nested endpoints manage.
func (h *BatchSalaryHandler) UpdateBatchDetail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch detail ID format")
	}

	var body lcDTO.LecturerCourseUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.LecturerCoursePaymentStatus != nil && !body.LecturerCoursePaymentStatus.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment status")
	}
	if body.LecturerCourseWorkStatus != nil && !body.LecturerCourseWorkStatus.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work status")
	}

	var entry lcModel.LecturerCourseModel
	if err := h.DB.First(&entry, "lecturer_course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch detail not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch detail")
	}

	prev := body.ApplyUpdate(&entry)
	entry.SyncPayment(prev)

	if err := h.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating batch detail")
	}
	return helper.JsonUpdated(c, "Batch detail updated successfully", lcDTO.ToLecturerCourseResponse(entry))
}
