// file: internals/features/courses/batches/controller/batch_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/courses/batches/dto"
	batchModel "coursepay_backend/internals/features/courses/batches/model"
	courseModel "coursepay_backend/internals/features/courses/courses/model"
	lcDTO "coursepay_backend/internals/features/courses/lecturer_courses/dto"
	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

type BatchHandler struct {
	DB *gorm.DB
}

const conflictMsg = "A batch with this name already exists for this course in the specified month and year"

func (h *BatchHandler) courseExists(id any) (bool, error) {
	var n int64
	err := h.DB.Model(&courseModel.CourseModel{}).Where("course_id = ?", id).Count(&n).Error
	return n > 0, err
}

// =======================================================
// LIST (per course, optional ?year= & ?month=)
// =======================================================
func (h *BatchHandler) ListBatchesForCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	if ok, err := h.courseExists(courseID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batches")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	q := h.DB.Where("batch_course_id = ?", courseID).Order("batch_created_at ASC")
	if year, ok := helper.QueryInt(c, "year"); ok {
		q = q.Where("batch_year = ?", year)
	}
	if month, ok := helper.QueryInt(c, "month"); ok {
		q = q.Where("batch_month = ?", month)
	}

	var batches []batchModel.BatchModel
	if err := q.Preload("LecturerCourses", func(db *gorm.DB) *gorm.DB {
		return db.Order("lecturer_course_created_at ASC")
	}).Find(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batches")
	}
	return helper.JsonOK(c, "ok", dto.ToBatchResponses(batches))
}

// =======================================================
// LIST (month-scoped path variant)
// =======================================================
func (h *BatchHandler) ListBatchesByMonth(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Params("month")))
	if err != nil || month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Month must be between 1 and 12")
	}
	if ok, err := h.courseExists(courseID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batches")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var batches []batchModel.BatchModel
	if err := h.DB.
		Where("batch_course_id = ? AND batch_month = ?", courseID, month).
		Order("batch_created_at ASC").
		Preload("LecturerCourses", func(db *gorm.DB) *gorm.DB {
			return db.Order("lecturer_course_created_at ASC")
		}).
		Find(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batches")
	}
	return helper.JsonOK(c, "ok", dto.ToBatchResponses(batches))
}

// =======================================================
// AVAILABLE MONTHS (?year= optional) — distinct, ascending
// =======================================================
func (h *BatchHandler) ListAvailableMonths(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	if ok, err := h.courseExists(courseID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching available months")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	query := `SELECT COALESCE(array_agg(DISTINCT batch_month ORDER BY batch_month), '{}') FROM batches WHERE batch_course_id = ?`
	args := []any{courseID}
	if year, ok := helper.QueryInt(c, "year"); ok {
		query += ` AND batch_year = ?`
		args = append(args, year)
	}

	var months pq.Int64Array
	if err := h.DB.Raw(query, args...).Row().Scan(&months); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching available months")
	}
	out := make([]int, 0, len(months))
	for _, m := range months {
		out = append(out, int(m))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================================================
// CREATE — conflict-checked (name, year, month) per course
// =======================================================
func (h *BatchHandler) CreateBatch(c *fiber.Ctx) error {
	var body dto.BatchCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.BatchName = strings.TrimSpace(body.BatchName)
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := batchModel.ValidPeriod(body.BatchYear, body.BatchMonth, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	for _, entry := range body.LecturerCourses {
		if entry.LecturerCoursePaymentStatus != nil && !entry.LecturerCoursePaymentStatus.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment status")
		}
		if entry.LecturerCourseWorkStatus != nil && !entry.LecturerCourseWorkStatus.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work status")
		}
	}

	if ok, err := h.courseExists(body.BatchCourseID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating batch")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var siblings []batchModel.BatchModel
	if err := h.DB.Where("batch_course_id = ?", body.BatchCourseID).Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating batch")
	}
	if batchModel.HasConflict(siblings, body.BatchName, body.BatchYear, body.BatchMonth, uuid.Nil) {
		return helper.JsonError(c, fiber.StatusConflict, conflictMsg)
	}

	batch := batchModel.BatchModel{
		BatchCourseID: body.BatchCourseID,
		BatchName:     body.BatchName,
		BatchYear:     body.BatchYear,
		BatchMonth:    body.BatchMonth,
	}
	for _, entry := range body.LecturerCourses {
		m := lcDTO.LecturerCourseCreateDTOToModel(entry, batch.BatchID)
		m.SyncPayment(lcModel.PaymentStatusPending)
		batch.LecturerCourses = append(batch.LecturerCourses, m)
	}

	if err := h.DB.Create(&batch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, conflictMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating batch")
	}
	return helper.JsonCreated(c, "Batch created successfully", dto.ToBatchResponse(batch))
}

// =======================================================
// UPDATE (partial) — conflict re-checked on merged triple
// =======================================================
func (h *BatchHandler) UpdateBatch(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	batchID, err := helper.ParseUUIDParam(c, "batchId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	var body dto.BatchUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.BatchName != nil && strings.TrimSpace(*body.BatchName) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name must not be empty")
	}

	var batch batchModel.BatchModel
	if err := h.DB.First(&batch, "batch_id = ? AND batch_course_id = ?", batchID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch")
	}

	body.ApplyUpdate(&batch)
	if err := batchModel.ValidPeriod(batch.BatchYear, batch.BatchMonth, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var siblings []batchModel.BatchModel
	if err := h.DB.Where("batch_course_id = ?", courseID).Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating batch")
	}
	if batchModel.HasConflict(siblings, batch.BatchName, batch.BatchYear, batch.BatchMonth, batch.BatchID) {
		return helper.JsonError(c, fiber.StatusConflict, conflictMsg)
	}

	if err := h.DB.Save(&batch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, conflictMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating batch")
	}
	return helper.JsonUpdated(c, "Batch updated successfully", dto.ToBatchResponse(batch))
}

// =======================================================
// DELETE — removes the batch and its lecturer courses
// =======================================================
func (h *BatchHandler) DeleteBatch(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	batchID, err := helper.ParseUUIDParam(c, "batchId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var batch batchModel.BatchModel
		if err := tx.First(&batch, "batch_id = ? AND batch_course_id = ?", batchID, courseID).Error; err != nil {
			return err
		}
		if err := tx.Where("lecturer_course_batch_id = ?", batchID).
			Delete(&lcModel.LecturerCourseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&batch).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting batch")
	}
	return helper.JsonDeleted(c, "Batch deleted successfully", fiber.Map{"batch_id": batchID})
}
