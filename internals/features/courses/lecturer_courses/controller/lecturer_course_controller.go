// file: internals/features/courses/lecturer_courses/controller/lecturer_course_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "coursepay_backend/internals/features/courses/batches/model"
	courseModel "coursepay_backend/internals/features/courses/courses/model"
	"coursepay_backend/internals/features/courses/lecturer_courses/dto"
	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

type LecturerCourseHandler struct {
	DB *gorm.DB
}

// resolveBatch walks the course→batch chain and 404s on the first break,
// mirroring the lookup order the dashboards expect.
func (h *LecturerCourseHandler) resolveBatch(c *fiber.Ctx) (*batchModel.BatchModel, error) {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	batchID, err := helper.ParseUUIDParam(c, "batchId")
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	var n int64
	if err := h.DB.Model(&courseModel.CourseModel{}).Where("course_id = ?", courseID).Count(&n).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}
	if n == 0 {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var batch batchModel.BatchModel
	if err := h.DB.First(&batch, "batch_id = ? AND batch_course_id = ?", batchID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch")
	}
	return &batch, nil
}

// resolveEntry accepts either an entry UUID or a zero-based index into the
// batch's entries in creation order (legacy clients addressed rows by index).
func (h *LecturerCourseHandler) resolveEntry(c *fiber.Ctx, batchID uuid.UUID, param string) (*lcModel.LecturerCourseModel, error) {
	param = strings.TrimSpace(param)

	if idx, err := strconv.Atoi(param); err == nil {
		var entries []lcModel.LecturerCourseModel
		if err := h.DB.
			Where("lecturer_course_batch_id = ?", batchID).
			Order("lecturer_course_created_at ASC, lecturer_course_id ASC").
			Find(&entries).Error; err != nil {
			return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch courses")
		}
		if idx < 0 || idx >= len(entries) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Course not found in batch")
		}
		return &entries[idx], nil
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	var entry lcModel.LecturerCourseModel
	if err := h.DB.First(&entry, "lecturer_course_id = ? AND lecturer_course_batch_id = ?", id, batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Course not found in batch")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch course")
	}
	return &entry, nil
}

// =======================================================
// LIST (batch details)
// =======================================================
func (h *LecturerCourseHandler) ListEntries(c *fiber.Ctx) error {
	batch, err := h.resolveBatch(c)
	if err != nil {
		return err
	}

	var entries []lcModel.LecturerCourseModel
	if err := h.DB.
		Where("lecturer_course_batch_id = ?", batch.BatchID).
		Order("lecturer_course_created_at ASC, lecturer_course_id ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching batch courses")
	}
	return helper.JsonOK(c, "ok", dto.ToLecturerCourseResponses(entries))
}

// =======================================================
// ADD ("add extra course" shares this path)
// =======================================================
func (h *LecturerCourseHandler) AddEntry(c *fiber.Ctx) error {
	batch, err := h.resolveBatch(c)
	if err != nil {
		return err
	}

	var body dto.LecturerCourseCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.LecturerCourseName = strings.TrimSpace(body.LecturerCourseName)
	body.LecturerCourseLectureName = strings.TrimSpace(body.LecturerCourseLectureName)
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.LecturerCoursePaymentStatus != nil && !body.LecturerCoursePaymentStatus.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment status")
	}
	if body.LecturerCourseWorkStatus != nil && !body.LecturerCourseWorkStatus.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work status")
	}

	entry := dto.LecturerCourseCreateDTOToModel(body, batch.BatchID)
	entry.SyncPayment(lcModel.PaymentStatusPending)

	if err := h.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error adding course to batch")
	}
	return helper.JsonCreated(c, "Course added to batch", dto.ToLecturerCourseResponse(entry))
}

// =======================================================
// UPDATE (partial merge + payment policy)
// =======================================================
func (h *LecturerCourseHandler) UpdateEntry(c *fiber.Ctx) error {
	batch, err := h.resolveBatch(c)
	if err != nil {
		return err
	}
	entry, err := h.resolveEntry(c, batch.BatchID, c.Params("entryId"))
	if err != nil {
		return err
	}

	var body dto.LecturerCourseUpdateDTO
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
	if body.LecturerCourseName != nil && strings.TrimSpace(*body.LecturerCourseName) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name must not be empty")
	}
	if body.LecturerCourseLectureName != nil && strings.TrimSpace(*body.LecturerCourseLectureName) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lecture name must not be empty")
	}

	prev := body.ApplyUpdate(entry)
	entry.SyncPayment(prev)

	if err := h.DB.Save(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating batch course")
	}
	return helper.JsonUpdated(c, "Course updated successfully", dto.ToLecturerCourseResponse(*entry))
}

// =======================================================
// DELETE
// =======================================================
func (h *LecturerCourseHandler) DeleteEntry(c *fiber.Ctx) error {
	batch, err := h.resolveBatch(c)
	if err != nil {
		return err
	}
	entry, err := h.resolveEntry(c, batch.BatchID, c.Params("entryId"))
	if err != nil {
		return err
	}

	if err := h.DB.Delete(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting batch course")
	}
	return helper.JsonDeleted(c, "Course removed from batch", fiber.Map{"lecturer_course_id": entry.LecturerCourseID})
}
