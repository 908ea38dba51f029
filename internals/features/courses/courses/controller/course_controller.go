// file: internals/features/courses/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "coursepay_backend/internals/features/courses/batches/model"
	"coursepay_backend/internals/features/courses/courses/dto"
	courseModel "coursepay_backend/internals/features/courses/courses/model"
	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

type CourseHandler struct {
	DB *gorm.DB
}

// =======================================================
// LIST — newest first, whole subtree preloaded
// =======================================================
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	err := h.DB.
		Preload("Batches", func(db *gorm.DB) *gorm.DB {
			return db.Order("batch_created_at ASC")
		}).
		Preload("Batches.LecturerCourses", func(db *gorm.DB) *gorm.DB {
			return db.Order("lecturer_course_created_at ASC")
		}).
		Order("course_created_at DESC").
		Find(&courses).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching courses")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseResponses(courses))
}

// =======================================================
// DETAIL
// =======================================================
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var course courseModel.CourseModel
	err = h.DB.
		Preload("Batches", func(db *gorm.DB) *gorm.DB {
			return db.Order("batch_created_at ASC")
		}).
		Preload("Batches.LecturerCourses", func(db *gorm.DB) *gorm.DB {
			return db.Order("lecturer_course_created_at ASC")
		}).
		First(&course, "course_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseResponse(course))
}

// =======================================================
// CREATE
// =======================================================
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var body dto.CourseCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.CourseName = strings.TrimSpace(body.CourseName)
	body.CourseDescription = strings.TrimSpace(body.CourseDescription)
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course := courseModel.CourseModel{
		CourseName:        body.CourseName,
		CourseDescription: body.CourseDescription,
	}
	if err := h.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating course")
	}
	return helper.JsonCreated(c, "Course created successfully", dto.ToCourseResponse(course))
}

// =======================================================
// UPDATE — PUT and PATCH share semantics (partial merge)
// =======================================================
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var body dto.CourseUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if body.CourseName == nil && body.CourseDescription == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "At least one field to update is required")
	}
	if body.CourseName != nil && strings.TrimSpace(*body.CourseName) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name must not be empty")
	}
	if body.CourseDescription != nil && strings.TrimSpace(*body.CourseDescription) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Description must not be empty")
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}

	body.ApplyUpdate(&course)
	if err := h.DB.Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating course")
	}
	return helper.JsonUpdated(c, "Course updated successfully", dto.ToCourseResponse(course))
}

// =======================================================
// DELETE — cascades batches + lecturer courses, one tx
// =======================================================
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var course courseModel.CourseModel
		if err := tx.First(&course, "course_id = ?", id).Error; err != nil {
			return err
		}
		batchIDs := tx.Model(&batchModel.BatchModel{}).
			Select("batch_id").
			Where("batch_course_id = ?", id)
		if err := tx.Where("lecturer_course_batch_id IN (?)", batchIDs).
			Delete(&lcModel.LecturerCourseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batch_course_id = ?", id).
			Delete(&batchModel.BatchModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting course")
	}
	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{"course_id": id})
}
