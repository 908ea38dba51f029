// file: internals/features/courses/lecturer_courses/controller/screenshot_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/courses/lecturer_courses/dto"
	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
	helper "coursepay_backend/internals/helpers"
	"coursepay_backend/internals/helpers/storage"
)

// =======================================================
// UPLOAD PAYMENT SCREENSHOT
// =======================================================
// POST /api/payment-screenshots (multipart). Stores the normalized image and
// returns its public URL. When the lecturer_course_id form field is present,
// the screenshot is attached right away — attaching proof of payment marks
// the entry paid in full.
func (h *LecturerCourseHandler) UploadPaymentScreenshot(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		fh, err = c.FormFile("image")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A file field is required")
	}

	stored, err := storage.SavePaymentScreenshot(fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp := fiber.Map{"url": stored.URL, "meta": stored.Meta}

	if raw := strings.TrimSpace(c.FormValue("lecturer_course_id")); raw != "" {
		entryID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecturer course ID format")
		}
		entry, err := h.attachScreenshot(entryID, stored)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Lecturer course not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error attaching screenshot")
		}
		resp["lecturer_course"] = dto.ToLecturerCourseResponse(*entry)
	}

	return helper.JsonCreated(c, "Screenshot uploaded", resp)
}

// =======================================================
// ATTACH BY ENTRY ID
// =======================================================
// PATCH /api/lecturer-courses/:entryId/screenshot {url} — used when the
// artifact was uploaded first and attached later.
func (h *LecturerCourseHandler) AttachPaymentScreenshot(c *fiber.Ctx) error {
	entryID, err := helper.ParseUUIDParam(c, "entryId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecturer course ID format")
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(body.URL) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "URL is required")
	}

	entry, err := h.attachScreenshot(entryID, &storage.StoredFile{URL: strings.TrimSpace(body.URL)})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecturer course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error attaching screenshot")
	}
	return helper.JsonUpdated(c, "Screenshot attached", dto.ToLecturerCourseResponse(*entry))
}

func (h *LecturerCourseHandler) attachScreenshot(entryID uuid.UUID, stored *storage.StoredFile) (*lcModel.LecturerCourseModel, error) {
	var entry lcModel.LecturerCourseModel
	if err := h.DB.First(&entry, "lecturer_course_id = ?", entryID).Error; err != nil {
		return nil, err
	}

	prev := entry.LecturerCoursePaymentStatus
	entry.LecturerCoursePaymentScreenshot = &stored.URL
	if stored.Meta != nil {
		if raw, err := json.Marshal(stored.Meta); err == nil {
			entry.LecturerCourseScreenshotMeta = datatypes.JSON(raw)
		}
	}
	entry.LecturerCoursePaymentStatus = lcModel.PaymentStatusDone
	entry.SyncPayment(prev)

	if err := h.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
