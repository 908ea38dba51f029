// file: internals/features/courses/lecturer_courses/dto/lecturer_course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
)

////////////////////////////////////////////////////////////////////////////////
// LECTURER COURSES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create: batch id comes from the path; paid amount / statuses optional and
// defaulted server-side.
type LecturerCourseCreateDTO struct {
	LecturerCourseName        string  `json:"lecturer_course_name" validate:"required"`
	LecturerCourseLectureName string  `json:"lecturer_course_lecture_name" validate:"required"`
	LecturerCourseSalary      float64 `json:"lecturer_course_salary" validate:"required,gt=0"`

	LecturerCoursePaidAmount    *float64               `json:"lecturer_course_paid_amount,omitempty" validate:"omitempty,gte=0"`
	LecturerCoursePaymentStatus *lcModel.PaymentStatus `json:"lecturer_course_payment_status,omitempty"`
	LecturerCourseWorkStatus    *lcModel.WorkStatus    `json:"lecturer_course_work_status,omitempty"`
}

// Update (partial): field-level merge; payment policy is applied after merge.
type LecturerCourseUpdateDTO struct {
	LecturerCourseName        *string  `json:"lecturer_course_name,omitempty"`
	LecturerCourseLectureName *string  `json:"lecturer_course_lecture_name,omitempty"`
	LecturerCourseSalary      *float64 `json:"lecturer_course_salary,omitempty" validate:"omitempty,gt=0"`

	LecturerCoursePaidAmount        *float64               `json:"lecturer_course_paid_amount,omitempty" validate:"omitempty,gte=0"`
	LecturerCoursePaymentStatus     *lcModel.PaymentStatus `json:"lecturer_course_payment_status,omitempty"`
	LecturerCourseWorkStatus        *lcModel.WorkStatus    `json:"lecturer_course_work_status,omitempty"`
	LecturerCoursePaymentScreenshot *string                `json:"lecturer_course_payment_screenshot,omitempty"`
}

type LecturerCourseResponse struct {
	LecturerCourseID      uuid.UUID `json:"lecturer_course_id"`
	LecturerCourseBatchID uuid.UUID `json:"lecturer_course_batch_id"`

	LecturerCourseName        string `json:"lecturer_course_name"`
	LecturerCourseLectureName string `json:"lecturer_course_lecture_name"`

	LecturerCourseWorkStatus    lcModel.WorkStatus    `json:"lecturer_course_work_status"`
	LecturerCourseSalary        float64               `json:"lecturer_course_salary"`
	LecturerCoursePaidAmount    float64               `json:"lecturer_course_paid_amount"`
	LecturerCoursePendingAmount float64               `json:"lecturer_course_pending_amount"`
	LecturerCoursePaymentStatus lcModel.PaymentStatus `json:"lecturer_course_payment_status"`

	LecturerCoursePaymentScreenshot *string        `json:"lecturer_course_payment_screenshot,omitempty"`
	LecturerCourseScreenshotMeta    datatypes.JSON `json:"lecturer_course_screenshot_meta,omitempty"`

	LecturerCourseCreatedAt time.Time `json:"lecturer_course_created_at"`
	LecturerCourseUpdatedAt time.Time `json:"lecturer_course_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToLecturerCourseResponse(m lcModel.LecturerCourseModel) LecturerCourseResponse {
	return LecturerCourseResponse{
		LecturerCourseID:      m.LecturerCourseID,
		LecturerCourseBatchID: m.LecturerCourseBatchID,

		LecturerCourseName:        m.LecturerCourseName,
		LecturerCourseLectureName: m.LecturerCourseLectureName,

		LecturerCourseWorkStatus:    m.LecturerCourseWorkStatus,
		LecturerCourseSalary:        m.LecturerCourseSalary,
		LecturerCoursePaidAmount:    m.LecturerCoursePaidAmount,
		LecturerCoursePendingAmount: m.PendingAmount(),
		LecturerCoursePaymentStatus: m.LecturerCoursePaymentStatus,

		LecturerCoursePaymentScreenshot: m.LecturerCoursePaymentScreenshot,
		LecturerCourseScreenshotMeta:    m.LecturerCourseScreenshotMeta,

		LecturerCourseCreatedAt: m.LecturerCourseCreatedAt,
		LecturerCourseUpdatedAt: m.LecturerCourseUpdatedAt,
	}
}

func ToLecturerCourseResponses(ms []lcModel.LecturerCourseModel) []LecturerCourseResponse {
	out := make([]LecturerCourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLecturerCourseResponse(m))
	}
	return out
}

// CreateDTO -> Model (defaults resolved here, policy applied by the caller)
func LecturerCourseCreateDTOToModel(d LecturerCourseCreateDTO, batchID uuid.UUID) lcModel.LecturerCourseModel {
	m := lcModel.LecturerCourseModel{
		LecturerCourseBatchID:     batchID,
		LecturerCourseName:        d.LecturerCourseName,
		LecturerCourseLectureName: d.LecturerCourseLectureName,
		LecturerCourseSalary:      d.LecturerCourseSalary,
	}
	if d.LecturerCoursePaidAmount != nil {
		m.LecturerCoursePaidAmount = *d.LecturerCoursePaidAmount
	}
	if d.LecturerCoursePaymentStatus != nil {
		m.LecturerCoursePaymentStatus = *d.LecturerCoursePaymentStatus
	} else {
		m.LecturerCoursePaymentStatus = lcModel.PaymentStatusPending
	}
	if d.LecturerCourseWorkStatus != nil {
		m.LecturerCourseWorkStatus = *d.LecturerCourseWorkStatus
	} else {
		m.LecturerCourseWorkStatus = lcModel.WorkStatusNotStarted
	}
	return m
}

// ApplyUpdate merges the partial update into the model and returns the
// previous payment status so the caller can run the payment policy.
func (d LecturerCourseUpdateDTO) ApplyUpdate(m *lcModel.LecturerCourseModel) lcModel.PaymentStatus {
	prev := m.LecturerCoursePaymentStatus

	if d.LecturerCourseName != nil {
		m.LecturerCourseName = *d.LecturerCourseName
	}
	if d.LecturerCourseLectureName != nil {
		m.LecturerCourseLectureName = *d.LecturerCourseLectureName
	}
	if d.LecturerCourseSalary != nil {
		m.LecturerCourseSalary = *d.LecturerCourseSalary
	}
	if d.LecturerCoursePaidAmount != nil {
		m.LecturerCoursePaidAmount = *d.LecturerCoursePaidAmount
	}
	if d.LecturerCoursePaymentStatus != nil {
		m.LecturerCoursePaymentStatus = *d.LecturerCoursePaymentStatus
	}
	if d.LecturerCourseWorkStatus != nil {
		m.LecturerCourseWorkStatus = *d.LecturerCourseWorkStatus
	}
	if d.LecturerCoursePaymentScreenshot != nil {
		m.LecturerCoursePaymentScreenshot = d.LecturerCoursePaymentScreenshot
	}
	return prev
}
