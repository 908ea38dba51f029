// file: internals/features/courses/lecturer_courses/model/lecturer_course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS — work & payment status
============================== */

type WorkStatus string

const (
	WorkStatusNotStarted WorkStatus = "Not Started"
	WorkStatusInProgress WorkStatus = "In Progress"
	WorkStatusIncomplete WorkStatus = "Incomplete"
	WorkStatusComplete   WorkStatus = "Complete"
)

func (s WorkStatus) Valid() bool {
	switch s {
	case WorkStatusNotStarted, WorkStatusInProgress, WorkStatusIncomplete, WorkStatusComplete:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusDone    PaymentStatus = "Done"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusDone
}

/* ==============================
   MODEL
============================== */

// LecturerCourseModel is one lecturer's sub-course assignment inside a batch,
// carrying the work/payment state and salary figures the report aggregates.
type LecturerCourseModel struct {
	LecturerCourseID      uuid.UUID `gorm:"column:lecturer_course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lecturer_course_id"`
	LecturerCourseBatchID uuid.UUID `gorm:"column:lecturer_course_batch_id;type:uuid;not null;index" json:"lecturer_course_batch_id"`

	LecturerCourseName        string `gorm:"column:lecturer_course_name;type:text;not null" json:"lecturer_course_name"`
	LecturerCourseLectureName string `gorm:"column:lecturer_course_lecture_name;type:text;not null" json:"lecturer_course_lecture_name"`

	LecturerCourseWorkStatus    WorkStatus    `gorm:"column:lecturer_course_work_status;type:varchar(20);not null;default:'Not Started'" json:"lecturer_course_work_status"`
	LecturerCourseSalary        float64       `gorm:"column:lecturer_course_salary;type:numeric(12,2);not null;check:lecturer_course_salary >= 0" json:"lecturer_course_salary"`
	LecturerCoursePaidAmount    float64       `gorm:"column:lecturer_course_paid_amount;type:numeric(12,2);not null;default:0" json:"lecturer_course_paid_amount"`
	LecturerCoursePaymentStatus PaymentStatus `gorm:"column:lecturer_course_payment_status;type:varchar(10);not null;default:'Pending'" json:"lecturer_course_payment_status"`

	LecturerCoursePaymentScreenshot *string        `gorm:"column:lecturer_course_payment_screenshot;type:text" json:"lecturer_course_payment_screenshot,omitempty"`
	LecturerCourseScreenshotMeta    datatypes.JSON `gorm:"column:lecturer_course_screenshot_meta;type:jsonb" json:"lecturer_course_screenshot_meta,omitempty"`

	LecturerCourseCreatedAt time.Time `gorm:"column:lecturer_course_created_at;type:timestamptz;not null;autoCreateTime" json:"lecturer_course_created_at"`
	LecturerCourseUpdatedAt time.Time `gorm:"column:lecturer_course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"lecturer_course_updated_at"`
}

func (LecturerCourseModel) TableName() string { return "lecturer_courses" }

func (m *LecturerCourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.LecturerCourseID == uuid.Nil {
		m.LecturerCourseID = uuid.New()
	}
	if m.LecturerCourseWorkStatus == "" {
		m.LecturerCourseWorkStatus = WorkStatusNotStarted
	}
	if m.LecturerCoursePaymentStatus == "" {
		m.LecturerCoursePaymentStatus = PaymentStatusPending
	}
	return nil
}

/* ==============================
   PAYMENT POLICY
============================== */

// SyncPayment applies the single payment policy: status drives amount.
// Moving to Done pays out the full salary; moving back to Pending resets the
// paid amount; while Pending a directly-edited paid amount is clamped into
// [0, salary]. Every write path that touches payment fields goes through
// here so the report totals stay coherent.
func (m *LecturerCourseModel) SyncPayment(prev PaymentStatus) {
	switch {
	case m.LecturerCoursePaymentStatus == PaymentStatusDone:
		m.LecturerCoursePaidAmount = m.LecturerCourseSalary
	case prev == PaymentStatusDone && m.LecturerCoursePaymentStatus == PaymentStatusPending:
		m.LecturerCoursePaidAmount = 0
	default:
		if m.LecturerCoursePaidAmount < 0 {
			m.LecturerCoursePaidAmount = 0
		}
		if m.LecturerCoursePaidAmount > m.LecturerCourseSalary {
			m.LecturerCoursePaidAmount = m.LecturerCourseSalary
		}
	}
}

// PendingAmount is the remainder the report shows per row.
func (m *LecturerCourseModel) PendingAmount() float64 {
	return m.LecturerCourseSalary - m.LecturerCoursePaidAmount
}
