// file: internals/features/courses/lecturer_courses/model/lecturer_course_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncPayment(t *testing.T) {
	tests := []struct {
		name     string
		prev     PaymentStatus
		status   PaymentStatus
		salary   float64
		paid     float64
		wantPaid float64
	}{
		{"done pays full salary", PaymentStatusPending, PaymentStatusDone, 5000, 0, 5000},
		{"done overrides partial paid", PaymentStatusPending, PaymentStatusDone, 5000, 1200, 5000},
		{"reopening resets paid", PaymentStatusDone, PaymentStatusPending, 5000, 5000, 0},
		{"pending keeps valid partial", PaymentStatusPending, PaymentStatusPending, 5000, 1200, 1200},
		{"pending clamps overpay to salary", PaymentStatusPending, PaymentStatusPending, 5000, 9000, 5000},
		{"pending clamps negative to zero", PaymentStatusPending, PaymentStatusPending, 5000, -100, 0},
		{"done stays done", PaymentStatusDone, PaymentStatusDone, 5000, 3000, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := LecturerCourseModel{
				LecturerCourseSalary:        tt.salary,
				LecturerCoursePaidAmount:    tt.paid,
				LecturerCoursePaymentStatus: tt.status,
			}
			m.SyncPayment(tt.prev)
			assert.Equal(t, tt.wantPaid, m.LecturerCoursePaidAmount)
		})
	}
}

func TestPendingAmount(t *testing.T) {
	m := LecturerCourseModel{LecturerCourseSalary: 4000, LecturerCoursePaidAmount: 1500}
	assert.Equal(t, 2500.0, m.PendingAmount())

	m.LecturerCoursePaymentStatus = PaymentStatusDone
	m.SyncPayment(PaymentStatusPending)
	assert.Equal(t, 0.0, m.PendingAmount())
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, WorkStatusNotStarted.Valid())
	assert.True(t, WorkStatusInProgress.Valid())
	assert.True(t, WorkStatusIncomplete.Valid())
	assert.True(t, WorkStatusComplete.Valid())
	assert.False(t, WorkStatus("Paused").Valid())

	assert.True(t, PaymentStatusPending.Valid())
	assert.True(t, PaymentStatusDone.Valid())
	assert.False(t, PaymentStatus("Partial").Valid())
}
