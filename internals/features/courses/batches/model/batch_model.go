// file: internals/features/courses/batches/model/batch_model.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lcModel "coursepay_backend/internals/features/courses/lecturer_courses/model"
)

// MinBatchYear is the lower bound for a batch period; the upper bound is the
// current year + 1 (next year's cohorts can be set up in advance).
const MinBatchYear = 2000

// BatchModel is a year+month-scoped run of a course. (name, year, month) is
// unique per course — checked at write time and backed by the composite
// unique index.
type BatchModel struct {
	BatchID       uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`
	BatchCourseID uuid.UUID `gorm:"column:batch_course_id;type:uuid;not null;index;uniqueIndex:uq_batches_course_name_period,priority:1" json:"batch_course_id"`

	BatchName  string `gorm:"column:batch_name;type:text;not null;uniqueIndex:uq_batches_course_name_period,priority:2" json:"batch_name"`
	BatchYear  int    `gorm:"column:batch_year;type:smallint;not null;uniqueIndex:uq_batches_course_name_period,priority:3" json:"batch_year"`
	BatchMonth int    `gorm:"column:batch_month;type:smallint;not null;check:batch_month BETWEEN 1 AND 12;uniqueIndex:uq_batches_course_name_period,priority:4" json:"batch_month"`

	BatchCreatedAt time.Time `gorm:"column:batch_created_at;type:timestamptz;not null;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt time.Time `gorm:"column:batch_updated_at;type:timestamptz;not null;autoUpdateTime" json:"batch_updated_at"`

	LecturerCourses []lcModel.LecturerCourseModel `gorm:"foreignKey:LecturerCourseBatchID;references:BatchID;constraint:OnDelete:CASCADE" json:"lecturer_courses,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }

func (m *BatchModel) BeforeCreate(tx *gorm.DB) error {
	if m.BatchID == uuid.Nil {
		m.BatchID = uuid.New()
	}
	return nil
}

// ValidPeriod bounds-checks a batch period the way the admin form does:
// month 1..12, year within 2000..currentYear+1.
func ValidPeriod(year, month int, now time.Time) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if year < MinBatchYear || year > now.Year()+1 {
		return fmt.Errorf("year must be between %d and %d", MinBatchYear, now.Year()+1)
	}
	return nil
}

// HasConflict reports whether the (name, year, month) triple is already taken
// among the given sibling batches. excludeID skips the batch being updated.
func HasConflict(siblings []BatchModel, name string, year, month int, excludeID uuid.UUID) bool {
	name = strings.TrimSpace(name)
	for _, b := range siblings {
		if b.BatchID == excludeID {
			continue
		}
		if strings.TrimSpace(b.BatchName) == name && b.BatchYear == year && b.BatchMonth == month {
			return true
		}
	}
	return false
}
