// file: internals/features/courses/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "coursepay_backend/internals/features/courses/batches/model"
)

// CourseModel is the top-level subject/program container. Batches hang off it
// with a cascade FK, so deleting a course removes its whole subtree in one
// statement chain.
type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName        string    `gorm:"column:course_name;type:text;not null" json:"course_name"`
	CourseDescription string    `gorm:"column:course_description;type:text;not null" json:"course_description"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime;index" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_updated_at"`

	Batches []batchModel.BatchModel `gorm:"foreignKey:BatchCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"batches,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
