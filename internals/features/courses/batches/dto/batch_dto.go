// file: internals/features/courses/batches/dto/batch_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	batchModel "coursepay_backend/internals/features/courses/batches/model"
	lcDTO "coursepay_backend/internals/features/courses/lecturer_courses/dto"
)

////////////////////////////////////////////////////////////////////////////////
// BATCHES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create: posted to /api/batches with the parent course id in the body
// (the admin dashboard form works that way). Initial lecturer-course entries
// may be supplied inline; more can be added later.
type BatchCreateDTO struct {
	BatchCourseID uuid.UUID `json:"batch_course_id" validate:"required"`
	BatchName     string    `json:"batch_name" validate:"required"`
	BatchYear     int       `json:"batch_year" validate:"required,min=2000"`
	BatchMonth    int       `json:"batch_month" validate:"required,min=1,max=12"`

	LecturerCourses []lcDTO.LecturerCourseCreateDTO `json:"lecturer_courses,omitempty" validate:"omitempty,dive"`
}

// Update (partial): the merged (name, year, month) triple is conflict-checked
// again before the write.
type BatchUpdateDTO struct {
	BatchName  *string `json:"batch_name,omitempty"`
	BatchYear  *int    `json:"batch_year,omitempty" validate:"omitempty,min=2000"`
	BatchMonth *int    `json:"batch_month,omitempty" validate:"omitempty,min=1,max=12"`
}

type BatchResponse struct {
	BatchID       uuid.UUID `json:"batch_id"`
	BatchCourseID uuid.UUID `json:"batch_course_id"`
	BatchName     string    `json:"batch_name"`
	BatchYear     int       `json:"batch_year"`
	BatchMonth    int       `json:"batch_month"`

	BatchCreatedAt time.Time `json:"batch_created_at"`
	BatchUpdatedAt time.Time `json:"batch_updated_at"`

	LecturerCourses []lcDTO.LecturerCourseResponse `json:"lecturer_courses,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToBatchResponse(m batchModel.BatchModel) BatchResponse {
	return BatchResponse{
		BatchID:       m.BatchID,
		BatchCourseID: m.BatchCourseID,
		BatchName:     m.BatchName,
		BatchYear:     m.BatchYear,
		BatchMonth:    m.BatchMonth,

		BatchCreatedAt: m.BatchCreatedAt,
		BatchUpdatedAt: m.BatchUpdatedAt,

		LecturerCourses: lcDTO.ToLecturerCourseResponses(m.LecturerCourses),
	}
}

func ToBatchResponses(ms []batchModel.BatchModel) []BatchResponse {
	out := make([]BatchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBatchResponse(m))
	}
	return out
}

// ApplyUpdate merges the partial update into the model.
func (d BatchUpdateDTO) ApplyUpdate(m *batchModel.BatchModel) {
	if d.BatchName != nil {
		m.BatchName = *d.BatchName
	}
	if d.BatchYear != nil {
		m.BatchYear = *d.BatchYear
	}
	if d.BatchMonth != nil {
		m.BatchMonth = *d.BatchMonth
	}
}
