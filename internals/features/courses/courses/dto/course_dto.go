// file: internals/features/courses/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	batchDTO "coursepay_backend/internals/features/courses/batches/dto"
	courseModel "coursepay_backend/internals/features/courses/courses/model"
)

////////////////////////////////////////////////////////////////////////////////
// COURSES — DTO
////////////////////////////////////////////////////////////////////////////////

type CourseCreateDTO struct {
	CourseName        string `json:"course_name" validate:"required"`
	CourseDescription string `json:"course_description" validate:"required"`
}

type CourseUpdateDTO struct {
	CourseName        *string `json:"course_name,omitempty"`
	CourseDescription *string `json:"course_description,omitempty"`
}

type CourseResponse struct {
	CourseID          uuid.UUID `json:"course_id"`
	CourseName        string    `json:"course_name"`
	CourseDescription string    `json:"course_description"`

	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`

	Batches []batchDTO.BatchResponse `json:"batches,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToCourseResponse(m courseModel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:          m.CourseID,
		CourseName:        m.CourseName,
		CourseDescription: m.CourseDescription,

		CourseCreatedAt: m.CourseCreatedAt,
		CourseUpdatedAt: m.CourseUpdatedAt,

		Batches: batchDTO.ToBatchResponses(m.Batches),
	}
}

func ToCourseResponses(ms []courseModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCourseResponse(m))
	}
	return out
}

// ApplyUpdate merges the partial update into the model. Empty strings are
// rejected by the controller before this runs.
func (d CourseUpdateDTO) ApplyUpdate(m *courseModel.CourseModel) {
	if d.CourseName != nil {
		m.CourseName = *d.CourseName
	}
	if d.CourseDescription != nil {
		m.CourseDescription = *d.CourseDescription
	}
}
