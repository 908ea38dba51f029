// file: internals/features/reports/salary/dto/batch_salary_dto.go
package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "coursepay_backend/internals/helpers"
)

// =======================================================
// BATCH SALARY (read-time projection, not a second table)
// =======================================================

// BatchSalaryRow is one flattened lecturer-course assignment joined with its
// parent batch and course. The id is the lecturer course id.
type BatchSalaryRow struct {
	LecturerCourseID uuid.UUID `gorm:"column:lecturer_course_id" json:"lecturer_course_id"`

	CourseName string `gorm:"column:course_name" json:"course_name"`
	BatchName  string `gorm:"column:batch_name" json:"batch_name"`
	BatchYear  int    `gorm:"column:batch_year" json:"batch_year"`
	BatchMonth int    `gorm:"column:batch_month" json:"batch_month"`

	LectureName   string `gorm:"column:lecture_name" json:"lecture_name"`
	LectureCourse string `gorm:"column:lecture_course" json:"lecture_course"`
	WorkStatus    string `gorm:"column:work_status" json:"work_status"`

	Salary        float64 `gorm:"column:salary" json:"salary"`
	PaidAmount    float64 `gorm:"column:paid_amount" json:"paid_amount"`
	PendingAmount float64 `gorm:"column:pending_amount" json:"pending_amount"`
	PaymentStatus string  `gorm:"column:payment_status" json:"payment_status"`

	PaymentScreenshot *string `gorm:"column:payment_screenshot" json:"payment_screenshot,omitempty"`
}

// ReportFilter carries the optional exact-match and search filters plus the
// requested ordering.
type ReportFilter struct {
	Year       *int
	Month      *int
	Status     string
	BatchName  string
	CourseName string
	Search     string

	SortBy  string
	SortDir string // "asc" (default) / "desc"
}

type ReportTotals struct {
	TotalSalary  float64 `json:"total_salary"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
}

// FilterFromQuery builds the filter from the request query string.
func FilterFromQuery(c *fiber.Ctx) ReportFilter {
	f := ReportFilter{
		Status:     strings.TrimSpace(c.Query("status")),
		BatchName:  strings.TrimSpace(c.Query("batch_name")),
		CourseName: strings.TrimSpace(c.Query("course_name")),
		Search:     strings.TrimSpace(c.Query("search")),
		SortBy:     strings.TrimSpace(c.Query("sort_by")),
		SortDir:    strings.ToLower(strings.TrimSpace(c.Query("sort_dir"))),
	}
	if year, ok := helper.QueryInt(c, "year"); ok {
		f.Year = &year
	}
	if month, ok := helper.QueryInt(c, "month"); ok {
		f.Month = &month
	}
	return f
}
