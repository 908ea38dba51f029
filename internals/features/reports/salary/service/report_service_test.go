// file: internals/features/reports/salary/service/report_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"coursepay_backend/internals/features/reports/salary/dto"
)

func sampleRows() []dto.BatchSalaryRow {
	return []dto.BatchSalaryRow{
		{
			LecturerCourseID: uuid.New(),
			CourseName:       "Full Stack Development",
			BatchName:        "Batch 1",
			BatchYear:        2026, BatchMonth: 3,
			LectureName: "Anitha", LectureCourse: "React Basics",
			WorkStatus: "Complete",
			Salary:     5000, PaidAmount: 5000, PendingAmount: 0,
			PaymentStatus: "Done",
		},
		{
			LecturerCourseID: uuid.New(),
			CourseName:       "Full Stack Development",
			BatchName:        "Batch 2",
			BatchYear:        2026, BatchMonth: 4,
			LectureName: "Kumar", LectureCourse: "Node APIs",
			WorkStatus: "In Progress",
			Salary:     4000, PaidAmount: 1500, PendingAmount: 2500,
			PaymentStatus: "Pending",
		},
		{
			LecturerCourseID: uuid.New(),
			CourseName:       "Data Science",
			BatchName:        "Batch 1",
			BatchYear:        2025, BatchMonth: 4,
			LectureName: "Priya", LectureCourse: "Pandas",
			WorkStatus: "Not Started",
			Salary:     3000, PaidAmount: 0, PendingAmount: 3000,
			PaymentStatus: "Pending",
		},
	}
}

func intPtr(v int) *int { return &v }

func TestFilterRows(t *testing.T) {
	rows := sampleRows()

	t.Run("no filters returns everything", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{})
		assert.Len(t, got, 3)
	})

	t.Run("year", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Year: intPtr(2025)})
		assert.Len(t, got, 1)
		assert.Equal(t, "Data Science", got[0].CourseName)
	})

	t.Run("month", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Month: intPtr(4)})
		assert.Len(t, got, 2)
	})

	t.Run("year and month combine", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Year: intPtr(2026), Month: intPtr(4)})
		assert.Len(t, got, 1)
		assert.Equal(t, "Kumar", got[0].LectureName)
	})

	t.Run("payment status exact match", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Status: "Pending"})
		assert.Len(t, got, 2)
	})

	t.Run("batch name exact match", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{BatchName: "Batch 1"})
		assert.Len(t, got, 2)
	})

	t.Run("course name exact match", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{CourseName: "Data Science"})
		assert.Len(t, got, 1)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Search: "aNiThA"})
		assert.Len(t, got, 1)
		assert.Equal(t, "Anitha", got[0].LectureName)
	})

	t.Run("search covers every string field", func(t *testing.T) {
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "data sci"}), 1)  // course name
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "batch 2"}), 1)   // batch name
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "react"}), 1)     // sub-course name
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "progress"}), 1)  // work status
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "done"}), 1)      // payment status
		assert.Len(t, FilterRows(rows, dto.ReportFilter{Search: "pending"}), 2)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		got := FilterRows(rows, dto.ReportFilter{Search: "nobody"})
		assert.Empty(t, got)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		f := dto.ReportFilter{Status: "Pending"}
		once := FilterRows(rows, f)
		twice := FilterRows(once, f)
		assert.Equal(t, once, twice)
	})
}

func TestSortRows(t *testing.T) {
	t.Run("salary ascending", func(t *testing.T) {
		rows := sampleRows()
		SortRows(rows, "salary", "asc")
		assert.Equal(t, 3000.0, rows[0].Salary)
		assert.Equal(t, 5000.0, rows[2].Salary)
	})

	t.Run("salary descending", func(t *testing.T) {
		rows := sampleRows()
		SortRows(rows, "salary", "desc")
		assert.Equal(t, 5000.0, rows[0].Salary)
		assert.Equal(t, 3000.0, rows[2].Salary)
	})

	t.Run("lecture name", func(t *testing.T) {
		rows := sampleRows()
		SortRows(rows, "lecture_name", "asc")
		assert.Equal(t, "Anitha", rows[0].LectureName)
		assert.Equal(t, "Priya", rows[2].LectureName)
	})

	t.Run("unknown column keeps input order", func(t *testing.T) {
		rows := sampleRows()
		SortRows(rows, "bogus", "asc")
		assert.Equal(t, "Anitha", rows[0].LectureName)
		assert.Equal(t, "Kumar", rows[1].LectureName)
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		rows := sampleRows()
		SortRows(rows, "batch_name", "asc")
		// Both "Batch 1" rows keep their flatten order.
		assert.Equal(t, "Anitha", rows[0].LectureName)
		assert.Equal(t, "Priya", rows[1].LectureName)
	})
}

func TestComputeTotals(t *testing.T) {
	t.Run("sums and pending identity", func(t *testing.T) {
		totals := ComputeTotals(sampleRows())
		assert.Equal(t, 12000.0, totals.TotalSalary)
		assert.Equal(t, 6500.0, totals.TotalPaid)
		assert.Equal(t, totals.TotalSalary-totals.TotalPaid, totals.TotalPending)
	})

	t.Run("empty rows yield zeros", func(t *testing.T) {
		totals := ComputeTotals(nil)
		assert.Zero(t, totals.TotalSalary)
		assert.Zero(t, totals.TotalPaid)
		assert.Zero(t, totals.TotalPending)
	})

	t.Run("done rows contribute no pending", func(t *testing.T) {
		rows := FilterRows(sampleRows(), dto.ReportFilter{Status: "Done"})
		totals := ComputeTotals(rows)
		assert.Equal(t, 0.0, totals.TotalPending)
	})
}
