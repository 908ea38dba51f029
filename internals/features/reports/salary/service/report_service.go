// file: internals/features/reports/salary/service/report_service.go
package service

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"coursepay_backend/internals/features/reports/salary/dto"
)

// flattenQuery joins the whole course tree into report rows. Ordering matches
// the nested listings: courses newest first, children in creation order.
const flattenQuery = `
SELECT
    lc.lecturer_course_id                                   AS lecturer_course_id,
    c.course_name                                           AS course_name,
    b.batch_name                                            AS batch_name,
    b.batch_year                                            AS batch_year,
    b.batch_month                                           AS batch_month,
    lc.lecturer_course_lecture_name                         AS lecture_name,
    lc.lecturer_course_name                                 AS lecture_course,
    lc.lecturer_course_work_status                          AS work_status,
    lc.lecturer_course_salary                               AS salary,
    lc.lecturer_course_paid_amount                          AS paid_amount,
    lc.lecturer_course_salary - lc.lecturer_course_paid_amount AS pending_amount,
    lc.lecturer_course_payment_status                       AS payment_status,
    lc.lecturer_course_payment_screenshot                   AS payment_screenshot
FROM lecturer_courses lc
JOIN batches b ON b.batch_id = lc.lecturer_course_batch_id
JOIN courses c ON c.course_id = b.batch_course_id
ORDER BY
    c.course_created_at DESC, c.course_id,
    b.batch_created_at ASC,   b.batch_id,
    lc.lecturer_course_created_at ASC, lc.lecturer_course_id
`

// FlattenRows materializes the report from the live tables.
func FlattenRows(db *gorm.DB) ([]dto.BatchSalaryRow, error) {
	var rows []dto.BatchSalaryRow
	if err := db.Raw(flattenQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// =======================================================
// FILTER / SORT / TOTALS (pure, in-memory)
// =======================================================

// FilterRows applies the exact-match filters and the free-text search.
// Search matches case-insensitively against every string field of a row.
// Filtering the same rows twice yields the same result.
func FilterRows(rows []dto.BatchSalaryRow, f dto.ReportFilter) []dto.BatchSalaryRow {
	search := strings.ToLower(f.Search)

	out := make([]dto.BatchSalaryRow, 0, len(rows))
	for _, r := range rows {
		if f.Year != nil && r.BatchYear != *f.Year {
			continue
		}
		if f.Month != nil && r.BatchMonth != *f.Month {
			continue
		}
		if f.Status != "" && r.PaymentStatus != f.Status {
			continue
		}
		if f.BatchName != "" && r.BatchName != f.BatchName {
			continue
		}
		if f.CourseName != "" && r.CourseName != f.CourseName {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r dto.BatchSalaryRow, search string) bool {
	fields := []string{
		r.LectureName, r.CourseName, r.BatchName,
		r.LectureCourse, r.WorkStatus, r.PaymentStatus,
	}
	if r.PaymentScreenshot != nil {
		fields = append(fields, *r.PaymentScreenshot)
	}
	for _, v := range fields {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}

// SortRows orders rows by a whitelisted column. Unknown columns leave the
// input order untouched. The sort is stable so equal keys keep their
// flatten order.
func SortRows(rows []dto.BatchSalaryRow, sortBy, sortDir string) {
	var less func(a, b dto.BatchSalaryRow) bool
	switch sortBy {
	case "lecture_name":
		less = func(a, b dto.BatchSalaryRow) bool { return a.LectureName < b.LectureName }
	case "course_name":
		less = func(a, b dto.BatchSalaryRow) bool { return a.CourseName < b.CourseName }
	case "batch_name":
		less = func(a, b dto.BatchSalaryRow) bool { return a.BatchName < b.BatchName }
	case "batch_year":
		less = func(a, b dto.BatchSalaryRow) bool { return a.BatchYear < b.BatchYear }
	case "batch_month":
		less = func(a, b dto.BatchSalaryRow) bool { return a.BatchMonth < b.BatchMonth }
	case "salary":
		less = func(a, b dto.BatchSalaryRow) bool { return a.Salary < b.Salary }
	case "paid_amount":
		less = func(a, b dto.BatchSalaryRow) bool { return a.PaidAmount < b.PaidAmount }
	case "pending_amount":
		less = func(a, b dto.BatchSalaryRow) bool { return a.PendingAmount < b.PendingAmount }
	case "payment_status":
		less = func(a, b dto.BatchSalaryRow) bool { return a.PaymentStatus < b.PaymentStatus }
	case "work_status":
		less = func(a, b dto.BatchSalaryRow) bool { return a.WorkStatus < b.WorkStatus }
	default:
		return
	}

	desc := sortDir == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// ComputeTotals sums the visible rows. An empty slice yields zero totals,
// and total pending always equals total salary minus total paid.
func ComputeTotals(rows []dto.BatchSalaryRow) dto.ReportTotals {
	var t dto.ReportTotals
	for _, r := range rows {
		t.TotalSalary += r.Salary
		t.TotalPaid += r.PaidAmount
	}
	t.TotalPending = t.TotalSalary - t.TotalPaid
	return t
}
