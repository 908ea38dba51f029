// file: internals/features/reports/salary/service/export_service.go
package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"coursepay_backend/internals/features/reports/salary/dto"
)

var exportHeaders = []string{
	"Lecture Name", "Course", "Batch", "Year", "Month",
	"Lecture Course", "Work Status", "Salary", "Paid Amount",
	"Pending Amount", "Payment Status",
}

// BuildSpreadsheet renders the report as an xlsx workbook with a totals row.
func BuildSpreadsheet(rows []dto.BatchSalaryRow, totals dto.ReportTotals) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Batch Salary"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := []any{
			r.LectureName, r.CourseName, r.BatchName, r.BatchYear, r.BatchMonth,
			r.LectureCourse, r.WorkStatus, r.Salary, r.PaidAmount,
			r.PendingAmount, r.PaymentStatus,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(rows) + 2
	totalsCells := map[int]any{
		1:  "Totals",
		8:  totals.TotalSalary,
		9:  totals.TotalPaid,
		10: totals.TotalPending,
	}
	for col, v := range totalsCells {
		cell, err := excelize.CoordinatesToCellName(col, totalRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// BuildPDF renders the report as a landscape A4 table with a totals trailer.
func BuildPDF(rows []dto.BatchSalaryRow, totals dto.ReportTotals) (*bytes.Buffer, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, "Batch Salary Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{34, 34, 26, 14, 14, 34, 24, 25, 25, 25, 22}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range exportHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		cells := []string{
			r.LectureName, r.CourseName, r.BatchName,
			fmt.Sprintf("%d", r.BatchYear), fmt.Sprintf("%d", r.BatchMonth),
			r.LectureCourse, r.WorkStatus,
			fmt.Sprintf("%.2f", r.Salary), fmt.Sprintf("%.2f", r.PaidAmount),
			fmt.Sprintf("%.2f", r.PendingAmount), r.PaymentStatus,
		}
		for i, v := range cells {
			align := "L"
			if i >= 3 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4]+widths[5]+widths[6], 7, "Totals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 7, fmt.Sprintf("%.2f", totals.TotalSalary), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 7, fmt.Sprintf("%.2f", totals.TotalPaid), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[9], 7, fmt.Sprintf("%.2f", totals.TotalPending), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[10], 7, "", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
