// Package report renders front-office data as xlsx workbooks.
package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/store"
)

const (
	OccupancySheet = "Occupancy"
	RevenueSheet   = "Revenue"

	// ContentType is the MIME type of the generated workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// newWorkbook creates a file with a single sheet named sheet and a bold header row.
func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func finish(f *excelize.File) (*bytes.Buffer, error) {
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// Occupancy renders one row per night plus an average line.
func Occupancy(days []store.OccupancyDay) (*bytes.Buffer, error) {
	f, err := newWorkbook(OccupancySheet, []string{"Date", "Rooms", "Booked", "Occupancy %"})
	if err != nil {
		return nil, err
	}

	var total float64
	for i, d := range days {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{d.Date.Format("2006-01-02"), d.Rooms, d.Booked, d.Percentage}
		if err := f.SetSheetRow(OccupancySheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
		total += d.Percentage
	}

	if len(days) > 0 {
		summary := len(days) + 3
		f.SetCellValue(OccupancySheet, fmt.Sprintf("A%d", summary), "Average")
		f.SetCellValue(OccupancySheet, fmt.Sprintf("D%d", summary), roundPct(total/float64(len(days))))
	}

	f.SetColWidth(OccupancySheet, "A", "A", 12)
	f.SetColWidth(OccupancySheet, "D", "D", 14)
	return finish(f)
}

// Revenue renders the ledger lines followed by the income, expense and net totals.
func Revenue(entries []model.AccountEntry, sum store.AccountSummary) (*bytes.Buffer, error) {
	f, err := newWorkbook(RevenueSheet, []string{"Date", "Kind", "Category", "Reference", "Memo", "Amount"})
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		amount := e.Amount
		if e.Kind == model.EntryExpense {
			amount = -amount
		}
		row := []interface{}{e.Date.Format("2006-01-02"), e.Kind, e.Category, e.Reference, e.Memo, amount}
		if err := f.SetSheetRow(RevenueSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	summary := len(entries) + 3
	for i, line := range []struct {
		label string
		value float64
	}{
		{"Income", sum.Income},
		{"Expense", sum.Expense},
		{"Net", sum.Net},
	} {
		f.SetCellValue(RevenueSheet, fmt.Sprintf("E%d", summary+i), line.label)
		f.SetCellValue(RevenueSheet, fmt.Sprintf("F%d", summary+i), line.value)
	}

	f.SetColWidth(RevenueSheet, "A", "A", 12)
	f.SetColWidth(RevenueSheet, "C", "E", 18)
	return finish(f)
}

func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}
