// Package export renders reporting spreadsheets for the back office.
package export

import (
	"fmt"

	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/xuri/excelize/v2"
)

var scheduleHeaders = []string{"Event date", "Project", "Customer", "Status", "Cakes", "Total", "Paid"}

// ScheduleWorkbook builds an xlsx with one sheet per week bucket.
func ScheduleWorkbook(buckets project.WeekBuckets) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeScheduleSheet(f, "This week", buckets.ThisWeek, true); err != nil {
		return nil, err
	}
	if err := writeScheduleSheet(f, "Next week", buckets.NextWeek, false); err != nil {
		return nil, err
	}

	return f, nil
}

func writeScheduleSheet(f *excelize.File, name string, projects []project.Summary, first bool) error {
	if first {
		// Rename the default sheet rather than leaving an empty Sheet1.
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("renaming sheet: %w", err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", name, err)
		}
	}

	for col, header := range scheduleHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, p := range projects {
		row := i + 2
		values := []any{
			p.EventDate,
			p.Name,
			p.CustomerName,
			string(p.Status),
			p.CakeCount,
			centsToUnits(p.TotalCents),
			centsToUnits(p.PaidCents),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	return nil
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
