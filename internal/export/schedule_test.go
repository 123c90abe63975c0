package export

import (
	"testing"

	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestScheduleWorkbook(t *testing.T) {
	buckets := project.WeekBuckets{
		ThisWeek: []project.Summary{
			{Name: "Wedding", CustomerName: "Ana", EventDate: "2026-02-07", Status: project.StatusConfirmed, CakeCount: 2, TotalCents: 160000, PaidCents: 50000},
		},
		NextWeek: []project.Summary{
			{Name: "Birthday", CustomerName: "Bia", EventDate: "2026-02-12", Status: project.StatusPlanning, CakeCount: 1, TotalCents: 30000},
		},
	}

	f, err := ScheduleWorkbook(buckets)
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{"This week", "Next week"}, f.GetSheetList())

	name, err := f.GetCellValue("This week", "B2")
	require.NoError(t, err)
	require.Equal(t, "Wedding", name)

	total, err := f.GetCellValue("This week", "F2")
	require.NoError(t, err)
	require.Equal(t, "1600", total)

	next, err := f.GetCellValue("Next week", "B2")
	require.NoError(t, err)
	require.Equal(t, "Birthday", next)
}

func TestScheduleWorkbook_Empty(t *testing.T) {
	f, err := ScheduleWorkbook(project.WeekBuckets{})
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("This week", "A1")
	require.NoError(t, err)
	require.Equal(t, "Event date", header)
}
