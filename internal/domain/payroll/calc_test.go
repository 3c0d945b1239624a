package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// June 2026 has four Sundays, so a plain month with no holidays has 26
// payable days.
func TestCalculatePlainMonth(t *testing.T) {
	slip := Calculate(Input{
		EmployeeName: "Asha Fernando",
		Salary:       30000,
		Year:         2026,
		Month:        time.June,
	})

	require.Equal(t, 26, slip.TotalPayableDays)
	require.InDelta(t, 1153.85, slip.PerDaySalary, 0.01)
	require.Equal(t, 0, slip.DeductibleLeaveDays)
	require.InDelta(t, 30000, slip.NetSalary, 0.001)
	require.Equal(t, "June 2026", slip.MonthYear)
	require.False(t, slip.NoPayableDays)
}

func TestCalculateLeaveDeduction(t *testing.T) {
	slip := Calculate(Input{
		Salary: 30000,
		Year:   2026,
		Month:  time.June,
		ApprovedLeave: []Period{
			{Start: day(2026, time.June, 10), End: day(2026, time.June, 11)},
		},
	})

	require.Equal(t, 2, slip.DeductibleLeaveDays)
	require.InDelta(t, 2307.69, slip.Deductions, 0.01)
	require.InDelta(t, 27692.31, slip.NetSalary, 0.01)
}

// Leave that falls on the weekly rest day or a declared holiday costs
// nothing, because those days were never payable.
func TestCalculateLeaveOnNonPayableDays(t *testing.T) {
	slip := Calculate(Input{
		Salary:   30000,
		Year:     2026,
		Month:    time.June,
		Holidays: []time.Time{day(2026, time.June, 8)},
		ApprovedLeave: []Period{
			{Start: day(2026, time.June, 7), End: day(2026, time.June, 8)},
		},
	})

	require.Equal(t, 25, slip.TotalPayableDays)
	require.Equal(t, 0, slip.DeductibleLeaveDays)
	require.InDelta(t, 30000, slip.NetSalary, 0.001)
}

func TestCalculateLeaveClippedToMonth(t *testing.T) {
	slip := Calculate(Input{
		Salary: 26000,
		Year:   2026,
		Month:  time.June,
		ApprovedLeave: []Period{
			{Start: day(2026, time.May, 29), End: day(2026, time.June, 2)},
		},
	})

	// The May days fall outside the slip's month; only June 1 and 2 count.
	require.Equal(t, 2, slip.DeductibleLeaveDays)
	require.InDelta(t, 24000, slip.NetSalary, 0.01)
}

func TestCalculateNoPayableDays(t *testing.T) {
	var holidays []time.Time
	for d := day(2026, time.February, 1); d.Month() == time.February; d = d.AddDate(0, 0, 1) {
		holidays = append(holidays, d)
	}

	slip := Calculate(Input{
		Salary:   30000,
		Year:     2026,
		Month:    time.February,
		Holidays: holidays,
	})

	require.True(t, slip.NoPayableDays)
	require.Equal(t, 0, slip.TotalPayableDays)
	require.Zero(t, slip.PerDaySalary)
	require.Zero(t, slip.Deductions)
	require.Zero(t, slip.NetSalary)
	require.InDelta(t, 30000, slip.GrossSalary, 0.001)
}

func TestCalculateGrossReconstructible(t *testing.T) {
	slip := Calculate(Input{
		Salary: 77777.77,
		Year:   2026,
		Month:  time.September,
	})

	require.InDelta(t, slip.GrossSalary, slip.PerDaySalary*float64(slip.TotalPayableDays), 0.000001)
}

func TestPayableDates(t *testing.T) {
	holidays := []time.Time{day(2026, time.June, 4)}
	dates := PayableDates(2026, time.June, holidays)

	require.Len(t, dates, 25)
	for _, d := range dates {
		require.NotEqual(t, RestDay, d.Weekday())
		require.False(t, d.Equal(holidays[0]))
	}
}
