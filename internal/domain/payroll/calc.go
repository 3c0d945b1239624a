package payroll

import "time"

// The weekly rest day. Rest days and declared holidays are never payable,
// so leave taken on them costs nothing.
const RestDay = time.Sunday

type Period struct {
	Start time.Time
	End   time.Time
}

type Input struct {
	EmployeeName   string
	EmployeeNumber string
	Salary         float64
	Year           int
	Month          time.Month
	Holidays       []time.Time
	ApprovedLeave  []Period
}

type Payslip struct {
	EmployeeName        string  `json:"employeeName"`
	EmployeeNumber      string  `json:"employeeNumber,omitempty"`
	MonthYear           string  `json:"monthYear"`
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	GrossSalary         float64 `json:"grossSalary"`
	TotalPayableDays    int     `json:"totalPayableDays"`
	PerDaySalary        float64 `json:"perDaySalary"`
	DeductibleLeaveDays int     `json:"deductibleLeaveDays"`
	Deductions          float64 `json:"deductions"`
	NetSalary           float64 `json:"netSalary"`
	NoPayableDays       bool    `json:"noPayableDays,omitempty"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func holidaySet(holidays []time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		set[dateOnly(h)] = true
	}
	return set
}

func payable(day time.Time, holidays map[time.Time]bool) bool {
	return day.Weekday() != RestDay && !holidays[day]
}

// PayableDates enumerates every date of the month that is neither the
// weekly rest day nor a declared holiday.
func PayableDates(year int, month time.Month, holidays []time.Time) []time.Time {
	set := holidaySet(holidays)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var out []time.Time
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if payable(day, set) {
			out = append(out, day)
		}
	}
	return out
}

// Calculate derives the monthly payslip. It is deterministic and
// side-effect-free: the same inputs always produce the same breakdown, so
// any past month can be recomputed for history browsing.
func Calculate(in Input) Payslip {
	first := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.UTC)
	slip := Payslip{
		EmployeeName:   in.EmployeeName,
		EmployeeNumber: in.EmployeeNumber,
		MonthYear:      first.Format("January 2006"),
		Year:           in.Year,
		Month:          int(in.Month),
		GrossSalary:    in.Salary,
	}

	set := holidaySet(in.Holidays)
	for day := first; day.Month() == in.Month; day = day.AddDate(0, 0, 1) {
		if payable(day, set) {
			slip.TotalPayableDays++
		}
	}

	// A month of nothing but rest days and holidays yields a flagged
	// all-zero slip rather than an error.
	if slip.TotalPayableDays == 0 {
		slip.GrossSalary = in.Salary
		slip.NoPayableDays = true
		return slip
	}

	slip.PerDaySalary = in.Salary / float64(slip.TotalPayableDays)

	for _, period := range in.ApprovedLeave {
		start := dateOnly(period.Start)
		end := dateOnly(period.End)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if day.Year() != in.Year || day.Month() != in.Month {
				continue
			}
			if payable(day, set) {
				slip.DeductibleLeaveDays++
			}
		}
	}

	slip.Deductions = float64(slip.DeductibleLeaveDays) * slip.PerDaySalary
	slip.NetSalary = in.Salary - slip.Deductions
	return slip
}
