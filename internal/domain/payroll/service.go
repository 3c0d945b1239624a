package payroll

import (
	"context"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
)

type Service struct {
	Directory *directory.Store
	Leave     *leave.Store
}

func NewService(directoryStore *directory.Store, leaveStore *leave.Store) *Service {
	return &Service{Directory: directoryStore, Leave: leaveStore}
}

func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

func (s *Service) payslipFor(ctx context.Context, employee directory.Employee, year int, month time.Month) (Payslip, error) {
	start, end := monthWindow(year, month)
	holidays, err := s.Leave.HolidaysInWindow(ctx, start, end)
	if err != nil {
		return Payslip{}, err
	}
	approved, err := s.Leave.ApprovedByEmployee(ctx, employee.ID)
	if err != nil {
		return Payslip{}, err
	}

	in := Input{
		EmployeeName:   employee.Name,
		EmployeeNumber: employee.Number,
		Salary:         employee.Salary,
		Year:           year,
		Month:          month,
	}
	for _, h := range holidays {
		in.Holidays = append(in.Holidays, h.Date)
	}
	for _, r := range approved {
		in.ApprovedLeave = append(in.ApprovedLeave, Period{Start: r.StartDate, End: r.EndDate})
	}
	return Calculate(in), nil
}

// Payslip computes the acting employee's slip for one month. Nothing is
// persisted; every request recomputes from current records.
func (s *Service) Payslip(ctx context.Context, actor auth.Actor, year int, month time.Month) (Payslip, error) {
	employee, err := s.Directory.ByID(ctx, actor.UserID)
	if err != nil {
		return Payslip{}, err
	}
	return s.payslipFor(ctx, employee, year, month)
}

// History recomputes one payslip per month from the joining date up to now,
// newest first.
func (s *Service) History(ctx context.Context, actor auth.Actor, now time.Time) ([]Payslip, error) {
	employee, err := s.Directory.ByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	var slips []Payslip
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	joined := time.Date(employee.JoinedOn.Year(), employee.JoinedOn.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.Before(joined) {
		slip, err := s.payslipFor(ctx, employee, cursor.Year(), cursor.Month())
		if err != nil {
			return nil, err
		}
		slips = append(slips, slip)
		cursor = cursor.AddDate(0, -1, 0)
	}
	return slips, nil
}

// Report computes the current month's payslip for every employee. Root
// supervisor only.
func (s *Service) Report(ctx context.Context, actor auth.Actor, now time.Time, search, role string) ([]Payslip, error) {
	if !directory.CanViewPayrollReport(actor) {
		return nil, directory.ErrForbidden
	}
	employees, err := s.Directory.List(ctx, search, role)
	if err != nil {
		return nil, err
	}

	slips := make([]Payslip, 0, len(employees))
	for _, employee := range employees {
		slip, err := s.payslipFor(ctx, employee, now.Year(), now.Month())
		if err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, nil
}
