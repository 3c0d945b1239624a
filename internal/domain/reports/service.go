package reports

import (
	"context"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type Breakdown struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type DashboardStats struct {
	TotalEmployees     int       `json:"totalEmployees"`
	OnLeaveToday       int       `json:"onLeaveToday"`
	PendingRequests    int       `json:"pendingRequests"`
	LeaveTypeBreakdown Breakdown `json:"leaveTypeBreakdown"`
	LeaveTrend         Breakdown `json:"leaveTrend"`
}

// Dashboard aggregates the analytics view: headcount, today's absences,
// pending approvals, this month's approved-leave mix, and a six-month
// approved-leave trend.
func (s *Service) Dashboard(ctx context.Context, actor auth.Actor, now time.Time) (DashboardStats, error) {
	if !directory.CanViewAnalytics(actor) {
		return DashboardStats{}, directory.ErrForbidden
	}

	var stats DashboardStats
	var err error
	if stats.TotalEmployees, err = s.Store.TotalEmployees(ctx); err != nil {
		return stats, err
	}
	if stats.OnLeaveToday, err = s.Store.OnLeave(ctx, now); err != nil {
		return stats, err
	}
	if stats.PendingRequests, err = s.Store.PendingRequests(ctx); err != nil {
		return stats, err
	}

	breakdown, err := s.Store.LeaveTypeBreakdown(ctx, now.Year(), now.Month())
	if err != nil {
		return stats, err
	}
	stats.LeaveTypeBreakdown = Breakdown{Labels: []string{}, Data: []int{}}
	for leaveType, count := range breakdown {
		stats.LeaveTypeBreakdown.Labels = append(stats.LeaveTypeBreakdown.Labels, leaveType)
		stats.LeaveTypeBreakdown.Data = append(stats.LeaveTypeBreakdown.Data, count)
	}

	stats.LeaveTrend = Breakdown{Labels: []string{}, Data: []int{}}
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	for i := 0; i < 6; i++ {
		count, err := s.Store.ApprovedStartingIn(ctx, cursor.Year(), cursor.Month())
		if err != nil {
			return stats, err
		}
		stats.LeaveTrend.Labels = append(stats.LeaveTrend.Labels, cursor.Format("January 2006"))
		stats.LeaveTrend.Data = append(stats.LeaveTrend.Data, count)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return stats, nil
}
