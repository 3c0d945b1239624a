package calendar

import (
	"context"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
)

type Service struct {
	Leave *leave.Store
}

func NewService(leaveStore *leave.Store) *Service {
	return &Service{Leave: leaveStore}
}

// Feed fetches the window's holidays, approved leave, and the viewer's
// personal tasks and merges them with the synthetic rest-day markers.
func (s *Service) Feed(ctx context.Context, viewer auth.Actor, window Window) ([]Event, error) {
	holidays, err := s.Leave.HolidaysInWindow(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	requests, err := s.Leave.ApprovedInWindow(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Leave.TasksInWindow(ctx, viewer.UserID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return BuildFeed(viewer, window, holidays, requests, tasks), nil
}
