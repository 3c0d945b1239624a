package leave

import (
	"context"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type SubmitInput struct {
	StartDate        time.Time
	EndDate          time.Time
	Reason           string
	LeaveType        string
	Team             string
	Project          string
	TeamLeaderName   string
	TeamLeaderMobile string
}

// Submit files a new leave request for the acting employee. Requests always
// start out Pending.
func (s *Service) Submit(ctx context.Context, actor auth.Actor, in SubmitInput) (LeaveRequest, error) {
	if in.EndDate.Before(in.StartDate) {
		return LeaveRequest{}, ErrInvalidRange
	}
	leaveType := in.LeaveType
	if leaveType == "" {
		leaveType = TypeOther
	}
	id, err := s.Store.CreateRequest(ctx, LeaveRequest{
		EmployeeID:       actor.UserID,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Reason:           in.Reason,
		LeaveType:        leaveType,
		Team:             in.Team,
		Project:          in.Project,
		TeamLeaderName:   in.TeamLeaderName,
		TeamLeaderMobile: in.TeamLeaderMobile,
	})
	if err != nil {
		return LeaveRequest{}, err
	}
	return s.Store.RequestByID(ctx, id)
}

// Respond transitions a pending request to Approved or Declined. Both
// outcomes are terminal; the approval is visible to payroll and the
// calendar feed on their next read.
func (s *Service) Respond(ctx context.Context, actor auth.Actor, requestID, decision string) (LeaveRequest, error) {
	status, ok := StatusForDecision(decision)
	if !ok {
		return LeaveRequest{}, ErrInvalidState
	}

	request, err := s.Store.RequestByID(ctx, requestID)
	if err != nil {
		return LeaveRequest{}, err
	}
	if !CanRespond(actor, request.SupervisorID) {
		return LeaveRequest{}, ErrForbidden
	}
	if request.Status != StatusPending {
		return LeaveRequest{}, ErrInvalidState
	}

	if err := s.Store.SetStatus(ctx, requestID, status, actor.UserID); err != nil {
		return LeaveRequest{}, err
	}
	return s.Store.RequestByID(ctx, requestID)
}

// Pending returns the requests awaiting the actor's decision: all pending
// requests for the root supervisor, direct reports' requests otherwise.
func (s *Service) Pending(ctx context.Context, actor auth.Actor) ([]LeaveRequest, error) {
	if actor.Root {
		return s.Store.PendingForSupervisor(ctx, "")
	}
	if !actor.IsSupervisor() {
		return nil, ErrForbidden
	}
	return s.Store.PendingForSupervisor(ctx, actor.UserID)
}

func (s *Service) Own(ctx context.Context, actor auth.Actor, limit int) ([]LeaveRequest, error) {
	return s.Store.RequestsByEmployee(ctx, actor.UserID, limit)
}

// Letter returns a request for letter rendering. Employees may only fetch
// their own.
func (s *Service) Letter(ctx context.Context, actor auth.Actor, requestID string) (LeaveRequest, error) {
	request, err := s.Store.RequestByID(ctx, requestID)
	if err != nil {
		return LeaveRequest{}, err
	}
	if actor.Role == auth.RoleEmployee && request.EmployeeID != actor.UserID {
		return LeaveRequest{}, ErrForbidden
	}
	return request, nil
}

func (s *Service) AddHoliday(ctx context.Context, actor auth.Actor, date time.Time, name, holidayType string) (Holiday, error) {
	if !actor.IsHR() {
		return Holiday{}, ErrForbidden
	}
	if holidayType == "" {
		holidayType = HolidayTypePublic
	}
	id, err := s.Store.CreateHoliday(ctx, date, name, holidayType)
	if err != nil {
		return Holiday{}, err
	}
	return Holiday{ID: id, Date: date, Name: name, Type: holidayType}, nil
}

func (s *Service) RemoveHoliday(ctx context.Context, actor auth.Actor, id string) error {
	if !actor.IsHR() {
		return ErrForbidden
	}
	return s.Store.DeleteHoliday(ctx, id)
}

func (s *Service) AddTask(ctx context.Context, actor auth.Actor, date time.Time, description string) (PersonalTask, error) {
	task := PersonalTask{EmployeeID: actor.UserID, Date: date, Description: description}
	id, err := s.Store.CreateTask(ctx, task)
	if err != nil {
		return PersonalTask{}, err
	}
	task.ID = id
	return task, nil
}
