package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type RegisterInput struct {
	Number       string
	Name         string
	Email        string
	Phone        string
	Address      string
	JoinedOn     time.Time
	Password     string
	Role         string
	Salary       float64
	SupervisorID string
}

// Register creates a new employee. A supervisor registers employees under
// themselves; HR and the root supervisor may pick role and supervisor
// explicitly.
func (s *Service) Register(ctx context.Context, actor auth.Actor, in RegisterInput) (Employee, error) {
	if !CanRegister(actor) {
		return Employee{}, ErrForbidden
	}

	exists, err := s.Store.Exists(ctx, in.Number, in.Email)
	if err != nil {
		return Employee{}, err
	}
	if exists {
		return Employee{}, ErrDuplicate
	}

	role := NewUserRole(actor, in.Role)
	supervisorID := ""
	if actor.IsSupervisor() && !actor.Root {
		supervisorID = actor.UserID
	} else if in.SupervisorID != "" {
		if err := s.checkSupervisorRef(ctx, in.SupervisorID, ""); err != nil {
			return Employee{}, err
		}
		supervisorID = in.SupervisorID
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{
		Number:       strings.TrimSpace(in.Number),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        in.Phone,
		Address:      in.Address,
		JoinedOn:     in.JoinedOn,
		PasswordHash: hash,
		Role:         role,
		Salary:       in.Salary,
		SupervisorID: supervisorID,
	}
	id, err := s.Store.Create(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	return s.Store.ByID(ctx, id)
}

type UpdateInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Salary       float64
	Role         string
	SupervisorID string
}

// Update edits another user's core fields. Role and supervisor linkage only
// change when the actor is HR or root.
func (s *Service) Update(ctx context.Context, actor auth.Actor, targetID string, in UpdateInput) (Employee, error) {
	target, err := s.Store.ByID(ctx, targetID)
	if err != nil {
		return Employee{}, err
	}
	if !CanEdit(actor, target) {
		return Employee{}, ErrForbidden
	}

	if err := s.Store.UpdateCore(ctx, targetID, in.Name, in.Email, in.Phone, in.Address, in.Salary); err != nil {
		return Employee{}, err
	}

	if CanAssignOrg(actor) {
		role := target.Role
		if auth.ValidRole(in.Role) {
			role = in.Role
		}
		if in.SupervisorID != "" {
			if err := s.checkSupervisorRef(ctx, in.SupervisorID, targetID); err != nil {
				return Employee{}, err
			}
		}
		if err := s.Store.UpdateOrg(ctx, targetID, role, in.SupervisorID); err != nil {
			return Employee{}, err
		}
	}
	return s.Store.ByID(ctx, targetID)
}

// ChangePassword is the self-service profile operation and requires the
// current password.
func (s *Service) ChangePassword(ctx context.Context, actor auth.Actor, current, next string) error {
	self, err := s.Store.ByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if err := auth.CheckPassword(self.PasswordHash, current); err != nil {
		return errors.New("current password is incorrect")
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.Store.UpdatePassword(ctx, actor.UserID, hash)
}

// Remove deletes a user. Removing a supervisor detaches their direct
// reports; the removed user's leave history goes with them.
func (s *Service) Remove(ctx context.Context, actor auth.Actor, targetID string) error {
	target, err := s.Store.ByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.ID == actor.UserID {
		return ErrSelfRemoval
	}
	if !CanRemove(actor, target) {
		return ErrForbidden
	}
	return s.Store.Remove(ctx, targetID)
}

func (s *Service) checkSupervisorRef(ctx context.Context, supervisorID, targetID string) error {
	if supervisorID == targetID {
		return ErrInvalidSupervisor
	}
	sup, err := s.Store.ByID(ctx, supervisorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidSupervisor
		}
		return err
	}
	if sup.Role != auth.RoleSupervisor {
		return ErrInvalidSupervisor
	}
	return nil
}
