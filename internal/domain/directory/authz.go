package directory

import "github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"

// The capability matrix below is the single place where role checks on
// directory records live. Every function takes the acting identity
// explicitly; none of them touch storage.

func CanRegister(actor auth.Actor) bool {
	return actor.Root || actor.IsSupervisor() || actor.IsHR()
}

// NewUserRole applies the registration rule: HR (and root) may pick any
// valid role, a plain supervisor always registers employees.
func NewUserRole(actor auth.Actor, requested string) string {
	if (actor.IsHR() || actor.Root) && auth.ValidRole(requested) {
		return requested
	}
	return auth.RoleEmployee
}

func CanEdit(actor auth.Actor, target Employee) bool {
	if actor.IsHR() || actor.Root {
		return true
	}
	return actor.IsSupervisor() && target.SupervisorID == actor.UserID
}

// CanAssignOrg reports whether the actor may change role and supervisor
// linkage on another user.
func CanAssignOrg(actor auth.Actor) bool {
	return actor.IsHR() || actor.Root
}

func CanRemove(actor auth.Actor, target Employee) bool {
	if target.ID == actor.UserID {
		return false
	}
	if actor.IsHR() || actor.Root {
		return true
	}
	return actor.IsSupervisor() && target.SupervisorID == actor.UserID
}

func CanViewAnalytics(actor auth.Actor) bool {
	return actor.Root || actor.IsSupervisor() || actor.IsHR()
}

func CanViewPayrollReport(actor auth.Actor) bool {
	return actor.Root
}
