package leave

import (
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

// CanRespond decides approval authority: the root supervisor may decide any
// request, otherwise only the direct supervisor of the request's owner.
func CanRespond(actor auth.Actor, ownerSupervisorID string) bool {
	if actor.Root {
		return true
	}
	return ownerSupervisorID != "" && ownerSupervisorID == actor.UserID
}

// StatusForDecision maps a decision to the terminal status it produces.
func StatusForDecision(decision string) (string, bool) {
	switch decision {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionDecline:
		return StatusDeclined, true
	}
	return "", false
}

// TotalDays returns the inclusive day count of a leave period.
func TotalDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
