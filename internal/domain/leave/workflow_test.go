package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

func TestCanRespond(t *testing.T) {
	root := auth.Actor{UserID: "u-root", Role: auth.RoleSupervisor, Root: true}
	supervisor := auth.Actor{UserID: "u-sup", Role: auth.RoleSupervisor}
	other := auth.Actor{UserID: "u-other", Role: auth.RoleSupervisor}
	hr := auth.Actor{UserID: "u-hr", Role: auth.RoleHR}

	if !CanRespond(root, "u-sup") {
		t.Fatal("root must be able to decide any request")
	}
	if !CanRespond(root, "") {
		t.Fatal("root must be able to decide requests with no supervisor")
	}
	if !CanRespond(supervisor, "u-sup") {
		t.Fatal("direct supervisor must be able to decide")
	}
	if CanRespond(other, "u-sup") {
		t.Fatal("unrelated supervisor must not decide")
	}
	if CanRespond(hr, "u-sup") {
		t.Fatal("hr without root must not decide")
	}
	if CanRespond(supervisor, "") {
		t.Fatal("no supervisor on record means only root decides")
	}
}

func TestStatusForDecision(t *testing.T) {
	status, ok := StatusForDecision(DecisionApprove)
	if !ok || status != StatusApproved {
		t.Fatalf("approve mapped to %q", status)
	}
	status, ok = StatusForDecision(DecisionDecline)
	if !ok || status != StatusDeclined {
		t.Fatalf("decline mapped to %q", status)
	}
	if _, ok := StatusForDecision("escalate"); ok {
		t.Fatal("unknown decision must not map")
	}
}

func TestTotalDays(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	got, err := TotalDays(start, start)
	if err != nil || got != 1 {
		t.Fatalf("single day period = %d, err %v", got, err)
	}

	got, err = TotalDays(start, start.AddDate(0, 0, 4))
	if err != nil || got != 5 {
		t.Fatalf("five day period = %d, err %v", got, err)
	}

	if _, err := TotalDays(start, start.AddDate(0, 0, -1)); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("reversed range error = %v", err)
	}
}
