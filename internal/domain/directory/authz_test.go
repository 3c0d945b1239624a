package directory

import (
	"testing"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

var (
	rootActor  = auth.Actor{UserID: "u-root", Role: auth.RoleSupervisor, Root: true}
	supActor   = auth.Actor{UserID: "u-sup", Role: auth.RoleSupervisor}
	hrActor    = auth.Actor{UserID: "u-hr", Role: auth.RoleHR}
	plainActor = auth.Actor{UserID: "u-emp", Role: auth.RoleEmployee}
)

func TestCanRegister(t *testing.T) {
	if !CanRegister(rootActor) || !CanRegister(supActor) || !CanRegister(hrActor) {
		t.Fatal("root, supervisor and hr may register users")
	}
	if CanRegister(plainActor) {
		t.Fatal("employees must not register users")
	}
}

func TestNewUserRole(t *testing.T) {
	if got := NewUserRole(hrActor, auth.RoleSupervisor); got != auth.RoleSupervisor {
		t.Fatalf("hr picked supervisor, got %q", got)
	}
	if got := NewUserRole(rootActor, auth.RoleHR); got != auth.RoleHR {
		t.Fatalf("root picked hr, got %q", got)
	}
	if got := NewUserRole(hrActor, "chief"); got != auth.RoleEmployee {
		t.Fatalf("invalid requested role must fall back to employee, got %q", got)
	}
	if got := NewUserRole(supActor, auth.RoleHR); got != auth.RoleEmployee {
		t.Fatalf("plain supervisor always registers employees, got %q", got)
	}
}

func TestCanEdit(t *testing.T) {
	report := Employee{ID: "u-a", SupervisorID: "u-sup"}
	stranger := Employee{ID: "u-b", SupervisorID: "u-other"}

	if !CanEdit(hrActor, stranger) || !CanEdit(rootActor, stranger) {
		t.Fatal("hr and root may edit anyone")
	}
	if !CanEdit(supActor, report) {
		t.Fatal("supervisor may edit a direct report")
	}
	if CanEdit(supActor, stranger) {
		t.Fatal("supervisor must not edit someone else's report")
	}
	if CanEdit(plainActor, report) {
		t.Fatal("employees must not edit records")
	}
}

func TestCanRemove(t *testing.T) {
	self := Employee{ID: hrActor.UserID}
	report := Employee{ID: "u-a", SupervisorID: "u-sup"}

	if CanRemove(hrActor, self) {
		t.Fatal("nobody removes their own account")
	}
	if !CanRemove(hrActor, report) || !CanRemove(rootActor, report) {
		t.Fatal("hr and root may remove users")
	}
	if !CanRemove(supActor, report) {
		t.Fatal("supervisor may remove a direct report")
	}
	if CanRemove(supActor, Employee{ID: "u-b", SupervisorID: "u-other"}) {
		t.Fatal("supervisor must not remove outside their reports")
	}
}

func TestAnalyticsAndPayrollGates(t *testing.T) {
	if CanViewAnalytics(plainActor) {
		t.Fatal("employees have no analytics access")
	}
	if !CanViewAnalytics(supActor) || !CanViewAnalytics(hrActor) {
		t.Fatal("supervisors and hr see analytics")
	}
	if CanViewPayrollReport(hrActor) || CanViewPayrollReport(supActor) {
		t.Fatal("payroll report is root only")
	}
	if !CanViewPayrollReport(rootActor) {
		t.Fatal("root sees the payroll report")
	}
}
