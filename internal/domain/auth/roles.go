package auth

// Roles form a closed set. The root supervisor is not a role of its own:
// it is the supervisor account whose employee number matches the configured
// root number, and it is carried on the actor as a flag.
const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleHR         = "hr"
)

var AllRoles = []string{RoleEmployee, RoleSupervisor, RoleHR}

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleSupervisor, RoleHR:
		return true
	}
	return false
}

// Actor is the authenticated identity threaded explicitly through every
// workflow call.
type Actor struct {
	UserID         string
	EmployeeNumber string
	Name           string
	Role           string
	Root           bool
}

func (a Actor) IsSupervisor() bool { return a.Role == RoleSupervisor }
func (a Actor) IsHR() bool         { return a.Role == RoleHR }
