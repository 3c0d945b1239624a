package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDeclined = "Declined"

	TypeOther = "Other"

	HolidayTypePublic       = "public"
	HolidayTypeCompanyEvent = "company_event"
)

const (
	DecisionApprove = "approve"
	DecisionDecline = "decline"
)

type LeaveRequest struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName,omitempty"`
	EmployeeNumber   string    `json:"employeeNumber,omitempty"`
	SupervisorID     string    `json:"-"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Reason           string    `json:"reason"`
	LeaveType        string    `json:"leaveType"`
	Team             string    `json:"team,omitempty"`
	Project          string    `json:"project,omitempty"`
	TeamLeaderName   string    `json:"teamLeaderName,omitempty"`
	TeamLeaderMobile string    `json:"teamLeaderMobile,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Holiday struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type PersonalTask struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
