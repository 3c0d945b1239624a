package directory

import "time"

type Employee struct {
	ID           string    `json:"id"`
	Number       string    `json:"employeeNumber"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	JoinedOn     time.Time `json:"joinedOn"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Salary       float64   `json:"salary"`
	SupervisorID string    `json:"supervisorId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
