package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) TotalEmployees(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users").Scan(&total)
	return total, err
}

func (s *Store) OnLeave(ctx context.Context, day time.Time) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM leave_requests
    WHERE status = $1 AND start_date <= $2 AND end_date >= $2
  `, leave.StatusApproved, day).Scan(&count)
	return count, err
}

func (s *Store) PendingRequests(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_requests WHERE status = $1", leave.StatusPending).Scan(&count)
	return count, err
}

// LeaveTypeBreakdown counts approved requests per leave type among requests
// starting in the given month.
func (s *Store) LeaveTypeBreakdown(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT leave_type, COUNT(1)
    FROM leave_requests
    WHERE status = $1
      AND EXTRACT(YEAR FROM start_date) = $2
      AND EXTRACT(MONTH FROM start_date) = $3
    GROUP BY leave_type
  `, leave.StatusApproved, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var leaveType string
		var count int
		if err := rows.Scan(&leaveType, &count); err != nil {
			return nil, err
		}
		out[leaveType] = count
	}
	return out, rows.Err()
}

func (s *Store) ApprovedStartingIn(ctx context.Context, year int, month time.Month) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM leave_requests
    WHERE status = $1
      AND EXTRACT(YEAR FROM start_date) = $2
      AND EXTRACT(MONTH FROM start_date) = $3
  `, leave.StatusApproved, year, int(month)).Scan(&count)
	return count, err
}
