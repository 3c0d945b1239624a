package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const requestColumns = `
  r.id, r.employee_id, e.name, e.employee_number, COALESCE(e.supervisor_id::text, ''),
  r.start_date, r.end_date, r.reason, r.leave_type,
  r.team, r.project, r.team_leader_name, r.team_leader_mobile,
  r.status, r.created_at
`

func scanRequest(row pgx.Row) (LeaveRequest, error) {
	var r LeaveRequest
	err := row.Scan(&r.ID, &r.EmployeeID, &r.EmployeeName, &r.EmployeeNumber, &r.SupervisorID,
		&r.StartDate, &r.EndDate, &r.Reason, &r.LeaveType,
		&r.Team, &r.Project, &r.TeamLeaderName, &r.TeamLeaderMobile,
		&r.Status, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, ErrNotFound
	}
	return r, err
}

func collectRequests(rows pgx.Rows) ([]LeaveRequest, error) {
	var out []LeaveRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) CreateRequest(ctx context.Context, r LeaveRequest) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason, leave_type, team, project, team_leader_name, team_leader_mobile, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id
  `, r.EmployeeID, r.StartDate, r.EndDate, r.Reason, r.LeaveType, r.Team, r.Project, r.TeamLeaderName, r.TeamLeaderMobile, StatusPending).Scan(&id)
	return id, err
}

func (s *Store) RequestByID(ctx context.Context, id string) (LeaveRequest, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests r
    JOIN users e ON r.employee_id = e.id
    WHERE r.id = $1
  `, id))
}

func (s *Store) RequestsByEmployee(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error) {
	query := `
    SELECT ` + requestColumns + `
    FROM leave_requests r
    JOIN users e ON r.employee_id = e.id
    WHERE r.employee_id = $1
    ORDER BY r.start_date DESC
  `
	args := []any{employeeID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// PendingForSupervisor lists pending requests of the supervisor's direct
// reports; pass an empty supervisorID for the root view over all pending
// requests.
func (s *Store) PendingForSupervisor(ctx context.Context, supervisorID string) ([]LeaveRequest, error) {
	query := `
    SELECT ` + requestColumns + `
    FROM leave_requests r
    JOIN users e ON r.employee_id = e.id
    WHERE r.status = $1
  `
	args := []any{StatusPending}
	if supervisorID != "" {
		query += " AND e.supervisor_id = $2"
		args = append(args, supervisorID)
	}
	query += " ORDER BY r.start_date"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// SetStatus applies a terminal decision. The status guard in the statement
// keeps a lost approval race from re-deciding an already decided request.
func (s *Store) SetStatus(ctx context.Context, id, status, decidedBy string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, decided_by = $2, decided_at = now()
    WHERE id = $3 AND status = $4
  `, status, decidedBy, id, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

func (s *Store) ApprovedByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests r
    JOIN users e ON r.employee_id = e.id
    WHERE r.employee_id = $1 AND r.status = $2
  `, employeeID, StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ApprovedInWindow lists approved requests whose period overlaps the window.
func (s *Store) ApprovedInWindow(ctx context.Context, start, end time.Time) ([]LeaveRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests r
    JOIN users e ON r.employee_id = e.id
    WHERE r.status = $1 AND r.start_date <= $3 AND r.end_date >= $2
    ORDER BY r.start_date
  `, StatusApproved, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// CreateHoliday relies on the unique constraint on the date column rather
// than a pre-check, so concurrent inserts of the same date still surface as
// a duplicate.
func (s *Store) CreateHoliday(ctx context.Context, date time.Time, name, holidayType string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO holidays (date, name, type) VALUES ($1,$2,$3) RETURNING id
  `, date, name, holidayType).Scan(&id)
	if isUniqueViolation(err) {
		return "", ErrDuplicateDay
	}
	return id, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpcomingHolidays(ctx context.Context, from time.Time) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, date, name, type, created_at FROM holidays WHERE date >= $1 ORDER BY date
  `, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHolidays(rows)
}

func (s *Store) HolidaysInWindow(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, date, name, type, created_at FROM holidays WHERE date BETWEEN $1 AND $2 ORDER BY date
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]Holiday, error) {
	var out []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) CreateTask(ctx context.Context, t PersonalTask) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO personal_tasks (employee_id, date, description) VALUES ($1,$2,$3) RETURNING id
  `, t.EmployeeID, t.Date, t.Description).Scan(&id)
	return id, err
}

func (s *Store) TasksInWindow(ctx context.Context, employeeID string, start, end time.Time) ([]PersonalTask, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, description, created_at
    FROM personal_tasks
    WHERE employee_id = $1 AND date BETWEEN $2 AND $3
    ORDER BY date
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PersonalTask
	for rows.Next() {
		var t PersonalTask
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Date, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
