package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, employee_number, name, email, phone, address, joined_on,
  password_hash, role, salary, COALESCE(supervisor_id::text, ''), created_at
`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.Number, &e.Name, &e.Email, &e.Phone, &e.Address,
		&e.JoinedOn, &e.PasswordHash, &e.Role, &e.Salary, &e.SupervisorID, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return e, err
}

func (s *Store) Create(ctx context.Context, e Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (employee_number, name, email, phone, address, joined_on, password_hash, role, salary, supervisor_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NULLIF($10,'')::uuid)
    RETURNING id
  `, e.Number, e.Name, e.Email, e.Phone, e.Address, e.JoinedOn, e.PasswordHash, e.Role, e.Salary, e.SupervisorID).Scan(&id)
	return id, err
}

func (s *Store) ByID(ctx context.Context, id string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, "SELECT "+employeeColumns+" FROM users WHERE id = $1", id))
}

func (s *Store) ByNumber(ctx context.Context, number string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, "SELECT "+employeeColumns+" FROM users WHERE employee_number = $1", number))
}

func (s *Store) Exists(ctx context.Context, number, email string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM users WHERE employee_number = $1 OR email = $2",
		number, email).Scan(&count)
	return count > 0, err
}

// List returns employees ordered by name, optionally narrowed by a
// case-insensitive name/number search and a role filter.
func (s *Store) List(ctx context.Context, search, role string) ([]Employee, error) {
	query := "SELECT " + employeeColumns + " FROM users WHERE 1=1"
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += " AND (name ILIKE $1 OR employee_number ILIKE $1)"
	}
	if role != "" {
		args = append(args, role)
		if len(args) == 1 {
			query += " AND role = $1"
		} else {
			query += " AND role = $2"
		}
	}
	query += " ORDER BY name"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (s *Store) Supervisors(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+employeeColumns+" FROM users WHERE role = $1 ORDER BY name", "supervisor")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (s *Store) DirectReports(ctx context.Context, supervisorID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+employeeColumns+" FROM users WHERE supervisor_id = $1 ORDER BY name", supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]Employee, error) {
	var out []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCore(ctx context.Context, id, name, email, phone, address string, salary float64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users SET name = $1, email = $2, phone = $3, address = $4, salary = $5
    WHERE id = $6
  `, name, email, phone, address, salary, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateOrg(ctx context.Context, id, role, supervisorID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users SET role = $1, supervisor_id = NULLIF($2,'')::uuid
    WHERE id = $3
  `, role, supervisorID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id, hash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", hash, id)
	return err
}

// Remove deletes the user inside one transaction: direct reports are
// detached, the user's leave requests and personal tasks are deleted, then
// the user row itself.
func (s *Store) Remove(ctx context.Context, id string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "UPDATE users SET supervisor_id = NULL WHERE supervisor_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM leave_requests WHERE employee_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM personal_tasks WHERE employee_id = $1", id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
