package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/platform/config"
)

// Seed ensures the root supervisor account exists. Everything else is
// created through registration.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedRootEmail == "" || cfg.SeedRootPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE employee_number = $1", cfg.RootEmployeeNumber).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedRootPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (employee_number, name, email, joined_on, password_hash, role, salary)
    VALUES ($1, $2, $3, CURRENT_DATE, $4, $5, 0)
  `, cfg.RootEmployeeNumber, cfg.SeedRootName, cfg.SeedRootEmail, hash, auth.RoleSupervisor)
	return err
}
