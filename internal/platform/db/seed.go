package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/employee"
	"pms/internal/platform/config"
)

// Seed provisions the demo employee, a division with one function, the
// calendar weeks for the current year, and a small goal catalog. Every
// step is idempotent so restarts are safe.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureDivision(ctx, pool); err != nil {
		return err
	}
	if err := ensureFunction(ctx, pool); err != nil {
		return err
	}
	if err := ensureEmployee(ctx, pool, cfg.SeedEmpCode, cfg.SeedPassword); err != nil {
		return err
	}
	if err := ensureEmployeeRole(ctx, pool, cfg.SeedEmpCode); err != nil {
		return err
	}
	if err := ensureWeeks(ctx, pool); err != nil {
		return err
	}
	return ensureGoalCatalog(ctx, pool)
}

func ensureDivision(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO divisions (division, division_code, co_id, active_status)
    VALUES ('Compliance', 'KYC', 1, 'Y')
    ON CONFLICT (division_code) DO NOTHING
  `)
	return err
}

func ensureFunction(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO functions (function_code, function_title, division_code)
    VALUES ('KYC-AN', 'KYC Analyst', 'KYC')
    ON CONFLICT (function_code) DO NOTHING
  `)
	return err
}

func ensureEmployee(ctx context.Context, pool *pgxpool.Pool, empCode, password string) error {
	if empCode == "" || password == "" {
		return nil
	}

	var exists int
	err := pool.QueryRow(ctx, "SELECT 1 FROM employees WHERE e_emp_code = $1", empCode).Scan(&exists)
	if err == nil {
		return nil
	}

	hash, err := employee.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO employees (
        e_emp_code, e_fullname, e_designation, e_department, e_work_location,
        e_email, e_doj, e_password_hash, e_active, e_create_date
    ) VALUES ($1, 'Demo Analyst', 'Analyst', 'Compliance', 'Remote',
              $2, $3, $4, true, $3)
  `, empCode, empCode+"@example.com",
		time.Now().UTC().Format("2006-01-02"), hash)
	return err
}

func ensureEmployeeRole(ctx context.Context, pool *pgxpool.Pool, empCode string) error {
	if empCode == "" {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO employee_roles (
        erole_emp_code, erole_function_id, erole_function_code,
        erole_perform, erole_co_id, erole_division_code, erole_editable
    )
    SELECT $1, f.function_id, f.function_code, 1, 1, f.division_code, true
    FROM functions f
    WHERE f.function_code = 'KYC-AN'
      AND EXISTS (SELECT 1 FROM employees WHERE e_emp_code = $1)
    ON CONFLICT (erole_emp_code, erole_function_id) DO NOTHING
  `, empCode)
	return err
}

// ensureWeeks fills the calendar from the first Monday of the year up to
// the current week.
func ensureWeeks(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, 1)
	}

	for week := 1; !start.After(now); week++ {
		end := start.AddDate(0, 0, 4)
		_, err := pool.Exec(ctx, `
      INSERT INTO weeks (co_id, week_number, week_start_date, week_end_date,
                         week_working_days, week_holidays, daily_working_hours)
      VALUES (1, $1, $2, $3, 5, 0, 8)
      ON CONFLICT (co_id, week_number) DO NOTHING
    `, week, start.Format("2006-01-02"), end.Format("2006-01-02"))
		if err != nil {
			return err
		}
		start = start.AddDate(0, 0, 7)
	}
	return nil
}

func ensureGoalCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM goal_catalog").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := []struct {
		goalID, title, description, target, unit, period string
	}{
		{"KYC-01", "Case throughput", "Close assigned review cases", "40", "cases", "weekly"},
		{"KYC-02", "Quality score", "Keep rework below threshold", "95", "percent", "weekly"},
		{"KYC-03", "Process documentation", "Keep runbooks current", "1", "updates", "weekly"},
	}
	for i, e := range entries {
		_, err := pool.Exec(ctx, `
      INSERT INTO goal_catalog (
          division, division_code, division_id, goal_id, goal_title,
          description, target_value, unit_of_measure, period, co_id,
          active_status
      ) VALUES ('Compliance', 'KYC', 1, $1, $2, $3, $4, $5, $6, 1, 'Y')
    `, e.goalID, e.title, e.description, e.target, e.unit, e.period)
		if err != nil {
			return fmt.Errorf("seed goal catalog entry %d: %w", i, err)
		}
	}
	return nil
}
