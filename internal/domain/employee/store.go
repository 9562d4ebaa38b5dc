package employee

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const employeeColumns = `
    e_emp_id, e_emp_code, e_fullname, e_designation, e_department,
    e_work_location, e_address, e_email, e_phone, e_doj, e_dob,
    e_password_hash, e_last_login_date, e_active, e_create_date
`

func (s *Store) ByCode(ctx context.Context, empCode string) (Employee, error) {
	return s.scanOne(ctx, "SELECT "+employeeColumns+" FROM employees WHERE e_emp_code = $1", empCode)
}

func (s *Store) ByUsername(ctx context.Context, username string) (Employee, error) {
	return s.scanOne(ctx, "SELECT "+employeeColumns+" FROM employees WHERE e_emp_code = $1 OR e_email = $1", username)
}

func (s *Store) TouchLastLogin(ctx context.Context, empID int, when string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET e_last_login_date = $1 WHERE e_emp_id = $2", when, empID)
	return err
}

func (s *Store) scanOne(ctx context.Context, query string, args ...any) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, query, args...).Scan(
		&e.EmpID, &e.EmpCode, &e.FullName, &e.Designation, &e.Department,
		&e.WorkLocation, &e.Address, &e.Email, &e.Phone, &e.DOJ, &e.DOB,
		&e.PasswordHash, &e.LastLoginDate, &e.Active, &e.CreateDate,
	)
	return e, err
}
