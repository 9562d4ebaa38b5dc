package roles

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreAPI interface {
	Assignments(ctx context.Context, empID int, editableOnly bool) ([]Assignment, error)
	Divisions(ctx context.Context) ([]Division, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) Assignments(ctx context.Context, empID int, editableOnly bool) ([]Assignment, error) {
	query := `
    SELECT er.erole_emp_code, er.erole_function_id, er.erole_function_code,
           er.erole_perform, er.erole_manage, er.erole_audit, er.erole_rescue,
           er.erole_define, er.erole_co_id, er.erole_division_code,
           COALESCE(d.division, ''), COALESCE(f.function_title, '')
    FROM employee_roles er
    JOIN employees e ON e.e_emp_code = er.erole_emp_code
    LEFT JOIN divisions d ON d.division_code = er.erole_division_code
    LEFT JOIN functions f ON f.function_id = er.erole_function_id
    WHERE e.e_emp_id = $1
  `
	if editableOnly {
		query += " AND er.erole_editable"
	}
	query += " ORDER BY er.erole_function_code"

	rows, err := s.DB.Query(ctx, query, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []Assignment{}
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(
			&a.Role.EmpCode, &a.Role.FunctionID, &a.Role.FunctionCode,
			&a.Role.Perform, &a.Role.Manage, &a.Role.Audit, &a.Role.Rescue,
			&a.Role.Define, &a.Role.CoID, &a.Role.DivisionCode,
			&a.Division, &a.FunctionTitle,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) Divisions(ctx context.Context) ([]Division, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT division_id, division, division_code, co_id, active_status
    FROM divisions
    WHERE active_status = 'Y'
    ORDER BY division
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	divisions := []Division{}
	for rows.Next() {
		var d Division
		if err := rows.Scan(&d.DivisionID, &d.Division, &d.DivisionCode, &d.CoID, &d.ActiveStatus); err != nil {
			return nil, err
		}
		divisions = append(divisions, d)
	}
	return divisions, rows.Err()
}
