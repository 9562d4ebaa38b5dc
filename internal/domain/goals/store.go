package goals

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const goalColumns = `
    goal_rec_id, goal_emp_id, goal_emp_code, goal_week_id, goal_week_number,
    goals_week_co_id, goal_id, goal_title, goal_description, goal_target,
    goal_action_performed, goal_challenges, goal_unfinished_tasks,
    goal_weekly_next_actions, goal_status, goal_effort, goal_own_rating,
    goal_auditor_rating, goal_auditor_comments, goal_data_source_description,
    goal_team_members, goal_week_start_date, goal_week_end_date
`

func scanGoal(row pgx.Row) (Goal, error) {
	var g Goal
	err := row.Scan(
		&g.RecID, &g.EmpID, &g.EmpCode, &g.WeekID, &g.WeekNumber,
		&g.WeekCoID, &g.GoalID, &g.Title, &g.Description, &g.Target,
		&g.ActionPerformed, &g.Challenges, &g.UnfinishedTasks,
		&g.WeeklyNextActions, &g.Status, &g.Effort, &g.OwnRating,
		&g.AuditorRating, &g.AuditorComments, &g.DataSourceDescription,
		&g.TeamMembers, &g.WeekStartDate, &g.WeekEndDate,
	)
	return g, err
}

func (s *Store) ListByEmp(ctx context.Context, empID int, weeks []int) ([]Goal, error) {
	query := "SELECT " + goalColumns + " FROM goals WHERE goal_emp_id = $1"
	args := []any{empID}
	if len(weeks) > 0 {
		query += " AND goal_week_number = ANY($2)"
		args = append(args, weeks)
	}
	query += " ORDER BY goal_id, goal_week_number"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (s *Store) GetRow(ctx context.Context, recID int) (Goal, error) {
	return scanGoal(s.DB.QueryRow(ctx, "SELECT "+goalColumns+" FROM goals WHERE goal_rec_id = $1", recID))
}

// UpsertRow updates by goal_rec_id when the caller has one, inserts
// otherwise, and returns the record id either way. Last write wins.
func (s *Store) UpsertRow(ctx context.Context, row Goal) (int, error) {
	if row.RecID > 0 {
		_, err := s.DB.Exec(ctx, `
      UPDATE goals SET
          goal_action_performed = $1, goal_challenges = $2,
          goal_unfinished_tasks = $3, goal_weekly_next_actions = $4,
          goal_status = $5, goal_effort = $6, goal_own_rating = $7,
          goal_auditor_rating = $8, goal_auditor_comments = $9,
          goal_data_source_description = $10, goal_team_members = $11
      WHERE goal_rec_id = $12
    `, row.ActionPerformed, row.Challenges, row.UnfinishedTasks,
			row.WeeklyNextActions, row.Status, row.Effort, row.OwnRating,
			row.AuditorRating, row.AuditorComments, row.DataSourceDescription,
			row.TeamMembers, row.RecID)
		return row.RecID, err
	}

	var recID int
	err := s.DB.QueryRow(ctx, `
    INSERT INTO goals (
        goal_emp_id, goal_emp_code, goal_week_id, goal_week_number,
        goals_week_co_id, goal_id, goal_title, goal_description, goal_target,
        goal_action_performed, goal_challenges, goal_unfinished_tasks,
        goal_weekly_next_actions, goal_status, goal_effort, goal_own_rating,
        goal_auditor_rating, goal_auditor_comments,
        goal_data_source_description, goal_team_members,
        goal_week_start_date, goal_week_end_date
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
    RETURNING goal_rec_id
  `, row.EmpID, row.EmpCode, row.WeekID, row.WeekNumber, row.WeekCoID,
		row.GoalID, row.Title, row.Description, row.Target, row.ActionPerformed,
		row.Challenges, row.UnfinishedTasks, row.WeeklyNextActions, row.Status,
		row.Effort, row.OwnRating, row.AuditorRating, row.AuditorComments,
		row.DataSourceDescription, row.TeamMembers, row.WeekStartDate,
		row.WeekEndDate).Scan(&recID)
	return recID, err
}

func (s *Store) Catalog(ctx context.Context, empID int) ([]CatalogEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT c.id, c.division, c.division_code, c.division_id, c.goal_id,
           c.goal_title, c.description, c.target_value, c.unit_of_measure,
           c.period, c.data_source_description, c.red_threshold,
           c.orange_threshold, c.co_id, c.active_status
    FROM goal_catalog c
    WHERE c.active_status = 'Y'
      AND c.division_code IN (
        SELECT er.erole_division_code
        FROM employee_roles er
        JOIN employees e ON e.e_emp_code = er.erole_emp_code
        WHERE e.e_emp_id = $1
      )
    ORDER BY c.goal_id
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []CatalogEntry{}
	for rows.Next() {
		var c CatalogEntry
		if err := rows.Scan(
			&c.ID, &c.Division, &c.DivisionCode, &c.DivisionID, &c.GoalID,
			&c.Title, &c.Description, &c.TargetValue, &c.UnitOfMeasure,
			&c.Period, &c.DataSourceDescription, &c.RedThreshold,
			&c.OrangeThreshold, &c.CoID, &c.ActiveStatus,
		); err != nil {
			return nil, err
		}
		entries = append(entries, c)
	}
	return entries, rows.Err()
}
