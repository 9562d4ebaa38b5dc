package weekly

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const summaryColumns = `
    ws_emp_id, ws_emp_code, ws_start_date, ws_end_date, ws_success,
    ws_challenges, ws_unfinished_tasks, ws_next_actions, ws_work_days,
    ws_wfh, ws_wfo, ws_efforts, ws_leaves, ws_holidays, ws_extra_days,
    ws_submitted_on, ws_status, ws_week_number, ws_co_id, ws_week_id,
    ws_available_hours, ws_created_on, ws_active_status
`

func scanSummary(row pgx.Row) (WeekSummary, error) {
	var ws WeekSummary
	err := row.Scan(
		&ws.EmpID, &ws.EmpCode, &ws.StartDate, &ws.EndDate, &ws.Success,
		&ws.Challenges, &ws.UnfinishedTasks, &ws.NextActions, &ws.WorkDays,
		&ws.WFH, &ws.WFO, &ws.Efforts, &ws.Leaves, &ws.Holidays, &ws.ExtraDays,
		&ws.SubmittedOn, &ws.Status, &ws.WeekNumber, &ws.CoID, &ws.WeekID,
		&ws.AvailableHours, &ws.CreatedOn, &ws.ActiveStatus,
	)
	return ws, err
}

func (s *Store) ListSummaries(ctx context.Context, empID int) ([]WeekSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+summaryColumns+`
    FROM week_summaries
    WHERE ws_emp_id = $1 AND ws_active_status = 'Y'
    ORDER BY ws_week_number DESC
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []WeekSummary{}
	for rows.Next() {
		ws, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ws)
	}
	return summaries, rows.Err()
}

// Stats aggregates over the employee's active summaries. The second return
// reports whether any rows contributed.
func (s *Store) Stats(ctx context.Context, empID int) (WeekStats, bool, error) {
	var st WeekStats
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(ws_work_days), 0),
           COALESCE(SUM(ws_holidays), 0),
           COALESCE(SUM(ws_leaves), 0),
           COALESCE(SUM(ws_available_hours), 0),
           COALESCE(SUM(ws_efforts), 0),
           COALESCE(SUM(GREATEST(ws_efforts - ws_available_hours, 0)), 0)
    FROM week_summaries
    WHERE ws_emp_id = $1 AND ws_active_status = 'Y'
  `, empID).Scan(&count, &st.WeekDays, &st.Holidays, &st.LeavesTaken,
		&st.HoursAvailable, &st.HoursLogged, &st.ExtraHoursWorked)
	if err != nil {
		return WeekStats{}, false, err
	}
	return st, count > 0, nil
}

func (s *Store) WeekListing(ctx context.Context, empID, limit int) ([]WeekListing, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT w.week_id, w.week_number, w.week_start_date, w.week_end_date,
           w.week_working_days, w.week_holidays, w.daily_working_hours,
           COALESCE(ws.ws_emp_id, $1), COALESCE(ws.ws_emp_code, ''),
           COALESCE(ws.ws_wfh, 0), COALESCE(ws.ws_wfo, 0),
           COALESCE(ws.ws_efforts, 0), COALESCE(ws.ws_leaves, 0),
           COALESCE(ws.ws_extra_days, 0), COALESCE(ws.ws_submitted_on, ''),
           COALESCE(ws.ws_status, 'U'), COALESCE(ws.ws_active_status, 'Y')
    FROM weeks w
    LEFT JOIN week_summaries ws ON ws.ws_week_id = w.week_id AND ws.ws_emp_id = $1
    ORDER BY w.week_number DESC
    LIMIT $2
  `, empID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []WeekListing{}
	for rows.Next() {
		var wl WeekListing
		if err := rows.Scan(
			&wl.WeekID, &wl.WeekNumber, &wl.StartDate, &wl.EndDate,
			&wl.WorkingDays, &wl.Holidays, &wl.DailyWorkingHours,
			&wl.EmpID, &wl.EmpCode, &wl.WFH, &wl.WFO, &wl.Efforts,
			&wl.Leaves, &wl.ExtraDays, &wl.SubmittedOn, &wl.Status,
			&wl.ActiveStatus,
		); err != nil {
			return nil, err
		}
		listings = append(listings, wl)
	}
	return listings, rows.Err()
}

// FreshWeek returns a blank summary template for a calendar week: calendar
// fields filled in, counters zeroed, status U.
func (s *Store) FreshWeek(ctx context.Context, empID, weekID int) (WeekSummary, error) {
	var ws WeekSummary
	var workingDays, dailyHours int
	err := s.DB.QueryRow(ctx, `
    SELECT w.week_number, w.co_id, w.week_start_date, w.week_end_date,
           w.week_working_days, w.week_holidays, w.daily_working_hours,
           e.e_emp_code
    FROM weeks w, employees e
    WHERE w.week_id = $1 AND e.e_emp_id = $2
  `, weekID, empID).Scan(&ws.WeekNumber, &ws.CoID, &ws.StartDate, &ws.EndDate,
		&workingDays, &ws.Holidays, &dailyHours, &ws.EmpCode)
	if err != nil {
		return WeekSummary{}, err
	}

	ws.EmpID = empID
	ws.WeekID = weekID
	ws.WorkDays = workingDays
	ws.AvailableHours = float64(workingDays * dailyHours)
	ws.Status = "U"
	ws.ActiveStatus = "Y"
	ws.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	return ws, nil
}

func (s *Store) GetRow(ctx context.Context, key RowKey) (WeekSummary, error) {
	return scanSummary(s.DB.QueryRow(ctx, `
    SELECT `+summaryColumns+`
    FROM week_summaries
    WHERE ws_emp_id = $1 AND ws_week_id = $2 AND ws_co_id = $3
  `, key.EmpID, key.WeekID, key.CoID))
}

// UpsertRow is last-write-wins on (emp, week); the frontend re-fetches to
// observe the effect.
func (s *Store) UpsertRow(ctx context.Context, row WeekSummary) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO week_summaries (
        ws_emp_id, ws_emp_code, ws_week_id, ws_co_id, ws_week_number,
        ws_start_date, ws_end_date, ws_success, ws_challenges,
        ws_unfinished_tasks, ws_next_actions, ws_work_days, ws_wfh, ws_wfo,
        ws_efforts, ws_leaves, ws_holidays, ws_extra_days,
        ws_available_hours, ws_submitted_on, ws_status, ws_created_on,
        ws_active_status
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
    ON CONFLICT (ws_emp_id, ws_week_id) DO UPDATE SET
        ws_success = EXCLUDED.ws_success,
        ws_challenges = EXCLUDED.ws_challenges,
        ws_unfinished_tasks = EXCLUDED.ws_unfinished_tasks,
        ws_next_actions = EXCLUDED.ws_next_actions,
        ws_work_days = EXCLUDED.ws_work_days,
        ws_wfh = EXCLUDED.ws_wfh,
        ws_wfo = EXCLUDED.ws_wfo,
        ws_efforts = EXCLUDED.ws_efforts,
        ws_leaves = EXCLUDED.ws_leaves,
        ws_holidays = EXCLUDED.ws_holidays,
        ws_extra_days = EXCLUDED.ws_extra_days,
        ws_available_hours = EXCLUDED.ws_available_hours,
        ws_submitted_on = EXCLUDED.ws_submitted_on,
        ws_status = EXCLUDED.ws_status,
        ws_active_status = EXCLUDED.ws_active_status
  `,
		row.EmpID, row.EmpCode, row.WeekID, row.CoID, row.WeekNumber,
		row.StartDate, row.EndDate, row.Success, row.Challenges,
		row.UnfinishedTasks, row.NextActions, row.WorkDays, row.WFH, row.WFO,
		row.Efforts, row.Leaves, row.Holidays, row.ExtraDays,
		row.AvailableHours, row.SubmittedOn, row.Status, row.CreatedOn,
		row.ActiveStatus,
	)
	return err
}
