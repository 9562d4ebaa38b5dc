package weekly

// WeekSummary is one employee's self-reported week, in the ws_* wire shape.
// Field casing (ws_WFH, ws_Holidays) is part of the contract.
type WeekSummary struct {
	EmpID           int     `json:"ws_emp_id"`
	EmpCode         string  `json:"ws_emp_code"`
	StartDate       string  `json:"ws_start_date"`
	EndDate         string  `json:"ws_end_date"`
	Success         string  `json:"ws_success"`
	Challenges      string  `json:"ws_challenges"`
	UnfinishedTasks string  `json:"ws_unfinished_tasks"`
	NextActions     string  `json:"ws_next_actions"`
	WorkDays        int     `json:"ws_work_days"`
	WFH             int     `json:"ws_WFH"`
	WFO             int     `json:"ws_WFO"`
	Efforts         float64 `json:"ws_efforts"`
	Leaves          int     `json:"ws_leaves"`
	Holidays        int     `json:"ws_Holidays"`
	ExtraDays       int     `json:"ws_extra_days"`
	SubmittedOn     string  `json:"ws_submitted_on"`
	Status          string  `json:"ws_status"`
	WeekNumber      int     `json:"ws_week_number"`
	CoID            int     `json:"ws_co_id"`
	WeekID          int     `json:"ws_week_id"`
	AvailableHours  float64 `json:"ws_available_hours"`
	CreatedOn       string  `json:"ws_created_on"`
	ActiveStatus    string  `json:"ws_active_status"`
}

// WeekStats aggregates the summaries the dashboard shows below the table.
type WeekStats struct {
	WeekDays         int     `json:"ws_stats_week_days"`
	Holidays         int     `json:"ws_stats_holidays"`
	LeavesTaken      int     `json:"ws_stats_leaves_taken"`
	HoursAvailable   float64 `json:"ws_stats_hours_available"`
	HoursLogged      float64 `json:"ws_stats_hours_logged"`
	ExtraHoursWorked float64 `json:"ws_stats_extra_hours_worked"`
	ExtraHoursPct    float64 `json:"ws_stats_extra_hours_percentage"`
}

// WeekListing is the per-week row of the weeklisting endpoint: calendar data
// joined with whatever summary exists for the employee.
type WeekListing struct {
	WeekID            int     `json:"week_id"`
	WeekNumber        int     `json:"week_number"`
	StartDate         string  `json:"week_start_date"`
	EndDate           string  `json:"week_end_date"`
	WorkingDays       int     `json:"week_working_days"`
	Holidays          int     `json:"week_holidays"`
	DailyWorkingHours int     `json:"daily_working_hours"`
	EmpID             int     `json:"week_emp_id"`
	EmpCode           string  `json:"week_emp_code"`
	WFH               int     `json:"week_WFH"`
	WFO               int     `json:"week_WFO"`
	Efforts           float64 `json:"week_efforts"`
	Leaves            int     `json:"week_leaves"`
	ExtraDays         int     `json:"week_extra_days"`
	SubmittedOn       string  `json:"week_submitted_on"`
	Status            string  `json:"week_status"`
	ActiveStatus      string  `json:"ws_active_status"`
}

// RowKey identifies a single editable row for getwsrow/getwgrow.
type RowKey struct {
	GoalRecID  int    `json:"goal_rec_id"`
	EmpID      int    `json:"emp_id"`
	EmpCode    string `json:"emp_code"`
	WeekNumber int    `json:"week_number"`
	CoID       int    `json:"co_id"`
	WeekID     int    `json:"week_id"`
}

// SummaryPage is the ws endpoint response body.
type SummaryPage struct {
	WeekSummary []WeekSummary `json:"weekSummary"`
	WeekStats   *WeekStats    `json:"weekStats,omitempty"`
}
