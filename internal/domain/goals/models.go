package goals

// Goal is one weekly goal row in the goal_* wire shape.
type Goal struct {
	RecID                 int     `json:"goal_rec_id"`
	EmpID                 int     `json:"goal_emp_id"`
	EmpCode               string  `json:"goal_emp_code"`
	WeekID                int     `json:"goal_week_id"`
	WeekNumber            int     `json:"goal_week_number"`
	WeekCoID              int     `json:"goals_week_co_id"`
	GoalID                string  `json:"goal_id"`
	Title                 string  `json:"goal_title"`
	Description           string  `json:"goal_description"`
	Target                string  `json:"goal_target"`
	ActionPerformed       string  `json:"goal_action_performed"`
	Challenges            string  `json:"goal_challenges"`
	UnfinishedTasks       string  `json:"goal_unfinished_tasks"`
	WeeklyNextActions     string  `json:"goal_weekly_next_actions"`
	Status                string  `json:"goal_status"`
	Effort                float64 `json:"goal_effort"`
	OwnRating             string  `json:"goal_own_rating"`
	AuditorRating         string  `json:"goal_auditor_rating"`
	AuditorComments       string  `json:"goal_auditor_comments"`
	DataSourceDescription string  `json:"goal_data_source_description"`
	TeamMembers           string  `json:"goal_team_members"`
	WeekStartDate         string  `json:"goal_week_start_date"`
	WeekEndDate           string  `json:"goal_week_end_date"`
}

// Summary is the per-goal effort rollup shown under the weekly goal table.
type Summary struct {
	EmpID             int     `json:"goal_es_emp_id"`
	EmpCode           string  `json:"goal_es_emp_code"`
	GoalID            string  `json:"goal_es_id"`
	Title             string  `json:"goal_es_title"`
	Description       string  `json:"goal_es_description"`
	Effort            float64 `json:"goal_es_effort"`
	EffortsPercentage float64 `json:"goal_es_efforts_percentage"`
}

// CatalogEntry is a goal definition from the employee's function catalog.
type CatalogEntry struct {
	ID                    int    `json:"id"`
	Division              string `json:"division"`
	DivisionCode          string `json:"division_code"`
	DivisionID            int    `json:"division_id"`
	GoalID                string `json:"goal_id"`
	Title                 string `json:"goal_title"`
	Description           string `json:"description"`
	TargetValue           string `json:"target_value"`
	UnitOfMeasure         string `json:"unit_of_measure"`
	Period                string `json:"period"`
	DataSourceDescription string `json:"data_source_description"`
	RedThreshold          string `json:"red_threshold"`
	OrangeThreshold       string `json:"orange_threshold"`
	CoID                  int    `json:"co_id"`
	ActiveStatus          string `json:"active_status"`
}

// Page is the wg endpoint response body.
type Page struct {
	Goals        []Goal    `json:"goals"`
	GoalsSummary []Summary `json:"goalsSummary"`
}
