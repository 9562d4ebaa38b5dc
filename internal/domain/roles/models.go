package roles

// Role is one functional-role assignment in the erole_* wire shape. The
// responsibility columns are 0/1 flags (Perform/Manage/Audit/Rescue/Define).
type Role struct {
	EmpCode      string `json:"erole_emp_code"`
	FunctionID   int    `json:"erole_function_id"`
	FunctionCode string `json:"erole_function_code"`
	Perform      int    `json:"erole_perform"`
	Manage       int    `json:"erole_manage"`
	Audit        int    `json:"erole_audit"`
	Rescue       int    `json:"erole_rescue"`
	Define       int    `json:"erole_define"`
	CoID         int    `json:"erole_co_id"`
	DivisionCode string `json:"erole_division_code"`
}

// Assignment pairs a role row with its display context, matching what the
// roles view binds to.
type Assignment struct {
	Role          Role   `json:"Role"`
	Division      string `json:"Division"`
	FunctionTitle string `json:"FunctionTitle"`
}

type Division struct {
	DivisionID   int    `json:"division_id"`
	Division     string `json:"division"`
	DivisionCode string `json:"division_code"`
	CoID         int    `json:"co_id"`
	ActiveStatus string `json:"active_status"`
}

// Sheet is the flagged roles endpoint body: assignments scoped by the flag
// plus the division list the edit sheet offers.
type Sheet struct {
	Roles     []Assignment `json:"roles"`
	Divisions []Division   `json:"divisions"`
}

// Flags select which assignments the roles endpoint returns.
const (
	FlagAll      = "A"
	FlagEditable = "E"
)
