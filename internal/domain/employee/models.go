package employee

// Employee mirrors the e_* wire fields the dashboard binds to. The password
// hash never leaves the service.
type Employee struct {
	EmpID         int    `json:"e_emp_id"`
	EmpCode       string `json:"e_emp_code"`
	FullName      string `json:"e_fullname"`
	Designation   string `json:"e_designation"`
	Department    string `json:"e_department"`
	WorkLocation  string `json:"e_work_location"`
	Address       string `json:"e_address"`
	Email         string `json:"e_email"`
	Phone         string `json:"e_phone"`
	DOJ           string `json:"e_DOJ"`
	DOB           string `json:"e_DOB"`
	LastLoginDate string `json:"e_last_login_date"`
	Active        bool   `json:"e_active"`
	CreateDate    string `json:"e_create_date"`

	PasswordHash string `json:"-"`
}
