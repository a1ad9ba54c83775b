package employee

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Salary is the nested compensation breakdown; every component is optional.
type Salary struct {
	Base       *float64 `json:"base,omitempty"`
	Bonus      *float64 `json:"bonus,omitempty"`
	Deductions *float64 `json:"deductions,omitempty"`
	Net        *float64 `json:"net,omitempty"`
}

// Employee is the directory record as the engines see it. Skills,
// certifications and salary are typed fields here; their JSON-text form
// exists only inside the repository.
type Employee struct {
	ID             string   `json:"id"`
	LoginID        string   `json:"loginId"`
	Password       string   `json:"password,omitempty"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	Department     string   `json:"department"`
	Position       string   `json:"position"`
	Avatar         string   `json:"avatar"`
	JoinDate       string   `json:"joinDate"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Photo          string   `json:"photo,omitempty"`
	Resume         string   `json:"resume,omitempty"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Salary         *Salary  `json:"salary"`
	PrivateInfo    string   `json:"privateInfo,omitempty"`
}

// Sanitized returns a copy safe to hand to callers: the password never leaves
// the directory engine except through the one-time create response.
func (e Employee) Sanitized() Employee {
	e.Password = ""
	return e
}
