package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	JoinDate   string   `json:"joinDate" binding:"required"`
	Address    string   `json:"address"`
	Photo      string   `json:"photo"`
	Resume     string   `json:"resume"`
	Skills     []string `json:"skills"`
}

// UpdateEmployeeRequest is an explicit patch: nil means "leave unchanged".
// ID, LoginID and Password additionally ignore empty-string values so a
// partial form submit can never wipe credentials.
type UpdateEmployeeRequest struct {
	ID             *string   `json:"id"`
	LoginID        *string   `json:"loginId"`
	Password       *string   `json:"password"`
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Department     *string   `json:"department"`
	Position       *string   `json:"position"`
	Avatar         *string   `json:"avatar"`
	Phone          *string   `json:"phone"`
	Address        *string   `json:"address"`
	Photo          *string   `json:"photo"`
	Resume         *string   `json:"resume"`
	Skills         *[]string `json:"skills"`
	Certifications *[]string `json:"certifications"`
	Salary         *Salary   `json:"salary"`
	PrivateInfo    *string   `json:"privateInfo"`
}

// CreatedEmployeeResponse carries the generated credentials exactly once, at
// creation time, so HR can hand them to the new hire.
type CreatedEmployeeResponse struct {
	ID       string   `json:"id"`
	Employee Employee `json:"employee"`
	LoginID  string   `json:"loginId"`
	Password string   `json:"password"`
}

type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Success bool      `json:"success"`
	User    *Employee `json:"user,omitempty"`
	Error   string    `json:"error,omitempty"`
}
