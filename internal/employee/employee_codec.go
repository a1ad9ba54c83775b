package employee

import "encoding/json"

// employeeRow is the SQLite shape of an employee. Skills, certifications and
// salary are stored as JSON text; the column names match the table the web
// client's sync push has always written to.
type employeeRow struct {
	ID             string `gorm:"column:id;primaryKey"`
	LoginID        string `gorm:"column:loginId;uniqueIndex"`
	Password       string `gorm:"column:password"`
	Name           string `gorm:"column:name"`
	Email          string `gorm:"column:email"`
	Role           string `gorm:"column:role"`
	Department     string `gorm:"column:department"`
	Position       string `gorm:"column:position"`
	Avatar         string `gorm:"column:avatar"`
	JoinDate       string `gorm:"column:joinDate"`
	Phone          string `gorm:"column:phone"`
	Address        string `gorm:"column:address"`
	Photo          string `gorm:"column:photo"`
	Resume         string `gorm:"column:resume"`
	Skills         string `gorm:"column:skills"`
	Certifications string `gorm:"column:certifications"`
	Salary         string `gorm:"column:salary"`
	PrivateInfo    string `gorm:"column:privateInfo"`
}

func (employeeRow) TableName() string {
	return "employees"
}

func encodeRow(e Employee) employeeRow {
	return employeeRow{
		ID:             e.ID,
		LoginID:        e.LoginID,
		Password:       e.Password,
		Name:           e.Name,
		Email:          e.Email,
		Role:           e.Role,
		Department:     e.Department,
		Position:       e.Position,
		Avatar:         e.Avatar,
		JoinDate:       e.JoinDate,
		Phone:          e.Phone,
		Address:        e.Address,
		Photo:          e.Photo,
		Resume:         e.Resume,
		Skills:         encodeStringList(e.Skills),
		Certifications: encodeStringList(e.Certifications),
		Salary:         encodeSalary(e.Salary),
		PrivateInfo:    e.PrivateInfo,
	}
}

func decodeRow(r employeeRow) Employee {
	return Employee{
		ID:             r.ID,
		LoginID:        r.LoginID,
		Password:       r.Password,
		Name:           r.Name,
		Email:          r.Email,
		Role:           r.Role,
		Department:     r.Department,
		Position:       r.Position,
		Avatar:         r.Avatar,
		JoinDate:       r.JoinDate,
		Phone:          r.Phone,
		Address:        r.Address,
		Photo:          r.Photo,
		Resume:         r.Resume,
		Skills:         decodeStringList(r.Skills),
		Certifications: decodeStringList(r.Certifications),
		Salary:         decodeSalary(r.Salary),
		PrivateInfo:    r.PrivateInfo,
	}
}

func encodeStringList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeStringList is fail-open: corrupt stored text becomes the empty list
// rather than an error that would block the whole collection.
func decodeStringList(s string) []string {
	if s == "" {
		return []string{}
	}
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return []string{}
	}
	return v
}

func encodeSalary(v *Salary) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func decodeSalary(s string) *Salary {
	if s == "" || s == "null" {
		return nil
	}
	var v Salary
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return &v
}
