package leave

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeVacation = "vacation"
	TypeSick     = "sick"
	TypePersonal = "personal"
	TypeOther    = "other"
)

// Leave is one employee's request for a contiguous, inclusive date range off.
// UserName is a snapshot of the employee's name at request time and is kept
// even after the employee record is deleted.
type Leave struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	UserID    string `gorm:"column:userId;index" json:"userId"`
	UserName  string `gorm:"column:userName" json:"userName"`
	Type      string `gorm:"column:type" json:"type"`
	StartDate string `gorm:"column:startDate" json:"startDate"`
	EndDate   string `gorm:"column:endDate" json:"endDate"`
	Reason    string `gorm:"column:reason" json:"reason"`
	Status    string `gorm:"column:status" json:"status"`
	AppliedOn string `gorm:"column:appliedOn" json:"appliedOn"`
}

func (Leave) TableName() string {
	return "leaves"
}
