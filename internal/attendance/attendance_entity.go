package attendance

// Canonical status set. A day marked "leave" comes in through the raw record
// endpoint or a sync push; check-in/check-out only ever produce the other
// values except "absent", which is derived, never stored.
const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusLeave      = "leave"
	StatusCheckedOut = "checked-out"
)

// Attendance is one row per employee per calendar day. Column names match the
// table the web client's sync push has always written to. CheckIn/CheckOut
// hold a wall-clock time of day like "09:00:00 AM"; HoursWorked is computed
// at checkout, never user-entered.
type Attendance struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	UserID      string  `gorm:"column:userId;index:idx_attendance_user_date,unique" json:"userId"`
	Date        string  `gorm:"column:date;index:idx_attendance_user_date,unique" json:"date"`
	CheckIn     string  `gorm:"column:checkIn" json:"checkIn,omitempty"`
	CheckOut    string  `gorm:"column:checkOut" json:"checkOut,omitempty"`
	HoursWorked float64 `gorm:"column:hoursWorked" json:"hoursWorked"`
	Status      string  `gorm:"column:status" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
