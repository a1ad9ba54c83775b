package attendance

// RecordRequest is the raw record body accepted by POST /api/attendance,
// the shape the sync-testing client has always sent.
type RecordRequest struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	HoursWorked float64 `json:"hoursWorked"`
	Status      string  `json:"status"`
}

// MonthlyStats aggregates one employee's records for the current calendar
// month.
type MonthlyStats struct {
	DaysPresent      int     `json:"daysPresent"`
	TotalHoursWorked float64 `json:"totalHoursWorked"`
	AvgHoursPerDay   float64 `json:"avgHoursPerDay"`
	LeavesTaken      int     `json:"leavesTaken"`
}
