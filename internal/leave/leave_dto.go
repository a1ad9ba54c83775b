package leave

type SubmitLeaveRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=vacation sick personal other"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// LeaveResponse is the stored record plus the inclusive day count the UI
// shows next to each request.
type LeaveResponse struct {
	Leave
	TotalDays int `json:"totalDays"`
}
