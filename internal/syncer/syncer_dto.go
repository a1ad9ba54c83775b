package syncer

import (
	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
)

// Snapshot is the full remote state of all three collections, the unit the
// sync bridge exchanges. Employee records travel complete, passwords
// included: the bridge replicates state, it does not redact.
type Snapshot struct {
	Employees  []employee.Employee     `json:"employees"`
	Leaves     []leave.Leave           `json:"leaves"`
	Attendance []attendance.Attendance `json:"attendance"`
}
