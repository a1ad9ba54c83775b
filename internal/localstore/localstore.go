// Package localstore is the client-side record store the sync bridge works
// against: one JSON file per collection under a root directory. Loads are
// fail-open, a missing or corrupt file yields the empty collection rather
// than an error, so bad state can't wedge the client. Saves replace the whole
// collection atomically via a temp file and rename.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"

	"go.uber.org/zap"
)

const (
	employeesFile  = "employees.json"
	leavesFile     = "leaves.json"
	attendanceFile = "attendance.json"
)

type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger ...*zap.Logger) *Store {
	l := zap.L().Named("localstore")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("localstore")
	}
	return &Store{dir: dir, logger: l}
}

func (s *Store) Employees() []employee.Employee {
	var emps []employee.Employee
	if !s.load(employeesFile, &emps) || emps == nil {
		return []employee.Employee{}
	}
	return emps
}

func (s *Store) SaveEmployees(emps []employee.Employee) error {
	return s.save(employeesFile, emps)
}

func (s *Store) Leaves() []leave.Leave {
	var leaves []leave.Leave
	if !s.load(leavesFile, &leaves) || leaves == nil {
		return []leave.Leave{}
	}
	return leaves
}

func (s *Store) SaveLeaves(leaves []leave.Leave) error {
	return s.save(leavesFile, leaves)
}

// Attendance is keyed by employee id, each value an ordered record list.
func (s *Store) Attendance() map[string][]attendance.Attendance {
	var recs map[string][]attendance.Attendance
	if !s.load(attendanceFile, &recs) || recs == nil {
		return map[string][]attendance.Attendance{}
	}
	return recs
}

func (s *Store) SaveAttendance(recs map[string][]attendance.Attendance) error {
	return s.save(attendanceFile, recs)
}

// load reports whether the file was read and decoded cleanly; on any failure
// the caller must discard v and fall back to the empty collection.
func (s *Store) load(name string, v any) bool {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("malformed stored payload, treating as empty",
			zap.String("file", path),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
