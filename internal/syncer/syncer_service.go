package syncer

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/shared/apperror"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/ids"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Pull(ctx context.Context) (Snapshot, error)
	Push(ctx context.Context, snap Snapshot) error
}

type service struct {
	db             *sql.DB
	employeeRepo   employee.Repository
	leaveRepo      leave.Repository
	attendanceRepo attendance.Repository
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	employeeRepo employee.Repository,
	leaveRepo leave.Repository,
	attendanceRepo attendance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("syncer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer.service")
	}
	return &service{
		db:             db,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		logger:         l,
	}
}

// Pull returns the complete server state. Employee nested fields come back
// decoded from their stored JSON text; the repository fails open to empty on
// corrupt values.
func (s *service) Pull(ctx context.Context) (Snapshot, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	emps, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("pull employees failed", zap.Error(err))
		return Snapshot{}, err
	}
	leaves, err := s.leaveRepo.FindAll(ctx)
	if err != nil {
		logger.Error("pull leaves failed", zap.Error(err))
		return Snapshot{}, err
	}
	recs, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		logger.Error("pull attendance failed", zap.Error(err))
		return Snapshot{}, err
	}

	if emps == nil {
		emps = []employee.Employee{}
	}
	if leaves == nil {
		leaves = []leave.Leave{}
	}
	if recs == nil {
		recs = []attendance.Attendance{}
	}

	return Snapshot{Employees: emps, Leaves: leaves, Attendance: recs}, nil
}

// Push upserts every pushed record by primary key, one batch statement per
// collection; there is no conflict detection, the last writer for a given id
// wins. Records arriving without an id get one synthesized.
func (s *service) Push(ctx context.Context, snap Snapshot) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	for i := range snap.Employees {
		if snap.Employees[i].ID == "" {
			snap.Employees[i].ID = ids.New(ids.PrefixEmployee)
		}
	}
	for i := range snap.Leaves {
		if snap.Leaves[i].ID == "" {
			snap.Leaves[i].ID = ids.New(ids.PrefixLeave)
		}
	}
	for i := range snap.Attendance {
		if snap.Attendance[i].ID == "" {
			snap.Attendance[i].ID = ids.New(ids.PrefixAttendance)
		}
	}

	if err := s.pushCollection(ctx, "employees", func(ctx context.Context, qtx pushRepos) error {
		return qtx.employees.UpsertAll(ctx, snap.Employees)
	}); err != nil {
		return err
	}
	if err := s.pushCollection(ctx, "leaves", func(ctx context.Context, qtx pushRepos) error {
		return qtx.leaves.UpsertAll(ctx, snap.Leaves)
	}); err != nil {
		return err
	}
	if err := s.pushCollection(ctx, "attendance", func(ctx context.Context, qtx pushRepos) error {
		return qtx.attendance.UpsertAll(ctx, snap.Attendance)
	}); err != nil {
		return err
	}

	logger.Info("push success",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("leaves", len(snap.Leaves)),
		zap.Int("attendance", len(snap.Attendance)),
	)
	return nil
}

type pushRepos struct {
	employees  employee.Repository
	leaves     leave.Repository
	attendance attendance.Repository
}

// pushCollection runs one collection's batch in its own transaction; the
// collections are deliberately independent, there is no cross-collection
// atomicity.
func (s *service) pushCollection(ctx context.Context, name string, fn func(context.Context, pushRepos) error) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("push begin tx failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := pushRepos{
		employees:  s.employeeRepo.WithTx(tx),
		leaves:     s.leaveRepo.WithTx(tx),
		attendance: s.attendanceRepo.WithTx(tx),
	}
	if err := fn(ctx, qtx); err != nil {
		// Fresh ids colliding with an existing unique key, such as a second
		// attendance record for the same user and date.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Wrap(err, apperror.CodeConflict,
				"pushed "+name+" conflict with existing records",
				http.StatusConflict,
			)
		}
		logger.Error("push batch failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	return tx.Commit()
}
