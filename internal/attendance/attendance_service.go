package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	attendanceerrors "dayflow/internal/attendance/errors"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/ids"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const statusCacheKeyPrefix = "attendance:status:"

const statusCacheTTL = time.Minute

func statusCacheKey(date string) string {
	return statusCacheKeyPrefix + date
}

type Service interface {
	CheckIn(ctx context.Context, userID string) (Attendance, error)
	CheckOut(ctx context.Context, userID string) (*Attendance, error)
	History(ctx context.Context, userID string) ([]Attendance, error)
	MonthlyStats(ctx context.Context, userID string) (MonthlyStats, error)
	CurrentStatus(ctx context.Context, userID string) (string, error)
	AllStatuses(ctx context.Context) (map[string]string, error)
	Record(ctx context.Context, req RecordRequest) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService wires the attendance engine. rdb may be nil, which disables the
// dashboard status cache.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// CheckIn opens today's record for the employee. Checking in again on the
// same day is a no-op that returns the existing record unchanged.
func (s *service) CheckIn(ctx context.Context, userID string) (Attendance, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	now := time.Now()
	today := now.Format(dateLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("check-in begin tx failed", zap.Error(err))
		return Attendance{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByUserAndDate(ctx, userID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("check-in lookup failed", zap.Error(err))
		return Attendance{}, err
	}

	if existing != nil {
		if existing.CheckIn != "" {
			logger.Debug("check-in repeated, no-op",
				zap.String("user_id", userID),
				zap.String("date", today),
			)
			return *existing, nil
		}
		// Record exists without a check-in (e.g. a synced leave day turned
		// into a working day): fill it in.
		existing.CheckIn = formatClock(now)
		existing.Status = StatusPresent
		if err := qtx.Update(ctx, existing); err != nil {
			logger.Error("check-in update failed", zap.Error(err))
			return Attendance{}, err
		}
		if err := tx.Commit(); err != nil {
			return Attendance{}, err
		}
		s.invalidateStatusCache(ctx, today)
		return *existing, nil
	}

	rec := Attendance{
		ID:          ids.New(ids.PrefixAttendance),
		UserID:      userID,
		Date:        today,
		CheckIn:     formatClock(now),
		HoursWorked: 0,
		Status:      StatusPresent,
	}
	if err := qtx.Create(ctx, &rec); err != nil {
		logger.Error("check-in persist failed", zap.Error(err))
		return Attendance{}, err
	}
	if err := tx.Commit(); err != nil {
		return Attendance{}, err
	}

	s.invalidateStatusCache(ctx, today)
	logger.Info("check-in success",
		zap.String("user_id", userID),
		zap.String("date", today),
		zap.String("check_in", rec.CheckIn),
	)
	return rec, nil
}

// CheckOut closes today's record and computes the hours worked. When there is
// nothing to close (no record, never checked in, or already checked out) it
// returns the current record unmodified, or nil when no record exists.
func (s *service) CheckOut(ctx context.Context, userID string) (*Attendance, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	now := time.Now()
	today := now.Format(dateLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("check-out begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("check-out without record, no change", zap.String("user_id", userID))
			return nil, nil
		}
		logger.Error("check-out lookup failed", zap.Error(err))
		return nil, err
	}
	if rec.CheckIn == "" || rec.CheckOut != "" {
		logger.Debug("check-out not applicable, no change",
			zap.String("user_id", userID),
			zap.String("date", today),
		)
		return rec, nil
	}

	rec.CheckOut = formatClock(now)
	rec.Status = StatusCheckedOut
	if hours, ok := hoursBetween(rec.CheckIn, rec.CheckOut); ok {
		rec.HoursWorked = hours
	}

	if err := qtx.Update(ctx, rec); err != nil {
		logger.Error("check-out persist failed", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateStatusCache(ctx, today)
	logger.Info("check-out success",
		zap.String("user_id", userID),
		zap.String("date", today),
		zap.Float64("hours_worked", rec.HoursWorked),
	)
	return rec, nil
}

func (s *service) History(ctx context.Context, userID string) ([]Attendance, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("history failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// MonthlyStats aggregates the employee's records for the current calendar
// month: days present (present or checked-out), total and average hours, and
// leave days.
func (s *service) MonthlyStats(ctx context.Context, userID string) (MonthlyStats, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("monthly stats failed", zap.Error(err))
		return MonthlyStats{}, err
	}
	return aggregateMonth(rows, time.Now()), nil
}

func aggregateMonth(rows []Attendance, now time.Time) MonthlyStats {
	monthPrefix := now.Format("2006-01")

	var stats MonthlyStats
	for _, r := range rows {
		if !strings.HasPrefix(r.Date, monthPrefix) {
			continue
		}
		switch r.Status {
		case StatusPresent, StatusCheckedOut:
			stats.DaysPresent++
			stats.TotalHoursWorked += r.HoursWorked
		case StatusLeave:
			stats.LeavesTaken++
		}
	}
	stats.TotalHoursWorked = round2(stats.TotalHoursWorked)
	if stats.DaysPresent > 0 {
		stats.AvgHoursPerDay = round1(stats.TotalHoursWorked / float64(stats.DaysPresent))
	}
	return stats
}

// CurrentStatus derives today's display status: present while checked in,
// leave on a leave day, absent otherwise (including after checkout).
func (s *service) CurrentStatus(ctx context.Context, userID string) (string, error) {
	today := time.Now().Format(dateLayout)
	rec, err := s.repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusAbsent, nil
		}
		return "", err
	}
	return deriveStatus(rec), nil
}

func deriveStatus(rec *Attendance) string {
	if rec == nil {
		return StatusAbsent
	}
	switch rec.Status {
	case StatusLeave:
		return StatusLeave
	case StatusPresent:
		return StatusPresent
	default:
		return StatusAbsent
	}
}

// AllStatuses maps every employee with attendance history to today's derived
// status, for the HR dashboard. The result is cached briefly and the cache is
// dropped on every check-in/check-out.
func (s *service) AllStatuses(ctx context.Context) (map[string]string, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	today := time.Now().Format(dateLayout)
	cacheKey := statusCacheKey(today)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var statuses map[string]string
			if json.Unmarshal([]byte(cached), &statuses) == nil {
				return statuses, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		userIDs, err := s.repo.DistinctUserIDs(ctx)
		if err != nil {
			return nil, err
		}
		todays, err := s.repo.FindByDate(ctx, today)
		if err != nil {
			return nil, err
		}

		statuses := make(map[string]string, len(userIDs))
		for _, uid := range userIDs {
			statuses[uid] = StatusAbsent
		}
		for i := range todays {
			statuses[todays[i].UserID] = deriveStatus(&todays[i])
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(statuses); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, statusCacheTTL)
			}
		}
		return statuses, nil
	})
	if err != nil {
		logger.Error("all statuses failed", zap.Error(err))
		return nil, err
	}
	return v.(map[string]string), nil
}

// Record inserts or replaces one raw record, synthesizing an id when missing.
func (s *service) Record(ctx context.Context, req RecordRequest) (string, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	rec := Attendance{
		ID:          req.ID,
		UserID:      req.UserID,
		Date:        req.Date,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		HoursWorked: req.HoursWorked,
		Status:      req.Status,
	}
	if rec.ID == "" {
		rec.ID = ids.New(ids.PrefixAttendance)
	}

	if err := s.repo.UpsertAll(ctx, []Attendance{rec}); err != nil {
		// A fresh id colliding with an existing (userId, date) pair trips the
		// unique index instead of the primary-key upsert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", attendanceerrors.ErrDuplicateDay
		}
		logger.Error("record upsert failed", zap.Error(err))
		return "", err
	}

	s.invalidateStatusCache(ctx, rec.Date)
	return rec.ID, nil
}

func (s *service) invalidateStatusCache(ctx context.Context, date string) {
	logger := contextutil.GetLogger(ctx, s.logger)

	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statusCacheKey(date)).Err(); err != nil {
		logger.Warn("status cache invalidation failed",
			zap.String("date", date),
			zap.Error(err),
		)
	}
}
