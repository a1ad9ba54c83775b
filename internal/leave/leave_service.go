package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dayflow/internal/employee"
	leaveerrors "dayflow/internal/leave/errors"
	"dayflow/internal/shared/contextutil"
	"dayflow/internal/shared/ids"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByUser(ctx context.Context, userID string) ([]LeaveResponse, error)
	SetStatus(ctx context.Context, id, status string) (LeaveResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	logger.Debug("submit leave requested",
		zap.String("user_id", req.UserID),
		zap.String("type", req.Type),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		logger.Warn("submit leave invalid range",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The requester's name is denormalized onto the request so it survives a
	// later removal of the employee record.
	userName := ""
	if emp, err := s.employeeRepo.FindByID(ctx, req.UserID); err == nil {
		userName = emp.Name
	}

	l := &Leave{
		ID:        ids.New(ids.PrefixLeave),
		UserID:    req.UserID,
		UserName:  userName,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    StatusPending,
		AppliedOn: time.Now().Format(dateLayout),
	}

	if err := qtx.Create(ctx, l); err != nil {
		logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	logger.Info("submit leave success",
		zap.String("leave_id", l.ID),
		zap.String("user_id", l.UserID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	leaves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("get leaves by user failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// SetStatus moves a pending request to approved or rejected. The transition
// is one-way: a non-pending request is immutable.
func (s *service) SetStatus(ctx context.Context, id, status string) (LeaveResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("set leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("set leave status unknown id", zap.String("leave_id", id))
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		logger.Error("set leave status lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		logger.Warn("set leave status on finalized request",
			zap.String("leave_id", id),
			zap.String("current_status", l.Status),
			zap.String("target_status", status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyFinalized
	}

	l.Status = status
	if err := qtx.Update(ctx, l); err != nil {
		logger.Error("set leave status persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		logger.Error("set leave status commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	logger.Info("set leave status success",
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*l), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// TotalDays counts the inclusive span of a request; a same-day request is
// one day.
func TotalDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	days := end.Sub(start).Hours() / 24
	if days < 0 {
		days = -days
	}
	return int(days) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		Leave:     l,
		TotalDays: TotalDays(l.StartDate, l.EndDate),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
