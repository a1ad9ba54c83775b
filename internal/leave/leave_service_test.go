package leave

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"dayflow/internal/employee"
	leaveerrors "dayflow/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn        func(tx *sql.Tx) Repository
	createFn        func(ctx context.Context, l *Leave) error
	findAllFn       func(ctx context.Context) ([]Leave, error)
	findAllByUserFn func(ctx context.Context, userID string) ([]Leave, error)
	findByIDFn      func(ctx context.Context, id string) (*Leave, error)
	updateFn        func(ctx context.Context, l *Leave) error
	upsertAllFn     func(ctx context.Context, leaves []Leave) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, l *Leave) error {
	return f.createFn(ctx, l)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Leave, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string) ([]Leave, error) {
	return f.findAllByUserFn(ctx, userID)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Leave, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, l *Leave) error { return f.updateFn(ctx, l) }
func (f *fakeRepo) UpsertAll(ctx context.Context, leaves []Leave) error {
	return f.upsertAllFn(ctx, leaves)
}

type fakeEmployeeRepo struct {
	employee.Repository
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 1, TotalDays("2025-03-10", "2025-03-10"))
	assert.Equal(t, 3, TotalDays("2025-03-10", "2025-03-12"))
	assert.Equal(t, 0, TotalDays("bad", "2025-03-12"))
}

func TestService_Submit(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	var saved *Leave
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, l *Leave) error { saved = l; return nil }

	empRepo := &fakeEmployeeRepo{}
	empRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: id, Name: "Priya Sharma"}, nil
	}

	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Submit(ctx, SubmitLeaveRequest{
		UserID:    "emp-1",
		Type:      TypeVacation,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Reason:    "family trip",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.True(t, strings.HasPrefix(saved.ID, "leave-"))
	assert.Equal(t, StatusPending, saved.Status)
	assert.Equal(t, "Priya Sharma", saved.UserName)
	assert.NotEmpty(t, saved.AppliedOn)
	assert.Equal(t, 3, resp.TotalDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_UnknownEmployee(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Leave
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, l *Leave) error { saved = l; return nil }

	empRepo := &fakeEmployeeRepo{}
	empRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Submit(context.Background(), SubmitLeaveRequest{
		UserID:    "emp-ghost",
		Type:      TypeSick,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
	})
	assert.NoError(t, err)
	assert.Empty(t, saved.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_BadDates(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	svc := NewService(db, repo, &fakeEmployeeRepo{})

	_, err := svc.Submit(context.Background(), SubmitLeaveRequest{
		UserID:    "emp-1",
		Type:      TypeVacation,
		StartDate: "10 March",
		EndDate:   "2025-03-12",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)

	_, err = svc.Submit(context.Background(), SubmitLeaveRequest{
		UserID:    "emp-1",
		Type:      TypeVacation,
		StartDate: "2025-03-12",
		EndDate:   "2025-03-10",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestService_SetStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved *Leave
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) {
		return &Leave{ID: id, Status: StatusPending, StartDate: "2025-03-10", EndDate: "2025-03-10"}, nil
	}
	repo.updateFn = func(ctx context.Context, l *Leave) error { saved = l; return nil }

	svc := NewService(db, repo, &fakeEmployeeRepo{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.SetStatus(context.Background(), "leave-1", StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, saved.Status)
	assert.Equal(t, 1, resp.TotalDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SetStatus_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.SetStatus(context.Background(), "leave-missing", StatusApproved)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SetStatus_Finalized(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Leave, error) {
		return &Leave{ID: id, Status: StatusRejected}, nil
	}
	repo.updateFn = func(ctx context.Context, l *Leave) error {
		t.Fatal("a finalized request must not be rewritten")
		return nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.SetStatus(context.Background(), "leave-1", StatusApproved)
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyFinalized)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByUser(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllByUserFn = func(ctx context.Context, userID string) ([]Leave, error) {
		return []Leave{
			{ID: "leave-1", UserID: userID, StartDate: "2025-03-10", EndDate: "2025-03-12"},
		}, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{})

	resp, err := svc.GetByUser(context.Background(), "emp-1")
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].TotalDays)
}
