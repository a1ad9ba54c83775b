package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)
	FindAllByUser(ctx context.Context, userID string) ([]Attendance, error)
	FindByDate(ctx context.Context, date string) ([]Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	DistinctUserIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, a *Attendance) error
	UpsertAll(ctx context.Context, recs []Attendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds the gorm handle to the open transaction when there is one, so
// every statement rides the transaction's connection. The SQLite pool holds a
// single connection; querying outside the transaction would wait on it
// forever.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Where("userId = ?", userID).
		Where("date = ?", date).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("userId = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDate(ctx context.Context, date string) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("date = ?", date).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Order("userId ASC, date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DistinctUserIDs(ctx context.Context) ([]string, error) {
	var userIDs []string
	err := r.conn(ctx).
		Model(&Attendance{}).
		Distinct("userId").
		Pluck("userId", &userIDs).Error
	return userIDs, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Save(a).Error
}

// UpsertAll replaces each record by primary key in a single batch statement.
func (r *repository) UpsertAll(ctx context.Context, recs []Attendance) error {
	if len(recs) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&recs).Error
}
