package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindAllByUser(ctx context.Context, userID string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	UpsertAll(ctx context.Context, leaves []Leave) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var rows []Leave
	err := r.conn(ctx).
		Order("appliedOn DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Leave, error) {
	var rows []Leave
	err := r.conn(ctx).
		Where("userId = ?", userID).
		Order("appliedOn DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	if err := r.conn(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Save(l).Error
}

// UpsertAll replaces each record by primary key in a single batch statement.
func (r *repository) UpsertAll(ctx context.Context, leaves []Leave) error {
	if len(leaves) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&leaves).Error
}
