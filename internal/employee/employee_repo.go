package employee

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByLoginID(ctx context.Context, loginID string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	UpsertAll(ctx context.Context, emps []Employee) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	row := encodeRow(*e)
	return r.conn(ctx).Create(&row).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []employeeRow
	if err := r.conn(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	emps := make([]Employee, len(rows))
	for i, row := range rows {
		emps[i] = decodeRow(row)
	}
	return emps, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var row employeeRow
	if err := r.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	e := decodeRow(row)
	return &e, nil
}

func (r *repository) FindByLoginID(ctx context.Context, loginID string) (*Employee, error) {
	var row employeeRow
	err := r.conn(ctx).
		Where("LOWER(loginId) = ?", strings.ToLower(loginID)).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	e := decodeRow(row)
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	row := encodeRow(*e)
	return r.conn(ctx).Save(&row).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&employeeRow{}).Error
}

// UpsertAll replaces each record by primary key in a single batch statement;
// the last writer for a given id wins unconditionally.
func (r *repository) UpsertAll(ctx context.Context, emps []Employee) error {
	if len(emps) == 0 {
		return nil
	}
	rows := make([]employeeRow, len(emps))
	for i, e := range emps {
		rows[i] = encodeRow(e)
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
}
