package attendance

import (
	"context"
	"path/filepath"
	"testing"

	"dayflow/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestRepository_WithTx_RidesTheOpenTransaction(t *testing.T) {
	gormDB, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "attendance.db"))
	assert.NoError(t, err)
	assert.NoError(t, Migrate(gormDB))

	db, err := gormDB.DB()
	assert.NoError(t, err)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	assert.NoError(t, err)

	repo := NewRepository(gormDB)
	qtx := repo.WithTx(tx)

	// The pool holds one connection and the open transaction owns it. Every
	// statement below must run inside the transaction or it would wait on
	// the pool forever.
	rec := Attendance{ID: "att-1", UserID: "emp-1", Date: "2025-03-05", Status: StatusPresent}
	assert.NoError(t, qtx.Create(ctx, &rec))

	got, err := qtx.FindByUserAndDate(ctx, "emp-1", "2025-03-05")
	assert.NoError(t, err)
	assert.Equal(t, "att-1", got.ID)

	assert.NoError(t, tx.Commit())

	got, err = repo.FindByUserAndDate(ctx, "emp-1", "2025-03-05")
	assert.NoError(t, err)
	assert.Equal(t, "att-1", got.ID)
}

func TestRepository_WithTx_RollbackDiscards(t *testing.T) {
	gormDB, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "attendance.db"))
	assert.NoError(t, err)
	assert.NoError(t, Migrate(gormDB))

	db, err := gormDB.DB()
	assert.NoError(t, err)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	assert.NoError(t, err)

	repo := NewRepository(gormDB)
	rec := Attendance{ID: "att-1", UserID: "emp-1", Date: "2025-03-05", Status: StatusPresent}
	assert.NoError(t, repo.WithTx(tx).Create(ctx, &rec))
	assert.NoError(t, tx.Rollback())

	_, err = repo.FindByUserAndDate(ctx, "emp-1", "2025-03-05")
	assert.Error(t, err)
}

func TestService_CheckInAndCheckOut_SingleConnectionPool(t *testing.T) {
	gormDB, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "attendance.db"))
	assert.NoError(t, err)
	assert.NoError(t, Migrate(gormDB))

	db, err := gormDB.DB()
	assert.NoError(t, err)
	ctx := context.Background()

	svc := NewService(db, NewRepository(gormDB), nil)

	rec, err := svc.CheckIn(ctx, "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, rec.Status)

	// Repeated check-in reads inside a fresh transaction and commits nothing.
	again, err := svc.CheckIn(ctx, "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)

	out, err := svc.CheckOut(ctx, "emp-1")
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, StatusCheckedOut, out.Status)
}
