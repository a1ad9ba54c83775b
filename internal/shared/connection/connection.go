package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens (and creates if missing) the SQLite database file backing
// all three record collections.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	zap.L().Info("sqlite connected", zap.String("path", path))
	return db, nil
}

// ConnectRedisWithRetry connects to the optional status cache. Callers treat a
// nil client as "caching disabled".
func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			zap.L().Info("redis connected", zap.String("addr", addr))
			return rdb, nil
		}
		zap.L().Warn("redis connect failed",
			zap.String("addr", addr),
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
		)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("redis connection failed after %d retries", maxRetries)
}
