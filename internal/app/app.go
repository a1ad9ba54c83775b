package app

import (
	"os"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers every module on the router.
func BuildApp(router *gin.Engine) error {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "dayflow.db"
	}

	gormDB, err := connection.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established", zap.String("path", dbPath))

	if err := employee.Migrate(gormDB); err != nil {
		return err
	}
	if err := attendance.Migrate(gormDB); err != nil {
		return err
	}
	if err := leave.Migrate(gormDB); err != nil {
		return err
	}

	// Redis is optional. With no address configured the status cache is
	// simply disabled and every dashboard read hits SQLite.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, status cache disabled", zap.Error(err))
			rdb = nil
		} else {
			zap.L().Info("redis connection established", zap.String("addr", addr))
		}
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB, rdb)
}
