package app

import (
	"database/sql"

	"dayflow/internal/attendance"
	"dayflow/internal/auth"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo)
	syncService := syncer.NewService(db, employeeRepo, leaveRepo, attendanceRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	authHandler := auth.NewHandler(employeeService)
	syncHandler := syncer.NewHandler(syncService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		leave.RegisterRoutes(api, leaveHandler)
		syncer.RegisterRoutes(api, syncHandler)
	}

	return nil
}
