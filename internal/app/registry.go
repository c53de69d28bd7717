package app

import (
	"context"
	"database/sql"
	"time"

	"go-clocker/internal/attendance"
	"go-clocker/internal/auth"
	"go-clocker/internal/config"
	"go-clocker/internal/employee"
	"go-clocker/internal/leave"
	"go-clocker/internal/messaging/kafka"
	"go-clocker/internal/payroll"
	"go-clocker/internal/rbac"
	"go-clocker/internal/rbac/infra"
	"go-clocker/internal/report"
	"go-clocker/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.DefaultPolicies)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, rbac.DefaultPolicies, logger)

	// --- Services ---
	var face attendance.FaceClient
	if cfg.Face.ServiceURL != "" {
		face = attendance.NewHTTPFaceClient(cfg.Face.ServiceURL, cfg.Face.Timeout, logger)
	}

	authService := auth.NewService(authRepo, employeeRepo, rdb, auth.DefaultTokenConfig(cfg.JWTSecret), logger)
	if err := seedAdmin(context.Background(), authService, cfg.Admin, logger); err != nil {
		return err
	}
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb, cfg.Attendance.DefaultWorkplace, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, outboxRepo, rdb, face, attendance.Options{
		Policy:            cfg.Attendance,
		QRSecret:          cfg.QRSecret,
		QRTokenTTL:        cfg.QRTokenTTL,
		FaceMinConfidence: cfg.Face.MinConfidence,
	}, logger)
	leaveService := leave.NewService(db, leaveRepo, logger)
	payrollService := payroll.NewService(attendanceRepo, employeeRepo, cfg.Attendance, time.Now, logger)
	reportService := report.NewService(attendanceRepo, employeeService, leaveRepo, rdb, cfg.Attendance, time.Now, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	attendanceHandler := attendance.NewHandler(attendanceService, rbacService, rdb, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, rbacService, logger)
	payrollHandler := payroll.NewHandler(payrollService, rbacService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb, cfg.JWTSecret, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, cfg.JWTSecret, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, cfg.JWTSecret, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, cfg.JWTSecret, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, cfg.JWTSecret, logger)
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWTSecret)
	}

	return nil
}
