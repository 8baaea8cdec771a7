package app

import (
	"database/sql"
	"path/filepath"

	"go-ems/internal/attendance"
	"go-ems/internal/auth"
	"go-ems/internal/department"
	"go-ems/internal/designation"
	"go-ems/internal/document"
	"go-ems/internal/employee"
	"go-ems/internal/event"
	"go-ems/internal/leave"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/notification"
	"go-ems/internal/payroll"
	"go-ems/internal/performance"
	"go-ems/internal/rbac"
	"go-ems/internal/rbac/infra"
	"go-ems/internal/recruitment"
	"go-ems/internal/shared/counter"

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
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	recruitmentRepo := recruitment.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	mailer := notification.NewMailerFromEnv()

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(db, departmentRepo)
	designationService := designation.NewService(db, designationRepo, rdb)
	documentService := document.NewService(db, documentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	eventService := event.NewService(db, eventRepo)
	leaveService := leave.NewService(db, leaveRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)
	performanceService := performance.NewService(db, performanceRepo)
	recruitmentService := recruitment.NewService(db, recruitmentRepo, mailer)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	designationHandler := designation.NewHandler(designationService)
	documentHandler := document.NewHandler(documentService)
	employeeHandler := employee.NewHandler(employeeService)
	eventHandler := event.NewHandler(eventService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService)
	performanceHandler := performance.NewHandler(performanceService)
	recruitmentHandler := recruitment.NewHandler(recruitmentService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		designation.RegisterRoutes(api, designationHandler, rbacService)
		document.RegisterRoutes(api, documentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb)
		event.RegisterRoutes(api, eventHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
		recruitment.RegisterRoutes(api, recruitmentHandler, rbacService)
	}

	return nil
}
