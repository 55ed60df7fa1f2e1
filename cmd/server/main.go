package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/school-erp/school-erp-api/internal/handler"
	"github.com/school-erp/school-erp-api/internal/middleware"
	"github.com/school-erp/school-erp-api/internal/repository"
	"github.com/school-erp/school-erp-api/internal/service"
	"github.com/school-erp/school-erp-api/pkg/cache"
	"github.com/school-erp/school-erp-api/pkg/config"
	"github.com/school-erp/school-erp-api/pkg/database"
	"github.com/school-erp/school-erp-api/pkg/logger"
	corsmiddleware "github.com/school-erp/school-erp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/school-erp/school-erp-api/pkg/middleware/requestid"
)

// @title School ERP API
// @version 1.0.0
// @description Server-rendered school administration backend: auth, entity CRUD, charts and health.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	// Self-healing: an older schema may predate the role column. Startup
	// continues either way; login fails loudly if the column is missing.
	migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureUsersRoleColumn(migrateCtx, db, logr); err != nil {
		logr.Warn("users.role migration check failed", zap.Error(err))
	}
	cancel()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Charts.CacheTTL, logr, cfg.Charts.CacheEnabled && redisClient != nil)

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	examRepo := repository.NewExamRepository(db)
	chartRepo := repository.NewChartRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, cacheSvc, validate, logr)
	noticeSvc := service.NewNoticeService(noticeRepo, validate, logr)
	feeSvc := service.NewFeeService(feeRepo, cacheSvc, validate, logr)
	examSvc := service.NewExamService(examRepo, validate, logr)
	chartSvc := service.NewChartService(chartRepo, cacheSvc, metricsSvc, cfg.Charts.CacheTTL, logr)
	dashboardSvc := service.NewDashboardService(statsRepo, noticeRepo, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	exportSvc := service.NewExportService(studentRepo, teacherRepo, feeRepo, logr)

	handlers := routeHandlers{
		auth:       handler.NewAuthHandler(authSvc),
		students:   handler.NewStudentHandler(studentSvc),
		teachers:   handler.NewTeacherHandler(teacherSvc),
		classes:    handler.NewClassHandler(classSvc),
		attendance: handler.NewAttendanceHandler(attendanceSvc, studentSvc, classSvc),
		notices:    handler.NewNoticeHandler(noticeSvc, classSvc),
		fees:       handler.NewFeeHandler(feeSvc),
		exams:      handler.NewExamHandler(examSvc),
		charts:     handler.NewChartHandler(chartSvc),
		dashboard:  handler.NewDashboardHandler(dashboardSvc),
		pages:      handler.NewPageHandler(),
		health:     handler.NewHealthHandler(dashboardSvc),
		exports:    handler.NewExportHandler(exportSvc),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.SessionGate(authSvc))

	registerRoutes(r, cfg, handlers, metricsSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
