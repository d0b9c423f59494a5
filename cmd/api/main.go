package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/file"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/redisstore"
	attendanceService "github.com/cmlabs-hris/hris-portal-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-portal-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-portal-go/internal/service/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/service/leave"
	notificationService "github.com/cmlabs-hris/hris-portal-go/internal/service/notification"
	overtimeService "github.com/cmlabs-hris/hris-portal-go/internal/service/overtime"
	performanceService "github.com/cmlabs-hris/hris-portal-go/internal/service/performance"
	reportService "github.com/cmlabs-hris/hris-portal-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *memory.Store
	if cfg.App.SeedData {
		store = memory.NewSeededStore(fixtures.Default())
	} else {
		store = memory.NewStore()
	}

	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	overtimeRequestRepo := memory.NewOvertimeRequestRepository(store)
	reviewRepo := memory.NewReviewRepository(store)

	notificationRepo, closeRepo, err := newNotificationRepository(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize notification store", "store", cfg.Notification.Store, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	hub := sse.NewHub()
	notifService, err := notificationService.NewNotificationService(ctx, notificationRepo, hub)
	if err != nil {
		slog.Error("Failed to load notifications", "error", err)
		os.Exit(1)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		slog.Error("Failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	authService, err := serviceAuth.NewAuthService(employeeRepo, JWTService, cfg.Auth)
	if err != nil {
		slog.Error("Failed to initialize auth service", "error", err)
		os.Exit(1)
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveService := leave.NewLeaveService(leaveRequestRepo, employeeRepo, notifService, leave.NewBalanceCalculator(time.Now))
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRequestRepo, employeeRepo, notifService)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, employeeRepo, notifService)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRequestRepo, overtimeRequestRepo, reviewRepo, leaveService)

	router, err := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LoginRateLimit: cfg.RateLimit.Login,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService, employeeSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveService),
		Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, JWTService),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})
	if err != nil {
		slog.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "env", cfg.App.Env, "notification_store", cfg.Notification.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}

func newLogger(app config.AppConfig) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-portal"),
		slog.String("env", app.Env),
	)
}

// newNotificationRepository opens the configured notification backend. The
// returned func releases its connection.
func newNotificationRepository(ctx context.Context, cfg *config.Config) (notification.Repository, func(), error) {
	switch cfg.Notification.Store {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.EnsureNotificationSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgresql.NewNotificationRepository(db), db.Close, nil

	case "redis":
		rdb, err := database.NewRedisClient(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.NewNotificationRepository(rdb, cfg.Notification.RedisKey), func() { _ = rdb.Close() }, nil

	default:
		return file.NewNotificationRepository(cfg.Notification.FilePath), func() {}, nil
	}
}
