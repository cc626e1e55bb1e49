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

	"github.com/medusa-holding/medusa/internal/config"
	appHTTP "github.com/medusa-holding/medusa/internal/handler/http"
	"github.com/medusa-holding/medusa/internal/pkg/cron"
	"github.com/medusa-holding/medusa/internal/pkg/database"
	"github.com/medusa-holding/medusa/internal/pkg/jwt"
	"github.com/medusa-holding/medusa/internal/pkg/storage"
	"github.com/medusa-holding/medusa/internal/repository/postgresql"
	attendanceService "github.com/medusa-holding/medusa/internal/service/attendance"
	employeeService "github.com/medusa-holding/medusa/internal/service/employee"
	"github.com/medusa-holding/medusa/internal/service/file"
	leaveService "github.com/medusa-holding/medusa/internal/service/leave"
	payrollService "github.com/medusa-holding/medusa/internal/service/payroll"
	reviewService "github.com/medusa-holding/medusa/internal/service/review"
	shiftService "github.com/medusa-holding/medusa/internal/service/shift"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	location, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fileStorage, err := newFileStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	transactor := postgresql.NewTransactor(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	fileService := file.NewFileService(fileStorage)

	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		transactor,
		attendanceRepo,
		justificationRepo,
		employeeRepo,
		fileService,
		location,
	)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		shiftRepo,
		attendanceRepo,
		cfg.Payroll.DefaultRegime,
		cfg.Payroll.Workers,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	reviewSvc := reviewService.NewReviewService(reviewRepo, employeeRepo)

	router := appHTTP.NewRouter(ctx, appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		LogLevel:       cfg.App.SlogLevel(),
		CORSOrigins:    cfg.App.CORSOrigins,
		PunchPerSecond: cfg.RateLimit.PunchPerSecond,
		PunchBurst:     cfg.RateLimit.PunchBurst,
		TrustProxy:     cfg.App.TrustProxy,
	}, JWTService, appHTTP.Handlers{
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Review:     appHTTP.NewReviewHandler(reviewSvc),
	})

	scheduler := cron.NewScheduler(ctx)
	if cfg.Cron.AbsenceSweepEnabled {
		cron.NewAttendanceJobs(attendanceSvc, employeeRepo, location).
			RegisterJobs(scheduler, cfg.Cron.AbsenceSweepInterval)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		scheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newFileStorage(ctx context.Context, cfg config.StorageConfig) (storage.FileStorage, error) {
	switch cfg.Type {
	case "local":
		local, err := storage.NewLocalStorage(cfg.BasePath, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, nil
	case "s3":
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		return s3, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
