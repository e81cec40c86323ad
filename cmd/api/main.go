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

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http"
	appAWS "github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/aws"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/messaging"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/telemetry"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-tracker-go/internal/service/auth"
	departmentService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/employee"
	roleService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/role"
	"github.com/go-chi/httplog/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}

func newEventPublisher(ctx context.Context, cfg *config.Config) (attendance.EventPublisher, error) {
	if cfg.Events.AttendanceQueueURL == "" {
		slog.Info("Attendance events disabled, no queue configured")
		return messaging.NoopPublisher{}, nil
	}

	awsCfg, err := appAWS.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := appAWS.NewSQSClient(awsCfg, cfg.AWS.Endpoint)
	return messaging.NewSQSProducer(client, cfg.Events.AttendanceQueueURL), nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.App.Name, cfg.App.Version, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("Failed to shut down tracer", "error", err)
		}
	}()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return err
		}
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("error creating JWT service: %w", err)
	}

	publisher, err := newEventPublisher(ctx, cfg)
	if err != nil {
		return err
	}

	attendanceValidator := attendanceService.NewValidator(employeeRepo, departmentRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, attendanceValidator, publisher)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, roleRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	roleSvc := roleService.NewRoleService(roleRepo)
	authSvc := serviceAuth.NewAuthService(employeeRepo, employeeSvc, JWTService)

	router := appHTTP.NewRouter(cfg, logger, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(departmentSvc, roleSvc),
	})

	scheduler := cron.NewScheduler()
	if cfg.Jobs.MarkAbsentEnabled {
		cron.NewAttendanceJobs(employeeRepo, attendanceSvc).RegisterJobs(scheduler, cfg.Jobs.MarkAbsentInterval)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           otelhttp.NewHandler(router, cfg.App.Name),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", cfg.App.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
