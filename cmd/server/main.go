package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/database"
	"github.com/scholaris/scholaris-backend/internal/handler"
	"github.com/scholaris/scholaris-backend/internal/logger"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/router"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Scholaris Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	yearRepo := repository.NewAcademicYearRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	parentRepo := repository.NewParentRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	feeStructureRepo := repository.NewFeeStructureRepository(pool)
	feePaymentRepo := repository.NewFeePaymentRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, userRepo, studentRepo, staffRepo, parentRepo)
	schoolService := service.NewSchoolService(yearRepo, classRepo, subjectRepo)
	studentService := service.NewStudentService(studentRepo, authService, log)
	staffService := service.NewStaffService(staffRepo, authService, log)
	parentService := service.NewParentService(parentRepo, authService, log)
	resultService := service.NewResultService(resultRepo, studentRepo, classRepo, yearRepo, log)
	feeService := service.NewFeeService(feeStructureRepo, feePaymentRepo, studentRepo, classRepo, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, log)
	announcementService := service.NewAnnouncementService(announcementRepo, rdb, log)
	dashboardService := service.NewDashboardService(dashboardRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, userRepo),
		School:       handler.NewSchoolHandler(schoolService),
		Student:      handler.NewStudentHandler(studentService),
		Staff:        handler.NewStaffHandler(staffService),
		Parent:       handler.NewParentHandler(parentService),
		Result:       handler.NewResultHandler(resultService),
		Fee:          handler.NewFeeHandler(feeService),
		Attendance:   handler.NewAttendanceHandler(attendanceService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		WS:           handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
