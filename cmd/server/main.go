package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"volunteertracking/config"
	_ "volunteertracking/docs"
	"volunteertracking/internal/adapters/email"
	httpdelivery "volunteertracking/internal/delivery/http"
	"volunteertracking/internal/delivery/http/controllers"
	"volunteertracking/internal/delivery/http/middleware"
	"volunteertracking/internal/repository/postgres"
	"volunteertracking/internal/services"
)

// @title Volunteer Tracking API
// @version 1.0
// @description Volunteer registration, shift scheduling, attendance logging, and hours reporting.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Printf("server exited with error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.EnsureSchema(pingCtx, db); err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	volunteerRepo := postgres.NewVolunteerRepository(db)
	shiftRepo := postgres.NewShiftRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)

	volunteerService := services.NewVolunteerService(volunteerRepo, emailService)
	shiftService := services.NewShiftService(shiftRepo, volunteerRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, volunteerRepo)

	mux := httpdelivery.NewRouter(
		controllers.NewVolunteerController(logger, volunteerService),
		controllers.NewShiftController(logger, shiftService),
		controllers.NewAttendanceController(logger, attendanceService),
	)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
