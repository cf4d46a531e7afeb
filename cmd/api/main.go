package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/config"
	v1 "github.com/clinova/clinova/internal/handler/v1"
	"github.com/clinova/clinova/internal/repository/postgres"
	"github.com/clinova/clinova/internal/service"
	"github.com/clinova/clinova/pkg/database"
	"github.com/clinova/clinova/pkg/logger"
	"github.com/clinova/clinova/pkg/metrics"
	"github.com/clinova/clinova/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	m := metrics.NewCollector("clinova")

	patientRepo := postgres.NewPatientRepository(db)
	specialtyRepo := postgres.NewSpecialtyRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	apptRepo := postgres.NewAppointmentRepository(db)

	handlers := v1.Handlers{
		Patients:     v1.NewPatientHandler(service.NewPatientService(patientRepo, m, log)),
		Specialties:  v1.NewSpecialtyHandler(service.NewSpecialtyService(specialtyRepo, log)),
		Doctors:      v1.NewDoctorHandler(service.NewDoctorService(doctorRepo, specialtyRepo, log)),
		History:      v1.NewHistoryHandler(service.NewHistoryService(historyRepo, patientRepo, doctorRepo, log)),
		Appointments: v1.NewAppointmentHandler(service.NewAppointmentService(apptRepo, patientRepo, doctorRepo, m, log)),
		Availability: v1.NewAvailabilityHandler(service.NewAvailabilityService(doctorRepo, apptRepo, m, log)),
	}

	router := v1.NewRouter(cfg, db, m, log, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
