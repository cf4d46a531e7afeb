package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/patient"
	"github.com/clinova/clinova/pkg/metrics"
)

type AppointmentService struct {
	repo        appointment.Repository
	patientRepo patient.Repository
	doctorRepo  doctor.Repository
	metrics     *metrics.Collector
	log         *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	m *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{repo: repo, patientRepo: patientRepo, doctorRepo: doctorRepo, metrics: m, log: log}
}

// Book inserts the appointment without re-checking the slot. Callers that
// want a free slot first consult AvailabilityService; the check and the
// insert are separate statements and can race.
func (s *AppointmentService) Book(ctx context.Context, cmd *appointment.CreateAppointmentCommand) (*appointment.Appointment, error) {
	var errs []string
	if cmd.ScheduledAt.IsZero() {
		errs = append(errs, "scheduled_at is required")
	}
	if cmd.PatientID == 0 {
		errs = append(errs, "patient_id is required")
	}
	if cmd.DoctorID == 0 {
		errs = append(errs, "doctor_id is required")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.patientRepo.GetByID(ctx, cmd.PatientID); err != nil {
		return nil, fmt.Errorf("verifying patient: %w", err)
	}
	if _, err := s.doctorRepo.GetByID(ctx, cmd.DoctorID); err != nil {
		return nil, fmt.Errorf("verifying doctor: %w", err)
	}

	a := &appointment.Appointment{
		ScheduledAt: cmd.ScheduledAt,
		Reason:      cmd.Reason,
		PatientID:   cmd.PatientID,
		DoctorID:    cmd.DoctorID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to book appointment", zap.Error(err))
		return nil, err
	}

	s.metrics.AppointmentsBookedTotal.Inc()
	s.log.Info("appointment booked",
		zap.Uint("appointment_id", a.ID),
		zap.Uint("doctor_id", a.DoctorID),
		zap.Time("scheduled_at", a.ScheduledAt),
	)
	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uint) (*appointment.Detail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context) ([]*appointment.Detail, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID uint) ([]*appointment.Detail, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID uint) ([]*appointment.Detail, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *AppointmentService) Update(ctx context.Context, id uint, cmd *appointment.UpdateAppointmentCommand) error {
	if err := s.repo.Update(ctx, id, cmd); err != nil {
		return err
	}
	s.log.Info("appointment updated", zap.Uint("appointment_id", id))
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("appointment cancelled", zap.Uint("appointment_id", id))
	return nil
}
