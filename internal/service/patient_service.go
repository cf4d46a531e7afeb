package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/patient"
	"github.com/clinova/clinova/pkg/metrics"
)

type PatientService struct {
	repo    patient.Repository
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewPatientService(repo patient.Repository, m *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, metrics: m, log: log}
}

func (s *PatientService) Create(ctx context.Context, cmd *patient.CreatePatientCommand) (*patient.Patient, error) {
	if err := validateCreatePatient(cmd); err != nil {
		return nil, err
	}

	p := &patient.Patient{
		FirstName: strings.TrimSpace(cmd.FirstName),
		LastName:  strings.TrimSpace(cmd.LastName),
		BirthDate: cmd.BirthDate,
		Phone:     cmd.Phone,
		Email:     normalizeEmail(cmd.Email),
		Address:   cmd.Address,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, err
	}

	s.metrics.PatientsCreatedTotal.Inc()
	s.log.Info("patient created", zap.Uint("patient_id", p.ID))

	return p, nil
}

func (s *PatientService) Get(ctx context.Context, id uint) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context) ([]*patient.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Update(ctx context.Context, id uint, cmd *patient.UpdatePatientCommand) error {
	cmd.Email = normalizeEmail(cmd.Email)
	if err := s.repo.Update(ctx, id, cmd); err != nil {
		return err
	}
	s.log.Info("patient updated", zap.Uint("patient_id", id))
	return nil
}

func (s *PatientService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("patient deleted", zap.Uint("patient_id", id))
	return nil
}

func validateCreatePatient(cmd *patient.CreatePatientCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if cmd.BirthDate.IsZero() {
		errs = append(errs, "birth_date is required")
	}
	if cmd.BirthDate.After(time.Now()) {
		errs = append(errs, "birth_date cannot be in the future")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	return &e
}
