package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/specialty"
)

type DoctorService struct {
	repo          doctor.Repository
	specialtyRepo specialty.Repository
	log           *zap.Logger
}

func NewDoctorService(repo doctor.Repository, specialtyRepo specialty.Repository, log *zap.Logger) *DoctorService {
	return &DoctorService{repo: repo, specialtyRepo: specialtyRepo, log: log}
}

func (s *DoctorService) Create(ctx context.Context, cmd *doctor.CreateDoctorCommand) (*doctor.Doctor, error) {
	if err := validateCreateDoctor(cmd); err != nil {
		return nil, err
	}

	// The specialty reference is required; verify it before the insert so
	// the caller gets a not-found instead of a raw FK violation.
	if _, err := s.specialtyRepo.GetByID(ctx, cmd.SpecialtyID); err != nil {
		return nil, fmt.Errorf("verifying specialty: %w", err)
	}

	d := &doctor.Doctor{
		FirstName:   strings.TrimSpace(cmd.FirstName),
		LastName:    strings.TrimSpace(cmd.LastName),
		Phone:       cmd.Phone,
		Email:       normalizeEmail(cmd.Email),
		SpecialtyID: cmd.SpecialtyID,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create doctor", zap.Error(err))
		return nil, err
	}

	s.log.Info("doctor created", zap.Uint("doctor_id", d.ID))
	return d, nil
}

func (s *DoctorService) Get(ctx context.Context, id uint) (*doctor.Detail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorService) List(ctx context.Context) ([]*doctor.Detail, error) {
	return s.repo.List(ctx)
}

func (s *DoctorService) ListBySpecialty(ctx context.Context, specialtyID uint) ([]*doctor.Detail, error) {
	return s.repo.ListBySpecialty(ctx, specialtyID)
}

func (s *DoctorService) Update(ctx context.Context, id uint, cmd *doctor.UpdateDoctorCommand) error {
	cmd.Email = normalizeEmail(cmd.Email)
	if err := s.repo.Update(ctx, id, cmd); err != nil {
		return err
	}
	s.log.Info("doctor updated", zap.Uint("doctor_id", id))
	return nil
}

func (s *DoctorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("doctor deleted", zap.Uint("doctor_id", id))
	return nil
}

func validateCreateDoctor(cmd *doctor.CreateDoctorCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if cmd.SpecialtyID == 0 {
		errs = append(errs, "specialty_id is required")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
