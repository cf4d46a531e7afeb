package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/history"
	"github.com/clinova/clinova/internal/domain/patient"
)

type HistoryService struct {
	repo        history.Repository
	patientRepo patient.Repository
	doctorRepo  doctor.Repository
	log         *zap.Logger
}

func NewHistoryService(repo history.Repository, patientRepo patient.Repository, doctorRepo doctor.Repository, log *zap.Logger) *HistoryService {
	return &HistoryService{repo: repo, patientRepo: patientRepo, doctorRepo: doctorRepo, log: log}
}

func (s *HistoryService) Create(ctx context.Context, cmd *history.CreateHistoryCommand) (*history.History, error) {
	var errs []string
	if cmd.VisitDate.IsZero() {
		errs = append(errs, "visit_date is required")
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

	h := &history.History{
		VisitDate: cmd.VisitDate,
		Diagnosis: cmd.Diagnosis,
		Treatment: cmd.Treatment,
		Notes:     cmd.Notes,
		PatientID: cmd.PatientID,
		DoctorID:  cmd.DoctorID,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.log.Error("failed to create history record", zap.Error(err))
		return nil, err
	}

	s.log.Info("history record created",
		zap.Uint("history_id", h.ID),
		zap.Uint("patient_id", h.PatientID),
	)
	return h, nil
}

func (s *HistoryService) Get(ctx context.Context, id uint) (*history.Detail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HistoryService) List(ctx context.Context) ([]*history.Detail, error) {
	return s.repo.List(ctx)
}

func (s *HistoryService) ListByPatient(ctx context.Context, patientID uint) ([]*history.Detail, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *HistoryService) Update(ctx context.Context, id uint, cmd *history.UpdateHistoryCommand) error {
	if err := s.repo.Update(ctx, id, cmd); err != nil {
		return err
	}
	s.log.Info("history record updated", zap.Uint("history_id", id))
	return nil
}

func (s *HistoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("history record deleted", zap.Uint("history_id", id))
	return nil
}
