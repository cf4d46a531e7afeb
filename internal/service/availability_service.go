package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/schedule"
	"github.com/clinova/clinova/pkg/metrics"
)

// AvailabilityService computes open slots by probing each catalog slot
// against existing bookings: one point query per doctor per slot.
// O(doctors x 16) round trips, fine at clinic scale.
type AvailabilityService struct {
	doctorRepo doctor.Repository
	apptRepo   appointment.Repository
	metrics    *metrics.Collector
	log        *zap.Logger
}

func NewAvailabilityService(doctorRepo doctor.Repository, apptRepo appointment.Repository, m *metrics.Collector, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{doctorRepo: doctorRepo, apptRepo: apptRepo, metrics: m, log: log}
}

// IsSlotFree reports whether the doctor has no appointment at exactly the
// given day and slot. Bookings on other dates or at other times never
// block.
func (s *AvailabilityService) IsSlotFree(ctx context.Context, day time.Time, doctorID uint, slot schedule.Slot) (bool, error) {
	count, err := s.apptRepo.CountAt(ctx, doctorID, slot.At(day))
	if err != nil {
		return false, fmt.Errorf("checking slot %s: %w", slot, err)
	}

	free := count == 0
	outcome := "free"
	if !free {
		outcome = "booked"
	}
	s.metrics.AvailabilityChecksTotal.WithLabelValues(outcome).Inc()

	return free, nil
}

// DaySchedule lists each candidate doctor's open slots for the day, in
// catalog order. Candidates are one doctor, a specialty's doctors, or
// every doctor; unknown ids resolve to an empty candidate set, never an
// error. Doctors with no open slot are omitted.
func (s *AvailabilityService) DaySchedule(ctx context.Context, day time.Time, doctorID, specialtyID *uint) ([]*schedule.DoctorAvailability, error) {
	candidates, err := s.resolveCandidates(ctx, doctorID, specialtyID)
	if err != nil {
		return nil, err
	}

	result := make([]*schedule.DoctorAvailability, 0, len(candidates))
	for _, d := range candidates {
		var open []schedule.Slot
		for _, slot := range schedule.Catalog {
			free, err := s.IsSlotFree(ctx, day, d.ID, slot)
			if err != nil {
				return nil, err
			}
			if free {
				open = append(open, slot)
			}
		}

		if len(open) == 0 {
			continue
		}

		result = append(result, &schedule.DoctorAvailability{
			DoctorID:      d.ID,
			DoctorName:    d.FullName(),
			SpecialtyName: d.SpecialtyName,
			Slots:         open,
		})
	}

	return result, nil
}

func (s *AvailabilityService) resolveCandidates(ctx context.Context, doctorID, specialtyID *uint) ([]*doctor.Detail, error) {
	switch {
	case doctorID != nil:
		d, err := s.doctorRepo.GetByID(ctx, *doctorID)
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolving doctor: %w", err)
		}
		return []*doctor.Detail{d}, nil

	case specialtyID != nil:
		doctors, err := s.doctorRepo.ListBySpecialty(ctx, *specialtyID)
		if err != nil {
			return nil, fmt.Errorf("resolving specialty doctors: %w", err)
		}
		return doctors, nil

	default:
		doctors, err := s.doctorRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving doctors: %w", err)
		}
		return doctors, nil
	}
}
