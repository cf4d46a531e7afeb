package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/clinova/clinova/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("appointments").
		Select(`appointments.*,
			patients.first_name || ' ' || patients.last_name AS patient_name,
			doctors.first_name || ' ' || doctors.last_name AS doctor_name,
			specialties.name AS specialty_name`).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Joins("JOIN specialties ON specialties.id = doctors.specialty_id")
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("creating appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*appointment.Detail, error) {
	var a appointment.Detail
	err := r.detailQuery(ctx).Where("appointments.id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appointment.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting appointment %d: %w", id, err)
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*appointment.Detail, error) {
	var appts []*appointment.Detail
	err := r.detailQuery(ctx).
		Order("appointments.scheduled_at").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appts, nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]*appointment.Detail, error) {
	var appts []*appointment.Detail
	err := r.detailQuery(ctx).
		Where("appointments.patient_id = ?", patientID).
		Order("appointments.scheduled_at").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("listing appointments for patient %d: %w", patientID, err)
	}
	return appts, nil
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]*appointment.Detail, error) {
	var appts []*appointment.Detail
	err := r.detailQuery(ctx).
		Where("appointments.doctor_id = ?", doctorID).
		Order("appointments.scheduled_at").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("listing appointments for doctor %d: %w", doctorID, err)
	}
	return appts, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, cmd *appointment.UpdateAppointmentCommand) error {
	changes := cmd.Changes()
	if len(changes) == 0 {
		return appointment.ErrNoFieldsToUpdate
	}

	res := r.db.WithContext(ctx).
		Model(&appointment.Appointment{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("updating appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&appointment.Appointment{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) CountAt(ctx context.Context, doctorID uint, at time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appointment.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ?", doctorID, at).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting appointments for doctor %d at %s: %w", doctorID, at, err)
	}
	return count, nil
}
