package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinova/clinova/internal/domain/doctor"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// detailQuery joins the specialty name onto every doctor read.
func (r *DoctorRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("doctors").
		Select("doctors.*, specialties.name AS specialty_name").
		Joins("JOIN specialties ON specialties.id = doctors.specialty_id")
}

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("creating doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*doctor.Detail, error) {
	var d doctor.Detail
	err := r.detailQuery(ctx).Where("doctors.id = ?", id).Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, doctor.ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting doctor %d: %w", id, err)
	}
	return &d, nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]*doctor.Detail, error) {
	var doctors []*doctor.Detail
	err := r.detailQuery(ctx).
		Order("doctors.last_name, doctors.first_name").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) ListBySpecialty(ctx context.Context, specialtyID uint) ([]*doctor.Detail, error) {
	var doctors []*doctor.Detail
	err := r.detailQuery(ctx).
		Where("doctors.specialty_id = ?", specialtyID).
		Order("doctors.last_name, doctors.first_name").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("listing doctors for specialty %d: %w", specialtyID, err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id uint, cmd *doctor.UpdateDoctorCommand) error {
	changes := cmd.Changes()
	if len(changes) == 0 {
		return doctor.ErrNoFieldsToUpdate
	}

	res := r.db.WithContext(ctx).
		Model(&doctor.Doctor{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("updating doctor %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return doctor.ErrDoctorNotFound
	}
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&doctor.Doctor{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting doctor %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return doctor.ErrDoctorNotFound
	}
	return nil
}
