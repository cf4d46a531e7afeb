package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinova/clinova/internal/domain/specialty"
)

type SpecialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

func (r *SpecialtyRepository) Create(ctx context.Context, s *specialty.Specialty) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating specialty: %w", err)
	}
	return nil
}

func (r *SpecialtyRepository) GetByID(ctx context.Context, id uint) (*specialty.Specialty, error) {
	var s specialty.Specialty
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, specialty.ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting specialty %d: %w", id, err)
	}
	return &s, nil
}

func (r *SpecialtyRepository) List(ctx context.Context) ([]*specialty.Specialty, error) {
	var specialties []*specialty.Specialty
	err := r.db.WithContext(ctx).Order("name").Find(&specialties).Error
	if err != nil {
		return nil, fmt.Errorf("listing specialties: %w", err)
	}
	return specialties, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, id uint, cmd *specialty.UpdateSpecialtyCommand) error {
	changes := cmd.Changes()
	if len(changes) == 0 {
		return specialty.ErrNoFieldsToUpdate
	}

	res := r.db.WithContext(ctx).
		Model(&specialty.Specialty{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("updating specialty %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return specialty.ErrSpecialtyNotFound
	}
	return nil
}

func (r *SpecialtyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&specialty.Specialty{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting specialty %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return specialty.ErrSpecialtyNotFound
	}
	return nil
}
