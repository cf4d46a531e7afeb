package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinova/clinova/internal/domain/history"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("history").
		Select(`history.*,
			patients.first_name || ' ' || patients.last_name AS patient_name,
			doctors.first_name || ' ' || doctors.last_name AS doctor_name`).
		Joins("JOIN patients ON patients.id = history.patient_id").
		Joins("JOIN doctors ON doctors.id = history.doctor_id")
}

func (r *HistoryRepository) Create(ctx context.Context, h *history.History) error {
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("creating history record: %w", err)
	}
	return nil
}

func (r *HistoryRepository) GetByID(ctx context.Context, id uint) (*history.Detail, error) {
	var h history.Detail
	err := r.detailQuery(ctx).Where("history.id = ?", id).Take(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, history.ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting history record %d: %w", id, err)
	}
	return &h, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]*history.Detail, error) {
	var records []*history.Detail
	err := r.detailQuery(ctx).
		Order("history.visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing history records: %w", err)
	}
	return records, nil
}

func (r *HistoryRepository) ListByPatient(ctx context.Context, patientID uint) ([]*history.Detail, error) {
	var records []*history.Detail
	err := r.detailQuery(ctx).
		Where("history.patient_id = ?", patientID).
		Order("history.visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing history for patient %d: %w", patientID, err)
	}
	return records, nil
}

func (r *HistoryRepository) Update(ctx context.Context, id uint, cmd *history.UpdateHistoryCommand) error {
	changes := cmd.Changes()
	if len(changes) == 0 {
		return history.ErrNoFieldsToUpdate
	}

	res := r.db.WithContext(ctx).
		Model(&history.History{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("updating history record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return history.ErrHistoryNotFound
	}
	return nil
}

func (r *HistoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&history.History{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting history record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return history.ErrHistoryNotFound
	}
	return nil
}
