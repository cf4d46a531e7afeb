package patient

import "context"

type Repository interface {
	// Create persists a new patient and fills in the assigned ID.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Patient, error)

	// List returns all patients ordered by last name, then first name.
	List(ctx context.Context) ([]*Patient, error)

	// Update applies the populated fields of the changeset. Returns
	// ErrNoFieldsToUpdate when the changeset is empty and ErrPatientNotFound
	// when the id matches no row.
	Update(ctx context.Context, id uint, cmd *UpdatePatientCommand) error

	// Delete removes the patient. Referencing history or appointment rows
	// make the store reject the delete.
	Delete(ctx context.Context, id uint) error
}
