package history

import "context"

type Repository interface {
	Create(ctx context.Context, h *History) error

	// GetByID returns the joined detail record. Returns ErrHistoryNotFound
	// if no row matches.
	GetByID(ctx context.Context, id uint) (*Detail, error)

	// List returns all visit records, newest first.
	List(ctx context.Context) ([]*Detail, error)

	// ListByPatient returns one patient's visit records, newest first.
	ListByPatient(ctx context.Context, patientID uint) ([]*Detail, error)

	Update(ctx context.Context, id uint, cmd *UpdateHistoryCommand) error
	Delete(ctx context.Context, id uint) error
}
