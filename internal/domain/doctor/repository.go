package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error

	// GetByID returns the joined detail record. Returns ErrDoctorNotFound
	// if no row matches.
	GetByID(ctx context.Context, id uint) (*Detail, error)

	// List returns all doctors with their specialty names, ordered by
	// last name then first name.
	List(ctx context.Context) ([]*Detail, error)

	// ListBySpecialty narrows List to one specialty. An unknown specialty
	// yields an empty slice, not an error.
	ListBySpecialty(ctx context.Context, specialtyID uint) ([]*Detail, error)

	Update(ctx context.Context, id uint, cmd *UpdateDoctorCommand) error
	Delete(ctx context.Context, id uint) error
}
