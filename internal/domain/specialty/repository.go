package specialty

import "context"

type Repository interface {
	Create(ctx context.Context, s *Specialty) error

	// GetByID returns ErrSpecialtyNotFound if no row matches.
	GetByID(ctx context.Context, id uint) (*Specialty, error)

	// List returns all specialties ordered by name.
	List(ctx context.Context) ([]*Specialty, error)

	Update(ctx context.Context, id uint, cmd *UpdateSpecialtyCommand) error
	Delete(ctx context.Context, id uint) error
}
