package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error

	// GetByID returns the joined detail record. Returns
	// ErrAppointmentNotFound if no row matches.
	GetByID(ctx context.Context, id uint) (*Detail, error)

	// List returns all appointments ordered by scheduled time ascending.
	List(ctx context.Context) ([]*Detail, error)

	// ListByPatient and ListByDoctor narrow List to one reference;
	// unknown ids yield empty slices.
	ListByPatient(ctx context.Context, patientID uint) ([]*Detail, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]*Detail, error)

	Update(ctx context.Context, id uint, cmd *UpdateAppointmentCommand) error
	Delete(ctx context.Context, id uint) error

	// CountAt counts the doctor's appointments at exactly the given
	// instant. The availability engine treats a zero count as a free slot.
	CountAt(ctx context.Context, doctorID uint, at time.Time) (int64, error)
}
