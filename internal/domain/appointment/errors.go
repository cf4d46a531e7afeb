package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
)
