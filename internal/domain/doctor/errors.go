package doctor

import "errors"

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
