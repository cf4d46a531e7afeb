package patient

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
