package specialty

import "errors"

var (
	ErrSpecialtyNotFound = errors.New("specialty not found")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)
