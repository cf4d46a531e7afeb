package history

import "errors"

var (
	ErrHistoryNotFound  = errors.New("history record not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
