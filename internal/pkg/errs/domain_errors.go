package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Lookup errors
	ErrNotFound = errors.New("record not found")

	// Storage errors
	ErrStorage = errors.New("storage operation failed")
)
