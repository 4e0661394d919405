package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidName  = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be positive")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
