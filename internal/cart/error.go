package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidProductID = errors.New("product id is required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
