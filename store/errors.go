package store

import "errors"

// Sentinel errors for expected outcomes. Handlers match these with
// errors.Is to pick a status code; anything else is a storage failure.
var (
	ErrUserIDRequired    = errors.New("user id is required")
	ErrProductIDRequired = errors.New("product id is required")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProduct    = errors.New("invalid product")
)
