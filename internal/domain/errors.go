package domain

import "errors"

var (
	// ErrInvalidInput marks caller-supplied data that cannot be used, such as
	// an empty or malformed route catalog or a negative trip count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientReferenceData is returned when no usable fuel-price
	// observations exist to derive a trip date range.
	ErrInsufficientReferenceData = errors.New("insufficient reference data")
)
