package service

import "errors"

// Sentinel errors let handlers pick the user-facing outcome deterministically
// instead of guessing from error text. ErrValidation wraps a reason, e.g.
// fmt.Errorf("%w: name is required", ErrValidation).
var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrValidation     = errors.New("validation failed")
)
