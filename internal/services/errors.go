package services

import "errors"

var (
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidField   = errors.New("invalid field value")
	ErrSchemaMismatch = errors.New("feature schema mismatch")
	ErrInvalidModel   = errors.New("invalid model artifact")
)
