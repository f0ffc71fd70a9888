// Package common defines shared constants and sentinel errors used across
// campusfind components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrRevisionConflict = errors.New("revision conflict")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation / domain-specific errors.
	ErrValidation         = errors.New("validation error")
	ErrEmailTaken         = errors.New("email already registered")
	ErrItemAlreadyClaimed   = errors.New("item already claimed")
	ErrItemNotClaimed       = errors.New("item not claimed")
	ErrItemAlreadyContacted = errors.New("item already contacted")
	ErrNotItemFinder      = errors.New("not the finder of this item")
)
