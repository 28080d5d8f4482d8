// Package common defines shared constants and sentinel errors used across
// the zenkeeper client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage failure")

	// Payload errors.
	ErrSerialization     = errors.New("serialization failure")
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Token lifecycle errors.
	ErrTokenMissing = errors.New("access token is not set")
	ErrTokenExpired = errors.New("token expired")
)
