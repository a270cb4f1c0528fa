// internal/core/domain/errors.go
package domain

import "scanforge/internal/platform/errors"

var (
	// ErrEmptyTarget indicates an empty target string.
	ErrEmptyTarget = errors.New("target is empty")

	// ErrInvalidTarget indicates a target that cannot be classified or parsed.
	ErrInvalidTarget = errors.New("invalid target")
)
