package chatview

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates store state failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedVersion indicates a snapshot written in an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrMessageNotFound indicates the requested message does not exist.
	ErrMessageNotFound = errors.New("message not found")
)
