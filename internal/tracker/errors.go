package tracker

import "errors"

// The two error kinds callers can act on. Missing ids on delete/toggle are
// deliberately not errors, those are no-ops.
var (
	// ErrValidation means the operation was rejected outright and no state
	// changed.
	ErrValidation = errors.New("validation failed")

	// ErrStorage means the in-memory mutation was applied but the
	// write-through save failed. The caller decides whether to retry the
	// save or warn about unsaved changes.
	ErrStorage = errors.New("storage failure")
)
