package cleaning

import "errors"

var (
	// ErrEmptySheet is returned when an uploaded sheet has no data rows.
	ErrEmptySheet = errors.New("empty file: sheet has no rows")

	// ErrUnknownColumn is returned when a column assignment names a column the
	// sheet does not carry.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNoColumnAssigned is returned when a row operation requires a column
	// assignment the mode does not have yet.
	ErrNoColumnAssigned = errors.New("no column assigned for mode")

	// ErrRowNotFound is returned when a row id does not exist in the session.
	ErrRowNotFound = errors.New("row not found")

	// ErrModeUnsupported is returned when an operation is invoked for a mode
	// that does not support it (e.g. span selection or rule promotion in
	// price mode).
	ErrModeUnsupported = errors.New("operation not supported for mode")

	// ErrNotPromotable is returned when rule promotion is invoked on a row
	// that is neither NEW nor a manually overridden MATCHED.
	ErrNotPromotable = errors.New("row is not eligible for rule promotion")

	// ErrSessionNotFound is returned by session owners when a session id is
	// unknown or has expired.
	ErrSessionNotFound = errors.New("session not found")
)
