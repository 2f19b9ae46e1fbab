package aerr

// Error wraps the built-in error interface so zone-resolution failures
// (unknown zone, out-of-range instant) can be returned as a named type
// instead of a bare error.
type Error struct {
	error
}

// NewError creates a new Error instance from a non-nil error.
// Returns nil if the input error is nil.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{error: err}
}

// Error returns the string representation of the embedded error.
func (err *Error) Error() string {
	if err == nil || err.error == nil {
		return ""
	}
	return err.error.Error()
}

// Unwrap returns the embedded error, letting errors.Is/errors.As see
// through to the sentinel each Error wraps.
func (err *Error) Unwrap() error {
	return err.error
}
