package atime

import (
	"time"
)

// EnsureDateTime ensures that the input is a time.Time object.
// If the input is nil or not a time.Time, it returns the zero value of time.Time.
func EnsureDateTime(t interface{}) time.Time {
	switch v := t.(type) {
	case *time.Time:
		if v != nil {
			return *v
		}
	case time.Time:
		return v
	}
	return time.Time{}
}
