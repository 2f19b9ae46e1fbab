package aerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	err := NewError(baseErr)
	assert.NotNil(t, err)
	assert.Equal(t, "base error", err.Error())

	nilErr := NewError(nil)
	assert.Nil(t, nilErr)
}

func TestUnwrap(t *testing.T) {
	err := errors.New("test error")
	wrapped := NewError(err)
	if wrapped.Unwrap() != err {
		t.Errorf("Unwrap did not return the original error")
	}
}

// TestErrorsIsSeesThroughWrap mirrors how atz/errors.go builds its sentinel
// errors: a %w-wrapped sentinel passed to NewError must still satisfy
// errors.Is for callers matching on the sentinel.
func TestErrorsIsSeesThroughWrap(t *testing.T) {
	sentinel := errors.New("unknown zone")
	err := NewError(fmt.Errorf("%w: %q", sentinel, "Mars/Olympus"))

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, `unknown zone: "Mars/Olympus"`, err.Error())
}

func TestError_Assignment(t *testing.T) {
	err1 := NewError(fmt.Errorf("this is a test"))
	if err1 == nil || err1.Error() != "this is a test" {
		t.Fatalf("err1 should equal 'this is a test', got: %v", err1)
	}

	err2 := NewError(nil)
	if err2 != nil {
		t.Fatalf("err2 should be nil, got: %v", err2)
	}
}
