package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedLeafErrorMessage(t *testing.T) {
	err := &UnsupportedLeafError{Leaf: 1}
	assert.Equal(t, "CPUID leaf 0x1 not supported", err.Error())
}

func TestInfoReadErrorWrapping(t *testing.T) {
	err := &InfoReadError{Cause: "failed to get basic CPU info", Err: UnsupportedArchError}
	assert.True(t, errors.Is(err, UnsupportedArchError))
	assert.Contains(t, err.Error(), "failed to get basic CPU info")
	assert.Contains(t, err.Error(), UnsupportedArchError.Error())
}

func TestInfoReadErrorWithoutCause(t *testing.T) {
	err := &InfoReadError{Cause: "registers unreadable"}
	assert.Equal(t, "failed to read CPU information: registers unreadable", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
