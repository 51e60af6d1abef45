package cpu

import (
	"errors"
	"fmt"
)

var VendorDetectionError = errors.New("failed to detect CPU vendor")

var UnsupportedArchError = errors.New("unsupported CPU architecture")

var FeatureDetectionUnsupportedError = errors.New("feature detection not supported on this architecture")

// InfoReadError wraps the underlying cause of a failed CPU information read.
type InfoReadError struct {
	Cause string
	Err   error
}

func (e *InfoReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read CPU information: %v: %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("failed to read CPU information: %v", e.Cause)
}

func (e *InfoReadError) Unwrap() error {
	return e.Err
}

// UnsupportedLeafError reports a CPUID leaf the processor does not implement.
type UnsupportedLeafError struct {
	Leaf uint32
}

func (e *UnsupportedLeafError) Error() string {
	return fmt.Sprintf("CPUID leaf %#x not supported", e.Leaf)
}
