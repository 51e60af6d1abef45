//go:build darwin

package cpu

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// platformFrequency fills in frequencies from the hw.cpufrequency sysctls.
// Apple Silicon does not expose them; detection then falls through to the
// generic source.
func platformFrequency(frequency *Frequency) {
	if frequency.Current == nil {
		frequency.Current = sysctlMHz("hw.cpufrequency")
	}
	if frequency.Max == nil {
		frequency.Max = sysctlMHz("hw.cpufrequency_max")
	}
	if frequency.Base == nil {
		frequency.Base = sysctlMHz("hw.cpufrequency_min")
	}
}

func sysctlMHz(name string) *float64 {
	hz, err := unix.SysctlUint64(name)
	if err != nil || hz == 0 {
		log.WithError(err).WithField("sysctl", name).Debug("sysctl not available")
		return nil
	}
	mhz := float64(hz) / 1_000_000.0
	return &mhz
}
