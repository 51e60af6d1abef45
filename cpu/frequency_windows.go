//go:build windows

package cpu

import (
	"github.com/StackExchange/wmi"
	log "github.com/sirupsen/logrus"
)

type win32Processor struct {
	CurrentClockSpeed *uint32
	MaxClockSpeed     *uint32
}

// platformFrequency fills in frequencies from the Win32_Processor WMI class.
// When only max is known, base is estimated at 80% of it, a common ratio on
// desktop parts.
func platformFrequency(frequency *Frequency) {
	var processors []win32Processor
	query := "SELECT CurrentClockSpeed, MaxClockSpeed FROM Win32_Processor"
	if err := wmi.Query(query, &processors); err != nil {
		log.WithError(err).Debug("WMI processor query failed")
		return
	}
	if len(processors) == 0 {
		return
	}

	processor := processors[0]
	if frequency.Current == nil && processor.CurrentClockSpeed != nil && *processor.CurrentClockSpeed > 0 {
		mhz := float64(*processor.CurrentClockSpeed)
		frequency.Current = &mhz
	}
	if processor.MaxClockSpeed != nil && *processor.MaxClockSpeed > 0 {
		if frequency.Max == nil {
			mhz := float64(*processor.MaxClockSpeed)
			frequency.Max = &mhz
		}
		if frequency.Base == nil {
			base := float64(*processor.MaxClockSpeed) * 0.8
			frequency.Base = &base
		}
	}
}
