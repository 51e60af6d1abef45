package cpu

import (
	"encoding/binary"

	"github.com/digitalocean/go-smbios/smbios"
	pscpu "github.com/shirou/gopsutil/v3/cpu"
	log "github.com/sirupsen/logrus"
)

type frequencyHinter interface {
	FrequencyHint() Frequency
}

// resolveFrequency tries, in order: the backend's own frequency hint, the
// platform-specific source, SMBIOS processor records, and the generic
// OS-reported value. Each source only fills fields the previous ones left
// absent. When no source reports base or max, they are estimated around the
// current value; that estimate is approximate by nature.
func resolveFrequency(backend Backend) Frequency {
	var frequency Frequency

	if hinter, ok := backend.(frequencyHinter); ok {
		frequency = hinter.FrequencyHint()
	}

	platformFrequency(&frequency)

	if frequency.Base == nil || frequency.Current == nil || frequency.Max == nil {
		smbiosFrequency(&frequency)
	}

	if frequency.Current == nil {
		genericFrequency(&frequency)
	}

	fillEstimates(&frequency)
	return frequency
}

// fillEstimates derives base and max as -10%/+10% of the current frequency
// when no authoritative source reported either of them.
func fillEstimates(frequency *Frequency) {
	if frequency.Current == nil || frequency.Base != nil || frequency.Max != nil {
		return
	}
	log.Debug("estimating base and max frequency from current")
	base := *frequency.Current * 0.9
	max := *frequency.Current * 1.1
	frequency.Base = &base
	frequency.Max = &max
}

// SMBIOS Type 4 (Processor Information) field offsets relative to the start
// of the formatted section.
const (
	smbiosProcessorRecord  = 4
	smbiosMaxSpeedOffset   = 0x10
	smbiosCurSpeedOffset   = 0x12
	smbiosProcessorMinimum = 0x14
)

// smbiosFrequency reads current and max processor speed from the SMBIOS
// processor record. Access usually requires elevated privileges; failure just
// hands over to the next source.
func smbiosFrequency(frequency *Frequency) {
	stream, _, err := smbios.Stream()
	if err != nil {
		log.WithError(err).Debug("SMBIOS stream not available")
		return
	}
	defer stream.Close()

	records, err := smbios.NewDecoder(stream).Decode()
	if err != nil {
		log.WithError(err).Debug("failed to decode SMBIOS structures")
		return
	}

	for _, record := range records {
		if record.Header.Type != smbiosProcessorRecord || len(record.Formatted) < smbiosProcessorMinimum {
			continue
		}
		if frequency.Max == nil {
			if max := binary.LittleEndian.Uint16(record.Formatted[smbiosMaxSpeedOffset:]); max > 0 {
				mhz := float64(max)
				frequency.Max = &mhz
			}
		}
		if frequency.Current == nil {
			if current := binary.LittleEndian.Uint16(record.Formatted[smbiosCurSpeedOffset:]); current > 0 {
				mhz := float64(current)
				frequency.Current = &mhz
			}
		}
		break
	}
}

func genericFrequency(frequency *Frequency) {
	infos, err := pscpu.Info()
	if err != nil || len(infos) == 0 {
		log.WithError(err).Debug("generic frequency source not available")
		return
	}
	if infos[0].Mhz > 0 {
		mhz := infos[0].Mhz
		frequency.Current = &mhz
	}
}
