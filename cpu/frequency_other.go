//go:build !linux && !darwin && !windows

package cpu

// No authoritative frequency source on this platform; the generic fallback
// takes over.
func platformFrequency(frequency *Frequency) {
}
