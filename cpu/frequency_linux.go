//go:build linux

package cpu

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Overridable for tests.
var (
	procCPUInfoPath = "/proc/cpuinfo"
	cpufreqPath     = "/sys/devices/system/cpu/cpu0/cpufreq"
)

// platformFrequency fills in frequencies from /proc/cpuinfo and the cpufreq
// sysfs interface. cpufreq reports kHz.
func platformFrequency(frequency *Frequency) {
	if frequency.Current == nil {
		frequency.Current = procCurrentMHz()
	}
	if frequency.Current == nil {
		frequency.Current = sysfsMHz("scaling_cur_freq")
	}
	if frequency.Max == nil {
		frequency.Max = sysfsMHz("scaling_max_freq")
	}
	if frequency.Base == nil {
		frequency.Base = sysfsMHz("base_frequency")
	}
}

func procCurrentMHz() *float64 {
	file, err := os.Open(procCPUInfoPath)
	if err != nil {
		log.WithError(err).Debug("cannot open cpuinfo")
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found || strings.TrimSpace(key) != "cpu MHz" {
			continue
		}
		mhz, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &mhz
	}
	return nil
}

func sysfsMHz(name string) *float64 {
	content, err := os.ReadFile(filepath.Join(cpufreqPath, name))
	if err != nil {
		return nil
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(content)), 64)
	if err != nil {
		return nil
	}
	mhz := khz / 1000.0
	return &mhz
}
