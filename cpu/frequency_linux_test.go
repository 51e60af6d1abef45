//go:build linux

package cpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cpuinfoSample = `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz
cpu MHz		: 2400.000
cache size	: 8192 KB
`

func TestPlatformFrequencyLinux(t *testing.T) {
	dir := t.TempDir()

	cpuinfo := filepath.Join(dir, "cpuinfo")
	require.NoError(t, os.WriteFile(cpuinfo, []byte(cpuinfoSample), 0o644))

	cpufreq := filepath.Join(dir, "cpufreq")
	require.NoError(t, os.Mkdir(cpufreq, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cpufreq, "scaling_max_freq"), []byte("4000000\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cpufreq, "base_frequency"), []byte("1800000\n"), 0o644))

	origCPUInfo, origCpufreq := procCPUInfoPath, cpufreqPath
	procCPUInfoPath, cpufreqPath = cpuinfo, cpufreq
	defer func() {
		procCPUInfoPath, cpufreqPath = origCPUInfo, origCpufreq
	}()

	var frequency Frequency
	platformFrequency(&frequency)

	require.NotNil(t, frequency.Current)
	assert.InDelta(t, 2400.0, *frequency.Current, 0.01)
	require.NotNil(t, frequency.Max)
	assert.InDelta(t, 4000.0, *frequency.Max, 0.01)
	require.NotNil(t, frequency.Base)
	assert.InDelta(t, 1800.0, *frequency.Base, 0.01)
}

func TestPlatformFrequencySysfsFallback(t *testing.T) {
	dir := t.TempDir()

	cpufreq := filepath.Join(dir, "cpufreq")
	require.NoError(t, os.Mkdir(cpufreq, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cpufreq, "scaling_cur_freq"), []byte("3200000\n"), 0o644))

	origCPUInfo, origCpufreq := procCPUInfoPath, cpufreqPath
	procCPUInfoPath, cpufreqPath = filepath.Join(dir, "missing"), cpufreq
	defer func() {
		procCPUInfoPath, cpufreqPath = origCPUInfo, origCpufreq
	}()

	var frequency Frequency
	platformFrequency(&frequency)

	require.NotNil(t, frequency.Current)
	assert.InDelta(t, 3200.0, *frequency.Current, 0.01)
	assert.Nil(t, frequency.Max)
	assert.Nil(t, frequency.Base)
}
