package reporting

import (
	"encoding/json"
	"testing"

	"cpufetch/cpu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInfo() *cpu.Info {
	l1i := uint32(32)
	l1d := uint32(32)
	l2 := uint32(256)
	base := 1800.0
	current := 2400.0

	return &cpu.Info{
		Vendor:        cpu.VendorIntel,
		BrandString:   "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz",
		Version:       cpu.Version{Family: 6, Model: 0x8E, Stepping: 10},
		PhysicalCores: 4,
		LogicalCores:  8,
		Frequency:     cpu.Frequency{Base: &base, Current: &current},
		CacheSizes:    [4]*uint32{&l1i, &l1d, &l2, nil},
		Features:      cpu.SSE | cpu.SSE2 | cpu.AVX,
	}
}

func TestReportRoundTrip(t *testing.T) {
	report := NewReport(sampleInfo())

	encoded, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, *report, decoded)
}

func TestReportSchema(t *testing.T) {
	report := NewReport(sampleInfo())

	encoded, err := json.Marshal(report)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &raw))

	assert.Equal(t, "Intel", raw["vendor"])
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", raw["model"])

	cores, ok := raw["cores"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 4.0, cores["physical"])
	assert.Equal(t, 8.0, cores["logical"])

	cache, ok := raw["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 32.0, cache["l1i"])
	assert.Equal(t, 256.0, cache["l2"])
	// Undetected levels serialize as null.
	assert.Nil(t, cache["l3"])

	frequency, ok := raw["frequency"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1800.0, frequency["base"])
	assert.Equal(t, 2400.0, frequency["current"])
	assert.Nil(t, frequency["max"])

	assert.Equal(t, []interface{}{"SSE", "SSE2", "AVX"}, raw["features"])
}

func TestReportWithoutFeatures(t *testing.T) {
	info := sampleInfo()
	info.Features = nil
	report := NewReport(info)

	encoded, err := json.Marshal(report)
	require.NoError(t, err)
	// An empty feature set serializes as an empty array, not null.
	assert.Contains(t, string(encoded), `"features":[]`)
}
