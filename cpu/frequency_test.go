package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillEstimates(t *testing.T) {
	current := 2000.0
	frequency := Frequency{Current: &current}
	fillEstimates(&frequency)
	require.NotNil(t, frequency.Base)
	require.NotNil(t, frequency.Max)
	assert.InDelta(t, 1800.0, *frequency.Base, 0.01)
	assert.InDelta(t, 2200.0, *frequency.Max, 0.01)
}

func TestFillEstimatesKeepsAuthoritativeValues(t *testing.T) {
	current := 2000.0
	base := 1500.0
	frequency := Frequency{Current: &current, Base: &base}
	fillEstimates(&frequency)
	assert.Equal(t, 1500.0, *frequency.Base)
	// Max is only estimated when neither base nor max was reported.
	assert.Nil(t, frequency.Max)
}

func TestFillEstimatesWithoutCurrent(t *testing.T) {
	var frequency Frequency
	fillEstimates(&frequency)
	assert.Nil(t, frequency.Base)
	assert.Nil(t, frequency.Current)
	assert.Nil(t, frequency.Max)
}

type hintedBackend struct {
	stubBackend
	hint Frequency
}

func (h *hintedBackend) FrequencyHint() Frequency {
	return h.hint
}

func TestResolveFrequencyPrefersBackendHint(t *testing.T) {
	base := 2100.0
	max := 4300.0
	backend := &hintedBackend{hint: Frequency{Base: &base, Max: &max}}

	frequency := resolveFrequency(backend)
	require.NotNil(t, frequency.Base)
	assert.Equal(t, 2100.0, *frequency.Base)
	require.NotNil(t, frequency.Max)
	assert.Equal(t, 4300.0, *frequency.Max)
}
