package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArm64BasicInfo(t *testing.T) {
	backend := &arm64Backend{}

	info, err := backend.BasicInfo()
	require.NoError(t, err)

	assert.Equal(t, "ARM", info.VendorString)
	assert.Equal(t, "ARM Processor", info.BrandString)
	// No vendor-specific register access, so the version stays zero.
	assert.Equal(t, Version{}, foldVersion(info))
}

func TestArm64CacheTopologyAbsent(t *testing.T) {
	backend := &arm64Backend{}

	topology, err := backend.CacheTopology()
	require.NoError(t, err)
	assert.True(t, topology.Empty())
}

func TestArm64Features(t *testing.T) {
	backend := &arm64Backend{}

	featureSet, err := backend.Features()
	require.NoError(t, err)

	features, ok := featureSet.(ArmFeatures)
	require.True(t, ok)

	if runtime.GOARCH == "arm64" {
		assert.True(t, features.Contains(ASIMD))
	} else {
		assert.True(t, features.Empty())
	}
}
