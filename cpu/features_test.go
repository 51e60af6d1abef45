package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestX86FeaturesSetAndContains(t *testing.T) {
	features := X86Features(0)
	assert.True(t, features.Empty())
	assert.False(t, features.Contains(SSE))

	features = features.Set(SSE).Set(SSE2)
	assert.True(t, features.Contains(SSE))
	assert.True(t, features.Contains(SSE2))
	assert.False(t, features.Contains(AVX))
	assert.False(t, features.Empty())
}

func TestX86FeaturesUnionLaws(t *testing.T) {
	a := SSE | SSE2
	b := AVX | AVX2
	c := X86Features(FMA)

	assert.Equal(t, b.Union(a), a.Union(b))
	assert.Equal(t, a.Union(b.Union(c)), a.Union(b).Union(c))
	assert.Equal(t, b.Intersect(a), a.Intersect(b))
	assert.Equal(t, a.Intersect(b.Intersect(c)), a.Intersect(b).Intersect(c))
	assert.True(t, a.Union(b).Intersect(a).Contains(SSE))
	assert.True(t, a.Intersect(b).Empty())
}

func TestX86FeatureNames(t *testing.T) {
	features := SSE41 | SSE42 | AVX512F
	assert.Equal(t, []string{"SSE4.1", "SSE4.2", "AVX512F"}, features.Names())
	assert.Nil(t, X86Features(0).Names())
}

func TestArmFeaturesSetAndContains(t *testing.T) {
	features := ArmFeatures(0)
	assert.True(t, features.Empty())
	assert.False(t, features.Contains(NEON))

	features = features.Set(NEON).Set(AESARM)
	assert.True(t, features.Contains(NEON))
	assert.True(t, features.Contains(AESARM))
	assert.False(t, features.Contains(SHA2))
}

func TestArmFeaturesUnionLaws(t *testing.T) {
	a := NEON | FP
	b := CRC32 | ATOMICS

	assert.Equal(t, b.Union(a), a.Union(b))
	assert.Equal(t, b.Intersect(a), a.Intersect(b))
	assert.True(t, a.Intersect(b).Empty())
}

func TestArmFeatureNames(t *testing.T) {
	features := NEON | AESARM | ASIMDDP
	assert.Equal(t, []string{"NEON", "AES", "ASIMDDP"}, features.Names())
}
