package cpu

import (
	"github.com/klauspost/cpuid/v2"
	log "github.com/sirupsen/logrus"
)

// arm64Backend detects CPU capabilities through the OS-exposed feature
// registers surfaced by the cpuid package. There is no brand string or
// family/model/stepping query on this path, and cache topology is not
// resolved; those fields stay at their zero values.
type arm64Backend struct{}

func (b *arm64Backend) BasicInfo() (*BasicInfo, error) {
	return &BasicInfo{
		VendorString: "ARM",
		BrandString:  "ARM Processor",
	}, nil
}

// Predicates missing from the runtime detection surface simply contribute no
// bit; they never fail the call.
var arm64FeatureBits = []struct {
	id      cpuid.FeatureID
	feature ArmFeatures
}{
	{cpuid.ASIMD, NEON},
	{cpuid.AESARM, AESARM},
	{cpuid.PMULL, PMULL},
	{cpuid.SHA1, SHA1},
	{cpuid.SHA2, SHA2},
	{cpuid.CRC32, CRC32},
	{cpuid.ATOMICS, ATOMICS},
	{cpuid.FP, FP},
	{cpuid.ASIMD, ASIMD},
	{cpuid.FPHP, FPHP},
	{cpuid.ASIMDHP, ASIMDHP},
	{cpuid.ASIMDDP, ASIMDDP},
}

func (b *arm64Backend) Features() (FeatureSet, error) {
	features := ArmFeatures(0)
	for _, entry := range arm64FeatureBits {
		if cpuid.CPU.Supports(entry.id) {
			features = features.Set(entry.feature)
		}
	}
	return features, nil
}

func (b *arm64Backend) CacheTopology() (CacheTopology, error) {
	log.Debug("cache topology is not resolved on arm64")
	return CacheTopology{}, nil
}
