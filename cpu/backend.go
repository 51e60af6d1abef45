package cpu

import "runtime"

// BasicInfo carries the raw identification data every backend must produce.
// Family/model/stepping and the feature registers are only meaningful on the
// x86 path; other backends leave them zero.
type BasicInfo struct {
	VendorString   string
	BrandString    string
	Family         uint8
	Model          uint8
	Stepping       uint8
	ExtendedFamily uint8
	ExtendedModel  uint8
	ProcessorType  uint8
	// BaseFeatures is CPUID leaf 1 EDX in the upper 32 bits, ECX in the lower.
	BaseFeatures uint64
	// ExtendedFeatures is CPUID leaf 7 EBX in the upper 32 bits, ECX in the lower.
	ExtendedFeatures uint64
}

// Backend is the architecture-specific identification layer.
type Backend interface {
	BasicInfo() (*BasicInfo, error)
	Features() (FeatureSet, error)
	CacheTopology() (CacheTopology, error)
}

func newBackend() Backend {
	switch runtime.GOARCH {
	case "amd64":
		return newX86Backend()
	case "arm64":
		return &arm64Backend{}
	}
	return unsupportedBackend{}
}

type unsupportedBackend struct{}

func (unsupportedBackend) BasicInfo() (*BasicInfo, error) {
	return nil, UnsupportedArchError
}

func (unsupportedBackend) Features() (FeatureSet, error) {
	return nil, FeatureDetectionUnsupportedError
}

func (unsupportedBackend) CacheTopology() (CacheTopology, error) {
	return CacheTopology{}, UnsupportedArchError
}
