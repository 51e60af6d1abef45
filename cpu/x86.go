package cpu

// x86Backend decodes raw CPUID output. The instruction itself is injected as a
// function so tests can drive the decoder with canned register tables.
type x86Backend struct {
	cpuid cpuidFunc
}

type cpuidFunc func(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

func newX86Backend() *x86Backend {
	return &x86Backend{cpuid: cpuidNative}
}

// Register selects which CPUID output register a feature bit lives in.
type Register uint8

const (
	RegEAX Register = iota
	RegEBX
	RegECX
	RegEDX
)

const (
	leafVendor          = 0x0
	leafFeatures        = 0x1
	leafCacheDescriptor = 0x2
	leafCacheParams     = 0x4
	leafExtendedFeature = 0x7
	leafFrequency       = 0x16
	leafExtendedBase    = 0x80000000
	leafBrandString     = 0x80000002
	leafAmdL1Cache      = 0x80000005
	leafAmdL2L3Cache    = 0x80000006
	leafAmdCacheParams  = 0x8000001D
)

func (b *x86Backend) maxLeaf() uint32 {
	eax, _, _, _ := b.cpuid(leafVendor, 0)
	return eax
}

func (b *x86Backend) maxExtendedLeaf() uint32 {
	eax, _, _, _ := b.cpuid(leafExtendedBase, 0)
	return eax
}

func u32str(reg uint32) string {
	return string([]byte{byte(reg), byte(reg >> 8), byte(reg >> 16), byte(reg >> 24)})
}

func (b *x86Backend) vendorString() string {
	_, ebx, ecx, edx := b.cpuid(leafVendor, 0)
	return u32str(ebx) + u32str(edx) + u32str(ecx)
}

// brandString reads the 48-byte marketing name from the extended brand leaves.
// It falls back to "Unknown" rather than failing since many virtual CPUs omit it.
func (b *x86Backend) brandString() string {
	if b.maxExtendedLeaf() < leafBrandString+2 {
		return "Unknown"
	}
	var raw []byte
	for leaf := uint32(leafBrandString); leaf <= leafBrandString+2; leaf++ {
		eax, ebx, ecx, edx := b.cpuid(leaf, 0)
		raw = append(raw, u32str(eax)+u32str(ebx)+u32str(ecx)+u32str(edx)...)
	}
	brand := trimBrand(raw)
	if brand == "" {
		return "Unknown"
	}
	return brand
}

func trimBrand(raw []byte) string {
	end := len(raw)
	for i, c := range raw {
		if c == 0 {
			end = i
			break
		}
	}
	start := 0
	for start < end && raw[start] == ' ' {
		start++
	}
	for end > start && raw[end-1] == ' ' {
		end--
	}
	return string(raw[start:end])
}

// BasicInfo reads the vendor string, brand string and the mandatory feature
// leaf. A missing feature leaf is fatal for the whole detection call.
func (b *x86Backend) BasicInfo() (*BasicInfo, error) {
	if b.maxLeaf() < leafFeatures {
		return nil, &UnsupportedLeafError{Leaf: leafFeatures}
	}

	eax, _, ecx, edx := b.cpuid(leafFeatures, 0)

	info := &BasicInfo{
		VendorString:   b.vendorString(),
		BrandString:    b.brandString(),
		Stepping:       uint8(eax & 0xF),
		Model:          uint8((eax >> 4) & 0xF),
		Family:         uint8((eax >> 8) & 0xF),
		ProcessorType:  uint8((eax >> 12) & 0x3),
		ExtendedModel:  uint8((eax >> 16) & 0xF),
		ExtendedFamily: uint8((eax >> 20) & 0xFF),
		BaseFeatures:   uint64(edx)<<32 | uint64(ecx),
	}

	// The extended feature leaf is optional. Absence means zero bits, not an error.
	if b.maxLeaf() >= leafExtendedFeature {
		_, ebx7, ecx7, _ := b.cpuid(leafExtendedFeature, 0)
		info.ExtendedFeatures = uint64(ebx7)<<32 | uint64(ecx7)
	}

	return info, nil
}

// foldVersion applies the extended family/model bit-shifting rules: the
// extended family nibbles join in only when the base family is 0xF, the
// extended model when the base family is 0xF or 0x6.
func foldVersion(info *BasicInfo) Version {
	family := info.Family
	if info.Family == 0xF {
		family = info.ExtendedFamily<<4 + info.Family
	}
	model := info.Model
	if info.Family == 0xF || info.Family == 0x6 {
		model = info.ExtendedModel<<4 + info.Model
	}
	return Version{
		Family:   family,
		Model:    model,
		Stepping: info.Stepping,
	}
}

// HasFeature tests a bit in the base feature leaf. Only ECX and EDX carry
// feature bits there; any other register selector returns false.
func (b *x86Backend) HasFeature(bit uint32, reg Register) bool {
	if bit > 31 || b.maxLeaf() < leafFeatures {
		return false
	}
	_, _, ecx, edx := b.cpuid(leafFeatures, 0)
	switch reg {
	case RegECX:
		return ecx&(1<<bit) != 0
	case RegEDX:
		return edx&(1<<bit) != 0
	}
	return false
}

// HasExtendedFeature tests a bit in the extended feature leaf. Only EBX and
// ECX are meaningful there.
func (b *x86Backend) HasExtendedFeature(bit uint32, reg Register) bool {
	if bit > 31 || b.maxLeaf() < leafExtendedFeature {
		return false
	}
	_, ebx, ecx, _ := b.cpuid(leafExtendedFeature, 0)
	switch reg {
	case RegEBX:
		return ebx&(1<<bit) != 0
	case RegECX:
		return ecx&(1<<bit) != 0
	}
	return false
}

var x86BaseFeatureBits = []struct {
	bit     uint32
	reg     Register
	feature X86Features
}{
	{25, RegEDX, SSE},
	{26, RegEDX, SSE2},
	{0, RegECX, SSE3},
	{9, RegECX, SSSE3},
	{12, RegECX, FMA},
	{19, RegECX, SSE41},
	{20, RegECX, SSE42},
	{23, RegECX, POPCNT},
	{25, RegECX, AES},
	{28, RegECX, AVX},
	{29, RegECX, F16C},
}

var x86ExtendedFeatureBits = []struct {
	bit     uint32
	reg     Register
	feature X86Features
}{
	{3, RegEBX, BMI1},
	{5, RegEBX, AVX2},
	{8, RegEBX, BMI2},
	{16, RegEBX, AVX512F},
	{17, RegEBX, AVX512DQ},
	{28, RegEBX, AVX512CD},
	{30, RegEBX, AVX512BW},
	{31, RegEBX, AVX512VL},
}

func (b *x86Backend) Features() (FeatureSet, error) {
	features := X86Features(0)
	for _, entry := range x86BaseFeatureBits {
		if b.HasFeature(entry.bit, entry.reg) {
			features = features.Set(entry.feature)
		}
	}
	for _, entry := range x86ExtendedFeatureBits {
		if b.HasExtendedFeature(entry.bit, entry.reg) {
			features = features.Set(entry.feature)
		}
	}
	return features, nil
}

// FrequencyHint reads the processor frequency leaf when present. Values are
// reported by firmware and may be zero on older or virtualized CPUs.
func (b *x86Backend) FrequencyHint() Frequency {
	var frequency Frequency
	if b.maxLeaf() < leafFrequency {
		return frequency
	}
	eax, ebx, _, _ := b.cpuid(leafFrequency, 0)
	if base := eax & 0xFFFF; base > 0 {
		mhz := float64(base)
		frequency.Base = &mhz
	}
	if max := ebx & 0xFFFF; max > 0 {
		mhz := float64(max)
		frequency.Max = &mhz
	}
	return frequency
}
