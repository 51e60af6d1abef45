package cpu

// FeatureSet is the read side of an architecture-scoped capability bit-set.
// Exactly one concrete type backs it per snapshot: X86Features on x86/x86_64,
// ArmFeatures on ARM64.
type FeatureSet interface {
	// Names returns the names of all set capabilities in declaration order.
	Names() []string
	Empty() bool
}

// X86Features is a bit-set of x86/x86_64 instruction-set capabilities.
type X86Features uint64

const (
	SSE X86Features = 1 << iota
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	AVX
	AVX2
	FMA
	BMI1
	BMI2
	F16C
	POPCNT
	AES
	AVX512F
	AVX512BW
	AVX512CD
	AVX512DQ
	AVX512VL
)

var x86FeatureNames = []struct {
	bit  X86Features
	name string
}{
	{SSE, "SSE"},
	{SSE2, "SSE2"},
	{SSE3, "SSE3"},
	{SSSE3, "SSSE3"},
	{SSE41, "SSE4.1"},
	{SSE42, "SSE4.2"},
	{AVX, "AVX"},
	{AVX2, "AVX2"},
	{FMA, "FMA"},
	{BMI1, "BMI1"},
	{BMI2, "BMI2"},
	{F16C, "F16C"},
	{POPCNT, "POPCNT"},
	{AES, "AES"},
	{AVX512F, "AVX512F"},
	{AVX512BW, "AVX512BW"},
	{AVX512CD, "AVX512CD"},
	{AVX512DQ, "AVX512DQ"},
	{AVX512VL, "AVX512VL"},
}

func (f X86Features) Set(other X86Features) X86Features {
	return f | other
}

func (f X86Features) Union(other X86Features) X86Features {
	return f | other
}

func (f X86Features) Intersect(other X86Features) X86Features {
	return f & other
}

func (f X86Features) Contains(other X86Features) bool {
	return f&other == other && other != 0
}

func (f X86Features) Empty() bool {
	return f == 0
}

func (f X86Features) Names() []string {
	var names []string
	for _, entry := range x86FeatureNames {
		if f&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

// ArmFeatures is a bit-set of ARM64 instruction-set capabilities.
type ArmFeatures uint64

const (
	NEON ArmFeatures = 1 << iota
	AESARM
	PMULL
	SHA1
	SHA2
	CRC32
	ATOMICS
	FP
	ASIMD
	FPHP
	ASIMDHP
	ASIMDDP
	ASIMDFHM
)

var armFeatureNames = []struct {
	bit  ArmFeatures
	name string
}{
	{NEON, "NEON"},
	{AESARM, "AES"},
	{PMULL, "PMULL"},
	{SHA1, "SHA1"},
	{SHA2, "SHA2"},
	{CRC32, "CRC32"},
	{ATOMICS, "ATOMICS"},
	{FP, "FP"},
	{ASIMD, "ASIMD"},
	{FPHP, "FPHP"},
	{ASIMDHP, "ASIMDHP"},
	{ASIMDDP, "ASIMDDP"},
	{ASIMDFHM, "ASIMDFHM"},
}

func (f ArmFeatures) Set(other ArmFeatures) ArmFeatures {
	return f | other
}

func (f ArmFeatures) Union(other ArmFeatures) ArmFeatures {
	return f | other
}

func (f ArmFeatures) Intersect(other ArmFeatures) ArmFeatures {
	return f & other
}

func (f ArmFeatures) Contains(other ArmFeatures) bool {
	return f&other == other && other != 0
}

func (f ArmFeatures) Empty() bool {
	return f == 0
}

func (f ArmFeatures) Names() []string {
	var names []string
	for _, entry := range armFeatureNames {
		if f&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}
