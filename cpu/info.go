package cpu

import (
	"runtime"
	"strings"
	"sync"

	pscpu "github.com/shirou/gopsutil/v3/cpu"
	log "github.com/sirupsen/logrus"
)

// Vendor identifies the CPU manufacturer. Unrecognized identification strings
// are kept verbatim instead of being collapsed to "Unknown".
type Vendor string

const (
	VendorIntel   Vendor = "Intel"
	VendorAMD     Vendor = "AMD"
	VendorARM     Vendor = "ARM"
	VendorApple   Vendor = "Apple"
	VendorUnknown Vendor = "Unknown"
)

func vendorFromID(id string) Vendor {
	switch {
	case id == "GenuineIntel":
		return VendorIntel
	case id == "AuthenticAMD":
		return VendorAMD
	case id == "ARM":
		return VendorARM
	case strings.HasPrefix(id, "Apple"):
		return VendorApple
	case id == "":
		return VendorUnknown
	}
	return Vendor(id)
}

func (v Vendor) String() string {
	return string(v)
}

// Version holds the family/model/stepping triple with extended bits already
// folded in.
type Version struct {
	Family   uint8 `json:"family"`
	Model    uint8 `json:"model"`
	Stepping uint8 `json:"stepping"`
}

// CacheType describes what a cache level stores.
type CacheType uint8

const (
	CacheUnknown CacheType = iota
	CacheData
	CacheInstruction
	CacheUnified
)

func (t CacheType) String() string {
	switch t {
	case CacheData:
		return "Data"
	case CacheInstruction:
		return "Instruction"
	case CacheUnified:
		return "Unified"
	}
	return "Unknown"
}

// CacheInfo describes a single cache instance.
type CacheInfo struct {
	Level         uint8
	Type          CacheType
	SizeKB        uint32
	LineSize      uint16
	Associativity uint16
	Sets          uint32
	// SharedBy is the number of logical cores sharing this cache, 0 when the
	// discovery method does not report it.
	SharedBy uint16
}

// Slot indices of CacheTopology.
const (
	SlotL1I = iota
	SlotL1D
	SlotL2
	SlotL3
	maxCacheSlots
)

// CacheTopology is a fixed 4-slot cache layout: L1 instruction, L1 data, L2, L3.
// Unresolved slots are nil.
type CacheTopology [maxCacheSlots]*CacheInfo

func (t CacheTopology) Empty() bool {
	for _, c := range t {
		if c != nil {
			return false
		}
	}
	return true
}

// Sizes reduces the topology to the KB-only view used for display.
func (t CacheTopology) Sizes() [maxCacheSlots]*uint32 {
	var sizes [maxCacheSlots]*uint32
	for i, c := range t {
		if c != nil {
			size := c.SizeKB
			sizes[i] = &size
		}
	}
	return sizes
}

// Frequency holds clock speeds in MHz. Each field may be absent independently.
type Frequency struct {
	Base    *float64
	Current *float64
	Max     *float64
}

// Info is an immutable snapshot of everything detected about the host CPU.
type Info struct {
	Vendor        Vendor
	BrandString   string
	Version       Version
	PhysicalCores int
	LogicalCores  int
	Frequency     Frequency
	CacheTopology CacheTopology
	CacheSizes    [maxCacheSlots]*uint32
	Features      FeatureSet
}

// Detect queries the hardware and assembles a fresh snapshot. Failures reading
// the mandatory identification registers are fatal; cache and frequency
// degrade to absent values.
func Detect() (*Info, error) {
	return detectWith(newBackend())
}

func detectWith(backend Backend) (*Info, error) {
	basic, err := backend.BasicInfo()
	if err != nil {
		return nil, &InfoReadError{Cause: "failed to get basic CPU info", Err: err}
	}
	if basic.VendorString == "" {
		return nil, VendorDetectionError
	}

	features, err := backend.Features()
	if err != nil {
		return nil, &InfoReadError{Cause: "failed to detect CPU features", Err: err}
	}

	topology, err := backend.CacheTopology()
	if err != nil {
		log.WithError(err).Debug("cache topology not available")
		topology = CacheTopology{}
	}

	frequency := resolveFrequency(backend)
	logical, physical := coreCounts()

	return &Info{
		Vendor:        vendorFromID(basic.VendorString),
		BrandString:   basic.BrandString,
		Version:       foldVersion(basic),
		PhysicalCores: physical,
		LogicalCores:  logical,
		Frequency:     frequency,
		CacheTopology: topology,
		CacheSizes:    topology.Sizes(),
		Features:      features,
	}, nil
}

func coreCounts() (logical, physical int) {
	logical, err := pscpu.Counts(true)
	if err != nil || logical < 1 {
		log.WithError(err).Debug("falling back to runtime.NumCPU for logical cores")
		logical = runtime.NumCPU()
	}
	physical, err = pscpu.Counts(false)
	if err != nil || physical < 1 {
		log.WithError(err).Debug("physical core count not available, assuming one thread per core")
		physical = logical
	}
	if physical > logical {
		physical = logical
	}
	return logical, physical
}

type holder struct {
	once sync.Once
	info *Info
	err  error
}

func (h *holder) get(backend Backend) (*Info, error) {
	h.once.Do(func() {
		h.info, h.err = detectWith(backend)
	})
	return h.info, h.err
}

var global holder

// Get returns the process-wide snapshot, detecting it on first call. The
// snapshot is never invalidated; call Detect to bypass the cache.
func Get() (*Info, error) {
	return global.get(newBackend())
}
