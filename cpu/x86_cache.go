package cpu

import (
	log "github.com/sirupsen/logrus"
)

// CacheTopology resolves the cache hierarchy by trying three discovery
// strategies in priority order and returning the first one that yields any
// cache entry. Results from different strategies are never merged.
func (b *x86Backend) CacheTopology() (CacheTopology, error) {
	strategies := []struct {
		name string
		run  func() CacheTopology
	}{
		{"deterministic", b.deterministicCaches},
		{"vendor-extended", b.extendedCaches},
		{"legacy", b.legacyCaches},
	}
	for _, strategy := range strategies {
		topology := strategy.run()
		if !topology.Empty() {
			log.WithField("strategy", strategy.name).Debug("resolved cache topology")
			return topology, nil
		}
	}
	return CacheTopology{}, nil
}

// slotFor maps a cache descriptor to its fixed topology slot. Descriptors at
// levels outside the L1i/L1d/L2/L3 layout take the first free slot.
func slotFor(level uint8, cacheType CacheType, topology *CacheTopology) (int, bool) {
	switch {
	case level == 1 && cacheType == CacheInstruction:
		return SlotL1I, topology[SlotL1I] == nil
	case level == 1 && cacheType == CacheData:
		return SlotL1D, topology[SlotL1D] == nil
	case level == 2:
		return SlotL2, topology[SlotL2] == nil
	case level == 3:
		return SlotL3, topology[SlotL3] == nil
	}
	for i := range topology {
		if topology[i] == nil {
			return i, true
		}
	}
	return 0, false
}

// deterministicCaches enumerates the deterministic cache parameter leaf
// (Intel leaf 4, AMD leaf 0x8000001D), the only strategy that reports exact
// set counts and sharing information.
func (b *x86Backend) deterministicCaches() CacheTopology {
	var topology CacheTopology

	leaf := uint32(leafCacheParams)
	if b.vendorString() == "AuthenticAMD" {
		if b.maxExtendedLeaf() < leafAmdCacheParams {
			return topology
		}
		leaf = leafAmdCacheParams
	} else if b.maxLeaf() < leafCacheParams {
		return topology
	}

	found := 0
	for subleaf := uint32(0); subleaf < 16 && found < maxCacheSlots; subleaf++ {
		eax, ebx, ecx, _ := b.cpuid(leaf, subleaf)

		cacheType := decodeCacheType(eax & 0x1F)
		if cacheType == CacheUnknown {
			break
		}

		level := uint8((eax >> 5) & 0x7)
		lineSize := (ebx & 0xFFF) + 1
		partitions := ((ebx >> 12) & 0x3FF) + 1
		ways := ((ebx >> 22) & 0x3FF) + 1
		sets := ecx + 1
		sharedBy := ((eax >> 14) & 0xFFF) + 1

		slot, free := slotFor(level, cacheType, &topology)
		if !free {
			continue
		}
		topology[slot] = &CacheInfo{
			Level:         level,
			Type:          cacheType,
			SizeKB:        ways * partitions * lineSize * sets / 1024,
			LineSize:      uint16(lineSize),
			Associativity: uint16(ways),
			Sets:          sets,
			SharedBy:      uint16(sharedBy),
		}
		found++
	}

	return topology
}

func decodeCacheType(raw uint32) CacheType {
	switch raw {
	case 1:
		return CacheData
	case 2:
		return CacheInstruction
	case 3:
		return CacheUnified
	}
	return CacheUnknown
}

// extendedCaches reads the AMD extended cache leaves. These report size, line
// size and associativity but no set counts, and sharing is not specified.
func (b *x86Backend) extendedCaches() CacheTopology {
	var topology CacheTopology

	if b.maxExtendedLeaf() < leafAmdL1Cache {
		return topology
	}

	_, _, ecx, edx := b.cpuid(leafAmdL1Cache, 0)
	if size := (ecx >> 24) & 0xFF; size > 0 {
		topology[SlotL1D] = &CacheInfo{
			Level:         1,
			Type:          CacheData,
			SizeKB:        size,
			LineSize:      uint16(ecx & 0xFF),
			Associativity: uint16((ecx >> 16) & 0xFF),
			SharedBy:      1,
		}
	}
	if size := (edx >> 24) & 0xFF; size > 0 {
		topology[SlotL1I] = &CacheInfo{
			Level:         1,
			Type:          CacheInstruction,
			SizeKB:        size,
			LineSize:      uint16(edx & 0xFF),
			Associativity: uint16((edx >> 16) & 0xFF),
			SharedBy:      1,
		}
	}

	if b.maxExtendedLeaf() < leafAmdL2L3Cache {
		return topology
	}

	_, _, ecx, edx = b.cpuid(leafAmdL2L3Cache, 0)
	if size := (ecx >> 16) & 0xFFFF; size > 0 {
		topology[SlotL2] = &CacheInfo{
			Level:         2,
			Type:          CacheUnified,
			SizeKB:        size,
			LineSize:      uint16(ecx & 0xFF),
			Associativity: amdAssociativity(uint16((ecx >> 12) & 0xF)),
			SharedBy:      1,
		}
	}
	if size := (edx >> 18) & 0x3FFF; size > 0 {
		topology[SlotL3] = &CacheInfo{
			Level:         3,
			Type:          CacheUnified,
			SizeKB:        size * 512,
			LineSize:      uint16(edx & 0xFF),
			Associativity: amdAssociativity(uint16((edx >> 12) & 0xF)),
			SharedBy:      0,
		}
	}

	return topology
}

// amdAssociativity decodes the 4-bit associativity field of leaf 0x80000006.
// 0xF means fully associative, reported as 0xFF.
func amdAssociativity(code uint16) uint16 {
	switch code {
	case 0x1, 0x2, 0x4:
		return code
	case 0x6:
		return 8
	case 0x8:
		return 16
	case 0xA:
		return 32
	case 0xB:
		return 48
	case 0xC:
		return 64
	case 0xD:
		return 96
	case 0xE:
		return 128
	case 0xF:
		return 0xFF
	}
	return 0
}

type legacyDescriptor struct {
	level         uint8
	cacheType     CacheType
	sizeKB        uint32
	lineSize      uint16
	associativity uint16
}

// Common legacy cache descriptors from the leaf 2 descriptor table. The table
// upstream is much larger; these cover the CPUs old enough to lack leaf 4.
var legacyDescriptors = map[byte]legacyDescriptor{
	0x06: {1, CacheInstruction, 8, 32, 4},
	0x08: {1, CacheInstruction, 16, 32, 4},
	0x0A: {1, CacheData, 8, 32, 2},
	0x0C: {1, CacheData, 16, 32, 4},
	0x0E: {1, CacheData, 24, 64, 6},
	0x2C: {1, CacheData, 32, 64, 8},
	0x30: {1, CacheInstruction, 32, 64, 8},
	0x41: {2, CacheUnified, 128, 32, 4},
	0x42: {2, CacheUnified, 256, 32, 4},
	0x43: {2, CacheUnified, 512, 32, 4},
	0x7D: {2, CacheUnified, 2048, 64, 8},
	0x7F: {2, CacheUnified, 512, 64, 2},
	0x86: {2, CacheUnified, 512, 64, 4},
	0x87: {2, CacheUnified, 1024, 64, 8},
}

// legacyCaches parses the leaf 2 descriptor table and, failing that, applies
// hard-coded vendor defaults. Both outcomes are approximations: the descriptor
// table is incomplete and the defaults are typical values, not measurements.
func (b *x86Backend) legacyCaches() CacheTopology {
	var topology CacheTopology

	if b.maxLeaf() >= leafCacheDescriptor {
		eax, ebx, ecx, edx := b.cpuid(leafCacheDescriptor, 0)
		for i, reg := range []uint32{eax, ebx, ecx, edx} {
			// Bit 31 set means the register holds no valid descriptors.
			if reg&(1<<31) != 0 {
				continue
			}
			for shift := 0; shift < 32; shift += 8 {
				// The low byte of EAX encodes how often to repeat the query.
				if i == 0 && shift == 0 {
					continue
				}
				descriptor, ok := legacyDescriptors[byte(reg>>shift)]
				if !ok {
					continue
				}
				slot, free := slotFor(descriptor.level, descriptor.cacheType, &topology)
				if !free {
					continue
				}
				topology[slot] = &CacheInfo{
					Level:         descriptor.level,
					Type:          descriptor.cacheType,
					SizeKB:        descriptor.sizeKB,
					LineSize:      descriptor.lineSize,
					Associativity: descriptor.associativity,
					SharedBy:      1,
				}
			}
		}
		if !topology.Empty() {
			return topology
		}
	}

	return b.defaultCaches()
}

// defaultCaches returns typical L1 layouts keyed by vendor string, used only
// when every discovery mechanism came up empty.
func (b *x86Backend) defaultCaches() CacheTopology {
	var topology CacheTopology

	var l1i, l1d uint32
	switch b.vendorString() {
	case "GenuineIntel":
		l1i, l1d = 32, 32
	case "AuthenticAMD":
		l1i, l1d = 64, 32
	default:
		return topology
	}

	log.Debug("no cache discovery mechanism available, using vendor defaults")
	topology[SlotL1I] = &CacheInfo{Level: 1, Type: CacheInstruction, SizeKB: l1i, LineSize: 64, Associativity: 8, SharedBy: 1}
	topology[SlotL1D] = &CacheInfo{Level: 1, Type: CacheData, SizeKB: l1d, LineSize: 64, Associativity: 8, SharedBy: 1}
	return topology
}
