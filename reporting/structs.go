package reporting

import (
	"cpufetch/cpu"
)

// Report is the machine-readable projection of a CPU snapshot. Field layout
// and key names are the tool's stable JSON output schema.
type Report struct {
	Vendor    string          `json:"vendor"`
	Model     string          `json:"model"`
	Cores     CoresReport     `json:"cores"`
	Cache     CacheReport     `json:"cache"`
	Frequency FrequencyReport `json:"frequency"`
	// Features is the set of detected capability names, in the registry's
	// declaration order.
	Features []string `json:"features"`
}

type CoresReport struct {
	Physical int `json:"physical"`
	Logical  int `json:"logical"`
}

// CacheReport holds per-level cache sizes in KB. Undetected levels are null.
type CacheReport struct {
	L1I *uint32 `json:"l1i"`
	L1D *uint32 `json:"l1d"`
	L2  *uint32 `json:"l2"`
	L3  *uint32 `json:"l3"`
}

// FrequencyReport holds clock speeds in MHz. Unknown values are null.
type FrequencyReport struct {
	Base    *float64 `json:"base"`
	Current *float64 `json:"current"`
	Max     *float64 `json:"max"`
}

func NewReport(info *cpu.Info) *Report {
	features := []string{}
	if info.Features != nil {
		features = append(features, info.Features.Names()...)
	}

	return &Report{
		Vendor: info.Vendor.String(),
		Model:  info.BrandString,
		Cores: CoresReport{
			Physical: info.PhysicalCores,
			Logical:  info.LogicalCores,
		},
		Cache: CacheReport{
			L1I: info.CacheSizes[cpu.SlotL1I],
			L1D: info.CacheSizes[cpu.SlotL1D],
			L2:  info.CacheSizes[cpu.SlotL2],
			L3:  info.CacheSizes[cpu.SlotL3],
		},
		Frequency: FrequencyReport{
			Base:    info.Frequency.Base,
			Current: info.Frequency.Current,
			Max:     info.Frequency.Max,
		},
		Features: features,
	}
}
