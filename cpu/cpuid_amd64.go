//go:build amd64

package cpu

// cpuidNative executes the CPUID instruction with the given leaf and subleaf.
// Implemented in cpuid_amd64.s.
//
//go:noescape
func cpuidNative(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
