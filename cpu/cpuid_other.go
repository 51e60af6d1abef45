//go:build !amd64

package cpu

// cpuidNative is only wired up on amd64; newBackend never routes CPUID calls
// here on other architectures.
func cpuidNative(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
