//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, 16) // NEON is 128-bit (16 bytes)
		return
	}
	// Fallback to scalar (should never happen on ARMv8+)
	setScalarMode()
}
