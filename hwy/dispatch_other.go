//go:build !amd64 && !arm64

package hwy

func detectCPUFeatures() {
	// Non-amd64/arm64 architectures run with 16-byte scalar registers.
	setScalarMode()
}
