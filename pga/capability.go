package pga

import "os"

// Capability identifies the widest vector extension the host supports for the
// four-lane kernels. The portable kernels in this package run everywhere;
// the capability reports what a vectorized build would target and feeds the
// cpuinfo diagnostic.
type Capability int

const (
	CapScalar Capability = iota
	CapSSE2
	CapSSE41
	CapAVX2
	CapAVX512
	CapNEON
)

func (c Capability) String() string {
	switch c {
	case CapSSE2:
		return "sse2"
	case CapSSE41:
		return "sse4.1"
	case CapAVX2:
		return "avx2"
	case CapAVX512:
		return "avx512"
	case CapNEON:
		return "neon"
	default:
		return "scalar"
	}
}

var currentCap Capability

// CurrentCapability returns the detected host capability. Set PGA_NO_SIMD to
// any non-empty value to force scalar.
func CurrentCapability() Capability {
	return currentCap
}

// CapabilityName returns the detected host capability as a short lowercase
// name.
func CapabilityName() string {
	return currentCap.String()
}

func noSIMDEnv() bool {
	return os.Getenv("PGA_NO_SIMD") != ""
}
