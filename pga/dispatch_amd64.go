//go:build amd64

package pga

import "golang.org/x/sys/cpu"

func init() {
	if noSIMDEnv() {
		currentCap = CapScalar
		return
	}
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		currentCap = CapAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentCap = CapAVX2
	case cpu.X86.HasSSE41:
		currentCap = CapSSE41
	default:
		// SSE2 is baseline for amd64.
		currentCap = CapSSE2
	}
}
