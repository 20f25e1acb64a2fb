//go:build arm64

package pga

import "golang.org/x/sys/cpu"

func init() {
	if noSIMDEnv() {
		currentCap = CapScalar
		return
	}
	// ASIMD is baseline for arm64, but linux reports it and darwin assumes it.
	if cpu.ARM64.HasASIMD || !cpu.Initialized {
		currentCap = CapNEON
	}
}
