//go:build !amd64 && !arm64

package pga

func init() {
	currentCap = CapScalar
}
