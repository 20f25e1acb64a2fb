package pga

import "math"

// This file provides the portable four-lane implementation of the vector
// primitive every kernel is written against. The lane layout is little-endian:
// index 0 is the low lane. Architecture-specific implementations may replace
// these routines via build tags; the portable forms are the fallback and the
// reference the others are tested against.

// f32x4 is a four-wide single-precision vector. All multivector partitions
// (p0..p3) are stored in this type using the fixed lane layout documented in
// the package comment.
type f32x4 [4]float32

// all returns a vector with every lane set to s.
func all(s float32) f32x4 {
	return f32x4{s, s, s, s}
}

// set0 returns a vector with the low lane set to s and the rest zero.
func set0(s float32) f32x4 {
	return f32x4{s, 0, 0, 0}
}

func (a f32x4) add(b f32x4) f32x4 {
	return f32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a f32x4) sub(b f32x4) f32x4 {
	return f32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a f32x4) mul(b f32x4) f32x4 {
	return f32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// scale multiplies every lane by s.
func (a f32x4) scale(s float32) f32x4 {
	return f32x4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// add0 adds s into the low lane only.
func (a f32x4) add0(s float32) f32x4 {
	return f32x4{a[0] + s, a[1], a[2], a[3]}
}

// shuffle returns a vector whose lane k holds a's lane ik. shuffle(0, 1, 2, 3)
// is the identity. Every call site passes constants, so an optimizing compiler
// lowers this to a single permute on SIMD-capable targets.
func (a f32x4) shuffle(i0, i1, i2, i3 int) f32x4 {
	return f32x4{a[i0], a[i1], a[i2], a[i3]}
}

// xor flips sign bits of a wherever b has its sign bit set. The masks passed
// here hold only negative zeros, so this is a branch-free selective negation
// that treats signed zero correctly (a subtract from zero would not).
func (a f32x4) xor(b f32x4) f32x4 {
	var out f32x4
	for i := range a {
		bits := math.Float32bits(a[i]) ^ math.Float32bits(b[i])
		out[i] = math.Float32frombits(bits)
	}
	return out
}

// negLow flips the sign of the low lane.
func (a f32x4) negLow() f32x4 {
	return f32x4{-a[0], a[1], a[2], a[3]}
}

// negHigh flips the sign of lanes 1 through 3.
func (a f32x4) negHigh() f32x4 {
	return f32x4{a[0], -a[1], -a[2], -a[3]}
}

// negAll flips the sign of every lane.
func (a f32x4) negAll() f32x4 {
	return f32x4{-a[0], -a[1], -a[2], -a[3]}
}

// zeroLow clears the low lane, keeping lanes 1 through 3.
func (a f32x4) zeroLow() f32x4 {
	return f32x4{0, a[1], a[2], a[3]}
}

// hiDP computes a1*b1 + a2*b2 + a3*b3 in the low lane with the upper lanes
// zeroed. This underlies every bivector norm.
func hiDP(a, b f32x4) f32x4 {
	return set0(a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// hiDPBC is hiDP broadcast to all four lanes.
func hiDPBC(a, b f32x4) f32x4 {
	return all(a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// hiDPSS returns the high-lane dot product as a scalar.
func hiDPSS(a, b f32x4) float32 {
	return a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// dp computes the full four-lane dot product in the low lane with the upper
// lanes zeroed.
func dp(a, b f32x4) f32x4 {
	return set0(a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// dpBC is dp broadcast to all four lanes.
func dpBC(a, b f32x4) f32x4 {
	return all(a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// rcpNR1 computes a lane-wise reciprocal refined by one Newton-Raphson step:
// x1 = x0(2 - a*x0). With a hardware rcpps seed this yields ~22 bits; the
// portable seed is exact so the step only tightens rounding. Division by zero
// propagates Inf per IEEE-754.
func (a f32x4) rcpNR1() f32x4 {
	var out f32x4
	for i := range a {
		xn := 1 / a[i]
		out[i] = xn * (2 - a[i]*xn)
	}
	return out
}

// rsqrtNR1 computes a lane-wise reciprocal square root refined by one
// Newton-Raphson step: x1 = 0.5*x0*(3 - a*x0*x0).
func (a f32x4) rsqrtNR1() f32x4 {
	var out f32x4
	for i := range a {
		xn := float32(1 / math.Sqrt(float64(a[i])))
		out[i] = 0.5 * xn * (3 - a[i]*xn*xn)
	}
	return out
}

// sqrtNR1 is the refined square root, evaluated as a * rsqrtNR1(a).
func (a f32x4) sqrtNR1() f32x4 {
	return a.mul(a.rsqrtNR1())
}

// equal reports bitwise lane equality.
func (a f32x4) equal(b f32x4) bool {
	return a == b
}

// approxEqual reports |a-b| < eps on every lane.
func (a f32x4) approxEqual(b f32x4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d < eps) {
			return false
		}
	}
	return true
}
