package pga

import "math"

// Rotor represents a rigid rotation about an axis: a normalized scalar plus
// Euclidean bivector. Rotors compose with Mul; the result is equivalent to
// applying the right operand first. Apply a rotor to planes, lines, points,
// and directions with the ApplyTo methods.
type Rotor struct {
	p1 f32x4
}

// NewRotor constructs a rotor for a rotation of angle radians about the axis
// (x, y, z). The axis is normalized and the angle halved internally.
func NewRotor(angle, x, y, z float32) Rotor {
	norm := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	invNorm := -1 / norm

	half := float64(0.5 * angle)
	sin, cos := math.Sincos(half)
	scale := float32(sin) * invNorm

	return Rotor{p1: f32x4{float32(cos), x * scale, y * scale, z * scale}}
}

// RotorFromArray loads a rotor from (a, b, c, d) corresponding to the
// multivector a + b*e23 + c*e31 + d*e12. The data must already be normalized:
// r * reverse(r) = 1.
func RotorFromArray(data [4]float32) Rotor {
	return Rotor{p1: f32x4(data)}
}

// Scalar returns the scalar component.
func (r Rotor) Scalar() float32 { return r.p1[0] }

// E23 returns the e23 coefficient.
func (r Rotor) E23() float32 { return r.p1[1] }

// E31 returns the e31 coefficient.
func (r Rotor) E31() float32 { return r.p1[2] }

// E12 returns the e12 coefficient.
func (r Rotor) E12() float32 { return r.p1[3] }

// Array returns the rotor components as (scalar, e23, e31, e12).
func (r Rotor) Array() [4]float32 { return [4]float32(r.p1) }

// Normalize rescales the rotor so that r * reverse(r) = 1.
func (r *Rotor) Normalize() {
	r.p1 = r.p1.mul(dpBC(r.p1, r.p1).rsqrtNR1())
}

// Normalized returns a normalized copy of the rotor.
func (r Rotor) Normalized() Rotor {
	r.Normalize()
	return r
}

// Invert replaces the rotor with its inverse under the geometric product.
func (r *Rotor) Invert() {
	invNorm := dpBC(r.p1, r.p1).rsqrtNR1()
	r.p1 = r.p1.mul(invNorm)
	r.p1 = r.p1.mul(invNorm)
	r.p1 = r.p1.negHigh()
}

// Inverse returns the inverse of the rotor.
func (r Rotor) Inverse() Rotor {
	r.Invert()
	return r
}

// Constrain negates the rotor if its scalar component is negative. The two
// representatives act identically; the constrained one interpolates along the
// shorter arc.
func (r *Rotor) Constrain() {
	if math.Signbit(float64(r.p1[0])) {
		r.p1 = r.p1.negAll()
	}
}

// Constrained returns a copy constrained to the shortest arc.
func (r Rotor) Constrained() Rotor {
	r.Constrain()
	return r
}

// Reverse flips the sign of the bivector components.
func (r *Rotor) Reverse() {
	r.p1 = r.p1.negHigh()
}

// Reversed returns the reverse of the rotor.
func (r Rotor) Reversed() Rotor {
	r.Reverse()
	return r
}

// Add returns the component-wise sum.
func (r Rotor) Add(s Rotor) Rotor { return Rotor{p1: r.p1.add(s.p1)} }

// Sub returns the component-wise difference.
func (r Rotor) Sub(s Rotor) Rotor { return Rotor{p1: r.p1.sub(s.p1)} }

// Scale multiplies every component by s.
func (r Rotor) Scale(s float32) Rotor { return Rotor{p1: r.p1.scale(s)} }

// Neg negates every component.
func (r Rotor) Neg() Rotor { return Rotor{p1: r.p1.negAll()} }

// Equal reports bitwise equality.
func (r Rotor) Equal(s Rotor) bool { return r.p1.equal(s.p1) }

// ApproxEqual reports component-wise equality within eps.
func (r Rotor) ApproxEqual(s Rotor, eps float32) bool {
	return r.p1.approxEqual(s.p1, eps)
}

// ApplyToPlane conjugates p with the rotor, returning r * p * reverse(r).
func (r Rotor) ApplyToPlane(p Plane) Plane {
	// The conjugation kernel for planes and points is identical.
	return Plane{p0: sw012(p.p0, r.p1, nil)}
}

// ApplyToPlanes conjugates each plane of src with the rotor, storing results
// in dst. The fixed per-rotor setup is amortized over the slice, which is
// considerably faster than applying the rotor element by element. dst and src
// may alias only if they are the same slice.
func (r Rotor) ApplyToPlanes(dst, src []Plane) {
	s := newSandwich012(r.p1, nil)
	for i := range src {
		dst[i].p0 = s.apply(src[i].p0)
	}
}

// ApplyToBranch conjugates b with the rotor, returning r * b * reverse(r).
func (r Rotor) ApplyToBranch(b Branch) Branch {
	p1, _ := swMM(b.p1, f32x4{}, r.p1, nil, false)
	return Branch{p1: p1}
}

// ApplyToLine conjugates l with the rotor, returning r * l * reverse(r).
func (r Rotor) ApplyToLine(l Line) Line {
	p1, p2 := swMM(l.p1, l.p2, r.p1, nil, true)
	return Line{p1: p1, p2: p2}
}

// ApplyToLines conjugates each line of src with the rotor, storing results in
// dst. dst and src may alias only if they are the same slice.
func (r Rotor) ApplyToLines(dst, src []Line) {
	s := newSandwichMM(r.p1, nil)
	for i := range src {
		dst[i].p1, dst[i].p2 = s.apply(src[i].p1, src[i].p2, true)
	}
}

// ApplyToPoint conjugates p with the rotor, returning r * p * reverse(r).
func (r Rotor) ApplyToPoint(p Point) Point {
	// The conjugation kernel for planes and points is identical.
	return Point{p3: sw012(p.p3, r.p1, nil)}
}

// ApplyToPoints conjugates each point of src with the rotor, storing results
// in dst. dst and src may alias only if they are the same slice.
func (r Rotor) ApplyToPoints(dst, src []Point) {
	s := newSandwich012(r.p1, nil)
	for i := range src {
		dst[i].p3 = s.apply(src[i].p3)
	}
}

// ApplyToDirection conjugates d with the rotor, returning r * d * reverse(r).
func (r Rotor) ApplyToDirection(d Direction) Direction {
	return Direction{p3: sw012(d.p3, r.p1, nil)}
}

// ApplyToDirections conjugates each direction of src with the rotor, storing
// results in dst. dst and src may alias only if they are the same slice.
func (r Rotor) ApplyToDirections(dst, src []Direction) {
	s := newSandwich012(r.p1, nil)
	for i := range src {
		dst[i].p3 = s.apply(src[i].p3)
	}
}
