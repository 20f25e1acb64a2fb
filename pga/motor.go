package pga

import "math"

// Motor represents an arbitrary rigid displacement. By Chasles' theorem any
// such displacement is a translation along a line combined with a rotation
// about an axis parallel to that line. The motor algebra is isomorphic to the
// dual quaternions but lives in the same algebra as the geometric entities it
// acts on, so motors compose with rotors, translators, and each other through
// the geometric product, and the group structure makes them amenable to
// smooth interpolation via Log and Exp.
type Motor struct {
	p1 f32x4
	p2 f32x4
}

// NewMotor constructs a motor directly from the multivector
// a + b*e23 + c*e31 + d*e12 + e*e01 + f*e02 + g*e03 + h*e0123. A more common
// way to obtain a motor is the product of a rotor and a translator.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{
		p1: f32x4{a, b, c, d},
		p2: f32x4{h, e, f, g},
	}
}

// NewMotorFromScrew constructs the motor rotating by angle radians about the
// Euclidean line axis while translating by dist along it.
func NewMotorFromScrew(angle, dist float32, axis Line) Motor {
	logP1, logP2 := gpDL(-0.5*angle, 0.5*dist, axis.p1, axis.p2)
	p1, p2 := expBivector(logP1, logP2)
	return Motor{p1: p1, p2: p2}
}

// MotorFromRotor promotes a rotor to a motor with no translational part.
func MotorFromRotor(r Rotor) Motor {
	return Motor{p1: r.p1}
}

// MotorFromTranslator promotes a translator to a motor with no rotational
// part.
func MotorFromTranslator(t Translator) Motor {
	return Motor{p1: set0(1), p2: t.p2}
}

// Scalar returns the scalar component.
func (m Motor) Scalar() float32 { return m.p1[0] }

// E23 returns the e23 coefficient.
func (m Motor) E23() float32 { return m.p1[1] }

// E31 returns the e31 coefficient.
func (m Motor) E31() float32 { return m.p1[2] }

// E12 returns the e12 coefficient.
func (m Motor) E12() float32 { return m.p1[3] }

// E01 returns the e01 coefficient.
func (m Motor) E01() float32 { return m.p2[1] }

// E02 returns the e02 coefficient.
func (m Motor) E02() float32 { return m.p2[2] }

// E03 returns the e03 coefficient.
func (m Motor) E03() float32 { return m.p2[3] }

// E0123 returns the pseudoscalar coefficient.
func (m Motor) E0123() float32 { return m.p2[0] }

// Arrays returns the two partitions of the motor, (scalar, e23, e31, e12) and
// (e0123, e01, e02, e03).
func (m Motor) Arrays() ([4]float32, [4]float32) {
	return [4]float32(m.p1), [4]float32(m.p2)
}

// Normalize rescales the motor so that m * reverse(m) = 1.
func (m *Motor) Normalize() {
	// m = b + c where b is p1 and c is p2.
	//
	// m * ~m = |b|^2 + 2(b0 c0 - b1 c1 - b2 c2 - b3 c3) e0123
	// sqrt(m * ~m) = |b| + (b0 c0 - b.c)/|b| e0123
	// 1/sqrt(m * ~m) = 1/|b| + (-b0 c0 + b.c)/|b|^3 e0123 = s + t e0123
	b2 := dpBC(m.p1, m.p1)
	s := b2.rsqrtNR1()
	bc := dpBC(m.p1.negLow(), m.p2)
	t := bc.mul(b2.rcpNR1()).mul(s)

	// (s + t e0123) * m keeps the p1 part scaled by s; the p2 part picks up
	// a +t b0 on the pseudoscalar lane and -t b_i on the others.
	m.p2 = m.p2.mul(s).sub(m.p1.mul(t).negLow())
	m.p1 = m.p1.mul(s)
}

// Normalized returns a normalized copy of the motor.
func (m Motor) Normalized() Motor {
	m.Normalize()
	return m
}

// Invert replaces the motor with its inverse under the geometric product.
func (m *Motor) Invert() {
	// s and t computed as in Normalize.
	b2 := dpBC(m.p1, m.p1)
	s := b2.rsqrtNR1()
	bc := dpBC(m.p1.negLow(), m.p2)
	b2inv := b2.rcpNR1()
	t := bc.mul(b2inv).mul(s)

	// p1 * (s + t e0123)^2 = s^2 p1 - 2 s t p1_perp, with the scalar lane of
	// the coupling term negated; p2 * (s + t e0123)^2 = s^2 p2. s^2 = 1/|b|^2.
	st := m.p1.mul(s.mul(t))
	m.p2 = m.p2.mul(b2inv).sub(st.add(st).negLow()).negHigh()
	m.p1 = m.p1.mul(b2inv).negHigh()
}

// Inverse returns the inverse of the motor.
func (m Motor) Inverse() Motor {
	m.Invert()
	return m
}

// Constrain negates the motor if its scalar component is negative, selecting
// the representative that interpolates along the shorter arc.
func (m *Motor) Constrain() {
	if math.Signbit(float64(m.p1[0])) {
		m.p1 = m.p1.negAll()
		m.p2 = m.p2.negAll()
	}
}

// Constrained returns a copy constrained to the shortest arc.
func (m Motor) Constrained() Motor {
	m.Constrain()
	return m
}

// Reverse flips the sign of the bivector components of both partitions.
func (m *Motor) Reverse() {
	m.p1 = m.p1.negHigh()
	m.p2 = m.p2.negHigh()
}

// Reversed returns the reverse of the motor.
func (m Motor) Reversed() Motor {
	m.Reverse()
	return m
}

// Add returns the component-wise sum.
func (m Motor) Add(n Motor) Motor {
	return Motor{p1: m.p1.add(n.p1), p2: m.p2.add(n.p2)}
}

// Sub returns the component-wise difference.
func (m Motor) Sub(n Motor) Motor {
	return Motor{p1: m.p1.sub(n.p1), p2: m.p2.sub(n.p2)}
}

// Scale multiplies every component by s.
func (m Motor) Scale(s float32) Motor {
	return Motor{p1: m.p1.scale(s), p2: m.p2.scale(s)}
}

// Neg negates every component.
func (m Motor) Neg() Motor {
	return Motor{p1: m.p1.negAll(), p2: m.p2.negAll()}
}

// Equal reports bitwise equality.
func (m Motor) Equal(n Motor) bool {
	return m.p1.equal(n.p1) && m.p2.equal(n.p2)
}

// ApproxEqual reports component-wise equality within eps on both partitions.
func (m Motor) ApproxEqual(n Motor, eps float32) bool {
	return m.p1.approxEqual(n.p1, eps) && m.p2.approxEqual(n.p2, eps)
}

// ApplyToPlane conjugates p with the motor, returning m * p * reverse(m).
func (m Motor) ApplyToPlane(p Plane) Plane {
	return Plane{p0: sw012(p.p0, m.p1, &m.p2)}
}

// ApplyToPlanes conjugates each plane of src with the motor, storing results
// in dst. The fixed per-motor setup is amortized over the slice, which is
// considerably faster than applying the motor element by element. dst and src
// may alias only if they are the same slice.
func (m Motor) ApplyToPlanes(dst, src []Plane) {
	s := newSandwich012(m.p1, &m.p2)
	for i := range src {
		dst[i].p0 = s.apply(src[i].p0)
	}
}

// ApplyToLine conjugates l with the motor, returning m * l * reverse(m).
func (m Motor) ApplyToLine(l Line) Line {
	p1, p2 := swMM(l.p1, l.p2, m.p1, &m.p2, true)
	return Line{p1: p1, p2: p2}
}

// ApplyToLines conjugates each line of src with the motor, storing results in
// dst. dst and src may alias only if they are the same slice.
func (m Motor) ApplyToLines(dst, src []Line) {
	s := newSandwichMM(m.p1, &m.p2)
	for i := range src {
		dst[i].p1, dst[i].p2 = s.apply(src[i].p1, src[i].p2, true)
	}
}

// ApplyToPoint conjugates p with the motor, returning m * p * reverse(m).
func (m Motor) ApplyToPoint(p Point) Point {
	return Point{p3: sw312(p.p3, m.p1, &m.p2)}
}

// ApplyToPoints conjugates each point of src with the motor, storing results
// in dst. dst and src may alias only if they are the same slice.
func (m Motor) ApplyToPoints(dst, src []Point) {
	s := newSandwich312(m.p1, &m.p2)
	for i := range src {
		dst[i].p3 = s.apply(src[i].p3)
	}
}

// ApplyToOrigin applies the motor to the origin using a dedicated kernel that
// skips the work a general point application would waste on zero lanes.
func (m Motor) ApplyToOrigin() Point {
	return Point{p3: swo12(m.p1, m.p2)}
}

// ApplyToDirection conjugates d with the motor. Directions are translation
// invariant, so this costs the same as a rotor application.
func (m Motor) ApplyToDirection(d Direction) Direction {
	return Direction{p3: sw312(d.p3, m.p1, nil)}
}

// ApplyToDirections conjugates each direction of src with the motor, storing
// results in dst. dst and src may alias only if they are the same slice.
func (m Motor) ApplyToDirections(dst, src []Direction) {
	s := newSandwich312(m.p1, nil)
	for i := range src {
		dst[i].p3 = s.apply(src[i].p3)
	}
}
