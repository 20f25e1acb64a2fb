package pga

import "math"

// Three line types are provided. Line is the full six-coordinate Plücker
// bivector. Branch stores only the three non-degenerate components (a line
// through the origin, and the principal branch of a rotor logarithm).
// IdealLine is the line at infinity.

// IdealLine is the multivector a*e01 + b*e02 + c*e03.
type IdealLine struct {
	p2 f32x4
}

// NewIdealLine constructs the ideal line a*e01 + b*e02 + c*e03.
func NewIdealLine(a, b, c float32) IdealLine {
	return IdealLine{p2: f32x4{0, a, b, c}}
}

// E01 returns the e01 coefficient.
func (l IdealLine) E01() float32 { return l.p2[1] }

// E02 returns the e02 coefficient.
func (l IdealLine) E02() float32 { return l.p2[2] }

// E03 returns the e03 coefficient.
func (l IdealLine) E03() float32 { return l.p2[3] }

// IdealNorm returns the ideal norm of the line.
func (l IdealLine) IdealNorm() float32 {
	return float32(math.Sqrt(float64(l.SquaredIdealNorm())))
}

// SquaredIdealNorm returns the squared ideal norm.
func (l IdealLine) SquaredIdealNorm() float32 {
	return hiDPSS(l.p2, l.p2)
}

// Reverse flips the sign of the line's components.
func (l *IdealLine) Reverse() {
	l.p2 = l.p2.negHigh()
}

// Reversed returns the reverse of the line.
func (l IdealLine) Reversed() IdealLine {
	l.Reverse()
	return l
}

// Add returns the component-wise sum.
func (l IdealLine) Add(m IdealLine) IdealLine { return IdealLine{p2: l.p2.add(m.p2)} }

// Sub returns the component-wise difference.
func (l IdealLine) Sub(m IdealLine) IdealLine { return IdealLine{p2: l.p2.sub(m.p2)} }

// Scale multiplies every component by s.
func (l IdealLine) Scale(s float32) IdealLine { return IdealLine{p2: l.p2.scale(s)} }

// Neg negates every component.
func (l IdealLine) Neg() IdealLine { return IdealLine{p2: l.p2.negAll()} }

// Equal reports bitwise equality.
func (l IdealLine) Equal(m IdealLine) bool { return l.p2.equal(m.p2) }

// ApproxEqual reports component-wise equality within eps.
func (l IdealLine) ApproxEqual(m IdealLine, eps float32) bool {
	return l.p2.approxEqual(m.p2, eps)
}

// Dual returns the Poincaré dual of the ideal line, a branch with the same
// lanes.
func (l IdealLine) Dual() Branch { return Branch{p1: l.p2} }

// Branch is the multivector a*e23 + b*e31 + c*e12: a line through the origin.
// A branch is most commonly produced as the logarithm of a normalized rotor,
// scaled to adjust the rotor's strength, then re-exponentiated.
type Branch struct {
	p1 f32x4
}

// NewBranch constructs the branch a*e23 + b*e31 + c*e12.
func NewBranch(a, b, c float32) Branch {
	return Branch{p1: f32x4{0, a, b, c}}
}

// E23 returns the e23 coefficient.
func (b Branch) E23() float32 { return b.p1[1] }

// E31 returns the e31 coefficient.
func (b Branch) E31() float32 { return b.p1[2] }

// E12 returns the e12 coefficient.
func (b Branch) E12() float32 { return b.p1[3] }

// Norm returns the branch magnitude.
func (b Branch) Norm() float32 {
	return float32(math.Sqrt(float64(b.SquaredNorm())))
}

// SquaredNorm returns the squared branch magnitude.
func (b Branch) SquaredNorm() float32 {
	return hiDPSS(b.p1, b.p1)
}

// Normalize rescales the branch to unit magnitude.
func (b *Branch) Normalize() {
	b.p1 = b.p1.mul(hiDPBC(b.p1, b.p1).rsqrtNR1())
}

// Normalized returns a normalized copy of the branch.
func (b Branch) Normalized() Branch {
	b.Normalize()
	return b
}

// Invert replaces the branch with its inverse under the geometric product.
func (b *Branch) Invert() {
	invNorm := hiDPBC(b.p1, b.p1).rsqrtNR1()
	b.p1 = b.p1.mul(invNorm)
	b.p1 = b.p1.mul(invNorm)
	b.p1 = b.p1.negHigh()
}

// Inverse returns the inverse of the branch.
func (b Branch) Inverse() Branch {
	b.Invert()
	return b
}

// Reverse flips the sign of the branch components.
func (b *Branch) Reverse() {
	b.p1 = b.p1.negHigh()
}

// Reversed returns the reverse of the branch.
func (b Branch) Reversed() Branch {
	b.Reverse()
	return b
}

// Add returns the component-wise sum.
func (b Branch) Add(c Branch) Branch { return Branch{p1: b.p1.add(c.p1)} }

// Sub returns the component-wise difference.
func (b Branch) Sub(c Branch) Branch { return Branch{p1: b.p1.sub(c.p1)} }

// Scale multiplies every component by s.
func (b Branch) Scale(s float32) Branch { return Branch{p1: b.p1.scale(s)} }

// Neg negates every component.
func (b Branch) Neg() Branch { return Branch{p1: b.p1.negAll()} }

// Equal reports bitwise equality.
func (b Branch) Equal(c Branch) bool { return b.p1.equal(c.p1) }

// ApproxEqual reports component-wise equality within eps.
func (b Branch) ApproxEqual(c Branch, eps float32) bool {
	return b.p1.approxEqual(c.p1, eps)
}

// Dual returns the Poincaré dual of the branch, an ideal line with the same
// lanes.
func (b Branch) Dual() IdealLine { return IdealLine{p2: b.p1} }

// Line is a general bivector with a direct correspondence to Plücker
// coordinates. All lines can be exponentiated with Exp to produce a motor.
type Line struct {
	p1 f32x4
	p2 f32x4
}

// NewLine constructs the line a*e01 + b*e02 + c*e03 + d*e23 + e*e31 + f*e12
// from its Plücker coordinates.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{
		p1: f32x4{0, d, e, f},
		p2: f32x4{0, a, b, c},
	}
}

// LineFromIdeal promotes an ideal line to a full line.
func LineFromIdeal(l IdealLine) Line {
	return Line{p2: l.p2}
}

// LineFromBranch promotes a branch to a full line.
func LineFromBranch(b Branch) Line {
	return Line{p1: b.p1}
}

// E01 returns the e01 coefficient.
func (l Line) E01() float32 { return l.p2[1] }

// E02 returns the e02 coefficient.
func (l Line) E02() float32 { return l.p2[2] }

// E03 returns the e03 coefficient.
func (l Line) E03() float32 { return l.p2[3] }

// E23 returns the e23 coefficient.
func (l Line) E23() float32 { return l.p1[1] }

// E31 returns the e31 coefficient.
func (l Line) E31() float32 { return l.p1[2] }

// E12 returns the e12 coefficient.
func (l Line) E12() float32 { return l.p1[3] }

// Arrays returns the two partitions of the line, (scalar, e23, e31, e12) and
// (e0123, e01, e02, e03).
func (l Line) Arrays() ([4]float32, [4]float32) {
	return [4]float32(l.p1), [4]float32(l.p2)
}

// Norm returns the Euclidean norm of the line.
func (l Line) Norm() float32 {
	return float32(math.Sqrt(float64(l.SquaredNorm())))
}

// SquaredNorm returns the squared Euclidean norm. For a line joining two
// normalized points this is the squared distance between them.
func (l Line) SquaredNorm() float32 {
	return hiDPSS(l.p1, l.p1)
}

// Normalize rescales the line so that l * reverse(l) = 1.
func (l *Line) Normalize() {
	// l = b + c where b is p1 and c is p2.
	//
	// l * ~l = |b|^2 - 2(b1 c1 + b2 c2 + b3 c3) e0123
	// sqrt(l * ~l) = |b| - (b.c)/|b| e0123
	// 1/sqrt(l * ~l) = 1/|b| + (b.c)/|b|^3 e0123 = s + t e0123
	b2 := hiDPBC(l.p1, l.p1)
	s := b2.rsqrtNR1()
	bc := hiDPBC(l.p1, l.p2)
	t := bc.mul(b2.rcpNR1()).mul(s)

	// p1 * (s + t e0123) = s*p1 - t*p1_perp
	l.p2 = l.p2.mul(s).sub(l.p1.mul(t))
	l.p1 = l.p1.mul(s)
}

// Normalized returns a normalized copy of the line.
func (l Line) Normalized() Line {
	l.Normalize()
	return l
}

// Invert replaces the line with its inverse under the geometric product.
func (l *Line) Invert() {
	// s and t computed as in Normalize.
	b2 := hiDPBC(l.p1, l.p1)
	s := b2.rsqrtNR1()
	bc := hiDPBC(l.p1, l.p2)
	b2inv := b2.rcpNR1()
	t := bc.mul(b2inv).mul(s)

	// p1 * (s + t e0123)^2 = s^2 p1 - 2 s t p1_perp
	// p2 * (s + t e0123)^2 = s^2 p2, and s^2 = 1/|b|^2
	st := l.p1.mul(s.mul(t))
	l.p2 = l.p2.mul(b2inv).sub(st.add(st)).negHigh()
	l.p1 = l.p1.mul(b2inv).negHigh()
}

// Inverse returns the inverse of the line.
func (l Line) Inverse() Line {
	l.Invert()
	return l
}

// Reverse flips the sign of both bivector partitions.
func (l *Line) Reverse() {
	l.p1 = l.p1.negHigh()
	l.p2 = l.p2.negHigh()
}

// Reversed returns the reverse of the line.
func (l Line) Reversed() Line {
	l.Reverse()
	return l
}

// Add returns the component-wise sum.
func (l Line) Add(m Line) Line {
	return Line{p1: l.p1.add(m.p1), p2: l.p2.add(m.p2)}
}

// Sub returns the component-wise difference.
func (l Line) Sub(m Line) Line {
	return Line{p1: l.p1.sub(m.p1), p2: l.p2.sub(m.p2)}
}

// Scale multiplies every component by s.
func (l Line) Scale(s float32) Line {
	return Line{p1: l.p1.scale(s), p2: l.p2.scale(s)}
}

// Neg negates every component.
func (l Line) Neg() Line {
	return Line{p1: l.p1.negAll(), p2: l.p2.negAll()}
}

// Equal reports bitwise equality.
func (l Line) Equal(m Line) bool {
	return l.p1.equal(m.p1) && l.p2.equal(m.p2)
}

// ApproxEqual reports component-wise equality within eps on both partitions.
func (l Line) ApproxEqual(m Line, eps float32) bool {
	return l.p1.approxEqual(m.p1, eps) && l.p2.approxEqual(m.p2, eps)
}

// Dual returns the Poincaré dual of the line, swapping its Euclidean and
// ideal partitions.
func (l Line) Dual() Line {
	return Line{p1: l.p2, p2: l.p1}
}
