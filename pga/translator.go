package pga

import "math"

// Translator represents a rigid displacement along a normalized axis.
// Translators compose with Mul (commutatively) and with rotors and motors to
// build general rigid motions.
type Translator struct {
	p2 f32x4
}

// NewTranslator constructs a translator displacing by delta along the axis
// (x, y, z). The axis is normalized internally.
func NewTranslator(delta, x, y, z float32) Translator {
	norm := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	scale := -0.5 * delta / norm
	return Translator{p2: f32x4{0, x * scale, y * scale, z * scale}}
}

// TranslatorFromArray loads a translator from (0, a, b, c) corresponding to
// the multivector a*e01 + b*e02 + c*e03. The data must already be normalized:
// -sqrt(a*a + b*b + c*c) must equal half the desired displacement.
func TranslatorFromArray(data [4]float32) Translator {
	return Translator{p2: f32x4(data)}
}

// E01 returns the e01 coefficient.
func (t Translator) E01() float32 { return t.p2[1] }

// E02 returns the e02 coefficient.
func (t Translator) E02() float32 { return t.p2[2] }

// E03 returns the e03 coefficient.
func (t Translator) E03() float32 { return t.p2[3] }

// Invert replaces the translator with its inverse.
func (t *Translator) Invert() {
	t.p2 = t.p2.negHigh()
}

// Inverse returns the inverse of the translator.
func (t Translator) Inverse() Translator {
	t.Invert()
	return t
}

// Reverse flips the sign of the translator components.
func (t *Translator) Reverse() {
	t.p2 = t.p2.negHigh()
}

// Reversed returns the reverse of the translator.
func (t Translator) Reversed() Translator {
	t.Reverse()
	return t
}

// Add returns the component-wise sum.
func (t Translator) Add(u Translator) Translator { return Translator{p2: t.p2.add(u.p2)} }

// Sub returns the component-wise difference.
func (t Translator) Sub(u Translator) Translator { return Translator{p2: t.p2.sub(u.p2)} }

// Scale multiplies every component by s.
func (t Translator) Scale(s float32) Translator { return Translator{p2: t.p2.scale(s)} }

// Equal reports bitwise equality.
func (t Translator) Equal(u Translator) bool { return t.p2.equal(u.p2) }

// ApproxEqual reports component-wise equality within eps.
func (t Translator) ApproxEqual(u Translator, eps float32) bool {
	return t.p2.approxEqual(u.p2, eps)
}

// ApplyToPlane conjugates p with the translator, returning t * p * reverse(t).
func (t Translator) ApplyToPlane(p Plane) Plane {
	// The kernel divides through by the scalar lane, which is an implicit 1.
	blend := t.p2
	blend[0] = 1
	return Plane{p0: sw02(p.p0, blend)}
}

// ApplyToLine conjugates l with the translator, returning t * l * reverse(t).
func (t Translator) ApplyToLine(l Line) Line {
	p1, p2 := swL2(l.p1, l.p2, t.p2)
	return Line{p1: p1, p2: p2}
}

// ApplyToPoint conjugates p with the translator, returning t * p * reverse(t).
func (t Translator) ApplyToPoint(p Point) Point {
	return Point{p3: sw32(p.p3, t.p2)}
}
