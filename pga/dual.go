package pga

// Dual is a dual number p + q*e0123. The pseudoscalar squares to zero, so
// dual numbers encode coupled scalar/pseudoscalar weights such as the
// angle-and-distance pair of a screw motion.
type Dual struct {
	p, q float32
}

// NewDual constructs the dual number p + q*e0123.
func NewDual(p, q float32) Dual {
	return Dual{p: p, q: q}
}

// Scalar returns the scalar component.
func (d Dual) Scalar() float32 { return d.p }

// E0123 returns the pseudoscalar component.
func (d Dual) E0123() float32 { return d.q }

// Add returns the component-wise sum.
func (d Dual) Add(e Dual) Dual { return Dual{p: d.p + e.p, q: d.q + e.q} }

// Sub returns the component-wise difference.
func (d Dual) Sub(e Dual) Dual { return Dual{p: d.p - e.p, q: d.q - e.q} }

// Scale multiplies both components by s.
func (d Dual) Scale(s float32) Dual { return Dual{p: d.p * s, q: d.q * s} }

// Neg negates both components.
func (d Dual) Neg() Dual { return Dual{p: -d.p, q: -d.q} }

// Dual returns the Poincaré dual, swapping the scalar and pseudoscalar.
func (d Dual) Dual() Dual { return Dual{p: d.q, q: d.p} }

// MulLine weights the line l with the dual's scalar and pseudoscalar parts.
// Exponentiating the result produces a motor along the screw axis of l with
// rotation and translation given by twice the respective components.
func (d Dual) MulLine(l Line) Line {
	p1, p2 := gpDL(d.p, d.q, l.p1, l.p2)
	return Line{p1: p1, p2: p2}
}
