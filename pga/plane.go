package pga

// Plane is the multivector d*e0 + a*e1 + b*e2 + c*e3. Points on the plane
// satisfy d + a*x + b*y + c*z = 0. Planes are the fundamental reflective
// element: lines arise as the meet of two planes and points as the meet of
// three.
type Plane struct {
	p0 f32x4
}

// NewPlane constructs the plane a*e1 + b*e2 + c*e3 + d*e0.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{p0: f32x4{d, a, b, c}}
}

// PlaneFromArray loads a plane from (d, a, b, c) with d at index 0.
func PlaneFromArray(data [4]float32) Plane {
	return Plane{p0: f32x4(data)}
}

// Array returns the plane components as (d, a, b, c).
func (p Plane) Array() [4]float32 { return [4]float32(p.p0) }

// A returns the e1 coefficient.
func (p Plane) A() float32 { return p.p0[1] }

// B returns the e2 coefficient.
func (p Plane) B() float32 { return p.p0[2] }

// C returns the e3 coefficient.
func (p Plane) C() float32 { return p.p0[3] }

// D returns the e0 coefficient.
func (p Plane) D() float32 { return p.p0[0] }

// Normalize scales the plane so that its normal (a, b, c) has unit length.
// Normalized planes are required to read angles off the inner product and to
// produce normalized rotors from plane products.
func (p *Plane) Normalize() {
	invNorm := hiDPBC(p.p0, p.p0).rsqrtNR1()
	// The e0 lane is untouched; force its scale factor to one.
	invNorm[0] = 1
	p.p0 = p.p0.mul(invNorm)
}

// Normalized returns a normalized copy of the plane.
func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// Norm returns the length of the plane's normal. Given a normalized point P
// and normalized line l, the norm of the plane P joined with l is the distance
// from P to l.
func (p Plane) Norm() float32 {
	return hiDP(p.p0, p.p0).sqrtNR1()[0]
}

// SquaredNorm returns the squared length of the plane's normal.
func (p Plane) SquaredNorm() float32 {
	return hiDPSS(p.p0, p.p0)
}

// Invert replaces the plane with its inverse under the geometric product.
func (p *Plane) Invert() {
	invNorm := hiDPBC(p.p0, p.p0).rsqrtNR1()
	p.p0 = invNorm.mul(p.p0)
	p.p0 = invNorm.mul(p.p0)
}

// Inverse returns the inverse of the plane.
func (p Plane) Inverse() Plane {
	p.Invert()
	return p
}

// Add returns the component-wise sum.
func (p Plane) Add(q Plane) Plane { return Plane{p0: p.p0.add(q.p0)} }

// Sub returns the component-wise difference.
func (p Plane) Sub(q Plane) Plane { return Plane{p0: p.p0.sub(q.p0)} }

// Scale multiplies every component by s.
func (p Plane) Scale(s float32) Plane { return Plane{p0: p.p0.scale(s)} }

// Neg negates the Euclidean components, leaving the e0 coefficient untouched.
func (p Plane) Neg() Plane { return Plane{p0: p.p0.negHigh()} }

// Equal reports bitwise equality.
func (p Plane) Equal(q Plane) bool { return p.p0.equal(q.p0) }

// ApproxEqual reports component-wise equality within eps.
func (p Plane) ApproxEqual(q Plane, eps float32) bool {
	return p.p0.approxEqual(q.p0, eps)
}

// Dual returns the Poincaré dual of the plane, a point with the same lanes.
func (p Plane) Dual() Point { return Point{p3: p.p0} }

// ApplyToPlane reflects q through p, the optimized form of p*q*p.
func (p Plane) ApplyToPlane(q Plane) Plane {
	return Plane{p0: sw00(p.p0, q.p0)}
}

// ApplyToLine reflects l through p, the optimized form of p*l*p.
func (p Plane) ApplyToLine(l Line) Line {
	p1, p2 := sw10(p.p0, l.p1)
	return Line{p1: p1, p2: p2.add(sw20(p.p0, l.p2))}
}

// ApplyToPoint reflects q through p, the optimized form of p*q*p.
func (p Plane) ApplyToPoint(q Point) Point {
	return Point{p3: sw30(p.p0, q.p3)}
}
