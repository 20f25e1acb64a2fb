package pga

// Point is the trivector x*e032 + y*e013 + z*e021 + w*e123. A point is
// normalized when w = 1; points produced by meets and joins generally carry a
// non-unit homogeneous coordinate.
type Point struct {
	p3 f32x4
}

// NewPoint constructs a normalized point at (x, y, z).
func NewPoint(x, y, z float32) Point {
	return Point{p3: f32x4{1, x, y, z}}
}

// Origin returns the point e123, the origin of the projective frame.
func Origin() Point {
	return Point{p3: set0(1)}
}

// PointFromArray loads a point from (w, x, y, z) with w at index 0. Unlike
// NewPoint, the homogeneous coordinate must be supplied.
func PointFromArray(data [4]float32) Point {
	return Point{p3: f32x4(data)}
}

// Array returns the point components as (w, x, y, z).
func (p Point) Array() [4]float32 { return [4]float32(p.p3) }

// X returns the e032 coefficient.
func (p Point) X() float32 { return p.p3[1] }

// Y returns the e013 coefficient.
func (p Point) Y() float32 { return p.p3[2] }

// Z returns the e021 coefficient.
func (p Point) Z() float32 { return p.p3[3] }

// W returns the homogeneous e123 coefficient.
func (p Point) W() float32 { return p.p3[0] }

// Normalize divides the point through by its homogeneous coordinate.
func (p *Point) Normalize() {
	p.p3 = p.p3.mul(p.p3.shuffle(0, 0, 0, 0).rcpNR1())
}

// Normalized returns a normalized copy of the point.
func (p Point) Normalized() Point {
	p.Normalize()
	return p
}

// Invert replaces the point with its inverse under the geometric product.
func (p *Point) Invert() {
	invNorm := p.p3.shuffle(0, 0, 0, 0).rcpNR1()
	p.p3 = invNorm.mul(p.p3)
	p.p3 = invNorm.mul(p.p3)
}

// Inverse returns the inverse of the point.
func (p Point) Inverse() Point {
	p.Invert()
	return p
}

// Reverse flips the sign of every component.
func (p *Point) Reverse() {
	p.p3 = p.p3.negAll()
}

// Reversed returns the reverse of the point.
func (p Point) Reversed() Point {
	p.Reverse()
	return p
}

// Add returns the component-wise sum.
func (p Point) Add(q Point) Point { return Point{p3: p.p3.add(q.p3)} }

// Sub returns the component-wise difference.
func (p Point) Sub(q Point) Point { return Point{p3: p.p3.sub(q.p3)} }

// Scale multiplies every component by s.
func (p Point) Scale(s float32) Point { return Point{p3: p.p3.scale(s)} }

// Neg negates the Euclidean components, leaving the homogeneous coordinate
// untouched.
func (p Point) Neg() Point { return Point{p3: p.p3.negHigh()} }

// Equal reports bitwise equality.
func (p Point) Equal(q Point) bool { return p.p3.equal(q.p3) }

// ApproxEqual reports component-wise equality within eps.
func (p Point) ApproxEqual(q Point, eps float32) bool {
	return p.p3.approxEqual(q.p3, eps)
}

// Dual returns the Poincaré dual of the point, a plane with the same lanes.
func (p Point) Dual() Plane { return Plane{p0: p.p3} }

// Direction is a point at infinity (homogeneous coordinate zero). The zero
// homogeneous lane makes directions translation-invariant.
type Direction struct {
	p3 f32x4
}

// NewDirection constructs a unit direction along (x, y, z).
func NewDirection(x, y, z float32) Direction {
	d := Direction{p3: f32x4{0, x, y, z}}
	d.Normalize()
	return d
}

// X returns the e032 coefficient.
func (d Direction) X() float32 { return d.p3[1] }

// Y returns the e013 coefficient.
func (d Direction) Y() float32 { return d.p3[2] }

// Z returns the e021 coefficient.
func (d Direction) Z() float32 { return d.p3[3] }

// Normalize rescales the direction to unit magnitude.
func (d *Direction) Normalize() {
	d.p3 = d.p3.mul(hiDPBC(d.p3, d.p3).rsqrtNR1())
}

// Normalized returns a normalized copy of the direction.
func (d Direction) Normalized() Direction {
	d.Normalize()
	return d
}

// Add returns the component-wise sum.
func (d Direction) Add(e Direction) Direction { return Direction{p3: d.p3.add(e.p3)} }

// Sub returns the component-wise difference.
func (d Direction) Sub(e Direction) Direction { return Direction{p3: d.p3.sub(e.p3)} }

// Scale multiplies every component by s.
func (d Direction) Scale(s float32) Direction { return Direction{p3: d.p3.scale(s)} }

// Neg negates every component.
func (d Direction) Neg() Direction { return Direction{p3: d.p3.negAll()} }

// Equal reports bitwise equality.
func (d Direction) Equal(e Direction) bool { return d.p3.equal(e.p3) }

// ApproxEqual reports component-wise equality within eps.
func (d Direction) ApproxEqual(e Direction, eps float32) bool {
	return d.p3.approxEqual(e.p3, eps)
}
