// Copyright 2026 go-pga Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pga

// The symmetric inner product contracts the lower-grade operand out of the
// higher-grade one. If the lower-grade operand spans an index absent from the
// higher-grade operand the result is annihilated; otherwise the result is the
// part of the higher-grade operand most unlike the lower-grade operand. Between
// operands of equal grade it reduces to a scalar, which measures the cosine of
// the angle between normalized entities.

// dot00 contracts two plane partitions to a scalar.
func dot00(a, b f32x4) float32 {
	// a1 b1 + a2 b2 + a3 b3
	return hiDPSS(a, b)
}

// dot03 contracts a plane partition against a point partition, producing the
// two partitions of a line. The contraction commutes.
func dot03(a, b f32x4) (p1, p2 f32x4) {
	// a1 b0 e23 + a2 b0 e31 + a3 b0 e12 +
	// (a3 b2 - a2 b3) e01 + (a1 b3 - a3 b1) e02 + (a2 b1 - a1 b2) e03
	p1 = a.mul(b.shuffle(0, 0, 0, 0)).zeroLow()

	p2 = a.shuffle(0, 2, 3, 1).mul(b)
	p2 = p2.sub(a.mul(b.shuffle(0, 2, 3, 1))).shuffle(0, 2, 3, 1)
	return p1, p2
}

// dot11 contracts two line partitions to a scalar.
func dot11(a, b f32x4) float32 {
	// -(a1 b1 + a2 b2 + a3 b3)
	return -hiDPSS(a, b)
}

// dot33 contracts two point partitions to a scalar.
func dot33(a, b f32x4) float32 {
	// -a0 b0
	return -a[0] * b[0]
}

// dotPTL contracts a point partition against a branch partition, producing a
// plane partition.
func dotPTL(a, b f32x4) f32x4 {
	// (a1 b1 + a2 b2 + a3 b3) e0 - a0 b1 e1 - a0 b2 e2 - a0 b3 e3
	p0 := a.shuffle(0, 0, 0, 0).mul(b).negHigh()
	p0[0] = hiDPSS(a, b)
	return p0
}

// dotPIL contracts a plane partition against an ideal line partition. flip
// selects the reversed operand order, which negates the result.
func dotPIL(a, c f32x4, flip bool) f32x4 {
	p0 := hiDP(a, c)
	if !flip {
		p0 = p0.negLow()
	}
	return p0
}

// dotPL contracts a plane partition (a) against a full line (b, c). flip
// selects the reversed operand order.
func dotPL(a, b, c f32x4, flip bool) f32x4 {
	if flip {
		// (a1 c1 + a2 c2 + a3 c3) e0 +
		// (a2 b3 - a3 b2) e1 + (a3 b1 - a1 b3) e2 + (a1 b2 - a2 b1) e3
		p0 := a.mul(b.shuffle(0, 2, 3, 1))
		p0 = p0.sub(a.shuffle(0, 2, 3, 1).mul(b))
		return p0.shuffle(0, 2, 3, 1).add0(hiDPSS(a, c))
	}
	// -(a1 c1 + a2 c2 + a3 c3) e0 +
	// (a3 b2 - a2 b3) e1 + (a1 b3 - a3 b1) e2 + (a2 b1 - a1 b2) e3
	p0 := a.shuffle(0, 2, 3, 1).mul(b)
	p0 = p0.sub(a.mul(b.shuffle(0, 2, 3, 1)))
	return p0.shuffle(0, 2, 3, 1).add0(-hiDPSS(a, c))
}

// Dot computes the symmetric inner product p | q. For normalized planes this
// is the cosine of the angle between them.
func (p Plane) Dot(q Plane) float32 {
	return dot00(p.p0, q.p0)
}

// Dot computes the symmetric inner product l | m.
func (l Line) Dot(m Line) float32 {
	return dot11(l.p1, m.p1)
}

// Dot computes the symmetric inner product p | q.
func (p Point) Dot(q Point) float32 {
	return dot33(p.p3, q.p3)
}

// DotLine computes the symmetric inner product p | l.
func (p Plane) DotLine(l Line) Plane {
	return Plane{p0: dotPL(p.p0, l.p1, l.p2, false)}
}

// DotPlane computes the symmetric inner product l | p.
func (l Line) DotPlane(p Plane) Plane {
	return Plane{p0: dotPL(p.p0, l.p1, l.p2, true)}
}

// DotIdealLine computes the symmetric inner product p | l.
func (p Plane) DotIdealLine(l IdealLine) Plane {
	return Plane{p0: dotPIL(p.p0, l.p2, false)}
}

// DotPlane computes the symmetric inner product l | p.
func (l IdealLine) DotPlane(p Plane) Plane {
	return Plane{p0: dotPIL(p.p0, l.p2, true)}
}

// DotPoint computes the symmetric inner product p | q: a line through q
// perpendicular to p.
func (p Plane) DotPoint(q Point) Line {
	p1, p2 := dot03(p.p0, q.p3)
	return Line{p1: p1, p2: p2}
}

// DotPlane computes the symmetric inner product q | p. The operands commute.
func (q Point) DotPlane(p Plane) Line {
	return p.DotPoint(q)
}

// DotLine computes the symmetric inner product p | l: a plane through p
// perpendicular to l.
func (p Point) DotLine(l Line) Plane {
	return Plane{p0: dotPTL(p.p3, l.p1)}
}

// DotPoint computes the symmetric inner product l | p. The operands commute.
func (l Line) DotPoint(p Point) Plane {
	return p.DotLine(l)
}
