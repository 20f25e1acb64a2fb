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

// The exterior product of two basis blades vanishes when the blades share an
// index; otherwise it spans the union of their subspaces, with a sign flip when
// the index concatenation is an odd permutation of the cyclic basis order.
// Geometrically the product is the meet: the intersection of its operands.
//
// The products p2^p2, p2^p3, p3^p2, and p3^p3 all vanish, so no kernels exist
// for them.

// ext00 meets two plane partitions, producing the two partitions of the
// intersection line.
func ext00(a, b f32x4) (p1, p2 f32x4) {
	// (a2 b3 - a3 b2) e23 + (a3 b1 - a1 b3) e31 + (a1 b2 - a2 b1) e12 +
	// (a0 b1 - a1 b0) e01 + (a0 b2 - a2 b0) e02 + (a0 b3 - a3 b0) e03
	p1 = a.mul(b.shuffle(0, 2, 3, 1))
	p1 = p1.sub(a.shuffle(0, 2, 3, 1).mul(b)).shuffle(0, 2, 3, 1)

	p2 = a.shuffle(0, 0, 0, 0).mul(b)
	p2 = p2.sub(a.mul(b.shuffle(0, 0, 0, 0)))

	// The low lane of each output cancels exactly, so it is not masked.
	return p1, p2
}

// extPB meets a plane partition with a branch partition (a line through the
// origin), producing a point partition.
func extPB(a, b f32x4) f32x4 {
	// (a1 b1 + a2 b2 + a3 b3) e123 +
	// (-a0 b1) e032 + (-a0 b2) e013 + (-a0 b3) e021
	p3 := a.shuffle(1, 0, 0, 0).mul(b).mul(f32x4{0, -1, -1, -1})
	return p3.add0(hiDPSS(a, b))
}

// ext02 meets a plane partition with an ideal line partition, producing a
// point partition.
func ext02(a, b f32x4) f32x4 {
	// (a2 b3 - a3 b2) e032 + (a3 b1 - a1 b3) e013 + (a1 b2 - a2 b1) e021
	p3 := a.mul(b.shuffle(0, 2, 3, 1))
	p3 = p3.sub(a.shuffle(0, 2, 3, 1).mul(b))
	return p3.shuffle(0, 2, 3, 1)
}

// ext03 meets a plane partition with a point partition, producing the
// pseudoscalar weight. flip selects the reversed operand order, which negates
// the result.
func ext03(a, b f32x4, flip bool) float32 {
	// (a0 b0 + a1 b1 + a2 b2 + a3 b3) e0123
	q := dp(a, b)[0]
	if flip {
		q = -q
	}
	return q
}

// Wedge computes the exterior product p ^ q: the line along which the planes
// intersect.
func (p Plane) Wedge(q Plane) Line {
	p1, p2 := ext00(p.p0, q.p0)
	return Line{p1: p1, p2: p2}
}

// WedgeBranch computes the exterior product p ^ b: the point where the branch
// pierces the plane.
func (p Plane) WedgeBranch(b Branch) Point {
	return Point{p3: extPB(p.p0, b.p1)}
}

// WedgePlane computes the exterior product b ^ p. The operands commute.
func (b Branch) WedgePlane(p Plane) Point {
	return p.WedgeBranch(b)
}

// WedgeIdealLine computes the exterior product p ^ l.
func (p Plane) WedgeIdealLine(l IdealLine) Point {
	return Point{p3: ext02(p.p0, l.p2)}
}

// WedgePlane computes the exterior product l ^ p. The operands commute.
func (l IdealLine) WedgePlane(p Plane) Point {
	return p.WedgeIdealLine(l)
}

// WedgeLine computes the exterior product p ^ l: the point where the line
// pierces the plane.
func (p Plane) WedgeLine(l Line) Point {
	return Point{p3: ext02(p.p0, l.p2).add(extPB(p.p0, l.p1))}
}

// WedgePlane computes the exterior product l ^ p. The operands commute.
func (l Line) WedgePlane(p Plane) Point {
	return p.WedgeLine(l)
}

// WedgePoint computes the exterior product p ^ q: the signed volume spanned by
// the plane and the point, as a pseudoscalar weight.
func (p Plane) WedgePoint(q Point) Dual {
	return Dual{q: ext03(p.p0, q.p3, false)}
}

// WedgePlane computes the exterior product q ^ p. The operands anticommute.
func (q Point) WedgePlane(p Plane) Dual {
	return Dual{q: ext03(p.p0, q.p3, true)}
}

// WedgeIdealLine computes the exterior product b ^ l.
func (b Branch) WedgeIdealLine(l IdealLine) Dual {
	return Dual{q: hiDPSS(b.p1, l.p2)}
}

// WedgeBranch computes the exterior product l ^ b. The operands commute.
func (l IdealLine) WedgeBranch(b Branch) Dual {
	return b.WedgeIdealLine(l)
}

// Wedge computes the exterior product l ^ m. The pseudoscalar weight vanishes
// exactly when the lines intersect.
func (l Line) Wedge(m Line) Dual {
	return Dual{q: hiDPSS(l.p1, m.p2) + hiDPSS(m.p1, l.p2)}
}

// WedgeIdealLine computes the exterior product l ^ m. Only the branch part of
// l contributes.
func (l Line) WedgeIdealLine(m IdealLine) Dual {
	return Branch{p1: l.p1}.WedgeIdealLine(m)
}

// WedgeLine computes the exterior product m ^ l. The operands commute.
func (m IdealLine) WedgeLine(l Line) Dual {
	return l.WedgeIdealLine(m)
}

// WedgeBranch computes the exterior product l ^ b. Only the ideal part of l
// contributes.
func (l Line) WedgeBranch(b Branch) Dual {
	return IdealLine{p2: l.p2}.WedgeBranch(b)
}

// WedgeLine computes the exterior product b ^ l. The operands commute.
func (b Branch) WedgeLine(l Line) Dual {
	return l.WedgeBranch(b)
}
