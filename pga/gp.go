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

// The geometric product extends the exterior product with a metric: where the
// subspace intersection of two basis blades is non-zero the grade collapses
// and a scalar weight is folded in. Products of reflective and rotational
// elements built this way compose rigid motions.
//
// Kernels are named gpAB for the partition indices of their operands. Each is
// a closed-form lane expression; sign conventions come from the Cayley table
// of Cl(3,0,1).

// gp00 multiplies two p0 partitions, producing the p1 and p2 partitions of a
// motor.
func gp00(a, b f32x4) (p1, p2 f32x4) {
	// (a1 b1 + a2 b2 + a3 b3) +
	// (a2 b3 - a3 b2) e23 + (a3 b1 - a1 b3) e31 + (a1 b2 - a2 b1) e12 +
	// (a0 b1 - a1 b0) e01 + (a0 b2 - a2 b0) e02 + (a0 b3 - a3 b0) e03
	p1 = a.shuffle(1, 2, 3, 1).mul(b.shuffle(1, 3, 1, 2))
	p1 = p1.sub(a.shuffle(2, 3, 1, 2).mul(b.shuffle(2, 2, 3, 1)).negLow())
	p1 = p1.add0(a[3] * b[3])

	// The low lane cancels exactly.
	p2 = a.shuffle(0, 0, 0, 0).mul(b)
	p2 = p2.sub(a.mul(b.shuffle(0, 0, 0, 0)))
	return p1, p2
}

// gp03 multiplies a plane partition by a point partition. flip selects the
// reversed operand order, which negates the pseudoscalar lane.
func gp03(a, b f32x4, flip bool) (p1, p2 f32x4) {
	// a1 b0 e23 + a2 b0 e31 + a3 b0 e12 +
	// (a0 b0 + a1 b1 + a2 b2 + a3 b3) e0123 (negated when flipped) +
	// (a3 b2 - a2 b3) e01 + (a1 b3 - a3 b1) e02 + (a2 b1 - a1 b2) e03
	p1 = a.mul(b.shuffle(0, 0, 0, 0)).zeroLow()

	p2 = a.shuffle(0, 3, 1, 2).mul(b.shuffle(0, 2, 3, 1))
	p2 = p2.sub(a.shuffle(0, 2, 3, 1).mul(b.shuffle(0, 3, 1, 2)))
	tmp := dp(a, b)
	if flip {
		tmp = tmp.negLow()
	}
	p2 = p2.add(tmp)
	return p1, p2
}

// gp11 multiplies two p1 partitions: the quaternion-like product underlying
// rotor composition.
func gp11(a, b f32x4) f32x4 {
	// (a0 b0 - a1 b1 - a2 b2 - a3 b3) +
	// (a0 b1 - a2 b3 + a1 b0 + a3 b2) e23 +
	// (a0 b2 - a3 b1 + a2 b0 + a1 b3) e31 +
	// (a0 b3 - a1 b2 + a3 b0 + a2 b1) e12
	p1 := a.shuffle(0, 0, 0, 0).mul(b)
	p1 = p1.sub(a.shuffle(1, 2, 3, 1).mul(b.shuffle(1, 3, 1, 2)))

	// Accumulate the trailing terms separately so a single sign flip on the
	// low lane covers the scalar component.
	tmp := a.shuffle(2, 1, 2, 3).mul(b.shuffle(2, 0, 0, 0))
	tmp = tmp.add(a.shuffle(3, 3, 1, 2).mul(b.shuffle(3, 2, 3, 1)))
	return p1.add(tmp.negLow())
}

// gp33 multiplies two p3 partitions, producing the translator displacing the
// second point to the first.
func gp33(a, b f32x4) f32x4 {
	// (-a0 b0) +
	// (a1 b0 - a0 b1) e01 + (a2 b0 - a0 b2) e02 + (a3 b0 - a0 b3) e03,
	// divided through by the scalar to produce a translator.
	tmp := a.shuffle(0, 0, 0, 0).mul(b)
	tmp = tmp.mul(f32x4{-2, -1, -1, -1})
	tmp = tmp.add(a.mul(b.shuffle(0, 0, 0, 0)))
	tmp = tmp.mul(all(tmp[0]).rcpNR1())
	return tmp.zeroLow()
}

// gpDL weights the line (b, c) by the dual number u + v*e0123.
func gpDL(u, v float32, b, c f32x4) (p1, p2 f32x4) {
	// b1 u e23 + b2 u e31 + b3 u e12 +
	// (c1 u - b1 v) e01 + (c2 u - b2 v) e02 + (c3 u - b3 v) e03
	p1 = b.scale(u)
	p2 = c.scale(u).sub(b.scale(v))
	return p1, p2
}

// gpRT multiplies a rotor partition by a translator partition, yielding the
// ideal partition of a motor. flip selects the reversed operand order.
func gpRT(a, b f32x4, flip bool) f32x4 {
	// (a1 b1 + a2 b2 + a3 b3) e0123 +
	// (a0 b1 ± (a2 b3 - a3 b2)) e01 +
	// (a0 b2 ± (a3 b1 - a1 b3)) e02 +
	// (a0 b3 ± (a1 b2 - a2 b1)) e03
	p2 := a.shuffle(1, 0, 0, 0).mul(b.shuffle(1, 1, 2, 3))
	if flip {
		p2 = p2.add(a.shuffle(2, 2, 3, 1).mul(b.shuffle(2, 3, 1, 2)))
		p2 = p2.sub(a.shuffle(3, 3, 1, 2).mul(b.shuffle(3, 2, 3, 1)).negLow())
	} else {
		p2 = p2.add(a.shuffle(2, 3, 1, 2).mul(b.shuffle(2, 2, 3, 1)))
		p2 = p2.sub(a.shuffle(3, 2, 3, 1).mul(b.shuffle(3, 3, 1, 2)).negLow())
	}
	return p2
}

// gp12 multiplies a rotor partition by a motor's ideal partition.
func gp12(a, b f32x4, flip bool) f32x4 {
	p2 := gpRT(a, b, flip)
	return p2.sub(a.mul(b.shuffle(0, 0, 0, 0)).negLow())
}

// gpLL multiplies two full lines (a, d) and (b, c), producing the two motor
// partitions.
func gpLL(a, d, b, c f32x4) (p1, p2 f32x4) {
	// (-a1 b1 - a2 b2 - a3 b3) +
	// (a2 b1 - a1 b2) e23 + (a1 b3 - a3 b1) e31 + (a3 b2 - a2 b3) e12 +
	// (a1 c1 + a2 c2 + a3 c3 + b1 d1 + b2 d2 + b3 d3) e0123 +
	// (a3 c2 - a2 c3 + b2 d3 - b3 d2) e01 +
	// (a1 c3 - a3 c1 + b3 d1 - b1 d3) e02 +
	// (a2 c1 - a1 c2 + b1 d2 - b2 d1) e03
	p1 = a.shuffle(1, 2, 1, 3).mul(b.shuffle(1, 1, 3, 2)).negLow()
	p1 = p1.sub(a.shuffle(3, 1, 3, 2).mul(b.shuffle(3, 2, 1, 3)))
	p1 = p1.add0(-a[2] * b[2])

	p2 = a.shuffle(1, 3, 1, 2).mul(c.shuffle(1, 2, 3, 1))
	p2 = p2.sub(a.shuffle(3, 2, 3, 1).mul(c.shuffle(3, 3, 1, 2)).negLow())
	p2 = p2.add(b.shuffle(1, 2, 3, 1).mul(d.shuffle(1, 3, 1, 2)))
	p2 = p2.sub(b.shuffle(3, 3, 1, 2).mul(d.shuffle(3, 2, 3, 1)).negLow())
	p2 = p2.add0(a[2]*c[2] + b[2]*d[2])
	return p1, p2
}

// gpMM multiplies two full motors (a, b) and (c, d).
func gpMM(a, b, c, d f32x4) (p1, p2 f32x4) {
	// (a0 c0 - a1 c1 - a2 c2 - a3 c3) +
	// (a0 c1 + a3 c2 + a1 c0 - a2 c3) e23 +
	// (a0 c2 + a1 c3 + a2 c0 - a3 c1) e31 +
	// (a0 c3 + a2 c1 + a3 c0 - a1 c2) e12 +
	// (a0 d0 + b0 c0 + a1 d1 + b1 c1 + a2 d2 + a3 d3 + b2 c2 + b3 c3) e0123 +
	// (a0 d1 + b1 c0 + a3 d2 + b3 c2 - a1 d0 - a2 d3 - b0 c1 - b2 c3) e01 +
	// (a0 d2 + b2 c0 + a1 d3 + b1 c3 - a2 d0 - a3 d1 - b0 c2 - b3 c1) e02 +
	// (a0 d3 + b3 c0 + a2 d1 + b2 c1 - a3 d0 - a1 d2 - b0 c3 - b1 c2) e03
	//
	// a and b are the left operand's partitions, c and d the right's, so the
	// rotor part of the product involves only a and c.
	axxxx := a.shuffle(0, 0, 0, 0)
	azyzw := a.shuffle(2, 1, 2, 3)
	aywyz := a.shuffle(1, 3, 1, 2)
	awzwy := a.shuffle(3, 2, 3, 1)
	cwwyz := c.shuffle(3, 3, 1, 2)
	cyzwy := c.shuffle(1, 2, 3, 1)

	p1 = axxxx.mul(c)
	t := aywyz.mul(cyzwy)
	t = t.add(azyzw.mul(c.shuffle(2, 0, 0, 0)))
	p1 = p1.add(t.negLow())
	p1 = p1.sub(awzwy.mul(cwwyz))

	p2 = axxxx.mul(d)
	p2 = p2.add(b.mul(c.shuffle(0, 0, 0, 0)))
	p2 = p2.add(aywyz.mul(d.shuffle(1, 2, 3, 1)))
	p2 = p2.add(b.shuffle(1, 3, 1, 2).mul(cyzwy))
	t = azyzw.mul(d.shuffle(2, 0, 0, 0))
	t = t.add(awzwy.mul(d.shuffle(3, 3, 1, 2)))
	t = t.add(b.shuffle(2, 0, 0, 0).mul(c.shuffle(2, 1, 2, 3)))
	t = t.add(b.shuffle(3, 2, 3, 1).mul(cwwyz))
	p2 = p2.sub(t.negLow())
	return p1, p2
}

// Mul computes the geometric product p * q. If the planes are normalized and
// intersect, the result is a rotor about their common line; if they are
// parallel, a translator.
func (p Plane) Mul(q Plane) Motor {
	p1, p2 := gp00(p.p0, q.p0)
	return Motor{p1: p1, p2: p2}
}

// Div multiplies p by the inverse of q.
func (p Plane) Div(q Plane) Motor {
	return p.Mul(q.Inverse())
}

// MulPoint computes the geometric product p * q.
func (p Plane) MulPoint(q Point) Motor {
	p1, p2 := gp03(p.p0, q.p3, false)
	return Motor{p1: p1, p2: p2}
}

// MulPlane computes the geometric product p * q.
func (p Point) MulPlane(q Plane) Motor {
	p1, p2 := gp03(q.p0, p.p3, true)
	return Motor{p1: p1, p2: p2}
}

// Mul computes the geometric product p * q: the translator displacing q to p
// twice over, so that the square root of the result takes q to p.
func (p Point) Mul(q Point) Translator {
	return Translator{p2: gp33(p.p3, q.p3)}
}

// Div multiplies p by the inverse of q.
func (p Point) Div(q Point) Translator {
	return p.Mul(q.Inverse())
}

// Mul computes the geometric product b * c: the rotor whose square root's
// reverse takes branch c to branch b.
func (b Branch) Mul(c Branch) Rotor {
	return Rotor{p1: gp11(b.p1, c.p1)}
}

// Div multiplies b by the inverse of c.
func (b Branch) Div(c Branch) Rotor {
	return b.Mul(c.Inverse())
}

// Mul composes two rotors; the result applies s first, then r.
func (r Rotor) Mul(s Rotor) Rotor {
	return Rotor{p1: gp11(r.p1, s.p1)}
}

// Div multiplies r by the inverse of s.
func (r Rotor) Div(s Rotor) Rotor {
	return r.Mul(s.Inverse())
}

// Mul computes the geometric product l * m: a motor performing a screw motion
// about the common normal of the two lines. The square root of the result
// takes m to l when both are normalized.
func (l Line) Mul(m Line) Motor {
	p1, p2 := gpLL(l.p1, l.p2, m.p1, m.p2)
	return Motor{p1: p1, p2: p2}
}

// Div multiplies l by the inverse of m.
func (l Line) Div(m Line) Motor {
	return l.Mul(m.Inverse())
}

// MulTranslator composes the rotor with a translator: t applies first, then r.
func (r Rotor) MulTranslator(t Translator) Motor {
	return Motor{p1: r.p1, p2: gpRT(r.p1, t.p2, false)}
}

// DivTranslator multiplies r by the inverse of t.
func (r Rotor) DivTranslator(t Translator) Motor {
	return r.MulTranslator(t.Inverse())
}

// MulRotor composes the translator with a rotor: r applies first, then t.
func (t Translator) MulRotor(r Rotor) Motor {
	return Motor{p1: r.p1, p2: gpRT(r.p1, t.p2, true)}
}

// DivRotor multiplies t by the inverse of r.
func (t Translator) DivRotor(r Rotor) Motor {
	return t.MulRotor(r.Inverse())
}

// Mul composes two translators. The composition is commutative and reduces to
// a component-wise sum.
func (t Translator) Mul(u Translator) Translator {
	return t.Add(u)
}

// Div multiplies t by the inverse of u.
func (t Translator) Div(u Translator) Translator {
	return t.Mul(u.Inverse())
}

// MulMotor composes the rotor with a motor: m applies first, then r.
func (r Rotor) MulMotor(m Motor) Motor {
	return Motor{
		p1: gp11(r.p1, m.p1),
		p2: gp12(r.p1, m.p2, false),
	}
}

// MulRotor composes the motor with a rotor: r applies first, then m.
func (m Motor) MulRotor(r Rotor) Motor {
	return Motor{
		p1: gp11(m.p1, r.p1),
		p2: gp12(r.p1, m.p2, true),
	}
}

// DivRotor multiplies m by the inverse of r.
func (m Motor) DivRotor(r Rotor) Motor {
	return m.MulRotor(r.Inverse())
}

// MulMotor composes the translator with a motor: m applies first, then t.
func (t Translator) MulMotor(m Motor) Motor {
	return Motor{
		p1: m.p1,
		p2: gpRT(m.p1, t.p2, true).add(m.p2),
	}
}

// MulTranslator composes the motor with a translator: t applies first, then m.
func (m Motor) MulTranslator(t Translator) Motor {
	return Motor{
		p1: m.p1,
		p2: gpRT(m.p1, t.p2, false).add(m.p2),
	}
}

// DivTranslator multiplies m by the inverse of t.
func (m Motor) DivTranslator(t Translator) Motor {
	return m.MulTranslator(t.Inverse())
}

// Mul composes two motors; the result applies n first, then m.
func (m Motor) Mul(n Motor) Motor {
	p1, p2 := gpMM(m.p1, m.p2, n.p1, n.p2)
	return Motor{p1: p1, p2: p2}
}

// Div multiplies m by the inverse of n.
func (m Motor) Div(n Motor) Motor {
	return m.Mul(n.Inverse())
}

// MulDual weights the line by the dual number d.
func (l Line) MulDual(d Dual) Line {
	return d.MulLine(l)
}
