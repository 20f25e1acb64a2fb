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

// Conjugation kernels, named swAB for the partition indices of the target (A)
// and the versor (B). Each expands the full sandwich v * x * reverse(v) into a
// closed form rather than evaluating two geometric products and a reversion;
// the result is equivalent.
//
// The versor argument comes first in the two-argument kernels; the kernels
// whose versor is a motor take the rotor partition b and an optional
// translation partition c. When c is nil the application degenerates to a
// rotor conjugation.

// sw00 reflects the plane partition b through the plane partition a.
func sw00(a, b f32x4) f32x4 {
	// (2a0(a1 b1 + a2 b2 + a3 b3) - b0(a1^2 + a2^2 + a3^2)) e0 +
	// (2a1(a2 b2 + a3 b3) + b1(a1^2 - a2^2 - a3^2)) e1 +
	// (2a2(a3 b3 + a1 b1) + b2(a2^2 - a3^2 - a1^2)) e2 +
	// (2a3(a1 b1 + a2 b2) + b3(a3^2 - a1^2 - a2^2)) e3
	aZZWY := a.shuffle(2, 2, 3, 1)
	aWWYZ := a.shuffle(3, 3, 1, 2)
	aYYZW := a.shuffle(1, 1, 2, 3)

	left := aZZWY.mul(b.shuffle(2, 2, 3, 1)).add(aWWYZ.mul(b.shuffle(3, 3, 1, 2)))
	left = left.add0(a[1] * b[1])
	left = left.mul(a.add(a))

	right := aYYZW.mul(aYYZW).negLow()
	right = right.sub(aZZWY.mul(aZZWY)).sub(aWWYZ.mul(aWWYZ))

	return left.add(right.mul(b))
}

// sw10 reflects the branch partition b through the plane partition a,
// producing both partitions of the reflected line.
func sw10(a, b f32x4) (p1, p2 f32x4) {
	// b0(a1^2 + a2^2 + a3^2) +
	// (2a1(a2 b2 + a3 b3) + b1(a1^2 - a2^2 - a3^2)) e23 +
	// (2a2(a3 b3 + a1 b1) + b2(a2^2 - a3^2 - a1^2)) e31 +
	// (2a3(a1 b1 + a2 b2) + b3(a3^2 - a1^2 - a2^2)) e12 +
	// 2a0(a2 b3 - a3 b2) e01 + 2a0(a3 b1 - a1 b3) e02 + 2a0(a1 b2 - a2 b1) e03
	aZYZW := a.shuffle(2, 1, 2, 3)
	aYWYZ := a.shuffle(1, 3, 1, 2)
	aWZWY := a.shuffle(3, 2, 3, 1)
	bXZWY := b.shuffle(0, 2, 3, 1)
	twoZero := f32x4{0, 2, 2, 2}

	p1 = aZYZW.mul(aZYZW).add(aWZWY.mul(aWZWY)).negLow()
	p1 = aYWYZ.mul(aYWYZ).sub(p1).mul(b.shuffle(0, 3, 1, 2))
	p1 = a.mul(b).add(aWZWY.mul(bXZWY)).mul(aYWYZ).mul(twoZero).add(p1)
	p1 = p1.shuffle(0, 2, 3, 1)

	p2 = aZYZW.mul(bXZWY).sub(aWZWY.mul(b)).mul(a.shuffle(0, 0, 0, 0)).mul(twoZero)
	p2 = p2.shuffle(0, 2, 3, 1)
	return p1, p2
}

// sw20 reflects the ideal line partition b through the plane partition a.
func sw20(a, b f32x4) f32x4 {
	// -b0(a1^2 + a2^2 + a3^2) e0123 +
	// (-2a1(a2 b2 + a3 b3) + b1(a2^2 + a3^2 - a1^2)) e01 +
	// (-2a2(a3 b3 + a1 b1) + b2(a3^2 + a1^2 - a2^2)) e02 +
	// (-2a3(a1 b1 + a2 b2) + b3(a1^2 + a2^2 - a3^2)) e03
	aZZWY := a.shuffle(2, 2, 3, 1)
	aWWYZ := a.shuffle(3, 3, 1, 2)

	p2 := a.mul(b)
	p2 = p2.add(aZZWY.mul(b.shuffle(0, 2, 3, 1)))
	p2 = p2.mul(aWWYZ).mul(f32x4{0, -2, -2, -2})

	aYYZW := a.shuffle(1, 1, 2, 3)
	tmp := aYYZW.mul(aYYZW).add(aZZWY.mul(aZZWY)).negLow()
	tmp = tmp.sub(aWWYZ.mul(aWWYZ))
	p2 = p2.add(tmp.mul(b.shuffle(0, 3, 1, 2)))
	return p2.shuffle(0, 2, 3, 1)
}

// sw30 reflects the point partition b through the plane partition a.
func sw30(a, b f32x4) f32x4 {
	// b0(a1^2 + a2^2 + a3^2) e123 +
	// (-2a1(a0 b0 + a2 b2 + a3 b3) + b1(a2^2 + a3^2 - a1^2)) e032 +
	// (-2a2(a0 b0 + a1 b1 + a3 b3) + b2(a3^2 + a1^2 - a2^2)) e013 +
	// (-2a3(a0 b0 + a1 b1 + a2 b2) + b3(a1^2 + a2^2 - a3^2)) e021
	aZWYZ := a.shuffle(2, 3, 1, 2)
	aYZWY := a.shuffle(1, 2, 3, 1)
	aWYZW := a.shuffle(3, 1, 2, 3)

	p3 := a.shuffle(0, 0, 0, 0).mul(b.shuffle(0, 0, 0, 0))
	p3 = p3.add(aZWYZ.mul(b.shuffle(0, 3, 1, 2))).add(aYZWY.mul(b.shuffle(0, 2, 3, 1)))
	p3 = p3.mul(a).mul(f32x4{0, -2, -2, -2})

	tmp := aYZWY.mul(aYZWY).add(aZWYZ.mul(aZWYZ)).sub(aWYZW.mul(aWYZW).negLow())
	return p3.add(b.mul(tmp))
}

// sw02 translates the plane partition a by the translator partition b. The low
// lane of b must hold the translator's scalar component rather than the
// pseudoscalar, which is assumed to be exactly zero.
func sw02(a, b f32x4) f32x4 {
	// (a0 + 2(a1 b1 + a2 b2 + a3 b3)/b0) e0 + a1 e1 + a2 e2 + a3 e3
	//
	// The plane is projectively equivalent under scalar multiplication, so the
	// result is divided through by b0^2. The additive term is a dot product
	// between the plane's normal and the translation axis: the plane moves only
	// by the projection of the translation onto its normal.
	invB := b.rcpNR1()
	return a.add0(hiDPSS(a, b) * 2 * invB[0])
}

// swL2 translates the line (a, d) by the translator partition c.
func swL2(a, d, c f32x4) (p1, p2 f32x4) {
	// a0 + a1 e23 + a2 e31 + a3 e12 +
	// (2 a0 c0 + d0) e0123 +
	// (2(a2 c3 - a3 c2 - a1 c0) + d1) e01 +
	// (2(a3 c1 - a1 c3 - a2 c0) + d2) e02 +
	// (2(a1 c2 - a2 c1 - a3 c0) + d3) e03
	p1 = a
	p2 = a.shuffle(0, 2, 3, 1).mul(c.shuffle(0, 3, 1, 2))
	// The low lane adds and subtracts the same quantity, arranging a
	// cancellation.
	p2 = p2.sub(a.shuffle(0, 3, 1, 2).mul(c.shuffle(0, 2, 3, 1)))
	p2 = p2.sub(a.mul(c.shuffle(0, 0, 0, 0)).negLow())
	p2 = p2.add(p2).add(d)
	return p1, p2
}

// sw32 translates the point partition a by the translator partition b, whose
// pseudoscalar lane is assumed to be exactly zero.
func sw32(a, b f32x4) f32x4 {
	// a0 e123 + (a1 - 2 a0 b1) e032 + (a2 - 2 a0 b2) e013 + (a3 - 2 a0 b3) e021
	return a.add(f32x4{0, -2, -2, -2}.mul(a.shuffle(0, 0, 0, 0)).mul(b))
}

// sandwich012 holds the precomputed temporaries for conjugating p0-like
// partitions (planes, and points or directions under a rotor) with a versor.
// The temporaries depend only on the versor, so one value serves a whole
// slice of targets.
type sandwich012 struct {
	tmp1, tmp2, tmp3 f32x4
	tmp4             f32x4
	translate        bool
}

func newSandwich012(b f32x4, c *f32x4) sandwich012 {
	// (2a1(b0 c1 + b2 c3 + b1 c0 - b3 c2) +
	//  2a2(b0 c2 + b3 c1 + b2 c0 - b1 c3) +
	//  2a3(b0 c3 + b1 c2 + b3 c0 - b2 c1) +
	//  a0(b0^2 + b1^2 + b2^2 + b3^2)) e0 +
	// (2a2(b0 b3 + b2 b1) + 2a3(b1 b3 - b0 b2) + a1(b0^2 + b1^2 - b3^2 - b2^2)) e1 +
	// (2a3(b0 b1 + b3 b2) + 2a1(b2 b1 - b0 b3) + a2(b0^2 + b2^2 - b1^2 - b3^2)) e2 +
	// (2a1(b0 b2 + b1 b3) + 2a2(b3 b2 - b0 b1) + a3(b0^2 + b3^2 - b2^2 - b1^2)) e3
	//
	// The e1, e2, e3 components match a pure rotor application; only e0 is
	// displaced by the translation, as with a translator applied to a plane.
	dcScale := f32x4{1, 2, 2, 2}
	bXWYZ := b.shuffle(0, 3, 1, 2)
	bXZWY := b.shuffle(0, 2, 3, 1)
	bXXXX := b.shuffle(0, 0, 0, 0)

	var s sandwich012

	tmp1 := b.shuffle(2, 0, 0, 0).mul(b.shuffle(2, 3, 1, 2))
	tmp1 = tmp1.add(b.shuffle(1, 2, 3, 1).mul(b.shuffle(1, 1, 2, 3)))
	s.tmp1 = tmp1.mul(dcScale) // scaled by (a0, a2, a3, a1)

	tmp2 := b.mul(bXWYZ)
	tmp2 = tmp2.sub(b.shuffle(3, 0, 0, 0).mul(b.shuffle(3, 2, 3, 1)).negLow())
	s.tmp2 = tmp2.mul(dcScale) // scaled by (a0, a3, a1, a2)

	// Alternately add and subtract to improve low lane stability.
	tmp3 := b.mul(b)
	tmp3 = tmp3.sub(bXWYZ.mul(bXWYZ))
	tmp3 = tmp3.add(bXXXX.mul(bXXXX))
	s.tmp3 = tmp3.sub(bXZWY.mul(bXZWY)) // scaled by a

	if c != nil {
		tmp4 := bXXXX.mul(*c)
		tmp4 = tmp4.add(bXZWY.mul(c.shuffle(0, 3, 1, 2)))
		tmp4 = tmp4.add(b.mul(c.shuffle(0, 0, 0, 0)))
		tmp4 = tmp4.sub(bXWYZ.mul(c.shuffle(0, 2, 3, 1)))
		s.tmp4 = tmp4.mul(dcScale)
		s.translate = true
	}
	return s
}

func (s sandwich012) apply(a f32x4) f32x4 {
	p := s.tmp1.mul(a.shuffle(0, 2, 3, 1))
	p = p.add(s.tmp2.mul(a.shuffle(0, 3, 1, 2)))
	p = p.add(s.tmp3.mul(a))
	if s.translate {
		p = p.add0(hiDPSS(s.tmp4, a))
	}
	return p
}

// sw012 conjugates the plane-like partition a with the versor (b, c).
func sw012(a, b f32x4, c *f32x4) f32x4 {
	return newSandwich012(b, c).apply(a)
}

// sandwichMM holds the precomputed temporaries for conjugating lines (or the
// two partitions of a motor) with a versor.
type sandwichMM struct {
	tmp1, tmp2, tmp3 f32x4
	tmp4, tmp5, tmp6 f32x4
	translate        bool
}

func newSandwichMM(b f32x4, c *f32x4) sandwichMM {
	// a0(b0^2 + b1^2 + b2^2 + b3^2) +
	// (a1(b1^2 + b0^2 - b3^2 - b2^2) + 2a2(b0 b3 + b1 b2) + 2a3(b1 b3 - b0 b2)) e23 +
	// (a2(b2^2 + b0^2 - b1^2 - b3^2) + 2a3(b0 b1 + b2 b3) + 2a1(b2 b1 - b0 b3)) e31 +
	// (a3(b3^2 + b0^2 - b2^2 - b1^2) + 2a1(b0 b2 + b3 b1) + 2a2(b3 b2 - b0 b1)) e12
	//
	// The ideal output partition mixes the same three temporaries applied to
	// the ideal input with three translation temporaries applied to the real
	// input.
	bXWYZ := b.shuffle(0, 3, 1, 2)
	bXZWY := b.shuffle(0, 2, 3, 1)
	bYXXX := b.shuffle(1, 0, 0, 0)

	var s sandwichMM

	bTmp := b.shuffle(2, 3, 1, 2)
	bTmp2 := bTmp.mul(bTmp)
	bTmp = b.shuffle(3, 2, 3, 1)
	bTmp2 = bTmp2.add(bTmp.mul(bTmp))
	s.tmp1 = b.mul(b).add(bYXXX.mul(bYXXX)).sub(bTmp2.negLow()) // scaled by a

	bXXXX := b.shuffle(0, 0, 0, 0)
	scale := f32x4{0, 2, 2, 2}
	s.tmp2 = bXXXX.mul(bXWYZ).add(b.mul(bXZWY)).mul(scale)  // scaled by (a0, a2, a3, a1)
	s.tmp3 = b.mul(bXWYZ).sub(bXXXX.mul(bXZWY)).mul(scale) // scaled by (a0, a3, a1, a2)

	if c != nil {
		cZero := c.shuffle(0, 0, 0, 0)
		cXZWY := c.shuffle(0, 2, 3, 1)
		cXWYZ := c.shuffle(0, 3, 1, 2)

		tmp4 := b.mul(*c)
		tmp4 = tmp4.sub(bYXXX.mul(c.shuffle(1, 0, 0, 0)))
		tmp4 = tmp4.sub(b.shuffle(2, 3, 3, 1).mul(c.shuffle(2, 3, 3, 1)))
		tmp4 = tmp4.sub(b.shuffle(3, 2, 1, 2).mul(c.shuffle(3, 2, 1, 2)))
		s.tmp4 = tmp4.add(tmp4) // scaled by a

		s.tmp5 = b.mul(cXWYZ).add(bXZWY.mul(cZero)).add(bXWYZ.mul(*c)).sub(bXXXX.mul(cXZWY)).mul(scale) // scaled by (a0, a3, a1, a2)
		s.tmp6 = b.mul(cXZWY).add(bXXXX.mul(cXWYZ)).add(bXZWY.mul(*c)).sub(bXWYZ.mul(cZero)).mul(scale) // scaled by (a0, a2, a3, a1)
		s.translate = true
	}
	return s
}

// apply conjugates the line (a1, a2). When computeP2 is false only the real
// partition is produced, which is all a branch application needs.
func (s sandwichMM) apply(a1, a2 f32x4, computeP2 bool) (p1, p2 f32x4) {
	a1XZWY := a1.shuffle(0, 2, 3, 1)
	a1XWYZ := a1.shuffle(0, 3, 1, 2)

	p1 = s.tmp1.mul(a1).add(s.tmp2.mul(a1XZWY)).add(s.tmp3.mul(a1XWYZ))
	if !computeP2 {
		return p1, p2
	}

	p2 = s.tmp1.mul(a2).add(s.tmp2.mul(a2.shuffle(0, 2, 3, 1))).add(s.tmp3.mul(a2.shuffle(0, 3, 1, 2)))
	// A rotor leaves the non-directional components of the line untouched.
	if s.translate {
		p2 = p2.add(s.tmp4.mul(a1))
		p2 = p2.add(s.tmp5.mul(a1XWYZ))
		p2 = p2.add(s.tmp6.mul(a1XZWY))
	}
	return p1, p2
}

// swMM conjugates the line (a1, a2) with the versor (b, c).
func swMM(a1, a2, b f32x4, c *f32x4, computeP2 bool) (p1, p2 f32x4) {
	return newSandwichMM(b, c).apply(a1, a2, computeP2)
}

// sandwich312 holds the precomputed temporaries for conjugating points or
// directions with a versor.
type sandwich312 struct {
	tmp1, tmp2, tmp3 f32x4
	tmp4             f32x4
	translate        bool
}

func newSandwich312(b f32x4, c *f32x4) sandwich312 {
	// a0(b0^2 + b1^2 + b2^2 + b3^2) e123 +
	// (2a0(b2 c3 - b0 c1 - b3 c2 - b1 c0) + 2a3(b1 b3 - b0 b2) +
	//  2a2(b0 b3 + b2 b1) + a1(b0^2 + b1^2 - b3^2 - b2^2)) e032 +
	// (2a0(b3 c1 - b0 c2 - b1 c3 - b2 c0) + 2a1(b2 b1 - b0 b3) +
	//  2a3(b0 b1 + b3 b2) + a2(b0^2 + b2^2 - b1^2 - b3^2)) e013 +
	// (2a0(b1 c2 - b0 c3 - b2 c1 - b3 c0) + 2a2(b3 b2 - b0 b1) +
	//  2a1(b0 b2 + b1 b3) + a3(b0^2 + b3^2 - b2^2 - b1^2)) e021
	//
	// With c1 = c2 = c3 = 0 this is indistinguishable from a rotor application
	// and the homogeneous coordinate a0 does not participate; for a normalized
	// rotor and homogeneous point the e123 lane stays at unity.
	two := f32x4{0, 2, 2, 2}
	bXXXX := b.shuffle(0, 0, 0, 0)
	bXWYZ := b.shuffle(0, 3, 1, 2)
	bXZWY := b.shuffle(0, 2, 3, 1)

	var s sandwich312

	s.tmp1 = b.mul(bXWYZ).sub(bXXXX.mul(bXZWY)).mul(two) // scaled by (_, a3, a1, a2)
	s.tmp2 = bXXXX.mul(bXWYZ).add(bXZWY.mul(b)).mul(two) // scaled by (_, a2, a3, a1)

	tmp3 := b.mul(b)
	bTmp := b.shuffle(1, 0, 0, 0)
	tmp3 = tmp3.add(bTmp.mul(bTmp))
	bTmp = b.shuffle(2, 3, 1, 2)
	tmp4 := bTmp.mul(bTmp)
	bTmp = b.shuffle(3, 2, 3, 1)
	tmp4 = tmp4.add(bTmp.mul(bTmp))
	s.tmp3 = tmp3.sub(tmp4.negLow()) // scaled by a

	if c != nil {
		tmp4 := bXZWY.mul(c.shuffle(0, 3, 1, 2))
		tmp4 = tmp4.sub(bXXXX.mul(*c))
		tmp4 = tmp4.sub(bXWYZ.mul(c.shuffle(0, 2, 3, 1)))
		tmp4 = tmp4.sub(b.mul(c.shuffle(0, 0, 0, 0)))
		s.tmp4 = tmp4.mul(two) // scaled by (_, a0, a0, a0)
		s.translate = true
	}
	return s
}

func (s sandwich312) apply(a f32x4) f32x4 {
	p := s.tmp1.mul(a.shuffle(0, 3, 1, 2))
	p = p.add(s.tmp2.mul(a.shuffle(0, 2, 3, 1)))
	p = p.add(s.tmp3.mul(a))
	if s.translate {
		p = p.add(s.tmp4.mul(a.shuffle(0, 0, 0, 0)))
	}
	return p
}

// sw312 conjugates the point partition a with the versor (b, c).
func sw312(a, b f32x4, c *f32x4) f32x4 {
	return newSandwich312(b, c).apply(a)
}

// swo12 conjugates the origin with the motor (b, c). The motor must be
// normalized.
func swo12(b, c f32x4) f32x4 {
	// (b0^2 + b1^2 + b2^2 + b3^2) e123 +
	// 2(b2 c3 - b1 c0 - b0 c1 - b3 c2) e032 +
	// 2(b3 c1 - b2 c0 - b0 c2 - b1 c3) e013 +
	// 2(b1 c2 - b3 c0 - b0 c3 - b2 c1) e021
	tmp := b.mul(c.shuffle(0, 0, 0, 0))
	tmp = tmp.add(b.shuffle(0, 0, 0, 0).mul(c))
	tmp = tmp.add(b.shuffle(0, 3, 1, 2).mul(c.shuffle(0, 2, 3, 1)))
	tmp = b.shuffle(0, 2, 3, 1).mul(c.shuffle(0, 3, 1, 2)).sub(tmp)
	tmp = tmp.mul(f32x4{0, 2, 2, 2})

	// The real norm is assumed to be one, so the low lane is set to unity.
	return tmp.add0(1)
}
