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

import "math"

// expBivector exponentiates the general bivector (a, b) into a motor. The
// bivector is most likely non-simple: neither purely real nor purely ideal, so
// exp(a + b) cannot be split into exp(a)exp(b) directly because a and b do not
// commute.
func expBivector(a, b f32x4) (p1, p2 f32x4) {
	// Decompose the bivector into the sum of two commuting bivectors by way
	// of its squared norm. A sign flip is introduced since the square of a
	// Euclidean line is negative:
	//
	// (a1^2 + a2^2 + a3^2) - 2(a1 b1 + a2 b2 + a3 b3) e0123
	a2 := hiDPBC(a, a)
	ab := hiDPBC(a, b)

	// e0123 squares to zero, so the square root has a closed form:
	//
	// sqrt(a1^2 + a2^2 + a3^2)
	//   - (a1 b1 + a2 b2 + a3 b3) / sqrt(a1^2 + a2^2 + a3^2) e0123
	//
	// (relabeling) = u + vI
	a2SqrtRcp := a2.rsqrtNR1()
	u := a2.mul(a2SqrtRcp)[0]
	// The sign flip is deferred to the assembly of p2 below.
	minusV := ab.mul(a2SqrtRcp)

	// The bivector scaled by the reciprocal norm is the normalized bivector n.
	// The real part also interacts with the pseudoscalar to produce a portion
	// of the normalized ideal part:
	// e12 e0123 = -e03, e31 e0123 = -e02, e23 e0123 = -e01
	// and these products commute.
	normReal := a.mul(a2SqrtRcp)
	normIdeal := b.mul(a2SqrtRcp)
	normIdeal = normIdeal.sub(a.mul(ab).mul(a2SqrtRcp).mul(a2.rcpNR1()))

	// n and n e0123 are perpendicular, so the exponential decomposes:
	//
	// e^(u n + v n e0123) = e^(u n) e^(v n e0123)
	//   = (cos u + sin u n)(1 + v n e0123)
	//   = cos u + sin u n + v n cos u e0123 - v sin u e0123
	//
	// using that n is normalized and squares to -1.
	sin64, cos64 := math.Sincos(float64(u))
	sin, cos := float32(sin64), float32(cos64)

	sinu := all(sin)
	p1 = set0(cos).add(sinu.mul(normReal))

	// The second partition has contributions from both parts.
	cosu := f32x4{0, cos, cos, cos}
	p2 = set0(minusV[0] * sin).add(sinu.mul(normIdeal)).add(minusV.mul(cosu).mul(normReal))
	return p1, p2
}

// logBivector computes the bivector logarithm of the motor (p1, p2), inverting
// expBivector.
func logBivector(p1, p2 f32x4) (q1, q2 f32x4) {
	// The exponential assembled the motor as
	//
	// (cos u - v sin u e0123) + (sin u + v cos u e0123) n
	//
	// with n the normalized bivector, so recovering the bivector norm lets us
	// match terms and deduce u and v.
	a := p1.zeroLow()
	b := p2.zeroLow()

	a2 := hiDPBC(a, a)
	ab := hiDPBC(a, b)
	a2SqrtRcp := a2.rsqrtNR1()
	s := a2.mul(a2SqrtRcp)[0]
	t := -ab.mul(a2SqrtRcp)[0]

	// p = cos u, q = -v sin u, s = sin u, t = v cos u
	p := p1[0]
	q := p2[0]

	var u, v float32
	if math.Abs(float64(p)) < 1e-6 {
		u = float32(math.Atan2(float64(-q), float64(t)))
		v = -q / s
	} else {
		u = float32(math.Atan2(float64(s), float64(p)))
		v = t / p
	}

	// (u + v e0123) n exponentiates back to the motor, so it is the logarithm.
	normReal := a.mul(a2SqrtRcp)
	normIdeal := b.mul(a2SqrtRcp)
	normIdeal = normIdeal.sub(a.mul(ab).mul(a2SqrtRcp).mul(a2.rcpNR1()))

	uvec := all(u)
	q1 = uvec.mul(normReal)
	q2 = uvec.mul(normIdeal).sub(all(v).mul(normReal))
	return q1, q2
}

// Exp exponentiates the line into a motor with this line as its axis. Most
// often the line was produced as the logarithm of an existing motor and then
// scaled to subdivide or accelerate its action. The line need not be a simple
// bivector.
func (l Line) Exp() Motor {
	p1, p2 := expBivector(l.p1, l.p2)
	return Motor{p1: p1, p2: p2}
}

// Log computes the logarithm of the motor: the line whose exponential
// reproduces it. The motor must be normalized.
func (m Motor) Log() Line {
	p1, p2 := logBivector(m.p1, m.p2)
	return Line{p1: p1, p2: p2}
}

// Sqrt computes the square root of the motor: the motor that applied twice
// reproduces it.
func (m Motor) Sqrt() Motor {
	m.p1 = m.p1.add0(1)
	return m.Normalized()
}

// Log returns the principal branch of the rotor's logarithm. Exponentiating
// the returned branch maps back to the rotor. Given cos(a) + sin(a)(x*e23 +
// y*e31 + z*e12) with x^2 + y^2 + z^2 = 1, the logarithm is a*(x*e23 + y*e31 +
// z*e12); the map requires the rotor to be normalized.
func (r Rotor) Log() Branch {
	ang := float32(math.Acos(float64(r.p1[0])))
	sin := all(float32(math.Sin(float64(ang))))

	p1 := r.p1.mul(sin.rcpNR1()).mul(all(ang))
	return Branch{p1: p1.zeroLow()}
}

// Sqrt computes the square root of the rotor.
func (r Rotor) Sqrt() Rotor {
	r.p1 = r.p1.add0(1)
	return r.Normalized()
}

// Exp exponentiates the branch to produce a rotor about it.
func (b Branch) Exp() Rotor {
	ang := hiDP(b.p1, b.p1).sqrtNR1()[0]
	sin64, cos64 := math.Sincos(float64(ang))

	p1 := all(float32(sin64) / ang).mul(b.p1).add0(float32(cos64))
	return Rotor{p1: p1}
}

// Sqrt computes the square root of the rotation the branch represents.
func (b Branch) Sqrt() Rotor {
	r := Rotor{p1: b.p1.add0(1)}
	return r.Normalized()
}

// Log computes the logarithm of the translator: its ideal line axis. In
// practice this is simply the ideal partition, without the scalar one.
func (t Translator) Log() IdealLine {
	return IdealLine{p2: t.p2}
}

// Sqrt computes the square root of the translator.
func (t Translator) Sqrt() Translator {
	return t.Scale(0.5)
}

// Exp exponentiates the ideal line to produce a translation: one plus the
// ideal line itself, since the ideal partition squares to zero.
func (l IdealLine) Exp() Translator {
	return Translator{p2: l.p2}
}
