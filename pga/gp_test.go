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

import "testing"

func checkEq(t *testing.T, name string, got, want float32) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func checkNear(t *testing.T, name string, got, want, eps float32) {
	t.Helper()
	d := got - want
	if d > eps || d < -eps || d != d {
		t.Errorf("%s = %v, want %v (eps %v)", name, got, want, eps)
	}
}

func TestPlaneMulPlane(t *testing.T) {
	p1 := NewPlane(1, 2, 3, 4)
	p2 := NewPlane(2, 3, -1, -2)
	m := p1.Mul(p2)
	checkEq(t, "Scalar", m.Scalar(), 5)
	checkEq(t, "E12", m.E12(), -1)
	checkEq(t, "E31", m.E31(), 7)
	checkEq(t, "E23", m.E23(), -11)
	checkEq(t, "E01", m.E01(), 10)
	checkEq(t, "E02", m.E02(), 16)
	checkEq(t, "E03", m.E03(), 2)
	checkEq(t, "E0123", m.E0123(), 0)

	// The square root of the normalized product conjugates p2 onto p1; the
	// square root is only defined on normalized motors.
	p3 := p1.Mul(p2).Normalized().Sqrt().ApplyToPlane(p2)
	if !p3.ApproxEqual(p1, 0.001) {
		t.Errorf("sqrt(p1*p2) applied to p2 = %v, want %v", p3.Array(), p1.Array())
	}

	n := p1.Normalized()
	checkNear(t, "normalized p*p Scalar", n.Mul(n).Scalar(), 1, 1e-6)
}

func TestPlaneDivPlane(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	m := p.Div(p)
	checkNear(t, "Scalar", m.Scalar(), 1, 1e-6)
	checkEq(t, "E12", m.E12(), 0)
	checkEq(t, "E31", m.E31(), 0)
	checkEq(t, "E23", m.E23(), 0)
	checkEq(t, "E01", m.E01(), 0)
	checkEq(t, "E02", m.E02(), 0)
	checkEq(t, "E03", m.E03(), 0)
	checkEq(t, "E0123", m.E0123(), 0)
}

func TestPlaneMulPoint(t *testing.T) {
	p1 := NewPlane(1, 2, 3, 4)
	p2 := NewPoint(-2, 1, 4)
	m := p1.MulPoint(p2)
	checkEq(t, "Scalar", m.Scalar(), 0)
	checkEq(t, "E01", m.E01(), -5)
	checkEq(t, "E02", m.E02(), 10)
	checkEq(t, "E03", m.E03(), -5)
	checkEq(t, "E12", m.E12(), 3)
	checkEq(t, "E31", m.E31(), 2)
	checkEq(t, "E23", m.E23(), 1)
	checkEq(t, "E0123", m.E0123(), 16)
}

func TestPointMulPlane(t *testing.T) {
	p1 := NewPoint(-2, 1, 4)
	p2 := NewPlane(1, 2, 3, 4)
	m := p1.MulPlane(p2)
	checkEq(t, "Scalar", m.Scalar(), 0)
	checkEq(t, "E01", m.E01(), -5)
	checkEq(t, "E02", m.E02(), 10)
	checkEq(t, "E03", m.E03(), -5)
	checkEq(t, "E12", m.E12(), 3)
	checkEq(t, "E31", m.E31(), 2)
	checkEq(t, "E23", m.E23(), 1)
	checkEq(t, "E0123", m.E0123(), -16)
}

func TestLineNormalization(t *testing.T) {
	l := NewLine(1, 2, 3, 3, 2, 1).Normalized()
	m := l.Mul(l.Reversed())
	checkNear(t, "Scalar", m.Scalar(), 1, 1e-6)
	checkNear(t, "E23", m.E23(), 0, 1e-6)
	checkNear(t, "E31", m.E31(), 0, 1e-6)
	checkNear(t, "E12", m.E12(), 0, 1e-6)
	checkNear(t, "E01", m.E01(), 0, 1e-6)
	checkNear(t, "E02", m.E02(), 0, 1e-6)
	checkNear(t, "E03", m.E03(), 0, 1e-6)
	checkNear(t, "E0123", m.E0123(), 0, 1e-6)
}

func TestBranchMulBranch(t *testing.T) {
	b1 := NewBranch(2, 1, 3)
	b2 := NewBranch(1, -2, -3)
	r := b2.Mul(b1)
	checkEq(t, "Scalar", r.Scalar(), 9)
	checkEq(t, "E23", r.E23(), 3)
	checkEq(t, "E31", r.E31(), 9)
	checkEq(t, "E12", r.E12(), -5)
}

func TestBranchDivBranch(t *testing.T) {
	b := NewBranch(2, 1, 3)
	r := b.Div(b)
	checkNear(t, "Scalar", r.Scalar(), 1, 1e-6)
	checkNear(t, "E23", r.E23(), 0, 1e-6)
	checkNear(t, "E31", r.E31(), 0, 1e-6)
	checkNear(t, "E12", r.E12(), 0, 1e-6)
}

func TestLineMulLine(t *testing.T) {
	l1 := NewLine(1, 0, 0, 3, 2, 1)
	l2 := NewLine(0, 1, 0, 4, 1, -2)
	m := l1.Mul(l2)
	checkEq(t, "Scalar", m.Scalar(), -12)
	checkEq(t, "E12", m.E12(), 5)
	checkEq(t, "E31", m.E31(), -10)
	checkEq(t, "E23", m.E23(), 5)
	checkEq(t, "E01", m.E01(), 1)
	checkEq(t, "E02", m.E02(), -2)
	checkEq(t, "E03", m.E03(), -4)
	checkEq(t, "E0123", m.E0123(), 6)

	// The square root of the product takes the second line to the negation of
	// the first.
	n1 := l1.Normalized()
	n2 := l2.Normalized()
	l3 := n1.Mul(n2).Sqrt().ApplyToLine(n2)
	if !l3.ApproxEqual(n1.Neg(), 0.001) {
		t.Errorf("sqrt(l1*l2) applied to l2 does not reproduce -l1")
	}
}

func TestLineDivLine(t *testing.T) {
	l := NewLine(1, -2, 2, -3, 3, -4)
	m := l.Div(l)
	checkNear(t, "Scalar", m.Scalar(), 1, 1e-6)
	checkNear(t, "E12", m.E12(), 0, 1e-6)
	checkNear(t, "E31", m.E31(), 0, 1e-6)
	checkNear(t, "E23", m.E23(), 0, 1e-6)
	checkNear(t, "E01", m.E01(), 0, 1e-6)
	checkNear(t, "E02", m.E02(), 0, 1e-6)
	checkNear(t, "E03", m.E03(), 0, 1e-6)
	checkNear(t, "E0123", m.E0123(), 0, 1e-6)
}

func TestPointMulPoint(t *testing.T) {
	p1 := NewPoint(1, 2, 3)
	p2 := NewPoint(-2, 1, 4)
	tr := p1.Mul(p2)
	checkEq(t, "E01", tr.E01(), -3)
	checkEq(t, "E02", tr.E02(), -1)
	checkEq(t, "E03", tr.E03(), 1)

	// The square root of the product displaces p2 onto p1.
	p3 := tr.Sqrt().ApplyToPoint(p2)
	checkEq(t, "X", p3.X(), 1)
	checkEq(t, "Y", p3.Y(), 2)
	checkEq(t, "Z", p3.Z(), 3)
}

func TestPointDivPoint(t *testing.T) {
	p := NewPoint(1, 2, 3)
	tr := p.Div(p)
	checkEq(t, "E01", tr.E01(), 0)
	checkEq(t, "E02", tr.E02(), 0)
	checkEq(t, "E03", tr.E03(), 0)
}

func TestTranslatorDivTranslator(t *testing.T) {
	t1 := NewTranslator(3, 1, -2, 3)
	t2 := t1.Div(t1)
	checkEq(t, "E01", t2.E01(), 0)
	checkEq(t, "E02", t2.E02(), 0)
	checkEq(t, "E03", t2.E03(), 0)
}

func TestRotorMulTranslator(t *testing.T) {
	r := RotorFromArray([4]float32{1, 0, 0, 1})
	tr := TranslatorFromArray([4]float32{0, 0, 0, 1})
	m := r.MulTranslator(tr)
	checkEq(t, "Scalar", m.Scalar(), 1)
	checkEq(t, "E01", m.E01(), 0)
	checkEq(t, "E02", m.E02(), 0)
	checkEq(t, "E03", m.E03(), 1)
	checkEq(t, "E23", m.E23(), 0)
	checkEq(t, "E31", m.E31(), 0)
	checkEq(t, "E12", m.E12(), 1)
	checkEq(t, "E0123", m.E0123(), 1)
}

func TestTranslatorMulRotor(t *testing.T) {
	r := RotorFromArray([4]float32{1, 0, 0, 1})
	tr := TranslatorFromArray([4]float32{0, 0, 0, 1})
	m := tr.MulRotor(r)
	checkEq(t, "Scalar", m.Scalar(), 1)
	checkEq(t, "E01", m.E01(), 0)
	checkEq(t, "E02", m.E02(), 0)
	checkEq(t, "E03", m.E03(), 1)
	checkEq(t, "E23", m.E23(), 0)
	checkEq(t, "E31", m.E31(), 0)
	checkEq(t, "E12", m.E12(), 1)
	checkEq(t, "E0123", m.E0123(), 1)
}

// The mixed rotor/translator/motor products agree under reassociation. All
// operands are small integers, so every product is exact and the motors must
// match bitwise.
func TestMotorCompositionAssociativity(t *testing.T) {
	r1 := RotorFromArray([4]float32{4, 3, 2, 1})
	r2 := RotorFromArray([4]float32{1, -3, 2, -4})
	t1 := TranslatorFromArray([4]float32{-3, 1, -2, 3})
	t2 := TranslatorFromArray([4]float32{1, -3, 2, -4})

	if m1, m2 := t1.MulRotor(r1).MulRotor(r2), t1.MulMotor(MotorFromRotor(r1.Mul(r2))); !m1.Equal(m2) {
		t.Errorf("(t*r1)*r2 != t*(r1*r2)")
	}
	if m1, m2 := r2.MulMotor(r1.MulTranslator(t1)), r2.Mul(r1).MulTranslator(t1); !m1.Equal(m2) {
		t.Errorf("r2*(r1*t) != (r2*r1)*t")
	}
	if m1, m2 := r1.MulTranslator(t1).MulTranslator(t2), r1.MulTranslator(t1.Mul(t2)); !m1.Equal(m2) {
		t.Errorf("(r*t1)*t2 != r*(t1*t2)")
	}
	if m1, m2 := t2.MulMotor(r1.MulTranslator(t1)), t2.MulRotor(r1).MulTranslator(t1); !m1.Equal(m2) {
		t.Errorf("t2*(r*t1) != (t2*r)*t1")
	}
}

func TestMotorMulMotor(t *testing.T) {
	m1 := NewMotor(2, 3, 4, 5, 6, 7, 8, 9)
	m2 := NewMotor(6, 7, 8, 9, 10, 11, 12, 13)
	mul := m1.Mul(m2)
	checkEq(t, "Scalar", mul.Scalar(), -86)
	checkEq(t, "E23", mul.E23(), 36)
	checkEq(t, "E31", mul.E31(), 32)
	checkEq(t, "E12", mul.E12(), 52)
	checkEq(t, "E01", mul.E01(), -38)
	checkEq(t, "E02", mul.E02(), -76)
	checkEq(t, "E03", mul.E03(), -66)
	checkEq(t, "E0123", mul.E0123(), 384)

	div := m1.Div(m1)
	checkNear(t, "Scalar", div.Scalar(), 1, 1e-6)
	checkNear(t, "E23", div.E23(), 0, 1e-6)
	checkNear(t, "E31", div.E31(), 0, 1e-6)
	checkNear(t, "E12", div.E12(), 0, 1e-6)
	checkNear(t, "E01", div.E01(), 0, 1e-5)
	checkNear(t, "E02", div.E02(), 0, 1e-5)
	checkNear(t, "E03", div.E03(), 0, 1e-5)
	checkNear(t, "E0123", div.E0123(), 0, 1e-5)
}
