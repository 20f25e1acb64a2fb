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

import (
	"math"
	"testing"
)

const halfPi = float32(math.Pi / 2)

func TestSw02(t *testing.T) {
	a := f32x4{1, 2, 3, 4}
	b := f32x4{-4, -3, -2, -1}
	ab := sw02(a, b)
	want := f32x4{9, 2, 3, 4}
	if ab != want {
		t.Errorf("sw02 = %v, want %v", ab, want)
	}
}

func TestPlaneReflectPlane(t *testing.T) {
	p1 := NewPlane(3, 2, 1, -1)
	p2 := NewPlane(1, 2, -1, -3)
	p3 := p1.ApplyToPlane(p2)
	checkEq(t, "D", p3.D(), 30)
	checkEq(t, "A", p3.A(), 22)
	checkEq(t, "B", p3.B(), -4)
	checkEq(t, "C", p3.C(), 26)
}

func TestPlaneReflectLine(t *testing.T) {
	p := NewPlane(3, 2, 1, -1)
	l1 := NewLine(1, -2, 3, 6, 5, -4)
	l2 := p.ApplyToLine(l1)
	checkEq(t, "E01", l2.E01(), 28)
	checkEq(t, "E02", l2.E02(), -72)
	checkEq(t, "E03", l2.E03(), 32)
	checkEq(t, "E12", l2.E12(), 104)
	checkEq(t, "E31", l2.E31(), 26)
	checkEq(t, "E23", l2.E23(), 60)
}

func TestPlaneReflectPoint(t *testing.T) {
	p1 := NewPlane(3, 2, 1, -1)
	p2 := NewPoint(4, -2, -1)
	p3 := p1.ApplyToPoint(p2)
	checkEq(t, "X", p3.X(), 20)
	checkEq(t, "Y", p3.Y(), -52)
	checkEq(t, "Z", p3.Z(), -26)
	checkEq(t, "W", p3.W(), 14)
}

func TestRotorLine(t *testing.T) {
	// An unnormalized rotor exercises the quadratic terms of the kernel.
	r := RotorFromArray([4]float32{1, 4, -3, 2})
	l1 := NewLine(-1, 2, -3, -6, 5, 4)
	l2 := r.ApplyToLine(l1)
	checkEq(t, "E01", l2.E01(), -110)
	checkEq(t, "E02", l2.E02(), 20)
	checkEq(t, "E03", l2.E03(), 10)
	checkEq(t, "E12", l2.E12(), -240)
	checkEq(t, "E31", l2.E31(), 102)
	checkEq(t, "E23", l2.E23(), -36)
}

func TestRotorPoint(t *testing.T) {
	r := NewRotor(halfPi, 0, 0, 1)
	p1 := NewPoint(1, 0, 0)
	p2 := r.ApplyToPoint(p1)
	checkEq(t, "X", p2.X(), 0)
	checkNear(t, "Y", p2.Y(), 1, 1e-6)
	checkEq(t, "Z", p2.Z(), 0)
}

func TestTranslatorPoint(t *testing.T) {
	tr := NewTranslator(1, 0, 0, 1)
	p1 := NewPoint(1, 0, 0)
	p2 := tr.ApplyToPoint(p1)
	checkEq(t, "X", p2.X(), 1)
	checkEq(t, "Y", p2.Y(), 0)
	checkEq(t, "Z", p2.Z(), 1)
}

func TestTranslatorLine(t *testing.T) {
	tr := TranslatorFromArray([4]float32{0, -5, -2, 2})
	l1 := NewLine(-1, 2, -3, -6, 5, 4)
	l2 := tr.ApplyToLine(l1)
	checkEq(t, "E01", l2.E01(), 35)
	checkEq(t, "E02", l2.E02(), -14)
	checkEq(t, "E03", l2.E03(), 71)
	checkEq(t, "E12", l2.E12(), 4)
	checkEq(t, "E31", l2.E31(), 5)
	checkEq(t, "E23", l2.E23(), -6)
}

func TestConstructMotor(t *testing.T) {
	r := NewRotor(halfPi, 0, 0, 1)
	tr := NewTranslator(1, 0, 0, 1)
	m := r.MulTranslator(tr)
	p1 := NewPoint(1, 0, 0)
	p2 := m.ApplyToPoint(p1)
	checkEq(t, "X", p2.X(), 0)
	checkNear(t, "Y", p2.Y(), 1, 1e-6)
	checkNear(t, "Z", p2.Z(), 1, 1e-6)

	// Rotation and translation about the same axis commute.
	m = tr.MulRotor(r)
	p2 = m.ApplyToPoint(p1)
	checkEq(t, "X", p2.X(), 0)
	checkNear(t, "Y", p2.Y(), 1, 1e-6)
	checkNear(t, "Z", p2.Z(), 1, 1e-6)

	l := m.Log()
	checkEq(t, "E23", l.E23(), 0)
	checkEq(t, "E31", l.E31(), 0)
	checkNear(t, "E12", l.E12(), -0.7854, 1e-3)
	checkEq(t, "E01", l.E01(), 0)
	checkEq(t, "E02", l.E02(), 0)
	checkNear(t, "E03", l.E03(), -0.5, 1e-3)
}

func TestConstructMotorViaScrewAxis(t *testing.T) {
	axis := NewLine(0, 0, 0, 0, 0, 1)
	m := NewMotorFromScrew(halfPi, 1, axis)
	p1 := NewPoint(1, 0, 0)
	p2 := m.ApplyToPoint(p1)
	checkNear(t, "X", p2.X(), 0, 1e-5)
	checkNear(t, "Y", p2.Y(), 1, 1e-5)
	checkNear(t, "Z", p2.Z(), 1, 1e-5)
}

func TestMotorPlane(t *testing.T) {
	m := NewMotor(1, 4, 3, 2, 5, 6, 7, 8)
	p1 := NewPlane(3, 2, 1, -1)
	p2 := m.ApplyToPlane(p1)
	checkEq(t, "A", p2.A(), 78)
	checkEq(t, "B", p2.B(), 60)
	checkEq(t, "C", p2.C(), 54)
	checkEq(t, "D", p2.D(), 358)
}

func TestMotorPlaneSlice(t *testing.T) {
	m := NewMotor(1, 4, 3, 2, 5, 6, 7, 8)
	src := []Plane{NewPlane(3, 2, 1, -1), NewPlane(3, 2, 1, -1)}
	dst := make([]Plane, len(src))
	m.ApplyToPlanes(dst, src)
	for i := range dst {
		if want := m.ApplyToPlane(src[i]); !dst[i].Equal(want) {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i].Array(), want.Array())
		}
	}
}

func TestMotorPoint(t *testing.T) {
	m := NewMotor(1, 4, 3, 2, 5, 6, 7, 8)
	p1 := NewPoint(-1, 1, 2)
	p2 := m.ApplyToPoint(p1)
	checkEq(t, "X", p2.X(), -12)
	checkEq(t, "Y", p2.Y(), -86)
	checkEq(t, "Z", p2.Z(), -86)
	checkEq(t, "W", p2.W(), 30)
}

func TestMotorPointSlice(t *testing.T) {
	m := NewMotor(1, 4, 3, 2, 5, 6, 7, 8)
	src := []Point{NewPoint(-1, 1, 2), NewPoint(-1, 1, 2)}
	dst := make([]Point, len(src))
	m.ApplyToPoints(dst, src)
	for i := range dst {
		if want := m.ApplyToPoint(src[i]); !dst[i].Equal(want) {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i].Array(), want.Array())
		}
	}
}

func TestMotorLine(t *testing.T) {
	m := NewMotor(2, 4, 3, -1, -5, -2, 2, -3)
	l1 := NewLine(-1, 2, -3, -6, 5, 4)
	l2 := m.ApplyToLine(l1)
	checkEq(t, "E01", l2.E01(), 6)
	checkEq(t, "E02", l2.E02(), 522)
	checkEq(t, "E03", l2.E03(), 96)
	checkEq(t, "E12", l2.E12(), -214)
	checkEq(t, "E31", l2.E31(), -148)
	checkEq(t, "E23", l2.E23(), -40)
}

func TestMotorLineSlice(t *testing.T) {
	m := NewMotor(2, 4, 3, -1, -5, -2, 2, -3)
	src := []Line{NewLine(-1, 2, -3, -6, 5, 4), NewLine(-1, 2, -3, -6, 5, 4)}
	dst := make([]Line, len(src))
	m.ApplyToLines(dst, src)
	for i := range dst {
		if want := m.ApplyToLine(src[i]); !dst[i].Equal(want) {
			t.Errorf("dst[%d] does not match the single-element form", i)
		}
	}
}

func TestMotorOrigin(t *testing.T) {
	r := NewRotor(halfPi, 0, 0, 1)
	tr := NewTranslator(1, 0, 0, 1)
	m := r.MulTranslator(tr)
	p := m.ApplyToOrigin()
	checkEq(t, "X", p.X(), 0)
	checkEq(t, "Y", p.Y(), 0)
	checkNear(t, "Z", p.Z(), 1, 1e-6)

	// The dedicated kernel agrees with the general point application.
	q := m.ApplyToPoint(Origin())
	if !p.ApproxEqual(q, 1e-6) {
		t.Errorf("origin kernel = %v, general kernel = %v", p.Array(), q.Array())
	}
}

func TestNormalizeMotor(t *testing.T) {
	m := NewMotor(1, 4, 3, 2, 5, 6, 7, 8).Normalized()
	norm := m.Mul(m.Reversed())
	checkNear(t, "Scalar", norm.Scalar(), 1, 1e-5)
	checkNear(t, "E0123", norm.E0123(), 0, 1e-5)
}

func TestMotorSqrt(t *testing.T) {
	axis := NewLine(3, 1, 2, 4, -2, 1).Normalized()
	m := NewMotorFromScrew(halfPi, 3, axis)
	m2 := m.Sqrt()
	m2 = m2.Mul(m2)
	if !m.ApproxEqual(m2, 1e-4) {
		t.Errorf("sqrt(m)^2 does not reproduce m")
	}
}

func TestRotorSqrtAxisAngle(t *testing.T) {
	r := NewRotor(halfPi, 1, 2, 3)
	r2 := r.Sqrt()
	r2 = r2.Mul(r2)
	if !r2.ApproxEqual(r, 1e-5) {
		t.Errorf("sqrt(r)^2 = %v, want %v", r2.Array(), r.Array())
	}
}

func TestNormalizeRotor(t *testing.T) {
	r := RotorFromArray([4]float32{28, 3, -3, 4}).Normalized()
	norm := r.Mul(r.Reversed())
	checkNear(t, "Scalar", norm.Scalar(), 1, 1e-5)
	checkNear(t, "E23", norm.E23(), 0, 1e-5)
	checkNear(t, "E31", norm.E31(), 0, 1e-5)
	checkNear(t, "E12", norm.E12(), 0, 1e-5)
}
