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

func TestRotorExpLog(t *testing.T) {
	r := NewRotor(halfPi, 0.3, -3, 1)
	b := r.Log()
	r2 := b.Exp()
	if !r2.ApproxEqual(r, 1e-5) {
		t.Errorf("exp(log(r)) = %v, want %v", r2.Array(), r.Array())
	}
}

func TestRotorSqrt(t *testing.T) {
	r1 := NewRotor(halfPi, 0.3, -3, 1)
	r2 := r1.Sqrt()
	r3 := r2.Mul(r2)
	if !r3.ApproxEqual(r1, 1e-5) {
		t.Errorf("sqrt(r)^2 = %v, want %v", r3.Array(), r1.Array())
	}
}

func TestBranchExpLog(t *testing.T) {
	b := NewBranch(1, -2, 0.5)
	r := b.Exp()
	b2 := r.Log()
	if !b2.ApproxEqual(b, 1e-5) {
		t.Errorf("log(exp(b)) = %v, want %v", b2, b)
	}
}

func TestTranslatorExpLog(t *testing.T) {
	tr := NewTranslator(4, 1, -2, 2)
	l := tr.Log()
	tr2 := l.Exp()
	if !tr2.Equal(tr) {
		t.Errorf("exp(log(t)) != t")
	}
	if half := tr.Sqrt().Mul(tr.Sqrt()); !half.Equal(tr) {
		t.Errorf("sqrt(t)^2 != t")
	}
}

func TestMotorExpLogSqrt(t *testing.T) {
	r := NewRotor(halfPi, 0.3, -3, 1)
	tr := NewTranslator(12, -2, 0.4, 1)
	m1 := r.MulTranslator(tr)

	l := m1.Log()
	m2 := l.Exp()
	if !m2.ApproxEqual(m1, 1e-4) {
		t.Errorf("exp(log(m)) does not reproduce m")
	}

	m3 := m1.Sqrt().Mul(m1.Sqrt())
	if !m3.ApproxEqual(m1, 1e-4) {
		t.Errorf("sqrt(m)^2 does not reproduce m")
	}
}

// Dividing the logarithm and re-exponentiating subdivides the motor action
// into equal steps.
func TestMotorSlerp(t *testing.T) {
	r := NewRotor(halfPi, 0.3, -3, 1)
	tr := NewTranslator(12, -2, 0.4, 1)
	m1 := r.MulTranslator(tr)

	step := m1.Log().Scale(1.0 / 3.0).Exp()
	m2 := step.Mul(step).Mul(step)
	if !m2.ApproxEqual(m1, 1e-4) {
		t.Errorf("three equal steps do not reproduce m")
	}
}

func TestMotorBlend(t *testing.T) {
	m1 := NewRotor(halfPi, 0, 0, 1).MulTranslator(NewTranslator(1, 0, 0, 1))
	m2 := NewRotor(halfPi, 0.3, -3, 1).MulTranslator(NewTranslator(12, -2, 0.4, 1))

	motion := m2.Mul(m1.Reversed())
	step := motion.Log().Scale(0.25).Exp()

	// Four quarter steps applied to m1 land on m2.
	result := step.Mul(step).Mul(step).Mul(step).Mul(m1)
	if !result.ApproxEqual(m2, 1e-3) {
		t.Errorf("blended motor does not reach the target")
	}
}
