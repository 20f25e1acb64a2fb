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

func TestShuffle(t *testing.T) {
	a := f32x4{1, 2, 3, 4}
	if got := a.shuffle(0, 1, 2, 3); got != a {
		t.Errorf("identity shuffle = %v, want %v", got, a)
	}
	if got, want := a.shuffle(3, 2, 1, 0), (f32x4{4, 3, 2, 1}); got != want {
		t.Errorf("reverse shuffle = %v, want %v", got, want)
	}
	if got, want := a.shuffle(0, 0, 0, 0), all(float32(1)); got != want {
		t.Errorf("broadcast shuffle = %v, want %v", got, want)
	}
}

func TestSignManipulation(t *testing.T) {
	a := f32x4{1, -2, 3, -4}
	if got, want := a.negLow(), (f32x4{-1, -2, 3, -4}); got != want {
		t.Errorf("negLow = %v, want %v", got, want)
	}
	if got, want := a.negHigh(), (f32x4{1, 2, -3, 4}); got != want {
		t.Errorf("negHigh = %v, want %v", got, want)
	}
	if got, want := a.negAll(), (f32x4{-1, 2, -3, 4}); got != want {
		t.Errorf("negAll = %v, want %v", got, want)
	}
	if got, want := a.zeroLow(), (f32x4{0, -2, 3, -4}); got != want {
		t.Errorf("zeroLow = %v, want %v", got, want)
	}

	// xor with a negative-zero mask must flip signed zeros too.
	z := f32x4{0, 0, 0, 0}
	mask := f32x4{float32(math.Copysign(0, -1)), 0, 0, 0}
	got := z.xor(mask)
	if !math.Signbit(float64(got[0])) {
		t.Errorf("xor did not negate the zero in the low lane")
	}
}

func TestDotProducts(t *testing.T) {
	a := f32x4{1, 2, 3, 4}
	b := f32x4{5, 6, 7, 8}

	if got, want := hiDPSS(a, b), float32(2*6+3*7+4*8); got != want {
		t.Errorf("hiDPSS = %v, want %v", got, want)
	}
	if got, want := hiDP(a, b), set0(65); got != want {
		t.Errorf("hiDP = %v, want %v", got, want)
	}
	if got, want := hiDPBC(a, b), all(float32(65)); got != want {
		t.Errorf("hiDPBC = %v, want %v", got, want)
	}
	if got, want := dp(a, b), set0(70); got != want {
		t.Errorf("dp = %v, want %v", got, want)
	}
	if got, want := dpBC(a, b), all(float32(70)); got != want {
		t.Errorf("dpBC = %v, want %v", got, want)
	}
}

func TestRefinedReciprocals(t *testing.T) {
	a := f32x4{1, 2, 4, 8}
	rcp := a.rcpNR1()
	want := f32x4{1, 0.5, 0.25, 0.125}
	if rcp != want {
		t.Errorf("rcpNR1 = %v, want %v", rcp, want)
	}

	rsqrt := (f32x4{1, 4, 16, 64}).rsqrtNR1()
	wantRsqrt := f32x4{1, 0.5, 0.25, 0.125}
	for i := range rsqrt {
		d := float64(rsqrt[i] - wantRsqrt[i])
		if math.Abs(d) > 1e-7 {
			t.Errorf("rsqrtNR1[%d] = %v, want %v", i, rsqrt[i], wantRsqrt[i])
		}
	}

	sqrt := (f32x4{1, 4, 9, 100}).sqrtNR1()
	wantSqrt := f32x4{1, 2, 3, 10}
	for i := range sqrt {
		d := float64(sqrt[i] - wantSqrt[i])
		if math.Abs(d) > 1e-5 {
			t.Errorf("sqrtNR1[%d] = %v, want %v", i, sqrt[i], wantSqrt[i])
		}
	}
}

func TestReciprocalPropagatesInf(t *testing.T) {
	rcp := (f32x4{0, 1, 1, 1}).rcpNR1()
	if !math.IsInf(float64(rcp[0]), 0) && !math.IsNaN(float64(rcp[0])) {
		t.Errorf("rcpNR1 of zero = %v, want Inf or NaN", rcp[0])
	}
}

func TestApproxEqualRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := f32x4{nan, 0, 0, 0}
	if a.approxEqual(a, 1e-6) {
		t.Errorf("approxEqual must fail on NaN lanes")
	}
}
