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

package main

import (
	"regexp"
	"strings"
	"testing"
)

const (
	e0    = blade(0b0001)
	e1    = blade(0b0010)
	e2    = blade(0b0100)
	e3    = blade(0b1000)
	e12   = e1 | e2
	e23   = e2 | e3
	e13   = e1 | e3
	e123  = e1 | e2 | e3
	e0123 = e0 | e1 | e2 | e3
)

func TestMulBlades(t *testing.T) {
	cases := []struct {
		a, b     blade
		want     blade
		wantSign int
	}{
		{e1, e1, 0, 1},
		{e0, e0, 0, 0},
		{e1, e2, e12, 1},
		{e2, e1, e12, -1},
		{e12, e12, 0, -1},
		{e23, e13, e12, 1},
		{e123, e123, 0, -1},
		{e0123, e0123, 0, 0},
		{e0, e123, e0123, 1},
		{e123, e0, e0123, -1},
	}
	for _, tc := range cases {
		got, sign := mulBlades(tc.a, tc.b)
		if sign != tc.wantSign || (sign != 0 && got != tc.want) {
			t.Errorf("%v * %v = %+d %v, want %+d %v", tc.a, tc.b, sign, got, tc.wantSign, tc.want)
		}
	}
}

func TestBladeString(t *testing.T) {
	if got := blade(0).String(); got != "1" {
		t.Errorf("scalar blade = %q, want 1", got)
	}
	if got := (e0 | e1 | e3).String(); got != "e013" {
		t.Errorf("blade name = %q, want e013", got)
	}
	if got := bladeConst(0); got != "BladeScalar" {
		t.Errorf("bladeConst(0) = %q, want BladeScalar", got)
	}
	if got := bladeConst(e0123); got != "BladeE0123" {
		t.Errorf("bladeConst(e0123) = %q, want BladeE0123", got)
	}
}

func TestReverseSign(t *testing.T) {
	for _, tc := range []struct {
		b    blade
		want int
	}{
		{0, 1}, {e1, 1}, {e12, -1}, {e123, -1}, {e0123, 1},
	} {
		if got := tc.b.reverseSign(); got != tc.want {
			t.Errorf("reverseSign(%v) = %d, want %d", tc.b, got, tc.want)
		}
	}
}

func TestVerifyCleanTable(t *testing.T) {
	if faults := verifyTable(cayley()); len(faults) != 0 {
		t.Fatalf("table violates algebra laws: %v", faults)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	table := cayley()
	table[1][2].sign = -table[1][2].sign
	if faults := verifyTable(table); len(faults) == 0 {
		t.Fatalf("corrupted table passed verification")
	}
}

func TestEmitGo(t *testing.T) {
	src, err := emitGo(cayley(), "cayley")
	if err != nil {
		t.Fatalf("emitGo: %v", err)
	}
	for _, want := range []string{
		"package cayley",
		"var Products = [16][16]int8{",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
	// The formatter column-aligns the const block, so match the declarations
	// with flexible interior whitespace.
	for _, want := range []string{
		`BladeScalar\s+Blade = 0`,
		`BladeE0123\s+Blade = 15`,
	} {
		if !regexp.MustCompile(want).Match(src) {
			t.Errorf("generated source missing declaration %q", want)
		}
	}
}

func TestEmitMarkdown(t *testing.T) {
	md := string(emitMarkdown(cayley()))
	lines := strings.Split(strings.TrimSpace(md), "\n")
	if len(lines) != numBlades+2 {
		t.Fatalf("markdown has %d lines, want %d", len(lines), numBlades+2)
	}
	if !strings.Contains(md, "| 1 |") {
		t.Errorf("markdown missing scalar header")
	}
}
