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
	"fmt"
	"math/bits"
	"strings"
)

// blade is a basis blade of Cl(3,0,1) encoded as a bitmask: bit i set means
// the blade contains the basis vector e_i. e0 is the degenerate direction
// (e0 * e0 = 0); e1, e2, e3 square to +1.
type blade uint8

const numBlades = 16

// grade returns the number of basis vectors in the blade.
func (b blade) grade() int {
	return bits.OnesCount8(uint8(b))
}

// String renders the blade in canonical ascending-index form, e.g. e013 for
// e0 ^ e1 ^ e3. The empty blade is the scalar unit.
func (b blade) String() string {
	if b == 0 {
		return "1"
	}
	var sb strings.Builder
	sb.WriteByte('e')
	for i := 0; i < 4; i++ {
		if b&(1<<i) != 0 {
			fmt.Fprintf(&sb, "%d", i)
		}
	}
	return sb.String()
}

// ident renders the blade as a Go identifier suffix: "Scalar" for the empty
// blade, otherwise the canonical name ready for title-casing.
func (b blade) ident() string {
	if b == 0 {
		return "scalar"
	}
	return b.String()
}

// reorderSign counts the transpositions needed to merge the factors of a and
// b into ascending order and returns the resulting sign.
func reorderSign(a, b blade) int {
	swaps := 0
	ua := uint8(a) >> 1
	for ua != 0 {
		swaps += bits.OnesCount8(ua & uint8(b))
		ua >>= 1
	}
	if swaps&1 == 0 {
		return 1
	}
	return -1
}

// mulBlades multiplies two basis blades under the (3,0,1) metric. The sign is
// -1, 0, or 1; a zero sign means the product is annihilated by the degenerate
// direction.
func mulBlades(a, b blade) (blade, int) {
	if a&b&1 != 0 {
		return 0, 0
	}
	return a ^ b, reorderSign(a, b)
}

// reverseSign is the sign the blade picks up under reversion, (-1)^(k(k-1)/2)
// for grade k.
func (b blade) reverseSign() int {
	k := b.grade()
	if (k*(k-1)/2)&1 == 0 {
		return 1
	}
	return -1
}

// cayley builds the full 16x16 multiplication table. Entry [a][b] is the
// signed product of blades a and b, with sign 0 marking an annihilated
// product.
type product struct {
	sign int
	b    blade
}

func cayley() [numBlades][numBlades]product {
	var table [numBlades][numBlades]product
	for a := blade(0); a < numBlades; a++ {
		for b := blade(0); b < numBlades; b++ {
			r, sign := mulBlades(a, b)
			table[a][b] = product{sign: sign, b: r}
		}
	}
	return table
}

// verifyTable checks the algebraic laws every Cl(3,0,1) table must satisfy
// and returns a description of each violation found.
func verifyTable(table [numBlades][numBlades]product) []string {
	var faults []string

	// The scalar unit is a two-sided identity.
	for a := blade(0); a < numBlades; a++ {
		if p := table[0][a]; p.sign != 1 || p.b != a {
			faults = append(faults, fmt.Sprintf("1 * %v = %+d %v, want %v", a, p.sign, p.b, a))
		}
		if p := table[a][0]; p.sign != 1 || p.b != a {
			faults = append(faults, fmt.Sprintf("%v * 1 = %+d %v, want %v", a, p.sign, p.b, a))
		}
	}

	// Blades containing the degenerate direction square to zero; the rest
	// square to +1 or -1 depending on grade.
	for a := blade(0); a < numBlades; a++ {
		p := table[a][a]
		if a&1 != 0 {
			if p.sign != 0 {
				faults = append(faults, fmt.Sprintf("%v^2 = %+d %v, want 0", a, p.sign, p.b))
			}
			continue
		}
		if p.b != 0 || p.sign == 0 {
			faults = append(faults, fmt.Sprintf("%v^2 = %+d %v, want a scalar", a, p.sign, p.b))
		}
	}

	// Associativity over every triple.
	for a := blade(0); a < numBlades; a++ {
		for b := blade(0); b < numBlades; b++ {
			for c := blade(0); c < numBlades; c++ {
				ab := table[a][b]
				left := table[ab.b][c]
				left.sign *= ab.sign
				bc := table[b][c]
				right := table[a][bc.b]
				right.sign *= bc.sign
				if left.sign != right.sign || (left.sign != 0 && left.b != right.b) {
					faults = append(faults, fmt.Sprintf(
						"(%v %v) %v = %+d %v but %v (%v %v) = %+d %v",
						a, b, c, left.sign, left.b, a, b, c, right.sign, right.b))
				}
			}
		}
	}

	// Reversion is an anti-automorphism: rev(a b) = rev(b) rev(a).
	for a := blade(0); a < numBlades; a++ {
		for b := blade(0); b < numBlades; b++ {
			ab := table[a][b]
			wantSign := ab.sign * ab.b.reverseSign()
			ba := table[b][a]
			gotSign := ba.sign * a.reverseSign() * b.reverseSign()
			if wantSign != gotSign || (wantSign != 0 && ab.b != ba.b) {
				faults = append(faults, fmt.Sprintf(
					"rev(%v %v) != rev(%v) rev(%v)", a, b, b, a))
			}
		}
	}

	return faults
}
