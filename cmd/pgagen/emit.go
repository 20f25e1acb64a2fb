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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

var titler = cases.Title(language.English)

// bladeConst returns the Go constant name for a blade, e.g. BladeScalar or
// BladeE013.
func bladeConst(b blade) string {
	return "Blade" + titler.String(b.ident())
}

// emitGo renders the Cayley table as a generated Go source file and runs it
// through the imports-aware formatter.
func emitGo(table [numBlades][numBlades]product, pkg string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("// Code generated by pgagen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	sb.WriteString("// Blade indexes the 16 basis blades of Cl(3,0,1) by bitmask: bit i set\n")
	sb.WriteString("// means the blade contains e_i.\n")
	sb.WriteString("type Blade uint8\n\n")

	sb.WriteString("const (\n")
	for b := blade(0); b < numBlades; b++ {
		fmt.Fprintf(&sb, "\t%s Blade = %d // %v\n", bladeConst(b), b, b)
	}
	sb.WriteString(")\n\n")

	sb.WriteString("// Products holds the geometric product of every pair of basis blades.\n")
	sb.WriteString("// Entry [a][b] encodes sign*(blade+1), with 0 for a product annihilated\n")
	sb.WriteString("// by the degenerate metric.\n")
	sb.WriteString("var Products = [16][16]int8{\n")
	for a := blade(0); a < numBlades; a++ {
		sb.WriteString("\t{")
		for b := blade(0); b < numBlades; b++ {
			p := table[a][b]
			if b > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", p.sign*(int(p.b)+1))
		}
		fmt.Fprintf(&sb, "}, // %v\n", a)
	}
	sb.WriteString("}\n")

	src, err := imports.Process("cayley.go", []byte(sb.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// emitMarkdown renders the Cayley table as a markdown grid.
func emitMarkdown(table [numBlades][numBlades]product) []byte {
	var sb strings.Builder
	sb.WriteString("| * |")
	for b := blade(0); b < numBlades; b++ {
		fmt.Fprintf(&sb, " %v |", b)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", numBlades))
	sb.WriteString("\n")
	for a := blade(0); a < numBlades; a++ {
		fmt.Fprintf(&sb, "| %v |", a)
		for b := blade(0); b < numBlades; b++ {
			p := table[a][b]
			switch {
			case p.sign == 0:
				sb.WriteString(" 0 |")
			case p.sign < 0:
				fmt.Fprintf(&sb, " -%v |", p.b)
			default:
				fmt.Fprintf(&sb, " %v |", p.b)
			}
		}
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}
