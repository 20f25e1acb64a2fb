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

// pgagen generates and checks the Cl(3,0,1) basis blade multiplication table
// that the kernel expansions are derived from.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "pgagen",
		Short:         "Cayley table generator for Cl(3,0,1)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(tableCmd(), verifyCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pgagen:", err)
		os.Exit(1)
	}
}

func tableCmd() *cobra.Command {
	var (
		format string
		pkg    string
		output string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Emit the basis blade multiplication table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := cayley()
			var out []byte
			switch format {
			case "go":
				src, err := emitGo(table, pkg)
				if err != nil {
					return err
				}
				out = src
			case "markdown":
				out = emitMarkdown(table)
			default:
				return fmt.Errorf("unknown format %q (want go or markdown)", format)
			}
			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "go", "output format: go or markdown")
	cmd.Flags().StringVar(&pkg, "package", "cayley", "package name for generated Go source")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the table against the algebra's laws",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := cayley()
			faults := verifyTable(table)
			for _, f := range faults {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			if len(faults) > 0 {
				return fmt.Errorf("%d law violations", len(faults))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok: identity, metric, associativity, reversion")
			return nil
		},
	}
}
