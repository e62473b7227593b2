// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-pil/pkg/ast/analyzed"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] ir_file",
	Short: "summarise the contents of an analyzed constraint file.",
	Long: `Report the number of columns, constants and identities found in a
	given analyzed constraint file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		ir := readAnalyzedFile(cmd, args[0])
		//
		fmt.Printf("degree: %d\n", ir.Degree.UnwrapOr(analyzed.DEFAULT_DEGREE))
		fmt.Printf("commitments: %d\n", ir.CommitmentCount())
		fmt.Printf("constants: %d\n", ir.ConstantCount())
		fmt.Printf("intermediates: %d\n", ir.IntermediateCount())
		fmt.Printf("other symbols: %d\n", ir.SymbolsOfKind(analyzed.OTHER))
		fmt.Printf("publics: %d\n", len(ir.PublicDeclarations))
		//
		for _, kind := range []analyzed.IdentityKind{analyzed.POLYNOMIAL, analyzed.PLOOKUP,
			analyzed.PERMUTATION, analyzed.CONNECT} {
			fmt.Printf("%s identities: %d\n", kind, len(ir.IdentitiesOfKind(kind)))
		}
		//
		fmt.Printf("constrained columns: %d\n", len(constrainedColumns(ir)))
	},
}

// Determine the set of distinct columns referenced from any identity.
func constrainedColumns(ir *analyzed.Analyzed) map[string]bool {
	columns := make(map[string]bool)
	//
	for _, identity := range ir.Identities {
		for _, side := range []analyzed.SelectedExpressions[analyzed.AlgebraicExpression]{identity.Left,
			identity.Right} {
			exprs := side.Expressions
			//
			if side.Selector.HasValue() {
				exprs = append([]analyzed.AlgebraicExpression{side.Selector.Unwrap()}, exprs...)
			}
			//
			for _, e := range exprs {
				for _, name := range analyzed.ReferencedColumns(e) {
					columns[name] = true
				}
			}
		}
	}
	//
	return columns
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Uint("degree", 0, "override the reported degree")
}
