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
package analyzed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-pil/pkg/util"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Consecutive declarations in the same namespace share a single header.
func TestProperty_NamespaceHeaders(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("one header per namespace change", prop.ForAll(
		func(namespaces []string) bool {
			var (
				ir      = NewAnalyzed(util.Some[uint64](16))
				changes = 0
				current = ""
			)
			//
			for i, ns := range namespaces {
				name := fmt.Sprintf("c%d", i)
				if ns != "" {
					name = ns + "." + name
				}
				//
				ir.AddDefinition(NewWitnessColumn(name, nil))
				//
				if ns != current {
					changes++
					current = ns
				}
			}
			//
			return strings.Count(ir.String(), "namespace ") == changes
		},
		gen.SliceOf(gen.OneConstOf("", "A", "A.B", "C")),
	))
	//
	properties.Property("local declarations are indented", prop.ForAll(
		func(namespaces []string) bool {
			ir := NewAnalyzed(util.None[uint64]())
			//
			for i, ns := range namespaces {
				ir.AddDefinition(NewWitnessColumn(fmt.Sprintf("%s.c%d", ns, i), nil))
			}
			//
			for _, line := range strings.Split(strings.TrimSuffix(ir.String(), "\n"), "\n") {
				if line != "" && !strings.HasPrefix(line, "namespace ") && !strings.HasPrefix(line, INDENT) {
					return false
				}
			}
			//
			return true
		},
		gen.SliceOf(gen.OneConstOf("A", "A.B", "Main")),
	))
	//
	properties.Property("valid names always print", prop.ForAll(
		func(names []string) (ok bool) {
			ir := NewAnalyzed(util.None[uint64]())
			//
			for i, name := range names {
				if i%2 == 0 {
					ir.AddDefinition(NewWitnessColumn(name, nil))
				} else {
					ir.AddIntermediateColumn(NewIntermediateSymbol(name, util.None[uint64]()), NewColumnAccess("a"))
				}
			}
			//
			if ir.Validate() != nil {
				return true
			}
			//
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			//
			_ = ir.String()
			//
			return true
		},
		gen.SliceOf(gen.OneConstOf("", "x", "A.y", "A.", ".z", "A..w", "B.C.v")),
	))
	//
	properties.TestingRun(t)
}

// Rewriting "a - b = 0" as "a = b" is purely cosmetic.
func TestProperty_PolynomialIdentities(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("subtraction renders as equation", prop.ForAll(
		func(a int64, b int64) bool {
			id := NewPolynomialIdentity[AlgebraicExpression](0, NewDifference(NewNumber(a), NewNumber(b)))
			return id.String() == fmt.Sprintf("%d = %d;", a, b)
		},
		gen.Int64Range(0, 1<<32), gen.Int64Range(0, 1<<32),
	))
	//
	properties.Property("other operators render against zero", prop.ForAll(
		func(op uint8, a int64, b int64) bool {
			e := &BinaryOperation{NewNumber(a), AlgebraicBinaryOperator(op), NewNumber(b)}
			id := NewPolynomialIdentity[AlgebraicExpression](0, e)
			//
			return id.String() == fmt.Sprintf("(%d %s %d) = 0;", a, e.Op, b)
		},
		gen.OneConstOf(uint8(ADD), uint8(MUL), uint8(POW)), gen.Int64Range(0, 1000), gen.Int64Range(0, 1000),
	))
	//
	properties.TestingRun(t)
}

// An intermediate array column of length n renders exactly n expressions.
func TestProperty_IntermediateColumns(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("array length matches expressions", prop.ForAll(
		func(n uint64) bool {
			var (
				ir    = NewAnalyzed(util.None[uint64]())
				exprs = make([]AlgebraicExpression, n)
			)
			//
			for i := range exprs {
				exprs[i] = NewColumnAccess(fmt.Sprintf("x%d", i))
			}
			//
			ir.AddIntermediateColumn(NewIntermediateSymbol("I", util.Some(n)), exprs...)
			out := ir.String()
			body := out[strings.Index(out, "= [")+3 : strings.LastIndex(out, "]")]
			//
			return ir.Validate() == nil && uint64(len(strings.Split(body, ", "))) == n
		},
		gen.UInt64Range(1, 32),
	))
	//
	properties.TestingRun(t)
}
