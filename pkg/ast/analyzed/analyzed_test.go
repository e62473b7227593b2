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
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/consensys/go-pil/pkg/ast/parsed"
	"github.com/consensys/go-pil/pkg/ast/types"
	"github.com/consensys/go-pil/pkg/util"
	"github.com/consensys/go-pil/pkg/util/assert"
)

// Example prints a small machine with two namespaces.
func Example() {
	var (
		ir   = NewAnalyzed(util.Some[uint64](8))
		i    = parsed.NewReference("i")
		x    = NewColumnAccess("Main.x")
		next = NewNextAccess("Main.x")
	)
	//
	ir.AddDefinition(NewConstant("Main.STEP", parsed.NewNumber(1)))
	ir.AddDefinition(NewFixedColumn("Main.FIRST", NewExpressionDefinition(
		parsed.NewLambda(&parsed.IfExpression{
			Condition: parsed.NewBinary(i, parsed.EQUAL, parsed.NewNumber(0)),
			Then:      parsed.NewNumber(1),
			Else:      parsed.NewNumber(0),
		}, "i"), types.Col())))
	ir.AddDefinition(NewWitnessColumn("Main.x", nil))
	ir.AddIdentity(NewPolynomialIdentity[AlgebraicExpression](0, NewDifference(next, NewSum(x, NewNumber(1)))))
	ir.AddDefinition(NewWitnessArray("Range.bytes", 2))
	ir.AddIdentity(NewIdentity(1, PLOOKUP,
		NewSelectedExpressions[AlgebraicExpression](NewColumnAccess("Range.bytes[0]")),
		NewSelectedExpressions[AlgebraicExpression](NewColumnAccess("Range.BYTE"))))
	ir.AddPublicDeclaration(PublicDeclaration{0, "Main.out", "Main.x", util.None[uint64](), 7})
	//
	_, _ = ir.WriteTo(os.Stdout)
	// Output:
	// namespace Main(8);
	//     constant STEP = 1;
	//     col fixed FIRST(i) { if (i == 0) { 1 } else { 0 } };
	//     col witness x;
	//     Main.x' = (Main.x + 1);
	// namespace Range(8);
	//     col witness bytes[2];
	//     { Range.bytes[0] } in { Range.BYTE };
	// namespace Main(8);
	//     public out = Main.x(7);
}

func TestAnalyzed_Counts(t *testing.T) {
	ir := NewAnalyzed(util.None[uint64]())
	x := NewColumnAccess("x")
	//
	ir.AddDefinition(NewWitnessColumn("x", nil))
	ir.AddDefinition(NewWitnessArray("w", 3))
	ir.AddDefinition(NewFixedColumn("F", NewExpressionDefinition(parsed.NewNumber(0), types.Col())))
	ir.AddDefinition(NewFixedArray("G", 4, parsed.NewReference("gens")))
	ir.AddDefinition(NewConstant("C", parsed.NewNumber(2)))
	ir.AddIntermediateColumn(NewIntermediateSymbol("I", util.Some[uint64](2)), x, x)
	ir.AddIntermediateColumn(NewIntermediateSymbol("J", util.None[uint64]()), x)
	ir.AddIdentity(NewPolynomialIdentity[AlgebraicExpression](0, x))
	ir.AddIdentity(NewIdentity(1, CONNECT, NewSelectedExpressions[AlgebraicExpression](x),
		NewSelectedExpressions[AlgebraicExpression](x)))
	//
	assert.Equal(t, uint64(4), ir.CommitmentCount())
	assert.Equal(t, uint64(5), ir.ConstantCount())
	assert.Equal(t, uint64(3), ir.IntermediateCount())
	assert.Equal(t, uint(1), ir.SymbolsOfKind(CONSTANT))
	assert.Equal(t, 1, len(ir.IdentitiesOfKind(POLYNOMIAL)))
	assert.Equal(t, 1, len(ir.IdentitiesOfKind(CONNECT)))
	assert.Equal(t, 0, len(ir.IdentitiesOfKind(PLOOKUP)))
}

func TestAnalyzed_Validate(t *testing.T) {
	ir := NewAnalyzed(util.None[uint64]())
	ir.AddDefinition(NewWitnessColumn("x", nil))
	ir.SourceOrder = append(ir.SourceOrder,
		&DefinitionStatement{"y"},
		&PublicDeclarationStatement{"p"},
		&IdentityStatement{4})
	ir.Identities = append(ir.Identities, Identity[AlgebraicExpression]{Kind: POLYNOMIAL})
	ir.SourceOrder = append(ir.SourceOrder, &IdentityStatement{0})
	//
	err := ir.Validate()
	assert.True(t, err != nil)
	// All violations are reported
	for _, msg := range []string{"unknown definition \"y\"", "unknown public declaration \"p\"",
		"identity index 4 out of bounds", "has no expression"} {
		assert.True(t, strings.Contains(err.Error(), msg), "missing \"%s\"", msg)
	}
}

func TestAnalyzed_Concurrent(t *testing.T) {
	var (
		ir      = NewAnalyzed(util.Some[uint64](2))
		wg      sync.WaitGroup
		outputs = make([]string, 8)
	)
	//
	ir.AddDefinition(NewWitnessColumn("A.x", nil))
	ir.AddDefinition(NewWitnessColumn("B.y", nil))
	ir.AddIdentity(NewPolynomialIdentity[AlgebraicExpression](0,
		NewDifference(NewColumnAccess("A.x"), NewColumnAccess("B.y"))))
	//
	for i := range outputs {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			outputs[i] = ir.String()
		}(i)
	}
	//
	wg.Wait()
	//
	for _, out := range outputs {
		assert.Equal(t, outputs[0], out)
	}
}

func TestSymbolKind_1(t *testing.T) {
	for _, kind := range []SymbolKind{WITNESS_COLUMN, FIXED_COLUMN, INTERMEDIATE_COLUMN, CONSTANT, OTHER} {
		k, ok := ParseSymbolKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, k)
	}
}
