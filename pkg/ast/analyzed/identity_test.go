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
	"testing"

	"github.com/consensys/go-pil/pkg/ast/parsed"
	"github.com/consensys/go-pil/pkg/util/assert"
)

func TestIdentity_1(t *testing.T) {
	var (
		a   = NewColumnAccess("a")
		b   = NewColumnAccess("b")
		sel = NewColumnAccess("sel")
		lhs = NewGuardedExpressions[AlgebraicExpression](sel, a, b)
		rhs = NewSelectedExpressions[AlgebraicExpression](b, a)
	)
	//
	CheckIdentity(t, NewIdentity(0, PLOOKUP, lhs, rhs), "sel { a, b } in { b, a };")
	CheckIdentity(t, NewIdentity(1, PERMUTATION, lhs, rhs), "sel { a, b } is { b, a };")
	CheckIdentity(t, NewIdentity(2, CONNECT, rhs, rhs), "{ b, a } connect { b, a };")
}

func TestIdentity_2(t *testing.T) {
	var (
		x   = NewColumnAccess("x")
		one = NewNumber(1)
		sel = NewDifference(one, x)
		lhs = NewGuardedExpressions[AlgebraicExpression](sel, x)
		rhs = NewSelectedExpressions[AlgebraicExpression](NewNextAccess("y"))
	)
	// Selectors are printed in full, subtractions included.
	CheckIdentity(t, NewIdentity(0, PLOOKUP, lhs, rhs), "(1 - x) { x } in { y' };")
}

func TestIdentity_3(t *testing.T) {
	var (
		x = NewColumnAccess("x")
		y = NewColumnAccess("y")
	)
	//
	CheckIdentity(t, NewPolynomialIdentity[AlgebraicExpression](0, NewDifference(NewProduct(x, y), y)),
		"(x * y) = y;")
	CheckIdentity(t, NewPolynomialIdentity[AlgebraicExpression](0, NewProduct(x, NewDifference(x, y))),
		"(x * (x - y)) = 0;")
	CheckIdentity(t, NewPolynomialIdentity[AlgebraicExpression](0, x), "x = 0;")
	CheckIdentity(t, NewPolynomialIdentity[AlgebraicExpression](0, NewNegation(NewDifference(x, y))),
		"-(x - y) = 0;")
	CheckIdentity(t, NewPolynomialIdentity[AlgebraicExpression](0, &PublicReference{"p"}), ":p = 0;")
}

func TestIdentity_4(t *testing.T) {
	// Identities over pre-analysis expressions share the same rules.
	var (
		x = parsed.NewReference("x")
		y = &parsed.UnaryOperation{Op: parsed.NEXT, Arg: parsed.NewReference("y")}
	)
	//
	CheckIdentity(t, NewPolynomialIdentity[parsed.Expression](0, parsed.NewBinary(y, parsed.SUB, x)), "y' = x;")
	CheckIdentity(t, NewPolynomialIdentity[parsed.Expression](0, parsed.NewBinary(y, parsed.MUL, x)), "(y' * x) = 0;")
	//
	lhs := NewSelectedExpressions[parsed.Expression](x)
	CheckIdentity(t, NewIdentity(0, PLOOKUP, lhs, lhs), "{ x } in { x };")
}

func TestIdentity_5(t *testing.T) {
	x := NewColumnAccess("x")
	id := NewIdentity(0, PLOOKUP, NewSelectedExpressions[AlgebraicExpression](x),
		NewSelectedExpressions[AlgebraicExpression](x))
	//
	assert.Panics(t, "no polynomial expression", func() { id.ExpressionForPolyID() })
	assert.Panics(t, "NewPolynomialIdentity", func() {
		NewIdentity(0, POLYNOMIAL, id.Left, id.Right)
	})
}

func TestIdentityKind_1(t *testing.T) {
	for _, kind := range []IdentityKind{POLYNOMIAL, PLOOKUP, PERMUTATION, CONNECT} {
		k, ok := ParseIdentityKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, k)
	}
	//
	_, ok := ParseIdentityKind("lookup")
	assert.False(t, ok)
}

func TestExpression_1(t *testing.T) {
	var (
		x = NewColumnAccess("Main.x")
		y = NewNextAccess("Main.y")
	)
	//
	CheckExpression(t, x, "Main.x")
	CheckExpression(t, y, "Main.y'")
	CheckExpression(t, NewNumber(42), "42")
	CheckExpression(t, &PublicReference{"out"}, ":out")
	CheckExpression(t, NewNegation(x), "-Main.x")
	CheckExpression(t, &BinaryOperation{x, POW, NewNumber(3)}, "(Main.x ** 3)")
	CheckExpression(t, NewSum(NewProduct(x, y), NewNumber(1)), "((Main.x * Main.y') + 1)")
}

func TestExpression_2(t *testing.T) {
	var (
		x = NewColumnAccess("x")
		y = NewNextAccess("y")
		z = NewColumnAccess("z")
		e = NewSum(NewProduct(z, NewNegation(x)), NewDifference(y, NewProduct(z, &PublicReference{"p"})))
	)
	//
	assert.Equal(t, []string{"z", "x", "y"}, ReferencedColumns(e))
	assert.Equal(t, 0, len(ReferencedColumns(NewNumber(1))))
}

// ============================================================================
// Helpers
// ============================================================================

func CheckIdentity[E interface{ String() string }](t *testing.T, id Identity[E], expected string) {
	t.Helper()
	assert.Equal(t, expected, id.String())
}

func CheckExpression(t *testing.T, e AlgebraicExpression, expected string) {
	t.Helper()
	assert.Equal(t, expected, e.String())
}
