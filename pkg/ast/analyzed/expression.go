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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-pil/pkg/ast/parsed"
)

// AlgebraicExpression represents an expression which remains after analysis.
// At this point, all lambdas and function calls have been eliminated, leaving
// only column references, public references, field constants and the
// operators meaningful over a polynomial.
type AlgebraicExpression interface {
	// Children returns the immediate subexpressions of this expression.
	Children() []AlgebraicExpression
	// String returns the surface syntax for this expression.
	String() string
	// Marker method to close the set of expressions.
	isAlgebraic()
}

// ============================================================================
// Operators
// ============================================================================

// AlgebraicUnaryOperator identifies a unary operator on algebraic expressions.
type AlgebraicUnaryOperator uint8

// NEG is arithmetic negation.
const NEG AlgebraicUnaryOperator = 0

func (op AlgebraicUnaryOperator) String() string {
	if op == NEG {
		return parsed.MINUS.String()
	}
	//
	panic(fmt.Sprintf("unknown algebraic unary operator (%d)", op))
}

// AlgebraicBinaryOperator identifies a binary operator on algebraic
// expressions.
type AlgebraicBinaryOperator uint8

const (
	// ADD is addition over the field.
	ADD AlgebraicBinaryOperator = iota
	// SUB is subtraction over the field.
	SUB
	// MUL is multiplication over the field.
	MUL
	// POW is exponentiation by a constant.
	POW
)

// Operator returns the corresponding operator from pre-analysis expressions,
// which determines the surface syntax.
func (op AlgebraicBinaryOperator) Operator() parsed.BinaryOperator {
	switch op {
	case ADD:
		return parsed.ADD
	case SUB:
		return parsed.SUB
	case MUL:
		return parsed.MUL
	case POW:
		return parsed.POW
	}
	//
	panic(fmt.Sprintf("unknown algebraic binary operator (%d)", op))
}

func (op AlgebraicBinaryOperator) String() string {
	return op.Operator().String()
}

// ============================================================================
// Column Reference
// ============================================================================

// AlgebraicReference refers to a column, either on the current row or (when
// Next holds) on the following row.
type AlgebraicReference struct {
	Name string
	Next bool
}

// NewColumnAccess constructs a reference to a column on the current row.
func NewColumnAccess(name string) *AlgebraicReference {
	return &AlgebraicReference{name, false}
}

// NewNextAccess constructs a reference to a column on the next row.
func NewNextAccess(name string) *AlgebraicReference {
	return &AlgebraicReference{name, true}
}

// Children implementation for the AlgebraicExpression interface.
func (e *AlgebraicReference) Children() []AlgebraicExpression { return nil }

func (e *AlgebraicReference) String() string {
	if e.Next {
		return fmt.Sprintf("%s'", e.Name)
	}
	//
	return e.Name
}

func (e *AlgebraicReference) isAlgebraic() {}

// ============================================================================
// Public Reference
// ============================================================================

// PublicReference refers to a public value exposed to the verifier.
type PublicReference struct{ Name string }

// Children implementation for the AlgebraicExpression interface.
func (e *PublicReference) Children() []AlgebraicExpression { return nil }

func (e *PublicReference) String() string { return fmt.Sprintf(":%s", e.Name) }

func (e *PublicReference) isAlgebraic() {}

// ============================================================================
// Number
// ============================================================================

// Number is a field element constant.
type Number struct{ Value fr.Element }

// NewNumber constructs a field constant from a (signed) machine integer.
func NewNumber(value int64) *Number {
	var elem fr.Element
	//
	elem.SetInt64(value)
	//
	return &Number{elem}
}

// Children implementation for the AlgebraicExpression interface.
func (e *Number) Children() []AlgebraicExpression { return nil }

func (e *Number) String() string { return e.Value.String() }

func (e *Number) isAlgebraic() {}

// ============================================================================
// Unary Operation
// ============================================================================

// UnaryOperation applies a prefix operator to an argument.
type UnaryOperation struct {
	Op  AlgebraicUnaryOperator
	Arg AlgebraicExpression
}

// NewNegation constructs the negation of an expression.
func NewNegation(arg AlgebraicExpression) *UnaryOperation {
	return &UnaryOperation{NEG, arg}
}

// Children implementation for the AlgebraicExpression interface.
func (e *UnaryOperation) Children() []AlgebraicExpression {
	return []AlgebraicExpression{e.Arg}
}

func (e *UnaryOperation) String() string { return fmt.Sprintf("%s%s", e.Op, e.Arg) }

func (e *UnaryOperation) isAlgebraic() {}

// ============================================================================
// Binary Operation
// ============================================================================

// BinaryOperation applies a binary operator.  Binary operations are always
// printed in parentheses.
type BinaryOperation struct {
	Lhs AlgebraicExpression
	Op  AlgebraicBinaryOperator
	Rhs AlgebraicExpression
}

// NewSum constructs "lhs + rhs".
func NewSum(lhs AlgebraicExpression, rhs AlgebraicExpression) *BinaryOperation {
	return &BinaryOperation{lhs, ADD, rhs}
}

// NewDifference constructs "lhs - rhs".
func NewDifference(lhs AlgebraicExpression, rhs AlgebraicExpression) *BinaryOperation {
	return &BinaryOperation{lhs, SUB, rhs}
}

// NewProduct constructs "lhs * rhs".
func NewProduct(lhs AlgebraicExpression, rhs AlgebraicExpression) *BinaryOperation {
	return &BinaryOperation{lhs, MUL, rhs}
}

// Children implementation for the AlgebraicExpression interface.
func (e *BinaryOperation) Children() []AlgebraicExpression {
	return []AlgebraicExpression{e.Lhs, e.Rhs}
}

func (e *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs)
}

func (e *BinaryOperation) isAlgebraic() {}

// ============================================================================
// Traversal
// ============================================================================

// ReferencedColumns returns the names of all columns referenced within an
// expression (in order of first occurrence, without duplicates).
func ReferencedColumns(e AlgebraicExpression) []string {
	var (
		seen  = make(map[string]bool)
		names []string
		stack = []AlgebraicExpression{e}
	)
	// Depth-first, left-to-right
	for len(stack) > 0 {
		n := len(stack) - 1
		next := stack[n]
		stack = stack[:n]
		//
		if r, ok := next.(*AlgebraicReference); ok && !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
		// Push children in reverse so the leftmost is visited first
		children := next.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	//
	return names
}
