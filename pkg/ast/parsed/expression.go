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
package parsed

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Expression represents an expression as it stands before analysis.  Such
// expressions may contain lambdas, function calls and arbitrary operators,
// all of which are eliminated when expressions are lowered into algebraic
// expressions.
type Expression interface {
	// String returns the surface syntax for this expression.
	String() string
	// Marker method to close the set of expressions.
	isExpression()
}

// ============================================================================
// Reference
// ============================================================================

// Reference is a (possibly qualified) reference to a symbol or a local
// variable, such as "Main.x" or "i".
type Reference struct{ Name string }

// NewReference constructs a reference to a named symbol.
func NewReference(name string) *Reference { return &Reference{name} }

func (e *Reference) String() string { return e.Name }

func (e *Reference) isExpression() {}

// ============================================================================
// PublicReference
// ============================================================================

// PublicReference is a reference to a public value, written ":name".
type PublicReference struct{ Name string }

func (e *PublicReference) String() string { return fmt.Sprintf(":%s", e.Name) }

func (e *PublicReference) isExpression() {}

// ============================================================================
// Number
// ============================================================================

// Number is an integer literal.  Literals are unbounded at this stage, since
// their type (int or fe) is only fixed by analysis.
type Number struct{ Value *big.Int }

// NewNumber constructs a number from a (signed) machine integer.
func NewNumber(value int64) *Number { return &Number{big.NewInt(value)} }

func (e *Number) String() string { return e.Value.String() }

func (e *Number) isExpression() {}

// ============================================================================
// StringLiteral
// ============================================================================

// StringLiteral is a quoted string.
type StringLiteral struct{ Value string }

func (e *StringLiteral) String() string { return strconv.Quote(e.Value) }

func (e *StringLiteral) isExpression() {}

// ============================================================================
// Tuple
// ============================================================================

// Tuple groups zero or more expressions, written "(a, b)".
type Tuple struct{ Items []Expression }

func (e *Tuple) String() string { return fmt.Sprintf("(%s)", formatList(e.Items)) }

func (e *Tuple) isExpression() {}

// ============================================================================
// Lambda
// ============================================================================

// Lambda is an anonymous function, written "|i, j| body".
type Lambda struct {
	Params []string
	Body   Expression
}

// NewLambda constructs a lambda expression.
func NewLambda(body Expression, params ...string) *Lambda { return &Lambda{params, body} }

func (e *Lambda) String() string {
	return fmt.Sprintf("|%s| %s", strings.Join(e.Params, ", "), e.Body)
}

func (e *Lambda) isExpression() {}

// ============================================================================
// ArrayLiteral
// ============================================================================

// ArrayLiteral is a literal array of expressions, written "[a, b]".
type ArrayLiteral struct{ Items []Expression }

func (e *ArrayLiteral) String() string { return fmt.Sprintf("[%s]", formatList(e.Items)) }

func (e *ArrayLiteral) isExpression() {}

// ============================================================================
// UnaryOperation
// ============================================================================

// UnaryOperation applies a prefix or postfix operator to an argument.
type UnaryOperation struct {
	Op  UnaryOperator
	Arg Expression
}

func (e *UnaryOperation) String() string {
	if e.Op.IsPrefix() {
		return fmt.Sprintf("%s%s", e.Op, e.Arg)
	}
	//
	return fmt.Sprintf("%s%s", e.Arg, e.Op)
}

func (e *UnaryOperation) isExpression() {}

// ============================================================================
// BinaryOperation
// ============================================================================

// BinaryOperation applies a binary operator.  These are always printed in
// parentheses, so no precedence rules are needed to read them back.
type BinaryOperation struct {
	Lhs Expression
	Op  BinaryOperator
	Rhs Expression
}

// NewBinary constructs a binary operation.
func NewBinary(lhs Expression, op BinaryOperator, rhs Expression) *BinaryOperation {
	return &BinaryOperation{lhs, op, rhs}
}

func (e *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs)
}

func (e *BinaryOperation) isExpression() {}

// ============================================================================
// FunctionCall
// ============================================================================

// FunctionCall applies a function to zero or more arguments.
type FunctionCall struct {
	Function Expression
	Args     []Expression
}

func (e *FunctionCall) String() string {
	return fmt.Sprintf("%s(%s)", e.Function, formatList(e.Args))
}

func (e *FunctionCall) isExpression() {}

// ============================================================================
// IndexAccess
// ============================================================================

// IndexAccess reads an element of an array, written "a[i]".
type IndexAccess struct {
	Array Expression
	Index Expression
}

func (e *IndexAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Array, e.Index)
}

func (e *IndexAccess) isExpression() {}

// ============================================================================
// IfExpression
// ============================================================================

// IfExpression is a conditional with both branches present.
type IfExpression struct {
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *IfExpression) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", e.Condition, e.Then, e.Else)
}

func (e *IfExpression) isExpression() {}

// ============================================================================
// MatchExpression
// ============================================================================

// MatchArm is a single arm of a match expression.  A nil pattern is the
// catch-all pattern "_".
type MatchArm struct {
	Pattern Expression
	Value   Expression
}

func (a MatchArm) String() string {
	if a.Pattern == nil {
		return fmt.Sprintf("_ => %s", a.Value)
	}
	//
	return fmt.Sprintf("%s => %s", a.Pattern, a.Value)
}

// MatchExpression selects the first arm whose pattern matches the scrutinee.
type MatchExpression struct {
	Scrutinee Expression
	Arms      []MatchArm
}

func (e *MatchExpression) String() string {
	var arms = make([]string, len(e.Arms))
	//
	for i, arm := range e.Arms {
		arms[i] = arm.String()
	}
	//
	return fmt.Sprintf("match %s { %s }", e.Scrutinee, strings.Join(arms, ", "))
}

func (e *MatchExpression) isExpression() {}

// ============================================================================
// Helpers
// ============================================================================

func formatList(exprs []Expression) string {
	var items = make([]string, len(exprs))
	//
	for i, e := range exprs {
		items[i] = e.String()
	}
	//
	return strings.Join(items, ", ")
}
