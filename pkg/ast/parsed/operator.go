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

import "fmt"

// UnaryOperator identifies a unary operator in a pre-analysis expression.
type UnaryOperator uint8

const (
	// MINUS is arithmetic negation, written "-x".
	MINUS UnaryOperator = iota
	// LOGICAL_NOT is boolean negation, written "!x".
	LOGICAL_NOT
	// NEXT accesses the next row of a column, written "x'".
	NEXT
)

// IsPrefix determines whether the operator is written before its argument.
func (op UnaryOperator) IsPrefix() bool {
	return op != NEXT
}

func (op UnaryOperator) String() string {
	switch op {
	case MINUS:
		return "-"
	case LOGICAL_NOT:
		return "!"
	case NEXT:
		return "'"
	}
	//
	panic(fmt.Sprintf("unknown unary operator (%d)", op))
}

// BinaryOperator identifies a binary operator in a pre-analysis expression.
type BinaryOperator uint8

const (
	// ADD is addition.
	ADD BinaryOperator = iota
	// SUB is subtraction.
	SUB
	// MUL is multiplication.
	MUL
	// DIV is (integer) division.
	DIV
	// MOD is the remainder operation.
	MOD
	// POW is exponentiation.
	POW
	// SHIFT_LEFT is a left bit shift.
	SHIFT_LEFT
	// SHIFT_RIGHT is a right bit shift.
	SHIFT_RIGHT
	// BINARY_AND is bitwise conjunction.
	BINARY_AND
	// BINARY_XOR is bitwise exclusive-or.
	BINARY_XOR
	// BINARY_OR is bitwise disjunction.
	BINARY_OR
	// LESS is the strict less-than comparison.
	LESS
	// LESS_EQUAL is the less-than-or-equal comparison.
	LESS_EQUAL
	// EQUAL is the equality comparison.
	EQUAL
	// NOT_EQUAL is the inequality comparison.
	NOT_EQUAL
	// GREATER_EQUAL is the greater-than-or-equal comparison.
	GREATER_EQUAL
	// GREATER is the strict greater-than comparison.
	GREATER
	// LOGICAL_AND is short-circuiting conjunction.
	LOGICAL_AND
	// LOGICAL_OR is short-circuiting disjunction.
	LOGICAL_OR
)

var binaryOperators = [...]string{
	"+", "-", "*", "/", "%", "**", "<<", ">>", "&", "^", "|",
	"<", "<=", "==", "!=", ">=", ">", "&&", "||",
}

func (op BinaryOperator) String() string {
	if int(op) < len(binaryOperators) {
		return binaryOperators[op]
	}
	//
	panic(fmt.Sprintf("unknown binary operator (%d)", op))
}

// ParseBinaryOperator returns the operator with the given surface syntax.
func ParseBinaryOperator(symbol string) (BinaryOperator, bool) {
	for i, s := range binaryOperators {
		if s == symbol {
			return BinaryOperator(i), true
		}
	}
	//
	return 0, false
}

// ParseUnaryOperator returns the operator with the given surface syntax.
func ParseUnaryOperator(symbol string) (UnaryOperator, bool) {
	switch symbol {
	case "-":
		return MINUS, true
	case "!":
		return LOGICAL_NOT, true
	case "'":
		return NEXT, true
	}
	//
	return 0, false
}
