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
package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-pil/pkg/util"
)

// Type represents a type in the constraint language.  This is a closed set of
// elementary types (bool, int, fe, string, expr, constr) together with three
// composite types (arrays, tuples and functions).
type Type interface {
	// Equals determines whether this type is structurally identical to another.
	Equals(Type) bool
	// NeedsParentheses determines whether this type must be wrapped in
	// parentheses when used as the base of an array type or as an item within
	// a list of types.
	NeedsParentheses() bool
	// String returns the surface syntax for this type.
	String() string
	// Marker method to close the set of types.
	isType()
}

// ============================================================================
// Elementary Types
// ============================================================================

// Elementary represents one of the atomic types.
type Elementary uint8

const (
	// BOOL represents the boolean type.
	BOOL Elementary = iota
	// INT represents (unbounded) integers.
	INT
	// FE represents field elements.
	FE
	// STRING represents strings.
	STRING
	// EXPR represents (algebraic) expressions.
	EXPR
	// CONSTR represents constraints.
	CONSTR
)

var elementaryNames = [...]string{"bool", "int", "fe", "string", "expr", "constr"}

// Bool returns the boolean type.
func Bool() Type { return BOOL }

// Int returns the integer type.
func Int() Type { return INT }

// Fe returns the field element type.
func Fe() Type { return FE }

// String returns the string type.
func String() Type { return STRING }

// Expr returns the expression type.
func Expr() Type { return EXPR }

// Constr returns the constraint type.
func Constr() Type { return CONSTR }

// Equals implementation for the Type interface.
func (p Elementary) Equals(other Type) bool {
	o, ok := other.(Elementary)
	return ok && o == p
}

// NeedsParentheses implementation for the Type interface.
func (p Elementary) NeedsParentheses() bool { return false }

func (p Elementary) String() string {
	if int(p) < len(elementaryNames) {
		return elementaryNames[p]
	}
	//
	panic(fmt.Sprintf("unknown elementary type (%d)", p))
}

func (p Elementary) isType() {}

// ============================================================================
// Array Type
// ============================================================================

// ArrayType represents an array of some base type, which is either bounded
// (i.e. has a fixed length) or unbounded.
type ArrayType struct {
	Base   Type
	Length util.Option[uint64]
}

// NewArrayType constructs an array type with a fixed length.
func NewArrayType(base Type, length uint64) *ArrayType {
	return &ArrayType{base, util.Some(length)}
}

// NewUnboundedArrayType constructs an array type without a length.
func NewUnboundedArrayType(base Type) *ArrayType {
	return &ArrayType{base, util.None[uint64]()}
}

// Equals implementation for the Type interface.
func (p *ArrayType) Equals(other Type) bool {
	if o, ok := other.(*ArrayType); ok {
		return p.Base.Equals(o.Base) && p.Length.HasValue() == o.Length.HasValue() &&
			p.Length.UnwrapOr(0) == o.Length.UnwrapOr(0)
	}
	//
	return false
}

// NeedsParentheses implementation for the Type interface.  Array types bind
// as tightly as indexing, hence never need parentheses.
func (p *ArrayType) NeedsParentheses() bool { return false }

func (p *ArrayType) String() string {
	var length string
	//
	if p.Length.HasValue() {
		length = fmt.Sprintf("%d", p.Length.Unwrap())
	}
	//
	if p.Base.NeedsParentheses() {
		return fmt.Sprintf("(%s)[%s]", p.Base, length)
	}
	//
	return fmt.Sprintf("%s[%s]", p.Base, length)
}

func (p *ArrayType) isType() {}

// ============================================================================
// Tuple Type
// ============================================================================

// TupleType represents a fixed-size heterogeneous collection of types.
type TupleType struct {
	Items []Type
}

// NewTupleType constructs a tuple type from zero or more item types.
func NewTupleType(items ...Type) *TupleType {
	return &TupleType{items}
}

// Equals implementation for the Type interface.
func (p *TupleType) Equals(other Type) bool {
	if o, ok := other.(*TupleType); ok {
		return equalTypes(p.Items, o.Items)
	}
	//
	return false
}

// NeedsParentheses implementation for the Type interface.  Tuples always
// carry their own parentheses.
func (p *TupleType) NeedsParentheses() bool { return false }

func (p *TupleType) String() string {
	return fmt.Sprintf("(%s)", formatListOfTypes(p.Items))
}

func (p *TupleType) isType() {}

// ============================================================================
// Function Type
// ============================================================================

// FunctionType represents a function from zero or more parameter types to a
// single return type.
type FunctionType struct {
	Params []Type
	Return Type
}

// NewFunctionType constructs a function type.
func NewFunctionType(ret Type, params ...Type) *FunctionType {
	return &FunctionType{params, ret}
}

// Col returns the type of column generators, i.e. a function taking no
// arguments and returning a field element.  This is written "col".
func Col() *FunctionType {
	return &FunctionType{nil, FE}
}

// IsCol determines whether a given type is (structurally) the column type.
func IsCol(t Type) bool {
	return Col().Equals(t)
}

// Equals implementation for the Type interface.
func (p *FunctionType) Equals(other Type) bool {
	if o, ok := other.(*FunctionType); ok {
		return p.Return.Equals(o.Return) && equalTypes(p.Params, o.Params)
	}
	//
	return false
}

// NeedsParentheses implementation for the Type interface.  The arrow binds
// weaker than indexing and list separators, except for "col" which is atomic.
func (p *FunctionType) NeedsParentheses() bool {
	return !IsCol(p)
}

func (p *FunctionType) String() string {
	if IsCol(p) {
		return "col"
	}
	//
	return fmt.Sprintf("(%s) -> %s", formatListOfTypes(p.Params), p.Return)
}

func (p *FunctionType) isType() {}

// ============================================================================
// Helpers
// ============================================================================

func equalTypes(lhs []Type, rhs []Type) bool {
	return slices.EqualFunc(lhs, rhs, func(l Type, r Type) bool { return l.Equals(r) })
}

func formatListOfTypes(types []Type) string {
	var builder strings.Builder
	//
	for i, t := range types {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		if t.NeedsParentheses() {
			builder.WriteString(fmt.Sprintf("(%s)", t))
		} else {
			builder.WriteString(t.String())
		}
	}
	//
	return builder.String()
}
