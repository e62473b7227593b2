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

	"github.com/consensys/go-pil/pkg/ast/parsed"
	"github.com/consensys/go-pil/pkg/ast/types"
	"github.com/consensys/go-pil/pkg/util"
)

// SymbolKind identifies what kind of thing a symbol denotes.
type SymbolKind uint8

const (
	// WITNESS_COLUMN is a column whose values are supplied by the prover.
	WITNESS_COLUMN SymbolKind = iota
	// FIXED_COLUMN is a column whose values are publicly known.
	FIXED_COLUMN
	// INTERMEDIATE_COLUMN is a column defined by algebraic expressions over
	// other columns.  These live in their own table.
	INTERMEDIATE_COLUMN
	// CONSTANT is a named field element.
	CONSTANT
	// OTHER is any other let-binding.
	OTHER
)

var symbolKinds = [...]string{"witness", "fixed", "intermediate", "constant", "other"}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKinds) {
		return symbolKinds[k]
	}
	//
	panic(fmt.Sprintf("unknown symbol kind (%d)", k))
}

// ParseSymbolKind returns the symbol kind with the given name.
func ParseSymbolKind(name string) (SymbolKind, bool) {
	for i, n := range symbolKinds {
		if n == name {
			return SymbolKind(i), true
		}
	}
	//
	return 0, false
}

// Symbol describes a named entity.  The length is meaningful only for array
// columns; for fixed columns it is also implied by the type of the definition.
type Symbol struct {
	// Fully-qualified name, such as "Main.x".
	Name string
	// Kind of this symbol
	Kind SymbolKind
	// Array length (if applicable)
	Length util.Option[uint64]
}

// IsArray determines whether this symbol is an array of columns.
func (p *Symbol) IsArray() bool {
	return p.Length.HasValue()
}

// Width returns the number of underlying columns represented by this symbol.
func (p *Symbol) Width() uint64 {
	return p.Length.UnwrapOr(1)
}

// ============================================================================
// Definitions
// ============================================================================

// FunctionValueDefinition is the value associated with a symbol.  Its String
// is the suffix which follows the declared name, e.g. " = 1" or "(i) { i }".
type FunctionValueDefinition interface {
	String() string
	isDefinition()
}

// RepeatedArray is a pattern of values which, when the size exceeds the
// length of the pattern, is repeated to fill the given size.
type RepeatedArray struct {
	Pattern []parsed.Expression
	Size    uint64
}

// IsEmpty determines whether this array has no pattern at all.
func (p RepeatedArray) IsEmpty() bool {
	return len(p.Pattern) == 0
}

// IsRepeated determines whether the pattern is repeated to fill its size.
func (p RepeatedArray) IsRepeated() bool {
	return p.Size > uint64(len(p.Pattern))
}

// String renders "[a, b]" or, for a repeated pattern, "[a, b]*".  An empty
// pattern renders as nothing at all.
func (p RepeatedArray) String() string {
	if p.IsEmpty() {
		return ""
	}
	//
	items := make([]string, len(p.Pattern))
	for i, e := range p.Pattern {
		items[i] = e.String()
	}
	//
	if p.IsRepeated() {
		return fmt.Sprintf("[%s]*", strings.Join(items, ", "))
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

// ArrayDefinition defines a fixed column as the concatenation of one or more
// (repeated) arrays.
type ArrayDefinition struct {
	Items []RepeatedArray
}

func (p *ArrayDefinition) String() string {
	var items []string
	//
	for _, item := range p.Items {
		if !item.IsEmpty() {
			items = append(items, item.String())
		}
	}
	//
	return fmt.Sprintf(" = %s", strings.Join(items, " + "))
}

func (p *ArrayDefinition) isDefinition() {}

// QueryDefinition is a function evaluated during witness generation to supply
// prover inputs.
type QueryDefinition struct {
	Expr parsed.Expression
}

func (p *QueryDefinition) String() string {
	return formatOuterFunction(p.Expr, "query")
}

func (p *QueryDefinition) isDefinition() {}

// ExpressionDefinition is a plain value or function, optionally annotated
// with a type.  A nil type means no annotation.
type ExpressionDefinition struct {
	Expr parsed.Expression
	Type types.Type
}

// NewExpressionDefinition constructs an expression definition, where ty may
// be nil.
func NewExpressionDefinition(expr parsed.Expression, ty types.Type) *ExpressionDefinition {
	return &ExpressionDefinition{expr, ty}
}

func (p *ExpressionDefinition) String() string {
	if p.Type == nil || types.IsCol(p.Type) {
		return formatOuterFunction(p.Expr, "")
	}
	//
	return fmt.Sprintf(": %s = %s", p.Type, p.Expr)
}

func (p *ExpressionDefinition) isDefinition() {}

// Column generators written as single-parameter lambdas are unwrapped, as in
// "(i) { i + 1 }" or "(i) query f(i)".  Anything else is an assignment.
func formatOuterFunction(e parsed.Expression, qualifier string) string {
	var q string
	//
	if qualifier != "" {
		q = " " + qualifier
	}
	//
	if lambda, ok := e.(*parsed.Lambda); ok && len(lambda.Params) == 1 {
		if q == "" {
			return fmt.Sprintf("(%s) { %s }", lambda.Params[0], lambda.Body)
		}
		//
		return fmt.Sprintf("(%s)%s %s", lambda.Params[0], q, lambda.Body)
	}
	//
	return fmt.Sprintf(" =%s %s", q, e)
}

// ============================================================================
// Public Declarations
// ============================================================================

// PublicDeclaration exposes the value of a column at a given row to the
// verifier.
type PublicDeclaration struct {
	// Identifier assigned by analysis.
	ID uint64
	// Fully-qualified name of the public value.
	Name string
	// Fully-qualified name of the column.
	Column string
	// Element of an array column (if applicable).
	ArrayIndex util.Option[uint64]
	// Row whose value is exposed.
	Row uint64
}

// ============================================================================
// Statement Identifiers
// ============================================================================

// StatementIdentifier identifies a statement in source order.
type StatementIdentifier interface {
	isStatement()
}

// DefinitionStatement refers to a symbol (or intermediate column) by name.
type DefinitionStatement struct{ Name string }

// PublicDeclarationStatement refers to a public declaration by name.
type PublicDeclarationStatement struct{ Name string }

// IdentityStatement refers to an identity by its index.
type IdentityStatement struct{ Index uint }

func (p *DefinitionStatement) isStatement()        {}
func (p *PublicDeclarationStatement) isStatement() {}
func (p *IdentityStatement) isStatement()          {}
