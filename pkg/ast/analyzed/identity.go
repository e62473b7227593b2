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
	"github.com/consensys/go-pil/pkg/util"
)

// IdentityKind distinguishes the four kinds of constraint.
type IdentityKind uint8

const (
	// POLYNOMIAL asserts that an expression vanishes on every row.
	POLYNOMIAL IdentityKind = iota
	// PLOOKUP asserts the rows of the left are contained in the rows of the
	// right.
	PLOOKUP
	// PERMUTATION asserts the rows of the left are a permutation of the rows
	// of the right.
	PERMUTATION
	// CONNECT asserts a copy constraint between the left and right columns.
	CONNECT
)

var identityKinds = [...]string{"polynomial", "plookup", "permutation", "connect"}

func (k IdentityKind) String() string {
	if int(k) < len(identityKinds) {
		return identityKinds[k]
	}
	//
	panic(fmt.Sprintf("unknown identity kind (%d)", k))
}

// ParseIdentityKind returns the identity kind with the given name.
func ParseIdentityKind(name string) (IdentityKind, bool) {
	for i, n := range identityKinds {
		if n == name {
			return IdentityKind(i), true
		}
	}
	//
	return 0, false
}

// SelectedExpressions is an ordered list of expressions optionally gated by a
// selector.  The order is significant, since it pairs positionally with the
// other side of an identity.
type SelectedExpressions[E fmt.Stringer] struct {
	Selector    util.Option[E]
	Expressions []E
}

// NewSelectedExpressions constructs a list of expressions without selector.
func NewSelectedExpressions[E fmt.Stringer](exprs ...E) SelectedExpressions[E] {
	return SelectedExpressions[E]{util.None[E](), exprs}
}

// NewGuardedExpressions constructs a list of expressions gated by a selector.
func NewGuardedExpressions[E fmt.Stringer](selector E, exprs ...E) SelectedExpressions[E] {
	return SelectedExpressions[E]{util.Some(selector), exprs}
}

func (p SelectedExpressions[E]) String() string {
	var (
		builder strings.Builder
		items   = make([]string, len(p.Expressions))
	)
	//
	if p.Selector.HasValue() {
		builder.WriteString(p.Selector.Unwrap().String())
		builder.WriteString(" ")
	}
	//
	for i, e := range p.Expressions {
		items[i] = e.String()
	}
	//
	builder.WriteString(fmt.Sprintf("{ %s }", strings.Join(items, ", ")))
	//
	return builder.String()
}

// Identity is a constraint over columns.  Polynomial identities carry the
// constrained expression as the selector of the left-hand side, and have an
// empty right-hand side.  All other kinds relate the left to the right.
type Identity[E fmt.Stringer] struct {
	// Identifier assigned by analysis.
	ID uint64
	// Kind of identity.
	Kind IdentityKind
	// Left-hand side
	Left SelectedExpressions[E]
	// Right-hand side
	Right SelectedExpressions[E]
}

// NewPolynomialIdentity constructs an identity asserting "expr == 0".
func NewPolynomialIdentity[E fmt.Stringer](id uint64, expr E) Identity[E] {
	return Identity[E]{id, POLYNOMIAL, SelectedExpressions[E]{Selector: util.Some(expr)},
		SelectedExpressions[E]{}}
}

// NewIdentity constructs a lookup, permutation or connect identity.
func NewIdentity[E fmt.Stringer](id uint64, kind IdentityKind, left SelectedExpressions[E],
	right SelectedExpressions[E]) Identity[E] {
	if kind == POLYNOMIAL {
		panic("polynomial identities must be constructed with NewPolynomialIdentity")
	}
	//
	return Identity[E]{id, kind, left, right}
}

// ExpressionForPolyID returns the expression constrained by a polynomial
// identity.
func (p Identity[E]) ExpressionForPolyID() E {
	if p.Kind != POLYNOMIAL {
		panic(fmt.Sprintf("%s identity has no polynomial expression", p.Kind))
	}
	//
	return p.Left.Selector.Unwrap()
}

// String renders this identity as a statement.  Polynomial identities whose
// expression is a subtraction "a - b" are shown as "a = b"; this is purely
// cosmetic since both denote "a - b == 0".
func (p Identity[E]) String() string {
	switch p.Kind {
	case POLYNOMIAL:
		expr := p.ExpressionForPolyID()
		//
		if lhs, rhs, ok := splitSubtraction(expr); ok {
			return fmt.Sprintf("%s = %s;", lhs, rhs)
		}
		//
		return fmt.Sprintf("%s = 0;", expr)
	case PLOOKUP:
		return fmt.Sprintf("%s in %s;", p.Left, p.Right)
	case PERMUTATION:
		return fmt.Sprintf("%s is %s;", p.Left, p.Right)
	case CONNECT:
		return fmt.Sprintf("%s connect %s;", p.Left, p.Right)
	}
	//
	panic("unreachable")
}

// Split an expression of either representation whose outermost operator is a
// subtraction.
func splitSubtraction(expr any) (fmt.Stringer, fmt.Stringer, bool) {
	switch e := expr.(type) {
	case *BinaryOperation:
		if e.Op == SUB {
			return e.Lhs, e.Rhs, true
		}
	case *parsed.BinaryOperation:
		if e.Op == parsed.SUB {
			return e.Lhs, e.Rhs, true
		}
	}
	//
	return nil, nil, false
}
