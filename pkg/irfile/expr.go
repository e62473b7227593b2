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
package irfile

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-pil/pkg/ast/analyzed"
	"github.com/consensys/go-pil/pkg/ast/parsed"
	"github.com/consensys/go-pil/pkg/ast/types"
	"gopkg.in/yaml.v3"
)

// ExprNode encodes an expression in either representation.  Exactly one of
// the variant fields must be given (with Next, Lhs, Rhs, Body, Args, At,
// Then, Else and Arms as companions).  As a shorthand, a plain integer is a
// number, whilst any other plain scalar is a reference, where a trailing
// prime marks an access to the next row.
type ExprNode struct {
	Ref    *string     `yaml:"ref"`
	Next   bool        `yaml:"next"`
	Pub    *string     `yaml:"pub"`
	Num    *string     `yaml:"num"`
	Str    *string     `yaml:"str"`
	Op     *string     `yaml:"op"`
	Lhs    *ExprNode   `yaml:"lhs"`
	Rhs    *ExprNode   `yaml:"rhs"`
	Neg    *ExprNode   `yaml:"neg"`
	Not    *ExprNode   `yaml:"not"`
	Prime  *ExprNode   `yaml:"prime"`
	Lambda *[]string   `yaml:"lambda"`
	Body   *ExprNode   `yaml:"body"`
	Call   *ExprNode   `yaml:"call"`
	Args   []ExprNode  `yaml:"args"`
	Index  *ExprNode   `yaml:"index"`
	At     *ExprNode   `yaml:"at"`
	Tuple  *[]ExprNode `yaml:"tuple"`
	Array  *[]ExprNode `yaml:"array"`
	If     *ExprNode   `yaml:"if"`
	Then   *ExprNode   `yaml:"then"`
	Else   *ExprNode   `yaml:"else"`
	Match  *ExprNode   `yaml:"match"`
	Arms   []ArmNode   `yaml:"arms"`
	// Line in the source document (for error reporting)
	line int
}

// ArmNode encodes an arm of a match expression.  A missing pattern (or the
// pattern "_") matches anything.
type ArmNode struct {
	Pattern *ExprNode `yaml:"pattern"`
	Value   ExprNode  `yaml:"value"`
}

var (
	exprFields = []string{"ref", "next", "pub", "num", "str", "op", "lhs", "rhs", "neg", "not", "prime",
		"lambda", "body", "call", "args", "index", "at", "tuple", "array", "if", "then", "else", "match", "arms"}
	armFields  = []string{"pattern", "value"}
	typeFields = []string{"array", "length", "tuple", "fn", "ret"}
)

// UnmarshalYAML implementation for the yaml.Unmarshaler interface.
func (p *ArmNode) UnmarshalYAML(node *yaml.Node) error {
	type plain ArmNode
	//
	if err := checkFields(node, armFields); err != nil {
		return err
	}
	//
	return node.Decode((*plain)(p))
}

// UnmarshalYAML implementation for the yaml.Unmarshaler interface.
func (p *ExprNode) UnmarshalYAML(node *yaml.Node) error {
	type plain ExprNode
	//
	p.line = node.Line
	//
	if node.Kind != yaml.ScalarNode {
		if err := checkFields(node, exprFields); err != nil {
			return err
		}
		//
		return node.Decode((*plain)(p))
	}
	//
	value := node.Value
	//
	switch tag := node.ShortTag(); {
	case tag == "!!int" || (tag == "!!float" && isInteger(value)):
		// Integers beyond 64 bits are resolved as floats.
		p.Num = &value
	case tag != "!!str":
		return fmt.Errorf("line %d: unexpected %s scalar \"%s\" in expression", node.Line, tag, value)
	case strings.HasSuffix(value, "'"):
		value = strings.TrimSuffix(value, "'")
		p.Ref, p.Next = &value, true
	default:
		p.Ref = &value
	}
	//
	return nil
}

func isInteger(value string) bool {
	_, ok := new(big.Int).SetString(value, 10)
	return ok
}

// Check that a mapping node only contains known fields.  Nested documents are
// decoded afresh, so the strictness of the top-level decoder does not reach
// them.
func checkFields(node *yaml.Node, fields []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	//
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; !slices.Contains(fields, key.Value) {
			return fmt.Errorf("line %d: unknown field \"%s\"", key.Line, key.Value)
		}
	}
	//
	return nil
}

func (p *ExprNode) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// Determine which variant this node encodes, checking that exactly one is
// given and that any companion fields belong to it.
func (p *ExprNode) variant() (string, error) {
	var (
		variants = []struct {
			name  string
			given bool
		}{
			{"ref", p.Ref != nil}, {"pub", p.Pub != nil}, {"num", p.Num != nil}, {"str", p.Str != nil},
			{"op", p.Op != nil}, {"neg", p.Neg != nil}, {"not", p.Not != nil}, {"prime", p.Prime != nil},
			{"lambda", p.Lambda != nil}, {"call", p.Call != nil}, {"index", p.Index != nil},
			{"tuple", p.Tuple != nil}, {"array", p.Array != nil}, {"if", p.If != nil},
			{"match", p.Match != nil},
		}
		companions = []struct {
			name, owner string
			given       bool
		}{
			{"next", "ref", p.Next}, {"lhs", "op", p.Lhs != nil}, {"rhs", "op", p.Rhs != nil},
			{"body", "lambda", p.Body != nil}, {"args", "call", p.Args != nil}, {"at", "index", p.At != nil},
			{"then", "if", p.Then != nil}, {"else", "if", p.Else != nil}, {"arms", "match", p.Arms != nil},
		}
		variant string
	)
	//
	for _, v := range variants {
		if !v.given {
			continue
		} else if variant != "" {
			return "", p.errorf("conflicting fields \"%s\" and \"%s\"", variant, v.name)
		}
		//
		variant = v.name
	}
	//
	if variant == "" {
		return "", p.errorf("empty expression")
	}
	//
	for _, c := range companions {
		if c.given && c.owner != variant {
			return "", p.errorf("field \"%s\" not permitted with \"%s\"", c.name, variant)
		}
	}
	//
	return variant, nil
}

// ToExpression converts this node into a pre-analysis expression.
func (p *ExprNode) ToExpression() (parsed.Expression, error) {
	variant, err := p.variant()
	if err != nil {
		return nil, err
	}
	//
	switch variant {
	case "ref":
		if p.Next {
			return &parsed.UnaryOperation{Op: parsed.NEXT, Arg: parsed.NewReference(*p.Ref)}, nil
		}
		//
		return parsed.NewReference(*p.Ref), nil
	case "pub":
		return &parsed.PublicReference{Name: *p.Pub}, nil
	case "num":
		value, ok := new(big.Int).SetString(*p.Num, 0)
		if !ok {
			return nil, p.errorf("invalid number \"%s\"", *p.Num)
		}
		//
		return &parsed.Number{Value: value}, nil
	case "str":
		return &parsed.StringLiteral{Value: *p.Str}, nil
	case "op":
		return p.toBinary()
	case "neg":
		return p.toUnary(parsed.MINUS, p.Neg)
	case "not":
		return p.toUnary(parsed.LOGICAL_NOT, p.Not)
	case "prime":
		return p.toUnary(parsed.NEXT, p.Prime)
	case "lambda":
		body, err := p.required("body", p.Body)
		if err != nil {
			return nil, err
		}
		//
		return parsed.NewLambda(body, *p.Lambda...), nil
	case "call":
		fn, err := p.Call.ToExpression()
		if err != nil {
			return nil, err
		}
		//
		args, err := toExpressions(p.Args)
		//
		return &parsed.FunctionCall{Function: fn, Args: args}, err
	case "index":
		return p.toIndexAccess()
	case "tuple":
		items, err := toExpressions(*p.Tuple)
		return &parsed.Tuple{Items: items}, err
	case "array":
		items, err := toExpressions(*p.Array)
		return &parsed.ArrayLiteral{Items: items}, err
	case "if":
		return p.toIf()
	case "match":
		return p.toMatch()
	}
	//
	panic("unreachable")
}

func (p *ExprNode) toBinary() (parsed.Expression, error) {
	op, ok := parsed.ParseBinaryOperator(*p.Op)
	if !ok {
		return nil, p.errorf("unknown operator \"%s\"", *p.Op)
	}
	//
	lhs, err := p.required("lhs", p.Lhs)
	if err != nil {
		return nil, err
	}
	//
	rhs, err := p.required("rhs", p.Rhs)
	if err != nil {
		return nil, err
	}
	//
	return parsed.NewBinary(lhs, op, rhs), nil
}

func (p *ExprNode) toUnary(op parsed.UnaryOperator, node *ExprNode) (parsed.Expression, error) {
	arg, err := node.ToExpression()
	if err != nil {
		return nil, err
	}
	//
	return &parsed.UnaryOperation{Op: op, Arg: arg}, nil
}

func (p *ExprNode) toIndexAccess() (parsed.Expression, error) {
	arr, err := p.Index.ToExpression()
	if err != nil {
		return nil, err
	}
	//
	index, err := p.required("at", p.At)
	if err != nil {
		return nil, err
	}
	//
	return &parsed.IndexAccess{Array: arr, Index: index}, nil
}

func (p *ExprNode) toIf() (parsed.Expression, error) {
	cond, err := p.If.ToExpression()
	if err != nil {
		return nil, err
	}
	//
	then, err := p.required("then", p.Then)
	if err != nil {
		return nil, err
	}
	//
	otherwise, err := p.required("else", p.Else)
	if err != nil {
		return nil, err
	}
	//
	return &parsed.IfExpression{Condition: cond, Then: then, Else: otherwise}, nil
}

func (p *ExprNode) toMatch() (parsed.Expression, error) {
	scrutinee, err := p.Match.ToExpression()
	if err != nil {
		return nil, err
	}
	//
	arms := make([]parsed.MatchArm, len(p.Arms))
	//
	for i, arm := range p.Arms {
		if arm.Pattern != nil && (arm.Pattern.Ref == nil || *arm.Pattern.Ref != "_") {
			if arms[i].Pattern, err = arm.Pattern.ToExpression(); err != nil {
				return nil, err
			}
		}
		//
		if arms[i].Value, err = arm.Value.ToExpression(); err != nil {
			return nil, err
		}
	}
	//
	return &parsed.MatchExpression{Scrutinee: scrutinee, Arms: arms}, nil
}

// Convert a companion field which must be present.
func (p *ExprNode) required(field string, node *ExprNode) (parsed.Expression, error) {
	if node == nil {
		return nil, p.errorf("missing \"%s\"", field)
	}
	//
	return node.ToExpression()
}

// ToAlgebraic converts this node into an algebraic expression.  Only column
// references, public references, numbers, negation and the operators +, -, *
// and ** are permitted.
func (p *ExprNode) ToAlgebraic() (analyzed.AlgebraicExpression, error) {
	variant, err := p.variant()
	if err != nil {
		return nil, err
	}
	//
	switch variant {
	case "ref":
		return &analyzed.AlgebraicReference{Name: *p.Ref, Next: p.Next}, nil
	case "pub":
		return &analyzed.PublicReference{Name: *p.Pub}, nil
	case "num":
		var number analyzed.Number
		//
		if _, err := number.Value.SetString(*p.Num); err != nil {
			return nil, p.errorf("invalid number \"%s\" (%s)", *p.Num, err)
		}
		//
		return &number, nil
	case "neg":
		arg, err := p.Neg.ToAlgebraic()
		if err != nil {
			return nil, err
		}
		//
		return analyzed.NewNegation(arg), nil
	case "op":
		return p.toAlgebraicBinary()
	}
	//
	return nil, p.errorf("expression is not algebraic")
}

func (p *ExprNode) toAlgebraicBinary() (analyzed.AlgebraicExpression, error) {
	var op analyzed.AlgebraicBinaryOperator
	//
	switch *p.Op {
	case "+":
		op = analyzed.ADD
	case "-":
		op = analyzed.SUB
	case "*":
		op = analyzed.MUL
	case "**":
		op = analyzed.POW
	default:
		return nil, p.errorf("operator \"%s\" is not algebraic", *p.Op)
	}
	//
	if p.Lhs == nil || p.Rhs == nil {
		return nil, p.errorf("missing operand for \"%s\"", *p.Op)
	}
	//
	lhs, err := p.Lhs.ToAlgebraic()
	if err != nil {
		return nil, err
	}
	//
	rhs, err := p.Rhs.ToAlgebraic()
	if err != nil {
		return nil, err
	}
	//
	return &analyzed.BinaryOperation{Lhs: lhs, Op: op, Rhs: rhs}, nil
}

func toExpressions(nodes []ExprNode) ([]parsed.Expression, error) {
	var (
		exprs = make([]parsed.Expression, len(nodes))
		err   error
	)
	//
	for i := range nodes {
		if exprs[i], err = nodes[i].ToExpression(); err != nil {
			return nil, err
		}
	}
	//
	return exprs, nil
}

func toAlgebraics(nodes []ExprNode) ([]analyzed.AlgebraicExpression, error) {
	var (
		exprs = make([]analyzed.AlgebraicExpression, len(nodes))
		err   error
	)
	//
	for i := range nodes {
		if exprs[i], err = nodes[i].ToAlgebraic(); err != nil {
			return nil, err
		}
	}
	//
	return exprs, nil
}

// ============================================================================
// Types
// ============================================================================

// TypeNode encodes a type.  A plain scalar names an elementary type (or
// "col"), otherwise exactly one of Array, Tuple or Fn must be given.
type TypeNode struct {
	Name   string      `yaml:"-"`
	Array  *TypeNode   `yaml:"array"`
	Length *uint64     `yaml:"length"`
	Tuple  *[]TypeNode `yaml:"tuple"`
	Fn     *[]TypeNode `yaml:"fn"`
	Ret    *TypeNode   `yaml:"ret"`
}

// UnmarshalYAML implementation for the yaml.Unmarshaler interface.
func (p *TypeNode) UnmarshalYAML(node *yaml.Node) error {
	type plain TypeNode
	//
	if node.Kind == yaml.ScalarNode {
		p.Name = node.Value
		return nil
	} else if err := checkFields(node, typeFields); err != nil {
		return err
	}
	//
	return node.Decode((*plain)(p))
}

var elementaryTypes = map[string]types.Type{
	"bool":   types.Bool(),
	"int":    types.Int(),
	"fe":     types.Fe(),
	"string": types.String(),
	"expr":   types.Expr(),
	"constr": types.Constr(),
	"col":    types.Col(),
}

// ToType converts this node into a type.
func (p *TypeNode) ToType() (types.Type, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	//
	switch {
	case p.Name != "":
		if t, ok := elementaryTypes[p.Name]; ok {
			return t, nil
		}
		//
		return nil, fmt.Errorf("unknown type \"%s\"", p.Name)
	case p.Array != nil:
		base, err := p.Array.ToType()
		if err != nil {
			return nil, err
		} else if p.Length != nil {
			return types.NewArrayType(base, *p.Length), nil
		}
		//
		return types.NewUnboundedArrayType(base), nil
	case p.Tuple != nil:
		items, err := toTypes(*p.Tuple)
		if err != nil {
			return nil, err
		}
		//
		return types.NewTupleType(items...), nil
	case p.Fn != nil:
		if p.Ret == nil {
			return nil, errors.New("function type requires \"ret\"")
		}
		//
		params, err := toTypes(*p.Fn)
		if err != nil {
			return nil, err
		}
		//
		ret, err := p.Ret.ToType()
		if err != nil {
			return nil, err
		}
		//
		return types.NewFunctionType(ret, params...), nil
	}
	//
	return nil, errors.New("empty type")
}

// Check at most one variant is given, and that companion fields belong to it.
func (p *TypeNode) check() error {
	var given []string
	//
	for _, v := range []struct {
		name  string
		given bool
	}{{"name", p.Name != ""}, {"array", p.Array != nil}, {"tuple", p.Tuple != nil}, {"fn", p.Fn != nil}} {
		if v.given {
			given = append(given, v.name)
		}
	}
	//
	switch {
	case len(given) > 1:
		return fmt.Errorf("conflicting type fields \"%s\" and \"%s\"", given[0], given[1])
	case p.Length != nil && p.Array == nil:
		return errors.New("field \"length\" requires \"array\"")
	case p.Ret != nil && p.Fn == nil:
		return errors.New("field \"ret\" requires \"fn\"")
	}
	//
	return nil
}

func toTypes(nodes []TypeNode) ([]types.Type, error) {
	var (
		items = make([]types.Type, len(nodes))
		err   error
	)
	//
	for i := range nodes {
		if items[i], err = nodes[i].ToType(); err != nil {
			return nil, err
		}
	}
	//
	return items, nil
}
