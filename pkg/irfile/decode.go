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
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/consensys/go-pil/pkg/ast/analyzed"
	"github.com/consensys/go-pil/pkg/util"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadFile reads and decodes an IR document from a file.  Files with a ".bz2"
// extension are decompressed first.
func ReadFile(filename string) (*analyzed.Analyzed, error) {
	data, err := readInputFile(filename)
	if err != nil {
		return nil, err
	}
	//
	ir, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return ir, nil
}

func readInputFile(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	// apply compression
	var reader io.Reader
	// check extension
	switch path.Ext(filename) {
	case ".bz2":
		reader = bzip2.NewReader(file)
	default:
		reader = file
	}
	//
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return data, nil
}

// Decode an IR document (in YAML or JSON form).  The result is guaranteed to
// satisfy the invariants required for printing.
func Decode(data []byte) (*analyzed.Analyzed, error) {
	var (
		doc     Document
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	//
	ir, err := doc.ToAnalyzed()
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("decoded %d definitions, %d intermediate columns, %d identities and %d public declarations",
		len(ir.Definitions), len(ir.IntermediateColumns), len(ir.Identities), len(ir.PublicDeclarations))
	//
	if err := ir.Validate(); err != nil {
		return nil, fmt.Errorf("malformed IR: %w", err)
	}
	//
	return ir, nil
}

// ToAnalyzed converts this document into an analyzed IR.
func (p *Document) ToAnalyzed() (*analyzed.Analyzed, error) {
	ir := analyzed.NewAnalyzed(util.OptionOf(p.Degree))
	//
	for i := range p.Definitions {
		def, err := p.Definitions[i].ToDefinition()
		if err != nil {
			return nil, err
		} else if err := checkUnique(ir, def.Symbol.Name); err != nil {
			return nil, err
		}
		//
		ir.Definitions[def.Symbol.Name] = def
	}
	//
	for _, node := range p.Intermediates {
		exprs, err := toAlgebraics(node.Exprs)
		if err != nil {
			return nil, fmt.Errorf("intermediate column \"%s\": %w", node.Name, err)
		} else if err := checkUnique(ir, node.Name); err != nil {
			return nil, err
		}
		//
		symbol := analyzed.NewIntermediateSymbol(node.Name, util.OptionOf(node.Length))
		ir.IntermediateColumns[node.Name] = analyzed.IntermediateColumn{Symbol: symbol, Expressions: exprs}
	}
	//
	for i := range p.Identities {
		id, err := p.Identities[i].ToIdentity(uint64(i))
		if err != nil {
			return nil, fmt.Errorf("identity %d: %w", i, err)
		}
		//
		ir.Identities = append(ir.Identities, id)
	}
	//
	for _, node := range p.Publics {
		if _, ok := ir.PublicDeclarations[node.Name]; ok {
			return nil, fmt.Errorf("duplicate public declaration \"%s\"", node.Name)
		}
		//
		id := uint64(len(ir.PublicDeclarations))
		ir.PublicDeclarations[node.Name] = analyzed.PublicDeclaration{
			ID: id, Name: node.Name, Column: node.Column, ArrayIndex: util.OptionOf(node.Index), Row: node.Row,
		}
	}
	//
	order, err := p.sourceOrder()
	if err != nil {
		return nil, err
	}
	//
	ir.SourceOrder = order
	//
	return ir, nil
}

func (p *Document) sourceOrder() ([]analyzed.StatementIdentifier, error) {
	var order []analyzed.StatementIdentifier
	//
	if len(p.SourceOrder) == 0 {
		log.Debug("no source order given, using declaration order")
		//
		for _, def := range p.Definitions {
			order = append(order, &analyzed.DefinitionStatement{Name: def.Name})
		}
		//
		for _, col := range p.Intermediates {
			order = append(order, &analyzed.DefinitionStatement{Name: col.Name})
		}
		//
		for _, pub := range p.Publics {
			order = append(order, &analyzed.PublicDeclarationStatement{Name: pub.Name})
		}
		//
		for i := range p.Identities {
			order = append(order, &analyzed.IdentityStatement{Index: uint(i)})
		}
		//
		return order, nil
	}
	//
	for i, stmt := range p.SourceOrder {
		switch {
		case stmt.Def != nil && stmt.Public == nil && stmt.Identity == nil:
			order = append(order, &analyzed.DefinitionStatement{Name: *stmt.Def})
		case stmt.Public != nil && stmt.Def == nil && stmt.Identity == nil:
			order = append(order, &analyzed.PublicDeclarationStatement{Name: *stmt.Public})
		case stmt.Identity != nil && stmt.Def == nil && stmt.Public == nil:
			order = append(order, &analyzed.IdentityStatement{Index: *stmt.Identity})
		default:
			return nil, fmt.Errorf("source order entry %d must have exactly one of def, public or identity", i)
		}
	}
	//
	return order, nil
}

func checkUnique(ir *analyzed.Analyzed, name string) error {
	_, isSymbol := ir.Definitions[name]
	_, isIntermediate := ir.IntermediateColumns[name]
	//
	if isSymbol || isIntermediate {
		return fmt.Errorf("duplicate definition \"%s\"", name)
	}
	//
	return nil
}

// ToDefinition converts this node into a symbol definition.
func (p *DefinitionNode) ToDefinition() (analyzed.Definition, error) {
	var def analyzed.Definition
	//
	kind, ok := analyzed.ParseSymbolKind(p.Kind)
	if !ok || kind == analyzed.INTERMEDIATE_COLUMN {
		return def, fmt.Errorf("definition \"%s\": invalid kind \"%s\"", p.Name, p.Kind)
	}
	//
	def.Symbol = analyzed.Symbol{Name: p.Name, Kind: kind, Length: util.OptionOf(p.Length)}
	//
	value, err := p.toValue()
	if err != nil {
		return def, fmt.Errorf("definition \"%s\": %w", p.Name, err)
	}
	//
	def.Value = value
	//
	return def, nil
}

func (p *DefinitionNode) toValue() (analyzed.FunctionValueDefinition, error) {
	var given uint
	//
	for _, present := range []bool{p.Value != nil, p.Query != nil, p.Array != nil} {
		if present {
			given++
		}
	}
	//
	switch {
	case given > 1:
		return nil, errors.New("at most one of value, query or array permitted")
	case p.Type != nil && p.Value == nil:
		return nil, errors.New("type given without value")
	case p.Value != nil:
		expr, err := p.Value.ToExpression()
		if err != nil {
			return nil, err
		}
		//
		def := analyzed.NewExpressionDefinition(expr, nil)
		//
		if p.Type != nil {
			if def.Type, err = p.Type.ToType(); err != nil {
				return nil, err
			}
		}
		//
		return def, nil
	case p.Query != nil:
		expr, err := p.Query.ToExpression()
		if err != nil {
			return nil, err
		}
		//
		return &analyzed.QueryDefinition{Expr: expr}, nil
	case p.Array != nil:
		items := make([]analyzed.RepeatedArray, len(p.Array))
		//
		for i, item := range p.Array {
			pattern, err := toExpressions(item.Pattern)
			if err != nil {
				return nil, err
			}
			//
			items[i] = analyzed.RepeatedArray{Pattern: pattern, Size: item.Size}
		}
		//
		return &analyzed.ArrayDefinition{Items: items}, nil
	}
	// No value at all
	return nil, nil
}

// ToIdentity converts this node into an identity over algebraic expressions.
// The index is used as identifier when none is given.
func (p *IdentityNode) ToIdentity(index uint64) (analyzed.Identity[analyzed.AlgebraicExpression], error) {
	var (
		id       = index
		identity analyzed.Identity[analyzed.AlgebraicExpression]
	)
	//
	if p.ID != nil {
		id = *p.ID
	}
	//
	kind, ok := analyzed.ParseIdentityKind(p.Kind)
	if !ok {
		return identity, fmt.Errorf("unknown identity kind \"%s\"", p.Kind)
	}
	//
	if kind == analyzed.POLYNOMIAL {
		if p.Expr == nil || p.Left != nil || p.Right != nil {
			return identity, errors.New("polynomial identity requires exactly \"expr\"")
		}
		//
		expr, err := p.Expr.ToAlgebraic()
		if err != nil {
			return identity, err
		}
		//
		return analyzed.NewPolynomialIdentity(id, expr), nil
	} else if p.Expr != nil || p.Left == nil || p.Right == nil {
		return identity, fmt.Errorf("%s identity requires exactly \"left\" and \"right\"", kind)
	}
	//
	left, err := p.Left.toSelected()
	if err != nil {
		return identity, err
	}
	//
	right, err := p.Right.toSelected()
	if err != nil {
		return identity, err
	}
	//
	return analyzed.NewIdentity(id, kind, left, right), nil
}

func (p *SelectedNode) toSelected() (analyzed.SelectedExpressions[analyzed.AlgebraicExpression], error) {
	var selected analyzed.SelectedExpressions[analyzed.AlgebraicExpression]
	//
	exprs, err := toAlgebraics(p.Exprs)
	if err != nil {
		return selected, err
	}
	//
	if p.Selector == nil {
		return analyzed.NewSelectedExpressions(exprs...), nil
	}
	//
	selector, err := p.Selector.ToAlgebraic()
	if err != nil {
		return selected, err
	}
	//
	return analyzed.NewGuardedExpressions(selector, exprs...), nil
}
