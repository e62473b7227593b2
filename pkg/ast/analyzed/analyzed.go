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
	"errors"
	"fmt"

	"github.com/consensys/go-pil/pkg/ast/types"
	"github.com/consensys/go-pil/pkg/util"
)

// DEFAULT_DEGREE is the degree reported in namespace headers when the IR does
// not specify one.
const DEFAULT_DEGREE = uint64(0)

// Definition associates a symbol with its (optional) value.
type Definition struct {
	Symbol Symbol
	// Value of this symbol, or nil if it has none.
	Value FunctionValueDefinition
}

// IntermediateColumn associates an intermediate column with one algebraic
// expression per array element (or exactly one, for a scalar column).
type IntermediateColumn struct {
	Symbol      Symbol
	Expressions []AlgebraicExpression
}

// Analyzed is the fully resolved representation of a constraint file.  It is
// constructed once by analysis and is not modified afterwards; in particular,
// it can be printed concurrently.
type Analyzed struct {
	// Number of rows in the execution trace (if known).
	Degree util.Option[uint64]
	// Symbols other than intermediate columns, keyed by qualified name.
	Definitions map[string]Definition
	// Intermediate columns, keyed by qualified name.
	IntermediateColumns map[string]IntermediateColumn
	// Public declarations, keyed by qualified name.
	PublicDeclarations map[string]PublicDeclaration
	// Identities in the order they were declared.
	Identities []Identity[AlgebraicExpression]
	// Order of statements in the original source.
	SourceOrder []StatementIdentifier
}

// NewAnalyzed constructs an empty IR with an optional degree.
func NewAnalyzed(degree util.Option[uint64]) *Analyzed {
	return &Analyzed{
		Degree:              degree,
		Definitions:         make(map[string]Definition),
		IntermediateColumns: make(map[string]IntermediateColumn),
		PublicDeclarations:  make(map[string]PublicDeclaration),
	}
}

// AddDefinition registers a symbol (and optional value) at the end of the
// source order.
func (p *Analyzed) AddDefinition(def Definition) {
	p.Definitions[def.Symbol.Name] = def
	p.SourceOrder = append(p.SourceOrder, &DefinitionStatement{def.Symbol.Name})
}

// AddIntermediateColumn registers an intermediate column at the end of the
// source order.
func (p *Analyzed) AddIntermediateColumn(symbol Symbol, exprs ...AlgebraicExpression) {
	p.IntermediateColumns[symbol.Name] = IntermediateColumn{symbol, exprs}
	p.SourceOrder = append(p.SourceOrder, &DefinitionStatement{symbol.Name})
}

// AddPublicDeclaration registers a public declaration at the end of the source
// order.
func (p *Analyzed) AddPublicDeclaration(decl PublicDeclaration) {
	p.PublicDeclarations[decl.Name] = decl
	p.SourceOrder = append(p.SourceOrder, &PublicDeclarationStatement{decl.Name})
}

// AddIdentity registers an identity at the end of the source order.
func (p *Analyzed) AddIdentity(identity Identity[AlgebraicExpression]) {
	index := uint(len(p.Identities))
	p.Identities = append(p.Identities, identity)
	p.SourceOrder = append(p.SourceOrder, &IdentityStatement{index})
}

// CommitmentCount returns the number of witness columns, where each element
// of an array column counts separately.
func (p *Analyzed) CommitmentCount() uint64 {
	return p.countColumns(WITNESS_COLUMN)
}

// ConstantCount returns the number of fixed columns, where each element of an
// array column counts separately.
func (p *Analyzed) ConstantCount() uint64 {
	return p.countColumns(FIXED_COLUMN)
}

// IntermediateCount returns the number of intermediate columns, where each
// element of an array column counts separately.
func (p *Analyzed) IntermediateCount() uint64 {
	var count uint64
	//
	for _, col := range p.IntermediateColumns {
		count += col.Symbol.Width()
	}
	//
	return count
}

// SymbolsOfKind returns the number of symbols of the given kind in the symbol
// table (i.e. ignoring array widths).
func (p *Analyzed) SymbolsOfKind(kind SymbolKind) uint {
	var count uint
	//
	for _, def := range p.Definitions {
		if def.Symbol.Kind == kind {
			count++
		}
	}
	//
	return count
}

// IdentitiesOfKind returns all identities of a given kind, in declaration
// order.
func (p *Analyzed) IdentitiesOfKind(kind IdentityKind) []Identity[AlgebraicExpression] {
	var identities []Identity[AlgebraicExpression]
	//
	for _, id := range p.Identities {
		if id.Kind == kind {
			identities = append(identities, id)
		}
	}
	//
	return identities
}

func (p *Analyzed) countColumns(kind SymbolKind) uint64 {
	var count uint64
	//
	for _, def := range p.Definitions {
		if def.Symbol.Kind == kind {
			count += def.Symbol.Width()
		}
	}
	//
	return count
}

// ============================================================================
// Validation
// ============================================================================

// Validate checks the structural invariants which printing relies upon,
// returning every violation found.  A nil result means the IR can be printed.
func (p *Analyzed) Validate() error {
	var errs []error
	//
	for _, stmt := range p.SourceOrder {
		var err error
		//
		switch s := stmt.(type) {
		case *DefinitionStatement:
			err = p.checkDefinitionStatement(s.Name)
		case *PublicDeclarationStatement:
			if decl, ok := p.PublicDeclarations[s.Name]; !ok {
				err = fmt.Errorf("unknown public declaration \"%s\"", s.Name)
			} else {
				err = checkName(decl.Name)
			}
		case *IdentityStatement:
			err = p.checkIdentityStatement(s.Index)
		default:
			err = fmt.Errorf("unknown statement %v", stmt)
		}
		//
		if err != nil {
			errs = append(errs, err)
		}
	}
	//
	return errors.Join(errs...)
}

func (p *Analyzed) checkDefinitionStatement(name string) error {
	def, isSymbol := p.Definitions[name]
	col, isIntermediate := p.IntermediateColumns[name]
	//
	switch {
	case isSymbol && isIntermediate:
		return fmt.Errorf("\"%s\" is both a symbol and an intermediate column", name)
	case isSymbol:
		return checkDefinition(&def)
	case isIntermediate:
		return checkIntermediateColumn(&col)
	}
	//
	return fmt.Errorf("unknown definition \"%s\"", name)
}

func (p *Analyzed) checkIdentityStatement(index uint) error {
	if index >= uint(len(p.Identities)) {
		return fmt.Errorf("identity index %d out of bounds", index)
	}
	//
	if id := p.Identities[index]; id.Kind == POLYNOMIAL && id.Left.Selector.IsEmpty() {
		return fmt.Errorf("polynomial identity %d has no expression", id.ID)
	}
	//
	return nil
}

// Check the payload of a symbol is legal for its kind.
func checkDefinition(def *Definition) error {
	var (
		sym   = &def.Symbol
		value = def.Value
	)
	//
	if err := checkName(sym.Name); err != nil {
		return err
	}
	//
	switch sym.Kind {
	case WITNESS_COLUMN:
		if sym.IsArray() && value != nil {
			return fmt.Errorf("witness column array \"%s\" cannot have a definition", sym.Name)
		} else if _, ok := value.(*ArrayDefinition); ok {
			return fmt.Errorf("witness column \"%s\" cannot have an array definition", sym.Name)
		}
	case FIXED_COLUMN:
		// The size of a fixed array is only recoverable from its type.
		if e, ok := value.(*ExpressionDefinition); sym.IsArray() && (!ok || e.Type == nil) {
			return fmt.Errorf("fixed column array \"%s\" requires a typed definition", sym.Name)
		}
	case CONSTANT:
		if e, ok := value.(*ExpressionDefinition); !ok || e.Type == nil || !e.Type.Equals(types.Fe()) {
			return fmt.Errorf("invalid constant value for \"%s\": %v", sym.Name, value)
		}
	case INTERMEDIATE_COLUMN:
		return fmt.Errorf("intermediate column \"%s\" found in symbol table", sym.Name)
	case OTHER:
		return nil
	default:
		return fmt.Errorf("unknown kind for symbol \"%s\"", sym.Name)
	}
	//
	return nil
}

func checkIntermediateColumn(col *IntermediateColumn) error {
	var (
		sym = &col.Symbol
		n   = uint64(len(col.Expressions))
	)
	//
	if err := checkName(sym.Name); err != nil {
		return err
	} else if sym.Kind != INTERMEDIATE_COLUMN {
		return fmt.Errorf("intermediate column \"%s\" has kind %s", sym.Name, sym.Kind)
	} else if sym.IsArray() && sym.Length.Unwrap() != n {
		return fmt.Errorf("intermediate column \"%s\" has %d elements, but %d expressions",
			sym.Name, sym.Length.Unwrap(), n)
	} else if !sym.IsArray() && n != 1 {
		return fmt.Errorf("intermediate column \"%s\" requires exactly one expression (found %d)",
			sym.Name, n)
	}
	//
	return nil
}

// Check a fully-qualified name has a local part, and no empty namespace
// segments (e.g. "Foo." or "A..x").
func checkName(name string) error {
	if !util.ParsePath(name).IsQualifiedName() {
		return fmt.Errorf("invalid name \"%s\"", name)
	}
	//
	return nil
}
