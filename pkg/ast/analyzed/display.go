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
	"io"
	"strings"

	"github.com/consensys/go-pil/pkg/ast/parsed"
	"github.com/consensys/go-pil/pkg/ast/types"
	"github.com/consensys/go-pil/pkg/util"
	log "github.com/sirupsen/logrus"
)

// INDENT is used for statements within a (non-global) namespace, and for all
// identities.
const INDENT = "    "

// String returns the textual form of this IR.  See WriteTo.
func (p *Analyzed) String() string {
	var builder strings.Builder
	// Writing to a builder cannot fail.
	_, _ = p.WriteTo(&builder)
	//
	return builder.String()
}

// WriteTo writes the textual form of this IR in source order, inserting a
// namespace header whenever the namespace of consecutive declarations
// changes.  The output is intended for debugging: it is not guaranteed to
// reproduce the original source, nor even to parse.  This panics if the IR
// violates an invariant checked by Validate.
func (p *Analyzed) WriteTo(w io.Writer) (int64, error) {
	pw := &printer{out: w}
	ns := namespaceTracker{degree: p.Degree.UnwrapOr(DEFAULT_DEGREE)}
	//
	for _, stmt := range p.SourceOrder {
		switch s := stmt.(type) {
		case *DefinitionStatement:
			p.writeDefinition(pw, &ns, s.Name)
		case *PublicDeclarationStatement:
			decl, ok := p.PublicDeclarations[s.Name]
			if !ok {
				panic(fmt.Sprintf("unknown public declaration \"%s\"", s.Name))
			}
			//
			writePublicDeclaration(pw, &ns, &decl)
		case *IdentityStatement:
			pw.printf("%s%s\n", INDENT, p.Identities[s.Index])
		default:
			panic("unreachable")
		}
		// Stop early on the first write error.
		if pw.err != nil {
			break
		}
	}
	//
	return pw.count, pw.err
}

func (p *Analyzed) writeDefinition(pw *printer, ns *namespaceTracker, name string) {
	if def, ok := p.Definitions[name]; ok {
		if _, ok := p.IntermediateColumns[name]; ok {
			panic(fmt.Sprintf("\"%s\" is both a symbol and an intermediate column", name))
		}
		//
		writeSymbol(pw, ns, &def)
	} else if col, ok := p.IntermediateColumns[name]; ok {
		writeIntermediateColumn(pw, ns, &col)
	} else {
		panic(fmt.Sprintf("unknown definition \"%s\"", name))
	}
}

func writeSymbol(pw *printer, ns *namespaceTracker, def *Definition) {
	if err := checkDefinition(def); err != nil {
		panic(err.Error())
	}
	//
	var (
		name, indent = ns.enter(pw, def.Symbol.Name)
		value        = def.Value
	)
	//
	switch def.Symbol.Kind {
	case WITNESS_COLUMN:
		pw.printf("%scol witness %s", indent, name)
		//
		if def.Symbol.IsArray() {
			pw.printf("[%d]", def.Symbol.Length.Unwrap())
		}
	case FIXED_COLUMN:
		// The array size (if any) is part of the type annotation.
		pw.printf("%scol fixed %s", indent, name)
	case CONSTANT:
		e := value.(*ExpressionDefinition)
		pw.printf("%sconstant %s = %s;\n", indent, name, e.Expr)
		//
		return
	case OTHER:
		pw.printf("%slet %s", indent, name)
	default:
		panic("unreachable")
	}
	//
	if value != nil {
		pw.printf("%s", value)
	}
	//
	pw.printf(";\n")
}

func writeIntermediateColumn(pw *printer, ns *namespaceTracker, col *IntermediateColumn) {
	if err := checkIntermediateColumn(col); err != nil {
		panic(err.Error())
	}
	//
	name, indent := ns.enter(pw, col.Symbol.Name)
	//
	if col.Symbol.IsArray() {
		exprs := make([]string, len(col.Expressions))
		for i, e := range col.Expressions {
			exprs[i] = e.String()
		}
		//
		pw.printf("%scol %s[%d] = [%s];\n", indent, name, col.Symbol.Length.Unwrap(),
			strings.Join(exprs, ", "))
	} else {
		pw.printf("%scol %s = %s;\n", indent, name, col.Expressions[0])
	}
}

func writePublicDeclaration(pw *printer, ns *namespaceTracker, decl *PublicDeclaration) {
	var index string
	//
	if err := checkName(decl.Name); err != nil {
		panic(err.Error())
	}
	//
	name, indent := ns.enter(pw, decl.Name)
	//
	if decl.ArrayIndex.HasValue() {
		index = fmt.Sprintf("[%d]", decl.ArrayIndex.Unwrap())
	}
	//
	pw.printf("%spublic %s = %s%s(%d);\n", indent, name, decl.Column, index, decl.Row)
}

// ============================================================================
// Namespaces
// ============================================================================

// namespaceTracker records the namespace of the most recent declaration
// during a single print.
type namespaceTracker struct {
	current util.Path
	degree  uint64
}

// Enter the namespace of a fully-qualified name, emitting a header if it
// differs from the current one.  This returns the local name, along with the
// indentation to use for it.
func (p *namespaceTracker) enter(pw *printer, qualified string) (string, string) {
	namespace, name := util.ParsePath(qualified).Pop()
	//
	if !namespace.Equals(p.current) {
		log.Debugf("switching namespace from \"%s\" to \"%s\"", p.current.String(), namespace.String())
		//
		p.current = namespace
		pw.printf("namespace %s(%d);\n", namespace.String(), p.degree)
	}
	//
	if p.current.IsEmpty() {
		return name, ""
	}
	//
	return name, INDENT
}

// ============================================================================
// Output
// ============================================================================

// printer wraps an output sink, retaining the first write error (if any) and
// ignoring all writes thereafter.
type printer struct {
	out   io.Writer
	count int64
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	//
	n, err := fmt.Fprintf(p.out, format, args...)
	p.count += int64(n)
	p.err = err
}

// ============================================================================
// Constructors
// ============================================================================

// NewWitnessColumn constructs a scalar witness column, optionally defined by a
// query (which may be nil).
func NewWitnessColumn(name string, query parsed.Expression) Definition {
	sym := Symbol{name, WITNESS_COLUMN, util.None[uint64]()}
	//
	if query == nil {
		return Definition{sym, nil}
	}
	//
	return Definition{sym, &QueryDefinition{query}}
}

// NewWitnessArray constructs an array of witness columns, which never has a
// definition.
func NewWitnessArray(name string, length uint64) Definition {
	return Definition{Symbol{name, WITNESS_COLUMN, util.Some(length)}, nil}
}

// NewFixedColumn constructs a scalar fixed column defined by a generator.
func NewFixedColumn(name string, value FunctionValueDefinition) Definition {
	return Definition{Symbol{name, FIXED_COLUMN, util.None[uint64]()}, value}
}

// NewFixedArray constructs an array of fixed columns, whose definition must be
// typed (the type carries the size).
func NewFixedArray(name string, length uint64, expr parsed.Expression) Definition {
	ty := types.NewArrayType(types.Col(), length)
	//
	return Definition{Symbol{name, FIXED_COLUMN, util.Some(length)}, &ExpressionDefinition{expr, ty}}
}

// NewConstant constructs a constant holding a field element.
func NewConstant(name string, expr parsed.Expression) Definition {
	return Definition{Symbol{name, CONSTANT, util.None[uint64]()}, &ExpressionDefinition{expr, types.Fe()}}
}

// NewLet constructs a generic let-binding whose value may be nil.
func NewLet(name string, value FunctionValueDefinition) Definition {
	return Definition{Symbol{name, OTHER, util.None[uint64]()}, value}
}

// NewIntermediateSymbol constructs the symbol of an intermediate column, which
// is scalar when no length is given.
func NewIntermediateSymbol(name string, length util.Option[uint64]) Symbol {
	return Symbol{name, INTERMEDIATE_COLUMN, length}
}
