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

// Document is the on-disk representation of an analyzed IR.  Documents are
// written in YAML (of which JSON is a subset).
type Document struct {
	// Number of rows (optional)
	Degree *uint64 `yaml:"degree"`
	// Statements in source order.  If omitted, definitions are followed by
	// intermediate columns, public declarations and finally identities.
	SourceOrder []StatementNode `yaml:"source_order"`
	// Symbols other than intermediate columns.
	Definitions []DefinitionNode `yaml:"definitions"`
	// Intermediate columns.
	Intermediates []IntermediateNode `yaml:"intermediates"`
	// Identities, referenced from the source order by position.
	Identities []IdentityNode `yaml:"identities"`
	// Public declarations.
	Publics []PublicNode `yaml:"publics"`
}

// StatementNode identifies a statement.  Exactly one field must be non-nil.
type StatementNode struct {
	Def      *string `yaml:"def"`
	Public   *string `yaml:"public"`
	Identity *uint   `yaml:"identity"`
}

// DefinitionNode describes a symbol.  At most one of value, query or array may
// be given.
type DefinitionNode struct {
	Name   string         `yaml:"name"`
	Kind   string         `yaml:"kind"`
	Length *uint64        `yaml:"length"`
	Type   *TypeNode      `yaml:"type"`
	Value  *ExprNode      `yaml:"value"`
	Query  *ExprNode      `yaml:"query"`
	Array  []RepeatedNode `yaml:"array"`
}

// RepeatedNode describes a (possibly repeated) pattern of a fixed column.
type RepeatedNode struct {
	Pattern []ExprNode `yaml:"pattern"`
	Size    uint64     `yaml:"size"`
}

// IntermediateNode describes an intermediate column.
type IntermediateNode struct {
	Name   string     `yaml:"name"`
	Length *uint64    `yaml:"length"`
	Exprs  []ExprNode `yaml:"exprs"`
}

// IdentityNode describes an identity.  Polynomial identities use Expr, all
// others use Left and Right.
type IdentityNode struct {
	ID    *uint64       `yaml:"id"`
	Kind  string        `yaml:"kind"`
	Expr  *ExprNode     `yaml:"expr"`
	Left  *SelectedNode `yaml:"left"`
	Right *SelectedNode `yaml:"right"`
}

// SelectedNode describes an optionally selected list of expressions.
type SelectedNode struct {
	Selector *ExprNode  `yaml:"selector"`
	Exprs    []ExprNode `yaml:"exprs"`
}

// PublicNode describes a public declaration.
type PublicNode struct {
	Name   string  `yaml:"name"`
	Column string  `yaml:"column"`
	Index  *uint64 `yaml:"index"`
	Row    uint64  `yaml:"row"`
}
