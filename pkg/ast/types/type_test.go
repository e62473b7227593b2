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
	"testing"

	"github.com/consensys/go-pil/pkg/util/assert"
)

func TestType_1(t *testing.T) {
	CheckType(t, Fe(), "fe")
	CheckType(t, Bool(), "bool")
	CheckType(t, Int(), "int")
	CheckType(t, String(), "string")
	CheckType(t, Expr(), "expr")
	CheckType(t, Constr(), "constr")
}

func TestType_2(t *testing.T) {
	CheckType(t, Col(), "col")
	CheckType(t, NewFunctionType(Fe()), "col")
}

func TestType_3(t *testing.T) {
	CheckType(t, NewFunctionType(Fe(), Int()), "(int) -> fe")
	CheckType(t, NewFunctionType(Expr(), Int(), Fe()), "(int, fe) -> expr")
	CheckType(t, NewFunctionType(Int()), "() -> int")
}

func TestType_4(t *testing.T) {
	CheckType(t, NewArrayType(Fe(), 4), "fe[4]")
	CheckType(t, NewUnboundedArrayType(Int()), "int[]")
	CheckType(t, NewArrayType(Col(), 8), "col[8]")
}

func TestType_5(t *testing.T) {
	fn := NewFunctionType(Fe(), Int())
	CheckType(t, NewArrayType(fn, 2), "((int) -> fe)[2]")
	CheckType(t, NewUnboundedArrayType(fn), "((int) -> fe)[]")
}

func TestType_6(t *testing.T) {
	fn := NewFunctionType(Fe(), Int())
	CheckType(t, NewTupleType(Int(), Fe()), "(int, fe)")
	CheckType(t, NewTupleType(fn, Col()), "(((int) -> fe), col)")
	CheckType(t, NewTupleType(), "()")
}

func TestType_7(t *testing.T) {
	fn := NewFunctionType(Fe(), Int())
	CheckType(t, NewFunctionType(Fe(), fn), "(((int) -> fe)) -> fe")
	CheckType(t, NewFunctionType(fn, Int()), "(int) -> (int) -> fe")
	CheckType(t, NewArrayType(NewTupleType(Int(), Fe()), 3), "(int, fe)[3]")
}

func TestType_Equals(t *testing.T) {
	assert.True(t, IsCol(NewFunctionType(Fe())))
	assert.False(t, IsCol(NewFunctionType(Int())))
	assert.False(t, IsCol(NewFunctionType(Fe(), Int())))
	assert.False(t, IsCol(Fe()))
	assert.True(t, NewArrayType(Fe(), 2).Equals(NewArrayType(Fe(), 2)))
	assert.False(t, NewArrayType(Fe(), 2).Equals(NewArrayType(Fe(), 3)))
	assert.False(t, NewArrayType(Fe(), 0).Equals(NewUnboundedArrayType(Fe())))
	assert.True(t, NewTupleType(Int(), Col()).Equals(NewTupleType(Int(), Col())))
	assert.False(t, NewTupleType(Int()).Equals(NewTupleType(Int(), Int())))
}

// ============================================================================
// Helpers
// ============================================================================

func CheckType(t *testing.T, ty Type, expected string) {
	assert.Equal(t, expected, ty.String())
}
