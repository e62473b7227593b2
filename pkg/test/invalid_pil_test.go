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
package test

import "testing"

func Test_Invalid_Witness_01(t *testing.T) {
	CheckInvalid(t, "witness_01")
}

func Test_Invalid_Fixed_01(t *testing.T) {
	CheckInvalid(t, "fixed_01")
}

func Test_Invalid_Constant_01(t *testing.T) {
	CheckInvalid(t, "constant_01")
}

func Test_Invalid_Intermediate_01(t *testing.T) {
	CheckInvalid(t, "intermediate_01")
}

func Test_Invalid_Order_01(t *testing.T) {
	CheckInvalid(t, "order_01")
}

func Test_Invalid_Witness_02(t *testing.T) {
	CheckInvalid(t, "witness_02")
}

func Test_Invalid_Name_01(t *testing.T) {
	CheckInvalid(t, "name_01")
}

func Test_Invalid_Name_02(t *testing.T) {
	CheckInvalid(t, "name_02")
}

func Test_Invalid_Expr_01(t *testing.T) {
	CheckInvalid(t, "expr_01")
}

func Test_Invalid_Expr_02(t *testing.T) {
	CheckInvalid(t, "expr_02")
}

func Test_Invalid_Expr_03(t *testing.T) {
	CheckInvalid(t, "expr_03")
}

func Test_Invalid_Type_01(t *testing.T) {
	CheckInvalid(t, "type_01")
}
