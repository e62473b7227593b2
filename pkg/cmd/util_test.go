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
package cmd

import (
	"testing"

	"github.com/consensys/go-pil/pkg/ast/analyzed"
	"github.com/consensys/go-pil/pkg/util/assert"
	"github.com/spf13/cobra"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("color", false, "")
	cmd.Flags().Uint("degree", 0, "")
	//
	return cmd
}

func TestReadAnalyzedFile_1(t *testing.T) {
	cmd := newTestCommand()
	ir := readAnalyzedFile(cmd, "../../testdata/basic_01.yaml")
	// No degree given in file or on the command line
	assert.True(t, ir.Degree.IsEmpty())
	assert.Equal(t, 1, len(ir.Definitions))
}

func TestReadAnalyzedFile_2(t *testing.T) {
	cmd := newTestCommand()
	assert.Equal(t, nil, cmd.Flags().Set("degree", "16"))
	//
	ir := readAnalyzedFile(cmd, "../../testdata/basic_01.yaml")
	assert.Equal(t, uint64(16), ir.Degree.Unwrap())
}

func TestGetFlag_1(t *testing.T) {
	cmd := newTestCommand()
	assert.False(t, GetFlag(cmd, "color"))
	assert.Equal(t, nil, cmd.Flags().Set("color", "true"))
	assert.True(t, GetFlag(cmd, "color"))
	assert.Equal(t, uint(0), GetUint(cmd, "degree"))
}

func TestConstrainedColumns_1(t *testing.T) {
	ir := readAnalyzedFile(newTestCommand(), "../../testdata/basic_02.yaml")
	assert.Equal(t, map[string]bool{"a": true, "b": true}, constrainedColumns(ir))
}

func TestOtherSymbols_1(t *testing.T) {
	ir := readAnalyzedFile(newTestCommand(), "../../testdata/let_01.yaml")
	assert.Equal(t, uint(4), ir.SymbolsOfKind(analyzed.OTHER))
	assert.Equal(t, uint(0), ir.SymbolsOfKind(analyzed.WITNESS_COLUMN))
}
