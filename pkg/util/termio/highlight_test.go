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
package termio

import (
	"strings"
	"testing"

	"github.com/consensys/go-pil/pkg/util/assert"
)

func TestHighlight_1(t *testing.T) {
	h := NewHighlighter()
	magenta := NewAnsiEscape().FgColour(TERM_MAGENTA)
	green := NewAnsiEscape().FgColour(TERM_GREEN)
	//
	expected := "    " + magenta.Wrap("col") + " " + green.Wrap("witness") + " x;"
	assert.Equal(t, expected, h.Line("    col witness x;"))
}

func TestHighlight_2(t *testing.T) {
	h := NewHighlighter()
	// Identifiers containing keywords are left alone.
	assert.Equal(t, "    collect = in_x;", h.Line("    collect = in_x;"))
	assert.Equal(t, "\033[1;34mnamespace\033[0m Main(8);", h.Line("namespace Main(8);"))
}

func TestHighlight_3(t *testing.T) {
	var (
		h   = NewHighlighter()
		out strings.Builder
		w   = h.Writer(&out)
	)
	// Lines split across writes are highlighted as a whole.
	_, _ = w.Write([]byte("{ a } i"))
	_, _ = w.Write([]byte("n { b };\nlet"))
	assert.Equal(t, h.Line("{ a } in { b };")+"\n", out.String())
	assert.Equal(t, nil, w.Close())
	assert.Equal(t, h.Line("{ a } in { b };")+"\n"+h.Line("let"), out.String())
}

func TestEscape_1(t *testing.T) {
	assert.Equal(t, "\033[34m", NewAnsiEscape().FgColour(TERM_BLUE).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "\033[1;33mx\033[0m", BoldAnsiEscape().FgColour(TERM_YELLOW).Wrap("x"))
}
