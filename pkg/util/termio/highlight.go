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
	"io"
	"strings"
)

// Highlighter colours the keywords of printed constraint files, one line at a
// time.
type Highlighter struct {
	keywords map[string]AnsiEscape
}

// NewHighlighter constructs a highlighter for the statements of a constraint
// file.
func NewHighlighter() *Highlighter {
	var (
		header      = BoldAnsiEscape().FgColour(TERM_BLUE)
		declaration = NewAnsiEscape().FgColour(TERM_MAGENTA)
		modifier    = NewAnsiEscape().FgColour(TERM_GREEN)
		relation    = NewAnsiEscape().FgColour(TERM_YELLOW)
	)
	//
	return &Highlighter{map[string]AnsiEscape{
		"namespace": header,
		"col":       declaration,
		"constant":  declaration,
		"let":       declaration,
		"public":    declaration,
		"witness":   modifier,
		"fixed":     modifier,
		"query":     modifier,
		"=query":    modifier,
		"in":        relation,
		"is":        relation,
		"connect":   relation,
	}}
}

// Line highlights the keywords of a single line.  Keywords are only
// recognised as whole (space-separated) words.
func (p *Highlighter) Line(line string) string {
	words := strings.Split(line, " ")
	//
	for i, word := range words {
		if escape, ok := p.keywords[word]; ok {
			words[i] = escape.Wrap(word)
		}
	}
	//
	return strings.Join(words, " ")
}

// Writer returns a writer which highlights complete lines written to it
// before forwarding them to the given writer.  Any incomplete final line is
// forwarded by Close.
func (p *Highlighter) Writer(out io.Writer) io.WriteCloser {
	return &highlightWriter{p, out, nil}
}

type highlightWriter struct {
	highlighter *Highlighter
	out         io.Writer
	pending     []byte
}

func (p *highlightWriter) Write(bytes []byte) (int, error) {
	p.pending = append(p.pending, bytes...)
	//
	for {
		n := strings.IndexByte(string(p.pending), '\n')
		if n < 0 {
			return len(bytes), nil
		}
		//
		line := p.highlighter.Line(string(p.pending[:n]))
		p.pending = p.pending[n+1:]
		//
		if _, err := io.WriteString(p.out, line+"\n"); err != nil {
			return len(bytes), err
		}
	}
}

func (p *highlightWriter) Close() error {
	if len(p.pending) == 0 {
		return nil
	}
	//
	line := p.highlighter.Line(string(p.pending))
	p.pending = nil
	_, err := io.WriteString(p.out, line)
	//
	return err
}
