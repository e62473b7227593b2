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

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-pil/pkg/irfile"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the IR documents (yaml) and their expected printed form (pil) are
// found.
const TestDir = "../../testdata"

// Check that an IR document decodes and prints exactly as expected.  Printing
// is also checked to be deterministic.
func Check(t *testing.T, test string) {
	checkFile(t, test, fmt.Sprintf("%s/%s.yaml", TestDir, test))
}

// CheckCompressed is as for Check, except the IR document is read from a
// bzip2 compressed file.
func CheckCompressed(t *testing.T, test string) {
	checkFile(t, test, fmt.Sprintf("%s/%s.yaml.bz2", TestDir, test))
}

func checkFile(t *testing.T, test string, source string) {
	t.Parallel()
	//
	expected := fmt.Sprintf("%s/%s.pil", TestDir, test)
	//
	ir, err := irfile.ReadFile(source)
	if err != nil {
		t.Fatalf("failed to read %s: %s", source, err)
	}
	//
	bytes, err := os.ReadFile(expected)
	if err != nil {
		t.Fatalf("missing expected output %s: %s", expected, err)
	}
	//
	actual := ir.String()
	if actual != string(bytes) {
		t.Errorf("%s printed incorrectly:\n%s", test, diffLines(string(bytes), actual))
	}
	//
	if again := ir.String(); again != actual {
		t.Errorf("%s printed differently on second attempt", test)
	}
}

// CheckInvalid checks that a malformed IR document is rejected with an error
// (rather than a panic).
func CheckInvalid(t *testing.T, test string) {
	t.Parallel()
	//
	source := fmt.Sprintf("%s/invalid/%s.yaml", TestDir, test)
	//
	if _, err := irfile.ReadFile(source); err == nil {
		t.Errorf("%s accepted incorrectly", source)
	} else if !strings.HasPrefix(err.Error(), source) {
		t.Errorf("error for %s does not identify the file: %s", source, err)
	}
}

// Report the first differing line between two outputs.
func diffLines(expected string, actual string) string {
	var (
		lhs = strings.Split(expected, "\n")
		rhs = strings.Split(actual, "\n")
	)
	//
	for i := 0; i < max(len(lhs), len(rhs)); i++ {
		var l, r string
		//
		if i < len(lhs) {
			l = lhs[i]
		}
		//
		if i < len(rhs) {
			r = rhs[i]
		}
		//
		if l != r {
			return fmt.Sprintf("line %d: expected \"%s\", actual \"%s\"", i+1, l, r)
		}
	}
	//
	return "(identical)"
}
