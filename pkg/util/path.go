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
package util

import (
	"slices"
	"strings"
)

// PATH_SEPARATOR separates the segments of a fully-qualified symbol name, such
// as "Main.Arith.x".
const PATH_SEPARATOR = "."

// Path describes the location of a symbol within the (flattened) namespace
// tree.  All paths are absolute, i.e. they start from the global namespace,
// which is represented by the empty path.
type Path struct {
	// Segments in the path.
	segments []string
}

// ParsePath splits a fully-qualified dotted name into a path.  The empty string
// yields the empty (global) path.
func ParsePath(name string) Path {
	if name == "" {
		return Path{nil}
	}
	//
	return Path{strings.Split(name, PATH_SEPARATOR)}
}

// IsEmpty determines whether this is the global namespace.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// IsQualifiedName determines whether this path names a symbol, meaning it
// has at least one segment and none of its segments are empty.
func (p Path) IsQualifiedName() bool {
	return len(p.segments) > 0 && !slices.Contains(p.segments, "")
}

// Tail returns the last (i.e. innermost) segment in this path.
func (p Path) Tail() string {
	n := len(p.segments) - 1
	return p.segments[n]
}

// Equals determines whether two paths are the same.
func (p Path) Equals(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// Parent returns the parent of this path.  The parent of the empty path is
// itself.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return p
	}
	//
	return Path{p.segments[:len(p.segments)-1]}
}

// Pop splits this path into its parent and its innermost segment.  For
// example, "A.B.x" yields ("A.B", "x").  This panics on the empty path.
func (p Path) Pop() (Path, string) {
	if len(p.segments) == 0 {
		panic("cannot pop empty path")
	}
	//
	return p.Parent(), p.Tail()
}

// Return a string representation of this path, relative to the global
// namespace.
func (p Path) String() string {
	return strings.Join(p.segments, PATH_SEPARATOR)
}
