// Copyright 2026 The svfmt Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"slices"
	"strings"
)

// Context is the ordered chain of interior-node kinds enclosing a point in
// the tree, root-first. It is owned by the traversal that produces it and is
// only valid for the duration of a visit callback; callers that retain it
// must Clone it first.
type Context []NodeKind

// Clone returns an independent snapshot of the context.
func (c Context) Clone() Context {
	return slices.Clone(c)
}

// IsInside reports whether any enclosing node has the given kind.
func (c Context) IsInside(kind NodeKind) bool {
	return slices.Contains(c, kind)
}

// IsInsideFirst scans ancestors innermost-first and reports whether a kind
// from primary is found before any kind from stop. Use it to ask "directly
// inside X, but not once Y intervenes".
func (c Context) IsInsideFirst(primary, stop []NodeKind) bool {
	for i := len(c) - 1; i >= 0; i-- {
		if slices.Contains(primary, c[i]) {
			return true
		}
		if slices.Contains(stop, c[i]) {
			return false
		}
	}
	return false
}

// DirectParentIs reports whether the innermost enclosing node has the given
// kind.
func (c Context) DirectParentIs(kind NodeKind) bool {
	return len(c) > 0 && c[len(c)-1] == kind
}

// DirectParentIsOneOf reports whether the innermost enclosing node is any of
// the given kinds.
func (c Context) DirectParentIsOneOf(kinds ...NodeKind) bool {
	return len(c) > 0 && slices.Contains(kinds, c[len(c)-1])
}

// DirectParentsAre matches the innermost ancestors against kinds, given
// innermost-first: kinds[0] is the direct parent, kinds[1] the grandparent,
// and so on.
func (c Context) DirectParentsAre(kinds ...NodeKind) bool {
	if len(kinds) > len(c) {
		return false
	}
	for i, kind := range kinds {
		if c[len(c)-1-i] != kind {
			return false
		}
	}
	return true
}

func (c Context) String() string {
	parts := make([]string, len(c))
	for i, kind := range c {
		parts[i] = kind.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
