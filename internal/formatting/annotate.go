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

package formatting

import (
	"fmt"

	"github.com/chipsalliance/svfmt/internal/syntax"
)

// BoundaryAnnotator decides the formatting of the boundary between two
// adjacent tokens, given the ancestor context of each. Implementations write
// their decision into curr.Before.
type BoundaryAnnotator func(prev, curr *FormatToken, prevContext, currContext syntax.Context)

// AnnotateUsingSyntaxContext walks the syntax tree and the token stream in
// lockstep and calls annotate once per adjacent token pair. ftokens must
// contain every leaf of root, in traversal order, possibly interleaved with
// extra tokens the parser keeps out of the tree (comments, preprocessor
// directives, macro bodies). An extra token is given the context of the next
// tree leaf after it; tokens past the last leaf get an empty context. The
// first token of the stream has no left neighbor and is never annotated.
//
// A tree leaf missing from the token stream means the two inputs come from
// different parses and is a programmer error.
func AnnotateUsingSyntaxContext(root syntax.Symbol, ftokens []FormatToken, annotate BoundaryAnnotator) {
	next := 0
	var prevContext syntax.Context

	// Annotates ftokens[i] with the given right-hand context and records that
	// context for the token's right neighbor.
	annotateAt := func(i int, context syntax.Context) {
		if i > 0 {
			annotate(&ftokens[i-1], &ftokens[i], prevContext, context)
		}
		prevContext = context.Clone()
	}

	syntax.Traverse(root, func(leaf *syntax.Leaf, context syntax.Context) {
		for ; next < len(ftokens); next++ {
			annotateAt(next, context)
			if ftokens[next].Token == leaf.Token {
				next++
				return
			}
		}
		panic(fmt.Errorf("syntax tree leaf %v not found in the token stream", leaf.Token))
	})

	for ; next < len(ftokens); next++ {
		annotateAt(next, syntax.Context{})
	}
}
