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
	"testing"

	"github.com/stretchr/testify/assert"
)

type leafVisit struct {
	content string
	context Context
}

type leafPathVisit struct {
	content string
	context Context
	path    Path
}

func collectVisits(root Symbol) []leafVisit {
	var visits []leafVisit
	Traverse(root, func(leaf *Leaf, context Context) {
		visits = append(visits, leafVisit{leaf.Token.Content, context.Clone()})
	})
	return visits
}

func collectPathVisits(root Symbol) []leafPathVisit {
	var visits []leafPathVisit
	TraversePath(root, func(leaf *Leaf, context Context, path Path) {
		visits = append(visits, leafPathVisit{
			content: leaf.Token.Content,
			context: context.Clone(),
			path:    slices.Clone(path),
		})
	})
	return visits
}

func ident(text string) *Leaf {
	return NewLeaf(Token{Kind: TokenKind_Identifier, Content: text})
}

func TestTraverseNilRoot(t *testing.T) {
	assert.Empty(t, collectVisits(nil))
	assert.Empty(t, collectPathVisits(nil))
}

func TestTraverseLoneLeaf(t *testing.T) {
	visits := collectVisits(ident("x"))
	assert.Equal(t, []leafVisit{{"x", Context{}}}, visits)

	pathVisits := collectPathVisits(ident("x"))
	assert.Equal(t, []leafPathVisit{{"x", Context{}, Path{}}}, pathVisits)
}

func TestTraverseChildlessNode(t *testing.T) {
	root := NewNode(NodeKind_Expression)
	assert.Empty(t, collectVisits(root))
	assert.Empty(t, collectPathVisits(root))
}

func TestTraverseContexts(t *testing.T) {
	// expr
	// ├── "a"
	// ├── binary
	// │   ├── "b"
	// │   ├── "+"
	// │   └── unary
	// │       └── "c"
	// └── "d"
	root := NewNode(NodeKind_Expression,
		ident("a"),
		NewNode(NodeKind_BinaryExpression,
			ident("b"),
			NewLeaf(Token{Kind: TokenKind_Plus, Content: "+"}),
			NewNode(NodeKind_UnaryPrefixExpression, ident("c")),
		),
		ident("d"),
	)

	want := []leafVisit{
		{"a", Context{NodeKind_Expression}},
		{"b", Context{NodeKind_Expression, NodeKind_BinaryExpression}},
		{"+", Context{NodeKind_Expression, NodeKind_BinaryExpression}},
		{"c", Context{NodeKind_Expression, NodeKind_BinaryExpression, NodeKind_UnaryPrefixExpression}},
		{"d", Context{NodeKind_Expression}},
	}
	assert.Equal(t, want, collectVisits(root))
}

func TestTraversePathIndices(t *testing.T) {
	root := NewNode(NodeKind_Expression,
		ident("a"),
		NewNode(NodeKind_BinaryExpression,
			ident("b"),
			ident("c"),
		),
		ident("d"),
	)

	want := []leafPathVisit{
		{"a", Context{NodeKind_Expression}, Path{0}},
		{"b", Context{NodeKind_Expression, NodeKind_BinaryExpression}, Path{1, 0}},
		{"c", Context{NodeKind_Expression, NodeKind_BinaryExpression}, Path{1, 1}},
		{"d", Context{NodeKind_Expression}, Path{2}},
	}
	assert.Equal(t, want, collectPathVisits(root))
}

func TestTraversePathCountsNilChildren(t *testing.T) {
	// Nil child slots are skipped by the visitor but still occupy an index.
	root := NewNode(NodeKind_Expression,
		nil,
		ident("a"),
		nil,
		NewNode(NodeKind_UnaryPrefixExpression,
			nil,
			nil,
			ident("b"),
		),
	)

	want := []leafPathVisit{
		{"a", Context{NodeKind_Expression}, Path{1}},
		{"b", Context{NodeKind_Expression, NodeKind_UnaryPrefixExpression}, Path{3, 2}},
	}
	assert.Equal(t, want, collectPathVisits(root))
}

func TestTraverseAndTraversePathAgree(t *testing.T) {
	root := NewNode(NodeKind_ModuleHeader,
		NewNode(NodeKind_Port, ident("clk"), nil),
		nil,
		NewNode(NodeKind_Port,
			NewNode(NodeKind_PackedDimensions, ident("w")),
		),
	)

	visits := collectVisits(root)
	pathVisits := collectPathVisits(root)
	assert.Equal(t, len(visits), len(pathVisits))
	for i := range visits {
		assert.Equal(t, visits[i].content, pathVisits[i].content)
		assert.Equal(t, visits[i].context, pathVisits[i].context)
	}
}
