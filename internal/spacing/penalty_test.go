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

package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chipsalliance/svfmt/internal/formatting"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

func TestCommonAncestors(t *testing.T) {
	a := syntax.NodeKind_Expression
	b := syntax.NodeKind_BinaryExpression
	c := syntax.NodeKind_ConditionExpression

	for _, tc := range []struct {
		name        string
		left, right syntax.Context
		want        int
	}{
		{"both empty", syntax.Context{}, syntax.Context{}, 0},
		{"one empty", syntax.Context{a}, syntax.Context{}, 0},
		{"identical", syntax.Context{a, b}, syntax.Context{a, b}, 2},
		{"diverging tail", syntax.Context{a, b}, syntax.Context{a, c}, 1},
		{"prefix of longer", syntax.Context{a, b}, syntax.Context{a, b, c}, 2},
		{"no common root", syntax.Context{a}, syntax.Context{b}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, commonAncestors(tc.left, tc.right))
			assert.Equal(t, tc.want, commonAncestors(tc.right, tc.left))
		})
	}
}

func TestBreakPenaltyBetween(t *testing.T) {
	binaryCtx := syntax.Context{syntax.NodeKind_Expression, syntax.NodeKind_BinaryExpression}
	condCtx := syntax.Context{syntax.NodeKind_ConditionExpression}

	for _, tc := range []struct {
		name        string
		left, right syntax.Token
		leftCtx     syntax.Context
		rightCtx    syntax.Context
		want        int
	}{
		{
			name: "identifier before open group",
			left: id("foo"), right: sym(syntax.TokenKind_LParen, "("),
			want: 25,
		},
		{
			name: "hierarchy separator on right",
			left: id("a"), right: sym(syntax.TokenKind_Dot, "."),
			want: 50,
		},
		{
			name: "hierarchy separator on left",
			left: sym(syntax.TokenKind_Dot, "."), right: id("b"),
			want: 55,
		},
		{
			name: "avoid breaking before comma",
			left: id("x"), right: sym(syntax.TokenKind_Comma, ","),
			want: 15,
		},
		{
			name: "encourage breaking after comma",
			left: sym(syntax.TokenKind_Comma, ","), right: id("y"),
			want: 1,
		},
		{
			name: "prefer splitting after assignment",
			left: id("x"), right: sym(syntax.TokenKind_Equals, "="),
			want: 13,
		},
		{
			name: "assignment before open group",
			left: sym(syntax.TokenKind_Equals, "="), right: sym(syntax.TokenKind_LParen, "("),
			want: 10,
		},
		{
			name: "keep close group attached",
			left: id("x"), right: sym(syntax.TokenKind_RParen, ")"),
			want: 15,
		},
		{
			name: "numeric width and base",
			left: sym(syntax.TokenKind_DecNumber, "1"), right: sym(syntax.TokenKind_UnbasedNumber, "'1"),
			want: 95,
		},
		{
			name: "binary operator on right in binary expression",
			left: id("a"), right: sym(syntax.TokenKind_Plus, "+"),
			leftCtx: binaryCtx, rightCtx: binaryCtx,
			want: 17,
		},
		{
			name: "binary operator on left in binary expression",
			left: sym(syntax.TokenKind_Plus, "+"), right: id("b"),
			leftCtx: syntax.Context{syntax.NodeKind_BinaryExpression},
			rightCtx: syntax.Context{syntax.NodeKind_BinaryExpression},
			want: 2,
		},
		{
			name: "ternary operator on right",
			left: id("cond"), right: sym(syntax.TokenKind_Question, "?"),
			leftCtx: condCtx, rightCtx: condCtx,
			want: 17,
		},
		{
			name: "ternary operator on left",
			left: sym(syntax.TokenKind_Question, "?"), right: id("a"),
			leftCtx: condCtx, rightCtx: condCtx,
			want: 2,
		},
		{
			name: "deeper shared context costs more",
			left: id("a"), right: id("b"),
			leftCtx: syntax.Context{syntax.NodeKind_Expression, syntax.NodeKind_BinaryExpression,
				syntax.NodeKind_UnaryPrefixExpression},
			rightCtx: syntax.Context{syntax.NodeKind_Expression, syntax.NodeKind_BinaryExpression,
				syntax.NodeKind_UnaryPrefixExpression},
			want: 11,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			left := formatting.FormatToken{Token: tc.left}
			right := formatting.FormatToken{Token: tc.right}
			got := breakPenaltyBetween(&left, &right, tc.leftCtx, tc.rightCtx)
			assert.Equal(t, tc.want, got.value)
		})
	}
}
