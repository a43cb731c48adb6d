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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextIsInside(t *testing.T) {
	ctx := Context{NodeKind_ModuleHeader, NodeKind_Port, NodeKind_Expression}

	assert.True(t, ctx.IsInside(NodeKind_ModuleHeader))
	assert.True(t, ctx.IsInside(NodeKind_Port))
	assert.True(t, ctx.IsInside(NodeKind_Expression))
	assert.False(t, ctx.IsInside(NodeKind_GateInstance))
	assert.False(t, Context{}.IsInside(NodeKind_Expression))
	assert.False(t, Context(nil).IsInside(NodeKind_Expression))
}

func TestContextIsInsideFirst(t *testing.T) {
	for _, tc := range []struct {
		name    string
		context Context
		primary []NodeKind
		stop    []NodeKind
		want    bool
	}{
		{
			name:    "empty context",
			context: Context{},
			primary: []NodeKind{NodeKind_UnaryPrefixExpression},
			stop:    []NodeKind{NodeKind_Expression},
			want:    false,
		},
		{
			name:    "primary innermost",
			context: Context{NodeKind_Expression, NodeKind_UnaryPrefixExpression},
			primary: []NodeKind{NodeKind_UnaryPrefixExpression},
			stop:    []NodeKind{NodeKind_Expression},
			want:    true,
		},
		{
			name:    "stop shadows outer primary",
			context: Context{NodeKind_UnaryPrefixExpression, NodeKind_Expression},
			primary: []NodeKind{NodeKind_UnaryPrefixExpression},
			stop:    []NodeKind{NodeKind_Expression},
			want:    false,
		},
		{
			name:    "primary beyond unrelated ancestors",
			context: Context{NodeKind_StreamingConcatenation, NodeKind_BinaryExpression, NodeKind_DimensionRange},
			primary: []NodeKind{NodeKind_StreamingConcatenation},
			stop:    nil,
			want:    true,
		},
		{
			name:    "no match at all",
			context: Context{NodeKind_BinaryExpression, NodeKind_DimensionRange},
			primary: []NodeKind{NodeKind_StreamingConcatenation},
			stop:    []NodeKind{NodeKind_Expression},
			want:    false,
		},
		{
			name:    "same kind in both sets answers true",
			context: Context{NodeKind_Expression},
			primary: []NodeKind{NodeKind_Expression},
			stop:    []NodeKind{NodeKind_Expression},
			want:    true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.context.IsInsideFirst(tc.primary, tc.stop))
		})
	}
}

func TestContextDirectParent(t *testing.T) {
	ctx := Context{NodeKind_ConstraintDeclaration, NodeKind_BraceGroup}

	assert.True(t, ctx.DirectParentIs(NodeKind_BraceGroup))
	assert.False(t, ctx.DirectParentIs(NodeKind_ConstraintDeclaration))
	assert.False(t, Context{}.DirectParentIs(NodeKind_BraceGroup))

	assert.True(t, ctx.DirectParentIsOneOf(NodeKind_EnumType, NodeKind_BraceGroup))
	assert.False(t, ctx.DirectParentIsOneOf(NodeKind_EnumType, NodeKind_CoverPoint))
	assert.False(t, Context{}.DirectParentIsOneOf(NodeKind_BraceGroup))
}

func TestContextDirectParentsAre(t *testing.T) {
	ctx := Context{NodeKind_EnumType, NodeKind_ConstraintDeclaration, NodeKind_BraceGroup}

	// Arguments are given innermost-first.
	assert.True(t, ctx.DirectParentsAre(NodeKind_BraceGroup))
	assert.True(t, ctx.DirectParentsAre(NodeKind_BraceGroup, NodeKind_ConstraintDeclaration))
	assert.True(t, ctx.DirectParentsAre(NodeKind_BraceGroup, NodeKind_ConstraintDeclaration, NodeKind_EnumType))
	assert.False(t, ctx.DirectParentsAre(NodeKind_ConstraintDeclaration, NodeKind_BraceGroup))
	assert.False(t, ctx.DirectParentsAre(NodeKind_BraceGroup, NodeKind_EnumType))
	// Longer than the context never matches.
	assert.False(t, ctx.DirectParentsAre(NodeKind_BraceGroup, NodeKind_ConstraintDeclaration, NodeKind_EnumType, NodeKind_Expression))
	// The empty pattern trivially matches.
	assert.True(t, ctx.DirectParentsAre())
	assert.True(t, Context{}.DirectParentsAre())
}

func TestContextClone(t *testing.T) {
	ctx := Context{NodeKind_Expression, NodeKind_BinaryExpression}
	clone := ctx.Clone()
	assert.Equal(t, ctx, clone)

	ctx[1] = NodeKind_ConditionExpression
	assert.Equal(t, NodeKind_BinaryExpression, clone[1])
}
