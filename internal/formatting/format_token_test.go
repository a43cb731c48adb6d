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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipsalliance/svfmt/internal/syntax"
)

func TestBreakDecisionString(t *testing.T) {
	assert.Equal(t, "undecided", BreakDecision_Undecided.String())
	assert.Equal(t, "must-append", BreakDecision_MustAppend.String())
	assert.Equal(t, "must-wrap", BreakDecision_MustWrap.String())
	assert.Equal(t, "preserve", BreakDecision_Preserve.String())
	assert.Contains(t, BreakDecision(42).String(), "unknown break decision")
}

func TestNewFormatTokens(t *testing.T) {
	tokens := []syntax.Token{
		{Kind: syntax.TokenKind_KwModule, Content: "module", Offset: 0},
		{Kind: syntax.TokenKind_Identifier, Content: "m", Offset: 7},
	}

	ftokens := NewFormatTokens(tokens)
	require.Len(t, ftokens, 2)
	for i := range ftokens {
		assert.Equal(t, tokens[i], ftokens[i].Token)
		assert.Equal(t, InterTokenInfo{}, ftokens[i].Before)
		assert.Empty(t, ftokens[i].LeadingSpaces)
	}
	assert.Equal(t, "module", ftokens[0].Text())
	assert.Equal(t, 6, ftokens[0].Length())
}

func TestConnectLeadingWhitespace(t *testing.T) {
	const source = "  a =\n  b;"
	ftokens := NewFormatTokens([]syntax.Token{
		{Kind: syntax.TokenKind_Identifier, Content: "a", Offset: 2},
		{Kind: syntax.TokenKind_Equals, Content: "=", Offset: 4},
		{Kind: syntax.TokenKind_Identifier, Content: "b", Offset: 8},
		{Kind: syntax.TokenKind_Semicolon, Content: ";", Offset: 9},
	})

	ConnectLeadingWhitespace(source, ftokens)

	assert.Equal(t, "  ", ftokens[0].LeadingSpaces)
	assert.Equal(t, " ", ftokens[1].LeadingSpaces)
	assert.Equal(t, "\n  ", ftokens[2].LeadingSpaces)
	assert.Equal(t, "", ftokens[3].LeadingSpaces)
}

func TestConnectLeadingWhitespaceEmptyStream(t *testing.T) {
	assert.NotPanics(t, func() {
		ConnectLeadingWhitespace("   ", nil)
	})
}

func TestConnectLeadingWhitespaceRejectsBadOffsets(t *testing.T) {
	overlapping := NewFormatTokens([]syntax.Token{
		{Kind: syntax.TokenKind_Identifier, Content: "ab", Offset: 0},
		{Kind: syntax.TokenKind_Identifier, Content: "b", Offset: 1},
	})
	assert.Panics(t, func() {
		ConnectLeadingWhitespace("ab", overlapping)
	})

	pastEnd := NewFormatTokens([]syntax.Token{
		{Kind: syntax.TokenKind_Identifier, Content: "abc", Offset: 1},
	})
	assert.Panics(t, func() {
		ConnectLeadingWhitespace("ab", pastEnd)
	})
}
