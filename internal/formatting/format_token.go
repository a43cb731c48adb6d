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

// Package formatting holds the token decoration model used while rendering
// source code. A FormatToken wraps a lexed token with the spacing and
// line-break decision that applies to the boundary before it.
package formatting

import (
	"fmt"

	"github.com/chipsalliance/svfmt/internal/collections"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

// BreakDecision constrains how the boundary before a token may be rendered.
type BreakDecision int

const (
	// BreakDecision_Undecided leaves the choice to the line-wrapping search.
	BreakDecision_Undecided BreakDecision = iota
	// BreakDecision_MustAppend glues the token onto the current line.
	BreakDecision_MustAppend
	// BreakDecision_MustWrap forces the token onto a new line.
	BreakDecision_MustWrap
	// BreakDecision_Preserve keeps the original whitespace untouched.
	BreakDecision_Preserve
)

func (d BreakDecision) String() string {
	switch d {
	case BreakDecision_Undecided:
		return "undecided"
	case BreakDecision_MustAppend:
		return "must-append"
	case BreakDecision_MustWrap:
		return "must-wrap"
	case BreakDecision_Preserve:
		return "preserve"
	default:
		return fmt.Sprintf("unknown break decision %d", int(d))
	}
}

// InterTokenInfo describes the boundary between a token and its predecessor.
// The zero value means "no spaces, no penalty, undecided", which is the state
// of every boundary before annotation.
type InterTokenInfo struct {
	// SpacesRequired is the number of spaces to insert when the two tokens
	// end up on the same line.
	SpacesRequired int
	// BreakPenalty is the cost of breaking the line at this boundary,
	// consulted by the line-wrapping search. Always >= 1 after annotation.
	BreakPenalty int
	// BreakDecision constrains whether a line break may occur here.
	BreakDecision BreakDecision
}

func (i InterTokenInfo) String() string {
	return fmt.Sprintf("{%d, %d, %v}", i.SpacesRequired, i.BreakPenalty, i.BreakDecision)
}

// FormatToken couples a token with the formatting decision for the boundary
// immediately before it.
type FormatToken struct {
	Token syntax.Token
	// Before describes the boundary between the previous token and this one.
	// It is meaningless on the first token of a stream.
	Before InterTokenInfo
	// LeadingSpaces is the verbatim text between the previous token and this
	// one in the original source, filled in by ConnectLeadingWhitespace.
	// Rules consult it to preserve some of the author's choices, e.g. whether
	// a trailing comment started on its own line.
	LeadingSpaces string
}

// Text returns the token's original text.
func (t *FormatToken) Text() string {
	return t.Token.Content
}

// Length returns the width of the token's text in bytes.
func (t *FormatToken) Length() int {
	return len(t.Token.Content)
}

func (t *FormatToken) String() string {
	return fmt.Sprintf("%v before %v", t.Before, t.Token)
}

// NewFormatTokens wraps a token stream in unannotated format tokens.
func NewFormatTokens(tokens []syntax.Token) []FormatToken {
	return collections.MapSlice(tokens, func(token syntax.Token) FormatToken {
		return FormatToken{Token: token}
	})
}

// ConnectLeadingWhitespace fills in each token's LeadingSpaces with the
// original inter-token text from source. The first token receives everything
// from the start of the buffer. Token offsets must be consistent with source;
// a violation means the lexer and the buffer disagree and is a programmer
// error.
func ConnectLeadingWhitespace(source string, ftokens []FormatToken) {
	previousEnd := 0
	for i := range ftokens {
		token := &ftokens[i].Token
		if token.Offset < previousEnd || token.End() > len(source) {
			panic(fmt.Errorf("token %v does not fit the source buffer after offset %d", token, previousEnd))
		}
		ftokens[i].LeadingSpaces = source[previousEnd:token.Offset]
		previousEnd = token.End()
	}
}
