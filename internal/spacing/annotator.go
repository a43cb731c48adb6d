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
	"log"

	"github.com/chipsalliance/svfmt/internal/formatting"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

const debug = false

// Conservative default when no spacing rule matched.
const unhandledSpacesDefault = 1

// AnnotateFormatToken fills in curr.Before with the spacing requirement,
// break penalty and break decision for the boundary between prev and curr.
// Both tokens come with their syntax tree ancestor contexts.
func AnnotateFormatToken(style formatting.Style, prev, curr *formatting.FormatToken,
	prevContext, currContext syntax.Context) {
	spaces := spacesRequiredBetween(prev, curr, prevContext, currContext, style)
	if debug {
		log.Printf("spacing between %v and %v: %d (%s)",
			prev.Token.Kind, curr.Token.Kind, spaces.value, spaces.reason)
	}
	if spaces.value == unhandledSpaces {
		spaces.value = unhandledSpacesDefault
	}
	curr.Before.SpacesRequired = spaces.value

	penalty := breakPenaltyBetween(prev, curr, prevContext, currContext)
	curr.Before.BreakPenalty = penalty.value

	decision := breakDecisionBetween(style, prev, curr, prevContext, currContext)
	curr.Before.BreakDecision = decision.value
	if debug {
		log.Printf("break before %v: penalty %d (%s), decision %v (%s)",
			curr.Token.Kind, penalty.value, penalty.reason, decision.value, decision.reason)
	}
}

// AnnotateFormattingInformation annotates every inter-token boundary of
// ftokens, using root for syntactic context and source for the original
// inter-token whitespace. The first token of the stream is left untouched.
func AnnotateFormattingInformation(style formatting.Style, source string,
	root syntax.Symbol, ftokens []formatting.FormatToken) {
	if len(ftokens) == 0 {
		return
	}
	formatting.ConnectLeadingWhitespace(source, ftokens)
	formatting.AnnotateUsingSyntaxContext(root, ftokens,
		func(prev, curr *formatting.FormatToken, prevContext, currContext syntax.Context) {
			AnnotateFormatToken(style, prev, curr, prevContext, currContext)
		})
}
