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
	"github.com/chipsalliance/svfmt/internal/formatting"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

const (
	// Absolute minimum of any break penalty.
	minBreakPenalty = 1
	// Baseline penalty value every adjustment is added to.
	breakPenaltyBias = 5
	// Weight of each shared syntax tree ancestor.
	depthScaleFactor = 2
)

// breakPenaltyBetweenTokens is the context-independent penalty factor.
// Rules are ordered by precedence and the first match wins.
func breakPenaltyBetweenTokens(left, right *formatting.FormatToken) withReason[int] {
	leftClass := Classify(left.Token.Kind)
	rightClass := Classify(right.Token.Kind)

	if leftClass == TokenClass_Identifier && rightClass == TokenClass_OpenGroup {
		return withReason[int]{20, "identifier, open-group"}
	}
	// Hierarchy examples: "a.b", "a::b". Slightly prefer to break on the
	// left: "a .b" better than "a. b".
	if leftClass == TokenClass_Hierarchy {
		return withReason[int]{50, "hierarchy separator on left"}
	}
	if rightClass == TokenClass_Hierarchy {
		return withReason[int]{45, "hierarchy separator on right"}
	}

	// Prefer to split after commas and semicolons rather than before them.
	if right.Token.Kind == syntax.TokenKind_Comma {
		return withReason[int]{10, "avoid breaking before ','"}
	}
	if right.Token.Kind == syntax.TokenKind_Semicolon {
		return withReason[int]{10, "avoid breaking before ';'"}
	}
	if left.Token.Kind == syntax.TokenKind_Comma {
		return withReason[int]{-5, "encourage breaking after ','"}
	}
	if left.Token.Kind == syntax.TokenKind_Semicolon {
		return withReason[int]{-5, "encourage breaking after ';'"}
	}

	// Prefer to split after an assignment operator, rather than before.
	if right.Token.Kind == syntax.TokenKind_Equals {
		return withReason[int]{8, "right is '='"}
	}

	// Prefer to keep '(' with the token on its left, as long as that is not
	// a binary operator other than '='.
	if (leftClass != TokenClass_BinaryOperator || left.Token.Kind == syntax.TokenKind_Equals) &&
		rightClass == TokenClass_OpenGroup {
		return withReason[int]{5, "right is open-group"}
	}
	// Prefer to keep ')' with whatever is on the left.
	if rightClass == TokenClass_CloseGroup {
		return withReason[int]{10, "right is close-group"}
	}

	// E.g. 1'b1, 16'hbabe. Does not really matter, we never break here.
	if left.Token.Kind == syntax.TokenKind_DecNumber &&
		right.Token.Kind == syntax.TokenKind_UnbasedNumber {
		return withReason[int]{90, "numeric width, base"}
	}

	return withReason[int]{0, "no further adjustment"}
}

// commonAncestors counts the shared context prefix of two adjacent tokens.
func commonAncestors(left, right syntax.Context) int {
	limit := min(len(left), len(right))
	common := 0
	for common < limit && left[common] == right[common] {
		common++
	}
	return common
}

// contextDepthPenalty favors keeping elements deeper in the tree closer
// together. Every shared ancestor gets equal weight.
func contextDepthPenalty(leftContext, rightContext syntax.Context) int {
	return commonAncestors(leftContext, rightContext) * depthScaleFactor
}

// tokensWithContextBreakPenalty is the context-sensitive penalty factor.
func tokensWithContextBreakPenalty(left, right *formatting.FormatToken,
	leftContext, rightContext syntax.Context) withReason[int] {
	if rightContext.DirectParentIs(syntax.NodeKind_ConditionExpression) &&
		IsTernaryOperator(right.Token.Kind) {
		return withReason[int]{10, "prefer to split after ternary operators (+10 on left)"}
	}
	if leftContext.DirectParentIs(syntax.NodeKind_ConditionExpression) &&
		IsTernaryOperator(left.Token.Kind) {
		return withReason[int]{-5, "prefer to split after ternary operators (-5 on right)"}
	}
	// These values are kept small so that binding affinity still honors
	// operator precedence, which is reflected in syntax tree depth.
	if rightContext.DirectParentIs(syntax.NodeKind_BinaryExpression) &&
		Classify(right.Token.Kind) == TokenClass_BinaryOperator {
		return withReason[int]{8, "prefer to split after binary operators (+8 on left)"}
	}
	if leftContext.DirectParentIs(syntax.NodeKind_BinaryExpression) &&
		Classify(left.Token.Kind) == TokenClass_BinaryOperator {
		return withReason[int]{-5, "prefer to split after binary operators (-5 on right)"}
	}
	return withReason[int]{0, "no adjustment"}
}

// breakPenaltyBetween returns the cost of line-breaking before the right
// token. The result is always >= minBreakPenalty.
func breakPenaltyBetween(left, right *formatting.FormatToken,
	leftContext, rightContext syntax.Context) withReason[int] {
	depthPenalty := contextDepthPenalty(leftContext, rightContext)
	interToken := breakPenaltyBetweenTokens(left, right)
	withContext := tokensWithContextBreakPenalty(left, right, leftContext, rightContext)

	total := max(breakPenaltyBias+depthPenalty+interToken.value+withContext.value, minBreakPenalty)
	return withReason[int]{total, interToken.reason}
}
