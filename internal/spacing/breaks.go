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
	"strings"

	"github.com/chipsalliance/svfmt/internal/collections"
	"github.com/chipsalliance/svfmt/internal/formatting"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

var dimensionPunctuation = collections.SetOf(
	syntax.TokenKind_LBracket,
	syntax.TokenKind_RBracket,
	syntax.TokenKind_Colon,
)

// breakDecisionBetween decides whether the boundary before right must break,
// must not break, or is left to the line-wrapping search. Rules are ordered
// by precedence and the first match wins.
func breakDecisionBetween(style formatting.Style, left, right *formatting.FormatToken,
	leftContext, rightContext syntax.Context) withReason[formatting.BreakDecision] {
	leftClass := Classify(left.Token.Kind)
	rightClass := Classify(right.Token.Kind)

	// Leave everything inside declared [dimensions] alone, except for the
	// spacing immediately around '[', ']' and ':' which other rules cover.
	if inDeclaredDimensions(rightContext) &&
		!dimensionPunctuation.Contains(left.Token.Kind) &&
		!dimensionPunctuation.Contains(right.Token.Kind) {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_Preserve,
			"leave spaces inside declared [] untouched"}
	}

	if right.Token.Kind == syntax.TokenKind_LineCont {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			`keep \ line continuation attached to its left neighbor`}
	}
	if left.Token.Kind == syntax.TokenKind_LineCont {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			`a \ line continuation is always followed by a newline`}
	}

	if left.Token.Kind == syntax.TokenKind_PPDefine {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"keep `define and macro name together"}
	}
	if right.Token.Kind == syntax.TokenKind_MacroDefineBody {
		if strings.Count(right.Token.Content, "\n") >= 2 {
			return withReason[formatting.BreakDecision]{formatting.BreakDecision_Preserve,
				"preserve spacing before a multi-line macro definition body"}
		}
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"macro definition body must start on the same line"}
	}

	// Mandatory line breaks. A macro definition body excludes its trailing
	// newline, so it ends a line just like an EOL comment does.
	if leftClass == TokenClass_EOLComment ||
		left.Token.Kind == syntax.TokenKind_MacroDefineBody {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"token must be newline-terminated"}
	}

	if rightClass == TokenClass_EOLComment &&
		!strings.Contains(right.LeadingSpaces, "\n") {
		// There are other tokens on the comment's line.
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"EOL comment cannot break from tokens to the left on its line"}
	}

	if (leftClass == TokenClass_CommentBlock || rightClass == TokenClass_CommentBlock) &&
		strings.Contains(right.LeadingSpaces, "\n") {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"force-preserve line break around block comment"}
	}

	if isInsideNumericLiteral(left, right) {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"never separate numeric width, base, and digits"}
	}

	// Never separate unary prefix operators from their operands.
	if isUnaryPrefixExpressionOperand(left, rightContext) {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"never separate unary prefix operator from its operand"}
	}

	// Macro definitions with arguments: no break between name and '('.
	if left.Token.Kind == syntax.TokenKind_PPIdentifier &&
		right.Token.Kind == syntax.TokenKind_LParen {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"no break between macro definition name and '('"}
	}

	if IsEndKeyword(right.Token.Kind) {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"end* keywords start their own lines"}
	}

	if right.Token.Kind == syntax.TokenKind_KwElse {
		if left.Token.Kind == syntax.TokenKind_KwEnd && !style.WrapEndElseClauses {
			return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
				"'end' and 'else' belong on one line"}
		}
		if left.Token.Kind == syntax.TokenKind_KwEnd && style.WrapEndElseClauses {
			return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
				"'end'-'else' should be split"}
		}
		if left.Token.Kind == syntax.TokenKind_RBrace {
			return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
				"'}' and 'else' belong on one line"}
		}
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"'else' starts its own line"}
	}

	if left.Token.Kind == syntax.TokenKind_KwElse && right.Token.Kind == syntax.TokenKind_KwBegin {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"'else' and 'begin' belong on one line"}
	}

	if left.Token.Kind == syntax.TokenKind_RParen && right.Token.Kind == syntax.TokenKind_KwBegin {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"')' and 'begin' belong on one line"}
	}

	if left.Token.Kind == syntax.TokenKind_MacroCallClose &&
		!IsComment(rightClass) && !isAnySemicolon(right.Token.Kind) &&
		!inRangeLikeContext(leftContext) {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"macro-closing ')' ends its own line except for comments and ';'"}
	}

	if left.Token.Kind == syntax.TokenKind_PPElse || left.Token.Kind == syntax.TokenKind_PPEndif {
		if IsComment(rightClass) {
			return withReason[formatting.BreakDecision]{formatting.BreakDecision_Undecided,
				"comment may follow `else and `endif"}
		}
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"`else and `endif end their own line except for comments"}
	}

	if right.Token.Kind.IsPreprocessorDirective() {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"preprocessor directives start their own line"}
	}

	if left.Token.Kind == syntax.TokenKind_Hash {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			"never separate '#' from whatever follows (delay expressions)"}
	}
	if left.Token.Kind == syntax.TokenKind_TimeLiteral &&
		right.Token.Kind == syntax.TokenKind_Semicolon {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustAppend,
			`keep delay statements together, like "#1ps;"`}
	}

	if left.Token.Kind == syntax.TokenKind_Comma &&
		right.Token.Kind == syntax.TokenKind_MacroArg &&
		strings.Contains(right.Token.Content, "\n") {
		return withReason[formatting.BreakDecision]{formatting.BreakDecision_MustWrap,
			"multi-line unlexed macro arguments start on their own line"}
	}

	return withReason[formatting.BreakDecision]{formatting.BreakDecision_Undecided,
		"leave wrap decision to the penalty-minimizing search"}
}
