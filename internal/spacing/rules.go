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

	"github.com/chipsalliance/svfmt/internal/formatting"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

// withReason couples a rule result with a human-readable explanation, kept
// for debug logging.
type withReason[T any] struct {
	value  T
	reason string
}

// Sentinel meaning no spacing rule matched. Must be negative.
const unhandledSpaces = -1

// isUnaryPrefixExpressionOperand reports whether the token to the left acts
// as a unary prefix operator of the token whose context is given. '##' is
// treated like a unary prefix operator.
func isUnaryPrefixExpressionOperand(left *formatting.FormatToken, rightContext syntax.Context) bool {
	return (IsUnaryOperator(left.Token.Kind) &&
		rightContext.IsInsideFirst(
			[]syntax.NodeKind{syntax.NodeKind_UnaryPrefixExpression},
			[]syntax.NodeKind{syntax.NodeKind_Expression})) ||
		left.Token.Kind == syntax.TokenKind_PoundPound
}

// isInsideNumericLiteral reports whether the boundary lies between the parts
// of one based numeric literal, e.g. between "16" and "'h" or "'h" and "123".
func isInsideNumericLiteral(left, right *formatting.FormatToken) bool {
	return (Classify(left.Token.Kind) == TokenClass_NumericLiteral &&
		Classify(right.Token.Kind) == TokenClass_NumericBase) ||
		Classify(left.Token.Kind) == TokenClass_NumericBase
}

func inDeclaredDimensions(context syntax.Context) bool {
	return context.IsInsideFirst(
		[]syntax.NodeKind{syntax.NodeKind_PackedDimensions, syntax.NodeKind_UnpackedDimensions},
		nil)
}

func inRangeLikeContext(context syntax.Context) bool {
	return context.IsInsideFirst(
		[]syntax.NodeKind{
			syntax.NodeKind_DimensionScalar, syntax.NodeKind_DimensionRange,
			syntax.NodeKind_DimensionSlice, syntax.NodeKind_CycleDelayRange,
		},
		nil)
}

// spacesRequiredBetween returns the minimum number of spaces required between
// left and right when they share a line. Rules are ordered by precedence and
// the first match wins. Returns unhandledSpaces when no rule matched.
func spacesRequiredBetween(left, right *formatting.FormatToken,
	leftContext, rightContext syntax.Context,
	style formatting.Style) withReason[int] {
	leftClass := Classify(left.Token.Kind)
	rightClass := Classify(right.Token.Kind)

	// Preserve space after escaped identifiers.
	if left.Token.Kind == syntax.TokenKind_EscapedIdentifier {
		return withReason[int]{1, "escaped identifiers must end with whitespace"}
	}

	if right.Token.Kind == syntax.TokenKind_LineCont {
		return withReason[int]{0, `no spaces before \ line continuation`}
	}
	if left.Token.Kind == syntax.TokenKind_LineCont {
		return withReason[int]{0, `no spaces after \ line continuation`}
	}

	if IsComment(rightClass) {
		return withReason[int]{2, "require 2 spaces before comments"}
	}

	if leftClass == TokenClass_OpenGroup || rightClass == TokenClass_CloseGroup {
		return withReason[int]{0, `prefer "(foo)" over "( foo )", "[x]" over "[ x ]", "{y}" over "{ y }"`}
	}

	// Width, base and digits of one literal stay glued together, before any
	// operator disambiguation gets a chance to see the base's apostrophe.
	if isInsideNumericLiteral(left, right) {
		return withReason[int]{0, "no space inside based numeric literals"}
	}

	// Unary operators (context-sensitive).
	if isUnaryPrefixExpressionOperand(left, rightContext) &&
		(leftClass != TokenClass_BinaryOperator || !IsUnaryOperator(right.Token.Kind)) {
		return withReason[int]{0, "bind unary prefix operator close to its operand"}
	}

	if left.Token.Kind == syntax.TokenKind_ScopeRes {
		return withReason[int]{0, `prefer "::id" over ":: id"`}
	}

	// Delimiters, list separators.
	if right.Token.Kind == syntax.TokenKind_Comma {
		return withReason[int]{0, "no space before comma"}
	}
	if left.Token.Kind == syntax.TokenKind_Comma {
		return withReason[int]{1, "require space after comma"}
	}

	if isAnySemicolon(right.Token.Kind) {
		if left.Token.Kind == syntax.TokenKind_Colon {
			return withReason[int]{1, `space between colon and semicolon, e.g. "default: ;"`}
		}
		return withReason[int]{0, "no space before semicolon"}
	}
	if isAnySemicolon(left.Token.Kind) {
		return withReason[int]{1, "require space after semicolon"}
	}

	if left.Token.Kind == syntax.TokenKind_KwReturn {
		return withReason[int]{1, "space between return keyword and return value"}
	}

	if rightContext.IsInsideFirst([]syntax.NodeKind{syntax.NodeKind_StreamingConcatenation}, nil) &&
		style.CompactIndexingAndSelections {
		if left.Token.Kind == syntax.TokenKind_Shl || left.Token.Kind == syntax.TokenKind_Shr {
			return withReason[int]{0, "no space around streaming operators"}
		}
		if leftClass == TokenClass_NumericLiteral ||
			leftClass == TokenClass_Identifier ||
			leftClass == TokenClass_Keyword {
			return withReason[int]{0, "no space around streaming operator slice size"}
		}
	}

	// "@(" over "@ (" and "@*" over "@ *" in event controls.
	if left.Token.Kind == syntax.TokenKind_At {
		return withReason[int]{0, `no space after "@" in most cases`}
	}
	if right.Token.Kind == syntax.TokenKind_At {
		return withReason[int]{1, `space before "@" in most cases`}
	}

	// Do not force space between '^' and '{' operators.
	if rightContext.IsInsideFirst([]syntax.NodeKind{syntax.NodeKind_UnaryPrefixExpression}, nil) &&
		IsUnaryOperator(left.Token.Kind) &&
		right.Token.Kind == syntax.TokenKind_LBrace {
		return withReason[int]{0, "no space between unary and concatenation operators"}
	}

	// Assignment operators are in the same class as binary operators.
	if leftClass == TokenClass_BinaryOperator || rightClass == TokenClass_BinaryOperator {
		// Inside [], allow 0 or 1 spaces, and symmetrize.
		if rightClass == TokenClass_BinaryOperator && inRangeLikeContext(rightContext) {
			if style.CompactIndexingAndSelections && !inDeclaredDimensions(rightContext) {
				return withReason[int]{0, "compact binary expressions inside indexing operator []"}
			}
			spaces := len(right.LeadingSpaces)
			if spaces > 1 {
				spaces = 1
			}
			return withReason[int]{spaces, "limit <= 1 space before binary operator inside []"}
		}
		if leftClass == TokenClass_BinaryOperator && inRangeLikeContext(leftContext) {
			return withReason[int]{left.Before.SpacesRequired,
				"symmetrize spaces before and after binary operator inside []"}
		}
		return withReason[int]{1, "space around binary and assignment operators"}
	}

	// Some lexical tokens like macro definition bodies can be empty strings.
	if left.Token.Content == "" || right.Token.Content == "" {
		return withReason[int]{0, "no additional space around empty-string tokens"}
	}

	// Hierarchy examples: "a.b", "a::b".
	if leftClass == TokenClass_Hierarchy || rightClass == TokenClass_Hierarchy {
		return withReason[int]{0, "no space separating hierarchy components"}
	}

	// Cast operator, e.g. "void'(...)".
	if right.Token.Kind == syntax.TokenKind_Apostrophe || left.Token.Kind == syntax.TokenKind_Apostrophe {
		return withReason[int]{0, "no space around cast operator"}
	}

	if right.Token.Kind == syntax.TokenKind_LParen {
		// "#(" over "# (" for parameter formals and arguments.
		if left.Token.Kind == syntax.TokenKind_Hash {
			return withReason[int]{0, `fuse "#("`}
		}
		// ") (" between parameter and port formals.
		if left.Token.Kind == syntax.TokenKind_RParen {
			return withReason[int]{1, `separate ") (" between parameters and ports`}
		}
		if leftClass == TokenClass_Identifier || IsKeywordCallable(left.Token.Kind) {
			if rightContext.IsInside(syntax.NodeKind_ActualNamedPort) ||
				rightContext.IsInside(syntax.NodeKind_Port) {
				return withReason[int]{0, "named port: no space between id and '('"}
			}
			if rightContext.IsInside(syntax.NodeKind_PrimitiveGateInstance) {
				return withReason[int]{1, "primitive instance: space between id and '('"}
			}
			if leftContext.DirectParentIs(syntax.NodeKind_GateInstance) &&
				rightContext.IsInside(syntax.NodeKind_GateInstance) {
				return withReason[int]{1, "module instantiation: space between id and '('"}
			}
			if leftContext.DirectParentIs(syntax.NodeKind_ModuleHeader) {
				return withReason[int]{1, "module/interface declaration: space between id and '('"}
			}
			return withReason[int]{0, "function/constructor calls: no space before '('"}
		}
	}

	if left.Token.Kind == syntax.TokenKind_Colon {
		// Spacing in ranges. The left token was already annotated, so its own
		// spacing can be mirrored here.
		if inRangeLikeContext(rightContext) {
			return withReason[int]{left.Before.SpacesRequired,
				"symmetrize spaces before and after ':' in bit slice"}
		}
		return withReason[int]{1, "default to 1 space after ':'"}
	}

	// E.g. "typedef struct { ... } foo_t;".
	if left.Token.Kind == syntax.TokenKind_RBrace {
		return withReason[int]{1, "space after '}' in most other cases"}
	}
	if right.Token.Kind == syntax.TokenKind_LBrace {
		if leftClass == TokenClass_Keyword {
			return withReason[int]{1, "space between keyword and '{'"}
		}
		if rightContext.DirectParentsAre(syntax.NodeKind_BraceGroup, syntax.NodeKind_ConstraintDeclaration) {
			return withReason[int]{1, "space before '{' when opening a constraint body"}
		}
		if rightContext.DirectParentsAre(syntax.NodeKind_BraceGroup, syntax.NodeKind_CoverPoint) {
			return withReason[int]{1, "space before '{' when opening a coverpoint body"}
		}
		if rightContext.DirectParentsAre(syntax.NodeKind_BraceGroup, syntax.NodeKind_EnumType) {
			return withReason[int]{1, "space before '{' when opening an enum type"}
		}
		if left.Token.Kind == syntax.TokenKind_RParen {
			return withReason[int]{1, "space between ')' and '{', e.g. conditional constraint"}
		}
		if left.Token.Kind == syntax.TokenKind_RBracket && inDeclaredDimensions(leftContext) {
			return withReason[int]{1, "space between declared array type and '{'"}
		}
		return withReason[int]{0, "no space before '{' in most other contexts"}
	}

	// Padding around packed array dimensions like "type [N] id;".
	if (leftClass == TokenClass_Keyword || leftClass == TokenClass_Identifier) &&
		right.Token.Kind == syntax.TokenKind_LBracket {
		if rightContext.IsInsideFirst(
			[]syntax.NodeKind{syntax.NodeKind_PackedDimensions},
			[]syntax.NodeKind{syntax.NodeKind_Expression}) {
			return withReason[int]{1, "spacing before [packed dimensions] of declarations"}
		}
		// All other contexts, such as "a[i]" indices.
		return withReason[int]{0, "no space before '[' outside declarations"}
	}
	if left.Token.Kind == syntax.TokenKind_RBracket && rightClass == TokenClass_Identifier {
		if rightContext.DirectParentsAre(syntax.NodeKind_UnqualifiedId,
			syntax.NodeKind_DataTypeImplicitBasicIdDimensions) {
			return withReason[int]{1, "spacing after [packed dimensions] of declarations"}
		}
		// "] id" in other contexts stays unhandled.
	}

	// Cannot merge tokens that would lex as a different token.
	if pairwiseNonmergeable(left.Token.Kind) && pairwiseNonmergeable(right.Token.Kind) {
		return withReason[int]{1, "cannot pair {number, identifier, keyword} without space"}
	}

	if right.Token.Kind == syntax.TokenKind_Colon {
		if left.Token.Kind == syntax.TokenKind_KwDefault {
			return withReason[int]{0, `no space inside "default:"`}
		}
		if rightContext.DirectParentIsOneOf(
			syntax.NodeKind_CaseItem, syntax.NodeKind_CaseInsideItem,
			syntax.NodeKind_CasePatternItem, syntax.NodeKind_GenerateCaseItem,
			syntax.NodeKind_PropertyCaseItem, syntax.NodeKind_RandSequenceCaseItem,
			syntax.NodeKind_CoverPoint) {
			return withReason[int]{0, "case-like items, no space before ':'"}
		}
		// Everything that resembles an end-label wants 1 space.
		if IsEndKeyword(left.Token.Kind) {
			return withReason[int]{1, "space between end-keyword and ':'"}
		}
		// Everything that resembles a prefix-statement label.
		if rightContext.DirectParentIsOneOf(syntax.NodeKind_BlockIdentifier,
			syntax.NodeKind_LabeledStatement, syntax.NodeKind_GenerateBlock) {
			return withReason[int]{1, "space before ':' in prefix block labels"}
		}
		if rightContext.DirectParentIs(syntax.NodeKind_ConditionExpression) {
			return withReason[int]{1, "condition ?: expression wants 1 space around ':'"}
		}
		// Spacing in ranges.
		if inRangeLikeContext(rightContext) {
			spaces := len(right.LeadingSpaces)
			if spaces > 1 {
				// A newline among the leading spaces means the count is really
				// indentation, which must not be preserved as padding.
				if strings.Contains(right.LeadingSpaces, "\n") {
					spaces = 0
				} else {
					spaces = 1
				}
			}
			return withReason[int]{spaces, "limit spaces before ':' in bit slice to 0 or 1"}
		}
		if rightContext.DirectParentIs(syntax.NodeKind_ValueRange) {
			return withReason[int]{1, "spaces around ':' in value ranges"}
		}
		// Not explicitly handled, fall through.
	}

	// "if (...)", "for (...)" over "if(...)", "for(...)".
	if leftClass == TokenClass_Keyword {
		return withReason[int]{1, "space between flow control keywords and '('"}
	}

	if left.Token.Kind == syntax.TokenKind_TimeLiteral {
		if right.Token.Kind == syntax.TokenKind_Semicolon {
			return withReason[int]{0, "no space between time literal and ';'"}
		}
		return withReason[int]{1, "space after time literals in most other cases"}
	}

	if right.Token.Kind == syntax.TokenKind_PoundPound {
		return withReason[int]{1, "space before ## delay operator"}
	}
	if leftClass == TokenClass_UnaryOperator {
		return withReason[int]{0, `"++i" over "++ i"`}
	}
	if rightClass == TokenClass_UnaryOperator {
		return withReason[int]{0, `"i++" over "i ++"`}
	}

	// E.g. 1'b1, 16'hbabe.
	if left.Token.Kind == syntax.TokenKind_DecNumber &&
		right.Token.Kind == syntax.TokenKind_UnbasedNumber {
		return withReason[int]{0, "no space between numeric width and un-based number"}
	}

	// Brackets in multi-dimensional arrays/indices.
	if left.Token.Kind == syntax.TokenKind_RBracket &&
		right.Token.Kind == syntax.TokenKind_LBracket {
		return withReason[int]{0, "no spaces separating multidimensional arrays/indices"}
	}

	if left.Token.Kind == syntax.TokenKind_Hash {
		return withReason[int]{0, "no spaces after '#' (delay expressions, parameters)"}
	}
	if right.Token.Kind == syntax.TokenKind_Hash {
		// Parameterized classes often appear with method calls like
		// "type#(params...)::method(...);".
		if leftContext.DirectParentIs(syntax.NodeKind_UnqualifiedId) &&
			!leftContext.IsInsideFirst(
				[]syntax.NodeKind{
					syntax.NodeKind_InstantiationType, syntax.NodeKind_BindTargetInstance,
					syntax.NodeKind_ExtendsList, syntax.NodeKind_BraceGroup,
				},
				nil) {
			return withReason[int]{0, "no space before '#' directly inside an unqualified id"}
		}
		return withReason[int]{1, "spaces before '#' in most other contexts"}
	}

	if rightClass == TokenClass_Keyword {
		return withReason[int]{1, "space before keywords in most other cases"}
	}

	// E.g. "always_ff @(posedge clk) begin", "case (expr):".
	if left.Token.Kind == syntax.TokenKind_RParen {
		if right.Token.Kind == syntax.TokenKind_Colon {
			return withReason[int]{0, "no space between ')' and ':'"}
		}
		return withReason[int]{1, "space between ')' and most other tokens"}
	}
	if left.Token.Kind == syntax.TokenKind_MacroCallClose {
		if isAnySemicolon(right.Token.Kind) {
			return withReason[int]{0, "no space between macro-closing ')' and ';'"}
		}
		// Really only expect comments to follow a macro-closing ')'.
		return withReason[int]{1, "space between macro-closing ')' and most other tokens"}
	}
	if left.Token.Kind == syntax.TokenKind_RBracket {
		return withReason[int]{1, "space between ']' and most other tokens"}
	}

	if right.Token.Kind.IsPreprocessorDirective() {
		// Most of these start on their own line anyway.
		return withReason[int]{1, "preprocessor directives separated from token on left"}
	}

	// Nothing should ever be to the right of an EOL comment, but handling
	// left comments here keeps unwanted spacing from being preserved.
	if IsComment(leftClass) {
		return withReason[int]{1, "space after comments"}
	}

	return withReason[int]{unhandledSpaces, "spacing not explicitly handled"}
}
