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

// Package spacing annotates a token stream with inter-token spacing and
// line-break decisions, consulting the syntax tree context of each token.
package spacing

import (
	"fmt"

	"github.com/chipsalliance/svfmt/internal/collections"
	"github.com/chipsalliance/svfmt/internal/syntax"
)

// TokenClass is the coarse formatting role of a token, used where the rules
// do not care about the exact token kind.
type TokenClass int

const (
	TokenClass_Unknown TokenClass = iota
	TokenClass_Keyword
	TokenClass_Identifier
	TokenClass_NumericLiteral
	TokenClass_NumericBase
	TokenClass_BinaryOperator
	TokenClass_UnaryOperator
	TokenClass_Hierarchy
	TokenClass_OpenGroup
	TokenClass_CloseGroup
	TokenClass_EOLComment
	TokenClass_CommentBlock
	TokenClass_EdgeDescriptor
	TokenClass_StringLiteral
)

var tokenClassNames = map[TokenClass]string{
	TokenClass_Unknown:        "unknown",
	TokenClass_Keyword:        "keyword",
	TokenClass_Identifier:     "identifier",
	TokenClass_NumericLiteral: "numeric literal",
	TokenClass_NumericBase:    "numeric base",
	TokenClass_BinaryOperator: "binary operator",
	TokenClass_UnaryOperator:  "unary operator",
	TokenClass_Hierarchy:      "hierarchy separator",
	TokenClass_OpenGroup:      "open group",
	TokenClass_CloseGroup:     "close group",
	TokenClass_EOLComment:     "end-of-line comment",
	TokenClass_CommentBlock:   "block comment",
	TokenClass_EdgeDescriptor: "edge descriptor",
	TokenClass_StringLiteral:  "string literal",
}

func (c TokenClass) String() string {
	if name, ok := tokenClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown token class %d", int(c))
}

var tokenClasses = map[syntax.TokenKind]TokenClass{
	syntax.TokenKind_Identifier:         TokenClass_Identifier,
	syntax.TokenKind_EscapedIdentifier:  TokenClass_Identifier,
	syntax.TokenKind_SystemTFIdentifier: TokenClass_Identifier,
	syntax.TokenKind_MacroIdentifier:    TokenClass_Identifier,
	syntax.TokenKind_MacroCallId:        TokenClass_Identifier,
	syntax.TokenKind_PPIdentifier:       TokenClass_Identifier,

	syntax.TokenKind_DecNumber:     TokenClass_NumericLiteral,
	syntax.TokenKind_BinDigits:     TokenClass_NumericLiteral,
	syntax.TokenKind_OctDigits:     TokenClass_NumericLiteral,
	syntax.TokenKind_DecDigits:     TokenClass_NumericLiteral,
	syntax.TokenKind_HexDigits:     TokenClass_NumericLiteral,
	syntax.TokenKind_UnbasedNumber: TokenClass_NumericLiteral,
	syntax.TokenKind_RealTime:      TokenClass_NumericLiteral,
	syntax.TokenKind_TimeLiteral:   TokenClass_NumericLiteral,

	syntax.TokenKind_BinBase: TokenClass_NumericBase,
	syntax.TokenKind_OctBase: TokenClass_NumericBase,
	syntax.TokenKind_DecBase: TokenClass_NumericBase,
	syntax.TokenKind_HexBase: TokenClass_NumericBase,

	// '+', '-', '&', '|', '^' are also valid unary prefixes. The rules
	// disambiguate them by context; the default class is binary.
	syntax.TokenKind_Plus:     TokenClass_BinaryOperator,
	syntax.TokenKind_Minus:    TokenClass_BinaryOperator,
	syntax.TokenKind_Star:     TokenClass_BinaryOperator,
	syntax.TokenKind_Slash:    TokenClass_BinaryOperator,
	syntax.TokenKind_Percent:  TokenClass_BinaryOperator,
	syntax.TokenKind_Amp:      TokenClass_BinaryOperator,
	syntax.TokenKind_Pipe:     TokenClass_BinaryOperator,
	syntax.TokenKind_Caret:    TokenClass_BinaryOperator,
	syntax.TokenKind_Less:     TokenClass_BinaryOperator,
	syntax.TokenKind_Greater:  TokenClass_BinaryOperator,
	syntax.TokenKind_Equals:   TokenClass_BinaryOperator,
	syntax.TokenKind_Question: TokenClass_BinaryOperator,
	syntax.TokenKind_Shl:      TokenClass_BinaryOperator,
	syntax.TokenKind_Shr:      TokenClass_BinaryOperator,
	syntax.TokenKind_Le:       TokenClass_BinaryOperator,
	syntax.TokenKind_Ge:       TokenClass_BinaryOperator,
	syntax.TokenKind_EqEq:     TokenClass_BinaryOperator,
	syntax.TokenKind_NotEq:    TokenClass_BinaryOperator,
	syntax.TokenKind_LAnd:     TokenClass_BinaryOperator,
	syntax.TokenKind_LOr:      TokenClass_BinaryOperator,
	syntax.TokenKind_PlusEq:   TokenClass_BinaryOperator,
	syntax.TokenKind_MinusEq:  TokenClass_BinaryOperator,
	// Unlexed macro arguments are treated like operands of a binary operator
	// so they get surrounded by single spaces.
	syntax.TokenKind_MacroArg: TokenClass_BinaryOperator,

	syntax.TokenKind_Tilde:      TokenClass_UnaryOperator,
	syntax.TokenKind_Bang:       TokenClass_UnaryOperator,
	syntax.TokenKind_Nand:       TokenClass_UnaryOperator,
	syntax.TokenKind_Nor:        TokenClass_UnaryOperator,
	syntax.TokenKind_Xnor:       TokenClass_UnaryOperator,
	syntax.TokenKind_Incr:       TokenClass_UnaryOperator,
	syntax.TokenKind_Decr:       TokenClass_UnaryOperator,
	syntax.TokenKind_PoundPound: TokenClass_UnaryOperator,

	syntax.TokenKind_Dot:      TokenClass_Hierarchy,
	syntax.TokenKind_ScopeRes: TokenClass_Hierarchy,

	syntax.TokenKind_LParen:   TokenClass_OpenGroup,
	syntax.TokenKind_LBracket: TokenClass_OpenGroup,
	syntax.TokenKind_LBrace:   TokenClass_OpenGroup,

	syntax.TokenKind_RParen:         TokenClass_CloseGroup,
	syntax.TokenKind_RBracket:       TokenClass_CloseGroup,
	syntax.TokenKind_RBrace:         TokenClass_CloseGroup,
	syntax.TokenKind_MacroCallClose: TokenClass_CloseGroup,

	syntax.TokenKind_EOLComment:     TokenClass_EOLComment,
	syntax.TokenKind_BlockComment:   TokenClass_CommentBlock,
	syntax.TokenKind_EdgeDescriptor: TokenClass_EdgeDescriptor,
	syntax.TokenKind_StringLiteral:  TokenClass_StringLiteral,
}

// Classify maps a token kind to its formatting class. Keywords are classified
// by range; everything without an entry, including ':' whose role depends
// entirely on context, is Unknown.
func Classify(kind syntax.TokenKind) TokenClass {
	if kind >= syntax.TokenKind_KwAlways && kind <= syntax.TokenKind_KwWhile {
		return TokenClass_Keyword
	}
	if class, ok := tokenClasses[kind]; ok {
		return class
	}
	return TokenClass_Unknown
}

// IsComment reports whether the class is one of the two comment classes.
func IsComment(class TokenClass) bool {
	return class == TokenClass_EOLComment || class == TokenClass_CommentBlock
}

var unaryOperatorKinds = collections.SetOf(
	syntax.TokenKind_Plus,
	syntax.TokenKind_Minus,
	syntax.TokenKind_Tilde,
	syntax.TokenKind_Amp,
	syntax.TokenKind_Bang,
	syntax.TokenKind_Pipe,
	syntax.TokenKind_Caret,
	syntax.TokenKind_Nand,
	syntax.TokenKind_Nor,
	syntax.TokenKind_Xnor,
	syntax.TokenKind_Incr,
	syntax.TokenKind_Decr,
)

// IsUnaryOperator reports whether the token kind can act as a unary prefix
// operator, regardless of its default class.
func IsUnaryOperator(kind syntax.TokenKind) bool {
	return unaryOperatorKinds.Contains(kind)
}

// IsTernaryOperator reports whether the token kind is part of the ?: ternary
// operator.
func IsTernaryOperator(kind syntax.TokenKind) bool {
	return kind == syntax.TokenKind_Question || kind == syntax.TokenKind_Colon
}

var endKeywordKinds = collections.SetOf(
	syntax.TokenKind_KwEnd,
	syntax.TokenKind_KwEndcase,
	syntax.TokenKind_KwEndclass,
	syntax.TokenKind_KwEndfunction,
	syntax.TokenKind_KwEndgenerate,
	syntax.TokenKind_KwEndmodule,
	syntax.TokenKind_KwEndpackage,
	syntax.TokenKind_KwEndtask,
	syntax.TokenKind_KwJoin,
	syntax.TokenKind_KwJoinAny,
	syntax.TokenKind_KwJoinNone,
)

// IsEndKeyword reports whether the keyword closes a block-like construct.
func IsEndKeyword(kind syntax.TokenKind) bool {
	return endKeywordKinds.Contains(kind)
}

var callableKeywordKinds = collections.SetOf(
	syntax.TokenKind_KwNew,
	syntax.TokenKind_KwRandomize,
)

// IsKeywordCallable reports whether the keyword may be called like a function,
// so that a following '(' attaches without a space.
func IsKeywordCallable(kind syntax.TokenKind) bool {
	return callableKeywordKinds.Contains(kind)
}

func isAnySemicolon(kind syntax.TokenKind) bool {
	return kind == syntax.TokenKind_Semicolon ||
		kind == syntax.TokenKind_SemicolonEndOfAssertionVariableDeclarations
}

// pairwiseNonmergeable reports whether the token would lex differently if
// glued onto a neighbor of the same nature. Two such tokens always need at
// least one space between them.
func pairwiseNonmergeable(kind syntax.TokenKind) bool {
	if kind == syntax.TokenKind_DecNumber {
		return true
	}
	class := Classify(kind)
	return class == TokenClass_Identifier || class == TokenClass_Keyword
}
