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

// Package syntax defines the token and concrete-syntax-tree model shared by
// the formatting subsystem. Tokens and trees are produced by an external
// lexer/parser and are read-only here; this package adds the ancestor-context
// bookkeeping needed by context-sensitive formatting rules.
package syntax

import "fmt"

// TokenKind is the closed enumeration of lexical token kinds consulted by the
// spacing rule tables. It intentionally covers only the SystemVerilog surface
// the formatter needs to reason about; everything else is Unassigned.
type TokenKind int

const (
	// Special kind indicating the end of the token stream (or the zero value).
	TokenKind_EOF TokenKind = iota

	// Every complete token that has no dedicated kind below.
	TokenKind_Unassigned

	// Identifiers.

	TokenKind_Identifier
	TokenKind_EscapedIdentifier // `\foo.bar ` must keep its trailing whitespace
	TokenKind_SystemTFIdentifier

	// Macro-related tokens.

	TokenKind_MacroIdentifier // `FOO referenced in ordinary code
	TokenKind_MacroCallId     // `FOO immediately followed by an argument list
	TokenKind_MacroCallClose  // the ')' closing a macro call at end of line
	TokenKind_MacroArg        // unlexed macro-call argument text
	TokenKind_MacroDefineBody // unlexed `define body, excludes trailing newline
	TokenKind_LineCont        // '\' line continuation inside a definition

	// Reserved keywords consulted by the rule tables.

	TokenKind_KwAlways
	TokenKind_KwAlwaysComb
	TokenKind_KwAlwaysFF
	TokenKind_KwAssign
	TokenKind_KwBegin
	TokenKind_KwCase
	TokenKind_KwDefault
	TokenKind_KwElse
	TokenKind_KwEnd
	TokenKind_KwEndcase
	TokenKind_KwEndclass
	TokenKind_KwEndfunction
	TokenKind_KwEndgenerate
	TokenKind_KwEndmodule
	TokenKind_KwEndpackage
	TokenKind_KwEndtask
	TokenKind_KwFor
	TokenKind_KwFork
	TokenKind_KwFunction
	TokenKind_KwGenerate
	TokenKind_KwIf
	TokenKind_KwInitial
	TokenKind_KwJoin
	TokenKind_KwJoinAny
	TokenKind_KwJoinNone
	TokenKind_KwModule
	TokenKind_KwNegedge
	TokenKind_KwNew
	TokenKind_KwPosedge
	TokenKind_KwRandomize
	TokenKind_KwReturn
	TokenKind_KwTypedef
	TokenKind_KwWhile

	// Numeric literal parts. A based literal is lexed as up to three tokens:
	// an optional decimal width, a base marker, and the digit body.

	TokenKind_DecNumber // bare decimal number, also the width of a based literal
	TokenKind_BinBase   // 'b
	TokenKind_OctBase   // 'o
	TokenKind_DecBase   // 'd
	TokenKind_HexBase   // 'h
	TokenKind_BinDigits
	TokenKind_OctDigits
	TokenKind_DecDigits
	TokenKind_HexDigits
	TokenKind_UnbasedNumber // '0, '1, 'x, 'z
	TokenKind_RealTime
	TokenKind_TimeLiteral // e.g. 10ns

	TokenKind_StringLiteral

	// Single-character operators and separators.

	TokenKind_Plus
	TokenKind_Minus
	TokenKind_Star
	TokenKind_Slash
	TokenKind_Percent
	TokenKind_Amp
	TokenKind_Pipe
	TokenKind_Caret
	TokenKind_Tilde
	TokenKind_Bang
	TokenKind_Less
	TokenKind_Greater
	TokenKind_Equals
	TokenKind_Question
	TokenKind_Colon
	TokenKind_Dot
	TokenKind_Hash
	TokenKind_At
	TokenKind_Apostrophe // cast operator, e.g. void'(...)

	// Multi-character operators.

	TokenKind_ScopeRes   // ::
	TokenKind_PoundPound // ##, cycle delay, spaced like a unary prefix
	TokenKind_Shl        // <<
	TokenKind_Shr        // >>
	TokenKind_Incr       // ++
	TokenKind_Decr       // --
	TokenKind_Le         // <=
	TokenKind_Ge         // >=
	TokenKind_EqEq       // ==
	TokenKind_NotEq      // !=
	TokenKind_LAnd       // &&
	TokenKind_LOr        // ||
	TokenKind_Nand       // ~&
	TokenKind_Nor        // ~|
	TokenKind_Xnor       // ~^
	TokenKind_PlusEq     // +=
	TokenKind_MinusEq    // -=

	// Structural punctuation.

	TokenKind_LParen
	TokenKind_RParen
	TokenKind_LBracket
	TokenKind_RBracket
	TokenKind_LBrace
	TokenKind_RBrace
	TokenKind_Comma
	TokenKind_Semicolon
	// Syntactically disambiguated variant of ';' kept distinct by the parser.
	TokenKind_SemicolonEndOfAssertionVariableDeclarations

	// Comments.

	TokenKind_EOLComment   // // comment, ends at the end of its line
	TokenKind_BlockComment // /* comment */

	// Preprocessor directives. Kept contiguous so that range checks work,
	// see IsPreprocessorDirective.

	TokenKind_PPDefine
	TokenKind_PPIfdef
	TokenKind_PPIfndef
	TokenKind_PPElsif
	TokenKind_PPElse
	TokenKind_PPEndif
	TokenKind_PPInclude
	TokenKind_PPUndef

	// Macro name being defined, i.e. the identifier right after `define.
	TokenKind_PPIdentifier

	// Edge descriptor in UDP tables and specify blocks, e.g. "01", "0x".
	TokenKind_EdgeDescriptor
)

var tokenKindNames = map[TokenKind]string{
	TokenKind_EOF:                "end of file",
	TokenKind_Unassigned:         "unassigned token",
	TokenKind_Identifier:         "identifier",
	TokenKind_EscapedIdentifier:  "escaped identifier",
	TokenKind_SystemTFIdentifier: "system task/function identifier",
	TokenKind_MacroIdentifier:    "macro identifier",
	TokenKind_MacroCallId:        "macro call identifier",
	TokenKind_MacroCallClose:     "macro call ')'",
	TokenKind_MacroArg:           "macro argument",
	TokenKind_MacroDefineBody:    "macro definition body",
	TokenKind_LineCont:           `line continuation '\'`,
	TokenKind_KwAlways:           "keyword 'always'",
	TokenKind_KwAlwaysComb:       "keyword 'always_comb'",
	TokenKind_KwAlwaysFF:         "keyword 'always_ff'",
	TokenKind_KwAssign:           "keyword 'assign'",
	TokenKind_KwBegin:            "keyword 'begin'",
	TokenKind_KwCase:             "keyword 'case'",
	TokenKind_KwDefault:          "keyword 'default'",
	TokenKind_KwElse:             "keyword 'else'",
	TokenKind_KwEnd:              "keyword 'end'",
	TokenKind_KwEndcase:          "keyword 'endcase'",
	TokenKind_KwEndclass:         "keyword 'endclass'",
	TokenKind_KwEndfunction:      "keyword 'endfunction'",
	TokenKind_KwEndgenerate:      "keyword 'endgenerate'",
	TokenKind_KwEndmodule:        "keyword 'endmodule'",
	TokenKind_KwEndpackage:       "keyword 'endpackage'",
	TokenKind_KwEndtask:          "keyword 'endtask'",
	TokenKind_KwFor:              "keyword 'for'",
	TokenKind_KwFork:             "keyword 'fork'",
	TokenKind_KwFunction:         "keyword 'function'",
	TokenKind_KwGenerate:         "keyword 'generate'",
	TokenKind_KwIf:               "keyword 'if'",
	TokenKind_KwInitial:          "keyword 'initial'",
	TokenKind_KwJoin:             "keyword 'join'",
	TokenKind_KwJoinAny:          "keyword 'join_any'",
	TokenKind_KwJoinNone:         "keyword 'join_none'",
	TokenKind_KwModule:           "keyword 'module'",
	TokenKind_KwNegedge:          "keyword 'negedge'",
	TokenKind_KwNew:              "keyword 'new'",
	TokenKind_KwPosedge:          "keyword 'posedge'",
	TokenKind_KwRandomize:        "keyword 'randomize'",
	TokenKind_KwReturn:           "keyword 'return'",
	TokenKind_KwTypedef:          "keyword 'typedef'",
	TokenKind_KwWhile:            "keyword 'while'",
	TokenKind_DecNumber:          "decimal number",
	TokenKind_BinBase:            "binary base 'b",
	TokenKind_OctBase:            "octal base 'o",
	TokenKind_DecBase:            "decimal base 'd",
	TokenKind_HexBase:            "hexadecimal base 'h",
	TokenKind_BinDigits:          "binary digits",
	TokenKind_OctDigits:          "octal digits",
	TokenKind_DecDigits:          "decimal digits",
	TokenKind_HexDigits:          "hexadecimal digits",
	TokenKind_UnbasedNumber:      "unbased number",
	TokenKind_RealTime:           "real literal",
	TokenKind_TimeLiteral:        "time literal",
	TokenKind_StringLiteral:      `"string literal"`,
	TokenKind_Plus:               "operator '+'",
	TokenKind_Minus:              "operator '-'",
	TokenKind_Star:               "operator '*'",
	TokenKind_Slash:              "operator '/'",
	TokenKind_Percent:            "operator '%'",
	TokenKind_Amp:                "operator '&'",
	TokenKind_Pipe:               "operator '|'",
	TokenKind_Caret:              "operator '^'",
	TokenKind_Tilde:              "operator '~'",
	TokenKind_Bang:               "operator '!'",
	TokenKind_Less:               "operator '<'",
	TokenKind_Greater:            "operator '>'",
	TokenKind_Equals:             "operator '='",
	TokenKind_Question:           "operator '?'",
	TokenKind_Colon:              "separator ':'",
	TokenKind_Dot:                "separator '.'",
	TokenKind_Hash:               "operator '#'",
	TokenKind_At:                 "operator '@'",
	TokenKind_Apostrophe:         `cast operator "'"`,
	TokenKind_ScopeRes:           "operator '::'",
	TokenKind_PoundPound:         "operator '##'",
	TokenKind_Shl:                "operator '<<'",
	TokenKind_Shr:                "operator '>>'",
	TokenKind_Incr:               "operator '++'",
	TokenKind_Decr:               "operator '--'",
	TokenKind_Le:                 "operator '<='",
	TokenKind_Ge:                 "operator '>='",
	TokenKind_EqEq:               "operator '=='",
	TokenKind_NotEq:              "operator '!='",
	TokenKind_LAnd:               "operator '&&'",
	TokenKind_LOr:                "operator '||'",
	TokenKind_Nand:               "operator '~&'",
	TokenKind_Nor:                "operator '~|'",
	TokenKind_Xnor:               "operator '~^'",
	TokenKind_PlusEq:             "operator '+='",
	TokenKind_MinusEq:            "operator '-='",
	TokenKind_LParen:             "symbol '('",
	TokenKind_RParen:             "symbol ')'",
	TokenKind_LBracket:           "symbol '['",
	TokenKind_RBracket:           "symbol ']'",
	TokenKind_LBrace:             "symbol '{'",
	TokenKind_RBrace:             "symbol '}'",
	TokenKind_Comma:              "symbol ','",
	TokenKind_Semicolon:          "symbol ';'",
	TokenKind_SemicolonEndOfAssertionVariableDeclarations: "symbol ';'",
	TokenKind_EOLComment:     "end-of-line comment",
	TokenKind_BlockComment:   "block comment",
	TokenKind_PPDefine:       "directive '`define'",
	TokenKind_PPIfdef:        "directive '`ifdef'",
	TokenKind_PPIfndef:       "directive '`ifndef'",
	TokenKind_PPElsif:        "directive '`elsif'",
	TokenKind_PPElse:         "directive '`else'",
	TokenKind_PPEndif:        "directive '`endif'",
	TokenKind_PPInclude:      "directive '`include'",
	TokenKind_PPUndef:        "directive '`undef'",
	TokenKind_PPIdentifier:   "macro definition name",
	TokenKind_EdgeDescriptor: "edge descriptor",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown token kind %d", int(k))
}

// IsPreprocessorDirective reports whether the kind is one of the `directives
// that always start a new line when formatted.
func (k TokenKind) IsPreprocessorDirective() bool {
	return k >= TokenKind_PPDefine && k <= TokenKind_PPUndef
}

// Token is a single lexical unit. Tokens are immutable once lexed; Content
// borrows from the original source buffer and Offset is the byte position of
// the token's first character in that buffer.
type Token struct {
	Kind    TokenKind
	Content string
	Offset  int
}

// End returns the byte offset just past the token's last character.
func (t Token) End() int {
	return t.Offset + len(t.Content)
}

func (t Token) String() string {
	return fmt.Sprintf("(%v @%d: %q)", t.Kind, t.Offset, t.Content)
}
