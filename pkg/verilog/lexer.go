package verilog

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of the structural Verilog subset
// accepted by the frontend. Keywords are lowercase and case-sensitive,
// as in Verilog proper.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - line and block
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?:[^*]|\*+[^*/])*\*+/`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s]+`},

	// Keywords
	{Name: "KwModule", Pattern: `\bmodule\b`},
	{Name: "KwEndmodule", Pattern: `\bendmodule\b`},
	{Name: "KwInput", Pattern: `\binput\b`},
	{Name: "KwOutput", Pattern: `\boutput\b`},
	{Name: "KwInout", Pattern: `\binout\b`},
	{Name: "KwWire", Pattern: `\bwire\b`},
	{Name: "KwAssign", Pattern: `\bassign\b`},

	// Identifiers and literals
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_$]*`},
	{Name: "Number", Pattern: `[0-9]+`},

	// Punctuation
	{Name: "Equals", Pattern: `=`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
})
