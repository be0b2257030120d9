// Package token defines the lexical token vocabulary of the Igbo toy
// language: the closed set of token kinds produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// Kind identifies the category of a Token. It is a string so that
// debugging output (Token.String, test failure messages) is readable
// without a separate stringer.
type Kind string

// The closed set of token kinds. Lexical analysis never produces a Kind
// outside this list.
const (
	// Keywords
	DEE     Kind = "DEE"     // declare
	MA      Kind = "MA"      // if
	MANA    Kind = "MANA"    // else
	MGBE    Kind = "MGBE"    // while
	GOSI    Kind = "GOSI"    // print
	EZIOKWU Kind = "EZIOKWU" // true literal
	UGHA    Kind = "UGHA"    // false literal

	// Literals/names
	IDENTIFIER Kind = "IDENTIFIER"
	NUMBER     Kind = "NUMBER"
	STRING     Kind = "STRING"

	// Operators
	ASSIGN        Kind = "ASSIGN"
	PLUS          Kind = "PLUS"
	MINUS         Kind = "MINUS"
	MULTIPLY      Kind = "MULTIPLY"
	DIVIDE        Kind = "DIVIDE"
	EQUAL         Kind = "EQUAL"
	NOT_EQUAL     Kind = "NOT_EQUAL"
	LESS          Kind = "LESS"
	GREATER       Kind = "GREATER"
	LESS_EQUAL    Kind = "LESS_EQUAL"
	GREATER_EQUAL Kind = "GREATER_EQUAL"

	// Punctuation
	LPAREN Kind = "LPAREN"
	RPAREN Kind = "RPAREN"
	LBRACE Kind = "LBRACE"
	RBRACE Kind = "RBRACE"

	// Terminator
	EOF Kind = "EOF"
)

// TrueLiteral and FalseLiteral are the canonical source spellings of the
// two boolean keywords. Every component that needs to recognize or print
// a boolean literal (lexer keyword table, parser BOOL payload, evaluator
// comparison, print formatting) uses these two constants rather than
// re-typing the UTF-8 bytes, which is what the historical divergent-copy
// bug in the original implementation failed to do for the false literal.
const (
	TrueLiteral  = "eziokwu"
	FalseLiteral = "ụgha"
)

// Keywords is the fixed, byte-exact lookup table used by the lexer to
// classify an identifier-shaped lexeme as a keyword.
var Keywords = map[string]Kind{
	"dee":        DEE,
	"ma":         MA,
	"mana":       MANA,
	"mgbe":       MGBE,
	"gosi":       GOSI,
	TrueLiteral:  EZIOKWU,
	FalseLiteral: UGHA,
}

// LookupIdentifier classifies a scanned identifier-shaped lexeme,
// returning its keyword Kind or IDENTIFIER if it is not reserved.
func LookupIdentifier(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER
}

// Token is an immutable lexical unit: a kind, the exact (or canonical)
// source lexeme, and the 1-based line it started on. The token sequence
// is owned by the lexer and consumed left-to-right by the parser.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// New builds a Token with the given kind, lexeme, and line.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// String renders the token for debugging, e.g. "NUMBER(42)@3".
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Lexeme, t.Line)
}
