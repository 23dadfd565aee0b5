package lexer

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Structural tokens
	TOKEN_EOF      TokenType = iota
	TOKEN_NEWLINE            // end of a logical line
	TOKEN_COLON              // :
	TOKEN_COMMA              // ,
	TOKEN_DOT                // .
	TOKEN_EQUALS             // =
	TOKEN_LPAREN             // (
	TOKEN_RPAREN             // )
	TOKEN_LBRACKET           // [
	TOKEN_RBRACKET           // ]

	// Literal tokens
	TOKEN_STRING_LIT  // "hello world" or 'hello world' (quotes kept)
	TOKEN_NUMBER_LIT  // 42
	TOKEN_BOOLEAN_LIT // true, false
	TOKEN_IDENTIFIER  // HomeButton, hb, width, ...
	TOKEN_ARITH_OP    // + - * /

	// ── Keywords ──

	TOKEN_BASE_COMPONENT // BUTTON, TEXT, PICTURE, CHECKBOX, CONTAINER, TEXTINPUT
	TOKEN_WITH           // WITH
	TOKEN_AS             // AS
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_NEWLINE:        "NEWLINE",
	TOKEN_COLON:          "COLON",
	TOKEN_COMMA:          "COMMA",
	TOKEN_DOT:            "DOT",
	TOKEN_EQUALS:         "EQUALS",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACKET:       "LBRACKET",
	TOKEN_RBRACKET:       "RBRACKET",
	TOKEN_STRING_LIT:     "STRING",
	TOKEN_NUMBER_LIT:     "NUMBER",
	TOKEN_BOOLEAN_LIT:    "BOOLEAN",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_ARITH_OP:       "ARITH_OP",
	TOKEN_BASE_COMPONENT: "BASE_COMPONENT",
	TOKEN_WITH:           "WITH",
	TOKEN_AS:             "AS",
}

// keywords maps reserved words to their token types. Keywords are
// case-sensitive: "Text" is an identifier, "TEXT" is a base component.
var keywords = map[string]TokenType{
	"BUTTON":    TOKEN_BASE_COMPONENT,
	"TEXT":      TOKEN_BASE_COMPONENT,
	"PICTURE":   TOKEN_BASE_COMPONENT,
	"CHECKBOX":  TOKEN_BASE_COMPONENT,
	"CONTAINER": TOKEN_BASE_COMPONENT,
	"TEXTINPUT": TOKEN_BASE_COMPONENT,
	"WITH":      TOKEN_WITH,
	"AS":        TOKEN_AS,
	"true":      TOKEN_BOOLEAN_LIT,
	"false":     TOKEN_BOOLEAN_LIT,
}

// LookupKeyword returns the keyword token type for word, or
// TOKEN_IDENTIFIER if word is not reserved.
func LookupKeyword(word string) TokenType {
	if t, ok := keywords[word]; ok {
		return t
	}
	return TOKEN_IDENTIFIER
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// Token represents a single lexical token with its position in the source.
type Token struct {
	Type    TokenType
	Literal string // the actual source text of the token
	Line    int    // 1-based line number
	Column  int    // 1-based column number
}

// String returns a human-readable representation of a token.
func (t Token) String() string {
	switch t.Type {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_NEWLINE:
		return "NEWLINE"
	default:
		return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Literal, t.Line, t.Column)
	}
}
