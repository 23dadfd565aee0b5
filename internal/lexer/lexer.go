package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes .def and .view source into a stream of tokens.
// Both languages share one token set; the parser decides which
// productions are legal where.
type Lexer struct {
	source  string  // the full source text
	tokens  []Token // accumulated tokens
	start   int     // byte offset of current token start
	current int     // byte offset of current position
	line    int     // current line number (1-based)
	column  int     // current column number (1-based)

	// bracketDepth > 0 suppresses NEWLINE tokens so lists may span lines.
	bracketDepth int
}

// New creates a new Lexer for the given source code.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, 128),
		line:   1,
		column: 1,
	}
}

// Tokenize processes the entire source and returns all tokens.
// Comments are dropped. The token stream always ends with TOKEN_EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.emit(TOKEN_EOF, "")
	return l.tokens, nil
}

// scanToken scans and emits the next token from the current position.
func (l *Lexer) scanToken() error {
	r := l.peekRune()

	switch {
	case r == '\n':
		l.advance()
		if l.bracketDepth == 0 {
			l.emit(TOKEN_NEWLINE, "")
		}
		l.line++
		l.column = 1
		return nil

	case r == '\r':
		l.advance()
		if !l.isAtEnd() && l.peekRune() == '\n' {
			l.advance()
		}
		if l.bracketDepth == 0 {
			l.emit(TOKEN_NEWLINE, "")
		}
		l.line++
		l.column = 1
		return nil

	case r == ' ' || r == '\t':
		l.skipWhitespace()
		return nil

	case r == '#':
		l.skipComment()
		return nil

	case r == ':':
		l.advance()
		l.emit(TOKEN_COLON, ":")
		return nil

	case r == ',':
		l.advance()
		l.emit(TOKEN_COMMA, ",")
		return nil

	case r == '.':
		l.advance()
		l.emit(TOKEN_DOT, ".")
		return nil

	case r == '=':
		l.advance()
		l.emit(TOKEN_EQUALS, "=")
		return nil

	case r == '(':
		l.advance()
		l.emit(TOKEN_LPAREN, "(")
		return nil

	case r == ')':
		l.advance()
		l.emit(TOKEN_RPAREN, ")")
		return nil

	case r == '[':
		l.advance()
		l.bracketDepth++
		l.emit(TOKEN_LBRACKET, "[")
		return nil

	case r == ']':
		l.advance()
		if l.bracketDepth > 0 {
			l.bracketDepth--
		}
		l.emit(TOKEN_RBRACKET, "]")
		return nil

	case r == '+' || r == '-' || r == '*' || r == '/':
		l.advance()
		l.emit(TOKEN_ARITH_OP, string(r))
		return nil

	case r == '"' || r == '\'':
		return l.scanString(r)

	case isDigit(r):
		l.scanNumber()
		return nil

	case isAlpha(r) || r == '_':
		l.scanWord()
		return nil

	default:
		return l.errorf("unexpected character %q", r)
	}
}

// scanString scans a single- or double-quoted string literal. The
// literal keeps its quotes; the builder strips them.
func (l *Lexer) scanString(quote rune) error {
	line, col := l.line, l.column
	l.advance() // consume opening quote

	for !l.isAtEnd() {
		r := l.peekRune()
		if r == quote {
			l.advance() // consume closing quote
			l.emit(TOKEN_STRING_LIT, l.source[l.start:l.current])
			return nil
		}
		if r == '\n' || r == '\r' {
			break
		}
		l.advance()
	}

	return fmt.Errorf("lexer error at line %d, column %d: unterminated string", line, col)
}

// scanNumber scans an integer literal.
func (l *Lexer) scanNumber() {
	for !l.isAtEnd() && isDigit(l.peekRune()) {
		l.advance()
	}
	l.emit(TOKEN_NUMBER_LIT, l.source[l.start:l.current])
}

// scanWord scans a keyword or identifier.
func (l *Lexer) scanWord() {
	for !l.isAtEnd() && isAlphaNumeric(l.peekRune()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	l.emit(LookupKeyword(word), word)
}

// skipComment consumes a comment from # to end of line, leaving the
// newline for scanToken.
func (l *Lexer) skipComment() {
	for !l.isAtEnd() && l.peekRune() != '\n' && l.peekRune() != '\r' {
		l.advance()
	}
}

// ── Character scanning helpers ──

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peekRune() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		r := l.peekRune()
		if r != ' ' && r != '\t' {
			return
		}
		l.advance()
	}
}

// emit adds a token to the output stream. Column is the start column.
func (l *Lexer) emit(tokenType TokenType, literal string) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Literal: literal,
		Line:    l.line,
		Column:  l.column - utf8.RuneCountInString(l.source[l.start:l.current]),
	})
	l.start = l.current
}

// errorf returns a formatted error with the current position.
func (l *Lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("lexer error at line %d, column %d: %s",
		l.line, l.column, fmt.Sprintf(format, args...))
}

// ── Character classification helpers ──

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}
