package lexer

import (
	"strings"
	"testing"
)

// helper to tokenize and assert no error
func mustTokenize(t *testing.T, source string) []Token {
	t.Helper()
	l := New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	return tokens
}

// helper to check token type at index
func expectToken(t *testing.T, tokens []Token, index int, expectedType TokenType, expectedLiteral string) {
	t.Helper()
	if index >= len(tokens) {
		t.Fatalf("token index %d out of range (have %d tokens)", index, len(tokens))
	}
	tok := tokens[index]
	if tok.Type != expectedType {
		t.Errorf("token[%d]: expected type %s, got %s (literal=%q)", index, expectedType, tok.Type, tok.Literal)
	}
	if expectedLiteral != "" && tok.Literal != expectedLiteral {
		t.Errorf("token[%d]: expected literal %q, got %q", index, expectedLiteral, tok.Literal)
	}
}

// literals returns the literal text of every token except NEWLINE and EOF.
func literals(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		if tok.Type == TOKEN_NEWLINE || tok.Type == TOKEN_EOF {
			continue
		}
		out = append(out, tok.Literal)
	}
	return out
}

// ── Basic Token Tests ──

func TestEmptySource(t *testing.T) {
	tokens := mustTokenize(t, "")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token (EOF), got %d", len(tokens))
	}
	expectToken(t, tokens, 0, TOKEN_EOF, "")
}

func TestPunctuation(t *testing.T) {
	tokens := mustTokenize(t, ": , . = ( ) [ ]")
	want := []TokenType{
		TOKEN_COLON, TOKEN_COMMA, TOKEN_DOT, TOKEN_EQUALS,
		TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACKET, TOKEN_RBRACKET, TOKEN_EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		expectToken(t, tokens, i, tt, "")
	}
}

func TestArithOperators(t *testing.T) {
	tokens := mustTokenize(t, "a + 10 - b * 2 / 3")
	expectToken(t, tokens, 0, TOKEN_IDENTIFIER, "a")
	expectToken(t, tokens, 1, TOKEN_ARITH_OP, "+")
	expectToken(t, tokens, 2, TOKEN_NUMBER_LIT, "10")
	expectToken(t, tokens, 3, TOKEN_ARITH_OP, "-")
	expectToken(t, tokens, 5, TOKEN_ARITH_OP, "*")
	expectToken(t, tokens, 7, TOKEN_ARITH_OP, "/")
}

// ── Keyword Tests ──

func TestBaseComponentKeywords(t *testing.T) {
	for _, kw := range []string{"BUTTON", "TEXT", "PICTURE", "CHECKBOX", "CONTAINER", "TEXTINPUT"} {
		t.Run(kw, func(t *testing.T) {
			tokens := mustTokenize(t, kw)
			expectToken(t, tokens, 0, TOKEN_BASE_COMPONENT, kw)
		})
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"Text", TOKEN_IDENTIFIER},
		{"button", TOKEN_IDENTIFIER},
		{"WITH", TOKEN_WITH},
		{"with", TOKEN_IDENTIFIER},
		{"AS", TOKEN_AS},
		{"true", TOKEN_BOOLEAN_LIT},
		{"False", TOKEN_IDENTIFIER},
	}
	for _, tt := range tests {
		tokens := mustTokenize(t, tt.input)
		expectToken(t, tokens, 0, tt.expected, tt.input)
	}
}

// ── Literal Tests ──

func TestStringLiteralKeepsQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"Home"`, `"Home"`},
		{`'gray'`, `'gray'`},
		{`"hello world"`, `"hello world"`},
		{`"it's"`, `"it's"`},
		{`"https://google.com"`, `"https://google.com"`},
	}
	for _, tt := range tests {
		tokens := mustTokenize(t, tt.input)
		expectToken(t, tokens, 0, TOKEN_STRING_LIT, tt.want)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := New("text = \"Home\n").Tokenize()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	if !strings.Contains(err.Error(), "unterminated string") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := New("color = @red").Tokenize()
	if err == nil {
		t.Fatal("expected error for unexpected character")
	}
	if !strings.Contains(err.Error(), "line 1, column 9") {
		t.Errorf("expected position in error, got: %v", err)
	}
}

// ── Layout Tests ──

func TestCommentsAreDropped(t *testing.T) {
	tokens := mustTokenize(t, "# navigation\nhb # home button\n")
	want := []TokenType{TOKEN_NEWLINE, TOKEN_IDENTIFIER, TOKEN_NEWLINE, TOKEN_EOF}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tt := range want {
		expectToken(t, tokens, i, tt, "")
	}
}

func TestNewlinesInsideBracketsAreSuppressed(t *testing.T) {
	tokens := mustTokenize(t, "onclick = [\n\tset(a.b, 1),\n\topen(About.view)\n]\n")
	newlines := 0
	for _, tok := range tokens {
		if tok.Type == TOKEN_NEWLINE {
			newlines++
		}
	}
	if newlines != 1 {
		t.Errorf("expected 1 newline after the list, got %d", newlines)
	}
}

func TestCRLFLineEndings(t *testing.T) {
	tokens := mustTokenize(t, "hb\r\nab\r\n")
	expectToken(t, tokens, 0, TOKEN_IDENTIFIER, "hb")
	expectToken(t, tokens, 1, TOKEN_NEWLINE, "")
	expectToken(t, tokens, 2, TOKEN_IDENTIFIER, "ab")
	if tokens[2].Line != 2 {
		t.Errorf("expected ab on line 2, got %d", tokens[2].Line)
	}
}

func TestPositions(t *testing.T) {
	tokens := mustTokenize(t, "BUTTON HomeButton:\n\tcolor = 'gray'")
	expectToken(t, tokens, 1, TOKEN_IDENTIFIER, "HomeButton")
	if tokens[1].Line != 1 || tokens[1].Column != 8 {
		t.Errorf("HomeButton at %d:%d, want 1:8", tokens[1].Line, tokens[1].Column)
	}
	expectToken(t, tokens, 4, TOKEN_IDENTIFIER, "color")
	if tokens[4].Line != 2 || tokens[4].Column != 2 {
		t.Errorf("color at %d:%d, want 2:2", tokens[4].Line, tokens[4].Column)
	}
}

// ── Full Source Tests ──

func TestComponentDefinition(t *testing.T) {
	source := "BUTTON HomeButton:\n\tcolor = c\n\twidth = 100\n\ttext = \"Home\"\n\tonclick = open(Main.view)"
	got := literals(mustTokenize(t, source))
	want := []string{
		"BUTTON", "HomeButton", ":",
		"color", "=", "c",
		"width", "=", "100",
		"text", "=", `"Home"`,
		"onclick", "=", "open", "(", "Main", ".", "view", ")",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSetCallWithObjectProperty(t *testing.T) {
	got := literals(mustTokenize(t, "onclick = set(obj.text, obj.text + 1)"))
	want := []string{"onclick", "=", "set", "(", "obj", ".", "text", ",", "obj", ".", "text", "+", "1", ")"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestVariableDefinition(t *testing.T) {
	tokens := mustTokenize(t, "AboutButton WITH c='red' AS ab")
	expectToken(t, tokens, 0, TOKEN_IDENTIFIER, "AboutButton")
	expectToken(t, tokens, 1, TOKEN_WITH, "WITH")
	expectToken(t, tokens, 2, TOKEN_IDENTIFIER, "c")
	expectToken(t, tokens, 3, TOKEN_EQUALS, "=")
	expectToken(t, tokens, 4, TOKEN_STRING_LIT, "'red'")
	expectToken(t, tokens, 5, TOKEN_AS, "AS")
	expectToken(t, tokens, 6, TOKEN_IDENTIFIER, "ab")
	expectToken(t, tokens, 7, TOKEN_EOF, "")
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TOKEN_IDENTIFIER, Literal: "hb", Line: 3, Column: 1}
	if got := tok.String(); got != `IDENTIFIER("hb") at 3:1` {
		t.Errorf("got %q", got)
	}
	if got := TokenType(999).String(); got != "TOKEN(999)" {
		t.Errorf("got %q", got)
	}
}
