package parser

import (
	"fmt"
	"strings"

	"github.com/barun-bash/uic/internal/lexer"
)

// ParseDefinition lexes and parses .def source into a parse tree.
// On partial failure the returned tree still holds every declaration
// that parsed cleanly, but callers must not build from it.
func ParseDefinition(source string) (*DefProgramContext, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	return ParseDefinitionTokens(tokens)
}

// ParseDefinitionTokens parses a pre-built token stream as a .def file.
func ParseDefinitionTokens(tokens []lexer.Token) (*DefProgramContext, error) {
	p := &parser{tokens: tokens}
	prog := p.parseDefProgram()
	if len(p.errors) > 0 {
		return prog, fmt.Errorf("parse errors:\n  %s", strings.Join(p.errors, "\n  "))
	}
	return prog, nil
}

// ParseView lexes and parses .view source into a parse tree.
func ParseView(source string) (*ViewProgramContext, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	return ParseViewTokens(tokens)
}

// ParseViewTokens parses a pre-built token stream as a .view file.
func ParseViewTokens(tokens []lexer.Token) (*ViewProgramContext, error) {
	p := &parser{tokens: tokens}
	prog := p.parseViewProgram()
	if len(p.errors) > 0 {
		return prog, fmt.Errorf("parse errors:\n  %s", strings.Join(p.errors, "\n  "))
	}
	return prog, nil
}

// parser holds the state for a single parse run.
type parser struct {
	tokens []lexer.Token
	pos    int
	errors []string
}

// ── Definition files ──

func (p *parser) parseDefProgram() *DefProgramContext {
	prog := &DefProgramContext{}
	p.skipNewlines()

	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_BASE_COMPONENT:
			if len(prog.VariableDefinitions) > 0 {
				tok := p.peek()
				p.errorAt(tok, "component definitions must come before variable definitions")
			}
			if comp := p.parseComponent(); comp != nil {
				prog.Components = append(prog.Components, comp)
			}

		case lexer.TOKEN_IDENTIFIER:
			if def := p.parseVariableDefinition(); def != nil {
				prog.VariableDefinitions = append(prog.VariableDefinitions, def)
			}

		default:
			p.errorAt(p.peek(), "expected a component definition or variable definition, got %s", describe(p.peek()))
			p.skipRestOfLine()
		}
		p.skipNewlines()
	}

	return prog
}

// parseComponent parses a header line and the property lines below it.
// The body ends at the first line that is not `name = ...`.
func (p *parser) parseComponent() *ComponentContext {
	base := p.advance()

	if !p.check(lexer.TOKEN_IDENTIFIER) {
		p.errorAt(p.peek(), "expected component name after %s, got %s", base.Literal, describe(p.peek()))
		p.skipRestOfLine()
		return nil
	}
	name := p.advance()

	if !p.match(lexer.TOKEN_COLON) {
		p.errorAt(p.peek(), "expected ':' after component %s", name.Literal)
		p.skipRestOfLine()
		return nil
	}
	if !p.expectLineEnd() {
		return nil
	}

	comp := &ComponentContext{BaseComponent: base, Name: name}
	for {
		p.skipNewlines()
		if !p.check(lexer.TOKEN_IDENTIFIER) || p.peekAt(1).Type != lexer.TOKEN_EQUALS {
			break
		}
		if pa := p.parsePropertyAssign(); pa != nil {
			comp.Properties = append(comp.Properties, pa)
		}
	}
	return comp
}

func (p *parser) parsePropertyAssign() *PropertyAssignContext {
	prop := p.advance()
	p.advance() // consume '='

	pa := &PropertyAssignContext{Property: prop}
	switch {
	case p.check(lexer.TOKEN_LBRACKET):
		pa.List = p.parseList()
		if pa.List == nil {
			p.skipRestOfLine()
			return nil
		}
	case p.isCallStart():
		pa.Function = p.parseFunction()
		if pa.Function == nil {
			p.skipRestOfLine()
			return nil
		}
	default:
		pa.Value = p.parseValue()
		if pa.Value == nil {
			p.skipRestOfLine()
			return nil
		}
	}

	if !p.expectLineEnd() {
		return nil
	}
	return pa
}

// parseFunction parses `name(arg, ...)`. The name is not checked here;
// unknown builtins are reported by the analyzer.
func (p *parser) parseFunction() *FunctionContext {
	name := p.advance()
	p.advance() // consume '('

	fn := &FunctionContext{Name: name}
	if p.match(lexer.TOKEN_RPAREN) {
		return fn
	}
	for {
		arg := p.parseFuncArg()
		if arg == nil {
			return nil
		}
		fn.Args = append(fn.Args, arg)

		if p.match(lexer.TOKEN_COMMA) {
			continue
		}
		if p.match(lexer.TOKEN_RPAREN) {
			return fn
		}
		p.errorAt(p.peek(), "expected ',' or ')' in call to %s, got %s", name.Literal, describe(p.peek()))
		return nil
	}
}

func (p *parser) parseFuncArg() *FuncArgContext {
	// A lone `X.y` is an object property, or a view reference when y is
	// "view". Followed by an operator it is the first arithmetic term.
	if p.check(lexer.TOKEN_IDENTIFIER) &&
		p.peekAt(1).Type == lexer.TOKEN_DOT &&
		p.peekAt(2).Type == lexer.TOKEN_IDENTIFIER &&
		p.peekAt(3).Type != lexer.TOKEN_ARITH_OP {
		obj := p.advance()
		p.advance() // consume '.'
		prop := p.advance()
		if prop.Literal == "view" {
			return &FuncArgContext{View: &ViewContext{Name: obj}}
		}
		return &FuncArgContext{ObjProp: &ObjPropContext{Object: obj, Property: prop}}
	}

	v := p.parseValue()
	if v == nil {
		return nil
	}
	return &FuncArgContext{Value: v}
}

// parseValue parses a literal, a name, or a flat arithmetic expression.
func (p *parser) parseValue() *ValueContext {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_STRING_LIT:
		p.advance()
		return &ValueContext{String: &tok}

	case lexer.TOKEN_BOOLEAN_LIT:
		p.advance()
		return &ValueContext{Boolean: &tok}

	case lexer.TOKEN_NUMBER_LIT, lexer.TOKEN_IDENTIFIER:
		first := p.parsePossibleNum()
		if first == nil {
			return nil
		}
		if !p.check(lexer.TOKEN_ARITH_OP) {
			switch {
			case first.Number != nil:
				return &ValueContext{Number: first.Number}
			case first.Name != nil:
				return &ValueContext{Name: first.Name}
			default:
				p.errorAt(tok, "%s.%s can only be used as a function argument or arithmetic term",
					first.ObjProp.Object.Literal, first.ObjProp.Property.Literal)
				return nil
			}
		}

		exp := &ArithExpContext{Terms: []*PossibleNumContext{first}}
		for p.check(lexer.TOKEN_ARITH_OP) {
			exp.Ops = append(exp.Ops, p.advance())
			term := p.parsePossibleNum()
			if term == nil {
				return nil
			}
			exp.Terms = append(exp.Terms, term)
		}
		return &ValueContext{Arith: exp}

	default:
		p.errorAt(tok, "expected a value, got %s", describe(tok))
		return nil
	}
}

func (p *parser) parsePossibleNum() *PossibleNumContext {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_NUMBER_LIT:
		p.advance()
		return &PossibleNumContext{Number: &tok}

	case lexer.TOKEN_IDENTIFIER:
		p.advance()
		if !p.match(lexer.TOKEN_DOT) {
			return &PossibleNumContext{Name: &tok}
		}
		if !p.check(lexer.TOKEN_IDENTIFIER) {
			p.errorAt(p.peek(), "expected property name after '%s.', got %s", tok.Literal, describe(p.peek()))
			return nil
		}
		prop := p.advance()
		return &PossibleNumContext{ObjProp: &ObjPropContext{Object: tok, Property: prop}}

	default:
		p.errorAt(tok, "expected a number or name in arithmetic expression, got %s", describe(tok))
		return nil
	}
}

// parseList parses `[v, v, ...]` or `[f(...), f(...), ...]`. Lists may
// span lines; the lexer drops newlines between brackets.
func (p *parser) parseList() *ListContext {
	open := p.advance() // consume '['
	list := &ListContext{}

	if p.check(lexer.TOKEN_RBRACKET) {
		p.errorAt(open, "empty list")
		p.advance()
		return nil
	}

	for {
		if p.isCallStart() {
			if len(list.Values) > 0 {
				p.errorAt(p.peek(), "list mixes values and function calls")
				return nil
			}
			fn := p.parseFunction()
			if fn == nil {
				return nil
			}
			list.Functions = append(list.Functions, fn)
		} else {
			if len(list.Functions) > 0 {
				p.errorAt(p.peek(), "list mixes values and function calls")
				return nil
			}
			v := p.parseValue()
			if v == nil {
				return nil
			}
			list.Values = append(list.Values, v)
		}

		if p.match(lexer.TOKEN_COMMA) {
			if p.match(lexer.TOKEN_RBRACKET) {
				return list
			}
			continue
		}
		if p.match(lexer.TOKEN_RBRACKET) {
			return list
		}
		p.errorAt(p.peek(), "expected ',' or ']' in list, got %s", describe(p.peek()))
		return nil
	}
}

func (p *parser) parseVariableDefinition() *VariableDefinitionContext {
	inst := p.parseInstantiation()
	if inst == nil {
		p.skipRestOfLine()
		return nil
	}

	if !p.match(lexer.TOKEN_AS) {
		p.errorAt(p.peek(), "expected AS after %s, got %s", inst.Name.Literal, describe(p.peek()))
		p.skipRestOfLine()
		return nil
	}
	if !p.check(lexer.TOKEN_IDENTIFIER) {
		p.errorAt(p.peek(), "expected variable name after AS, got %s", describe(p.peek()))
		p.skipRestOfLine()
		return nil
	}
	name := p.advance()

	if !p.expectLineEnd() {
		return nil
	}
	return &VariableDefinitionContext{Name: name, Instantiation: inst}
}

// parseInstantiation parses `Comp [WITH a = v, b = [x, y]]`.
func (p *parser) parseInstantiation() *ComponentInstantiationContext {
	inst := &ComponentInstantiationContext{Name: p.advance()}
	if !p.match(lexer.TOKEN_WITH) {
		return inst
	}

	for {
		if !p.check(lexer.TOKEN_IDENTIFIER) || p.peekAt(1).Type != lexer.TOKEN_EQUALS {
			p.errorAt(p.peek(), "expected 'name = value' after WITH, got %s", describe(p.peek()))
			return nil
		}
		a := p.parseAssignment()
		if a == nil {
			return nil
		}
		inst.Assignments = append(inst.Assignments, a)
		if !p.match(lexer.TOKEN_COMMA) {
			return inst
		}
	}
}

func (p *parser) parseAssignment() *AssignmentContext {
	a := &AssignmentContext{Name: p.advance()}
	p.advance() // consume '='

	if p.check(lexer.TOKEN_LBRACKET) {
		a.List = p.parseList()
		if a.List == nil {
			return nil
		}
		return a
	}
	a.Value = p.parseValue()
	if a.Value == nil {
		return nil
	}
	return a
}

// ── View files ──

// parseViewProgram parses one usage per line. A bare name is a
// reference to a variable from the definition file; anything with
// WITH is an inline instantiation.
func (p *parser) parseViewProgram() *ViewProgramContext {
	prog := &ViewProgramContext{}
	p.skipNewlines()

	for !p.isAtEnd() {
		if !p.check(lexer.TOKEN_IDENTIFIER) {
			p.errorAt(p.peek(), "expected a component usage, got %s", describe(p.peek()))
			p.skipRestOfLine()
			p.skipNewlines()
			continue
		}

		if p.peekAt(1).Type == lexer.TOKEN_WITH {
			inst := p.parseInstantiation()
			if inst == nil {
				p.skipRestOfLine()
			} else if p.expectLineEnd() {
				prog.Usages = append(prog.Usages, &ComponentUsageContext{Instantiation: inst})
			}
		} else {
			tok := p.advance()
			if p.expectLineEnd() {
				prog.Usages = append(prog.Usages, &ComponentUsageContext{Name: &tok})
			}
		}
		p.skipNewlines()
	}

	return prog
}

// ── Token movement ──

func (p *parser) peek() lexer.Token {
	return p.peekAt(0)
}

// peekAt returns the token n positions ahead without consuming anything.
func (p *parser) peekAt(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.pos+n]
}

func (p *parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Type != lexer.TOKEN_EOF {
		p.pos++
	}
	return tok
}

func (p *parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

func (p *parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.peek().Type == lexer.TOKEN_EOF
}

func (p *parser) isCallStart() bool {
	return p.check(lexer.TOKEN_IDENTIFIER) && p.peekAt(1).Type == lexer.TOKEN_LPAREN
}

// ── Skip helpers ──

// skipNewlines skips blank lines.
func (p *parser) skipNewlines() {
	for p.check(lexer.TOKEN_NEWLINE) {
		p.advance()
	}
}

// skipRestOfLine consumes tokens up to and including the next newline.
func (p *parser) skipRestOfLine() {
	for !p.isAtEnd() && !p.check(lexer.TOKEN_NEWLINE) {
		p.advance()
	}
	p.match(lexer.TOKEN_NEWLINE)
}

// expectLineEnd consumes the newline that ends a statement. Trailing
// tokens are reported and skipped.
func (p *parser) expectLineEnd() bool {
	if p.isAtEnd() || p.match(lexer.TOKEN_NEWLINE) {
		return true
	}
	p.errorAt(p.peek(), "unexpected %s at end of line", describe(p.peek()))
	p.skipRestOfLine()
	return false
}

// ── Error handling ──

func (p *parser) errorAt(tok lexer.Token, format string, args ...interface{}) {
	line := tok.Line
	if line == 0 && len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return "end of file"
	case lexer.TOKEN_NEWLINE:
		return "end of line"
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}
