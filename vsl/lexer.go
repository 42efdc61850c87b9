package vsl

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes VoidScript shader source code.
type Lexer struct {
	source string
	pos    int
	line   int
	column int
	start  int
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 6 characters of source.
	estTokens := len(source) / 6
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source.
// It stops at the first lexical error (illegal character, unterminated
// comment or string, malformed directive) and reports it with its position.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.pos
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenEOF,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	startLine, startColumn := l.line, l.column
	r := l.advance()

	switch r {
	// Single-character tokens
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case '[':
		l.addToken(TokenLeftBracket)
	case ']':
		l.addToken(TokenRightBracket)
	case ',':
		l.addToken(TokenComma)
	case '.':
		l.addToken(TokenDot)
	case ':':
		l.addToken(TokenColon)
	case ';':
		l.addToken(TokenSemicolon)
	case '?':
		l.addToken(TokenQuestion)
	case '~':
		l.addToken(TokenTilde)
	case '%':
		if l.match('=') {
			l.addToken(TokenPercentEqual)
		} else {
			l.addToken(TokenPercent)
		}
	case '^':
		if l.match('=') {
			l.addToken(TokenCaretEqual)
		} else {
			l.addToken(TokenCaret)
		}

	// Operators that could be one or two characters
	case '+':
		if l.match('+') {
			l.addToken(TokenPlusPlus)
		} else if l.match('=') {
			l.addToken(TokenPlusEqual)
		} else {
			l.addToken(TokenPlus)
		}
	case '-':
		if l.match('-') {
			l.addToken(TokenMinusMinus)
		} else if l.match('=') {
			l.addToken(TokenMinusEqual)
		} else {
			l.addToken(TokenMinus)
		}
	case '*':
		if l.match('=') {
			l.addToken(TokenStarEqual)
		} else {
			l.addToken(TokenStar)
		}
	case '/':
		if l.match('/') {
			// Line comment
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			// Block comment
			if !l.blockComment() {
				return NewSourceErrorf(spanAt(startLine, startColumn, l.start), l.source,
					"unterminated block comment")
			}
		} else if l.match('=') {
			l.addToken(TokenSlashEqual)
		} else {
			l.addToken(TokenSlash)
		}
	case '=':
		if l.match('=') {
			l.addToken(TokenEqualEqual)
		} else {
			l.addToken(TokenEqual)
		}
	case '!':
		if l.match('=') {
			l.addToken(TokenBangEqual)
		} else {
			l.addToken(TokenBang)
		}
	case '<':
		if l.match('<') {
			if l.match('=') {
				l.addToken(TokenLessLessEqual)
			} else {
				l.addToken(TokenLessLess)
			}
		} else if l.match('=') {
			l.addToken(TokenLessEqual)
		} else {
			l.addToken(TokenLess)
		}
	case '>':
		if l.match('>') {
			if l.match('=') {
				l.addToken(TokenGreaterGreaterEqual)
			} else {
				l.addToken(TokenGreaterGreater)
			}
		} else if l.match('=') {
			l.addToken(TokenGreaterEqual)
		} else {
			l.addToken(TokenGreater)
		}
	case '&':
		if l.match('&') {
			l.addToken(TokenAmpAmp)
		} else if l.match('=') {
			l.addToken(TokenAmpEqual)
		} else {
			l.addToken(TokenAmpersand)
		}
	case '|':
		if l.match('|') {
			l.addToken(TokenPipePipe)
		} else if l.match('=') {
			l.addToken(TokenPipeEqual)
		} else {
			l.addToken(TokenPipe)
		}

	case '#':
		return l.directive(startLine, startColumn)

	case '"':
		return l.stringLiteral(startLine, startColumn)

	// Whitespace
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		l.line++
		l.column = 1

	default:
		if isDigit(r) {
			l.number()
		} else if isAlpha(r) || r == '_' {
			l.identifier()
		} else {
			return NewSourceErrorf(spanAt(startLine, startColumn, l.start), l.source,
				"illegal character %q", r)
		}
	}

	return nil
}

// directive scans a preprocessor-style directive. Only #include is known.
func (l *Lexer) directive(startLine, startColumn int) error {
	nameStart := l.pos
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	name := l.source[nameStart:l.pos]
	if name != "include" {
		return NewSourceErrorf(spanAt(startLine, startColumn, l.start), l.source,
			"unknown directive #%s", name)
	}
	l.addToken(TokenInclude)
	return nil
}

// stringLiteral scans a double-quoted string. The stored lexeme excludes the
// quotes. There are no escape sequences; strings only appear in #include
// paths.
func (l *Lexer) stringLiteral(startLine, startColumn int) error {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			break
		}
		l.advance()
	}
	if l.isAtEnd() || l.peek() == '\n' {
		return NewSourceErrorf(spanAt(startLine, startColumn, l.start), l.source,
			"unterminated string")
	}
	value := l.source[l.start+1 : l.pos]
	l.advance() // closing quote
	l.tokens = append(l.tokens, Token{
		Kind:   TokenString,
		Lexeme: value,
		Line:   startLine,
		Column: startColumn,
	})
	return nil
}

// blockComment consumes a block comment. Returns false if unterminated.
func (l *Lexer) blockComment() bool {
	depth := 1
	for depth > 0 && !l.isAtEnd() {
		if l.peek() == '/' && l.peekNext() == '*' {
			l.advance()
			l.advance()
			depth++
		} else if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			depth--
		} else {
			if l.peek() == '\n' {
				l.line++
				l.column = 0
			}
			l.advance()
		}
	}
	return depth == 0
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// Look for fractional part. "N." is a float when the dot is not the
	// start of a member access ("1.x" would be int 1 then .x, which the
	// grammar rejects anyway, but the distinction keeps lexing local).
	nextAfterDot := l.peekNext()
	if l.peek() == '.' && !isAlpha(nextAfterDot) && nextAfterDot != '_' {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
		l.scanExponent()
		l.addToken(TokenFloatLiteral)
		return
	}

	// Exponent without decimal point still makes a float: 1e3
	if l.peek() == 'e' || l.peek() == 'E' {
		l.scanExponent()
		l.addToken(TokenFloatLiteral)
		return
	}

	l.addToken(TokenIntLiteral)
}

func (l *Lexer) scanExponent() {
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	l.addToken(lookupKeyword(text))
}

var keywords = map[string]TokenKind{
	"shader_type": TokenShaderType,
	"render_mode": TokenRenderMode,
	"uniform":     TokenUniform,
	"varying":     TokenVarying,
	"if":          TokenIf,
	"else":        TokenElse,
	"for":         TokenFor,
	"while":       TokenWhile,
	"do":          TokenDo,
	"return":      TokenReturn,
	"break":       TokenBreak,
	"continue":    TokenContinue,
	"discard":     TokenDiscard,
	"true":        TokenTrue,
	"false":       TokenFalse,
	"in":          TokenIn,
	"out":         TokenOut,
	"inout":       TokenInout,

	// Types
	"void":        TokenVoid,
	"bool":        TokenBool,
	"int":         TokenInt,
	"float":       TokenFloat,
	"vec2":        TokenVec2,
	"vec3":        TokenVec3,
	"vec4":        TokenVec4,
	"mat2":        TokenMat2,
	"mat3":        TokenMat3,
	"mat4":        TokenMat4,
	"sampler2D":   TokenSampler2D,
	"samplerCube": TokenSamplerCube,
}

func lookupKeyword(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return TokenIdent
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.line,
		Column: l.column - (l.pos - l.start),
	})
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	if r != expected {
		return false
	}
	l.pos += size
	l.column++
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func spanAt(line, column, offset int) Span {
	return Span{Start: Position{Line: line, Column: column, Offset: offset}}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
