package vsl

import (
	"fmt"
	"strconv"
)

// Parser parses VoidScript shader tokens into a ShaderAST.
type Parser struct {
	tokens  []Token
	current int
	errors  ParseErrors
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the tokens and returns the ShaderAST along with any parse
// errors. The parser resynchronizes at statement boundaries after an error,
// so several errors can be reported in one pass. A non-empty error list
// means the AST is not usable for transpilation.
func (p *Parser) Parse() (*ShaderAST, ParseErrors) {
	ast := &ShaderAST{}

	// The shader_type declaration is mandatory and fixes the kind for the
	// rest of the unit.
	if err := p.shaderTypeDecl(ast); err != nil {
		p.errors = append(p.errors, *err)
		p.synchronize()
	}

	for !p.isAtEnd() {
		if err := p.declaration(ast); err != nil {
			p.errors = append(p.errors, *err)
			p.synchronize()
		}
	}

	return ast, p.errors
}

// shaderTypeDecl parses the leading `shader_type <kind>;` declaration.
func (p *Parser) shaderTypeDecl(ast *ShaderAST) *ParseError {
	if !p.match(TokenShaderType) {
		return &ParseError{
			Message: "expected 'shader_type' declaration at start of shader",
			Token:   p.peek(),
		}
	}

	if !p.check(TokenIdent) {
		return &ParseError{Message: "expected shader kind name", Token: p.peek()}
	}
	name := p.advance()

	kind, ok := ShaderKindFromName(name.Lexeme)
	if !ok {
		return &ParseError{
			Message: fmt.Sprintf("unknown shader kind %q", name.Lexeme),
			Token:   name,
		}
	}
	ast.Kind = kind

	if err := p.expectErr(TokenSemicolon); err != nil {
		return err
	}
	return nil
}

// declaration parses one top-level declaration.
func (p *Parser) declaration(ast *ShaderAST) *ParseError {
	switch {
	case p.check(TokenShaderType):
		return &ParseError{Message: "duplicate shader_type declaration", Token: p.peek()}

	case p.check(TokenRenderMode):
		return p.renderModeDecl(ast)

	case p.check(TokenInclude):
		return p.includeDirective(ast)

	case p.check(TokenUniform):
		return p.uniformDecl(ast)

	case p.check(TokenVarying):
		return p.varyingDecl(ast)

	case p.isTypeToken(p.peek().Kind):
		fn, err := p.functionDecl()
		if err != nil {
			return err
		}
		ast.Functions = append(ast.Functions, fn)
		return nil

	default:
		tok := p.peek()
		return &ParseError{
			Message: fmt.Sprintf("unexpected token %s, expected declaration", tok.Kind),
			Token:   tok,
		}
	}
}

// renderModeDecl parses `render_mode a, b, c;` — order-preserving, with
// duplicates and conflicts left for the transpiler to resolve.
func (p *Parser) renderModeDecl(ast *ShaderAST) *ParseError {
	p.advance() // consume 'render_mode'

	for {
		if !p.check(TokenIdent) {
			return &ParseError{Message: "expected render mode name", Token: p.peek()}
		}
		mode := p.advance()
		ast.RenderModes = append(ast.RenderModes, mode.Lexeme)

		if !p.match(TokenComma) {
			break
		}
	}

	return p.expectErr(TokenSemicolon)
}

// includeDirective parses `#include "path";`.
func (p *Parser) includeDirective(ast *ShaderAST) *ParseError {
	p.advance() // consume '#include'

	if !p.check(TokenString) {
		return &ParseError{Message: "expected include path string", Token: p.peek()}
	}
	path := p.advance()
	ast.Includes = append(ast.Includes, path.Lexeme)

	return p.expectErr(TokenSemicolon)
}

// uniformDecl parses `uniform <type> <name> [: hint(...)] [= default];`.
func (p *Parser) uniformDecl(ast *ShaderAST) *ParseError {
	start := p.advance() // consume 'uniform'

	typeName, err := p.typeName()
	if err != nil {
		return err
	}

	if !p.check(TokenIdent) {
		return &ParseError{Message: "expected uniform name", Token: p.peek()}
	}
	name := p.advance()

	decl := &UniformDecl{
		Type: typeName,
		Name: name.Lexeme,
		Span: spanOf(start),
	}

	if p.match(TokenColon) {
		hint, err := p.hint()
		if err != nil {
			return err
		}
		decl.Hint = hint
	}

	if p.match(TokenEqual) {
		def, err := p.expression()
		if err != nil {
			return err
		}
		decl.Default = def
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return err
	}

	ast.Uniforms = append(ast.Uniforms, decl)
	return nil
}

// hint parses the hint clause after ':' in a uniform declaration.
func (p *Parser) hint() (*Hint, *ParseError) {
	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected hint name", Token: p.peek()}
	}
	name := p.advance()

	switch name.Lexeme {
	case "hint_range":
		return p.rangeHint(name)
	case "hint_color":
		return &Hint{Kind: HintColor, Span: spanOf(name)}, nil
	case "hint_albedo":
		return &Hint{Kind: HintAlbedo, Span: spanOf(name)}, nil
	case "hint_normal":
		return &Hint{Kind: HintNormalMap, Span: spanOf(name)}, nil
	case "hint_white":
		return &Hint{Kind: HintWhite, Span: spanOf(name)}, nil
	case "hint_black":
		return &Hint{Kind: HintBlack, Span: spanOf(name)}, nil
	case "hint_noise":
		return p.noiseHint(name)
	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("unknown hint %q", name.Lexeme),
			Token:   name,
		}
	}
}

// rangeHint parses `hint_range(min, max [, step])`.
func (p *Parser) rangeHint(name Token) (*Hint, *ParseError) {
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	params := make([]float64, 0, 3)
	for {
		v, err := p.numericArg()
		if err != nil {
			return nil, err
		}
		params = append(params, v)
		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	if len(params) < 2 || len(params) > 3 {
		return nil, &ParseError{
			Message: fmt.Sprintf("hint_range takes 2 or 3 arguments, got %d", len(params)),
			Token:   name,
		}
	}

	return &Hint{Kind: HintRange, Params: params, Span: spanOf(name)}, nil
}

// noiseHint parses `hint_noise(<algorithm> [, params...])`. Omitted
// parameters take their documented defaults, so the resulting record is
// always fully populated.
func (p *Parser) noiseHint(name Token) (*Hint, *ParseError) {
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected noise algorithm name", Token: p.peek()}
	}
	algoTok := p.advance()

	var args []float64
	for p.match(TokenComma) {
		v, err := p.numericArg()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	noise, perr := noiseParamsFor(algoTok, args)
	if perr != nil {
		return nil, perr
	}

	return &Hint{Kind: HintNoise, Params: args, Noise: noise, Span: spanOf(name)}, nil
}

// noiseParamsFor applies per-algorithm defaults and positional overrides.
func noiseParamsFor(algoTok Token, args []float64) (*NoiseParams, *ParseError) {
	arg := func(i int, def float64) float64 {
		if i < len(args) {
			return args[i]
		}
		return def
	}

	switch algoTok.Lexeme {
	case "perlin", "simplex":
		algo := NoisePerlin
		if algoTok.Lexeme == "simplex" {
			algo = NoiseSimplex
		}
		if len(args) > 5 {
			return nil, tooManyNoiseArgs(algoTok, 5, len(args))
		}
		return &NoiseParams{
			Algorithm: algo,
			Width:     int(arg(0, 256)),
			Height:    int(arg(1, 256)),
			Frequency: arg(2, 8.0),
			Octaves:   int(arg(3, 4)),
			Seed:      int(arg(4, 0)),
		}, nil

	case "cellular":
		if len(args) > 5 {
			return nil, tooManyNoiseArgs(algoTok, 5, len(args))
		}
		return &NoiseParams{
			Algorithm: NoiseCellular,
			Width:     int(arg(0, 256)),
			Height:    int(arg(1, 256)),
			Frequency: arg(2, 8.0),
			Jitter:    arg(3, 1.0),
			Seed:      int(arg(4, 0)),
		}, nil

	case "white":
		if len(args) > 3 {
			return nil, tooManyNoiseArgs(algoTok, 3, len(args))
		}
		return &NoiseParams{
			Algorithm: NoiseWhite,
			Width:     int(arg(0, 256)),
			Height:    int(arg(1, 256)),
			Seed:      int(arg(2, 0)),
		}, nil

	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("unknown noise algorithm %q", algoTok.Lexeme),
			Token:   algoTok,
		}
	}
}

func tooManyNoiseArgs(tok Token, max, got int) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("noise algorithm %q takes at most %d parameters, got %d", tok.Lexeme, max, got),
		Token:   tok,
	}
}

// numericArg parses a possibly-negated numeric literal and returns its value.
func (p *Parser) numericArg() (float64, *ParseError) {
	neg := p.match(TokenMinus)

	tok := p.peek()
	if tok.Kind != TokenIntLiteral && tok.Kind != TokenFloatLiteral {
		return 0, &ParseError{Message: "expected numeric argument", Token: tok}
	}
	p.advance()

	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return 0, &ParseError{
			Message: fmt.Sprintf("invalid numeric literal %q", tok.Lexeme),
			Token:   tok,
		}
	}
	if neg {
		v = -v
	}
	return v, nil
}

// varyingDecl parses `varying <type> <name>;`.
func (p *Parser) varyingDecl(ast *ShaderAST) *ParseError {
	start := p.advance() // consume 'varying'

	typeName, err := p.typeName()
	if err != nil {
		return err
	}

	if !p.check(TokenIdent) {
		return &ParseError{Message: "expected varying name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenSemicolon); err != nil {
		return err
	}

	ast.Varyings = append(ast.Varyings, &VaryingDecl{
		Type: typeName,
		Name: name.Lexeme,
		Span: spanOf(start),
	})
	return nil
}

// functionDecl parses `<returnType> <name>(<params>) { <body> }`.
func (p *Parser) functionDecl() (*FunctionDecl, *ParseError) {
	start := p.peek()
	returnType, err := p.typeName()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected function name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	params := make([]*Parameter, 0, 4) // most functions have few params
	for !p.check(TokenRightParen) && !p.isAtEnd() {
		param, err := p.parameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionDecl{
		Name:       name.Lexeme,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
		Span:       spanOf(start),
	}, nil
}

// parameter parses a function parameter with an optional in/out/inout
// qualifier preceding its type.
func (p *Parser) parameter() (*Parameter, *ParseError) {
	var qualifier string
	switch {
	case p.match(TokenIn):
		qualifier = "in"
	case p.match(TokenOut):
		qualifier = "out"
	case p.match(TokenInout):
		qualifier = "inout"
	}

	typeName, err := p.typeName()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected parameter name", Token: p.peek()}
	}
	name := p.advance()

	return &Parameter{
		Name:      name.Lexeme,
		Type:      typeName,
		Qualifier: qualifier,
		Span:      spanOf(name),
	}, nil
}

// typeName consumes a type keyword and returns its spelling.
func (p *Parser) typeName() (string, *ParseError) {
	tok := p.peek()
	if !p.isTypeToken(tok.Kind) {
		return "", &ParseError{
			Message: fmt.Sprintf("unknown type name %q", tok.Lexeme),
			Token:   tok,
		}
	}
	p.advance()
	return tok.Lexeme, nil
}

// block parses a block statement.
func (p *Parser) block() (*BlockStmt, *ParseError) {
	start := p.peek()
	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	stmts := make([]Stmt, 0, 4) // most blocks have a few statements
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &BlockStmt{
		Statements: stmts,
		Span:       spanOf(start),
	}, nil
}

// statement parses a statement.
func (p *Parser) statement() (Stmt, *ParseError) {
	switch {
	case p.check(TokenReturn):
		return p.returnStmt()
	case p.check(TokenIf):
		return p.ifStmt()
	case p.check(TokenFor):
		return p.forStmt()
	case p.check(TokenWhile):
		return p.whileStmt()
	case p.check(TokenDo):
		return p.doWhileStmt()
	case p.check(TokenBreak):
		return p.breakStmt()
	case p.check(TokenContinue):
		return p.continueStmt()
	case p.check(TokenDiscard):
		return p.discardStmt()
	case p.check(TokenLeftBrace):
		return p.block()
	case p.isTypeToken(p.peek().Kind) && p.peekAhead(1).Kind == TokenIdent:
		return p.varDeclStmt()
	default:
		return p.exprStmt()
	}
}

// varDeclStmt parses `<type> <name> [= init];`.
func (p *Parser) varDeclStmt() (*VarDeclStmt, *ParseError) {
	start := p.peek()
	typeName, err := p.typeName()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected variable name", Token: p.peek()}
	}
	name := p.advance()

	var init Expr
	if p.match(TokenEqual) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		init = e
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}

	return &VarDeclStmt{
		Type: typeName,
		Name: name.Lexeme,
		Init: init,
		Span: spanOf(start),
	}, nil
}

// returnStmt parses a return statement.
func (p *Parser) returnStmt() (*ReturnStmt, *ParseError) {
	start := p.advance() // consume 'return'

	var value Expr
	if !p.check(TokenSemicolon) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = e
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ReturnStmt{
		Value: value,
		Span:  spanOf(start),
	}, nil
}

// ifStmt parses an if statement.
func (p *Parser) ifStmt() (*IfStmt, *ParseError) {
	start := p.advance() // consume 'if'

	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	var elseStmt Stmt
	if p.match(TokenElse) {
		if p.check(TokenIf) {
			elseStmt, err = p.ifStmt()
		} else {
			elseStmt, err = p.block()
		}
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{
		Condition: cond,
		Body:      body,
		Else:      elseStmt,
		Span:      spanOf(start),
	}, nil
}

// forStmt parses a for statement.
func (p *Parser) forStmt() (*ForStmt, *ParseError) {
	start := p.advance() // consume 'for'

	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	// Init: a variable declaration, an expression statement, or empty.
	var init Stmt
	if p.match(TokenSemicolon) {
		// empty init
	} else if p.isTypeToken(p.peek().Kind) {
		s, err := p.varDeclStmt()
		if err != nil {
			return nil, err
		}
		init = s
	} else {
		s, err := p.exprStmt()
		if err != nil {
			return nil, err
		}
		init = s
	}

	// Condition
	var cond Expr
	if !p.check(TokenSemicolon) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = e
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}

	// Update
	var update Expr
	if !p.check(TokenRightParen) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		update = e
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ForStmt{
		Init:      init,
		Condition: cond,
		Update:    update,
		Body:      body,
		Span:      spanOf(start),
	}, nil
}

// whileStmt parses a while statement.
func (p *Parser) whileStmt() (*WhileStmt, *ParseError) {
	start := p.advance() // consume 'while'

	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{
		Condition: cond,
		Body:      body,
		Span:      spanOf(start),
	}, nil
}

// doWhileStmt parses a do-while statement.
func (p *Parser) doWhileStmt() (*DoWhileStmt, *ParseError) {
	start := p.advance() // consume 'do'

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	if err := p.expectErr(TokenWhile); err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}

	return &DoWhileStmt{
		Body:      body,
		Condition: cond,
		Span:      spanOf(start),
	}, nil
}

// breakStmt parses a break statement.
func (p *Parser) breakStmt() (*BreakStmt, *ParseError) {
	start := p.advance() // consume 'break'
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &BreakStmt{Span: spanOf(start)}, nil
}

// continueStmt parses a continue statement.
func (p *Parser) continueStmt() (*ContinueStmt, *ParseError) {
	start := p.advance() // consume 'continue'
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ContinueStmt{Span: spanOf(start)}, nil
}

// discardStmt parses a discard statement.
func (p *Parser) discardStmt() (*DiscardStmt, *ParseError) {
	start := p.advance() // consume 'discard'
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &DiscardStmt{Span: spanOf(start)}, nil
}

// exprStmt parses an expression statement.
func (p *Parser) exprStmt() (*ExprStmt, *ParseError) {
	start := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ExprStmt{
		Expr: expr,
		Span: spanOf(start),
	}, nil
}

// Expression parsing, lowest precedence first. Assignment and ternary are
// right-associative, every binary operator is left-associative.

// expression parses an expression.
func (p *Parser) expression() (Expr, *ParseError) {
	return p.assignment()
}

// assignment parses right-associative assignment expressions.
func (p *Parser) assignment() (Expr, *ParseError) {
	left, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.isAssignOp(p.peek().Kind) {
		op := p.advance()
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &AssignExpr{
			Left:  left,
			Op:    op.Kind,
			Right: right,
			Span:  left.Pos(),
		}, nil
	}

	return left, nil
}

// ternary parses conditional ?: expressions.
func (p *Parser) ternary() (Expr, *ParseError) {
	cond, err := p.logicalOr()
	if err != nil {
		return nil, err
	}

	if p.match(TokenQuestion) {
		then, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenColon); err != nil {
			return nil, err
		}
		elseExpr, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &TernaryExpr{
			Condition: cond,
			Then:      then,
			Else:      elseExpr,
			Span:      cond.Pos(),
		}, nil
	}

	return cond, nil
}

// logicalOr parses || expressions.
func (p *Parser) logicalOr() (Expr, *ParseError) {
	return p.binaryLevel(p.logicalAnd, TokenPipePipe)
}

// logicalAnd parses && expressions.
func (p *Parser) logicalAnd() (Expr, *ParseError) {
	return p.binaryLevel(p.bitwiseOr, TokenAmpAmp)
}

// bitwiseOr parses | expressions.
func (p *Parser) bitwiseOr() (Expr, *ParseError) {
	return p.binaryLevel(p.bitwiseXor, TokenPipe)
}

// bitwiseXor parses ^ expressions.
func (p *Parser) bitwiseXor() (Expr, *ParseError) {
	return p.binaryLevel(p.bitwiseAnd, TokenCaret)
}

// bitwiseAnd parses & expressions.
func (p *Parser) bitwiseAnd() (Expr, *ParseError) {
	return p.binaryLevel(p.equality, TokenAmpersand)
}

// equality parses == and != expressions.
func (p *Parser) equality() (Expr, *ParseError) {
	return p.binaryLevel(p.comparison, TokenEqualEqual, TokenBangEqual)
}

// comparison parses <, >, <=, >= expressions.
func (p *Parser) comparison() (Expr, *ParseError) {
	return p.binaryLevel(p.shift, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual)
}

// shift parses << and >> expressions.
func (p *Parser) shift() (Expr, *ParseError) {
	return p.binaryLevel(p.additive, TokenLessLess, TokenGreaterGreater)
}

// additive parses + and - expressions.
func (p *Parser) additive() (Expr, *ParseError) {
	return p.binaryLevel(p.multiplicative, TokenPlus, TokenMinus)
}

// multiplicative parses *, /, % expressions.
func (p *Parser) multiplicative() (Expr, *ParseError) {
	return p.binaryLevel(p.unary, TokenStar, TokenSlash, TokenPercent)
}

// binaryLevel parses one left-associative precedence level.
func (p *Parser) binaryLevel(next func() (Expr, *ParseError), ops ...TokenKind) (Expr, *ParseError) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.checkAny(ops...) {
		op := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:  left,
			Op:    op.Kind,
			Right: right,
			Span:  left.Pos(),
		}
	}

	return left, nil
}

// unary parses prefix unary expressions.
func (p *Parser) unary() (Expr, *ParseError) {
	switch p.peek().Kind {
	case TokenMinus, TokenPlus, TokenBang, TokenTilde, TokenPlusPlus, TokenMinusMinus:
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:      op.Kind,
			Operand: operand,
			Span:    spanOf(op),
		}, nil
	}

	return p.postfix()
}

// postfix parses postfix expressions (calls, indexing, member access,
// postfix increment/decrement).
func (p *Parser) postfix() (Expr, *ParseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.check(TokenLeftParen) {
			ident, ok := expr.(*Ident)
			if !ok {
				return nil, &ParseError{Message: "expression is not callable", Token: p.peek()}
			}
			p.advance() // consume '('
			args, err := p.callArgs()
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{
				Callee: ident.Name,
				Args:   args,
				Span:   ident.Span,
			}
		} else if p.match(TokenLeftBracket) {
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.expectErr(TokenRightBracket); err != nil {
				return nil, err
			}
			expr = &IndexExpr{
				Expr:  expr,
				Index: index,
				Span:  expr.Pos(),
			}
		} else if p.match(TokenDot) {
			if !p.check(TokenIdent) {
				return nil, &ParseError{Message: "expected member name", Token: p.peek()}
			}
			member := p.advance()
			expr = &MemberExpr{
				Expr:   expr,
				Member: member.Lexeme,
				Span:   expr.Pos(),
			}
		} else if p.check(TokenPlusPlus) || p.check(TokenMinusMinus) {
			op := p.advance()
			expr = &UnaryExpr{
				Op:      op.Kind,
				Operand: expr,
				Postfix: true,
				Span:    expr.Pos(),
			}
		} else {
			break
		}
	}

	return expr, nil
}

// callArgs parses a comma-separated argument list up to ')'.
func (p *Parser) callArgs() ([]Expr, *ParseError) {
	args := make([]Expr, 0, 4)
	for !p.check(TokenRightParen) && !p.isAtEnd() {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	return args, nil
}

// primary parses primary expressions.
func (p *Parser) primary() (Expr, *ParseError) {
	tok := p.peek()

	switch tok.Kind {
	case TokenIntLiteral, TokenFloatLiteral:
		p.advance()
		return &Literal{
			Kind:  tok.Kind,
			Value: tok.Lexeme,
			Span:  spanOf(tok),
		}, nil

	case TokenTrue, TokenFalse:
		p.advance()
		return &Literal{
			Kind:  TokenBoolLiteral,
			Value: tok.Lexeme,
			Span:  spanOf(tok),
		}, nil

	case TokenIdent:
		p.advance()
		return &Ident{
			Name: tok.Lexeme,
			Span: spanOf(tok),
		}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		// Vector/matrix constructors are ordinary calls whose callee is a
		// type name: vec3(1.0, 0.0, 0.0).
		if p.isTypeToken(tok.Kind) && p.peekAhead(1).Kind == TokenLeftParen {
			p.advance() // type name
			p.advance() // '('
			args, err := p.callArgs()
			if err != nil {
				return nil, err
			}
			return &CallExpr{
				Callee: tok.Lexeme,
				Args:   args,
				Span:   spanOf(tok),
			}, nil
		}

		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected token %s in expression", tok.Kind),
			Token:   tok,
		}
	}
}

// Helper methods

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAhead(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkAny(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectErr(kind TokenKind) *ParseError {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return &ParseError{
		Message: fmt.Sprintf("expected %s, got %s", kind, p.peek().Kind),
		Token:   p.peek(),
	}
}

func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenShaderType, TokenRenderMode, TokenInclude, TokenUniform,
			TokenVarying, TokenVoid, TokenRightBrace:
			return
		}
		p.advance()
	}
}

func (p *Parser) isTypeToken(kind TokenKind) bool {
	switch kind {
	case TokenVoid, TokenBool, TokenInt, TokenFloat,
		TokenVec2, TokenVec3, TokenVec4,
		TokenMat2, TokenMat3, TokenMat4,
		TokenSampler2D, TokenSamplerCube:
		return true
	}
	return false
}

func (p *Parser) isAssignOp(kind TokenKind) bool {
	switch kind {
	case TokenEqual, TokenPlusEqual, TokenMinusEqual, TokenStarEqual,
		TokenSlashEqual, TokenPercentEqual, TokenAmpEqual, TokenPipeEqual,
		TokenCaretEqual, TokenLessLessEqual, TokenGreaterGreaterEqual:
		return true
	}
	return false
}

func spanOf(tok Token) Span {
	return Span{Start: Position{Line: tok.Line, Column: tok.Column}}
}
