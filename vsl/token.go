package vsl

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenBoolLiteral
	TokenString

	// Operators
	TokenPlus                // +
	TokenMinus               // -
	TokenStar                // *
	TokenSlash               // /
	TokenPercent             // %
	TokenAmpersand           // &
	TokenPipe                // |
	TokenCaret               // ^
	TokenTilde               // ~
	TokenBang                // !
	TokenEqual               // =
	TokenLess                // <
	TokenGreater             // >
	TokenDot                 // .
	TokenComma               // ,
	TokenColon               // :
	TokenSemicolon           // ;
	TokenQuestion            // ?
	TokenPlusPlus            // ++
	TokenMinusMinus          // --
	TokenEqualEqual          // ==
	TokenBangEqual           // !=
	TokenLessEqual           // <=
	TokenGreaterEqual        // >=
	TokenAmpAmp              // &&
	TokenPipePipe            // ||
	TokenLessLess            // <<
	TokenGreaterGreater      // >>
	TokenPlusEqual           // +=
	TokenMinusEqual          // -=
	TokenStarEqual           // *=
	TokenSlashEqual          // /=
	TokenPercentEqual        // %=
	TokenAmpEqual            // &=
	TokenPipeEqual           // |=
	TokenCaretEqual          // ^=
	TokenLessLessEqual       // <<=
	TokenGreaterGreaterEqual // >>=

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]

	// Keywords
	TokenShaderType
	TokenRenderMode
	TokenUniform
	TokenVarying
	TokenInclude // #include
	TokenIf
	TokenElse
	TokenFor
	TokenWhile
	TokenDo
	TokenReturn
	TokenBreak
	TokenContinue
	TokenDiscard
	TokenTrue
	TokenFalse
	TokenIn
	TokenOut
	TokenInout

	// Type keywords
	TokenVoid
	TokenBool
	TokenInt
	TokenFloat
	TokenVec2
	TokenVec3
	TokenVec4
	TokenMat2
	TokenMat3
	TokenMat4
	TokenSampler2D
	TokenSamplerCube
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "Error"
	case TokenIdent:
		return "Ident"
	case TokenIntLiteral:
		return "IntLiteral"
	case TokenFloatLiteral:
		return "FloatLiteral"
	case TokenBoolLiteral:
		return "BoolLiteral"
	case TokenString:
		return "String"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenEqual:
		return "="
	case TokenQuestion:
		return "?"
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenComma:
		return ","
	case TokenDot:
		return "."
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenLeftBracket:
		return "["
	case TokenRightBracket:
		return "]"
	case TokenShaderType:
		return "shader_type"
	case TokenRenderMode:
		return "render_mode"
	case TokenUniform:
		return "uniform"
	case TokenVarying:
		return "varying"
	case TokenInclude:
		return "#include"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenFor:
		return "for"
	case TokenWhile:
		return "while"
	case TokenDo:
		return "do"
	case TokenReturn:
		return "return"
	case TokenBreak:
		return "break"
	case TokenContinue:
		return "continue"
	case TokenDiscard:
		return "discard"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// Span represents a source code location span.
type Span struct {
	Start Position
	End   Position
}

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
	Offset int
}
