package vsl

// ShaderKind identifies which family of built-ins a shader compiles against.
type ShaderKind uint8

const (
	KindCanvasItem ShaderKind = iota
	KindSpatial
	KindParticles
)

// String returns the source-level name of the shader kind.
func (k ShaderKind) String() string {
	switch k {
	case KindCanvasItem:
		return "canvas_item"
	case KindSpatial:
		return "spatial"
	case KindParticles:
		return "particles"
	default:
		return "unknown"
	}
}

// ShaderKindFromName resolves a source-level kind name.
func ShaderKindFromName(name string) (ShaderKind, bool) {
	switch name {
	case "canvas_item":
		return KindCanvasItem, true
	case "spatial":
		return KindSpatial, true
	case "particles":
		return KindParticles, true
	default:
		return 0, false
	}
}

// ShaderAST is the root of a parsed shader source unit.
type ShaderAST struct {
	Kind        ShaderKind
	RenderModes []string
	Includes    []string
	Uniforms    []*UniformDecl
	Varyings    []*VaryingDecl
	Functions   []*FunctionDecl
}

// Function returns the declared function with the given name, or nil.
func (a *ShaderAST) Function(name string) *FunctionDecl {
	for _, fn := range a.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Helpers returns all functions that are not pipeline stage entry points,
// in declaration order.
func (a *ShaderAST) Helpers() []*FunctionDecl {
	var helpers []*FunctionDecl
	for _, fn := range a.Functions {
		switch fn.Name {
		case "vertex", "fragment", "light":
		default:
			helpers = append(helpers, fn)
		}
	}
	return helpers
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	Node
	exprNode()
}

// HintKind identifies an editor hint attached to a uniform declaration.
type HintKind uint8

const (
	HintRange HintKind = iota
	HintColor
	HintAlbedo
	HintNormalMap
	HintWhite
	HintBlack
	HintNoise
)

// String returns the source-level name of the hint.
func (h HintKind) String() string {
	switch h {
	case HintRange:
		return "hint_range"
	case HintColor:
		return "hint_color"
	case HintAlbedo:
		return "hint_albedo"
	case HintNormalMap:
		return "hint_normal"
	case HintWhite:
		return "hint_white"
	case HintBlack:
		return "hint_black"
	case HintNoise:
		return "hint_noise"
	default:
		return "unknown"
	}
}

// Hint is editor-facing metadata on a uniform declaration.
type Hint struct {
	Kind   HintKind
	Params []float64    // numeric arguments (range min/max/step)
	Noise  *NoiseParams // set only for HintNoise
	Span   Span
}

// NoiseAlgorithm selects the procedural default-texture generator.
type NoiseAlgorithm uint8

const (
	NoisePerlin NoiseAlgorithm = iota
	NoiseSimplex
	NoiseCellular
	NoiseWhite
)

// String returns the source-level name of the algorithm.
func (n NoiseAlgorithm) String() string {
	switch n {
	case NoisePerlin:
		return "perlin"
	case NoiseSimplex:
		return "simplex"
	case NoiseCellular:
		return "cellular"
	case NoiseWhite:
		return "white"
	default:
		return "unknown"
	}
}

// NoiseParams is the fully-populated parameter record for a hint_noise
// uniform. Defaults are applied at parse time, so consumers never apply
// their own.
type NoiseParams struct {
	Algorithm NoiseAlgorithm
	Width     int
	Height    int
	Frequency float64 // perlin, simplex, cellular
	Octaves   int     // perlin, simplex
	Jitter    float64 // cellular
	Seed      int
}

// UniformDecl represents a uniform declaration.
type UniformDecl struct {
	Type    string
	Name    string
	Hint    *Hint
	Default Expr
	Span    Span
}

func (u *UniformDecl) Pos() Span { return u.Span }

// VaryingDecl represents a varying declaration.
type VaryingDecl struct {
	Type string
	Name string
	Span Span
}

func (v *VaryingDecl) Pos() Span { return v.Span }

// FunctionDecl represents a function declaration. Functions named "vertex",
// "fragment" or "light" are pipeline stage entry points.
type FunctionDecl struct {
	Name       string
	ReturnType string
	Params     []*Parameter
	Body       *BlockStmt
	Span       Span
}

func (f *FunctionDecl) Pos() Span { return f.Span }

// Parameter represents a function parameter.
type Parameter struct {
	Name      string
	Type      string
	Qualifier string // "", "in", "out", "inout"
	Span      Span
}

// Statements

// BlockStmt represents a block statement.
type BlockStmt struct {
	Statements []Stmt
	Span       Span
}

func (b *BlockStmt) Pos() Span { return b.Span }
func (b *BlockStmt) stmtNode() {}

// VarDeclStmt represents a local variable declaration.
type VarDeclStmt struct {
	Type string
	Name string
	Init Expr // nil when uninitialized
	Span Span
}

func (v *VarDeclStmt) Pos() Span { return v.Span }
func (v *VarDeclStmt) stmtNode() {}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr
	Span Span
}

func (e *ExprStmt) Pos() Span { return e.Span }
func (e *ExprStmt) stmtNode() {}

// IfStmt represents an if statement.
type IfStmt struct {
	Condition Expr
	Body      *BlockStmt
	Else      Stmt // *BlockStmt or *IfStmt
	Span      Span
}

func (i *IfStmt) Pos() Span { return i.Span }
func (i *IfStmt) stmtNode() {}

// ForStmt represents a for loop.
type ForStmt struct {
	Init      Stmt // *VarDeclStmt or *ExprStmt, nil when omitted
	Condition Expr
	Update    Expr
	Body      *BlockStmt
	Span      Span
}

func (f *ForStmt) Pos() Span { return f.Span }
func (f *ForStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Condition Expr
	Body      *BlockStmt
	Span      Span
}

func (w *WhileStmt) Pos() Span { return w.Span }
func (w *WhileStmt) stmtNode() {}

// DoWhileStmt represents a do-while loop.
type DoWhileStmt struct {
	Body      *BlockStmt
	Condition Expr
	Span      Span
}

func (d *DoWhileStmt) Pos() Span { return d.Span }
func (d *DoWhileStmt) stmtNode() {}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	Value Expr // nil for bare return
	Span  Span
}

func (r *ReturnStmt) Pos() Span { return r.Span }
func (r *ReturnStmt) stmtNode() {}

// BreakStmt represents a break statement.
type BreakStmt struct {
	Span Span
}

func (b *BreakStmt) Pos() Span { return b.Span }
func (b *BreakStmt) stmtNode() {}

// ContinueStmt represents a continue statement.
type ContinueStmt struct {
	Span Span
}

func (c *ContinueStmt) Pos() Span { return c.Span }
func (c *ContinueStmt) stmtNode() {}

// DiscardStmt represents a discard statement.
type DiscardStmt struct {
	Span Span
}

func (d *DiscardStmt) Pos() Span { return d.Span }
func (d *DiscardStmt) stmtNode() {}

// Expressions

// Ident represents an identifier.
type Ident struct {
	Name string
	Span Span
}

func (i *Ident) Pos() Span { return i.Span }
func (i *Ident) exprNode() {}

// Literal represents a literal value.
type Literal struct {
	Kind  TokenKind // IntLiteral, FloatLiteral, BoolLiteral
	Value string
	Span  Span
}

func (l *Literal) Pos() Span { return l.Span }
func (l *Literal) exprNode() {}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    TokenKind
	Right Expr
	Span  Span
}

func (b *BinaryExpr) Pos() Span { return b.Span }
func (b *BinaryExpr) exprNode() {}

// UnaryExpr represents a prefix or postfix unary expression.
type UnaryExpr struct {
	Op      TokenKind
	Operand Expr
	Postfix bool // x++ rather than ++x
	Span    Span
}

func (u *UnaryExpr) Pos() Span { return u.Span }
func (u *UnaryExpr) exprNode() {}

// AssignExpr represents an assignment expression.
type AssignExpr struct {
	Left  Expr
	Op    TokenKind // =, +=, -=, etc.
	Right Expr
	Span  Span
}

func (a *AssignExpr) Pos() Span { return a.Span }
func (a *AssignExpr) exprNode() {}

// TernaryExpr represents a conditional expression.
type TernaryExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
	Span      Span
}

func (t *TernaryExpr) Pos() Span { return t.Span }
func (t *TernaryExpr) exprNode() {}

// CallExpr represents a function call. The callee may be a user function,
// a GLSL built-in function, or a type constructor (vec3, mat4, ...).
type CallExpr struct {
	Callee string
	Args   []Expr
	Span   Span
}

func (c *CallExpr) Pos() Span { return c.Span }
func (c *CallExpr) exprNode() {}

// IndexExpr represents an index expression.
type IndexExpr struct {
	Expr  Expr
	Index Expr
	Span  Span
}

func (i *IndexExpr) Pos() Span { return i.Span }
func (i *IndexExpr) exprNode() {}

// MemberExpr represents a member access or swizzle expression.
type MemberExpr struct {
	Expr   Expr
	Member string
	Span   Span
}

func (m *MemberExpr) Pos() Span { return m.Span }
func (m *MemberExpr) exprNode() {}
