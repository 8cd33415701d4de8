package clite

// IntExpr is `int(u64)`: an integer literal. Its NumberMod (the base
// it was written in, or NumberModChar for a character literal) is
// not retained on the AST node — spec.md's data model for Expr_int
// carries only the decoded value — but is available from the
// originating Token during parsing if a caller needs it.
type IntExpr struct {
	Value uint64
}

func (n *IntExpr) exprNode()            {}
func (n *IntExpr) Accept(v ExprVisitor) error { return v.VisitIntExpr(n) }

// FloatExpr is `float(f64)`.
type FloatExpr struct {
	Value float64
}

func (n *FloatExpr) exprNode()            {}
func (n *FloatExpr) Accept(v ExprVisitor) error { return v.VisitFloatExpr(n) }

// StrExpr is `str(bytes)`. Value is arena-owned; once attached here
// the bytes are treated as immutable for the remainder of the
// session, per spec.md §5.
type StrExpr struct {
	Value []byte
}

func (n *StrExpr) exprNode()            {}
func (n *StrExpr) Accept(v ExprVisitor) error { return v.VisitStrExpr(n) }

// IdentExpr is `ident(name)`: a reference to a name.
type IdentExpr struct {
	Name *Symbol
}

func (n *IdentExpr) exprNode()            {}
func (n *IdentExpr) Accept(v ExprVisitor) error { return v.VisitIdentExpr(n) }

// CastExpr is `cast(type, expr)`: `(: type) expr`.
type CastExpr struct {
	Type Typespec
	Expr Expr
}

func (n *CastExpr) exprNode()            {}
func (n *CastExpr) Accept(v ExprVisitor) error { return v.VisitCastExpr(n) }

// CallExpr is `call(expr, args*)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (n *CallExpr) exprNode()            {}
func (n *CallExpr) Accept(v ExprVisitor) error { return v.VisitCallExpr(n) }

// IndexExpr is `index(expr, index)`.
type IndexExpr struct {
	Expr  Expr
	Index Expr
}

func (n *IndexExpr) exprNode()            {}
func (n *IndexExpr) Accept(v ExprVisitor) error { return v.VisitIndexExpr(n) }

// FieldExpr is `field(expr, name)`.
type FieldExpr struct {
	Expr Expr
	Name *Symbol
}

func (n *FieldExpr) exprNode()            {}
func (n *FieldExpr) Accept(v ExprVisitor) error { return v.VisitFieldExpr(n) }

// CompoundExpr is `compound(type?, args*)`: a brace-enclosed
// aggregate literal, optionally preceded by a type (either
// `Ident{...}` or `(: Type)` cast-compound form). Type is nil iff the
// literal was written `{...}` with no preceding type or cast, per
// spec.md §3.
type CompoundExpr struct {
	Type Typespec // nilable
	Args []Expr
}

func (n *CompoundExpr) exprNode()            {}
func (n *CompoundExpr) Accept(v ExprVisitor) error { return v.VisitCompoundExpr(n) }

// UnaryExpr is `unary(op, expr)`. Op is one of the prefix operators
// `+ - * &`.
type UnaryExpr struct {
	Op   TokenKind
	Expr Expr
}

func (n *UnaryExpr) exprNode()            {}
func (n *UnaryExpr) Accept(v ExprVisitor) error { return v.VisitUnaryExpr(n) }

// BinaryExpr is `binary(op, left, right)`.
type BinaryExpr struct {
	Op    TokenKind
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) exprNode()            {}
func (n *BinaryExpr) Accept(v ExprVisitor) error { return v.VisitBinaryExpr(n) }

// TernaryExpr is `ternary(cond, then, else)`: `cond ? then : else`.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (n *TernaryExpr) exprNode()            {}
func (n *TernaryExpr) Accept(v ExprVisitor) error { return v.VisitTernaryExpr(n) }
