package clite

// ReturnStmt is `return(expr)`.
type ReturnStmt struct {
	Expr Expr
}

func (n *ReturnStmt) stmtNode()            {}
func (n *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(n) }

// BreakStmt is `break`.
type BreakStmt struct{}

func (n *BreakStmt) stmtNode()            {}
func (n *BreakStmt) Accept(v StmtVisitor) error { return v.VisitBreakStmt(n) }

// ContinueStmt is `continue`.
type ContinueStmt struct{}

func (n *ContinueStmt) stmtNode()            {}
func (n *ContinueStmt) Accept(v StmtVisitor) error { return v.VisitContinueStmt(n) }

// BlockStmt is `block(stmts)`: a bare nested block used as a
// statement in its own right (distinct from the Block bodies carried
// by if/while/for/switch, though both share the Block record type).
type BlockStmt struct {
	Body *Block
}

func (n *BlockStmt) stmtNode()            {}
func (n *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(n) }

// IfStmt is `if(cond, then-block, elseifs*, else-block?)`. ElseIfs
// preserves source order; Else is nil when there is no trailing
// `else`.
type IfStmt struct {
	Cond    Expr
	Then    *Block
	ElseIfs []ElseIf
	Else    *Block // nilable
}

func (n *IfStmt) stmtNode()            {}
func (n *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(n) }

// WhileStmt is `while(cond, block)`.
type WhileStmt struct {
	Cond Expr
	Body *Block
}

func (n *WhileStmt) stmtNode()            {}
func (n *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(n) }

// DoWhileStmt is `do-while(cond, block)`. Requires a trailing
// `while (cond);` in source, per spec.md §4.5.
type DoWhileStmt struct {
	Cond Expr
	Body *Block
}

func (n *DoWhileStmt) stmtNode()            {}
func (n *DoWhileStmt) Accept(v StmtVisitor) error { return v.VisitDoWhileStmt(n) }

// ForStmt is `for(init?, cond?, next?, block)`. Init, Cond, and Next
// are each independently optional.
type ForStmt struct {
	Init Stmt // nilable
	Cond Expr // nilable
	Next Stmt // nilable
	Body *Block
}

func (n *ForStmt) stmtNode()            {}
func (n *ForStmt) Accept(v StmtVisitor) error { return v.VisitForStmt(n) }

// SwitchStmt is `switch(expr, cases*)`.
type SwitchStmt struct {
	Expr  Expr
	Cases []*SwitchCase
}

func (n *SwitchStmt) stmtNode()            {}
func (n *SwitchStmt) Accept(v StmtVisitor) error { return v.VisitSwitchStmt(n) }

// AssignStmt is `assign(op, left, right?)`. Right is nil iff
// Op is TokenInc or TokenDec, per spec.md §3 and the Open Question
// resolution in SPEC_FULL.md §9: consumers must check Right != nil
// before dispatch.
type AssignStmt struct {
	Op    TokenKind
	Left  Expr
	Right Expr // nilable iff Op is ++ or --
}

func (n *AssignStmt) stmtNode()            {}
func (n *AssignStmt) Accept(v StmtVisitor) error { return v.VisitAssignStmt(n) }

// InitStmt is `init(name, expr)`: the `name := expr` short
// declaration form.
type InitStmt struct {
	Name *Symbol
	Expr Expr
}

func (n *InitStmt) stmtNode()            {}
func (n *InitStmt) Accept(v StmtVisitor) error { return v.VisitInitStmt(n) }

// ExprStmt is `expr(expr)`: an expression evaluated for effect.
type ExprStmt struct {
	Expr Expr
}

func (n *ExprStmt) stmtNode()            {}
func (n *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(n) }
