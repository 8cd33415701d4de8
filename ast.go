package clite

// Typespec, Expr, Stmt, and Decl are the four sum types of spec.md
// §3. Each is a marker interface implemented by exactly one concrete
// struct per variant; pattern matching over a sum type is done via
// Accept + a sum-type-specific visitor interface (see
// ast_visitor.go), mirroring the teacher's AstNode/AstNodeVisitor
// pair in grammar_ast.go. This makes exhaustiveness a compiler check
// the way spec.md §9 asks for: "pattern matching replaces the
// `switch (kind)` dispatch and makes exhaustiveness a compiler
// check."
//
// Every node is allocated from a single Arena (see arena_ast.go) and
// is never constructed any other way; all of an AST's lifetime is
// therefore exactly the lifetime of the Arena that built it, per
// spec.md §5's single-owner resource policy.

// Typespec is the sum type of type expressions: ident, ptr, array, fn.
type Typespec interface {
	Accept(TypespecVisitor) error
	typespecNode()
}

// Expr is the sum type of expressions.
type Expr interface {
	Accept(ExprVisitor) error
	exprNode()
}

// Stmt is the sum type of statements.
type Stmt interface {
	Accept(StmtVisitor) error
	stmtNode()
}

// Decl is the sum type of top-level and nested declarations.
type Decl interface {
	Accept(DeclVisitor) error
	declNode()
}

// Block is the StmtBlock auxiliary record: an ordered list of
// statements forming one lexical block. It is shared by every
// statement form that carries a body (if/while/do-while/for/switch
// case) as well as by the standalone `block(stmts)` Stmt variant.
type Block struct {
	Stmts []Stmt
}

// ElseIf is the ElseIf auxiliary record: one `else if (cond) {...}`
// clause. Stmt_If.ElseIfs preserves source order, per spec.md §3.
type ElseIf struct {
	Cond  Expr
	Block *Block
}

// SwitchCase is the SwitchCase auxiliary record: one or more
// consecutive `case`/`default` labels sharing a single body.
// Labels preserves source order; IsDefault is set if any label in
// the group is `default`.
type SwitchCase struct {
	Labels    []Expr
	IsDefault bool
	Block     *Block
}

// EnumItem is the EnumItem auxiliary record: one enumerator, with an
// optional explicit value expression.
type EnumItem struct {
	Name *Symbol
	Expr Expr // nil if the enumerator has no explicit value
}

// AggregateItem is the AggregateItem auxiliary record: a group of
// struct/union field names sharing one declared type, e.g.
// `x, y: float;`.
type AggregateItem struct {
	Names []*Symbol
	Type  Typespec
}

// FnParam is the FnParam auxiliary record: one function parameter.
type FnParam struct {
	Name *Symbol
	Type Typespec
}
