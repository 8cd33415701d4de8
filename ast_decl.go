package clite

// EnumDecl is `enum(name, items*)`.
type EnumDecl struct {
	Name  *Symbol
	Items []EnumItem
}

func (n *EnumDecl) declNode()            {}
func (n *EnumDecl) Accept(v DeclVisitor) error { return v.VisitEnumDecl(n) }

// StructDecl is `struct(name, items*)`.
type StructDecl struct {
	Name  *Symbol
	Items []AggregateItem
}

func (n *StructDecl) declNode()            {}
func (n *StructDecl) Accept(v DeclVisitor) error { return v.VisitStructDecl(n) }

// UnionDecl is `union(name, items*)`.
type UnionDecl struct {
	Name  *Symbol
	Items []AggregateItem
}

func (n *UnionDecl) declNode()            {}
func (n *UnionDecl) Accept(v DeclVisitor) error { return v.VisitUnionDecl(n) }

// LetDecl is `let(name, type?, expr?)`. `let` accepts `= expr`,
// `: type`, or `: type = expr` (spec.md §4.5); Type and Expr are
// independently nilable.
type LetDecl struct {
	Name *Symbol
	Type Typespec // nilable
	Expr Expr     // nilable
}

func (n *LetDecl) declNode()            {}
func (n *LetDecl) Accept(v DeclVisitor) error { return v.VisitLetDecl(n) }

// ConstDecl is `const(name, expr)`.
type ConstDecl struct {
	Name *Symbol
	Expr Expr
}

func (n *ConstDecl) declNode()            {}
func (n *ConstDecl) Accept(v DeclVisitor) error { return v.VisitConstDecl(n) }

// TypedefDecl is `typedef(name, type)`.
type TypedefDecl struct {
	Name *Symbol
	Type Typespec
}

func (n *TypedefDecl) declNode()            {}
func (n *TypedefDecl) Accept(v DeclVisitor) error { return v.VisitTypedefDecl(n) }

// FnDecl is `fn(name, params*, ret?, block)`.
type FnDecl struct {
	Name   *Symbol
	Params []FnParam
	Ret    Typespec // nilable
	Body   *Block
}

func (n *FnDecl) declNode()            {}
func (n *FnDecl) Accept(v DeclVisitor) error { return v.VisitFnDecl(n) }
