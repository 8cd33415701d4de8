package clite

// IdentTypespec is `ident(name)`: a named type, e.g. `int` or a
// struct/enum/union/typedef name.
type IdentTypespec struct {
	Name *Symbol
}

func (n *IdentTypespec) typespecNode()               {}
func (n *IdentTypespec) Accept(v TypespecVisitor) error { return v.VisitIdentTypespec(n) }

// PtrTypespec is `ptr(elem)`: a pointer to Elem.
type PtrTypespec struct {
	Elem Typespec
}

func (n *PtrTypespec) typespecNode()               {}
func (n *PtrTypespec) Accept(v TypespecVisitor) error { return v.VisitPtrTypespec(n) }

// ArrayTypespec is `array(elem, size_expr?)`. Size is nil when the
// array's size was elided in a declarator position; spec.md §3 notes
// this is accepted by the parser and left for a later phase to flag.
type ArrayTypespec struct {
	Elem Typespec
	Size Expr // nilable
}

func (n *ArrayTypespec) typespecNode()               {}
func (n *ArrayTypespec) Accept(v TypespecVisitor) error { return v.VisitArrayTypespec(n) }

// FnTypespec is `fn(arg_types*, ret?)`: a function type, as appears
// in `fn (int, int): int` typespec position (distinct from an `fn`
// declaration, see FnDecl).
type FnTypespec struct {
	ArgTypes []Typespec
	Ret      Typespec // nilable
}

func (n *FnTypespec) typespecNode()               {}
func (n *FnTypespec) Accept(v TypespecVisitor) error { return v.VisitFnTypespec(n) }
