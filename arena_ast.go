package clite

// Arena is the single-owner AST arena: every Typespec/Expr/Stmt/Decl
// node and auxiliary record produced while parsing one source lives
// here for the arena's lifetime, per spec.md §5. It holds one
// typedArena[T] per concrete node type (so each Alloc() call is fully
// typed and GC-safe, see arena.go) plus one per auxiliary slice
// element type, standing in for spec.md's single untyped bump region
// plus ast_dup.
type Arena struct {
	identTS typedArena[IdentTypespec]
	ptrTS   typedArena[PtrTypespec]
	arrTS   typedArena[ArrayTypespec]
	fnTS    typedArena[FnTypespec]

	intE   typedArena[IntExpr]
	floatE typedArena[FloatExpr]
	strE   typedArena[StrExpr]
	identE typedArena[IdentExpr]
	castE  typedArena[CastExpr]
	callE  typedArena[CallExpr]
	indexE typedArena[IndexExpr]
	fieldE typedArena[FieldExpr]
	compE  typedArena[CompoundExpr]
	unaryE typedArena[UnaryExpr]
	binE   typedArena[BinaryExpr]
	ternE  typedArena[TernaryExpr]

	returnS   typedArena[ReturnStmt]
	breakS    typedArena[BreakStmt]
	continueS typedArena[ContinueStmt]
	blockS    typedArena[BlockStmt]
	ifS       typedArena[IfStmt]
	whileS    typedArena[WhileStmt]
	doWhileS  typedArena[DoWhileStmt]
	forS      typedArena[ForStmt]
	switchS   typedArena[SwitchStmt]
	assignS   typedArena[AssignStmt]
	initS     typedArena[InitStmt]
	exprS     typedArena[ExprStmt]

	enumD    typedArena[EnumDecl]
	structD  typedArena[StructDecl]
	unionD   typedArena[UnionDecl]
	letD     typedArena[LetDecl]
	constD   typedArena[ConstDecl]
	typedefD typedArena[TypedefDecl]
	fnD      typedArena[FnDecl]

	blocks      typedArena[Block]
	switchCases typedArena[SwitchCase]

	typespecSlices typedArena[Typespec]
	exprSlices     typedArena[Expr]
	stmtSlices     typedArena[Stmt]
	elseIfSlices   typedArena[ElseIf]
	enumItemSlices typedArena[EnumItem]
	aggItemSlices  typedArena[AggregateItem]
	paramSlices    typedArena[FnParam]
	caseSlices     typedArena[*SwitchCase]
	symbolSlices   typedArena[*Symbol]
}

// NewArena returns an empty, ready-to-use AST arena.
func NewArena() *Arena { return &Arena{} }

// allocCopy freezes a transient slice into one of the arena's typed
// slice pools, the ast_dup(src, size) operation of spec.md §4.4.
func allocCopy[T any](pool *typedArena[T], items []T) []T {
	out := pool.AllocSlice(len(items))
	copy(out, items)
	return out
}

// --- Typespec constructors ---

func (a *Arena) NewIdentTypespec(name *Symbol) *IdentTypespec {
	n := a.identTS.Alloc()
	n.Name = name
	return n
}

func (a *Arena) NewPtrTypespec(elem Typespec) *PtrTypespec {
	n := a.ptrTS.Alloc()
	n.Elem = elem
	return n
}

func (a *Arena) NewArrayTypespec(elem Typespec, size Expr) *ArrayTypespec {
	n := a.arrTS.Alloc()
	n.Elem = elem
	n.Size = size
	return n
}

func (a *Arena) NewFnTypespec(argTypes []Typespec, ret Typespec) *FnTypespec {
	n := a.fnTS.Alloc()
	n.ArgTypes = a.Typespecs(argTypes)
	n.Ret = ret
	return n
}

// Typespecs freezes a transient []Typespec into arena storage.
func (a *Arena) Typespecs(items []Typespec) []Typespec {
	return allocCopy(&a.typespecSlices, items)
}

// --- Expr constructors ---

func (a *Arena) NewIntExpr(v uint64) *IntExpr {
	n := a.intE.Alloc()
	n.Value = v
	return n
}

func (a *Arena) NewFloatExpr(v float64) *FloatExpr {
	n := a.floatE.Alloc()
	n.Value = v
	return n
}

func (a *Arena) NewStrExpr(v []byte) *StrExpr {
	n := a.strE.Alloc()
	n.Value = v
	return n
}

func (a *Arena) NewIdentExpr(name *Symbol) *IdentExpr {
	n := a.identE.Alloc()
	n.Name = name
	return n
}

func (a *Arena) NewCastExpr(t Typespec, e Expr) *CastExpr {
	n := a.castE.Alloc()
	n.Type = t
	n.Expr = e
	return n
}

func (a *Arena) NewCallExpr(callee Expr, args []Expr) *CallExpr {
	n := a.callE.Alloc()
	n.Callee = callee
	n.Args = a.Exprs(args)
	return n
}

func (a *Arena) NewIndexExpr(e, index Expr) *IndexExpr {
	n := a.indexE.Alloc()
	n.Expr = e
	n.Index = index
	return n
}

func (a *Arena) NewFieldExpr(e Expr, name *Symbol) *FieldExpr {
	n := a.fieldE.Alloc()
	n.Expr = e
	n.Name = name
	return n
}

func (a *Arena) NewCompoundExpr(t Typespec, args []Expr) *CompoundExpr {
	n := a.compE.Alloc()
	n.Type = t
	n.Args = a.Exprs(args)
	return n
}

func (a *Arena) NewUnaryExpr(op TokenKind, e Expr) *UnaryExpr {
	n := a.unaryE.Alloc()
	n.Op = op
	n.Expr = e
	return n
}

func (a *Arena) NewBinaryExpr(op TokenKind, left, right Expr) *BinaryExpr {
	n := a.binE.Alloc()
	n.Op = op
	n.Left = left
	n.Right = right
	return n
}

func (a *Arena) NewTernaryExpr(cond, then, els Expr) *TernaryExpr {
	n := a.ternE.Alloc()
	n.Cond = cond
	n.Then = then
	n.Else = els
	return n
}

// Exprs freezes a transient []Expr into arena storage.
func (a *Arena) Exprs(items []Expr) []Expr {
	return allocCopy(&a.exprSlices, items)
}

// --- Stmt constructors ---

func (a *Arena) NewBlock(stmts []Stmt) *Block {
	n := a.blocks.Alloc()
	n.Stmts = a.Stmts(stmts)
	return n
}

func (a *Arena) NewReturnStmt(e Expr) *ReturnStmt {
	n := a.returnS.Alloc()
	n.Expr = e
	return n
}

func (a *Arena) NewBreakStmt() *BreakStmt { return a.breakS.Alloc() }

func (a *Arena) NewContinueStmt() *ContinueStmt { return a.continueS.Alloc() }

func (a *Arena) NewBlockStmt(body *Block) *BlockStmt {
	n := a.blockS.Alloc()
	n.Body = body
	return n
}

func (a *Arena) NewIfStmt(cond Expr, then *Block, elseIfs []ElseIf, els *Block) *IfStmt {
	n := a.ifS.Alloc()
	n.Cond = cond
	n.Then = then
	n.ElseIfs = allocCopy(&a.elseIfSlices, elseIfs)
	n.Else = els
	return n
}

func (a *Arena) NewWhileStmt(cond Expr, body *Block) *WhileStmt {
	n := a.whileS.Alloc()
	n.Cond = cond
	n.Body = body
	return n
}

func (a *Arena) NewDoWhileStmt(cond Expr, body *Block) *DoWhileStmt {
	n := a.doWhileS.Alloc()
	n.Cond = cond
	n.Body = body
	return n
}

func (a *Arena) NewForStmt(init Stmt, cond Expr, next Stmt, body *Block) *ForStmt {
	n := a.forS.Alloc()
	n.Init = init
	n.Cond = cond
	n.Next = next
	n.Body = body
	return n
}

func (a *Arena) NewSwitchCase(labels []Expr, isDefault bool, block *Block) *SwitchCase {
	n := a.switchCases.Alloc()
	n.Labels = a.Exprs(labels)
	n.IsDefault = isDefault
	n.Block = block
	return n
}

func (a *Arena) NewSwitchStmt(e Expr, cases []*SwitchCase) *SwitchStmt {
	n := a.switchS.Alloc()
	n.Expr = e
	n.Cases = allocCopy(&a.caseSlices, cases)
	return n
}

func (a *Arena) NewAssignStmt(op TokenKind, left, right Expr) *AssignStmt {
	n := a.assignS.Alloc()
	n.Op = op
	n.Left = left
	n.Right = right
	return n
}

func (a *Arena) NewInitStmt(name *Symbol, e Expr) *InitStmt {
	n := a.initS.Alloc()
	n.Name = name
	n.Expr = e
	return n
}

func (a *Arena) NewExprStmt(e Expr) *ExprStmt {
	n := a.exprS.Alloc()
	n.Expr = e
	return n
}

// Stmts freezes a transient []Stmt into arena storage.
func (a *Arena) Stmts(items []Stmt) []Stmt {
	return allocCopy(&a.stmtSlices, items)
}

// Symbols freezes a transient []*Symbol into arena storage.
func (a *Arena) Symbols(items []*Symbol) []*Symbol {
	return allocCopy(&a.symbolSlices, items)
}

// --- Decl constructors ---

func (a *Arena) NewEnumDecl(name *Symbol, items []EnumItem) *EnumDecl {
	n := a.enumD.Alloc()
	n.Name = name
	n.Items = allocCopy(&a.enumItemSlices, items)
	return n
}

func (a *Arena) NewStructDecl(name *Symbol, items []AggregateItem) *StructDecl {
	n := a.structD.Alloc()
	n.Name = name
	n.Items = allocCopy(&a.aggItemSlices, items)
	return n
}

func (a *Arena) NewUnionDecl(name *Symbol, items []AggregateItem) *UnionDecl {
	n := a.unionD.Alloc()
	n.Name = name
	n.Items = allocCopy(&a.aggItemSlices, items)
	return n
}

func (a *Arena) NewLetDecl(name *Symbol, t Typespec, e Expr) *LetDecl {
	n := a.letD.Alloc()
	n.Name = name
	n.Type = t
	n.Expr = e
	return n
}

func (a *Arena) NewConstDecl(name *Symbol, e Expr) *ConstDecl {
	n := a.constD.Alloc()
	n.Name = name
	n.Expr = e
	return n
}

func (a *Arena) NewTypedefDecl(name *Symbol, t Typespec) *TypedefDecl {
	n := a.typedefD.Alloc()
	n.Name = name
	n.Type = t
	return n
}

func (a *Arena) NewFnDecl(name *Symbol, params []FnParam, ret Typespec, body *Block) *FnDecl {
	n := a.fnD.Alloc()
	n.Name = name
	n.Params = allocCopy(&a.paramSlices, params)
	n.Ret = ret
	n.Body = body
	return n
}
