package clite

import "fmt"

// Parser is a recursive-descent, precedence-layered parser building an
// AST in a single Arena. It holds its lexer/arena/error-sink as
// explicit fields instead of process-wide globals, the same
// context-threading choice made in Lexer (see lexer.go) and invited by
// spec.md §9's Design Notes.
//
// Every production is a method; the precedence ladder is expressed as
// a chain of mutually delegating methods from parseExprTernary (the
// loosest-binding production) down through parseExprOperand (the
// tightest), each one handling exactly one precedence level and
// falling through to the next when its own operators don't match —
// the textbook recursive-descent encoding of a precedence table, and
// the shape GrammarParser's one-method-per-production layout
// (grammar_parser.go) is grounded on.
type Parser struct {
	lex   *Lexer
	arena *Arena
	errs  *ErrorSink
}

// NewParser returns a parser reading tokens from lex and allocating
// every node it builds from arena.
func NewParser(lex *Lexer, arena *Arena, errs *ErrorSink) *Parser {
	return &Parser{lex: lex, arena: arena, errs: errs}
}

// ParseProgram parses a sequence of top-level declarations until
// end-of-input.
func (p *Parser) ParseProgram() []Decl {
	var decls Seq[Decl]
	for !p.isToken(TokenEOF) {
		decls.Push(p.ParseDecl())
	}
	return decls.Slice()
}

// ParseDecl is the parse_decl entry point of spec.md §6.
func (p *Parser) ParseDecl() Decl {
	switch {
	case p.isKeyword("enum"):
		return p.parseEnumDecl()
	case p.isKeyword("struct"):
		return p.parseStructDecl()
	case p.isKeyword("union"):
		return p.parseUnionDecl()
	case p.isKeyword("let"):
		return p.parseLetDecl()
	case p.isKeyword("const"):
		return p.parseConstDecl()
	case p.isKeyword("typedef"):
		return p.parseTypedefDecl()
	case p.isKeyword("fn"):
		return p.parseFnDecl()
	default:
		p.fatalSyntaxError(fmt.Sprintf("expected a declaration, got %s", p.cur().Kind))
		return nil
	}
}

// ParseStmt is the parse_stmt entry point of spec.md §6.
func (p *Parser) ParseStmt() Stmt { return p.parseStmt() }

// ParseExpr is the parse_expr entry point of spec.md §6, and the top
// of the precedence ladder.
func (p *Parser) ParseExpr() Expr { return p.parseExprTernary() }

// --- token query/match helpers, grounded on base_parser.go's
// Peek/Backtrack/Expect* shape, rewritten against a Lexer's one-token
// lookahead instead of a rune cursor. ---

func (p *Parser) cur() Token { return p.lex.Cur() }

func (p *Parser) advance() Token { return p.lex.Next() }

func (p *Parser) isToken(k TokenKind) bool { return p.cur().Kind == k }

func (p *Parser) matchToken(k TokenKind) bool {
	if p.isToken(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectToken(k TokenKind) Token {
	t := p.cur()
	if t.Kind != k {
		p.fatalSyntaxError(fmt.Sprintf("expected %s, got %s", k, t.Kind))
		return t
	}
	p.advance()
	return t
}

func (p *Parser) isKeyword(name string) bool {
	t := p.cur()
	return t.Kind == TokenKeyword && t.Sym.Name() == name
}

func (p *Parser) matchKeyword(name string) bool {
	if p.isKeyword(name) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectKeyword(name string) {
	if !p.matchKeyword(name) {
		p.fatalSyntaxError(fmt.Sprintf("expected keyword %q", name))
	}
}

func (p *Parser) expectIdent() *Symbol {
	t := p.cur()
	if t.Kind != TokenIdent {
		p.fatalSyntaxError(fmt.Sprintf("expected identifier, got %s", t.Kind))
		return nil
	}
	p.advance()
	return t.Sym
}

func (p *Parser) matchAny(ops []TokenKind) (TokenKind, bool) {
	k := p.cur().Kind
	for _, op := range ops {
		if k == op {
			p.advance()
			return k, true
		}
	}
	return 0, false
}

func (p *Parser) fatalSyntaxError(message string) {
	p.errs.Fatal(message, p.cur().Lo)
}

// --- expression precedence ladder ---

var cmpOps = []TokenKind{'<', '>', TokenEq, TokenNe, TokenLe, TokenGe}
var addOps = []TokenKind{'+', '-', '|', '^'}
var mulOps = []TokenKind{'*', '/', '%', '&', TokenShl, TokenShr}
var unaryOps = []TokenKind{'+', '-', '*', '&'}

func (p *Parser) parseExprTernary() Expr {
	cond := p.parseExprOr()
	if !p.matchToken('?') {
		return cond
	}
	then := p.parseExprTernary()
	p.expectToken(':')
	els := p.parseExprTernary()
	return p.arena.NewTernaryExpr(cond, then, els)
}

func (p *Parser) parseExprOr() Expr {
	left := p.parseExprAnd()
	for p.isToken(TokenOr) {
		p.advance()
		left = p.arena.NewBinaryExpr(TokenOr, left, p.parseExprAnd())
	}
	return left
}

func (p *Parser) parseExprAnd() Expr {
	left := p.parseExprCmp()
	for p.isToken(TokenAnd) {
		p.advance()
		left = p.arena.NewBinaryExpr(TokenAnd, left, p.parseExprCmp())
	}
	return left
}

func (p *Parser) parseExprCmp() Expr {
	left := p.parseExprAdd()
	for {
		op, ok := p.matchAny(cmpOps)
		if !ok {
			return left
		}
		left = p.arena.NewBinaryExpr(op, left, p.parseExprAdd())
	}
}

func (p *Parser) parseExprAdd() Expr {
	left := p.parseExprMul()
	for {
		op, ok := p.matchAny(addOps)
		if !ok {
			return left
		}
		left = p.arena.NewBinaryExpr(op, left, p.parseExprMul())
	}
}

func (p *Parser) parseExprMul() Expr {
	left := p.parseExprUnary()
	for {
		op, ok := p.matchAny(mulOps)
		if !ok {
			return left
		}
		left = p.arena.NewBinaryExpr(op, left, p.parseExprUnary())
	}
}

// parseExprUnary consumes any run of prefix unary operators,
// right-associatively, per spec.md §4.5.
func (p *Parser) parseExprUnary() Expr {
	if op, ok := p.matchAny(unaryOps); ok {
		return p.arena.NewUnaryExpr(op, p.parseExprUnary())
	}
	return p.parseExprBase()
}

// parseExprBase applies call/index/field postfixes to the current
// operand in any order, per spec.md §4.5.
func (p *Parser) parseExprBase() Expr {
	e := p.parseExprOperand()
	for {
		switch {
		case p.matchToken('('):
			args := p.parseExprList(')')
			p.expectToken(')')
			e = p.arena.NewCallExpr(e, args)
		case p.matchToken('['):
			idx := p.ParseExpr()
			p.expectToken(']')
			e = p.arena.NewIndexExpr(e, idx)
		case p.matchToken('.'):
			e = p.arena.NewFieldExpr(e, p.expectIdent())
		default:
			return e
		}
	}
}

// parseExprList parses a comma-separated list of expressions up to
// (but not consuming) the closing token end.
func (p *Parser) parseExprList(end TokenKind) []Expr {
	var items Seq[Expr]
	if p.isToken(end) {
		return items.Slice()
	}
	items.Push(p.ParseExpr())
	for p.matchToken(',') {
		items.Push(p.ParseExpr())
	}
	return items.Slice()
}

// parseExprOperand implements the operand row of spec.md §4.5's
// precedence table, including the compound-literal and cast-vs-
// grouping dispatch. The `( : type )` prefix is unambiguous the
// moment `:` is seen right after `(`, which is this module's
// resolution of the Open Question in spec.md §9 ("compound-expression
// cast syntax"): `( : type )` followed by `{` builds a typed compound
// literal; followed by anything else, it builds a cast applied to the
// next unary-level operand. Without the colon, `(` only ever starts a
// parenthesised expression — there is no bare `(type) expr` C-style
// cast in this grammar, which sidesteps the classic typedef-name
// ambiguity a name-resolution-free front end cannot otherwise settle.
func (p *Parser) parseExprOperand() Expr {
	t := p.cur()
	switch t.Kind {
	case TokenInt:
		p.advance()
		return p.arena.NewIntExpr(t.IntVal)
	case TokenFloat:
		p.advance()
		return p.arena.NewFloatExpr(t.FloatVal)
	case TokenStr:
		p.advance()
		return p.arena.NewStrExpr(t.Str)
	case TokenIdent:
		p.advance()
		if p.isToken('{') {
			return p.parseCompoundBody(p.arena.NewIdentTypespec(t.Sym))
		}
		return p.arena.NewIdentExpr(t.Sym)
	case TokenKind('{'):
		return p.parseCompoundBody(nil)
	case TokenKind('('):
		p.advance()
		if p.matchToken(':') {
			typ := p.parseType()
			p.expectToken(')')
			if p.isToken('{') {
				return p.parseCompoundBody(typ)
			}
			return p.arena.NewCastExpr(typ, p.parseExprUnary())
		}
		e := p.ParseExpr()
		p.expectToken(')')
		return e
	default:
		p.fatalSyntaxError(fmt.Sprintf("expected an expression, got %s", t.Kind))
		return nil
	}
}

func (p *Parser) parseCompoundBody(t Typespec) Expr {
	p.expectToken('{')
	args := p.parseExprList('}')
	p.expectToken('}')
	return p.arena.NewCompoundExpr(t, args)
}

// --- types ---

// parseType parses a base type then a postfix chain of `[size?]` and
// `*`, applied outward (innermost first), per spec.md §4.5.
func (p *Parser) parseType() Typespec {
	base := p.parseBaseType()
	for {
		switch {
		case p.matchToken('*'):
			base = p.arena.NewPtrTypespec(base)
		case p.matchToken('['):
			var size Expr
			if !p.isToken(']') {
				size = p.ParseExpr()
			}
			p.expectToken(']')
			base = p.arena.NewArrayTypespec(base, size)
		default:
			return base
		}
	}
}

func (p *Parser) parseBaseType() Typespec {
	switch {
	case p.isKeyword("fn"):
		return p.parseTypeFn()
	case p.isToken('('):
		p.advance()
		t := p.parseType()
		p.expectToken(')')
		return t
	default:
		return p.arena.NewIdentTypespec(p.expectIdent())
	}
}

// parseTypeFn accepts `( type (, type)* )` and an optional `: ret`,
// per spec.md §4.5.
func (p *Parser) parseTypeFn() Typespec {
	p.advance() // 'fn'
	p.expectToken('(')
	var argTypes Seq[Typespec]
	if !p.isToken(')') {
		argTypes.Push(p.parseType())
		for p.matchToken(',') {
			argTypes.Push(p.parseType())
		}
	}
	p.expectToken(')')
	var ret Typespec
	if p.matchToken(':') {
		ret = p.parseType()
	}
	return p.arena.NewFnTypespec(argTypes.Slice(), ret)
}

// --- statements ---

func (p *Parser) parseBlock() *Block {
	p.expectToken('{')
	var stmts Seq[Stmt]
	for !p.isToken('}') && !p.isToken(TokenEOF) {
		stmts.Push(p.parseStmt())
	}
	p.expectToken('}')
	return p.arena.NewBlock(stmts.Slice())
}

func (p *Parser) parseStmt() Stmt {
	switch {
	case p.matchKeyword("return"):
		e := p.ParseExpr()
		p.expectToken(';')
		return p.arena.NewReturnStmt(e)
	case p.matchKeyword("break"):
		p.expectToken(';')
		return p.arena.NewBreakStmt()
	case p.matchKeyword("continue"):
		p.expectToken(';')
		return p.arena.NewContinueStmt()
	case p.isToken('{'):
		return p.arena.NewBlockStmt(p.parseBlock())
	case p.isKeyword("if"):
		return p.parseStmtIf()
	case p.isKeyword("while"):
		return p.parseStmtWhile()
	case p.isKeyword("do"):
		return p.parseStmtDoWhile()
	case p.isKeyword("for"):
		return p.parseStmtFor()
	case p.isKeyword("switch"):
		return p.parseStmtSwitch()
	default:
		s := p.parseSimpleStmt()
		p.expectToken(';')
		return s
	}
}

// parseSimpleStmt disambiguates on the token following an expression,
// per spec.md §4.5: `:=` requires a bare-identifier left-hand side,
// any compound-assignment operator builds assign(op, lhs, rhs), `++`
// or `--` builds assign(op, lhs, nil), anything else is an
// expression-statement.
func (p *Parser) parseSimpleStmt() Stmt {
	e := p.ParseExpr()
	switch {
	case p.matchToken(TokenDefine):
		ident, ok := e.(*IdentExpr)
		if !ok {
			p.fatalSyntaxError("left-hand side of := must be a bare identifier")
			return p.arena.NewExprStmt(e)
		}
		return p.arena.NewInitStmt(ident.Name, p.ParseExpr())
	case p.cur().Kind.IsAssignOp():
		op := p.cur().Kind
		p.advance()
		return p.arena.NewAssignStmt(op, e, p.ParseExpr())
	case p.isToken(TokenInc), p.isToken(TokenDec):
		op := p.cur().Kind
		p.advance()
		return p.arena.NewAssignStmt(op, e, nil)
	default:
		return p.arena.NewExprStmt(e)
	}
}

func (p *Parser) parseStmtIf() Stmt {
	p.advance() // 'if'
	p.expectToken('(')
	cond := p.ParseExpr()
	p.expectToken(')')
	then := p.parseBlock()

	var elseIfs Seq[ElseIf]
	var elseBlock *Block
	for p.matchKeyword("else") {
		if p.matchKeyword("if") {
			p.expectToken('(')
			c := p.ParseExpr()
			p.expectToken(')')
			elseIfs.Push(ElseIf{Cond: c, Block: p.parseBlock()})
			continue
		}
		elseBlock = p.parseBlock()
		break
	}
	return p.arena.NewIfStmt(cond, then, elseIfs.Slice(), elseBlock)
}

func (p *Parser) parseStmtWhile() Stmt {
	p.advance() // 'while'
	p.expectToken('(')
	cond := p.ParseExpr()
	p.expectToken(')')
	return p.arena.NewWhileStmt(cond, p.parseBlock())
}

// parseStmtDoWhile requires a trailing `while (cond);`, per spec.md §4.5.
func (p *Parser) parseStmtDoWhile() Stmt {
	p.advance() // 'do'
	body := p.parseBlock()
	p.expectKeyword("while")
	p.expectToken('(')
	cond := p.ParseExpr()
	p.expectToken(')')
	p.expectToken(';')
	return p.arena.NewDoWhileStmt(cond, body)
}

func (p *Parser) parseStmtFor() Stmt {
	p.advance() // 'for'
	p.expectToken('(')
	var init Stmt
	if !p.isToken(';') {
		init = p.parseSimpleStmt()
	}
	p.expectToken(';')
	var cond Expr
	if !p.isToken(';') {
		cond = p.ParseExpr()
	}
	p.expectToken(';')
	var next Stmt
	if !p.isToken(')') {
		next = p.parseSimpleStmt()
	}
	p.expectToken(')')
	return p.arena.NewForStmt(init, cond, next, p.parseBlock())
}

// parseStmtSwitch groups consecutive case/default labels into a
// single SwitchCase, per spec.md §4.5.
func (p *Parser) parseStmtSwitch() Stmt {
	p.advance() // 'switch'
	p.expectToken('(')
	e := p.ParseExpr()
	p.expectToken(')')
	p.expectToken('{')

	var cases Seq[*SwitchCase]
	for p.isKeyword("case") || p.isKeyword("default") {
		var labels Seq[Expr]
		isDefault := false
		for p.isKeyword("case") || p.isKeyword("default") {
			if p.matchKeyword("case") {
				labels.Push(p.ParseExpr())
				p.expectToken(':')
				continue
			}
			p.advance() // 'default'
			isDefault = true
			p.expectToken(':')
		}
		cases.Push(p.arena.NewSwitchCase(labels.Slice(), isDefault, p.parseCaseBody()))
	}
	p.expectToken('}')
	return p.arena.NewSwitchStmt(e, cases.Slice())
}

// parseCaseBody consumes statements until the next label group or the
// closing brace; case bodies are not individually brace-delimited.
func (p *Parser) parseCaseBody() *Block {
	var stmts Seq[Stmt]
	for !p.isKeyword("case") && !p.isKeyword("default") && !p.isToken('}') && !p.isToken(TokenEOF) {
		stmts.Push(p.parseStmt())
	}
	return p.arena.NewBlock(stmts.Slice())
}

// --- declarations ---

func (p *Parser) parseEnumDecl() Decl {
	p.advance() // 'enum'
	name := p.expectIdent()
	p.expectToken('{')
	var items Seq[EnumItem]
	for !p.isToken('}') {
		itemName := p.expectIdent()
		var e Expr
		if p.matchToken('=') {
			e = p.ParseExpr()
		}
		items.Push(EnumItem{Name: itemName, Expr: e})
		if !p.matchToken(',') {
			break
		}
	}
	p.expectToken('}')
	return p.arena.NewEnumDecl(name, items.Slice())
}

// parseAggregateItems parses `name (, name)* : type ;` items, per
// spec.md §4.5.
func (p *Parser) parseAggregateItems() []AggregateItem {
	var items Seq[AggregateItem]
	for !p.isToken('}') {
		var names Seq[*Symbol]
		names.Push(p.expectIdent())
		for p.matchToken(',') {
			names.Push(p.expectIdent())
		}
		p.expectToken(':')
		t := p.parseType()
		p.expectToken(';')
		items.Push(AggregateItem{Names: p.arena.Symbols(names.Slice()), Type: t})
	}
	return items.Slice()
}

func (p *Parser) parseStructDecl() Decl {
	p.advance() // 'struct'
	name := p.expectIdent()
	p.expectToken('{')
	items := p.parseAggregateItems()
	p.expectToken('}')
	return p.arena.NewStructDecl(name, items)
}

func (p *Parser) parseUnionDecl() Decl {
	p.advance() // 'union'
	name := p.expectIdent()
	p.expectToken('{')
	items := p.parseAggregateItems()
	p.expectToken('}')
	return p.arena.NewUnionDecl(name, items)
}

// parseLetDecl accepts `= expr`, `: type`, or `: type = expr`, per
// spec.md §4.5.
func (p *Parser) parseLetDecl() Decl {
	p.advance() // 'let'
	name := p.expectIdent()
	var t Typespec
	var e Expr
	if p.matchToken(':') {
		t = p.parseType()
		if p.matchToken('=') {
			e = p.ParseExpr()
		}
	} else {
		p.expectToken('=')
		e = p.ParseExpr()
	}
	p.expectToken(';')
	return p.arena.NewLetDecl(name, t, e)
}

func (p *Parser) parseConstDecl() Decl {
	p.advance() // 'const'
	name := p.expectIdent()
	p.expectToken('=')
	e := p.ParseExpr()
	p.expectToken(';')
	return p.arena.NewConstDecl(name, e)
}

func (p *Parser) parseTypedefDecl() Decl {
	p.advance() // 'typedef'
	name := p.expectIdent()
	p.expectToken(':')
	t := p.parseType()
	p.expectToken(';')
	return p.arena.NewTypedefDecl(name, t)
}

func (p *Parser) parseFnParam() FnParam {
	name := p.expectIdent()
	p.expectToken(':')
	return FnParam{Name: name, Type: p.parseType()}
}

func (p *Parser) parseFnParams() []FnParam {
	p.expectToken('(')
	var params Seq[FnParam]
	if !p.isToken(')') {
		params.Push(p.parseFnParam())
		for p.matchToken(',') {
			params.Push(p.parseFnParam())
		}
	}
	p.expectToken(')')
	return params.Slice()
}

func (p *Parser) parseFnDecl() Decl {
	p.advance() // 'fn'
	name := p.expectIdent()
	params := p.parseFnParams()
	var ret Typespec
	if p.matchToken(':') {
		ret = p.parseType()
	}
	return p.arena.NewFnDecl(name, params, ret, p.parseBlock())
}
