package parser

// Statement is the root interface for all parsed commands.
type Statement interface {
	stmtNode()
}

// ----- INSERT -----
// Values holds id, username, email in that order. TableName is empty for the
// positional form ("insert 1 bob bob@x.io").
type InsertStmt struct {
	TableName string
	Values    []*LiteralExpr
}

func (*InsertStmt) stmtNode() {}

// ----- SELECT -----
// Columns == nil means every column. TableName is empty for a bare "select".
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     *WhereExpr
}

func (*SelectStmt) stmtNode() {}

// ----- Expressions -----
type Expr interface {
	exprNode()
}

// LiteralExpr is an int64 or a string. Raw is the source text without
// quotes; Quoted records whether it was a single-quoted string.
type LiteralExpr struct {
	Value  any
	Raw    string
	Quoted bool
}

func (*LiteralExpr) exprNode() {}

type Op uint8

const (
	OpEq Op = iota + 1
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// WhereExpr is "<column> <op> <literal>".
type WhereExpr struct {
	Column string
	Op     Op
	Value  *LiteralExpr
}

func (*WhereExpr) exprNode() {}
