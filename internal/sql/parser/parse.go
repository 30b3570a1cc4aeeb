package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrSyntax                = errors.New("parser: syntax error")
	ErrUnrecognizedStatement = errors.New("parser: unrecognized statement")
)

var (
	// insert into <table> values (<v1>, <v2>, <v3>)
	reInsertInto = regexp.MustCompile(`(?is)^insert\s+into\s+(\S+)\s+values\s*\((.*)\)$`)
	// select [<cols>|*] from <table> [where <cond>]
	reSelectFrom = regexp.MustCompile(`(?is)^select\s+(.*?)\s*\bfrom\s+(\S+)(?:\s+where\s+(.+))?$`)
	// <col> <op> <value>
	reWhere = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(<=|>=|!=|<>|=|<|>)\s*(.+)$`)
	reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Parse parses one command line into a Statement. A trailing ';' is optional.
//
// Two grammars share the same statements:
//
//	insert <id> <username> <email>
//	insert into <table> values (<id>, <username>, <email>)
//	select
//	select [<col>[, <col>...] | *] from <table> [where <col> <op> <value>]
func Parse(line string) (Statement, error) {
	s := strings.TrimSpace(line)
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedStatement, line)
	}

	switch strings.ToLower(fields[0]) {
	case "insert":
		if len(fields) > 1 && strings.EqualFold(fields[1], "into") {
			return parseInsertInto(s)
		}
		return parseInsertPositional(fields[1:])
	case "select":
		if len(fields) == 1 {
			return &SelectStmt{}, nil
		}
		return parseSelectFrom(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedStatement, line)
	}
}

func parseInsertPositional(args []string) (Statement, error) {
	// "insert 1 user1 person1@example.com"
	if len(args) != 3 {
		return nil, fmt.Errorf("%w: insert wants <id> <username> <email>, got %d args", ErrSyntax, len(args))
	}

	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	return &InsertStmt{
		Values: []*LiteralExpr{
			id,
			{Value: args[1], Raw: args[1]},
			{Value: args[2], Raw: args[2]},
		},
	}, nil
}

func parseInsertInto(s string) (Statement, error) {
	// "insert into users values (1, 'user1', 'person1@example.com')"
	m := reInsertInto.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: invalid INSERT INTO syntax", ErrSyntax)
	}

	raw := splitComma(m[2])
	if len(raw) != 3 {
		return nil, fmt.Errorf("%w: insert wants 3 values, got %d", ErrSyntax, len(raw))
	}

	id, err := parseID(strings.TrimSpace(raw[0]))
	if err != nil {
		return nil, err
	}

	vals := []*LiteralExpr{id}
	for _, rv := range raw[1:] {
		lit, err := parseText(strings.TrimSpace(rv))
		if err != nil {
			return nil, err
		}
		vals = append(vals, lit)
	}

	return &InsertStmt{TableName: m[1], Values: vals}, nil
}

func parseSelectFrom(s string) (Statement, error) {
	m := reSelectFrom.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: invalid SELECT syntax", ErrSyntax)
	}

	cols, err := parseColumns(m[1])
	if err != nil {
		return nil, err
	}

	stmt := &SelectStmt{TableName: m[2], Columns: cols}
	if w := strings.TrimSpace(m[3]); w != "" {
		we, err := parseWhere(w)
		if err != nil {
			return nil, err
		}
		stmt.Where = we
	}
	return stmt, nil
}

// parseColumns handles the projection list; "" and "*" mean all columns.
func parseColumns(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !reIdent.MatchString(p) {
			return nil, fmt.Errorf("%w: invalid column %q", ErrSyntax, p)
		}
		cols = append(cols, strings.ToLower(p))
	}
	return cols, nil
}

func parseWhere(s string) (*WhereExpr, error) {
	m := reWhere.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: only WHERE <col> <op> <value> supported", ErrSyntax)
	}

	lit, err := parseLiteral(strings.TrimSpace(m[3]))
	if err != nil {
		return nil, err
	}

	return &WhereExpr{
		Column: strings.ToLower(m[1]),
		Op:     parseOp(m[2]),
		Value:  lit,
	}, nil
}

func parseOp(s string) Op {
	switch s {
	case "=":
		return OpEq
	case "!=", "<>":
		return OpNe
	case "<":
		return OpLt
	case ">":
		return OpGt
	case "<=":
		return OpLe
	default:
		return OpGe
	}
}

// parseID accepts a bare base-10 integer that fits in 32 bits. Range checks
// beyond that (positivity) belong to row validation.
func parseID(s string) (*LiteralExpr, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrSyntax, s)
	}
	return &LiteralExpr{Value: n, Raw: s}, nil
}

// parseText accepts 'quoted' or bare text.
func parseText(s string) (*LiteralExpr, error) {
	if v, ok := unquote(s); ok {
		return &LiteralExpr{Value: v, Raw: v, Quoted: true}, nil
	}
	if s == "" {
		return nil, fmt.Errorf("%w: missing value", ErrSyntax)
	}
	if strings.HasPrefix(s, "'") {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrSyntax, s)
	}
	return &LiteralExpr{Value: s, Raw: s}, nil
}

// parseLiteral is parseText for predicates: a bare value must be one token,
// and bare integers become int64.
func parseLiteral(s string) (*LiteralExpr, error) {
	if v, ok := unquote(s); ok {
		return &LiteralExpr{Value: v, Raw: v, Quoted: true}, nil
	}
	if s == "" || strings.ContainsAny(s, " \t'") {
		return nil, fmt.Errorf("%w: unsupported literal %q", ErrSyntax, s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &LiteralExpr{Value: i, Raw: s}, nil
	}
	return &LiteralExpr{Value: s, Raw: s}, nil
}

// unquote strips the outer single quotes; a doubled quote inside stands for one.
func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.Contains(strings.ReplaceAll(inner, "''", ""), "'") {
		return "", false
	}
	return strings.ReplaceAll(inner, "''", "'"), true
}

// splitComma splits a comma-separated list, ignoring commas inside quotes (simple version).
func splitComma(s string) []string {
	parts := []string{}
	cur := strings.Builder{}
	inQuote := false
	for _, r := range s {
		switch r {
		case '\'':
			inQuote = !inQuote
			cur.WriteRune(r)
		case ',':
			if inQuote {
				cur.WriteRune(r)
			} else {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}
