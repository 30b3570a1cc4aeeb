package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novalite/internal/record"
	"github.com/tuannm99/novalite/internal/sql/parser"
)

func mustPlan(t *testing.T, sql string) Plan {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	p, err := BuildPlan(stmt, record.UsersSchema)
	require.NoError(t, err)
	return p
}

func TestBuildPlan_InsertPositional(t *testing.T) {
	p := mustPlan(t, "insert 1 user1 person1@example.com")

	ip, ok := p.(*InsertPlan)
	require.True(t, ok, "want *InsertPlan, got %T", p)
	require.Equal(t, record.Row{ID: 1, Username: "user1", Email: "person1@example.com"}, ip.Row)
}

func TestBuildPlan_InsertKeepsInvalidRowForExecution(t *testing.T) {
	p := mustPlan(t, "insert into users values (-4, 'x', 'y')")
	require.Equal(t, int32(-4), p.(*InsertPlan).Row.ID)
	require.Equal(t, "users", p.(*InsertPlan).TableName)
}

func TestBuildPlan_SelectAllColumns(t *testing.T) {
	p := mustPlan(t, "select")

	sp, ok := p.(*SeqScanPlan)
	require.True(t, ok, "want *SeqScanPlan, got %T", p)
	require.Len(t, sp.Columns, 3)
	require.Equal(t, "id", sp.Columns[0].Name)
	require.Equal(t, "email", sp.Columns[2].Name)
	require.Nil(t, sp.Filter)
}

func TestBuildPlan_SelectProjectionOrder(t *testing.T) {
	sp := mustPlan(t, "select email, id from users").(*SeqScanPlan)
	require.Equal(t, "email", sp.Columns[0].Name)
	require.Equal(t, "id", sp.Columns[1].Name)
}

func TestBuildPlan_UnknownColumn(t *testing.T) {
	for _, sql := range []string{
		"select age from users",
		"select * from users where age = 3",
	} {
		stmt, err := parser.Parse(sql)
		require.NoError(t, err)

		_, err = BuildPlan(stmt, record.UsersSchema)
		require.ErrorIs(t, err, parser.ErrSyntax, sql)
	}

	stmt, err := parser.Parse("select age from users")
	require.NoError(t, err)
	_, err = BuildPlan(stmt, record.UsersSchema)
	require.ErrorContains(t, err, "have id, username, email")
}

func TestBuildPlan_IDFilterNeedsInteger(t *testing.T) {
	stmt, err := parser.Parse("select * from users where id = abc")
	require.NoError(t, err)
	_, err = BuildPlan(stmt, record.UsersSchema)
	require.ErrorIs(t, err, parser.ErrSyntax)

	// a quoted number is still a number
	sp := mustPlan(t, "select * from users where id = '12'").(*SeqScanPlan)
	require.Equal(t, int64(12), sp.Filter.Int)
}

func TestFilter_Match(t *testing.T) {
	row := record.Row{ID: 10, Username: "bob", Email: "bob@x.io"}

	cases := []struct {
		sql  string
		want bool
	}{
		{"select * from users where id = 10", true},
		{"select * from users where id = 9", false},
		{"select * from users where id != 9", true},
		{"select * from users where id < 11", true},
		{"select * from users where id > 10", false},
		{"select * from users where id >= 10", true},
		{"select * from users where id <= 9", false},
		// numeric, not lexical: 10 > 9
		{"select * from users where id > 9", true},
		{"select * from users where username = 'bob'", true},
		{"select * from users where username = bob", true},
		{"select * from users where username = 'Bob'", false},
		{"select * from users where email <> 'bob@x.io'", false},
		{"select * from users where username < 'carl'", true},
	}
	for _, c := range cases {
		sp := mustPlan(t, c.sql).(*SeqScanPlan)
		require.Equal(t, c.want, sp.Filter.Match(row), c.sql)
	}
}

func TestFilter_TextKeepsRawDigits(t *testing.T) {
	sp := mustPlan(t, "select * from users where username = 007").(*SeqScanPlan)
	require.Equal(t, "007", sp.Filter.Text)
	require.True(t, sp.Filter.Match(record.Row{ID: 1, Username: "007"}))
}
