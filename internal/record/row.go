package record

import "fmt"

// Row is one (id, username, email) record.
type Row struct {
	ID       int32
	Username string
	Email    string
}

// Value returns the field named col: int32 for id, string for text fields.
func (r Row) Value(col string) (any, bool) {
	switch col {
	case ColumnID:
		return r.ID, true
	case ColumnUsername:
		return r.Username, true
	case ColumnEmail:
		return r.Email, true
	default:
		return nil, false
	}
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
