package record

type ColumnType uint8

const (
	ColInt32 ColumnType = iota
	ColText             // fixed-width, zero padded
)

func (t ColumnType) String() string {
	switch t {
	case ColInt32:
		return "int"
	case ColText:
		return "varchar"
	default:
		return "unknown"
	}
}

// Column is one fixed-width field of the row slot.
type Column struct {
	Name   string
	Type   ColumnType
	Size   int // bytes reserved in the slot
	Offset int // byte offset inside the slot
}

type Schema struct {
	Cols []Column
}

func (s Schema) NumCols() int { return len(s.Cols) }

// RowSize is the slot size: the sum of every column size.
func (s Schema) RowSize() int {
	n := 0
	for _, c := range s.Cols {
		n += c.Size
	}
	return n
}

// Lookup finds a column by its exact name.
func (s Schema) Lookup(name string) (Column, bool) {
	for _, c := range s.Cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Cols))
	for i, c := range s.Cols {
		out[i] = c.Name
	}
	return out
}

const (
	ColumnID       = "id"
	ColumnUsername = "username"
	ColumnEmail    = "email"

	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// RowSize is 291 bytes: 4 + 32 + 255.
	RowSize = IDSize + UsernameSize + EmailSize
)

// UsersSchema is the single fixed schema of the store.
var UsersSchema = Schema{
	Cols: []Column{
		{Name: ColumnID, Type: ColInt32, Size: IDSize, Offset: IDOffset},
		{Name: ColumnUsername, Type: ColText, Size: UsernameSize, Offset: UsernameOffset},
		{Name: ColumnEmail, Type: ColText, Size: EmailSize, Offset: EmailOffset},
	},
}
