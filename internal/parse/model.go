package parse

// Records holds the tab-split lines of a results file: Records[line][field].
type Records [][]string

// Column names carried through the bundle.
const (
	ColPath    = "Path"
	ColSection = "Section"
	ColSubject = "Subject"
	ColType    = "Type"
	ColPart    = "Part"
	ColSide    = "Side"
	ColX       = "X"
	ColY       = "Y"
	ColZ       = "Z"
)

// Fixed row positions in the results layout.
const (
	rowPath    = 0
	rowSection = 1
	rowLabel   = 4 // one leading label field, dropped
	rowCoords  = 5 // one leading label field, then packed X/Y/Z triples
	minRows    = rowCoords + 1
	// stride is the number of raw fields per sample in the path and
	// section rows (one per axis).
	stride = 3
)

type Column struct {
	Name   string
	Values []string
}

// Bundle is an ordered set of named, equal-length columns.
type Bundle struct {
	Columns []Column
}

// Index returns the position of the named column, or -1.
func (b *Bundle) Index(name string) int {
	for i, c := range b.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column.
func (b *Bundle) Column(name string) ([]string, bool) {
	i := b.Index(name)
	if i < 0 {
		return nil, false
	}
	return b.Columns[i].Values, true
}

// Names lists column names in order.
func (b *Bundle) Names() []string {
	names := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// Len is the shared column length. It is only meaningful after Validate.
func (b *Bundle) Len() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return len(b.Columns[0].Values)
}

// Validate checks that every column has the same length.
func (b *Bundle) Validate(step string) error {
	if len(b.Columns) == 0 {
		return nil
	}
	want := len(b.Columns[0].Values)
	for _, c := range b.Columns[1:] {
		if len(c.Values) != want {
			return decodeErrorf(step, "column %s has %d values, %s has %d",
				c.Name, len(c.Values), b.Columns[0].Name, want)
		}
	}
	return nil
}

// replace swaps the column at i for cols, keeping everything else in order.
func (b *Bundle) replace(i int, cols ...Column) *Bundle {
	out := make([]Column, 0, len(b.Columns)-1+len(cols))
	out = append(out, b.Columns[:i]...)
	out = append(out, cols...)
	out = append(out, b.Columns[i+1:]...)
	return &Bundle{Columns: out}
}
