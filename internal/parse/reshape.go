package parse

// ReshapeColumns pulls the path, section and coordinate columns out of the
// positional results layout.
//
// An empty record set (no source file) produces an empty bundle. Anything
// else must match the layout exactly; every mismatch is a DecodeError.
func ReshapeColumns(raw Records) (*Bundle, error) {
	if len(raw) == 0 {
		return emptyBundle(), nil
	}
	if len(raw) < minRows {
		return nil, decodeErrorf("reshape", "need at least %d rows, got %d", minRows, len(raw))
	}

	rows := trimLabelField(raw, rowLabel, rowCoords)

	paths := everyNth(rows[rowPath], len(rows[rowPath]))
	sections, err := strideColumn(rows[rowSection], len(rows[rowPath]))
	if err != nil {
		return nil, err
	}

	x, y, z, err := UnpackTriples(rows[rowCoords])
	if err != nil {
		return nil, err
	}
	if len(x) != len(paths) {
		return nil, decodeErrorf("reshape", "%d coordinate triples for %d samples", len(x), len(paths))
	}

	b := &Bundle{Columns: []Column{
		{Name: ColPath, Values: paths},
		{Name: ColSection, Values: sections},
		{Name: ColX, Values: x},
		{Name: ColY, Values: y},
		{Name: ColZ, Values: z},
	}}
	if err := b.Validate("reshape"); err != nil {
		return nil, err
	}
	return b, nil
}

func emptyBundle() *Bundle {
	return &Bundle{Columns: []Column{
		{Name: ColPath, Values: []string{}},
		{Name: ColSection, Values: []string{}},
		{Name: ColX, Values: []string{}},
		{Name: ColY, Values: []string{}},
		{Name: ColZ, Values: []string{}},
	}}
}

// trimLabelField returns a copy of raw with the first field of each listed
// row removed. The input is left untouched.
func trimLabelField(raw Records, rows ...int) Records {
	out := make(Records, len(raw))
	copy(out, raw)
	for _, i := range rows {
		if len(out[i]) > 0 {
			out[i] = out[i][1:]
		}
	}
	return out
}

// strideColumn takes every stride-th field of row, covering the same
// indices as a row of width n.
func strideColumn(row []string, n int) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	last := ((n - 1) / stride) * stride
	if last >= len(row) {
		return nil, decodeErrorf("reshape", "section row has %d fields, need at least %d", len(row), last+1)
	}
	return everyNth(row, n), nil
}

func everyNth(row []string, n int) []string {
	out := make([]string, 0, (n+stride-1)/stride)
	for j := 0; j < n; j += stride {
		out = append(out, row[j])
	}
	return out
}

// UnpackTriples splits a flat x,y,z,x,y,z,... sequence into three columns.
func UnpackTriples(flat []string) (x, y, z []string, err error) {
	if len(flat)%3 != 0 {
		return nil, nil, nil, decodeErrorf("coordinates", "%d values is not a multiple of 3", len(flat))
	}
	n := len(flat) / 3
	x = make([]string, 0, n)
	y = make([]string, 0, n)
	z = make([]string, 0, n)
	for i := 0; i < len(flat); i += 3 {
		x = append(x, flat[i])
		y = append(y, flat[i+1])
		z = append(z, flat[i+2])
	}
	return x, y, z, nil
}
