package parse

import (
	"strings"

	"github.com/Zuo-Peng/mocap-results/internal/table"
)

// SideAxial is the Side of a section that has no left/right laterality.
const SideAxial = "AXIAL"

const minPathSegments = 4

// DecodePath returns the subject and test type encoded in a sample path:
// the 4th- and 3rd-from-last segments. Both '\' and '/' separate segments.
// Empty segments count toward the position; an empty subject or type is a
// DecodeError.
func DecodePath(path string) (subject, typ string, err error) {
	parts := strings.Split(strings.ReplaceAll(path, "/", "\\"), "\\")
	if len(parts) < minPathSegments {
		return "", "", decodeErrorf("path", "%q has %d segments, need at least %d", path, len(parts), minPathSegments)
	}
	subject, typ = parts[len(parts)-4], parts[len(parts)-3]
	if subject == "" || typ == "" {
		return "", "", decodeErrorf("path", "%q has an empty subject or type segment", path)
	}
	return subject, typ, nil
}

// DecodeSection splits a section label such as "R_Knee" into its part and
// side. Labels without an R_ or L_ prefix are axial.
func DecodeSection(label string) (part, side string) {
	if strings.HasPrefix(label, "R_") || strings.HasPrefix(label, "L_") {
		return label[2:], label[:1]
	}
	return label, SideAxial
}

// DecodeSectionColumn replaces the Section column with Part and Side.
func DecodeSectionColumn(b *Bundle) (*Bundle, error) {
	i := b.Index(ColSection)
	if i < 0 {
		return nil, decodeErrorf("section", "bundle has no %s column (have %v)", ColSection, b.Names())
	}
	sections := b.Columns[i].Values
	parts := make([]string, len(sections))
	sides := make([]string, len(sections))
	for j, s := range sections {
		parts[j], sides[j] = DecodeSection(s)
	}
	out := b.replace(i, Column{Name: ColPart, Values: parts}, Column{Name: ColSide, Values: sides})
	if err := out.Validate("section"); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodePathColumn replaces the Path column with Subject and Type.
func DecodePathColumn(b *Bundle) (*Bundle, error) {
	i := b.Index(ColPath)
	if i < 0 {
		return nil, decodeErrorf("path", "bundle has no %s column (have %v)", ColPath, b.Names())
	}
	paths := b.Columns[i].Values
	subjects := make([]string, len(paths))
	types := make([]string, len(paths))
	for j, p := range paths {
		s, t, err := DecodePath(p)
		if err != nil {
			return nil, err
		}
		subjects[j], types[j] = s, t
	}
	out := b.replace(i, Column{Name: ColSubject, Values: subjects}, Column{Name: ColType, Values: types})
	if err := out.Validate("path"); err != nil {
		return nil, err
	}
	return out, nil
}

// ToTable assembles the cleaned table from a fully decoded bundle. Columns
// are looked up by name, so the order the decoders ran in does not matter.
func ToTable(b *Bundle) (table.Table, error) {
	cols := make([][]string, len(table.Header))
	for k, name := range table.Header {
		v, ok := b.Column(name)
		if !ok {
			return table.Table{}, decodeErrorf("table", "missing column %s (have %v)", name, b.Names())
		}
		if k > 0 && len(v) != len(cols[0]) {
			return table.Table{}, decodeErrorf("table", "column %s has %d values, %s has %d",
				name, len(v), table.Header[0], len(cols[0]))
		}
		cols[k] = v
	}

	rows := make([]table.Row, len(cols[0]))
	for i := range rows {
		rows[i] = table.Row{
			Subject: cols[0][i],
			Type:    cols[1][i],
			Part:    cols[2][i],
			Side:    cols[3][i],
			X:       cols[4][i],
			Y:       cols[5][i],
			Z:       cols[6][i],
		}
	}
	return table.Table{Rows: rows}, nil
}
