// Package table holds the cleaned, tidy form of a results file: one row per
// sample with its subject, test type, body part, side and coordinates.
package table

import (
	"fmt"
	"regexp"
)

// Header is the column order of a cleaned table, on disk and in memory.
var Header = []string{"Subject", "Type", "Part", "Side", "X", "Y", "Z"}

// Row is one sample. Coordinates stay text; consumers parse them.
type Row struct {
	Subject string
	Type    string
	Part    string
	Side    string
	X       string
	Y       string
	Z       string
}

// Field returns the value of the named column.
func (r Row) Field(name string) (string, bool) {
	switch name {
	case "Subject":
		return r.Subject, true
	case "Type":
		return r.Type, true
	case "Part":
		return r.Part, true
	case "Side":
		return r.Side, true
	case "X":
		return r.X, true
	case "Y":
		return r.Y, true
	case "Z":
		return r.Z, true
	}
	return "", false
}

func (r Row) record() []string {
	return []string{r.Subject, r.Type, r.Part, r.Side, r.X, r.Y, r.Z}
}

type Table struct {
	Rows []Row
}

func (t Table) Len() int { return len(t.Rows) }

// Distinct returns the distinct values of a column in first-appearance order.
func (t Table) Distinct(column string) ([]string, error) {
	if _, ok := (Row{}).Field(column); !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Rows {
		v, _ := r.Field(column)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

// Parts lists the body parts present, in first-appearance order.
func (t Table) Parts() []string {
	parts, _ := t.Distinct("Part")
	return parts
}

var attemptSuffix = regexp.MustCompile(`\d+$`)

// NormalizeType strips the trailing attempt number from every Type, so
// "R2" and "R13" both become "R". It returns a new table.
func NormalizeType(t Table) Table {
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		r.Type = attemptSuffix.ReplaceAllString(r.Type, "")
		rows[i] = r
	}
	return Table{Rows: rows}
}
