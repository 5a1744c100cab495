// Package report summarizes a cleaned table for the terminal.
package report

import (
	"github.com/Zuo-Peng/mocap-results/internal/table"
)

// Line counts the samples of one body part and side.
type Line struct {
	Part     string
	Side     string
	Samples  int
	Types    []string // distinct, attempt numbers stripped, first-appearance order
	Subjects int
}

type Summary struct {
	Samples  int
	Subjects []string
	Lines    []Line
}

// Summarize groups t by part and side, in first-appearance order.
func Summarize(t table.Table) Summary {
	norm := table.NormalizeType(t)
	subjects, _ := norm.Distinct("Subject")
	s := Summary{Samples: norm.Len(), Subjects: subjects}

	type key struct{ part, side string }
	index := make(map[key]int)
	seenType := make(map[key]map[string]bool)
	seenSubj := make(map[key]map[string]bool)

	for _, r := range norm.Rows {
		k := key{r.Part, r.Side}
		i, ok := index[k]
		if !ok {
			i = len(s.Lines)
			index[k] = i
			seenType[k] = make(map[string]bool)
			seenSubj[k] = make(map[string]bool)
			s.Lines = append(s.Lines, Line{Part: r.Part, Side: r.Side})
		}
		l := &s.Lines[i]
		l.Samples++
		if !seenType[k][r.Type] {
			seenType[k][r.Type] = true
			l.Types = append(l.Types, r.Type)
		}
		if !seenSubj[k][r.Subject] {
			seenSubj[k][r.Subject] = true
			l.Subjects++
		}
	}
	return s
}
