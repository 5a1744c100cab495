package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/mocap-results/internal/parse"
	"github.com/mattn/go-runewidth"
)

var columns = []string{"PART", "SIDE", "SAMPLES", "SUBJECTS", "TYPES"}

// WriteTSV writes one tab-separated line per part/side, with a header, for
// piping into other tools.
func WriteTSV(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, strings.Join(columns, "\t")); err != nil {
		return err
	}
	for _, l := range s.Lines {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			l.Part, l.Side, l.Samples, l.Subjects, strings.Join(l.Types, ",")); err != nil {
			return err
		}
	}
	return nil
}

// Styled lays the summary out as an aligned, coloured panel. Cells wider
// than maxCell columns are truncated.
func Styled(s Summary, maxCell int) string {
	if maxCell <= 0 {
		maxCell = 24
	}

	cells := [][]string{append([]string(nil), columns...)}
	for _, l := range s.Lines {
		cells = append(cells, []string{
			l.Part, l.Side, strconv.Itoa(l.Samples), strconv.Itoa(l.Subjects), strings.Join(l.Types, ","),
		})
	}

	widths := make([]int, len(columns))
	for _, row := range cells {
		for j, c := range row {
			c = runewidth.Truncate(c, maxCell, "…")
			row[j] = c
			if w := runewidth.StringWidth(c); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%d samples, %d subjects", s.Samples, len(s.Subjects))))
	b.WriteString("\n\n")
	for i, row := range cells {
		parts := make([]string, len(row))
		for j, c := range row {
			parts[j] = runewidth.FillRight(c, widths[j])
		}
		switch {
		case i == 0:
			for j := range parts {
				parts[j] = styleHeader.Render(parts[j])
			}
		case row[1] == parse.SideAxial:
			parts[1] = styleAxial.Render(parts[1])
		default:
			parts[1] = styleLateral.Render(parts[1])
		}
		b.WriteString(strings.Join(parts, "  "))
		if i < len(cells)-1 {
			b.WriteString("\n")
		}
	}
	return stylePanel.Render(b.String())
}
