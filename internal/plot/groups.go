package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/mocap-results/internal/table"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")

// GroupKeys are the columns a plot can be coloured by.
var GroupKeys = []string{"Subject", "Type", "Part", "Side"}

// Group is the parsed points of one group value.
type Group struct {
	Name    string
	Mark    Mark
	X, Y, Z []float64
}

func (g Group) Len() int { return len(g.X) }

// groupPoints splits t by the value of key, in first-appearance order, and
// parses the coordinates. Rows whose coordinates are not numbers are
// skipped and counted.
func groupPoints(t table.Table, key string) (groups []Group, skipped int, err error) {
	if !isGroupKey(key) {
		return nil, 0, fmt.Errorf("group key %q must be one of %s", key, strings.Join(GroupKeys, ", "))
	}

	index := make(map[string]int)
	for _, r := range t.Rows {
		x, errX := parseCoord(r.X)
		y, errY := parseCoord(r.Y)
		z, errZ := parseCoord(r.Z)
		if errX != nil || errY != nil || errZ != nil {
			skipped++
			continue
		}

		name, _ := r.Field(key)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name, Mark: MarkFor(i)})
		}
		groups[i].X = append(groups[i].X, x)
		groups[i].Y = append(groups[i].Y, y)
		groups[i].Z = append(groups[i].Z, z)
	}

	if len(groups) == 0 {
		return nil, skipped, ErrNoData
	}
	return groups, skipped, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

func isGroupKey(key string) bool {
	for _, k := range GroupKeys {
		if k == key {
			return true
		}
	}
	return false
}

// span is the closed range of a set of values.
type span struct{ min, max float64 }

func newSpan() span { return span{min: math.MaxFloat64, max: -math.MaxFloat64} }

func (s *span) add(vs ...float64) {
	for _, v := range vs {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
}

// padded widens s by frac of its width on both sides. A zero-width span is
// widened by one unit each way so the chart range is never empty.
func (s span) padded(frac float64) span {
	w := s.max - s.min
	if w == 0 {
		return span{min: s.min - 1, max: s.max + 1}
	}
	return span{min: s.min - w*frac, max: s.max + w*frac}
}
