package plot

import (
	"errors"
	"fmt"

	"github.com/Zuo-Peng/mocap-results/internal/table"
	"go.uber.org/zap"
)

// Selection narrows the table before each per-part plot.
type Selection struct {
	Types    []string
	Subject  string // empty keeps every subject
	GroupKey string
}

// Figure is one written plot.
type Figure struct {
	Part string
	Kind string // "3d" or "2d"
	Path string
}

// RenderParts normalizes attempt numbers out of Type, then draws a 3D and
// a 2D scatter for every body part in t. Parts left empty by the selection
// are logged and skipped. Parts whose names slug to the same file stem get a
// numeric suffix, so every returned Figure has its own file.
func RenderParts(r *Renderer, t table.Table, sel Selection) ([]Figure, error) {
	if t.Len() == 0 {
		return nil, ErrNoData
	}
	t = table.NormalizeType(t)

	var figs []Figure
	used := make(map[string]bool)
	for _, part := range t.Parts() {
		subset := t.ByPart(part).ByTypes(sel.Types...)
		if sel.Subject != "" {
			subset = subset.BySubject(sel.Subject)
		}

		base := Slug(part)
		stem := freeStem(used, base)

		p3, err := r.scatter3D(subset, sel.GroupKey, part, stem)
		if errors.Is(err, ErrNoData) {
			r.log.Info("no data to plot", zap.String("part", part), zap.Strings("types", sel.Types))
			continue
		}
		if err != nil {
			return figs, err
		}
		used[stem] = true
		if stem != base {
			r.log.Warn("file name already used by another part, added suffix",
				zap.String("part", part), zap.String("stem", stem))
		}
		figs = append(figs, Figure{Part: part, Kind: "3d", Path: p3})

		p2, err := r.scatter2D(subset, sel.GroupKey, part, stem)
		if err != nil {
			return figs, err
		}
		figs = append(figs, Figure{Part: part, Kind: "2d", Path: p2})
	}

	if len(figs) == 0 {
		return nil, ErrNoData
	}
	return figs, nil
}

// freeStem returns base, or base_2, base_3, ... whichever is not yet used.
func freeStem(used map[string]bool, base string) string {
	stem := base
	for n := 2; used[stem]; n++ {
		stem = fmt.Sprintf("%s_%d", base, n)
	}
	return stem
}
