package plot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Zuo-Peng/mocap-results/internal/table"
	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

type Options struct {
	Dir       string
	Format    string // "png" or "svg"
	Width     int
	Height    int
	Azimuth   float64 // degrees
	Elevation float64 // degrees
}

// Renderer draws scatter plots into Options.Dir.
type Renderer struct {
	opts Options
	log  *zap.Logger
}

func NewRenderer(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 1200
	}
	return &Renderer{opts: opts, log: log}
}

// Scatter2D plots X against Y, one colour per distinct value of groupKey,
// and returns the path of the written figure.
func (r *Renderer) Scatter2D(t table.Table, groupKey, title string) (string, error) {
	return r.scatter2D(t, groupKey, title, Slug(title))
}

func (r *Renderer) scatter2D(t table.Table, groupKey, title, stem string) (string, error) {
	groups, skipped, err := groupPoints(t, groupKey)
	r.logSkipped(title, skipped)
	if err != nil {
		return "", err
	}

	xs, ys := newSpan(), newSpan()
	var series []chart.Series
	for _, g := range groups {
		xs.add(g.X...)
		ys.add(g.Y...)
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: g.X,
			YValues: g.Y,
			Style:   pointStyle(g.Mark),
		})
	}
	xs, ys = xs.padded(0.05), ys.padded(0.05)

	ch := chart.Chart{
		Title:      title,
		Width:      r.opts.Width,
		Height:     r.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "X", Range: &chart.ContinuousRange{Min: xs.min, Max: xs.max}},
		YAxis:      chart.YAxis{Name: "Y", Range: &chart.ContinuousRange{Min: ys.min, Max: ys.max}},
		Series:     series,
	}
	attachLegend(&ch, groupKey, groups)

	return r.write(&ch, title, stem, "2d", "")
}

// Scatter3D plots X, Y and Z through an orthographic projection set by the
// azimuth and elevation options.
func (r *Renderer) Scatter3D(t table.Table, groupKey, title string) (string, error) {
	return r.scatter3D(t, groupKey, title, Slug(title))
}

func (r *Renderer) scatter3D(t table.Table, groupKey, title, stem string) (string, error) {
	groups, skipped, err := groupPoints(t, groupKey)
	r.logSkipped(title, skipped)
	if err != nil {
		return "", err
	}

	cam := newCamera(r.opts.Azimuth, r.opts.Elevation)
	cube := newBox(groups)

	ps := newSpan()
	qs := newSpan()
	var series []chart.Series
	for _, guide := range cube.guides(cam) {
		ps.add(guide.XValues...)
		qs.add(guide.YValues...)
		series = append(series, guide)
	}
	for _, g := range groups {
		px := make([]float64, g.Len())
		py := make([]float64, g.Len())
		for i := range g.X {
			px[i], py[i] = cam.project(cube.normalize(g.X[i], g.Y[i], g.Z[i]))
		}
		ps.add(px...)
		qs.add(py...)
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: px,
			YValues: py,
			Style:   pointStyle(g.Mark),
		})
	}
	series = append(series, cube.labels(cam))
	ps, qs = ps.padded(0.08), qs.padded(0.08)

	hidden := chart.Style{Hidden: true}
	ch := chart.Chart{
		Title:      title,
		Width:      r.opts.Width,
		Height:     r.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: ps.min, Max: ps.max}},
		YAxis:      chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: qs.min, Max: qs.max}},
		Series:     series,
	}
	attachLegend(&ch, groupKey, groups)

	caption := fmt.Sprintf("%s  azim %.0f elev %.0f", cube.describe(), r.opts.Azimuth, r.opts.Elevation)
	return r.write(&ch, title, stem, "3d", caption)
}

// attachLegend adds a legend headed by the group key and listing only the
// groups. Axis guides and labels are left out.
func attachLegend(ch *chart.Chart, groupKey string, groups []Group) {
	if f, err := chart.GetDefaultFont(); err == nil {
		ch.Font = f
	}
	src := chart.Chart{Font: ch.Font}
	src.Series = append(src.Series, chart.ContinuousSeries{
		Name:    groupKey,
		XValues: []float64{0},
		YValues: []float64{0},
		Style:   chart.Style{StrokeWidth: 1, StrokeColor: legendHeadColor},
	})
	for _, g := range groups {
		src.Series = append(src.Series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: []float64{0},
			YValues: []float64{0},
			Style:   legendStyle(g.Mark),
		})
	}
	ch.Elements = []chart.Renderable{chart.Legend(&src)}
}

func (r *Renderer) write(ch *chart.Chart, title, stem, kind, caption string) (string, error) {
	provider := chart.PNG
	if r.opts.Format == "svg" {
		provider = chart.SVG
	}

	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return "", fmt.Errorf("render %s %s: %w", kind, title, err)
	}
	out := buf.Bytes()
	if caption != "" && r.opts.Format == "png" {
		stamped, err := stampCaption(out, caption)
		if err != nil {
			r.log.Warn("caption not drawn", zap.String("title", title), zap.Error(err))
		} else {
			out = stamped
		}
	}

	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create plot dir: %w", err)
	}
	path := filepath.Join(r.opts.Dir, fmt.Sprintf("%s_%s.%s", stem, kind, r.opts.Format))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	r.log.Debug("figure written", zap.String("path", path), zap.Int("bytes", len(out)))
	return path, nil
}

func (r *Renderer) logSkipped(title string, n int) {
	if n > 0 {
		r.log.Debug("rows with non-numeric coordinates skipped",
			zap.String("title", title), zap.Int("rows", n))
	}
}

// FileName is the figure file name for a title, e.g. "Left Knee" 3D as
// "left_knee_3d.png".
func FileName(title, kind, format string) string {
	return fmt.Sprintf("%s_%s.%s", Slug(title), kind, format)
}

// Slug lowercases title and joins its letter and digit runs with '_'.
// An empty result becomes "plot".
func Slug(title string) string {
	var b strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "_")
	if slug == "" {
		slug = "plot"
	}
	return slug
}
