package plot

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zuo-Peng/mocap-results/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func fixture() table.Table {
	return table.Table{Rows: []table.Row{
		{Subject: "S1", Type: "R1", Part: "Knee", Side: "R", X: "0.1", Y: "0.2", Z: "0.3"},
		{Subject: "S1", Type: "L1", Part: "Knee", Side: "L", X: "0.4", Y: "0.1", Z: "0.9"},
		{Subject: "S2", Type: "R2", Part: "Knee", Side: "R", X: "0.2", Y: "0.6", Z: "0.5"},
		{Subject: "S2", Type: "W1", Part: "Spine", Side: "AXIAL", X: "1", Y: "2", Z: "3"},
		{Subject: "S2", Type: "R3", Part: "Hip", Side: "R", X: "n/a", Y: "2", Z: "3"},
		{Subject: "S3", Type: "L2", Part: "Ankle", Side: "L", X: "5", Y: "5", Z: "5"},
	}}
}

func newTestRenderer(t *testing.T) *Renderer {
	return NewRenderer(Options{Dir: t.TempDir(), Width: 400, Height: 400, Azimuth: -60, Elevation: 30}, zaptest.NewLogger(t))
}

func TestMarkForCyclesWithWiderDots(t *testing.T) {
	n := len(Palette)
	first := MarkFor(0)
	assert.Equal(t, Palette[0], first.Color)
	assert.Equal(t, baseDotWidth, first.DotWidth)

	wrapped := MarkFor(n)
	assert.Equal(t, first.Color, wrapped.Color)
	assert.Greater(t, wrapped.DotWidth, first.DotWidth)

	seen := make(map[Mark]int)
	for i := 0; i < 3*n; i++ {
		m := MarkFor(i)
		prev, dup := seen[m]
		require.False(t, dup, "groups %d and %d share a mark", prev, i)
		seen[m] = i
	}
	assert.Equal(t, MarkFor(7), MarkFor(7))
}

func TestGroupPoints(t *testing.T) {
	groups, skipped, err := groupPoints(fixture(), "Side")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)

	require.Len(t, groups, 3)
	assert.Equal(t, "R", groups[0].Name)
	assert.Equal(t, "L", groups[1].Name)
	assert.Equal(t, "AXIAL", groups[2].Name)
	assert.Equal(t, []float64{0.1, 0.2}, groups[0].X)
	assert.Equal(t, MarkFor(1), groups[1].Mark)
}

func TestGroupPointsErrors(t *testing.T) {
	_, _, err := groupPoints(fixture(), "X")
	assert.Error(t, err)

	_, _, err = groupPoints(table.Table{}, "Type")
	assert.ErrorIs(t, err, ErrNoData)

	onlyBad := table.Table{Rows: []table.Row{{Type: "R", X: "?", Y: "1", Z: "1"}}}
	_, skipped, err := groupPoints(onlyBad, "Type")
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, 1, skipped)
}

func TestSpanPadded(t *testing.T) {
	s := newSpan()
	s.add(2, 2)
	p := s.padded(0.1)
	assert.Equal(t, 1.0, p.min)
	assert.Equal(t, 3.0, p.max)

	s.add(12)
	p = s.padded(0.1)
	assert.InDelta(t, 1.0, p.min, 1e-9)
	assert.InDelta(t, 13.0, p.max, 1e-9)
}

func TestCameraProjection(t *testing.T) {
	// Looking along -X from +X: Y runs right, Z runs up.
	c := newCamera(0, 0)
	x, y := c.project([3]float64{0, 1, 0})
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	x, y = c.project([3]float64{0, 0, 1})
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
	x, y = c.project([3]float64{1, 0, 0})
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	// Straight down: Z collapses.
	top := newCamera(-90, 90)
	_, y = top.project([3]float64{0, 0, 1})
	assert.InDelta(t, 0, y, 1e-9)
}

func TestBoxNormalize(t *testing.T) {
	b := newBox([]Group{{X: []float64{0, 10}, Y: []float64{5, 5}, Z: []float64{-1, 1}}})
	p := b.normalize(10, 5, 0)
	assert.InDelta(t, 0.5, p[0], 1e-9)
	assert.InDelta(t, 0, p[1], 1e-9, "flat axis sits at the centre")
	assert.InDelta(t, 0, p[2], 1e-9)

	for _, v := range p {
		assert.False(t, math.IsNaN(v))
	}
	assert.Contains(t, b.describe(), "X [0, 10]")
}

func TestScatter2DWritesPNG(t *testing.T) {
	r := newTestRenderer(t)
	path, err := r.Scatter2D(fixture().ByPart("Knee"), "Type", "Knee")
	require.NoError(t, err)
	assert.Equal(t, "knee_2d.png", filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestScatter3DWritesPNG(t *testing.T) {
	r := newTestRenderer(t)
	path, err := r.Scatter3D(fixture().ByPart("Knee"), "Type", "Knee")
	require.NoError(t, err)
	assert.Equal(t, "knee_3d.png", filepath.Base(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
}

func TestScatterSinglePoint(t *testing.T) {
	r := newTestRenderer(t)
	one := fixture().ByPart("Ankle")
	_, err := r.Scatter2D(one, "Type", "Ankle")
	require.NoError(t, err)
	_, err = r.Scatter3D(one, "Type", "Ankle")
	require.NoError(t, err)
}

func TestScatterSVG(t *testing.T) {
	r := NewRenderer(Options{Dir: t.TempDir(), Format: "svg", Width: 400, Height: 400}, nil)
	path, err := r.Scatter3D(fixture(), "Part", "All parts")
	require.NoError(t, err)
	assert.Equal(t, "all_parts_3d.svg", filepath.Base(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "<svg"))
}

func TestScatterNoData(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.Scatter2D(table.Table{}, "Type", "Knee")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Scatter3D(fixture().ByPart("Elbow"), "Type", "Elbow")
	assert.ErrorIs(t, err, ErrNoData)

	entries, err := os.ReadDir(r.opts.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStampCaption(t *testing.T) {
	r := newTestRenderer(t)
	path, err := r.Scatter2D(fixture(), "Side", "plain")
	require.NoError(t, err)
	plain, err := os.ReadFile(path)
	require.NoError(t, err)

	stamped, err := stampCaption(plain, "azim -60 elev 30")
	require.NoError(t, err)
	assert.NotEqual(t, plain, stamped)

	same, err := stampCaption(plain, "  ")
	require.NoError(t, err)
	assert.Equal(t, plain, same)

	_, err = stampCaption([]byte("not a png"), "x")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "knee_3d.png", FileName("Knee", "3d", "png"))
	assert.Equal(t, "left_upper_arm_2d.svg", FileName(" Left  Upper-Arm ", "2d", "svg"))
	assert.Equal(t, "plot_2d.png", FileName("///", "2d", "png"))
}

func TestRenderParts(t *testing.T) {
	r := newTestRenderer(t)
	figs, err := RenderParts(r, fixture(), Selection{Types: []string{"R", "L"}, GroupKey: "Type"})
	require.NoError(t, err)

	// Spine has only W, Hip only unparseable rows: both are skipped.
	var got []string
	for _, f := range figs {
		got = append(got, f.Part+"/"+f.Kind)
		assert.FileExists(t, f.Path)
	}
	assert.Equal(t, []string{"Knee/3d", "Knee/2d", "Ankle/3d", "Ankle/2d"}, got)
}

func TestRenderPartsSubject(t *testing.T) {
	r := newTestRenderer(t)
	figs, err := RenderParts(r, fixture(), Selection{Types: []string{"R", "L"}, Subject: "S1", GroupKey: "Side"})
	require.NoError(t, err)
	require.Len(t, figs, 2)
	assert.Equal(t, "Knee", figs[0].Part)
}

func TestRenderPartsNoData(t *testing.T) {
	r := newTestRenderer(t)
	_, err := RenderParts(r, table.Table{}, Selection{Types: []string{"R"}, GroupKey: "Type"})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = RenderParts(r, fixture(), Selection{Types: []string{"Q"}, GroupKey: "Type"})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRenderPartsDistinctFileNames(t *testing.T) {
	r := newTestRenderer(t)
	tbl := table.Table{Rows: []table.Row{
		{Subject: "S1", Type: "R1", Part: "Upper Arm", Side: "R", X: "1", Y: "2", Z: "3"},
		{Subject: "S1", Type: "R1", Part: "Upper_Arm", Side: "R", X: "4", Y: "5", Z: "6"},
	}}
	figs, err := RenderParts(r, tbl, Selection{Types: []string{"R"}, GroupKey: "Type"})
	require.NoError(t, err)
	require.Len(t, figs, 4)

	var names []string
	for _, f := range figs {
		names = append(names, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{"upper_arm_3d.png", "upper_arm_2d.png", "upper_arm_2_3d.png", "upper_arm_2_2d.png"}, names)

	entries, err := os.ReadDir(r.opts.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestFreeStem(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "knee", freeStem(used, "knee"))

	used["knee"] = true
	used["knee_2"] = true
	assert.Equal(t, "knee_3", freeStem(used, "knee"))
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		fp := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fp, []byte(body), 0o644))
		return fp
	}
	header := strings.Join(table.Header, ",") + "\n"

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(dir, "nope.csv"), zaptest.NewLogger(t))
		assert.ErrorIs(t, err, ErrNoData)
	})
	t.Run("wrong header", func(t *testing.T) {
		_, err := LoadTable(write("bad.csv", "a,b,c,d,e,f,g\n"), nil)
		assert.ErrorIs(t, err, ErrNoData)
	})
	t.Run("empty file", func(t *testing.T) {
		_, err := LoadTable(write("empty.csv", ""), nil)
		assert.ErrorIs(t, err, ErrNoData)
	})
	t.Run("short row", func(t *testing.T) {
		_, err := LoadTable(write("short.csv", header+"S1,R1\n"), nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoData)
	})
	t.Run("header only", func(t *testing.T) {
		tbl, err := LoadTable(write("head.csv", header), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
	})
	t.Run("rows", func(t *testing.T) {
		tbl, err := LoadTable(write("ok.csv", header+"S1,R1,Knee,R,1,2,3\n"), nil)
		require.NoError(t, err)
		require.Equal(t, 1, tbl.Len())
		assert.Equal(t, "Knee", tbl.Rows[0].Part)
	})
}
