package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var guideColor = drawing.ColorFromHex("555555")

// camera is an orthographic view looking at the origin from the given
// azimuth (about Z, from +X towards +Y) and elevation (above the XY plane).
type camera struct {
	right [3]float64
	up    [3]float64
}

func newCamera(azimuthDeg, elevationDeg float64) camera {
	a := azimuthDeg * math.Pi / 180
	e := elevationDeg * math.Pi / 180
	return camera{
		right: [3]float64{-math.Sin(a), math.Cos(a), 0},
		up:    [3]float64{-math.Sin(e) * math.Cos(a), -math.Sin(e) * math.Sin(a), math.Cos(e)},
	}
}

// project maps a point to screen coordinates.
func (c camera) project(p [3]float64) (float64, float64) {
	return dot(c.right, p), dot(c.up, p)
}

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// box is the data extent on each axis; normalize maps it onto the unit cube
// centred at the origin so every axis gets the same screen length.
type box struct {
	axes [3]span
}

func newBox(groups []Group) box {
	b := box{axes: [3]span{newSpan(), newSpan(), newSpan()}}
	for _, g := range groups {
		b.axes[0].add(g.X...)
		b.axes[1].add(g.Y...)
		b.axes[2].add(g.Z...)
	}
	return b
}

func (b box) normalize(x, y, z float64) [3]float64 {
	var p [3]float64
	for i, v := range [3]float64{x, y, z} {
		s := b.axes[i]
		w := s.max - s.min
		if w == 0 {
			continue
		}
		p[i] = (v-s.min)/w - 0.5
	}
	return p
}

var axisNames = [3]string{"X", "Y", "Z"}

// guides are the three axis lines from the lower corner of the cube.
func (b box) guides(c camera) []chart.ContinuousSeries {
	origin := [3]float64{-0.5, -0.5, -0.5}
	ox, oy := c.project(origin)
	out := make([]chart.ContinuousSeries, 0, 3)
	for i := range axisNames {
		end := origin
		end[i] = 0.5
		ex, ey := c.project(end)
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{ox, ex},
			YValues: []float64{oy, ey},
			Style:   chart.Style{StrokeWidth: 1, StrokeColor: guideColor},
		})
	}
	return out
}

// labels names each guide at its far end.
func (b box) labels(c camera) chart.AnnotationSeries {
	as := chart.AnnotationSeries{}
	for i, name := range axisNames {
		end := [3]float64{-0.5, -0.5, -0.5}
		end[i] = 0.5
		x, y := c.project(end)
		as.Annotations = append(as.Annotations, chart.Value2{XValue: x, YValue: y, Label: name})
	}
	return as
}

// describe lists each axis extent for the caption.
func (b box) describe() string {
	s := ""
	for i, name := range axisNames {
		if i > 0 {
			s += "  "
		}
		s += fmt.Sprintf("%s [%.3g, %.3g]", name, b.axes[i].min, b.axes[i].max)
	}
	return s
}
