package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is the 20-colour qualitative palette groups are drawn from.
var Palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"), drawing.ColorFromHex("aec7e8"),
	drawing.ColorFromHex("ff7f0e"), drawing.ColorFromHex("ffbb78"),
	drawing.ColorFromHex("2ca02c"), drawing.ColorFromHex("98df8a"),
	drawing.ColorFromHex("d62728"), drawing.ColorFromHex("ff9896"),
	drawing.ColorFromHex("9467bd"), drawing.ColorFromHex("c5b0d5"),
	drawing.ColorFromHex("8c564b"), drawing.ColorFromHex("c49c94"),
	drawing.ColorFromHex("e377c2"), drawing.ColorFromHex("f7b6d2"),
	drawing.ColorFromHex("7f7f7f"), drawing.ColorFromHex("c7c7c7"),
	drawing.ColorFromHex("bcbd22"), drawing.ColorFromHex("dbdb8d"),
	drawing.ColorFromHex("17becf"), drawing.ColorFromHex("9edae5"),
}

// legendHeadColor draws no swatch next to the legend heading.
var legendHeadColor = drawing.Color{R: 255, G: 255, B: 255, A: 0}

const (
	baseDotWidth = 4.0
	dotWidthStep = 2.0
)

// Mark is how one group is drawn.
type Mark struct {
	Color    drawing.Color
	DotWidth float64
}

// MarkFor returns the mark of the i-th group (0-based, first-appearance
// order). Colours cycle through Palette; each completed cycle widens the
// dot, so no two groups share both colour and size.
func MarkFor(i int) Mark {
	return Mark{
		Color:    Palette[i%len(Palette)],
		DotWidth: baseDotWidth + dotWidthStep*float64(i/len(Palette)),
	}
}

// pointStyle renders points only, no connecting line.
func pointStyle(m Mark) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    m.DotWidth,
		DotColor:    m.Color,
	}
}

// legendStyle is the swatch drawn for a group in the legend.
func legendStyle(m Mark) chart.Style {
	return chart.Style{
		StrokeWidth: m.DotWidth,
		StrokeColor: m.Color,
	}
}
