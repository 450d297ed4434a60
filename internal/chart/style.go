// Package chart renders the dashboard plots as PNG images.
package chart

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/cloudbill/internal/util"
)

// Size is the pixel size of a rendered plot.
type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 760, Height: 420}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// palette is matplotlib's tab10, cycled by category index.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col.WithAlpha(200),
	}
}

// lineStyle renders a plain stroke with no dots.
func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: width,
		StrokeColor: col,
		DotWidth:    chart.Disabled,
	}
}

func background(bottom int) chart.Style {
	return chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: bottom}}
}

// paddedRange widens [lo, hi] by frac on each side and never returns a
// zero-width range, which go-chart refuses to render.
func paddedRange(lo, hi, frac float64) *chart.ContinuousRange {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	pad := span * frac
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func krwTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return util.FormatNumber(int64(math.Round(f)))
	}
	return fmt.Sprint(v)
}

func percentTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f*100)
	}
	return fmt.Sprint(v)
}
