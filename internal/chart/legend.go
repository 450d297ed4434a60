package chart

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	legendHeight = 48
	legendDot    = 5
	legendGap    = 16
)

// legend draws one dot in the series palette colour and its key per
// category, in a row inside the bottom padding strip.
func legend(keys []string, height int) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		text := chart.Style{
			Font:      defaults.Font,
			FontColor: chart.DefaultTextColor,
			FontSize:  9,
		}

		x := cb.Left
		y := height - legendHeight/2 + 4
		for i, key := range keys {
			col := paletteColor(i)
			r.SetFillColor(col)
			r.SetStrokeColor(col)
			r.SetStrokeWidth(1)
			r.Circle(legendDot, x+legendDot, y)
			r.FillStroke()
			x += 2*legendDot + 4

			text.WriteTextOptionsToRenderer(r)
			tb := r.MeasureText(key)
			r.Text(key, x, y+tb.Height()/2)
			x += tb.Width() + legendGap
		}
	}
}
