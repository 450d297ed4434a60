package chart

import (
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

const (
	boxHalfWidth = 0.3
	jitterWidth  = 0.4
)

// Distribution draws one box per group with the individual ratios
// scattered over it. Groups sit at x = 0..n-1.
func Distribution(w io.Writer, dist domain.Distribution, size Size) error {
	size = size.orDefault()
	if dist.Empty() {
		return Empty(w, size, NoResults)
	}

	n := len(dist.Groups)
	var series []chart.Series
	// The x range follows the ticks; unlabelled edge ticks keep it at
	// -0.5..n-0.5, which also gives a single group a non-zero width.
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	minY, maxY := math.Inf(1), math.Inf(-1)

	for i, g := range dist.Groups {
		x := float64(i)
		col := paletteColor(i)
		st := g.Stats()
		minY, maxY = math.Min(minY, st.Min), math.Max(maxY, st.Max)
		ticks = append(ticks, chart.Tick{Value: x, Label: g.Key})

		series = append(series, boxSeries(x, st, col)...)

		xs := make([]float64, len(g.Ratios))
		for j := range g.Ratios {
			xs[j] = x + jitter(j)
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: g.Ratios,
			Style:   pointStyle(col.WithAlpha(140)),
		})
	}

	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})

	ch := chart.Chart{
		Width:      size.Width,
		Height:     size.Height,
		Title:      string(dist.Field),
		Background: background(12),
		XAxis: chart.XAxis{
			Name:  string(dist.Field),
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		},
		YAxis: chart.YAxis{
			Name:           "overage_ratio",
			Range:          paddedRange(minY, maxY, 0.05),
			ValueFormatter: percentTick,
		},
		Series: series,
	}

	return ch.Render(chart.PNG, w)
}

// boxSeries outlines the interquartile box, the median and both whiskers.
func boxSeries(x float64, st domain.BoxStats, col drawing.Color) []chart.Series {
	l, r := x-boxHalfWidth, x+boxHalfWidth
	return []chart.Series{
		chart.ContinuousSeries{
			XValues: []float64{l, r, r, l, l},
			YValues: []float64{st.Q1, st.Q1, st.Q3, st.Q3, st.Q1},
			Style:   lineStyle(col, 1.5),
		},
		chart.ContinuousSeries{
			XValues: []float64{l, r},
			YValues: []float64{st.Median, st.Median},
			Style:   lineStyle(col, 2.5),
		},
		chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{st.Min, st.Q1},
			Style:   lineStyle(col, 1),
		},
		chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{st.Q3, st.Max},
			Style:   lineStyle(col, 1),
		},
	}
}

// jitter spreads the j-th point of a group horizontally using the golden
// ratio sequence, so the same data always renders the same image.
func jitter(j int) float64 {
	const phi = 0.6180339887498949
	_, frac := math.Modf(float64(j+1) * phi)
	return (frac - 0.5) * jitterWidth
}
