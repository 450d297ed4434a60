package chart

import (
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

const missingCategory = "n/a"

// Scatter plots monthly cost against overage cost, one series per value of
// color. color none draws a single uncoloured series.
func Scatter(w io.Writer, view domain.FilteredView, color domain.Field, size Size) error {
	size = size.orDefault()
	if view.Empty() {
		return Empty(w, size, NoResults)
	}

	type points struct{ xs, ys []float64 }
	groups := map[string]*points{}
	var keys []string
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, row := range view.Rows {
		key := ""
		if color != domain.FieldNone {
			v, ok := row.Category(color)
			if !ok {
				v = missingCategory
			}
			key = v
		}
		p, ok := groups[key]
		if !ok {
			p = &points{}
			groups[key] = p
			keys = append(keys, key)
		}
		x, y := float64(row.MonthlyCost), float64(row.OverageCost)
		p.xs = append(p.xs, x)
		p.ys = append(p.ys, y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	domain.SortCategories(color, keys)

	series := make([]chart.Series, 0, len(keys))
	for i, key := range keys {
		p := groups[key]
		series = append(series, chart.ContinuousSeries{
			Name:    key,
			XValues: p.xs,
			YValues: p.ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	bottom := 12
	if color != domain.FieldNone {
		bottom = legendHeight
	}
	ch := chart.Chart{
		Width:      size.Width,
		Height:     size.Height,
		Background: background(bottom),
		XAxis: chart.XAxis{
			Name:           "monthly_cost_krw",
			Range:          paddedRange(minX, maxX, 0.03),
			ValueFormatter: krwTick,
		},
		YAxis: chart.YAxis{
			Name:           "overage_cost_krw",
			Range:          paddedRange(minY, maxY, 0.05),
			ValueFormatter: krwTick,
		},
		Series: series,
	}
	if color != domain.FieldNone {
		ch.Title = string(color)
		ch.Elements = []chart.Renderable{legend(keys, size.Height)}
	}

	return ch.Render(chart.PNG, w)
}
