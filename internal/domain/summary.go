package domain

// Summary holds the three KPI scalars. A nil field is the "no data" sentinel.
type Summary struct {
	Count     *int     `json:"count"`
	MeanRatio *float64 `json:"mean_ratio"`
	MeanCost  *float64 `json:"mean_cost"`
}

// Summarize aggregates a filtered view. Undefined ratios are excluded from
// MeanRatio only; zero-cost rows still count toward Count and MeanCost.
func Summarize(v FilteredView) Summary {
	if v.Empty() {
		return Summary{}
	}

	count := v.Len()
	var costSum float64
	var ratioSum float64
	ratioN := 0
	for _, row := range v.Rows {
		costSum += float64(row.MonthlyCost)
		if ratio, ok := row.Ratio.Get(); ok {
			ratioSum += ratio
			ratioN++
		}
	}

	meanCost := costSum / float64(count)
	s := Summary{Count: &count, MeanCost: &meanCost}
	if ratioN > 0 {
		meanRatio := ratioSum / float64(ratioN)
		s.MeanRatio = &meanRatio
	}
	return s
}
