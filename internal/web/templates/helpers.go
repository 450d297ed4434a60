package templates

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/util"
)

var funcs = template.FuncMap{
	"noResults": func() string { return NoResults },
}

func formatKRW(n int64) string {
	return util.FormatKRW(float64(n))
}

// FormatRatio renders a table ratio; undefined ratios are blank.
func FormatRatio(r domain.Ratio) string {
	v, ok := r.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// TableInfo is the row-count caption under the preview table.
func TableInfo(n int) string {
	return fmt.Sprintf("Viewing rows 1 through %d of %d", n, n)
}

// NewTableRow formats one preview row.
func NewTableRow(r domain.ViewRow) TableRow {
	return TableRow{
		MonthlyCost:   strconv.FormatInt(r.MonthlyCost, 10),
		OverageCost:   strconv.FormatInt(r.OverageCost, 10),
		TrafficWindow: string(r.TrafficWindow),
		Segment:       r.Segment,
		PromoApplied:  r.PromoApplied,
		Weekday:       r.Weekday,
		OverageRatio:  FormatRatio(r.Ratio),
	}
}

// NewKPIs formats the summary with "-" for missing values.
func NewKPIs(s domain.Summary) KPIs {
	return KPIs{
		TotalRows:       util.FormatCountPtr(s.Count),
		AvgOverageRatio: util.FormatPercentPtr(s.MeanRatio),
		AvgMonthlyCost:  util.FormatKRWPtr(s.MeanCost),
	}
}

// NewCostDisplay formats the selected range.
func NewCostDisplay(c domain.CostRange) CostDisplay {
	return CostDisplay{From: formatKRW(c.Min), To: formatKRW(c.Max)}
}

// FieldOptions lists fields as radio options with selected checked.
func FieldOptions(fields []domain.Field, selected domain.Field) []Option {
	opts := make([]Option, 0, len(fields))
	for _, f := range fields {
		opts = append(opts, Option{Value: string(f), Label: f.Label(), Checked: f == selected})
	}
	return opts
}

// WindowOptions lists the traffic-window checkboxes.
func WindowOptions(set domain.WindowSet) []Option {
	opts := make([]Option, 0, len(domain.TrafficWindows))
	for _, w := range domain.TrafficWindows {
		opts = append(opts, Option{Value: string(w), Label: w.Label(), Checked: set.Has(w)})
	}
	return opts
}
