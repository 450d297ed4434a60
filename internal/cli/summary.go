package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/session"
	"github.com/emiliopalmerini/cloudbill/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the KPIs and ratio distribution",
	Long: `Print the dashboard KPIs and the overage ratio distribution for a filter.

Examples:
  cloudbill summary
  cloudbill summary --window PEAK --min-cost 300000
  cloudbill summary --by customer_segment`,
	RunE: runSummary,
}

var (
	summaryFilters filterFlags
	summaryBy      string
)

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryFilters.register(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryBy, "by", string(domain.FieldWeekday), "Group the distribution by: customer_segment, promo_applied, weekday, traffic_window")
}

func runSummary(cmd *cobra.Command, args []string) error {
	by, err := domain.ParseField(summaryBy)
	if err != nil || by == domain.FieldNone {
		return fmt.Errorf("--by: unknown field %q", summaryBy)
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	snap, err := summaryFilters.snapshot(cmd, ds, session.SetSplitBy{Field: by})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(snap, ds.Len()))
	return nil
}

func renderSummary(snap session.Snapshot, datasetRows int) string {
	var b strings.Builder

	b.WriteString(RenderTitle("cloudbill summary"))
	b.WriteString("\n\n")

	windows := make([]string, 0, 2)
	for _, w := range snap.State.Windows.Windows() {
		windows = append(windows, string(w))
	}
	if len(windows) == 0 {
		windows = append(windows, util.NoData)
	}
	b.WriteString(RenderKPI("월 과금 범위", formatRange(util.FormatKRW(float64(snap.State.Cost.Min)), util.FormatKRW(float64(snap.State.Cost.Max)))) + "\n")
	b.WriteString(RenderKPI("트래픽 구간", strings.Join(windows, ", ")) + "\n\n")

	b.WriteString(RenderKPI("조회 대상 건수", fmt.Sprintf("%s / %d", util.FormatCountPtr(snap.Summary.Count), datasetRows)) + "\n")
	b.WriteString(RenderKPI("평균 오버리지 비중", util.FormatPercentPtr(snap.Summary.MeanRatio)) + "\n")
	b.WriteString(RenderKPI("평균 월 과금", util.FormatKRWPtr(snap.Summary.MeanCost)) + "\n\n")

	if snap.Distribution.Empty() {
		b.WriteString("  " + labelStyle.Render("필터 결과가 없습니다.") + "\n")
		return b.String()
	}

	t := Table{
		Title:   "overage_ratio by " + string(snap.Distribution.Field),
		Headers: []string{string(snap.Distribution.Field), "n", "min", "q1", "median", "q3", "max"},
	}
	for _, g := range snap.Distribution.Groups {
		st := g.Stats()
		t.Rows = append(t.Rows, []string{
			g.Key,
			fmt.Sprintf("%d", st.N),
			util.FormatPercent(st.Min),
			util.FormatPercent(st.Q1),
			util.FormatPercent(st.Median),
			util.FormatPercent(st.Q3),
			util.FormatPercent(st.Max),
		})
	}
	b.WriteString(RenderTable(t))
	return b.String()
}
