package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/session"
)

// filterFlags mirror the dashboard sidebar for the terminal commands.
type filterFlags struct {
	minCost int64
	maxCost int64
	windows []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.minCost, "min-cost", 0, "Lower monthly cost bound in KRW (default: dataset minimum)")
	cmd.Flags().Int64Var(&f.maxCost, "max-cost", 0, "Upper monthly cost bound in KRW (default: dataset maximum)")
	cmd.Flags().StringSliceVar(&f.windows, "window", nil, "Traffic windows to keep: BUSINESS, PEAK (default: both)")
}

// events turns the flags that were set into dashboard events, so the
// terminal applies filters exactly like the browser does.
func (f *filterFlags) events(cmd *cobra.Command, ds *domain.Dataset) ([]session.Event, error) {
	var events []session.Event

	minSet, maxSet := cmd.Flags().Changed("min-cost"), cmd.Flags().Changed("max-cost")
	if minSet || maxSet {
		bounds := ds.CostBounds()
		ev := session.SetCostRange{Min: bounds.Min, Max: bounds.Max}
		if minSet {
			ev.Min = f.minCost
		}
		if maxSet {
			ev.Max = f.maxCost
		}
		events = append(events, ev)
	}

	if cmd.Flags().Changed("window") {
		var windows []domain.TrafficWindow
		for _, v := range f.windows {
			w, err := domain.ParseTrafficWindow(v)
			if err != nil {
				return nil, fmt.Errorf("--window: %w", err)
			}
			windows = append(windows, w)
		}
		events = append(events, session.SetWindows{Windows: domain.NewWindowSet(windows...)})
	}

	return events, nil
}

// snapshot applies the filter flags plus extra events to a fresh session.
func (f *filterFlags) snapshot(cmd *cobra.Command, ds *domain.Dataset, extra ...session.Event) (session.Snapshot, error) {
	events, err := f.events(cmd, ds)
	if err != nil {
		return session.Snapshot{}, err
	}

	sess := session.New("cli", ds)
	for _, ev := range append(events, extra...) {
		if _, err := sess.Dispatch(ev, ds); err != nil {
			return session.Snapshot{}, fmt.Errorf("%s: %w", ev.Name(), err)
		}
	}
	return sess.Snapshot(ds), nil
}
