// Package export writes filtered rows as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Row is one exported record. OverageRatio is null when undefined.
type Row struct {
	MonthlyCost     int64    `json:"monthly_cost_krw"`
	OverageCost     int64    `json:"overage_cost_krw"`
	TrafficWindow   string   `json:"traffic_window"`
	CustomerSegment string   `json:"customer_segment"`
	PromoApplied    string   `json:"promo_applied"`
	Weekday         string   `json:"weekday"`
	OverageRatio    *float64 `json:"overage_ratio"`
}

var header = []string{
	"monthly_cost_krw", "overage_cost_krw", "traffic_window",
	"customer_segment", "promo_applied", "weekday", "overage_ratio",
}

// Rows converts view rows to export rows.
func Rows(rows []domain.ViewRow) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{
			MonthlyCost:     r.MonthlyCost,
			OverageCost:     r.OverageCost,
			TrafficWindow:   string(r.TrafficWindow),
			CustomerSegment: r.Segment,
			PromoApplied:    r.PromoApplied,
			Weekday:         r.Weekday,
		}
		if v, ok := r.Ratio.Get(); ok {
			row.OverageRatio = &v
		}
		out = append(out, row)
	}
	return out
}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Write encodes rows in format, which must be csv or json.
func Write(w io.Writer, format string, rows []domain.ViewRow) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatCSV:
		return WriteCSV(w, rows)
	default:
		return fmt.Errorf("unsupported format: %s (use json or csv)", format)
	}
}

func WriteJSON(w io.Writer, rows []domain.ViewRow) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Rows(rows)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteCSV writes a header and one line per row; undefined ratios are blank.
func WriteCSV(w io.Writer, rows []domain.ViewRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range Rows(rows) {
		ratio := ""
		if r.OverageRatio != nil {
			ratio = strconv.FormatFloat(*r.OverageRatio, 'f', 6, 64)
		}
		line := []string{
			strconv.FormatInt(r.MonthlyCost, 10),
			strconv.FormatInt(r.OverageCost, 10),
			r.TrafficWindow,
			r.CustomerSegment,
			r.PromoApplied,
			r.Weekday,
			ratio,
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
