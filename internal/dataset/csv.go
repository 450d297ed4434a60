package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

// Column names of the billing table, shared by the CSV and SQL sources.
const (
	ColMonthlyCost   = "monthly_cost_krw"
	ColOverageCost   = "overage_cost_krw"
	ColTrafficWindow = "traffic_window"
	ColSegment       = "customer_segment"
	ColPromo         = "promo_applied"
	ColWeekday       = "weekday"
)

var requiredColumns = []string{ColMonthlyCost, ColOverageCost, ColTrafficWindow}

// ParseCSV reads a billing table with a header row. Columns are matched by
// name so extra columns are ignored; the categorical columns are optional.
func ParseCSV(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyDataset
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []domain.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cost, err := parseKRW(field(row, ColMonthlyCost))
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, ColMonthlyCost, err)
		}
		overage, err := parseKRW(field(row, ColOverageCost))
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, ColOverageCost, err)
		}
		window, err := domain.ParseTrafficWindow(field(row, ColTrafficWindow))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := domain.Record{
			MonthlyCost:   cost,
			OverageCost:   overage,
			TrafficWindow: window,
			Segment:       field(row, ColSegment),
			PromoApplied:  field(row, ColPromo),
			Weekday:       strings.ToUpper(field(row, ColWeekday)),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return records, nil
}

// parseKRW accepts plain integers, thousands separators and a leading ₩.
func parseKRW(s string) (int64, error) {
	s = strings.TrimPrefix(s, "₩")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errors.New("empty amount")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return int64(f + 0.5), nil
}
