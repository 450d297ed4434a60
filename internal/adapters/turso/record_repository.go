package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/util"
)

// RecordRepository reads and seeds the billing_records table.
type RecordRepository struct {
	db    *sql.DB
	label string
}

func NewRecordRepository(db *sql.DB, label string) *RecordRepository {
	return &RecordRepository{db: db, label: label}
}

func (r *RecordRepository) Describe() string {
	if r.label == "" {
		return "libsql billing_records"
	}
	return "libsql " + r.label
}

func (r *RecordRepository) LoadRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT monthly_cost_krw, overage_cost_krw, traffic_window,
		       customer_segment, promo_applied, weekday
		FROM billing_records
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var (
			rec                     domain.Record
			window                  string
			segment, promo, weekday sql.NullString
		)
		if err := rows.Scan(&rec.MonthlyCost, &rec.OverageCost, &window, &segment, &promo, &weekday); err != nil {
			return nil, fmt.Errorf("failed to scan billing record: %w", err)
		}
		rec.TrafficWindow, err = domain.ParseTrafficWindow(window)
		if err != nil {
			return nil, fmt.Errorf("billing record %d: %w", len(records)+1, err)
		}
		rec.Segment = util.StringOrEmpty(segment)
		rec.PromoApplied = util.StringOrEmpty(promo)
		rec.Weekday = util.StringOrEmpty(weekday)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate billing records: %w", err)
	}
	return records, nil
}

// ReplaceAll swaps the table contents for records in one transaction.
func (r *RecordRepository) ReplaceAll(ctx context.Context, records []domain.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM billing_records`); err != nil {
		return fmt.Errorf("failed to clear billing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO billing_records
			(monthly_cost_krw, overage_cost_krw, traffic_window, customer_segment, promo_applied, weekday)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		_, err := stmt.ExecContext(ctx,
			rec.MonthlyCost,
			rec.OverageCost,
			string(rec.TrafficWindow),
			util.NullString(rec.Segment),
			util.NullString(rec.PromoApplied),
			util.NullString(rec.Weekday),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}
