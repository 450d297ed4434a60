package ports

import (
	"context"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

// RecordSource supplies the billing table once at startup.
type RecordSource interface {
	// LoadRecords returns every record in source order.
	LoadRecords(ctx context.Context) ([]domain.Record, error)
	// Describe names the source for logs and the page footer.
	Describe() string
}

// RecordWriter replaces the contents of a writable table. Only the seed
// command uses it; the dashboard never writes.
type RecordWriter interface {
	ReplaceAll(ctx context.Context, records []domain.Record) error
}
