package cli

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/cloudbill/internal/adapters/turso"
	"github.com/emiliopalmerini/cloudbill/internal/config"
	"github.com/emiliopalmerini/cloudbill/internal/dataset"
	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

// AppContext holds the dataset source shared by the read commands.
type AppContext struct {
	DB     *turso.DB
	Source ports.RecordSource
}

// NewAppContext picks the dataset source: a libsql table when a database
// URL is configured, else a CSV file, else the embedded mock table.
func NewAppContext(c *config.Config) (*AppContext, error) {
	switch {
	case c.Database.URL != "":
		db, err := turso.NewDB(c.Database.URL, c.Database.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &AppContext{DB: db, Source: turso.NewRecordRepository(db.DB, db.URL())}, nil
	case c.DatasetPath != "":
		return &AppContext{Source: dataset.NewFileSource(c.DatasetPath)}, nil
	default:
		return &AppContext{Source: dataset.NewMockSource()}, nil
	}
}

// LoadDataset reads the source once.
func (a *AppContext) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	return dataset.Load(ctx, a.Source)
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// loadDataset opens the configured source, reads it and closes it again.
func loadDataset(ctx context.Context) (*domain.Dataset, error) {
	app, err := NewAppContext(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = app.Close() }()
	return app.LoadDataset(ctx)
}
