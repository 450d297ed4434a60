package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/adapters/turso"
	"github.com/emiliopalmerini/cloudbill/internal/dataset"
	"github.com/emiliopalmerini/cloudbill/internal/migrate"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the billing table into the database",
	Long: `Replace the contents of the libsql billing table with a CSV file or the
embedded mock table. Pending migrations are applied first.

Examples:
  cloudbill seed                                  # Embedded mock table
  cloudbill seed --from billing.csv --db file:./billing.db`,
	RunE: runSeed,
}

var seedFrom string

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFrom, "from", "", "CSV file to seed from (default: embedded mock table)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var src ports.RecordSource = dataset.NewMockSource()
	if seedFrom != "" {
		src = dataset.NewFileSource(seedFrom)
	}

	db, err := openWritableDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	n, err := seed(ctx, db, src)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rows from %s into %s\n", n, src.Describe(), db.URL())
	return nil
}

// seed migrates the database and replaces the billing table with src.
func seed(ctx context.Context, db *turso.DB, src ports.RecordSource) (int, error) {
	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return 0, err
	}
	if err := migrate.RunAll(ctx, db.DB); err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	repo := turso.NewRecordRepository(db.DB, "")
	if err := repo.ReplaceAll(ctx, ds.Records()); err != nil {
		return 0, fmt.Errorf("failed to write records: %w", err)
	}
	return ds.Len(), nil
}
