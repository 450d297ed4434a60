package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/adapters/turso"
	"github.com/emiliopalmerini/cloudbill/internal/migrate"
	"github.com/emiliopalmerini/cloudbill/internal/util"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations on the libsql billing table.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  cloudbill migrate      # Run all pending migrations
  cloudbill migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := openWritableDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	before, _, err := currentVersion(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Current version: %d\n", before)

	if len(args) == 0 {
		err = migrate.RunAll(ctx, db.DB)
	} else {
		target, convErr := strconv.Atoi(args[0])
		if convErr != nil || target < 0 {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		err = migrate.MigrateTo(ctx, db.DB, target)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	after, _, err := currentVersion(ctx, db)
	if err != nil {
		return err
	}
	if after == before {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations to run")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %d\n", after)
	return nil
}

func currentVersion(ctx context.Context, db *turso.DB) (int, bool, error) {
	if err := migrate.EnsureMigrationsTable(ctx, db.DB); err != nil {
		return 0, false, fmt.Errorf("failed to create migrations table: %w", err)
	}
	return migrate.GetCurrentVersion(ctx, db.DB)
}

// openWritableDB opens the configured database, or a local file under the
// XDG data directory when none is configured.
func openWritableDB() (*turso.DB, error) {
	url := cfg.Database.URL
	if url == "" {
		var err error
		url, err = util.DefaultDatabaseURL()
		if err != nil {
			return nil, err
		}
	}

	if path, ok := strings.CutPrefix(url, "file:"); ok && !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := turso.NewDB(url, cfg.Database.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
