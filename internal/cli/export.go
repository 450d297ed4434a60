package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered rows to JSON or CSV",
	Long: `Export the rows matching a filter, with the derived overage ratio.

Examples:
  cloudbill export --format json --output rows.json
  cloudbill export --format csv --window BUSINESS`,
	RunE: runExport,
}

var (
	exportFilters filterFlags
	exportFormat  string
	exportOutput  string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatJSON, "Output format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != export.FormatJSON && exportFormat != export.FormatCSV {
		return fmt.Errorf("unsupported format: %s (use json or csv)", exportFormat)
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	snap, err := exportFilters.snapshot(cmd, ds)
	if err != nil {
		return err
	}

	var output io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		output = f
	}

	if err := export.Write(output, exportFormat, snap.View.Rows); err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d rows to %s\n", snap.View.Len(), exportOutput)
	}
	return nil
}
