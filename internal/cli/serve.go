package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/adapters/otel"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/session"
	"github.com/emiliopalmerini/cloudbill/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the dashboard web server.

Examples:
  cloudbill serve                         # Embedded mock table on port 8080
  cloudbill serve --port 3000             # Start on port 3000
  cloudbill serve --dataset billing.csv   # Serve a CSV file`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: CLOUDBILL_PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	metrics := otel.NewFromConfig(ctx, otel.ConfigFrom(cfg.Otel))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metrics.Close(closeCtx); err != nil {
			logger.Warn("metrics exporter close", "error", err)
		}
	}()

	store := session.NewStore(ds, cfg.SessionTTL)
	server := web.NewServer(ds, store, metrics, web.Options{
		Port:        port,
		PreviewRows: cfg.PreviewRows,
	})

	err = server.Start(ctx)
	logger.Info("shutting down")
	return err
}
