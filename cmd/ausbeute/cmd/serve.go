package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbsmedya/ausbeute/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP upload service",
	Long: `Serve starts the HTTP service that takes the reference and daily
workbooks as a multipart upload and answers with the result.

Endpoints:
  POST /api/v1/analysis          result workbook download
  POST /api/v1/analysis/preview  result rows and warnings as JSON
  GET  /healthz                  liveness check

Form fields: "reference" (one file) and "daily" (one or more files).

Example:
  ausbeute serve --addr :8080
  curl -F reference=@referenz.xlsx -F daily=@tag01.xlsx -F daily=@tag02.xlsx \
       -o Ausbeuteanalyse_Ergebnis.xlsx http://localhost:8080/api/v1/analysis`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"Listen address (default: server.address from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}

	log.Infow("Starting upload service",
		"address", cfg.Server.Address,
		"config", GetConfigFile(),
		"max_upload_mb", cfg.Server.MaxUploadMB,
	)

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Warn("Received shutdown signal - finishing open requests...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := server.New(cfg, log).ListenAndServe(ctx); err != nil {
		return fmt.Errorf("upload service failed: %w", err)
	}

	log.Info("Upload service stopped")
	return nil
}
