package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/internal/api"
	"github.com/bayuwidiasantoso/gudang/internal/config"
	"github.com/bayuwidiasantoso/gudang/internal/ui"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web frontend",
		Long:  "Serve the HTML frontend for the inventory backend, including the /metrics endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := ui.NewMetrics()

			// The frontend gets its own client so upstream calls are
			// instrumented; it shares the CLI session and credential.
			httpClient := &http.Client{
				Timeout:   30 * time.Second,
				Transport: metrics.InstrumentTransport(http.DefaultTransport),
			}
			client := api.NewClient(flagServer, logger, api.WithHTTPClient(httpClient))
			client.SetCredentialSource(sess)

			front, err := ui.New(client, sess, metrics, logger)
			if err != nil {
				return fmt.Errorf("build frontend: %w", err)
			}

			srv := &http.Server{
				Addr:         addr,
				Handler:      front.Routes(),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("frontend listening", "addr", addr, "backend", flagServer)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.Load().UIAddr, "Listen address (or WMS_UI_ADDR env)")
	return cmd
}
