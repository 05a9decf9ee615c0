package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bayuwidiasantoso/gudang/internal/api"
	"github.com/bayuwidiasantoso/gudang/internal/config"
	"github.com/bayuwidiasantoso/gudang/internal/logging"
	"github.com/bayuwidiasantoso/gudang/internal/session"
)

var (
	flagServer    string
	flagDataDir   string
	flagBackend   string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger    *slog.Logger
	apiClient *api.Client
	sess      *session.Store
	closer    io.Closer
)

// NewRootCmd creates the root cobra command for the gudang CLI.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "gudang",
		Short: "Gudang — warehouse inventory client",
		Long:  "Gudang talks to the warehouse inventory backend: stock, movements, reports and imports.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
			apiClient = api.NewClient(flagServer, logger)

			storage, err := openStorage()
			if err != nil {
				return err
			}
			sess = session.New(apiClient, storage, logger)
			apiClient.SetCredentialSource(sess)

			return sess.Init(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer != nil {
				return closer.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", cfg.APIBase, "Backend base URL (or WMS_API_BASE env)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", cfg.DataDir, "Directory for the session record (or WMS_DATA_DIR env)")
	root.PersistentFlags().StringVar(&flagBackend, "session", cfg.SessionBackend, "Session backend: file or sqlite (or WMS_SESSION_BACKEND env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newBarangCmd(),
		newTransaksiCmd(),
		newDashboardCmd(),
		newLaporanCmd(),
		newLogsCmd(),
		newImportCmd(),
		newServeCmd(),
	)

	return root
}

// openStorage builds the durable session backend selected by --session.
func openStorage() (session.Storage, error) {
	closer = nil
	switch flagBackend {
	case "sqlite":
		if err := os.MkdirAll(flagDataDir, 0700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		st, err := session.NewSQLiteStorage(filepath.Join(flagDataDir, "session.db"), logger)
		if err != nil {
			return nil, fmt.Errorf("open session database: %w", err)
		}
		closer = st
		return st, nil
	case "file", "":
		return session.NewFileStorage(flagDataDir), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q (want file or sqlite)", flagBackend)
	}
}
