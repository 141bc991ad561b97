package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideamans/fontawesome/pkg/server"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo server",
	Long: `Start the demo server with the specified configuration.

The server will:
- Load the configuration file (or fall back to defaults)
- Open the sync ledger (memory, LevelDB or Redis)
- Serve an index page rendered with the fa_* template functions
- Serve the local asset cache when serve_local is enabled
- Reload serve_local and the markup defaults when the file changes
- Handle graceful shutdown on SIGTERM/SIGINT`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Logging settings come from the file; a broken file is reported by Run
	logger := logging.NewSimpleLogger("main", logging.LevelInfo, true)
	if cfg, _, err := server.LoadConfig(cfgFile, logging.NewDiscardLogger()); err == nil {
		l, err := newLogger(cfg, "main")
		if err != nil {
			return err
		}
		defer func() { _ = l.Close() }()
		logger = l
	}

	cfg := server.Config{
		ConfigPath: cfgFile,
		Host:       host,
		Port:       port,
		HostSet:    cmd.Flags().Changed("host"),
		PortSet:    cmd.Flags().Changed("port"),
		Logger:     logger,
		Version:    version,
	}

	if err := server.Run(context.Background(), cfg); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
