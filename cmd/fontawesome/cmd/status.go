package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideamans/fontawesome/pkg/ledger"
)

var (
	statusJSON  bool
	statusPrune bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List synchronized assets",
	Long: `List the files recorded in the sync ledger together with their
version, size and subresource integrity digest.

With the memory store the ledger only lives as long as one process, so
configure kvs.type leveldb or redis to inspect earlier syncs.

With --prune, entries whose file is missing from the static root are removed
from the ledger and left out of the listing.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print entries as JSON")
	statusCmd.Flags().BoolVar(&statusPrune, "prune", false, "Forget entries whose file is missing")
	rootCmd.AddCommand(statusCmd)
}

type statusEntry struct {
	ledger.Entry
	Present bool `json:"present"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, logger, cleanup, err := loadApp("status")
	if err != nil {
		return err
	}
	defer cleanup()

	if app.Config.KVS.Type == "memory" {
		logger.Warn("The memory ledger is empty at startup; use leveldb or redis to keep sync history")
	}

	entries, err := app.Ledger.List(cmd.Context())
	if err != nil {
		return err
	}

	root := app.Synchronizer.Resolver().StaticRoot
	statuses := make([]statusEntry, 0, len(entries))
	for _, e := range entries {
		_, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(e.Path)))
		present := statErr == nil
		if !present && statusPrune {
			if err := app.Ledger.Forget(cmd.Context(), e.Path); err != nil {
				return err
			}
			logger.Info("Forgot missing asset", "path", e.Path)
			continue
		}
		statuses = append(statuses, statusEntry{Entry: e, Present: present})
	}

	out := cmd.OutOrStdout()
	if statusJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tVERSION\tSIZE\tSYNCED\tPRESENT\tINTEGRITY")
	for _, s := range statuses {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\t%s\n",
			s.Path, s.Version, s.Size, s.SyncedAt.Local().Format(time.RFC3339), s.Present, s.Integrity)
	}
	return tw.Flush()
}
