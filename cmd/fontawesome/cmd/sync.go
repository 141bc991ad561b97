package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
)

var (
	syncStyles   []string
	syncVersion  string
	syncCSS      bool
	syncJS       bool
	syncParallel int
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download assets into the local cache",
	Long: `Populate the local cache ahead of time so the first page load does
not wait for the CDN. Stylesheets pull the webfonts they reference.

Styles default to the one in the configuration file.`,
	Example: `  fontawesome sync --style all
  fontawesome sync --style solid,brands --version 6.4.2 --js=false`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringSliceVar(&syncStyles, "style", nil, "Styles to download (all, regular, solid, brands)")
	syncCmd.Flags().StringVar(&syncVersion, "version", "", "Package version (default: from configuration)")
	syncCmd.Flags().BoolVar(&syncCSS, "css", true, "Download stylesheets and webfonts")
	syncCmd.Flags().BoolVar(&syncJS, "js", true, "Download scripts")
	syncCmd.Flags().IntVar(&syncParallel, "parallel", 4, "Maximum concurrent downloads")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	app, logger, cleanup, err := loadApp("sync")
	if err != nil {
		return err
	}
	defer cleanup()

	defaults := app.FontAwesome.Defaults()
	if syncVersion != "" {
		defaults.Version = syncVersion
	}
	if err := fontawesome.ValidateVersion(defaults.Version); err != nil {
		return err
	}

	styles := []fontawesome.Style{defaults.Style}
	if len(syncStyles) > 0 {
		styles = styles[:0]
		for _, name := range syncStyles {
			style, err := fontawesome.ParseStyle(name)
			if err != nil {
				return err
			}
			styles = append(styles, style)
		}
	}

	var exts []fontawesome.Extension
	if syncCSS {
		exts = append(exts, fontawesome.ExtCSS)
	}
	if syncJS {
		exts = append(exts, fontawesome.ExtJS)
	}
	if len(exts) == 0 {
		return fmt.Errorf("nothing to sync: both --css and --js are disabled")
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, syncParallel))

	var (
		mu     sync.Mutex
		synced []string
	)
	resolver := app.Synchronizer.Resolver()
	for _, style := range styles {
		for _, ext := range exts {
			for _, asset := range fontawesome.Bundle(defaults.Version, style, defaults.Minified, ext) {
				g.Go(func() error {
					if err := app.Synchronizer.EnsureFresh(ctx, asset); err != nil {
						return err
					}
					mu.Lock()
					synced = append(synced, resolver.Path(asset))
					mu.Unlock()
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	logger.Info("Local cache is up to date", "version", defaults.Version, "files", len(synced), "root", resolver.StaticRoot)
	for _, p := range synced {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
