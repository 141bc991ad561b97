package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideamans/fontawesome/pkg/fontawesome"
)

var (
	markupStyle    string
	markupVersion  string
	markupCSS      bool
	markupLocal    bool
	markupMinified bool
)

// markupCmd represents the markup command
var markupCmd = &cobra.Command{
	Use:   "markup",
	Short: "Print the tags a page needs to load Font Awesome",
	Long: `Print the <link> or <script> tags for the configured style, for
pasting into templates that do not use the fa_* functions.

With --local the assets are synchronized first and the tags point at the
local URL prefix.`,
	RunE: runMarkup,
}

func init() {
	markupCmd.Flags().StringVar(&markupStyle, "style", "", "Style (default: from configuration)")
	markupCmd.Flags().StringVar(&markupVersion, "version", "", "Package version (default: from configuration)")
	markupCmd.Flags().BoolVar(&markupCSS, "css", false, "Emit stylesheets instead of scripts")
	markupCmd.Flags().BoolVar(&markupLocal, "local", false, "Serve from the local cache")
	markupCmd.Flags().BoolVar(&markupMinified, "minified", true, "Use minified files")
	rootCmd.AddCommand(markupCmd)
}

func runMarkup(cmd *cobra.Command, args []string) error {
	app, _, cleanup, err := loadApp("markup")
	if err != nil {
		return err
	}
	defer cleanup()

	opts := app.FontAwesome.Defaults()
	if markupStyle != "" {
		if opts.Style, err = fontawesome.ParseStyle(markupStyle); err != nil {
			return err
		}
	}
	if markupVersion != "" {
		opts.Version = markupVersion
	}
	if cmd.Flags().Changed("css") {
		opts.UseCSS = markupCSS
	}
	if cmd.Flags().Changed("minified") {
		opts.Minified = markupMinified
	}
	if cmd.Flags().Changed("local") {
		app.FontAwesome.Reconfigure(markupLocal, app.FontAwesome.Defaults())
	}

	html, err := app.FontAwesome.Load(cmd.Context(), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
