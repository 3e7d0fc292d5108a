// Package cmd provides Cobra CLI commands for lectern.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lectern/internal/cli"
	"github.com/bnema/lectern/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	deckPath   string

	rootCmd = &cobra.Command{
		Use:   "lectern",
		Short: "A bilingual slide presenter for the terminal and the browser",
		Long: `Lectern - present bilingual (English/Vietnamese) slide decks.

Decks are YAML files of slides with paragraphs, lists, quotes, statistics,
key facts, charts, timelines and map markers. A Singapore deck is bundled.

Features:
  - Keyboard, mouse-drag and control navigation with wraparound
  - Search filter over titles, categories and content in both languages
  - Presenter mode with speaker notes
  - Autoplay with pause
  - One shareable URL per slide when served over HTTP
  - Export to a printable HTML page or Markdown

Use 'lectern present' to present in the terminal or 'lectern serve' to
present in a browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  configFile,
				DeckPath:    deckPath,
				Interactive: cmd.Name() == presentCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/lectern/config.toml)")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "deck YAML file (default: deck.path from config, else the bundled deck)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
