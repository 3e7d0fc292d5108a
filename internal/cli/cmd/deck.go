package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/infrastructure/deckfile"
)

var deckLang string

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and validate decks",
	Long: `Inspect and validate slide decks.

Examples:
  lectern deck list                    # List the slides of the active deck
  lectern deck validate talk.yaml      # Check a deck file
  lectern deck schema > deck.json      # JSON Schema for editor completion`,
}

var deckListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the slides of the deck",
	Args:    cobra.NoArgs,
	RunE:    runDeckList,
}

var deckValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck file",
	Long: `Parse a deck file and check it: slugs must be unique and URL safe,
content blocks must have a known type, and the deck must not be empty.

Without a path, the active deck (--deck or deck.path) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeckValidate,
}

var deckSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the deck file JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := deckfile.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd, deckValidateCmd, deckSchemaCmd)
	deckListCmd.Flags().StringVarP(&deckLang, "lang", "l", "", "language: en, vi, both (default from config)")
}

func runDeckList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	lang, err := app.Language(deckLang)
	if err != nil {
		return err
	}
	d, err := app.OpenDeck()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.Theme.Title.Render(d.Title))
	fmt.Fprintln(out, styles.RenderDeckTable(app.Theme, d.Store.All(), lang))
	return nil
}

func runDeckValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.DeckPath()
	if len(args) > 0 {
		path = args[0]
	}
	name := path
	if name == "" {
		name = "bundled deck"
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	d, err := deckfile.Open(app.Ctx(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderer.RenderValid(name))
	fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("  %d slides", d.Store.Count())))
	return nil
}
