package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/infrastructure/export"
)

var (
	exportFormat string
	exportOut    string
	exportNotes  bool
	exportLang   string
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"print"},
	Short:   "Export the deck to a printable file",
	Long: `Write every slide to one printable document.

HTML output opens in any browser and prints one slide per page. Markdown
output is plain text suitable for handouts.

Examples:
  lectern export                         # Use export.format and export.dir
  lectern export --format markdown       # Markdown instead of HTML
  lectern export --notes --out ./print   # Include speaker notes`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: html, markdown (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportNotes, "notes", false, "include speaker notes")
	exportCmd.Flags().StringVarP(&exportLang, "lang", "l", "", "language: en, vi, both (default from config)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	lang, err := app.Language(exportLang)
	if err != nil {
		return err
	}
	d, err := app.OpenDeck()
	if err != nil {
		return err
	}
	printer, err := app.NewPrinter(exportOut, exportFormat, export.Options{
		Title:        d.Title,
		Language:     lang,
		SpeakerNotes: exportNotes,
	})
	if err != nil {
		return err
	}

	path, err := usecase.NewPrintDeckUseCase(d.Store, printer).Execute(app.Ctx())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderExported(path))
	return nil
}
