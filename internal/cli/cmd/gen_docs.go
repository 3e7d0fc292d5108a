package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/lectern/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

By default, man pages are installed to ~/.local/share/man/man1/ so that
'man lectern' works. You may need to run 'mandb' to update the index.

Examples:
  lectern gen-docs                      # Install man pages
  lectern gen-docs --format markdown    # Generate markdown into ./docs
  lectern gen-docs --output ./man       # Generate into a local directory`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, err := docsDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Keep output reproducible
	rootCmd.DisableAutoGenTag = true

	out := cmd.OutOrStdout()
	switch genDocsFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "LECTERN",
			Section: "1",
			Source:  "lectern " + buildInfo.Version,
			Manual:  "Lectern Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Fprintf(out, "Installed man pages to %s\n", outputDir)
		fmt.Fprintln(out, "Run 'mandb' if 'man lectern' doesn't work immediately.")
		listGenerated(out, outputDir, ".1")
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		fmt.Fprintf(out, "Generated markdown docs in %s\n", outputDir)
		listGenerated(out, outputDir, ".md")
	}
	return nil
}

// docsDir resolves the output directory for format.
func docsDir(format, override string) (string, error) {
	switch format {
	case "man", "markdown":
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if override != "" {
		return override, nil
	}
	if format == "markdown" {
		return "./docs", nil
	}
	dir, err := config.GetManDir()
	if err != nil {
		return "", fmt.Errorf("resolve man directory: %w", err)
	}
	return dir, nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
