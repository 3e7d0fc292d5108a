package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/infrastructure/web"
	"github.com/bnema/lectern/internal/logging"
)

var (
	serveAddr string
	serveLang string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deck over HTTP",
	Long: `Serve the deck as web pages, one shareable URL per slide.

Routes:
  /slides/<slug>            a slide (?presenter=1 shows speaker notes)
  /print                    the whole deck as one printable page
  /api/slides               the slide list as JSON
  /api/slides/<slug>        one slide with its neighbours as JSON

Examples:
  lectern serve                     # Listen on server.addr from config
  lectern serve --addr :9000        # Listen on port 9000
  lectern serve --lang vi           # Vietnamese only`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVarP(&serveLang, "lang", "l", "", "language: en, vi, both (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	lang, err := app.Language(serveLang)
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = app.Config.Server.Addr
	}

	d, err := app.OpenDeck()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	server := web.NewServer(ctx, d.Store, web.Options{Title: d.Title, Language: lang})

	// Follow language changes in the config file unless --lang pinned it.
	if serveLang == "" {
		app.Manager.OnConfigChange(func(c *config.Config) {
			next := c.Presentation.LanguageMode()
			server.SetLanguage(next)
			log.Info().Str("language", string(next)).Msg("config reloaded")
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s on http://%s (Ctrl+C to stop)\n",
		app.Theme.Highlight.Render(styles.IconSlides),
		d.Title,
		displayAddr(addr),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx, addr)
	})
	return g.Wait()
}

// displayAddr fills in a host for addresses like ":8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
