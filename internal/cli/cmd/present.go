package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/lectern/internal/cli/model"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/infrastructure/export"
	"github.com/bnema/lectern/internal/logging"
)

var (
	presentAutoplay bool
	presentLang     string
	presentNoWatch  bool
)

// errNotInteractive is returned when stdin or stdout is not a terminal.
var errNotInteractive = errors.New("present needs an interactive terminal (try 'lectern serve' or 'lectern export')")

var presentCmd = &cobra.Command{
	Use:   "present [slug]",
	Short: "Present the deck in the terminal",
	Long: `Present the deck full screen in the terminal.

Start at the slide with the given slug, or at the first slide. An unknown
slug starts at the first slide.

Keys:
  →/space, ←        next, previous (wraps around)
  home, end         first, last
  ctrl+p            toggle presenter mode (speaker notes)
  ctrl+f or /       search, enter keeps the filter, esc closes
  a, p              toggle autoplay, pause autoplay
  alt+←, alt+→      back and forward through visited slides
  ctrl+s            export the deck
  l                 cycle language (en, vi, both)
  ?                 help
  q, ctrl+c         quit

Dragging with the left mouse button swipes between slides.

Examples:
  lectern present                  # Start at the first slide
  lectern present economy          # Start at the economy slide
  lectern present --autoplay       # Start with autoplay on`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresent,
}

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().BoolVarP(&presentAutoplay, "autoplay", "a", false, "start with autoplay enabled")
	presentCmd.Flags().StringVarP(&presentLang, "lang", "l", "", "language: en, vi, both (default from config)")
	presentCmd.Flags().BoolVar(&presentNoWatch, "no-watch", false, "do not reload the config file when it changes")
}

func runPresent(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotInteractive
	}

	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	lang, err := app.Language(presentLang)
	if err != nil {
		return err
	}
	cfg := app.Config
	cfg.Presentation.Language = string(lang)

	d, err := app.OpenDeck()
	if err != nil {
		return err
	}
	printer, err := app.NewPrinter("", "", export.Options{Title: d.Title, Language: lang})
	if err != nil {
		return err
	}

	slug := ""
	if len(args) > 0 {
		slug = args[0]
	}

	bridge := model.NewProgramBridge()
	m, err := model.NewPresenterModel(ctx, model.PresenterModelConfig{
		Store:         d.Store,
		DeckTitle:     d.Title,
		InitialSlug:   slug,
		Config:        cfg,
		Printer:       printer,
		Bridge:        bridge,
		StartAutoplay: presentAutoplay,
	})
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	bridge.Bind(p)
	defer bridge.Unbind()

	if !presentNoWatch {
		app.Manager.OnConfigChange(func(c *config.Config) {
			// An explicit --lang wins over the file.
			if presentLang != "" {
				c.Presentation.Language = string(lang)
			}
			bridge.ConfigChanged(c)
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().Str("deck", d.Title).Str("start", slug).Msg("presenting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}
	return nil
}
