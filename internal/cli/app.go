// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/domain/build"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/infrastructure/deckfile"
	"github.com/bnema/lectern/internal/infrastructure/export"
	"github.com/bnema/lectern/internal/logging"
)

// Options selects where the app reads its inputs from.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// DeckPath overrides deck.path from the config.
	DeckPath string
	// Interactive sends logs to a rotated file instead of stderr, since
	// the terminal belongs to the presenter.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	deckPath   string
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, cleanup, err := newLogger(cfg.Logging, opts.Interactive)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.ConfigFile()).Msg("config loaded")

	deckPath := opts.DeckPath
	if deckPath == "" {
		deckPath = cfg.Deck.Path
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		deckPath:   deckPath,
		ctx:        ctx,
		logCleanup: cleanup,
	}, nil
}

func newManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

func newLogger(lc config.LoggingConfig, interactive bool) (zerolog.Logger, func(), error) {
	cfg := logging.Config{
		Level:      logging.ParseLevel(lc.Level),
		Format:     lc.Format,
		TimeFormat: "15:04:05",
	}
	if !interactive {
		return logging.New(cfg), func() {}, nil
	}

	logger, cleanup, err := logging.NewWithFile(cfg, logging.FileConfig{
		Enabled:    lc.EnableFileLog,
		LogDir:     lc.LogDir,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		return zerolog.Nop(), func() {}, nil
	}
	return logger, cleanup, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DeckPath returns the deck file in use, empty for the bundled deck.
func (a *App) DeckPath() string {
	return a.deckPath
}

// OpenDeck loads the configured deck.
func (a *App) OpenDeck() (*deckfile.Deck, error) {
	d, err := deckfile.Open(a.ctx, a.deckPath)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		d.Title = "Slides"
	}
	return d, nil
}

// Language resolves a --lang flag value against the configured default.
func (a *App) Language(flag string) (entity.Language, error) {
	if flag == "" {
		return a.Config.Presentation.LanguageMode(), nil
	}
	for _, l := range entity.Languages() {
		if strings.EqualFold(flag, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q (use: en, vi, both)", flag)
}

// NewPrinter builds an exporter from the config. Empty arguments keep
// the configured values.
func (a *App) NewPrinter(dir, format string, opts export.Options) (*export.Printer, error) {
	if dir == "" {
		dir = a.Config.Export.Dir
	}
	f := export.Format(a.Config.Export.Format)
	if format != "" {
		f = export.Format(strings.ToLower(format))
		if f == "md" {
			f = export.FormatMarkdown
		}
	}
	switch f {
	case export.FormatHTML, export.FormatMarkdown:
	default:
		return nil, fmt.Errorf("unsupported export format %q (use: html, markdown)", format)
	}
	if dir == "" {
		return nil, errors.New("no export directory configured")
	}
	return export.NewPrinter(dir, f, opts), nil
}
