package config

import (
	"time"

	"github.com/bnema/lectern/internal/domain/entity"
)

// Config represents the complete configuration for lectern.
type Config struct {
	Presentation PresentationConfig `mapstructure:"presentation" yaml:"presentation" toml:"presentation"`
	// Deck selects the slide data. An empty path uses the embedded deck.
	Deck       DeckConfig       `mapstructure:"deck" yaml:"deck" toml:"deck"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	Export     ExportConfig     `mapstructure:"export" yaml:"export" toml:"export"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server" toml:"server"`
}

// PresentationConfig tunes the navigator and its input sources.
type PresentationConfig struct {
	AutoplayIntervalMs int `mapstructure:"autoplay_interval_ms" yaml:"autoplay_interval_ms" toml:"autoplay_interval_ms"`
	SwipeThresholdPx   int `mapstructure:"swipe_threshold_px" yaml:"swipe_threshold_px" toml:"swipe_threshold_px"`
	// CellWidthPx converts terminal cells to pixels for swipe detection.
	CellWidthPx int `mapstructure:"cell_width_px" yaml:"cell_width_px" toml:"cell_width_px"`
	// Language is "en", "vi" or "both".
	Language     string `mapstructure:"language" yaml:"language" toml:"language"`
	HistoryLimit int    `mapstructure:"history_limit" yaml:"history_limit" toml:"history_limit"`
}

// AutoplayInterval returns the autoplay period as a duration.
func (p PresentationConfig) AutoplayInterval() time.Duration {
	return time.Duration(p.AutoplayIntervalMs) * time.Millisecond
}

// LanguageMode returns the parsed language selection.
func (p PresentationConfig) LanguageMode() entity.Language {
	return entity.ParseLanguage(p.Language)
}

// DeckConfig points at an external deck file.
type DeckConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output, used by the interactive presenter
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}

// AppearanceConfig holds terminal rendering preferences.
type AppearanceConfig struct {
	Palette      ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette"`
	HighContrast bool         `mapstructure:"high_contrast" yaml:"high_contrast" toml:"high_contrast"`
}

// ColorPalette contains semantic color tokens for the terminal theme.
type ColorPalette struct {
	Background string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Text       string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Highlight  string `mapstructure:"highlight" yaml:"highlight" toml:"highlight" json:"highlight"`
	Border     string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

func (p ColorPalette) asMap() map[string]string {
	return map[string]string{
		"background": p.Background,
		"text":       p.Text,
		"muted":      p.Muted,
		"accent":     p.Accent,
		"highlight":  p.Highlight,
		"border":     p.Border,
	}
}

// ExportFormat selects the printed deck format.
type ExportFormat string

const (
	ExportFormatHTML     ExportFormat = "html"
	ExportFormatMarkdown ExportFormat = "markdown"
)

// ExportConfig controls where the print action writes.
type ExportConfig struct {
	Dir    string       `mapstructure:"dir" yaml:"dir" toml:"dir"`
	Format ExportFormat `mapstructure:"format" yaml:"format" toml:"format"`
}

// ServerConfig configures `lectern serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr"`
}
