package config

import (
	"strconv"

	"github.com/bnema/lectern/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionPresentation = "Presentation"
	SectionDeck         = "Deck"
	SectionLogging      = "Logging"
	SectionAppearance   = "Appearance"
	SectionExport       = "Export"
	SectionServer       = "Server"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getPresentationKeys(defaults)...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "deck.path",
		Type:        "string",
		Default:     `""`,
		Description: "YAML deck file to present (empty uses the embedded Singapore deck)",
		Section:     SectionDeck,
	})
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getExportKeys(defaults)...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "server.addr",
		Type:        "string",
		Default:     defaults.Server.Addr,
		Description: "Listen address for lectern serve",
		Section:     SectionServer,
	})

	return keys
}

func (*SchemaProvider) getPresentationKeys(defaults *Config) []entity.ConfigKeyInfo {
	p := defaults.Presentation
	return []entity.ConfigKeyInfo{
		{
			Key:         "presentation.autoplay_interval_ms",
			Type:        "int",
			Default:     strconv.Itoa(p.AutoplayIntervalMs),
			Description: "Delay before autoplay advances to the next slide",
			Range:       ">0",
			Section:     SectionPresentation,
		},
		{
			Key:         "presentation.swipe_threshold_px",
			Type:        "int",
			Default:     strconv.Itoa(p.SwipeThresholdPx),
			Description: "Horizontal drag distance that counts as a swipe",
			Range:       ">0",
			Section:     SectionPresentation,
		},
		{
			Key:         "presentation.cell_width_px",
			Type:        "int",
			Default:     strconv.Itoa(p.CellWidthPx),
			Description: "Assumed pixel width of one terminal cell",
			Range:       ">0",
			Section:     SectionPresentation,
		},
		{
			Key:         "presentation.language",
			Type:        "string",
			Default:     p.Language,
			Description: "Which side of the bilingual text to show",
			Values:      languageNames(),
			Section:     SectionPresentation,
		},
		{
			Key:         "presentation.history_limit",
			Type:        "int",
			Default:     strconv.Itoa(p.HistoryLimit),
			Description: "Back/forward entries kept by the presenter",
			Range:       ">0",
			Section:     SectionPresentation,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Logging
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     l.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     l.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/lectern/logs",
			Description: "Directory for presenter log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(l.EnableFileLog),
			Description: "Write presenter logs to a rotated file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(l.MaxSizeMB),
			Description: "Rotate the log file past this size",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(l.MaxBackups),
			Description: "Rotated log files to keep (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     strconv.Itoa(l.MaxAgeDays),
			Description: "Delete rotated logs older than this (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	pal := defaults.Appearance.Palette
	colors := []struct{ name, value, desc string }{
		{"background", pal.Background, "Slide background"},
		{"text", pal.Text, "Body text"},
		{"muted", pal.Muted, "Secondary text and Vietnamese subtitles"},
		{"accent", pal.Accent, "Titles, badges and the active progress dot"},
		{"highlight", pal.Highlight, "Statistics and search matches"},
		{"border", pal.Border, "Panels and separators"},
	}
	keys := make([]entity.ConfigKeyInfo, 0, len(colors)+1)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "appearance.high_contrast",
		Type:        "bool",
		Default:     strconv.FormatBool(defaults.Appearance.HighContrast),
		Description: "Render with the high-contrast palette instead of appearance.palette",
		Section:     SectionAppearance,
	})
	for _, c := range colors {
		keys = append(keys, entity.ConfigKeyInfo{
			Key:         "appearance.palette." + c.name,
			Type:        "string",
			Default:     c.value,
			Description: c.desc,
			Section:     SectionAppearance,
		})
	}
	return keys
}

func (*SchemaProvider) getExportKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "export.dir",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/lectern/exports",
			Description: "Directory the print action writes to",
			Section:     SectionExport,
		},
		{
			Key:         "export.format",
			Type:        "string",
			Default:     string(defaults.Export.Format),
			Description: "Printed deck format",
			Values:      []string{string(ExportFormatHTML), string(ExportFormatMarkdown)},
			Section:     SectionExport,
		},
	}
}
