package config

import (
	"fmt"
	"strings"

	"github.com/bnema/lectern/internal/domain/entity"
	domainvalidation "github.com/bnema/lectern/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePresentation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateExport(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePresentation(config *Config) []string {
	p := config.Presentation
	var validationErrors []string
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePositive("presentation.autoplay_interval_ms", p.AutoplayIntervalMs)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePositive("presentation.swipe_threshold_px", p.SwipeThresholdPx)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePositive("presentation.cell_width_px", p.CellWidthPx)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePositive("presentation.history_limit", p.HistoryLimit)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateOneOf(
		"presentation.language", p.Language, languageNames()...)...)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidateOneOf(
		"logging.level", config.Logging.Level, "trace", "debug", "info", "warn", "error", "disabled")...)
	validationErrors = append(validationErrors, domainvalidation.ValidateOneOf(
		"logging.format", config.Logging.Format, "console", "json")...)
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when logging.enable_file_log is set")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	return domainvalidation.ValidatePaletteHex("appearance.palette", config.Appearance.Palette.asMap())
}

func validateExport(config *Config) []string {
	return domainvalidation.ValidateOneOf("export.format", string(config.Export.Format),
		string(ExportFormatHTML), string(ExportFormatMarkdown))
}

func validateServer(config *Config) []string {
	addr := config.Server.Addr
	if addr == "" {
		return []string{"server.addr cannot be empty"}
	}
	if !strings.Contains(addr, ":") {
		return []string{"server.addr must be host:port"}
	}
	return nil
}

func languageNames() []string {
	langs := entity.Languages()
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	return names
}
