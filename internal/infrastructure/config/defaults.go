package config

// Default configuration constants
const (
	defaultAutoplayIntervalMs = 10000
	defaultSwipeThresholdPx   = 50
	defaultCellWidthPx        = 8
	defaultHistoryLimit       = 100

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultServerAddr = "127.0.0.1:7331"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

func getDefaultExportDir() string {
	dir, err := GetExportDir()
	if err != nil {
		return ""
	}
	return dir
}

// DefaultConfig returns the default configuration values for lectern.
func DefaultConfig() *Config {
	return &Config{
		Presentation: PresentationConfig{
			AutoplayIntervalMs: defaultAutoplayIntervalMs,
			SwipeThresholdPx:   defaultSwipeThresholdPx,
			CellWidthPx:        defaultCellWidthPx,
			Language:           "both",
			HistoryLimit:       defaultHistoryLimit,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
		},
		Appearance: AppearanceConfig{
			// Singapore red on a dark slate
			Palette: ColorPalette{
				Background: "#1b1d23",
				Text:       "#e6e6e6",
				Muted:      "#8a8f98",
				Accent:     "#ef3340",
				Highlight:  "#f5c542",
				Border:     "#3a3f4b",
			},
		},
		Export: ExportConfig{
			Dir:    getDefaultExportDir(),
			Format: ExportFormatHTML,
		},
		Server: ServerConfig{
			Addr: defaultServerAddr,
		},
	}
}
