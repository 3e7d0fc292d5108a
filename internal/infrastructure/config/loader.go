// Package config loads lectern settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/lectern/config.toml.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager bound to an explicit config file.
// The file is created with defaults on first Load when it does not exist.
func NewManagerForFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, errors.New("config file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// LECTERN_PRESENTATION_AUTOPLAY_INTERVAL_MS, LECTERN_SERVER_ADDR, ...
	v.SetEnvPrefix("LECTERN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "LECTERN_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LECTERN_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LECTERN_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LECTERN_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.viper.ConfigFileUsed(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.viper.ConfigFileUsed(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Presentation.Language = strings.ToLower(strings.TrimSpace(config.Presentation.Language))

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch strings.ToLower(strings.TrimSpace(string(config.Export.Format))) {
	case "", string(ExportFormatHTML):
		config.Export.Format = ExportFormatHTML
	case string(ExportFormatMarkdown), "md":
		config.Export.Format = ExportFormatMarkdown
	}

	config.Deck.Path = strings.TrimSpace(config.Deck.Path)
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path to the configuration file being used.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the current defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPresentationDefaults(defaults)
	m.viper.SetDefault("deck.path", defaults.Deck.Path)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("export.dir", defaults.Export.Dir)
	m.viper.SetDefault("export.format", string(defaults.Export.Format))
	m.viper.SetDefault("server.addr", defaults.Server.Addr)
}

func (m *Manager) setPresentationDefaults(defaults *Config) {
	m.viper.SetDefault("presentation.autoplay_interval_ms", defaults.Presentation.AutoplayIntervalMs)
	m.viper.SetDefault("presentation.swipe_threshold_px", defaults.Presentation.SwipeThresholdPx)
	m.viper.SetDefault("presentation.cell_width_px", defaults.Presentation.CellWidthPx)
	m.viper.SetDefault("presentation.language", defaults.Presentation.Language)
	m.viper.SetDefault("presentation.history_limit", defaults.Presentation.HistoryLimit)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.high_contrast", defaults.Appearance.HighContrast)
	for name, value := range defaults.Appearance.Palette.asMap() {
		m.viper.SetDefault("appearance.palette."+name, value)
	}
}
