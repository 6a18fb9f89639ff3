package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eftm-project/eftm/internal/logging"
	"github.com/eftm-project/eftm/internal/shell"
)

const (
	configDirName   = ".eftm"
	configFileName  = "config.json"
	defaultLogName  = "eftm.log"
	ThemeLight      = "light"
	ThemeDark       = "dark"
	envTheme        = "EFTM_THEME"
	envLogLevel     = "EFTM_LOG_LEVEL"
	envMemoryAlert  = "EFTM_MEMORY_ALERT_PERCENT"
	maxAlertPercent = 100
)

var (
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidStartView = errors.New("invalid start_view")

	log = logging.New("config")
)

// Config stores user settings for eftm.
type Config struct {
	Theme              string            `json:"theme" yaml:"theme"`
	LogLevel           string            `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFile            string            `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	MemoryAlertPercent float64           `json:"memory_alert_percent,omitempty" yaml:"memory_alert_percent,omitempty"`
	Keybindings        map[string]string `json:"keybindings,omitempty" yaml:"keybindings,omitempty"`
	// StartView is the nav key ("map", "wiki", ...) selected at launch.
	StartView string `json:"start_view,omitempty" yaml:"start_view,omitempty"`
}

// Dir returns the directory holding the config file and default log.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the config file to use when none is given explicitly.
// An existing config.yaml or config.yml wins over the JSON default.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads path (or ConfigPath when empty), applies env overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Debug("config file missing, using defaults", "path", path)
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	return Normalize(cfg)
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg Config) error {
	cfg, err := Normalize(cfg)
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := marshal(path, cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Normalize fills defaults and validates every field.
func Normalize(cfg Config) (Config, error) {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	switch cfg.Theme {
	case "":
		cfg.Theme = ThemeLight
	case ThemeLight, ThemeDark:
	default:
		return Config{}, fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidTheme, cfg.Theme, ThemeLight, ThemeDark)
	}

	if cfg.MemoryAlertPercent < 0 || cfg.MemoryAlertPercent > maxAlertPercent {
		return Config{}, fmt.Errorf("memory_alert_percent must be within 0..%d, got %v", maxAlertPercent, cfg.MemoryAlertPercent)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if v := strings.TrimSpace(cfg.StartView); v == "" {
		cfg.StartView = shell.MapView.String()
	} else if item, ok := shell.ParseNavItem(v); ok {
		cfg.StartView = item.String()
	} else {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidStartView, v)
	}

	logFile := strings.TrimSpace(cfg.LogFile)
	if logFile == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		logFile = filepath.Join(dir, defaultLogName)
	}
	expanded, err := expandHome(logFile)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log_file: %w", err)
	}
	cfg.LogFile = filepath.Clean(expanded)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envTheme)); v != "" {
		switch theme := strings.ToLower(v); theme {
		case ThemeLight, ThemeDark:
			cfg.Theme = theme
		default:
			log.Warn("ignore invalid env override", "name", envTheme, "value", v)
		}
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(envMemoryAlert)); v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil || pct < 0 || pct > maxAlertPercent {
			log.Warn("ignore invalid env override", "name", envMemoryAlert, "value", v, "error", err)
		} else {
			cfg.MemoryAlertPercent = pct
		}
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func marshal(path string, cfg Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(cfg)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
