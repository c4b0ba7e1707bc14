package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. MEDIAPLAN_THEME.
const EnvPrefix = "MEDIAPLAN_"

const (
	defaultTheme       = "Classic"
	defaultChartHeight = 10
	defaultInitialRows = 1
	maxInitialRows     = 20
)

type UIConfig struct {
	ChartHeight int  `json:"chart_height" env:"CHART_HEIGHT"`
	InitialRows int  `json:"initial_rows" env:"INITIAL_ROWS"`
	HideCharts  bool `json:"hide_charts" env:"HIDE_CHARTS"`
}

// LogConfig controls the debug logger, which only writes when MEDIAPLAN_DEBUG
// is set. Level is one of debug, info, warn or error; Format is text or json.
// Unknown values fall back to info and text.
type LogConfig struct {
	Level  string `json:"level" env:"LEVEL"`
	Format string `json:"format" env:"FORMAT"`
}

// Config holds UI preferences only. Channel data is never written to disk.
type Config struct {
	Theme   string    `json:"theme" env:"THEME"`
	Palette []string  `json:"palette,omitempty" env:"PALETTE" envSeparator:","`
	UI      UIConfig  `json:"ui"`
	Log     LogConfig `json:"log" envPrefix:"LOG_"`
}

func DefaultConfig() Config {
	return Config{
		Theme: defaultTheme,
		UI: UIConfig{
			ChartHeight: defaultChartHeight,
			InitialRows: defaultInitialRows,
		},
		Log: LogConfig{Level: "debug", Format: "text"},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "mediaplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mediaplan")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the settings file at path, falling back to defaults when it
// does not exist, then applies MEDIAPLAN_* environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s environment: %w", EnvPrefix, err)
	}
	return normalize(cfg), nil
}

// loadFile reads only what is on disk. Writers start from it so environment
// overrides never end up in the file.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return normalize(cfg), nil
}

func normalize(cfg Config) Config {
	if cfg.UI.ChartHeight <= 0 {
		cfg.UI.ChartHeight = defaultChartHeight
	}
	if cfg.UI.InitialRows <= 0 {
		cfg.UI.InitialRows = defaultInitialRows
	}
	if cfg.UI.InitialRows > maxInitialRows {
		cfg.UI.InitialRows = maxInitialRows
	}
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	palette := cfg.Palette[:0:0]
	for _, c := range cfg.Palette {
		if c = strings.TrimSpace(c); c != "" {
			palette = append(palette, c)
		}
	}
	cfg.Palette = palette
	return cfg
}

// SlogLevel converts the textual level into a slog.Level.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat returns "json" or "text".
func (c LogConfig) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveTheme persists a theme name into the config file (read-modify-write).
func SaveTheme(theme string) error {
	return SaveThemeTo(ConfigPath(), theme)
}

func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := loadFile(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
