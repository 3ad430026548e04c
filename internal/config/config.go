package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
)

// ThemeName names the initial color mode.
type ThemeName string

// ThemeName values.
const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// DetailMode names the browser detail policy on category changes.
type DetailMode string

// DetailMode values.
const (
	DetailClose  DetailMode = "close"
	DetailRetain DetailMode = "retain"
)

// DefaultRevealThreshold is the visible ratio that reveals a section.
const DefaultRevealThreshold = 0.1

// ErrReservedKey reports a key override that collides with a fixed binding.
var ErrReservedKey = errors.New("key is reserved")

// reservedKeys maps every fixed TUI key onto the action it triggers.
var reservedKeys = map[string]string{
	"q": "quit", "ctrl+c": "quit",
	"r": "reload",
	"?": "help",
	"k": "scroll up", "up": "scroll up",
	"j": "scroll down", "down": "scroll down",
	"pgup": "page up", "b": "page up",
	"pgdown": "page down", "space": "page down",
	"g": "top", "home": "top",
	"G": "bottom", "shift+g": "bottom", "end": "bottom",
	"1": "jump", "2": "jump", "3": "jump", "4": "jump", "5": "jump", "6": "jump", "7": "jump",
	"tab": "focus next", "shift+tab": "focus back",
	"[": "previous filter", "]": "next filter",
	"h": "previous card", "left": "previous card",
	"l": "next card", "right": "next card",
	"enter": "open details",
	"x":     "close details",
	"esc":   "close overlay",
}

// ReservedKeys returns the fixed keys that overrides may not use.
func ReservedKeys() []string {
	out := make([]string, 0, len(reservedKeys))
	for key := range reservedKeys {
		out = append(out, key)
	}
	return out
}

// Config holds every user-tunable setting.
type Config struct {
	Content ContentConfig `toml:"content"`
	UI      UIConfig      `toml:"ui"`
	Browser BrowserConfig `toml:"browser"`
	Reveal  RevealConfig  `toml:"reveal"`
	Logging LoggingConfig `toml:"logging"`
	Keys    KeyConfig     `toml:"keys"`
}

// ContentConfig selects the portfolio document.
type ContentConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds rendering preferences.
type UIConfig struct {
	Theme        ThemeName `toml:"theme"`
	SmoothScroll bool      `toml:"smooth_scroll"`
}

// BrowserConfig holds filter/detail behavior.
type BrowserConfig struct {
	DetailOnFilter DetailMode `toml:"detail_on_filter"`
}

// RevealConfig holds reveal tuning.
type RevealConfig struct {
	Threshold float64 `toml:"threshold"`
}

// LoggingConfig holds runtime log settings.
type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig controls the dev-mode log file sink.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// KeyConfig holds key overrides; empty values keep the defaults.
type KeyConfig struct {
	ToggleTheme string `toml:"toggle_theme"`
	Menu        string `toml:"menu"`
	CopyLink    string `toml:"copy_link"`
	Resume      string `toml:"resume"`
}

// Default returns the built-in configuration.
func Default(contentPath string) Config {
	return Config{
		Content: ContentConfig{
			Path: contentPath,
		},
		UI: UIConfig{
			Theme:        ThemeDark,
			SmoothScroll: true,
		},
		Browser: BrowserConfig{
			DetailOnFilter: DetailClose,
		},
		Reveal: RevealConfig{
			Threshold: DefaultRevealThreshold,
		},
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
				Dir:     ".folio/log",
			},
		},
		Keys: KeyConfig{
			ToggleTheme: "t",
			Menu:        "m",
			CopyLink:    "y",
			Resume:      "d",
		},
	}
}

// Load reads path over defaults; a missing or empty file keeps the defaults.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	switch ThemeName(strings.ToLower(strings.TrimSpace(string(c.UI.Theme)))) {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid ui.theme: %q", c.UI.Theme)
	}

	switch DetailMode(strings.ToLower(strings.TrimSpace(string(c.Browser.DetailOnFilter)))) {
	case DetailClose, DetailRetain:
	default:
		return fmt.Errorf("invalid browser.detail_on_filter: %q", c.Browser.DetailOnFilter)
	}

	if c.Reveal.Threshold <= 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal.threshold must be in (0, 1], got %v", c.Reveal.Threshold)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.DevFile.Enabled && strings.TrimSpace(c.Logging.DevFile.Dir) == "" {
		return errors.New("logging.dev_file.dir is required when the dev file is enabled")
	}

	seen := map[string]string{}
	for name, raw := range map[string]string{
		"toggle_theme": c.Keys.ToggleTheme,
		"menu":         c.Keys.Menu,
		"copy_link":    c.Keys.CopyLink,
		"resume":       c.Keys.Resume,
	} {
		for _, key := range strings.Split(raw, ",") {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			if action, ok := reservedKeys[key]; ok {
				return fmt.Errorf("keys.%s %q is bound to %s: %w", name, key, action, ErrReservedKey)
			}
			if other, ok := seen[key]; ok && other != name {
				return fmt.Errorf("keys.%s reuses %q already bound by keys.%s", name, key, other)
			}
			seen[key] = name
		}
	}

	return nil
}

// normalizeKey folds one key spec the way the TUI key map parses it.
func normalizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	if utf8.RuneCountInString(key) > 1 {
		key = strings.ToLower(key)
	}
	return key
}

// normalize lowercases enumerations and trims paths.
func (c *Config) normalize() {
	c.Content.Path = strings.TrimSpace(c.Content.Path)
	c.UI.Theme = ThemeName(strings.ToLower(strings.TrimSpace(string(c.UI.Theme))))
	c.Browser.DetailOnFilter = DetailMode(strings.ToLower(strings.TrimSpace(string(c.Browser.DetailOnFilter))))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.DevFile.Dir = strings.TrimSpace(c.Logging.DevFile.Dir)
}

// Save writes cfg to path as TOML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureConfigDir creates the parent directory for path.
func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
