package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default("/tmp/content.toml")
	if cfg.Content.Path != "/tmp/content.toml" {
		t.Fatalf("unexpected content path %q", cfg.Content.Path)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Fatalf("unexpected theme %q", cfg.UI.Theme)
	}
	if !cfg.UI.SmoothScroll {
		t.Fatal("expected smooth scroll enabled by default")
	}
	if cfg.Browser.DetailOnFilter != DetailClose {
		t.Fatalf("unexpected detail mode %q", cfg.Browser.DetailOnFilter)
	}
	if cfg.Reveal.Threshold != DefaultRevealThreshold {
		t.Fatalf("unexpected reveal threshold %v", cfg.Reveal.Threshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	defaults := Default("/tmp/content.toml")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), defaults)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Content.Path != defaults.Content.Path {
		t.Fatalf("expected default content path, got %q", cfg.Content.Path)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := Load(path, Default(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Fatalf("expected default theme, got %q", cfg.UI.Theme)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[content]
path = "/custom/portfolio.yaml"

[ui]
theme = "Light"
smooth_scroll = false

[browser]
detail_on_filter = "retain"

[reveal]
threshold = 0.25

[logging]
level = "debug"

[keys]
toggle_theme = "T"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path, Default("/tmp/default.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Content.Path != "/custom/portfolio.yaml" {
		t.Fatalf("unexpected content path %q", cfg.Content.Path)
	}
	if cfg.UI.Theme != ThemeLight {
		t.Fatalf("expected normalized light theme, got %q", cfg.UI.Theme)
	}
	if cfg.UI.SmoothScroll {
		t.Fatal("expected smooth scroll disabled from config override")
	}
	if cfg.Browser.DetailOnFilter != DetailRetain {
		t.Fatalf("unexpected detail mode %q", cfg.Browser.DetailOnFilter)
	}
	if cfg.Reveal.Threshold != 0.25 {
		t.Fatalf("unexpected threshold %v", cfg.Reveal.Threshold)
	}
	if cfg.Keys.ToggleTheme != "T" || cfg.Keys.Menu != "m" {
		t.Fatalf("expected partial key override, got %#v", cfg.Keys)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"theme":     "[ui]\ntheme = \"sepia\"\n",
		"detail":    "[browser]\ndetail_on_filter = \"keep\"\n",
		"threshold": "[reveal]\nthreshold = 0.0\n",
		"level":     "[logging]\nlevel = \"loud\"\n",
		"keys":      "[keys]\nmenu = \"t\"\n",
		"dev_file":  "[logging.dev_file]\nenabled = true\ndir = \"\"\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if _, err := Load(path, Default("")); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadRejectsReservedKeyOverrides(t *testing.T) {
	cases := map[string]string{
		"scroll": "[keys]\nmenu = \"j\"\n",
		"quit":   "[keys]\ntoggle_theme = \"q\"\n",
		"list":   "[keys]\ncopy_link = \"c, Enter\"\n",
		"space":  "[keys]\nresume = \"Space\"\n",
		"bottom": "[keys]\nmenu = \"G\"\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if _, err := Load(path, Default("")); !errors.Is(err, ErrReservedKey) {
			t.Fatalf("%s: expected ErrReservedKey, got %v", name, err)
		}
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[keys]\nmenu = \"f2, o\"\ntoggle_theme = \"T\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path, Default("")); err != nil {
		t.Fatalf("expected free keys to load, got %v", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\ntheme ="), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	_, err := Load(path, Default(""))
	if err == nil || !strings.Contains(err.Error(), "decode toml") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "folio", "config.toml")
	if err := EnsureConfigDir(path); err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("expected config dir created, err=%v", err)
	}
	if err := EnsureConfigDir("config.toml"); err != nil {
		t.Fatalf("EnsureConfigDir(relative) error = %v", err)
	}
}

// TestSaveRoundTrip verifies saved configs load back unchanged.
func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default("/tmp/content.toml")
	cfg.UI.Theme = ThemeLight
	cfg.Browser.DetailOnFilter = DetailRetain
	cfg.Reveal.Threshold = 0.25
	cfg.Keys.Menu = "o"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, Default(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != cfg {
		t.Fatalf("expected round trip %#v, got %#v", cfg, loaded)
	}

	cfg.Reveal.Threshold = 2
	if err := Save(path, cfg); err == nil {
		t.Fatal("expected invalid config to be rejected")
	}
}
