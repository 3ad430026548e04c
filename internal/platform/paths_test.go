package platform

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestPathsForLinuxWithXDG verifies behavior for the covered scenario.
func TestPathsForLinuxWithXDG(t *testing.T) {
	p, err := PathsFor("linux", map[string]string{
		"XDG_CONFIG_HOME": "/xdg/config",
		"XDG_DATA_HOME":   "/xdg/data",
	}, "/fallback/config", "/fallback/data", "folio")
	if err != nil {
		t.Fatalf("PathsFor() error = %v", err)
	}
	wantConfig := filepath.Join("/xdg/config", "folio", "config.toml")
	wantContent := filepath.Join("/xdg/data", "folio", "content.toml")
	if p.ConfigPath != wantConfig {
		t.Fatalf("unexpected config path %q", p.ConfigPath)
	}
	if p.ContentPath != wantContent {
		t.Fatalf("unexpected content path %q", p.ContentPath)
	}
	if p.DataDir != filepath.Join("/xdg/data", "folio") {
		t.Fatalf("unexpected data dir %q", p.DataDir)
	}
}

// TestPathsForWindowsUsesAppData verifies behavior for the covered scenario.
func TestPathsForWindowsUsesAppData(t *testing.T) {
	p, err := PathsFor("windows", map[string]string{
		"APPDATA":      `C:\Users\me\AppData\Roaming`,
		"LOCALAPPDATA": `C:\Users\me\AppData\Local`,
	}, `C:\fallback\config`, `C:\fallback\data`, "folio")
	if err != nil {
		t.Fatalf("PathsFor() error = %v", err)
	}

	wantConfig := filepath.Join(`C:\Users\me\AppData\Roaming`, "folio", "config.toml")
	wantContent := filepath.Join(`C:\Users\me\AppData\Local`, "folio", "content.toml")
	if p.ConfigPath != wantConfig {
		t.Fatalf("unexpected config path %q", p.ConfigPath)
	}
	if p.ContentPath != wantContent {
		t.Fatalf("unexpected content path %q", p.ContentPath)
	}
}

// TestPathsForEmptyDirsFails verifies behavior for the covered scenario.
func TestPathsForEmptyDirsFails(t *testing.T) {
	_, err := PathsFor("darwin", nil, "", "/tmp/data", "folio")
	if !errors.Is(err, ErrEmptyBaseDir) {
		t.Fatalf("expected ErrEmptyBaseDir, got %v", err)
	}
}

// TestPathsForEmptyAppNameFails verifies behavior for the covered scenario.
func TestPathsForEmptyAppNameFails(t *testing.T) {
	_, err := PathsFor("linux", nil, "/cfg", "/data", "  ")
	if !errors.Is(err, ErrEmptyAppName) {
		t.Fatalf("expected ErrEmptyAppName, got %v", err)
	}
}

// TestPathsForDarwinFallback verifies behavior for the covered scenario.
func TestPathsForDarwinFallback(t *testing.T) {
	p, err := PathsFor("darwin", map[string]string{
		"XDG_CONFIG_HOME": "/ignored",
		"XDG_DATA_HOME":   "/ignored",
	}, "/Users/me/Library/Application Support", "/Users/me/Library/Application Support", "folio")
	if err != nil {
		t.Fatalf("PathsFor() error = %v", err)
	}
	wantConfig := filepath.Join("/Users/me/Library/Application Support", "folio", "config.toml")
	if p.ConfigPath != wantConfig {
		t.Fatalf("unexpected config path %q", p.ConfigPath)
	}
}

// TestPathsForUnknownFallback verifies behavior for the covered scenario.
func TestPathsForUnknownFallback(t *testing.T) {
	p, err := PathsFor("freebsd", map[string]string{}, "/cfg", "/data", "folio-dev")
	if err != nil {
		t.Fatalf("PathsFor() error = %v", err)
	}
	if p.ConfigPath != filepath.Join("/cfg", "folio-dev", "config.toml") {
		t.Fatalf("unexpected config path %q", p.ConfigPath)
	}
	if p.DataDir != filepath.Join("/data", "folio-dev") {
		t.Fatalf("unexpected data dir %q", p.DataDir)
	}
}

// TestAppDirName verifies default naming and the dev-mode suffix.
func TestAppDirName(t *testing.T) {
	cases := []struct {
		opts Options
		want string
	}{
		{opts: Options{}, want: "folio"},
		{opts: Options{AppName: "  "}, want: "folio"},
		{opts: Options{AppName: "site", DevMode: true}, want: "site-dev"},
		{opts: Options{DevMode: true}, want: "folio-dev"},
	}
	for _, tc := range cases {
		if got := appDirName(tc.opts); got != tc.want {
			t.Fatalf("appDirName(%+v) = %q, want %q", tc.opts, got, tc.want)
		}
	}
}
