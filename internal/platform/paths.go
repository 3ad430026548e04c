package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	defaultAppName  = "folio"
	configFileName  = "config.toml"
	contentFileName = "content.toml"
)

// ErrEmptyBaseDir reports a missing user config or data directory.
var ErrEmptyBaseDir = errors.New("empty base dirs")

// ErrEmptyAppName reports a blank application name.
var ErrEmptyAppName = errors.New("empty app name")

// Paths holds the resolved config and content locations.
type Paths struct {
	ConfigPath  string
	DataDir     string
	ContentPath string
}

// Options controls app naming for path resolution.
type Options struct {
	AppName string
	DevMode bool
}

// overrideVars names the environment variables that relocate config and data
// directories on each platform. Platforms without an entry keep the OS defaults.
var overrideVars = map[string]struct{ config, data string }{
	"linux":   {config: "XDG_CONFIG_HOME", data: "XDG_DATA_HOME"},
	"windows": {config: "APPDATA", data: "LOCALAPPDATA"},
}

// DefaultPaths returns the folio paths for the current user.
func DefaultPaths() (Paths, error) {
	return DefaultPathsWithOptions(Options{})
}

// DefaultPathsWithOptions resolves paths for the current user, OS, and environment.
func DefaultPathsWithOptions(opts Options) (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("user config dir: %w", err)
	}
	dataDir, err := userDataDir(runtime.GOOS, configDir)
	if err != nil {
		return Paths{}, err
	}

	env := map[string]string{}
	if vars, ok := overrideVars[runtime.GOOS]; ok {
		env[vars.config] = os.Getenv(vars.config)
		env[vars.data] = os.Getenv(vars.data)
	}
	return PathsFor(runtime.GOOS, env, configDir, dataDir, appDirName(opts))
}

// PathsFor resolves config and content locations for one platform and environment.
func PathsFor(goos string, env map[string]string, userConfigDir, userDataDir, appName string) (Paths, error) {
	if userConfigDir == "" || userDataDir == "" {
		return Paths{}, ErrEmptyBaseDir
	}
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return Paths{}, ErrEmptyAppName
	}

	configBase, dataBase := userConfigDir, userDataDir
	if vars, ok := overrideVars[goos]; ok {
		if v := strings.TrimSpace(env[vars.config]); v != "" {
			configBase = v
		}
		if v := strings.TrimSpace(env[vars.data]); v != "" {
			dataBase = v
		}
	}

	appDataDir := filepath.Join(dataBase, appName)
	return Paths{
		ConfigPath:  filepath.Join(configBase, appName, configFileName),
		DataDir:     appDataDir,
		ContentPath: filepath.Join(appDataDir, contentFileName),
	}, nil
}

// appDirName returns the per-app directory name, suffixed in dev mode.
func appDirName(opts Options) string {
	name := strings.TrimSpace(opts.AppName)
	if name == "" {
		name = defaultAppName
	}
	if opts.DevMode {
		name += "-dev"
	}
	return name
}

// userDataDir picks the base data directory; Linux uses ~/.local/share, other
// platforms share the config dir.
func userDataDir(goos, configDir string) (string, error) {
	if goos != "linux" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}
