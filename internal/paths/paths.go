// Package paths resolves the configuration directory and journal location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config and data roots.
const appDirName = "simplelist"

// JournalFileName is the journal database name inside the data directory.
const JournalFileName = "journal.db"

// Environment variable names for overrides.
const (
	EnvConfigDir = "SIMPLELIST_CONFIG_DIR"
	EnvJournal   = "SIMPLELIST_JOURNAL"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/simplelist (fallback ~/.config/simplelist)
// macOS:   ~/Library/Application Support/simplelist
// Windows: %APPDATA%/simplelist
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/simplelist (fallback ~/.local/share/simplelist)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultJournalPath returns the journal location inside DefaultDataDir.
func DefaultJournalPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, JournalFileName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > SIMPLELIST_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveJournalPath returns the journal database path following the
// precedence chain: flag > config value > SIMPLELIST_JOURNAL env.
// An empty result means journaling is disabled.
func ResolveJournalPath(flag, configValue string) (string, error) {
	for _, p := range []string{flag, configValue, os.Getenv(EnvJournal)} {
		if p != "" {
			return filepath.Abs(p)
		}
	}
	return "", nil
}
