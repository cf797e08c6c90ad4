// Package storage persists magic multipliers so they can be shipped or reused
// instead of searched for at start-up.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscore"

// DataDirEnv overrides the platform data directory when set.
const DataDirEnv = "CHESSCORE_DATA_DIR"

// DataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/chesscore/
// - Linux: $XDG_DATA_HOME/chesscore/ or ~/.local/share/chesscore/
// - Windows: %APPDATA%/chesscore/
func DataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return ensureDir(dir)
	}

	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return ensureDir(filepath.Join(baseDir, appName))
}

// DatabaseDir returns the directory holding the magic store.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dataDir, "magics"))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
