// Package storage provides persistent storage for user preferences, the autosaved
// session and tracking statistics.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesstrack"

// HomeEnv overrides the data directory when set.
const HomeEnv = "CHESSTRACK_HOME"

// GetDataDir returns the data directory, creating it when missing:
// $CHESSTRACK_HOME when set, otherwise chesstrack/ under
// ~/Library/Application Support on macOS, %APPDATA% on Windows and
// $XDG_DATA_HOME (default ~/.local/share) elsewhere.
func GetDataDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return ensureDir(dir)
	}
	base, err := dataHome()
	if err != nil {
		return "", err
	}
	return ensureDir(base, appName)
}

// dataHome resolves the per-user application data root of the platform.
func dataHome() (string, error) {
	var env string
	var fallback []string
	switch runtime.GOOS {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	default:
		env, fallback = "XDG_DATA_HOME", []string{".local", "share"}
	}
	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func ensureDir(elem ...string) (string, error) {
	dir := filepath.Join(elem...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetArchivePath returns the path of the SQLite game archive.
func GetArchivePath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "archive.db"), nil
}

// GetDatabaseDir returns the BadgerDB directory.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(dataDir, "db")
}
