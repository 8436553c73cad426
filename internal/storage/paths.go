// Package storage persists user preferences and the game in progress.
package storage

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessplay"

// baseDataDir returns the per-user application data root for goos:
//   - darwin: ~/Library/Application Support
//   - windows: %APPDATA%, else ~/AppData/Roaming
//   - others: $XDG_DATA_HOME, else ~/.local/share
func baseDataDir(goos string) (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch goos {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
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

// ensureDir creates dir and its parents if needed.
func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDataDir returns the platform-specific data directory for the application,
// creating it if needed.
func GetDataDir() (string, error) {
	base, err := baseDataDir(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(base, appName))
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir, err := ensureDir(filepath.Join(dataDir, "db"))
	if err != nil {
		return "", err
	}
	log.Printf("[STORAGE] Database directory: %s", dbDir)
	return dbDir, nil
}

// FindConfigFile returns the settings file to load: name in the working
// directory if present, otherwise name in the data directory. The returned
// path need not exist.
func FindConfigFile(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return name
	}
	return filepath.Join(dataDir, name)
}
