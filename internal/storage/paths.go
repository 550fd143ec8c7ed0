// Package storage provides persistent storage for viewer preferences.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "chessheat"

// GetDataDir returns the per-user directory for the application, under
// os.UserConfigDir, creating it if needed.
func GetDataDir() (string, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	dataDir := filepath.Join(confDir, appName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory for the BadgerDB database. An empty
// dataDir selects GetDataDir.
func GetDatabaseDir(dataDir string) (string, error) {
	if dataDir == "" {
		var err error
		dataDir, err = GetDataDir()
		if err != nil {
			return "", err
		}
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", err
	}
	return dbDir, nil
}
