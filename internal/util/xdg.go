package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetXDGDataDir returns the XDG data directory for cloudbill.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/cloudbill
func GetXDGDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "cloudbill"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "cloudbill"), nil
}

// DefaultDatabaseURL returns a local libsql file URL inside the data directory.
func DefaultDatabaseURL() (string, error) {
	dir, err := GetXDGDataDir()
	if err != nil {
		return "", err
	}
	return "file:" + filepath.Join(dir, "billing.db"), nil
}
