// Package storage persists saved games and play statistics in a local
// BadgerDB database.
package storage

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "varchess"

// DatabaseDir returns the platform data directory for the database,
// creating it if needed (e.g. ~/.local/share/varchess/db on Linux).
func DatabaseDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, appName, "db")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
