package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName    = "fitday"
	dbFileName    = "fitday.db"
	backupDirName = "backups"
)

func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// DefaultBackupDir places backups next to the database when one is known and
// under the user config dir otherwise.
func DefaultBackupDir(dbPath string) (string, error) {
	if dbPath != "" {
		return filepath.Join(filepath.Dir(dbPath), backupDirName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, backupDirName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
