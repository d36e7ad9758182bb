package fitday

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/app"
	"github.com/saadjs/fitday/internal/service"
)

var (
	backupDir   string
	restoreFile string
	restoreYes  bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, list and restore snapshot backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a snapshot backup with a sha256 checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			dir, err := resolveBackupDir(s)
			if err != nil {
				return err
			}
			info, err := s.store.CreateBackup(dir)
			if err != nil {
				return err
			}
			out(cmd, "Backup created: %s\n", info.Path)
			out(cmd, "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir := backupDir
		if dir == "" {
			if dir, err = app.DefaultBackupDir(cfg.DBPath); err != nil {
				return err
			}
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		out(cmd, "FILE\tSIZE\tCREATED\tCHECKSUM\n")
		for _, it := range items {
			out(cmd, "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all data with a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		if !restoreYes {
			return fmt.Errorf("restore replaces all current data; pass --yes to confirm")
		}
		return withStore(func(s *session) error {
			if err := s.store.RestoreBackup(restoreFile); err != nil {
				return err
			}
			out(cmd, "Restored backup from %s\n", restoreFile)
			return nil
		})
	},
}

func resolveBackupDir(s *session) (string, error) {
	if backupDir != "" {
		return backupDir, nil
	}
	return app.DefaultBackupDir(s.cfg.DBPath)
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: alongside DB under backups/)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: alongside DB under backups/)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup .json file path")
	backupRestoreCmd.Flags().BoolVar(&restoreYes, "yes", false, "Confirm replacing current data")
}
