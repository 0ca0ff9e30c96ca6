package activities

import (
	"fmt"
	"strings"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore the activities database",
}

var backupOut string

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the database to a backup file with a sha256 checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(backupOut) == "" {
			return fmt.Errorf("--out is required")
		}
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		info, err := service.CreateBackup(path, backupOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up %s to %s (%d bytes, sha256 %s)\n", path, info.Path, info.SizeBytes, info.Checksum)
		return nil
	},
}

var (
	restoreIn    string
	restoreForce bool
)

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the database from a backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(restoreIn) == "" {
			return fmt.Errorf("--in is required")
		}
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(restoreIn, path, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", path, restoreIn)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupRestoreCmd.Flags().StringVar(&restoreIn, "in", "", "Backup file to restore from")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing database")
}
