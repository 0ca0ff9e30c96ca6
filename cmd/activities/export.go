package activities

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut         string
	exportActivity    string
	exportFrom        string
	exportTo          string
	exportMinDistance string
	exportMaxDistance string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered activities to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		filter, err := buildListFilter(exportActivity, exportFrom, exportTo, exportMinDistance, exportMaxDistance)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListActivities(sqldb, filter)
			if err != nil {
				return err
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export csv: %w", err)
			}
			defer f.Close()

			if err := service.WriteCSV(f, items); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", len(items), exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output CSV file path")
	addFilterFlags(exportCmd, &exportActivity, &exportFrom, &exportTo, &exportMinDistance, &exportMaxDistance)
}
