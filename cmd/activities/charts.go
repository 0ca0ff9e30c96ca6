package activities

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KojotMaciek/activitiesmonitor/internal/charts"
	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

var (
	chartsOut         string
	chartsOpen        bool
	chartsActivity    string
	chartsFrom        string
	chartsTo          string
	chartsMinDistance string
	chartsMaxDistance string
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render charts for the filtered activities to an HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(chartsOut) == "" {
			return fmt.Errorf("--out is required")
		}
		filter, err := buildListFilter(chartsActivity, chartsFrom, chartsTo, chartsMinDistance, chartsMaxDistance)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListActivities(sqldb, filter)
			if err != nil {
				return err
			}
			summary := service.Summarize(items)

			f, err := os.Create(chartsOut)
			if err != nil {
				return fmt.Errorf("create charts file: %w", err)
			}
			defer f.Close()

			if err := charts.Render(f, summary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered charts for %d record(s) to %s\n", len(items), chartsOut)

			if chartsOpen {
				abs, err := filepath.Abs(chartsOut)
				if err != nil {
					return fmt.Errorf("resolve charts path: %w", err)
				}
				if err := browser.OpenURL("file://" + abs); err != nil {
					return fmt.Errorf("open charts in browser: %w", err)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVar(&chartsOut, "out", "activity_charts.html", "Output HTML file path")
	chartsCmd.Flags().BoolVar(&chartsOpen, "open", false, "Open the rendered charts in the default browser")
	addFilterFlags(chartsCmd, &chartsActivity, &chartsFrom, &chartsTo, &chartsMinDistance, &chartsMaxDistance)
}
