package activities

import (
	"database/sql"
	"fmt"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var (
	statsActivity    string
	statsFrom        string
	statsTo          string
	statsMinDistance string
	statsMaxDistance string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate totals for the filtered activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildListFilter(statsActivity, statsFrom, statsTo, statsMinDistance, statsMaxDistance)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListActivities(sqldb, filter)
			if err != nil {
				return err
			}
			summary := service.Summarize(items)

			fmt.Fprintf(cmd.OutOrStdout(), "Records: %d\n", summary.Records)
			fmt.Fprintf(cmd.OutOrStdout(), "Total distance: %.2f km\n", summary.TotalDistanceKm)
			fmt.Fprintf(cmd.OutOrStdout(), "Total calories: %.0f kcal\n", summary.TotalCaloriesKcal)

			fmt.Fprintln(cmd.OutOrStdout(), "By activity:")
			for i, d := range summary.DistanceByActivity {
				c := summary.CaloriesByActivity[i]
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.2f km | %.0f kcal\n", d.Type, d.Total, c.Total)
			}

			if len(summary.MonthlyDistance) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Monthly distance:")
				for _, m := range summary.MonthlyDistance {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.2f km\n", m.Month, m.DistanceKm)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addFilterFlags(statsCmd, &statsActivity, &statsFrom, &statsTo, &statsMinDistance, &statsMaxDistance)
}
