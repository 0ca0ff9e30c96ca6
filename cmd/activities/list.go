package activities

import (
	"database/sql"
	"fmt"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var (
	listActivity    string
	listFrom        string
	listTo          string
	listMinDistance string
	listMaxDistance string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged activities, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildListFilter(listActivity, listFrom, listTo, listMinDistance, listMaxDistance)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListActivities(sqldb, filter)
			if err != nil {
				return err
			}
			total, err := service.CountActivities(sqldb)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTYPE\tDISTANCE_KM\tAVG\tTIME\tKCAL")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.2f\t%.2f %s\t%s\t%.0f\n",
					item.ID, item.Date, item.Type, item.DistanceKm,
					item.AverageMetric(), item.MetricUnit(),
					service.FormatMinutes(item.TotalTimeMinutes), item.CaloriesKcal)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d record(s)\n", len(items), total)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd, &listActivity, &listFrom, &listTo, &listMinDistance, &listMaxDistance)
}
