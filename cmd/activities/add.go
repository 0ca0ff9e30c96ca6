package activities

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var (
	addDate     string
	addType     string
	addDistance string
	addDuration string
	addPace     string
	addCalories string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new activity",
	Long:  "Log a cycling, hiking, or walking session. Duration accepts hh:mm:ss, hh:mm, or decimal minutes; pace (hiking/walking only) accepts mm:ss or decimal min/km.",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := service.RawActivity{
			Date:     addDate,
			Type:     addType,
			Distance: addDistance,
			Duration: addDuration,
			Pace:     addPace,
			Calories: addCalories,
		}
		if strings.TrimSpace(raw.Date) == "" {
			raw.Date = time.Now().Format("2006-01-02")
		}
		in, err := service.ParseActivity(raw)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateActivity(sqldb, in)
			if err != nil {
				return err
			}
			item, err := service.GetActivity(sqldb, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s activity %d: %s, %.2f km in %s, avg %.2f %s, %.0f kcal\n",
				item.Type, item.ID, item.Date, item.DistanceKm,
				service.FormatMinutes(item.TotalTimeMinutes), item.AverageMetric(), item.MetricUnit(), item.CaloriesKcal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "Activity date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addType, "type", "", "Activity type: cycling, hiking, or walking")
	addCmd.Flags().StringVar(&addDistance, "distance", "", "Distance in km")
	addCmd.Flags().StringVar(&addDuration, "duration", "", "Total time: hh:mm:ss, hh:mm, or decimal minutes")
	addCmd.Flags().StringVar(&addPace, "pace", "", "Pace mm:ss or decimal min/km (hiking/walking only)")
	addCmd.Flags().StringVar(&addCalories, "calories", "", "Calories burned (kcal)")
}
