package activities

import (
	"database/sql"
	"fmt"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	Long:  "Scan the activities table for rows that violate the record invariants, which can only happen through edits made outside this tool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unknown activity types: %d\n", report.UnknownActivityTypes)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed dates: %d\n", report.MalformedDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Non-positive distances: %d\n", report.NonPositiveDistances)
			fmt.Fprintf(cmd.OutOrStdout(), "Non-positive durations: %d\n", report.NonPositiveDurations)
			fmt.Fprintf(cmd.OutOrStdout(), "Negative calories: %d\n", report.NegativeCalories)
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
