package activities

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "activities",
	Short: "activities logs and browses your sport activities from the terminal",
	Long:  "activities is a local-first log for cycling, hiking, and walking sessions, with filtered listing, aggregate stats, chart rendering, and CSV export.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
