package activities

import (
	"database/sql"
	"fmt"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete activities by id",
	Long:  "Delete one or more activities by id. Ids that are already gone are skipped, not errors.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := parseInt64Arg("activity id", arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return withDB(func(sqldb *sql.DB) error {
			var deleted int64
			for _, id := range ids {
				n, err := service.DeleteActivity(sqldb, id)
				if err != nil {
					return err
				}
				deleted += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d activity(ies)\n", deleted, len(ids))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
