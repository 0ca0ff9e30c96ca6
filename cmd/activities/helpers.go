package activities

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KojotMaciek/activitiesmonitor/internal/app"
	"github.com/KojotMaciek/activitiesmonitor/internal/db"
	"github.com/KojotMaciek/activitiesmonitor/internal/model"
	"github.com/KojotMaciek/activitiesmonitor/internal/service"
	"github.com/spf13/cobra"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := strings.TrimSpace(os.Getenv("ACTIVITIES_DB")); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// buildListFilter converts the filter flag strings shared by list, stats,
// export, and charts into a typed filter. The activity flag accepts "all"
// (or empty) for no type constraint.
func buildListFilter(activity, from, to, minDist, maxDist string) (service.ListFilter, error) {
	var f service.ListFilter

	activity = strings.ToLower(strings.TrimSpace(activity))
	if activity != "" && activity != "all" {
		typ, err := model.ParseActivityType(activity)
		if err != nil {
			return service.ListFilter{}, err
		}
		f.Type = typ
	}

	f.FromDate = strings.TrimSpace(from)
	f.ToDate = strings.TrimSpace(to)

	if s := strings.TrimSpace(minDist); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return service.ListFilter{}, fmt.Errorf("%w: %q (min distance)", service.ErrInvalidDistance, s)
		}
		f.MinDistanceKm = &v
	}
	if s := strings.TrimSpace(maxDist); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return service.ListFilter{}, fmt.Errorf("%w: %q (max distance)", service.ErrInvalidDistance, s)
		}
		f.MaxDistanceKm = &v
	}

	return f, nil
}

func addFilterFlags(c *cobra.Command, activity, from, to, minDist, maxDist *string) {
	c.Flags().StringVar(activity, "activity", "all", "Filter by activity type (cycling, hiking, walking, or all)")
	c.Flags().StringVar(from, "from", "", "Inclusive start date YYYY-MM-DD")
	c.Flags().StringVar(to, "to", "", "Inclusive end date YYYY-MM-DD")
	c.Flags().StringVar(minDist, "min-distance", "", "Minimum distance in km (inclusive)")
	c.Flags().StringVar(maxDist, "max-distance", "", "Maximum distance in km (inclusive)")
}
