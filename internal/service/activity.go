package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KojotMaciek/activitiesmonitor/internal/model"
)

var ErrNotFound = errors.New("activity not found")

// CreateActivityInput holds the validated fields of a new activity. The id is
// assigned by the database on insert.
type CreateActivityInput struct {
	Date             string
	Type             model.ActivityType
	DistanceKm       float64
	TotalTimeMinutes float64
	CaloriesKcal     float64
}

// ListFilter selects stored activities. Zero values mean unconstrained; set
// constraints compose with AND. Date and distance bounds are inclusive.
type ListFilter struct {
	Type          model.ActivityType
	FromDate      string
	ToDate        string
	MinDistanceKm *float64
	MaxDistanceKm *float64
}

// CreateActivity persists a validated activity and returns its assigned id.
// The invariants are re-checked here so the service never writes a record
// that did not come through parsing.
func CreateActivity(db *sql.DB, in CreateActivityInput) (int64, error) {
	if !in.Type.Valid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidActivityType, in.Type)
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return 0, err
	}
	if in.DistanceKm <= 0 {
		return 0, fmt.Errorf("%w: must be > 0", ErrInvalidDistance)
	}
	if in.TotalTimeMinutes <= 0 {
		return 0, fmt.Errorf("%w: must be > 0", ErrInvalidTime)
	}
	if in.CaloriesKcal < 0 {
		return 0, fmt.Errorf("%w: must be >= 0", ErrInvalidCalories)
	}

	res, err := db.Exec(`
INSERT INTO activities(activity_date, activity_type, distance_km, total_time_minutes, calories_kcal, created_at)
VALUES(?, ?, ?, ?, ?, ?)
`, date, string(in.Type), in.DistanceKm, in.TotalTimeMinutes, in.CaloriesKcal, time.Now().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve activity id: %w", err)
	}
	return id, nil
}

// GetActivity loads one activity by id.
func GetActivity(db *sql.DB, id int64) (model.Activity, error) {
	row := db.QueryRow(`
SELECT id, activity_date, activity_type, distance_km, total_time_minutes, calories_kcal, created_at
FROM activities WHERE id = ?
`, id)
	item, err := scanActivity(row.Scan)
	if err == sql.ErrNoRows {
		return model.Activity{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return model.Activity{}, err
	}
	return item, nil
}

// DeleteActivity removes an activity by id and returns the number of rows
// removed. Deleting an id that is already gone is a no-op returning 0.
func DeleteActivity(db *sql.DB, id int64) (int64, error) {
	res, err := db.Exec(`DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete activity %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("resolve deleted rows: %w", err)
	}
	return n, nil
}

// ListActivities returns the activities matching the filter, newest first
// (date descending, then id descending within a day). The whole result set
// materializes; the log is one person's entries, never large.
func ListActivities(db *sql.DB, f ListFilter) ([]model.Activity, error) {
	query := `
SELECT id, activity_date, activity_type, distance_km, total_time_minutes, calories_kcal, created_at
FROM activities WHERE 1=1`
	args := make([]any, 0)

	if f.Type != "" {
		if !f.Type.Valid() {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidActivityType, f.Type)
		}
		query += ` AND activity_type = ?`
		args = append(args, string(f.Type))
	}
	if f.FromDate != "" {
		from, err := ParseDate(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND activity_date >= ?`
		args = append(args, from)
	}
	if f.ToDate != "" {
		to, err := ParseDate(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND activity_date <= ?`
		args = append(args, to)
	}
	if f.MinDistanceKm != nil {
		query += ` AND distance_km >= ?`
		args = append(args, *f.MinDistanceKm)
	}
	if f.MaxDistanceKm != nil {
		query += ` AND distance_km <= ?`
		args = append(args, *f.MaxDistanceKm)
	}

	query += ` ORDER BY activity_date DESC, id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		item, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return items, nil
}

// CountActivities reports how many activities are stored in total.
func CountActivities(db *sql.DB) (int64, error) {
	var n int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return n, nil
}

func scanActivity(scan func(...any) error) (model.Activity, error) {
	var item model.Activity
	var typ string
	var createdRaw string
	if err := scan(&item.ID, &item.Date, &typ, &item.DistanceKm, &item.TotalTimeMinutes, &item.CaloriesKcal, &createdRaw); err != nil {
		if err == sql.ErrNoRows {
			return model.Activity{}, err
		}
		return model.Activity{}, fmt.Errorf("scan activity: %w", err)
	}
	item.Type = model.ActivityType(typ)
	createdAt, err := time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return model.Activity{}, fmt.Errorf("parse created_at: %w", err)
	}
	item.CreatedAt = createdAt
	return item, nil
}
