package service_test

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/KojotMaciek/activitiesmonitor/internal/db"
	"github.com/KojotMaciek/activitiesmonitor/internal/model"
	"github.com/KojotMaciek/activitiesmonitor/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func mustCreate(t *testing.T, sqldb *sql.DB, in service.CreateActivityInput) int64 {
	t.Helper()
	id, err := service.CreateActivity(sqldb, in)
	if err != nil {
		t.Fatalf("create activity %+v: %v", in, err)
	}
	return id
}

func activity(date string, typ model.ActivityType, distance, minutes, calories float64) service.CreateActivityInput {
	return service.CreateActivityInput{
		Date:             date,
		Type:             typ,
		DistanceKm:       distance,
		TotalTimeMinutes: minutes,
		CaloriesKcal:     calories,
	}
}

func floatPtr(v float64) *float64 { return &v }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
