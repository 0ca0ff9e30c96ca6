package service_test

import (
	"errors"
	"testing"

	"github.com/KojotMaciek/activitiesmonitor/internal/model"
	"github.com/KojotMaciek/activitiesmonitor/internal/service"
)

func TestCreateAndGetRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in := activity("2026-01-10", model.Cycling, 42, 90, 950)
	id := mustCreate(t, db, in)
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	got, err := service.GetActivity(db, id)
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	if got.ID != id || got.Date != in.Date || got.Type != in.Type {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, in)
	}
	if !approxEqual(got.DistanceKm, in.DistanceKm) || !approxEqual(got.TotalTimeMinutes, in.TotalTimeMinutes) || !approxEqual(got.CaloriesKcal, in.CaloriesKcal) {
		t.Fatalf("round-trip numeric mismatch: %+v vs %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	first := mustCreate(t, db, activity("2026-01-10", model.Walking, 5, 55, 200))
	second := mustCreate(t, db, activity("2026-01-10", model.Walking, 5, 55, 200))
	if first == second {
		t.Fatalf("expected distinct ids, both %d", first)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	cases := []struct {
		name    string
		in      service.CreateActivityInput
		wantErr error
	}{
		{"bad type", activity("2026-01-10", "running", 5, 60, 100), model.ErrInvalidActivityType},
		{"bad date", activity("10.01.2026", model.Hiking, 5, 60, 100), service.ErrInvalidDate},
		{"zero distance", activity("2026-01-10", model.Hiking, 0, 60, 100), service.ErrInvalidDistance},
		{"zero time", activity("2026-01-10", model.Hiking, 5, 0, 100), service.ErrInvalidTime},
		{"negative calories", activity("2026-01-10", model.Hiking, 5, 60, -1), service.ErrInvalidCalories},
	}
	for _, tc := range cases {
		if _, err := service.CreateActivity(db, tc.in); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
		count, err := service.CountActivities(db)
		if err != nil {
			t.Fatalf("count activities: %v", err)
		}
		if count != 0 {
			t.Fatalf("%s: rejected input must not persist, found %d rows", tc.name, count)
		}
	}
}

func TestGetActivityNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.GetActivity(db, 12345); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersByDateThenIDDescending(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	older := mustCreate(t, db, activity("2026-01-05", model.Walking, 4, 40, 150))
	sameDayFirst := mustCreate(t, db, activity("2026-01-10", model.Cycling, 30, 70, 700))
	sameDaySecond := mustCreate(t, db, activity("2026-01-10", model.Hiking, 12, 180, 800))

	items, err := service.ListActivities(db, service.ListFilter{})
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(items))
	}
	wantOrder := []int64{sameDaySecond, sameDayFirst, older}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d: id %d, want %d", i, items[i].ID, want)
		}
	}
}

func TestListFilters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	jan := mustCreate(t, db, activity("2024-01-01", model.Cycling, 5, 30, 200))
	feb := mustCreate(t, db, activity("2024-02-01", model.Hiking, 10, 150, 600))
	mar := mustCreate(t, db, activity("2024-03-01", model.Walking, 15, 180, 700))

	ids := func(items []model.Activity) []int64 {
		out := make([]int64, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}

	cases := []struct {
		name   string
		filter service.ListFilter
		want   []int64
	}{
		{"empty filter returns all", service.ListFilter{}, []int64{mar, feb, jan}},
		{"from date", service.ListFilter{FromDate: "2024-02-01"}, []int64{mar, feb}},
		{"to date inclusive", service.ListFilter{ToDate: "2024-02-01"}, []int64{feb, jan}},
		{"min distance inclusive", service.ListFilter{MinDistanceKm: floatPtr(10)}, []int64{mar, feb}},
		{"max distance inclusive", service.ListFilter{MaxDistanceKm: floatPtr(10)}, []int64{feb, jan}},
		{"type", service.ListFilter{Type: model.Hiking}, []int64{feb}},
		{"combined AND", service.ListFilter{FromDate: "2024-02-01", MinDistanceKm: floatPtr(10), MaxDistanceKm: floatPtr(15), Type: model.Walking}, []int64{mar}},
		{"from plus min distance", service.ListFilter{FromDate: "2024-02-01", MinDistanceKm: floatPtr(12)}, []int64{mar}},
		{"no match", service.ListFilter{Type: model.Cycling, FromDate: "2024-02-01"}, []int64{}},
	}
	for _, tc := range cases {
		items, err := service.ListActivities(db, tc.filter)
		if err != nil {
			t.Fatalf("%s: list: %v", tc.name, err)
		}
		got := ids(items)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got ids %v, want %v", tc.name, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got ids %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestListRejectsInvalidFilter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.ListActivities(db, service.ListFilter{Type: "swimming"}); !errors.Is(err, model.ErrInvalidActivityType) {
		t.Fatalf("expected ErrInvalidActivityType, got %v", err)
	}
	if _, err := service.ListActivities(db, service.ListFilter{FromDate: "2026/01/01"}); !errors.Is(err, service.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for from date, got %v", err)
	}
	if _, err := service.ListActivities(db, service.ListFilter{ToDate: "yesterday"}); !errors.Is(err, service.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate for to date, got %v", err)
	}
}

func TestDeleteRemovesRecordAndRedeleteIsNoop(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id := mustCreate(t, db, activity("2026-01-10", model.Cycling, 42, 90, 950))

	n, err := service.DeleteActivity(db, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted row, got %d", n)
	}

	items, err := service.ListActivities(db, service.ListFilter{})
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list after delete, got %d records", len(items))
	}

	// Deleting the same id again is a documented no-op.
	n, err = service.DeleteActivity(db, id)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 deleted rows on re-delete, got %d", n)
	}
}

func TestCountActivities(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		mustCreate(t, db, activity("2026-01-10", model.Walking, 5, 55, 200))
	}
	count, err := service.CountActivities(db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}
