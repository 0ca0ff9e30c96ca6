package service

import (
	"sort"

	"github.com/KojotMaciek/activitiesmonitor/internal/model"
)

type ActivityTotal struct {
	Type  model.ActivityType `json:"activity_type"`
	Total float64            `json:"total"`
}

type MonthTotal struct {
	Month      string  `json:"month"`
	DistanceKm float64 `json:"distance_km"`
}

// Summary holds the grouped reductions that feed the stats output and the
// charts. By-activity groups always contain all three types, zero when no
// record matched; the monthly trend contains only months that have records,
// oldest first.
type Summary struct {
	Records            int             `json:"records"`
	TotalDistanceKm    float64         `json:"total_distance_km"`
	TotalCaloriesKcal  float64         `json:"total_calories_kcal"`
	DistanceByActivity []ActivityTotal `json:"distance_by_activity"`
	CaloriesByActivity []ActivityTotal `json:"calories_by_activity"`
	MonthlyDistance    []MonthTotal    `json:"monthly_distance"`
}

// Summarize reduces an already-filtered list of activities into the three
// grouped summaries. Pure and deterministic; input order only matters through
// the chronological sort of the monthly trend.
func Summarize(items []model.Activity) Summary {
	distanceByType := make(map[model.ActivityType]float64, 3)
	caloriesByType := make(map[model.ActivityType]float64, 3)
	for _, t := range model.ActivityTypes() {
		distanceByType[t] = 0
		caloriesByType[t] = 0
	}
	monthly := make(map[string]float64)

	s := Summary{Records: len(items)}
	for _, a := range items {
		distanceByType[a.Type] += a.DistanceKm
		caloriesByType[a.Type] += a.CaloriesKcal
		monthly[a.Date[:7]] += a.DistanceKm
		s.TotalDistanceKm += a.DistanceKm
		s.TotalCaloriesKcal += a.CaloriesKcal
	}

	for _, t := range model.ActivityTypes() {
		s.DistanceByActivity = append(s.DistanceByActivity, ActivityTotal{Type: t, Total: distanceByType[t]})
		s.CaloriesByActivity = append(s.CaloriesByActivity, ActivityTotal{Type: t, Total: caloriesByType[t]})
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Strings(months)
	for _, m := range months {
		s.MonthlyDistance = append(s.MonthlyDistance, MonthTotal{Month: m, DistanceKm: monthly[m]})
	}

	return s
}
