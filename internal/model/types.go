package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ActivityType is the closed set of sports the monitor tracks. The set is
// fixed; free-text types are rejected at the parsing boundary.
type ActivityType string

const (
	Cycling ActivityType = "cycling"
	Hiking  ActivityType = "hiking"
	Walking ActivityType = "walking"
)

var ErrInvalidActivityType = errors.New("invalid activity type")

// ActivityTypes returns all known types in display/chart order.
func ActivityTypes() []ActivityType {
	return []ActivityType{Cycling, Hiking, Walking}
}

// ParseActivityType normalizes and validates a raw activity type string.
func ParseActivityType(s string) (ActivityType, error) {
	switch t := ActivityType(strings.ToLower(strings.TrimSpace(s))); t {
	case Cycling, Hiking, Walking:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (use cycling, hiking, or walking)", ErrInvalidActivityType, s)
	}
}

func (t ActivityType) Valid() bool {
	switch t {
	case Cycling, Hiking, Walking:
		return true
	}
	return false
}

// Activity is one logged session. Date is a plain YYYY-MM-DD calendar day,
// stored as TEXT so lexicographic order matches chronological order.
type Activity struct {
	ID               int64
	Date             string
	Type             ActivityType
	DistanceKm       float64
	TotalTimeMinutes float64
	CaloriesKcal     float64
	CreatedAt        time.Time
}

// AverageMetric derives the display metric from distance and time: average
// speed in km/h for cycling, pace in min/km for hiking and walking. Records
// only exist with DistanceKm > 0 and TotalTimeMinutes > 0, so division by
// zero cannot occur here.
func (a Activity) AverageMetric() float64 {
	if a.Type == Cycling {
		return a.DistanceKm / (a.TotalTimeMinutes / 60)
	}
	return a.TotalTimeMinutes / a.DistanceKm
}

// MetricUnit is the unit string that goes with AverageMetric.
func (a Activity) MetricUnit() string {
	if a.Type == Cycling {
		return "km/h"
	}
	return "min/km"
}
