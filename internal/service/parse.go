package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/KojotMaciek/activitiesmonitor/internal/model"
)

// Field-scoped validation errors. Every rejected input wraps exactly one of
// these so the caller can tell which field to re-prompt for.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDistance = errors.New("invalid distance")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidPace     = errors.New("invalid pace")
	ErrInvalidCalories = errors.New("invalid calories")
)

// ParseDate accepts a YYYY-MM-DD calendar date and returns it normalized.
// Any syntactically valid date is accepted, including future dates.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t.Format("2006-01-02"), nil
}

// ParseDistance accepts a decimal number of kilometers, strictly positive.
func ParseDistance(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: %q (expected a number > 0)", ErrInvalidDistance, s)
	}
	return v, nil
}

// ParseDuration converts a total-time string to minutes. Three forms are
// accepted, dispatched on the number of colon-separated parts:
// hh:mm:ss -> h*60 + m + s/60, hh:mm -> h*60 + m, and a bare decimal read as
// total minutes. The result must be > 0.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")

	var minutes float64
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q (expected hh:mm:ss, hh:mm, or minutes)", ErrInvalidTime, s)
		}
		minutes = v
	case 2:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || h < 0 || m < 0 {
			return 0, fmt.Errorf("%w: %q (expected hh:mm)", ErrInvalidTime, s)
		}
		minutes = float64(h*60 + m)
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || h < 0 || m < 0 || sec < 0 {
			return 0, fmt.Errorf("%w: %q (expected hh:mm:ss)", ErrInvalidTime, s)
		}
		minutes = float64(h*60+m) + float64(sec)/60
	default:
		return 0, fmt.Errorf("%w: %q (expected hh:mm:ss, hh:mm, or minutes)", ErrInvalidTime, s)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %q (total time must be > 0)", ErrInvalidTime, s)
	}
	return minutes, nil
}

// ParsePace converts a pace string to decimal minutes per km: mm:ss ->
// m + s/60, or a bare decimal read as min/km. Pace applies to hiking and
// walking only; cycling derives an average speed instead.
func ParsePace(s string) (float64, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")

	var pace float64
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q (expected mm:ss or min/km)", ErrInvalidPace, s)
		}
		pace = v
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || m < 0 || sec < 0 {
			return 0, fmt.Errorf("%w: %q (expected mm:ss)", ErrInvalidPace, s)
		}
		pace = float64(m) + float64(sec)/60
	default:
		return 0, fmt.Errorf("%w: %q (expected mm:ss or min/km)", ErrInvalidPace, s)
	}

	if pace <= 0 {
		return 0, fmt.Errorf("%w: %q (pace must be > 0)", ErrInvalidPace, s)
	}
	return pace, nil
}

// ParseCalories accepts a decimal kcal amount, zero allowed.
func ParseCalories(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q (expected a number >= 0)", ErrInvalidCalories, s)
	}
	return v, nil
}

// RawActivity carries the user-entered field strings before validation.
type RawActivity struct {
	Date     string
	Type     string
	Distance string
	Duration string
	Pace     string
	Calories string
}

// ParseActivity validates a full raw input set and produces a typed create
// input. It fails on the first offending field with that field's sentinel
// error; nothing is persisted until every field has passed. The pace field is
// an optional cross-check for hiking/walking and is rejected for cycling,
// whose average speed is derived, never entered.
func ParseActivity(raw RawActivity) (CreateActivityInput, error) {
	typ, err := model.ParseActivityType(raw.Type)
	if err != nil {
		return CreateActivityInput{}, err
	}
	date, err := ParseDate(raw.Date)
	if err != nil {
		return CreateActivityInput{}, err
	}
	distance, err := ParseDistance(raw.Distance)
	if err != nil {
		return CreateActivityInput{}, err
	}
	minutes, err := ParseDuration(raw.Duration)
	if err != nil {
		return CreateActivityInput{}, err
	}

	if pace := strings.TrimSpace(raw.Pace); pace != "" {
		if typ == model.Cycling {
			return CreateActivityInput{}, fmt.Errorf("%w: cycling has no pace field (average speed is derived)", ErrInvalidPace)
		}
		if _, err := ParsePace(pace); err != nil {
			return CreateActivityInput{}, err
		}
	}

	calories, err := ParseCalories(raw.Calories)
	if err != nil {
		return CreateActivityInput{}, err
	}

	return CreateActivityInput{
		Date:             date,
		Type:             typ,
		DistanceKm:       distance,
		TotalTimeMinutes: minutes,
		CaloriesKcal:     calories,
	}, nil
}

// FormatMinutes renders a minutes total as hh:mm for table display.
func FormatMinutes(total float64) string {
	hours := int(total / 60)
	minutes := int(math.Round(math.Mod(total, 60)))
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
