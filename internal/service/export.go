package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/KojotMaciek/activitiesmonitor/internal/model"
)

var csvHeader = []string{"date", "activityType", "distanceKm", "averageMetric", "totalTimeMinutes", "caloriesKcal"}

// WriteCSV serializes activities as UTF-8 comma-separated rows: one header
// row plus one row per record, in the order the caller supplied. Numeric
// fields use a fixed two-decimal precision.
func WriteCSV(w io.Writer, items []model.Activity) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range items {
		record := []string{
			a.Date,
			string(a.Type),
			strconv.FormatFloat(a.DistanceKm, 'f', 2, 64),
			strconv.FormatFloat(a.AverageMetric(), 'f', 2, 64),
			strconv.FormatFloat(a.TotalTimeMinutes, 'f', 2, 64),
			strconv.FormatFloat(a.CaloriesKcal, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
