package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// DoctorReport counts rows that violate the activity invariants. A healthy
// database reports zero everywhere.
type DoctorReport struct {
	UnknownActivityTypes int `json:"unknown_activity_types"`
	MalformedDates       int `json:"malformed_dates"`
	NonPositiveDistances int `json:"non_positive_distances"`
	NonPositiveDurations int `json:"non_positive_durations"`
	NegativeCalories     int `json:"negative_calories"`
}

func (r DoctorReport) Healthy() bool {
	return r.UnknownActivityTypes == 0 && r.MalformedDates == 0 &&
		r.NonPositiveDistances == 0 && r.NonPositiveDurations == 0 && r.NegativeCalories == 0
}

// RunDoctor scans the activities table for rows that the validation layer
// would reject today. Such rows can only appear through external edits of the
// database file; the tool itself validates before every insert.
func RunDoctor(db *sql.DB) (DoctorReport, error) {
	var report DoctorReport

	checks := []struct {
		dst   *int
		label string
		query string
	}{
		{&report.UnknownActivityTypes, "unknown activity types",
			`SELECT COUNT(*) FROM activities WHERE activity_type NOT IN ('cycling', 'hiking', 'walking')`},
		{&report.MalformedDates, "malformed dates",
			`SELECT COUNT(*) FROM activities WHERE activity_date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'`},
		{&report.NonPositiveDistances, "non-positive distances",
			`SELECT COUNT(*) FROM activities WHERE distance_km <= 0`},
		{&report.NonPositiveDurations, "non-positive durations",
			`SELECT COUNT(*) FROM activities WHERE total_time_minutes <= 0`},
		{&report.NegativeCalories, "negative calories",
			`SELECT COUNT(*) FROM activities WHERE calories_kcal < 0`},
	}
	for _, c := range checks {
		if err := db.QueryRow(c.query).Scan(c.dst); err != nil {
			return DoctorReport{}, fmt.Errorf("count %s: %w", c.label, err)
		}
	}
	return report, nil
}

// CreateBackup copies the database file to outPath and writes a sha256
// checksum alongside it.
func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup copies a backup over the database path, verifying the
// checksum file when one exists next to the backup.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Sync()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
