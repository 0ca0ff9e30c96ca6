package activities

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")
	for i := 0; i < 2; i++ {
		if _, err := runCommand(t, "--db", path, "init"); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestAddListDeleteFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")

	out, err := runCommand(t, "--db", path, "add",
		"--date", "2026-01-10",
		"--type", "cycling",
		"--distance", "42",
		"--duration", "1:30",
		"--pace", "",
		"--calories", "950",
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Added cycling activity") {
		t.Fatalf("unexpected add output: %q", out)
	}
	if !strings.Contains(out, "28.00 km/h") {
		t.Fatalf("expected derived average speed in output: %q", out)
	}

	out, err = runCommand(t, "--db", path, "list",
		"--activity", "all", "--from", "", "--to", "", "--min-distance", "", "--max-distance", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "2026-01-10\tcycling\t42.00\t28.00 km/h\t01:30\t950") {
		t.Fatalf("unexpected list row: %q", out)
	}
	if !strings.Contains(out, "1 of 1 record(s)") {
		t.Fatalf("expected record count footer: %q", out)
	}

	out, err = runCommand(t, "--db", path, "delete", "1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Deleted 1 of 1") {
		t.Fatalf("unexpected delete output: %q", out)
	}

	// Re-deleting the same id is a no-op, not an error.
	out, err = runCommand(t, "--db", path, "delete", "1")
	if err != nil {
		t.Fatalf("re-delete failed: %v", err)
	}
	if !strings.Contains(out, "Deleted 0 of 1") {
		t.Fatalf("unexpected re-delete output: %q", out)
	}
}

func TestAddRejectsPaceForCycling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.db")

	_, err := runCommand(t, "--db", path, "add",
		"--date", "2026-01-10",
		"--type", "cycling",
		"--distance", "42",
		"--duration", "1:30",
		"--pace", "8:30",
		"--calories", "950",
	)
	if err == nil {
		t.Fatalf("expected error for cycling with pace")
	}
	if !strings.Contains(err.Error(), "pace") {
		t.Fatalf("expected pace error, got: %v", err)
	}
}
