package migrate

import (
	"errors"
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", "up")
	if err == nil {
		t.Fatal("Run with empty DSN should return error")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL is not set") {
		t.Errorf("error message = %q, should contain %q", err.Error(), "DATABASE_URL is not set")
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "invalid", "UP", "Down", "both"} {
		t.Run(direction, func(t *testing.T) {
			err := Run("postgres://localhost/test", direction)
			if err == nil {
				t.Fatalf("Run with direction %q should return error", direction)
			}
			if !strings.Contains(err.Error(), "direction must be up or down") {
				t.Errorf("error = %q, want direction error", err.Error())
			}
		})
	}
}

func TestRun_InvalidDSN(t *testing.T) {
	for _, dsn := range []string{"invalid-dsn", "://localhost/test", "postgres://localhost with spaces/test"} {
		if err := Run(dsn, "up"); err == nil {
			t.Errorf("Run with invalid DSN %q should return error", dsn)
		}
	}
}

func TestRun_NeverReturnsErrNoChange(t *testing.T) {
	err := Run("postgres://invalid-host:5432/test", "up")
	if errors.Is(err, ErrNoChange) {
		t.Error("Run should not return ErrNoChange (should return nil instead)")
	}
}

func TestVersion_EmptyDSN(t *testing.T) {
	if _, _, err := Version(""); err == nil {
		t.Fatal("Version with empty DSN should return error")
	}
}

func TestOpen_SourceDriver(t *testing.T) {
	_, err := open("invalid-dsn")
	if err == nil {
		t.Fatal("open with invalid DSN should fail")
	}
	if strings.HasPrefix(err.Error(), "migrate source:") {
		t.Errorf("embedded source should load, got %v", err)
	}
}
