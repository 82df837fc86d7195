package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations")
}

func TestMigrations_Parse(t *testing.T) {
	if _, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion); err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
}

func TestMigrations_HaveGooseDirectives(t *testing.T) {
	dir := repoMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
	}
}
