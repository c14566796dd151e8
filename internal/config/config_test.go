package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/noobshow/fcc/internal/config"
	"github.com/noobshow/fcc/internal/diag"
)

func TestLoadValidProjectFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[project]
name = "demo"
paths = ["src"]
log-level = "warning"
werror = true
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Name != "demo" {
		t.Fatalf("expected name %q, got %q", "demo", cfg.Name)
	}
	if cfg.LogLevel != diag.LevelWarning {
		t.Fatalf("expected warning level, got %v", cfg.LogLevel)
	}
	if !cfg.Werror {
		t.Fatal("expected werror true")
	}
	if len(cfg.Paths) != 1 || cfg.Paths[0] != filepath.Join(dir, "src") {
		t.Fatalf("expected resolved path %q, got %v", filepath.Join(dir, "src"), cfg.Paths)
	}
}

func TestLoadDefaultsLogLevelToVerbose(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[project]
name = "demo"
paths = ["."]
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.LogLevel != diag.LevelVerbose {
		t.Fatalf("expected default verbose level, got %v", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidName(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[project]
name = "1bad"
paths = ["."]
`)

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected an error for an invalid project name")
	}
}

func TestLoadRejectsEmptyPaths(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[project]
name = "demo"
paths = []
`)

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected an error for an empty paths list")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[project]
name = "demo"
paths = ["."]
log-level = "deafening"
`)

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected an error for an unrecognized log level")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected an error when no project file exists")
	}
}

func TestInitCreatesLoadableProjectFile(t *testing.T) {
	dir := t.TempDir()

	if err := config.Init("demo", dir); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("project created by Init should load cleanly: %s", err)
	}
	if cfg.Name != "demo" {
		t.Fatalf("expected name %q, got %q", "demo", cfg.Name)
	}
}

func TestInitRefusesToOverwriteExistingFile(t *testing.T) {
	dir := t.TempDir()
	if err := config.Init("demo", dir); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := config.Init("demo", dir); err == nil {
		t.Fatal("expected an error when a project file already exists")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"demo", "_demo", "Demo2", "a"}
	invalid := []string{"", "2demo", "de-mo", "de mo"}

	for _, s := range valid {
		if !config.IsValidIdentifier(s) {
			t.Errorf("expected %q to be a valid identifier", s)
		}
	}
	for _, s := range invalid {
		if config.IsValidIdentifier(s) {
			t.Errorf("expected %q to be an invalid identifier", s)
		}
	}
}

func write(t *testing.T, dir, contents string) {
	t.Helper()
	path := filepath.Join(dir, config.ProjectFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write project file: %s", err)
	}
}
