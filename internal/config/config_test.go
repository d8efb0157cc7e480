package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"foldersort/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(tempHome, ".config", "foldersort", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Paths.LockDir != filepath.Join(tempHome, ".local", "state", "foldersort", "locks") {
		t.Fatalf("unexpected lock dir %q", cfg.Paths.LockDir)
	}
	if !cfg.Organize.SortEntries {
		t.Fatal("expected sort_entries enabled by default")
	}
	if cfg.Organize.Fallback != "Others" {
		t.Fatalf("unexpected fallback %q", cfg.Organize.Fallback)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	want := []string{"Images", "Documents", "Audio", "Video", "Archives", "Others"}
	if !slices.Equal(table.Names(), want) {
		t.Fatalf("unexpected default categories %v", table.Names())
	}
}

func TestLoadCustomPathReplacesCategories(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "foldersort.toml")

	type payload struct {
		Organize struct {
			Fallback    string   `toml:"fallback"`
			SortEntries bool     `toml:"sort_entries"`
			Exclude     []string `toml:"exclude"`
		} `toml:"organize"`
		Categories []config.Category `toml:"categories"`
		Paths      struct {
			LockDir string `toml:"lock_dir"`
		} `toml:"paths"`
	}
	custom := payload{}
	custom.Organize.Fallback = " Misc "
	custom.Organize.SortEntries = false
	custom.Organize.Exclude = []string{"*.part", " ", "*.part", "keep.me"}
	custom.Categories = []config.Category{
		{Name: "Books", Extensions: []string{"EPUB", ".pdf", ".Pdf"}},
		{Name: "Code", Extensions: []string{".go"}},
	}
	custom.Paths.LockDir = filepath.Join(t.TempDir(), "locks")

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Organize.SortEntries {
		t.Fatal("expected sort_entries false from file")
	}
	if cfg.Organize.Fallback != "Misc" {
		t.Fatalf("expected trimmed fallback, got %q", cfg.Organize.Fallback)
	}
	if !slices.Equal(cfg.Organize.Exclude, []string{"*.part", "keep.me"}) {
		t.Fatalf("unexpected excludes %v", cfg.Organize.Exclude)
	}
	if len(cfg.Categories) != 2 {
		t.Fatalf("expected file categories to replace defaults, got %+v", cfg.Categories)
	}
	if !slices.Equal(cfg.Categories[0].Extensions, []string{".epub", ".pdf"}) {
		t.Fatalf("unexpected normalized extensions %v", cfg.Categories[0].Extensions)
	}

	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	if got := table.Classify("novel.EPUB"); got != "Books" {
		t.Fatalf("Classify epub = %q", got)
	}
	if got := table.Classify("photo.jpg"); got != "Misc" {
		t.Fatalf("expected jpg to fall back once defaults are replaced, got %q", got)
	}
}

func TestLoadRejectsInvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "duplicate category",
			body:    "[[categories]]\nname = \"A\"\nextensions = [\".a\"]\n[[categories]]\nname = \"a\"\nextensions = [\".b\"]\n",
			wantErr: "categories",
		},
		{
			name:    "category without extensions",
			body:    "[[categories]]\nname = \"A\"\nextensions = []\n",
			wantErr: "no extensions",
		},
		{
			name:    "bad log format",
			body:    "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad exclude pattern",
			body:    "[organize]\nexclude = [\"[\"]\n",
			wantErr: "organize.exclude",
		},
		{
			name:    "unknown key",
			body:    "[organize]\nrecursive = true\n",
			wantErr: "parse config",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadHonoursLogEnvOverrides(t *testing.T) {
	t.Setenv("FOLDERSORT_LOG_LEVEL", "DEBUG")
	t.Setenv("FOLDERSORT_LOG_FORMAT", "json")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env overrides, got %+v", cfg.Logging)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		t.Fatalf("CategoryTable: %v", err)
	}
	if !slices.Equal(table.Names(), []string{"Images", "Documents", "Audio", "Video", "Archives", "Others"}) {
		t.Fatalf("sample categories drifted from defaults: %v", table.Names())
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/sorted")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "sorted") {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestResolvePathPrefersProjectFileWhenUserFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	if err := os.WriteFile(filepath.Join(project, "foldersort.toml"), []byte("[organize]\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	path, exists, err := config.ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if filepath.Base(path) != "foldersort.toml" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestLoadExpandsLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nfile = \"~/logs/foldersort.log\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.File != filepath.Join(home, "logs", "foldersort.log") {
		t.Fatalf("unexpected log file %q", cfg.Logging.File)
	}
}
