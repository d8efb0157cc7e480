package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"foldersort/internal/config"
	"foldersort/internal/logging"
)

func TestNewFromConfigWritesToStreamAndFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "foldersort.log")
	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("organization completed", logging.Int("moved", 3))

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for name, out := range map[string]string{"stream": buf.String(), "file": string(content)} {
		if !strings.Contains(out, "organization completed moved=3") {
			t.Fatalf("expected record in %s output, got %q", name, out)
		}
	}
}

func TestNewFromConfigWithoutFileUsesWriterOnly(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected record in writer, got %q", buf.String())
	}
}

func TestConsoleLineHasTimestampComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "organizer").Info("moved file",
		logging.String("name", "notes.txt"),
		logging.String("destination", "Documents/notes.txt"),
	)

	line := strings.TrimSpace(buf.String())
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} INFO organizer: moved file name=notes.txt destination=Documents/notes.txt$`)
	if !pattern.MatchString(line) {
		t.Fatalf("unexpected console line %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("move failed", logging.String("name", "my file.txt"), logging.Error(errors.New("permission denied")))

	out := buf.String()
	if !strings.Contains(out, `name="my file.txt"`) {
		t.Fatalf("expected quoted name, got %q", out)
	}
	if !strings.Contains(out, `error="permission denied"`) {
		t.Fatalf("expected quoted error, got %q", out)
	}
	if !strings.Contains(out, " ERROR ") {
		t.Fatalf("expected ERROR label, got %q", out)
	}
}

func TestConsoleLoggerOmitsSourceForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without source")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no source information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesSourceForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with source")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected source information in debug logs, got %q", content)
	}
}

func TestLevelFiltersLowerRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected filtering result %q", buf.String())
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if payload["msg"] != "json message" || payload["k"] != "v" || payload["level"] != "info" {
		t.Fatalf("unexpected json payload: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-xyz")
	logging.WithContext(ctx, logger).Info("contextual log")

	if !strings.Contains(buf.String(), "run_id=run-xyz") {
		t.Fatalf("expected run id field, got %q", buf.String())
	}
}

func TestEnsureRunIDKeepsExisting(t *testing.T) {
	ctx := logging.WithRunID(context.Background(), "fixed")
	_, id := logging.EnsureRunID(ctx)
	if id != "fixed" {
		t.Fatalf("expected existing id, got %q", id)
	}
	_, generated := logging.EnsureRunID(context.Background())
	if generated == "" || generated == "fixed" {
		t.Fatalf("expected generated id, got %q", generated)
	}
}

func TestWithContextNilLoggerIsNop(t *testing.T) {
	logging.WithContext(context.Background(), nil).Info("discarded")
}
