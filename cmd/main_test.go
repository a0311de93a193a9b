package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/user/cipherbench/internal/benchmark"
	"github.com/user/cipherbench/internal/corpus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func writeInput(t *testing.T, lines int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "line %d of a lab report used as cipher input\n", i)
	}
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunWritesResults(t *testing.T) {
	config := benchmark.DefaultConfig()
	config.Path = writeInput(t, 5000)
	config.OutputFile = filepath.Join(t.TempDir(), "results.json")
	config.Format = "json"

	stdout := &bytes.Buffer{}
	if err := run(config, testLogger(), stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	raw, err := os.ReadFile(config.OutputFile)
	if err != nil {
		t.Fatalf("results file missing: %v", err)
	}

	var results map[string]float64
	if err := json.Unmarshal(raw, &results); err != nil {
		t.Fatalf("results file is not a flat object: %v", err)
	}
	if len(results) != 7 {
		t.Errorf("Expected 7 unique algorithms, got %d: %v", len(results), results)
	}
	for name, secs := range results {
		if secs < 0 {
			t.Errorf("%s: negative elapsed %v", name, secs)
		}
	}
	if !strings.HasPrefix(string(raw), `{"AES":`) {
		t.Errorf("Expected AES first, got %s", raw)
	}

	out := stdout.String()
	if !strings.Contains(out, "=====AES 10%=====") || !strings.Contains(out, "=====CAST5 100%=====") {
		t.Error("Missing progress lines")
	}
	if !strings.Contains(out, `"run_id"`) {
		t.Error("Missing JSON report")
	}
	if !strings.Contains(out, "cpu_score") {
		t.Error("Missing cpu_score in report")
	}
}

func TestRunMissingCorpus(t *testing.T) {
	config := benchmark.DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "nope.txt")
	config.OutputFile = filepath.Join(t.TempDir(), "results.json")

	err := run(config, testLogger(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing corpus")
	}

	var ioErr *corpus.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("Expected IOError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(config.OutputFile); !os.IsNotExist(statErr) {
		t.Error("results file must not be written on failure")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	config := benchmark.DefaultConfig()
	config.Path = writeInput(t, 10)
	config.OutputFile = filepath.Join(t.TempDir(), "results.json")
	config.ShowChart = false

	stdout := &bytes.Buffer{}
	if err := run(config, testLogger(), stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	raw, err := os.ReadFile(config.OutputFile)
	if err != nil {
		t.Fatalf("results file missing: %v", err)
	}
	var results map[string]float64
	if err := json.Unmarshal(raw, &results); err != nil {
		t.Fatalf("invalid results: %v", err)
	}
	for name, secs := range results {
		if secs != 0 {
			t.Errorf("%s: expected 0 for empty corpus, got %v", name, secs)
		}
	}
	if strings.Contains(stdout.String(), "%=====") {
		t.Error("Empty corpus should not report progress")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CIPHERBENCH_PATH", "/tmp/corpus.txt")
	t.Setenv("CIPHERBENCH_FORMAT", "csv")

	config, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if config.Path != "/tmp/corpus.txt" {
		t.Errorf("Expected path from env, got %q", config.Path)
	}
	if config.Format != "csv" {
		t.Errorf("Expected csv format, got %q", config.Format)
	}
	if config.OutputFile != "results.json" {
		t.Errorf("Expected default output file, got %q", config.OutputFile)
	}
}

func TestLoadConfigRequiresPath(t *testing.T) {
	t.Setenv("CIPHERBENCH_PATH", "")
	if _, err := loadConfig(rootCmd); err == nil {
		t.Error("Expected error without a path")
	}
}
