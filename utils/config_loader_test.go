package utils

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDemoYAML = `
scenario:
  accelerometer: shaking
  magnetometer: north
  gps: moving
  pressure: altitude
  temperature: hot

export:
  enabled: true
  base_dir: /tmp/sensor-out
  session_prefix: run
  csv:
    buffer_size_kb: 128
    write_header: false
  json_indent: true

logging:
  level: debug
  file: demo.log
`

func TestLoadDemoConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte(sampleDemoYAML), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		t.Fatalf("LoadDemoConfig: %v", err)
	}

	if cfg.Scenario.Accelerometer != "shaking" {
		t.Errorf("accelerometer scenario = %q", cfg.Scenario.Accelerometer)
	}
	if cfg.Scenario.GPS != "moving" {
		t.Errorf("gps scenario = %q", cfg.Scenario.GPS)
	}
	if !cfg.Export.Enabled || cfg.Export.BaseDir != "/tmp/sensor-out" {
		t.Errorf("export config = %+v", cfg.Export)
	}
	if cfg.Export.CSV.BufferSizeKB != 128 || cfg.Export.CSV.WriteHeader {
		t.Errorf("csv config = %+v", cfg.Export.CSV)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "demo.log" {
		t.Errorf("logging config = %+v", cfg.Logging)
	}
}

func TestLoadDemoConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte("scenario:\n  gps: moving\n"), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, err := LoadDemoConfig(path)
	if err != nil {
		t.Fatalf("LoadDemoConfig: %v", err)
	}
	if cfg.Scenario.GPS != "moving" {
		t.Errorf("gps scenario = %q", cfg.Scenario.GPS)
	}
	if cfg.Scenario.Accelerometer != "at_rest" {
		t.Errorf("missing keys should keep defaults, accelerometer = %q", cfg.Scenario.Accelerometer)
	}
	if cfg.Export.SessionPrefix != "session" {
		t.Errorf("session prefix default = %q", cfg.Export.SessionPrefix)
	}
}

func TestLoadDemoConfigErrors(t *testing.T) {
	if _, err := LoadDemoConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("scenario: [not a map"), 0644); err != nil {
		t.Fatalf("write bad sample: %v", err)
	}
	if _, err := LoadDemoConfig(bad); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"bogus", INFO},
		{"", INFO},
	}
	for _, tc := range cases {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
