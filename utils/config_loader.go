package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Scenario selection ─────────────────────────────────────────────────

// ScenarioConfig picks which mock scenario the demo uses per sensor.
type ScenarioConfig struct {
	Accelerometer string `yaml:"accelerometer"` // "at_rest" | "shaking"
	Magnetometer  string `yaml:"magnetometer"`  // "north" | "southwest"
	GPS           string `yaml:"gps"`           // "san_francisco" | "moving"
	Pressure      string `yaml:"pressure"`      // "sea_level" | "altitude"
	Temperature   string `yaml:"temperature"`   // "comfortable" | "hot"
}

// ─── Export settings ────────────────────────────────────────────────────

type CSVExportConfig struct {
	BufferSizeKB int  `yaml:"buffer_size_kb"`
	WriteHeader  bool `yaml:"write_header"`
}

type ExportConfig struct {
	Enabled       bool            `yaml:"enabled"`
	BaseDir       string          `yaml:"base_dir"`
	SessionPrefix string          `yaml:"session_prefix"`
	CSV           CSVExportConfig `yaml:"csv"`
	JSONIndent    bool            `yaml:"json_indent"`
}

// ─── Top level ──────────────────────────────────────────────────────────

// DemoConfig is the top-level structure for demo.yaml.
type DemoConfig struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Export   ExportConfig   `yaml:"export"`
	Logging  struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultDemoConfig returns the config used when no file is given.
func DefaultDemoConfig() *DemoConfig {
	cfg := &DemoConfig{}
	cfg.Scenario = ScenarioConfig{
		Accelerometer: "at_rest",
		Magnetometer:  "southwest",
		GPS:           "san_francisco",
		Pressure:      "sea_level",
		Temperature:   "comfortable",
	}
	cfg.Export.Enabled = false
	cfg.Export.BaseDir = "data"
	cfg.Export.SessionPrefix = "session"
	cfg.Export.CSV.BufferSizeKB = 64
	cfg.Export.CSV.WriteHeader = true
	cfg.Logging.Level = "info"
	return cfg
}

// LoadDemoConfig reads and parses demo.yaml.
func LoadDemoConfig(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read demo config: %w", err)
	}
	cfg := DefaultDemoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse demo config: %w", err)
	}
	return cfg, nil
}
