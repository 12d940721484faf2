package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/downfa11-org/diskcompact/util"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a single compaction run.
type Config struct {
	// Input
	InputPath        string `yaml:"input_path" json:"input.path"`
	InputCompression string `yaml:"input_compression" json:"input.compression"`

	// Compaction
	Policy           string `yaml:"policy" json:"policy"`
	VerifyInvariants bool   `yaml:"verify_invariants" json:"verify.invariants"`

	// Observability
	LogLevel    util.LogLevel `yaml:"log_level" json:"log_level"`
	RenderLimit int           `yaml:"render_limit" json:"render.limit"`
	MetricsFile string        `yaml:"metrics_file" json:"metrics.file"`

	// Report
	ReportPath   string `yaml:"report_path" json:"report.path"`
	ReportFormat string `yaml:"report_format" json:"report.format"`
}

func defaults() *Config {
	return &Config{
		InputPath:        "input.txt",
		InputCompression: "auto",
		Policy:           "both",
		VerifyInvariants: true,
		LogLevel:         util.LogLevelInfo,
		RenderLimit:      128,
		ReportFormat:     "json",
	}
}

// LoadConfig resolves the configuration from defaults, an optional YAML or
// JSON file, DISKCOMPACT_* environment variables and finally explicit flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("diskcompact", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML/JSON config file")
	inputPath := fs.String("input", cfg.InputPath, "Path to the disk map")
	compression := fs.String("input-compression", cfg.InputCompression, "Input codec (auto, none, gzip, lz4, zstd)")
	policy := fs.String("policy", cfg.Policy, "Compaction policy (unit, whole, both)")
	verify := fs.Bool("verify", cfg.VerifyInvariants, "Validate layouts after every compaction")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "Log Level (debug, info, warn, error)")
	renderLimit := fs.Int("render-limit", cfg.RenderLimit, "Log rendered layouts up to this many units at debug level")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	reportPath := fs.String("report", "", "Write a run report to this path")
	reportFormat := fs.String("report-format", cfg.ReportFormat, "Report format (json, yaml)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath == "" {
		*configPath = os.Getenv("DISKCOMPACT_CONFIG")
	}
	if *configPath != "" {
		if err := loadFile(cfg, *configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPath
		case "input-compression":
			cfg.InputCompression = *compression
		case "policy":
			cfg.Policy = *policy
		case "verify":
			cfg.VerifyInvariants = *verify
		case "log-level":
			cfg.LogLevel = util.ParseLogLevel(*logLevel)
		case "render-limit":
			cfg.RenderLimit = *renderLimit
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "report":
			cfg.ReportPath = *reportPath
		case "report-format":
			cfg.ReportFormat = *reportFormat
		}
	})

	cfg.Normalize()
	util.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
