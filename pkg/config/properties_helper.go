package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/downfa11-org/diskcompact/util"
)

func (cfg *Config) Normalize() {
	if strings.TrimSpace(cfg.InputPath) == "" {
		cfg.InputPath = "input.txt"
	}

	cfg.InputCompression = strings.ToLower(strings.TrimSpace(cfg.InputCompression))
	switch cfg.InputCompression {
	case "auto", "none", "gzip", "lz4", "zstd":
	case "":
		cfg.InputCompression = "auto"
	default:
		util.Warn("Invalid input_compression '%s', defaulting to 'auto'", cfg.InputCompression)
		cfg.InputCompression = "auto"
	}

	cfg.Policy = strings.ToLower(strings.TrimSpace(cfg.Policy))
	switch cfg.Policy {
	case "unit", "whole", "both":
	case "a":
		cfg.Policy = "unit"
	case "b":
		cfg.Policy = "whole"
	default:
		util.Warn("Invalid policy '%s', defaulting to 'both'", cfg.Policy)
		cfg.Policy = "both"
	}

	if cfg.RenderLimit < 0 {
		cfg.RenderLimit = 0
	}

	cfg.ReportFormat = strings.ToLower(strings.TrimSpace(cfg.ReportFormat))
	switch cfg.ReportFormat {
	case "json", "yaml":
	case "yml":
		cfg.ReportFormat = "yaml"
	default:
		if cfg.ReportFormat != "" {
			util.Warn("Invalid report_format '%s', defaulting to 'json'", cfg.ReportFormat)
		}
		cfg.ReportFormat = "json"
	}
}

// Policies expands the policy setting into the policies to run, in order.
func (cfg *Config) Policies() []string {
	if cfg.Policy == "both" {
		return []string{"unit", "whole"}
	}
	return []string{cfg.Policy}
}

func applyEnv(cfg *Config) {
	overrideEnvString(&cfg.InputPath, "DISKCOMPACT_INPUT")
	overrideEnvString(&cfg.InputCompression, "DISKCOMPACT_INPUT_COMPRESSION")
	overrideEnvString(&cfg.Policy, "DISKCOMPACT_POLICY")
	overrideEnvBool(&cfg.VerifyInvariants, "DISKCOMPACT_VERIFY")
	overrideEnvInt(&cfg.RenderLimit, "DISKCOMPACT_RENDER_LIMIT")
	overrideEnvString(&cfg.MetricsFile, "DISKCOMPACT_METRICS_FILE")
	overrideEnvString(&cfg.ReportPath, "DISKCOMPACT_REPORT")
	overrideEnvString(&cfg.ReportFormat, "DISKCOMPACT_REPORT_FORMAT")
	if v := os.Getenv("DISKCOMPACT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = util.ParseLogLevel(v)
	}
}

func overrideEnvInt(target *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		util.Warn("Invalid %s '%s', keeping %d", key, v, *target)
		return
	}
	*target = n
}

func overrideEnvBool(target *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		util.Warn("Invalid %s '%s', keeping %t", key, v, *target)
		return
	}
	*target = b
}

func overrideEnvString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
