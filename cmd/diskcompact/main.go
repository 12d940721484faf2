package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/downfa11-org/diskcompact/pkg/checksum"
	"github.com/downfa11-org/diskcompact/pkg/compaction"
	"github.com/downfa11-org/diskcompact/pkg/config"
	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/metrics"
	"github.com/downfa11-org/diskcompact/pkg/report"
	"github.com/downfa11-org/diskcompact/util"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		util.Error("Failed to load config: %v", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		if errors.Is(err, disk.ErrInvariantViolation) {
			util.Fatal("%+v", err)
		}
		util.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	m, raw, err := disk.LoadFile(cfg.InputPath, cfg.InputCompression)
	if err != nil {
		return err
	}
	if cfg.VerifyInvariants {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("parsed medium: %w", err)
		}
	}
	metrics.MediumUnits.Set(float64(m.Total))

	rep := report.New(raw, m)
	log := util.WithFields(map[string]interface{}{"run_id": rep.RunID})
	log.Infof("loaded %s: %d units, %d files, %d free segments", cfg.InputPath, m.Total, m.Files, len(m.Free))
	if m.Total <= cfg.RenderLimit {
		log.Debugf("layout %s", m.Render())
	}

	for _, name := range cfg.Policies() {
		p, err := compaction.ParsePolicy(name)
		if err != nil {
			return err
		}

		started := time.Now()
		res, err := compaction.Run(p, m, cfg.VerifyInvariants)
		if err != nil {
			return err
		}
		sum := checksum.Of(res.Medium)
		elapsed := time.Since(started)

		metrics.PushChecksum(string(p), sum)
		rep.Add(res, sum, elapsed)
		if res.Medium.Total <= cfg.RenderLimit {
			log.Debugf("%s layout %s", p.Label(), res.Medium.Render())
		}
		fmt.Fprintf(out, "%s: %d\n", p.Label(), sum)
	}

	if cfg.ReportPath != "" {
		if err := rep.Write(cfg.ReportPath, cfg.ReportFormat); err != nil {
			return err
		}
		log.Infof("report written to %s", cfg.ReportPath)
	}
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}
