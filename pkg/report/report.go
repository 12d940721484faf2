package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/downfa11-org/diskcompact/pkg/compaction"
	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/util"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Entry struct {
	Policy            string        `yaml:"policy" json:"policy"`
	Checksum          int64         `yaml:"checksum" json:"checksum"`
	UnitsMoved        int           `yaml:"units_moved" json:"units_moved"`
	SegmentsRelocated int           `yaml:"segments_relocated" json:"segments_relocated"`
	Splits            int           `yaml:"splits" json:"splits"`
	Duration          time.Duration `yaml:"duration" json:"duration_ns"`
}

// Report summarizes one invocation: the medium that was loaded and the
// outcome of every policy run against it.
type Report struct {
	RunID         string    `yaml:"run_id" json:"run_id"`
	GeneratedAt   time.Time `yaml:"generated_at" json:"generated_at"`
	InputDigest   string    `yaml:"input_digest" json:"input_digest"`
	TotalUnits    int       `yaml:"total_units" json:"total_units"`
	Files         int       `yaml:"files" json:"files"`
	OccupiedUnits int       `yaml:"occupied_units" json:"occupied_units"`
	FreeSegments  int       `yaml:"free_segments" json:"free_segments"`
	Results       []Entry   `yaml:"results" json:"results"`
}

func New(input []byte, m *disk.Medium) *Report {
	return &Report{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		InputDigest:   fmt.Sprintf("%016x", util.Digest(input)),
		TotalUnits:    m.Total,
		Files:         m.Files,
		OccupiedUnits: m.OccupiedUnits(),
		FreeSegments:  len(m.Free),
	}
}

func (r *Report) Add(res *compaction.Result, checksum int64, elapsed time.Duration) {
	r.Results = append(r.Results, Entry{
		Policy:            string(res.Policy),
		Checksum:          checksum,
		UnitsMoved:        res.Stats.UnitsMoved,
		SegmentsRelocated: res.Stats.SegmentsRelocated,
		Splits:            res.Stats.Splits,
		Duration:          elapsed,
	})
}

func (r *Report) Encode(format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(r)
	case "json", "":
		return json.MarshalIndent(r, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write stores the report at path. The data is synced to a temporary file
// in the same directory before it is renamed into place.
func (r *Report) Write(path, format string) error {
	data, err := r.Encode(format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create report temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write report: %w", err)
	}
	if err := syncFile(tmp); err != nil {
		cleanup()
		return fmt.Errorf("sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename report into place: %w", err)
	}
	return nil
}
