package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of one file's conversion.
type Status string

// File outcomes.
const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// FileResult records one file's outcome within a batch run.
type FileResult struct {
	Path    string `json:"path"` // relative to the input root
	Status  Status `json:"status"`
	ErrKind string `json:"error_kind,omitempty"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// Manifest is the durable record of one batch run. Results are ordered
// by relative path regardless of completion order, so repeated runs
// over the same tree diff cleanly. A manifest is never mutated after
// Run returns it.
type Manifest struct {
	RunID      string        `json:"run_id"`
	InputRoot  string        `json:"input_root"`
	OutputRoot string        `json:"output_root"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`

	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Total     int `json:"total"`

	Results []FileResult `json:"results"`
}

func newManifest(inputRoot, outputRoot string) *Manifest {
	return &Manifest{
		RunID:      uuid.New().String(),
		InputRoot:  inputRoot,
		OutputRoot: outputRoot,
		StartedAt:  time.Now().UTC(),
	}
}

// finish installs the results, sorted by path, and computes the counts.
func (m *Manifest) finish(results []FileResult) {
	m.Results = results
	sort.Slice(m.Results, func(i, j int) bool {
		return m.Results[i].Path < m.Results[j].Path
	})
	for _, r := range m.Results {
		switch r.Status {
		case StatusSucceeded:
			m.Succeeded++
		case StatusFailed:
			m.Failed++
		case StatusSkipped:
			m.Skipped++
		}
	}
	m.Total = len(m.Results)
	m.Duration = time.Since(m.StartedAt)
}

// Failures returns the failed results, in path order.
func (m *Manifest) Failures() []FileResult {
	var out []FileResult
	for _, r := range m.Results {
		if r.Status == StatusFailed {
			out = append(out, r)
		}
	}
	return out
}

// Summary returns the one-line batch summary.
func (m *Manifest) Summary() string {
	return fmt.Sprintf("{succeeded: %d, failed: %d, total: %d}", m.Succeeded, m.Failed, m.Total)
}

// WriteJSON encodes the manifest to w.
func (m *Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// WriteErrorLog writes one line per failure (path, error kind, message)
// to the given log file. No file is written when there are no failures.
func (m *Manifest) WriteErrorLog(path string) error {
	failures := m.Failures()
	if len(failures) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating error log: %w", err)
	}
	defer f.Close()
	for _, r := range failures {
		if _, err := fmt.Fprintf(f, "%s\t%s\t%s\n", r.Path, r.ErrKind, r.Message); err != nil {
			return fmt.Errorf("writing error log: %w", err)
		}
	}
	return nil
}

// ReadManifest loads a manifest previously written with WriteJSON.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}
