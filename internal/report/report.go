package report

import (
	"encoding/json" // For JSON encoding and decoding of the report file
	"os"            // For reading and writing the report file
	"time"

	"wsl-dev-setup/internal/logger"
	"wsl-dev-setup/internal/steps"
)

// StepRecord is the persisted outcome of one step from the last run.
type StepRecord struct {
	Step     string `json:"step"`            // Human label of the step
	Status   string `json:"status"`          // succeeded, skipped, or failed
	Error    string `json:"error,omitempty"` // Failure cause, when failed
	Duration string `json:"duration"`        // Wall time the step took
}

// RunReport is the persisted record of the last run: per-step outcomes
// plus overall counts and elapsed time. It is a record only; the next run
// decides skip-vs-act from live probes, never from this file.
type RunReport struct {
	StartedAt time.Time    `json:"started_at"`
	Elapsed   string       `json:"elapsed"`
	Succeeded int          `json:"succeeded"`
	Skipped   int          `json:"skipped"`
	Failed    int          `json:"failed"`
	Steps     []StepRecord `json:"steps"`
}

// New converts an orchestrator report into its persistable form.
func New(startedAt time.Time, rep *steps.Report) *RunReport {
	succeeded, skipped, failed := rep.Counts()
	out := &RunReport{
		StartedAt: startedAt,
		Elapsed:   rep.Elapsed.Round(time.Millisecond).String(),
		Succeeded: succeeded,
		Skipped:   skipped,
		Failed:    failed,
	}
	for _, res := range rep.Results {
		record := StepRecord{
			Step:     res.Label,
			Status:   res.Status.String(),
			Duration: res.Duration.Round(time.Millisecond).String(),
		}
		if res.Err != nil {
			record.Error = res.Err.Error()
		}
		out.Steps = append(out.Steps, record)
	}
	return out
}

// Save writes the report to a JSON file at the given path, pretty-printed
// for readability. Errors are logged but not propagated: a failed report
// write must not turn a successful run into a failure.
func Save(path string, r *RunReport) {
	file, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal run report: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing run report to %s\n", path)
	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write report file %s: %v\n", path, err)
	}
}

// Load reads a previously saved report. A missing or unreadable file
// returns nil; there is simply no previous run to show.
func Load(path string) *RunReport {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var r RunReport
	if err := json.Unmarshal(file, &r); err != nil {
		logger.Debug("[DEBUG] Ignoring unparsable report file %s: %v\n", path, err)
		return nil
	}
	return &r
}
