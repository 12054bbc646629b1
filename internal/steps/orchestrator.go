package steps

import (
	"time"

	"wsl-dev-setup/internal/logger"
)

// Report accumulates the outcome of a whole run: one Result per attempted
// step plus the total elapsed time. Steps after a critical failure do not
// appear; they were never attempted.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Counts returns how many steps succeeded, were skipped as already
// satisfied, and failed.
func (r *Report) Counts() (succeeded, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusSucceeded:
			succeeded++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return
}

// RunAll executes the steps strictly sequentially in the declared order.
// Each step runs to completion before the next begins: steps mutate
// machine-wide state (optional features, PATH, the terminal config) and
// must never overlap. External commands are not wrapped in timeouts, so a
// hung command blocks the run until the user interrupts it; aborts take
// effect only at step boundaries.
//
// Non-critical failures are reported and the sequence continues. A
// critical failure stops the run immediately and is returned as the
// error; completed steps stay applied, there is no rollback.
func RunAll(list []Step) (*Report, error) {
	started := time.Now()
	report := &Report{}

	for _, s := range list {
		logger.Debug("[DEBUG] Running step %q (critical=%v)\n", s.Label, s.Critical)
		res := Run(s)
		report.Results = append(report.Results, res)

		if res.Status == StatusFailed {
			logger.Error("[ERROR] %v\n", res.Err)
			if s.Critical {
				logger.Error("[ERROR] %s is a required prerequisite. Aborting.\n", s.Label)
				report.Elapsed = time.Since(started)
				return report, res.Err
			}
			logger.Warn("[WARN] Continuing with remaining steps.\n")
			continue
		}
		if res.Status == StatusSucceeded {
			logger.Info("[INFO] Completed %s in %s\n", s.Label, res.Duration.Round(time.Millisecond))
		}
	}

	report.Elapsed = time.Since(started)
	return report, nil
}
