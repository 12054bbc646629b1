package steps

import (
	"fmt"
	"time"

	"wsl-dev-setup/internal/logger"
	"wsl-dev-setup/internal/probe"
)

// ID tags the kind of work a step performs. Dispatch is over these typed
// constants rather than menu strings, so a switch over step kinds is
// checkable for exhaustiveness.
type ID int

const (
	IDElevation ID = iota
	IDNetwork
	IDFeature
	IDSubsystem
	IDWSLVersion
	IDDistribution
	IDDefaultDistribution
	IDPackage
	IDFont
	IDTerminal
)

// Step is one orchestrated unit of work: install a package, toggle a
// feature, merge the terminal config. Steps are defined statically and
// invoked by the orchestrator; they hold no state of their own.
//
// Probe is optional. When set and it reports Present, the step is skipped
// with a distinct "already satisfied" status and the Action is never
// invoked, which is what makes repeated full runs cheap and side-effect
// free. An Unknown probe result proceeds with the action: the actions are
// safe to re-apply, a stale skip is not.
//
// Critical marks a mandatory prerequisite (elevated rights, a confirmed
// network decline). A critical failure aborts the remaining sequence;
// any other failure is reported and the run continues.
type Step struct {
	ID       ID
	Label    string
	Critical bool
	Probe    func() probe.State
	Action   func() error
}

// StepError wraps a failed step's underlying cause with the step identity,
// so the report can show which unit of work failed and why.
type StepError struct {
	Step  string
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Status is the outcome of running one step.
type Status int

const (
	StatusSucceeded Status = iota
	StatusSkipped          // probe reported Present, action not invoked
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Result records the outcome of one step invocation, with timing.
type Result struct {
	ID       ID
	Label    string
	Status   Status
	Err      *StepError
	Duration time.Duration
}

// Run executes exactly one step: probe first, skip if already satisfied,
// otherwise invoke the action and wrap any failure in a StepError.
func Run(s Step) Result {
	start := time.Now()

	if s.Probe != nil {
		switch s.Probe() {
		case probe.Present:
			logger.Info("[INFO] %s is already satisfied. Skipping.\n", s.Label)
			return Result{ID: s.ID, Label: s.Label, Status: StatusSkipped, Duration: time.Since(start)}
		case probe.Unknown:
			logger.Debug("[DEBUG] State of %s is unknown, proceeding with action\n", s.Label)
		}
	}

	if err := s.Action(); err != nil {
		return Result{
			ID:       s.ID,
			Label:    s.Label,
			Status:   StatusFailed,
			Err:      &StepError{Step: s.Label, Cause: err},
			Duration: time.Since(start),
		}
	}
	return Result{ID: s.ID, Label: s.Label, Status: StatusSucceeded, Duration: time.Since(start)}
}
