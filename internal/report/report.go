// Package report collects per-capability install outcomes and renders the
// end-of-run summary for the operator.
package report

import (
	"time"

	"github.com/thoreinstein/rigup/internal/capability"
)

// Outcome is the terminal result of one capability's install decision.
// Every capability reaches exactly one outcome before the run ends.
type Outcome string

const (
	// AlreadyPresent means the probe found the tool and no mutation was
	// needed (an in-place update still counts as AlreadyPresent only when
	// it was a no-op; see Installed).
	AlreadyPresent Outcome = "already-present"

	// Installed means the strategy mutated the host and the re-probe
	// confirmed the tool.
	Installed Outcome = "installed"

	// Failed means the strategy ran and the tool is still absent.
	Failed Outcome = "failed"

	// SkippedOptional means an optional capability was deliberately not
	// attempted (disabled by config or unsupported on this platform).
	SkippedOptional Outcome = "skipped"
)

// Strategy identifies the mechanism an attempt used.
type Strategy string

const (
	// StrategyPackageManager installs through the platform's native
	// package manager.
	StrategyPackageManager Strategy = "package-manager"

	// StrategyVersionManagerScript installs via a toolchain's own
	// bootstrap or version-manager script.
	StrategyVersionManagerScript Strategy = "version-manager-script"

	// StrategyManualDirective means rigup cannot act and instead emits an
	// operator directive.
	StrategyManualDirective Strategy = "manual-directive"
)

// InstallAttempt records the terminal outcome for one capability in one run.
// Attempts are never persisted across runs; idempotence comes from
// re-probing, not from a ledger.
type InstallAttempt struct {
	Capability capability.Capability `json:"capability"`
	Strategy   Strategy              `json:"strategy,omitempty"`
	Outcome    Outcome               `json:"outcome"`

	// Detail carries the failure reason or a short note; empty on success.
	Detail string `json:"detail,omitempty"`
}

// Report is the ordered sequence of attempts plus free-text operator
// directives. It is built incrementally during the run and consumed once at
// the end.
type Report struct {
	Started    time.Time        `json:"started"`
	Attempts   []InstallAttempt `json:"attempts"`
	Directives []string         `json:"directives,omitempty"`

	// Fatal describes the condition that aborted the run, if any.
	Fatal string `json:"fatal,omitempty"`
}

// New creates an empty report stamped with the current time.
func New() *Report {
	return &Report{Started: time.Now().UTC()}
}

// Record appends an attempt, preserving run order.
func (r *Report) Record(a InstallAttempt) {
	r.Attempts = append(r.Attempts, a)
}

// AddDirective appends an operator directive, dropping duplicates.
func (r *Report) AddDirective(d string) {
	for _, existing := range r.Directives {
		if existing == d {
			return
		}
	}
	r.Directives = append(r.Directives, d)
}

// SetFatal records the condition that aborted the run.
func (r *Report) SetFatal(msg string) {
	r.Fatal = msg
}

// CountByOutcome returns how many attempts ended with the given outcome.
func (r *Report) CountByOutcome(o Outcome) int {
	n := 0
	for _, a := range r.Attempts {
		if a.Outcome == o {
			n++
		}
	}
	return n
}

// FailedRequired returns the first failed required capability, if any.
func (r *Report) FailedRequired() (InstallAttempt, bool) {
	for _, a := range r.Attempts {
		if a.Outcome == Failed && a.Capability.Required {
			return a, true
		}
	}
	return InstallAttempt{}, false
}
