// Package toolchain implements the per-toolchain bootstrap strategies for
// runtimes the generic package manager cannot uniformly satisfy: the Rust
// toolchain manager, the Node version manager, the Flutter SDK, the Go
// toolchain, and the Docker engine.
//
// Every strategy follows the same micro-protocol: probe via the capability
// checker, update-or-skip when present, install and re-probe when absent.
package toolchain

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/pkgmgr"
	"github.com/thoreinstein/rigup/internal/report"
)

// Env carries the run-scoped handles a strategy may touch. The orchestrator
// builds one Env after platform resolution and shares it across strategies.
type Env struct {
	Runner  execx.Runner
	Profile *hostenv.Profile
	Manager pkgmgr.Manager
	Logger  *slog.Logger

	// User is the invoking user's name, needed for group membership
	// changes. Populated from the environment by the orchestrator.
	User string
}

// Result is a strategy's terminal outcome plus any operator directives it
// produced.
type Result struct {
	Strategy   report.Strategy
	Outcome    report.Outcome
	Detail     string
	Directives []string
}

// Bootstrapper is one toolchain's install strategy.
type Bootstrapper interface {
	// Capability returns the catalog entry this strategy satisfies.
	Capability() capability.Capability

	// Bootstrap executes the probe → act → re-probe protocol and returns
	// a terminal Result. Failures are reported in the Result, never as a
	// process-level error; only the orchestrator decides whether a failed
	// capability aborts the run.
	Bootstrap(ctx context.Context, env *Env) Result
}

// All returns the bootstrappers in catalog order.
func All() []Bootstrapper {
	return []Bootstrapper{
		NewRust(),
		NewNode(),
		NewFlutter(),
		NewGo(),
		NewDocker(),
	}
}

// actions parameterizes the shared micro-protocol.
type actions struct {
	// update runs when the tool is already present. Its failure is logged
	// but does not change the AlreadyPresent outcome: the tool works.
	update func(ctx context.Context, env *Env) error

	// install runs when the tool is absent.
	install func(ctx context.Context, env *Env) error

	// verify re-probes after install. Defaults to the capability checker.
	verify func(env *Env) bool

	// onInstalled holds directives emitted only when install actually ran.
	onInstalled []string
}

// execute is the shared three-step protocol: (1) probe, (2) update or
// install, (3) re-probe and record.
func execute(ctx context.Context, env *Env, cap capability.Capability, strategy report.Strategy, act actions) Result {
	if capability.Check(env.Runner, cap) {
		if act.update != nil {
			if err := act.update(ctx, env); err != nil {
				env.Logger.Warn("update failed, keeping current version",
					"toolchain", cap.Name, "error", err)
			}
		}
		return Result{Strategy: strategy, Outcome: report.AlreadyPresent}
	}

	if err := act.install(ctx, env); err != nil {
		return Result{
			Strategy: strategy,
			Outcome:  report.Failed,
			Detail:   err.Error(),
		}
	}

	verify := act.verify
	if verify == nil {
		verify = func(env *Env) bool { return capability.Check(env.Runner, cap) }
	}
	if !verify(env) {
		return Result{
			Strategy: strategy,
			Outcome:  report.Failed,
			Detail:   cap.Command + " still absent after install",
		}
	}

	return Result{
		Strategy:   strategy,
		Outcome:    report.Installed,
		Directives: act.onInstalled,
	}
}
