// Package orchestrate sequences the bootstrap run: platform resolution,
// generic package installs, toolchain bootstraps, and report assembly.
package orchestrate

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/config"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/pkgmgr"
	"github.com/thoreinstein/rigup/internal/report"
	"github.com/thoreinstein/rigup/internal/toolchain"
)

// State names the orchestrator's position in the run.
type State string

const (
	StateInit                    State = "init"
	StatePlatformResolved        State = "platform-resolved"
	StatePackagesInstalling      State = "packages-installing"
	StateToolchainsBootstrapping State = "toolchains-bootstrapping"
	StateReporting               State = "reporting"
	StateDone                    State = "done"
	StateAborted                 State = "aborted"
)

// restartDirective is emitted on the distinguished RestartRequired stop.
const restartDirective = "Open a new shell and re-run `rigup up` to continue with the freshly installed package manager"

// Options configures a run. Zero values select the real host.
type Options struct {
	// GOOS overrides the detected operating system; tests use it to
	// exercise foreign branches. Defaults to runtime.GOOS.
	GOOS string

	// Runner is the host handle. Defaults to the real system runner.
	Runner execx.Runner

	// Config carries skip lists and toolchain toggles. May be nil.
	Config *config.Config

	// ExtraPackages are backend package names appended to the generic
	// bulk install (from the project manifest). Best-effort only.
	ExtraPackages []string

	// Bootstrappers overrides the toolchain strategy set. Defaults to
	// toolchain.All().
	Bootstrappers []toolchain.Bootstrapper

	// User is the invoking user for group-membership changes.
	// Defaults to $USER.
	User string

	Logger *slog.Logger
}

// Orchestrator drives one bootstrap run. It is single-use and strictly
// sequential: later phases depend on earlier phases' PATH side effects, so
// no step runs concurrently.
type Orchestrator struct {
	opts   Options
	state  State
	report *report.Report
}

// New creates an Orchestrator, filling in host defaults.
func New(opts Options) *Orchestrator {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Runner == nil {
		opts.Runner = execx.NewSystem()
	}
	if opts.Bootstrappers == nil {
		opts.Bootstrappers = toolchain.All()
	}
	if opts.User == "" {
		opts.User = os.Getenv("USER")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Orchestrator{
		opts:   opts,
		state:  StateInit,
		report: report.New(),
	}
}

// State returns the orchestrator's current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the full sequence. The returned report is always usable,
// including on abort; the error is non-nil only for fatal conditions
// (unsupported platform, missing package manager, required install failure)
// and for the distinguished restart condition.
func (o *Orchestrator) Run(ctx context.Context) (*report.Report, error) {
	profile, err := hostenv.Resolve(ctx, o.opts.Runner, o.opts.GOOS)
	if err != nil {
		return o.abort(err)
	}
	o.transition(StatePlatformResolved)
	o.opts.Logger.Info("platform resolved",
		"os", string(profile.OS),
		"package_manager", string(profile.PackageManager))

	manager, err := pkgmgr.ForProfile(profile, o.opts.Runner)
	if err != nil {
		return o.abort(err)
	}

	env := &toolchain.Env{
		Runner:  o.opts.Runner,
		Profile: profile,
		Manager: manager,
		Logger:  o.opts.Logger,
		User:    o.opts.User,
	}

	o.transition(StatePackagesInstalling)
	if err := o.installPackages(ctx, manager); err != nil {
		return o.abort(err)
	}

	o.transition(StateToolchainsBootstrapping)
	if err := o.bootstrapToolchains(ctx, env); err != nil {
		return o.abort(err)
	}

	o.transition(StateReporting)
	o.transition(StateDone)
	return o.report, nil
}

// installPackages drives the generic phase: probe everything, issue one
// bulk install for what is missing, then re-probe to assign per-capability
// outcomes in catalog order.
func (o *Orchestrator) installPackages(ctx context.Context, manager pkgmgr.Manager) error {
	if err := manager.Refresh(ctx); err != nil {
		// Index refresh failing must not block the installs.
		o.opts.Logger.Warn("package index refresh failed", "error", err)
	}

	type classified struct {
		cap     capability.Capability
		skipped bool
		present bool
	}

	generic := capability.Generic()
	entries := make([]classified, 0, len(generic))
	var missing []string

	for _, c := range generic {
		e := classified{cap: c}
		switch {
		case !c.Required && o.opts.Config.ShouldSkip(c.Name):
			e.skipped = true
		case capability.Check(o.opts.Runner, c):
			e.present = true
		default:
			missing = append(missing, c.Name)
		}
		entries = append(entries, e)
	}

	pkgs := pkgmgr.PackagesFor(manager, missing)
	pkgs = appendUnique(pkgs, o.opts.ExtraPackages)
	if len(pkgs) > 0 {
		if err := manager.InstallMany(ctx, pkgs); err != nil {
			// Per-capability outcomes still come from the re-probe below;
			// a bulk failure may have installed a prefix of the set.
			o.opts.Logger.Warn("bulk install reported failure", "error", err)
		}
	}

	for _, e := range entries {
		attempt := report.InstallAttempt{
			Capability: e.cap,
			Strategy:   report.StrategyPackageManager,
		}
		switch {
		case e.skipped:
			attempt.Strategy = ""
			attempt.Outcome = report.SkippedOptional
			attempt.Detail = "disabled by configuration"
		case e.present:
			attempt.Outcome = report.AlreadyPresent
		case capability.Check(o.opts.Runner, e.cap):
			attempt.Outcome = report.Installed
		default:
			attempt.Outcome = report.Failed
			attempt.Detail = e.cap.Command + " still absent after package install"
		}
		o.report.Record(attempt)
	}

	if failed, ok := o.report.FailedRequired(); ok {
		return errors.Wrapf(errors.ErrRequiredInstallFailed,
			"%s", failed.Capability.Name)
	}
	return nil
}

// bootstrapToolchains runs every strategy to a terminal outcome. Optional
// failures degrade; a failed required capability aborts.
func (o *Orchestrator) bootstrapToolchains(ctx context.Context, env *toolchain.Env) error {
	for _, b := range o.opts.Bootstrappers {
		c := b.Capability()

		if !o.opts.Config.ToolchainEnabled(c.Name) || o.opts.Config.ShouldSkip(c.Name) {
			o.report.Record(report.InstallAttempt{
				Capability: c,
				Outcome:    report.SkippedOptional,
				Detail:     "disabled by configuration",
			})
			continue
		}

		o.opts.Logger.Info("bootstrapping toolchain", "toolchain", c.Name)
		res := b.Bootstrap(ctx, env)

		o.report.Record(report.InstallAttempt{
			Capability: c,
			Strategy:   res.Strategy,
			Outcome:    res.Outcome,
			Detail:     res.Detail,
		})
		for _, d := range res.Directives {
			o.report.AddDirective(d)
		}

		if res.Outcome == report.Failed && c.Required {
			return errors.Wrapf(errors.ErrRequiredInstallFailed, "%s", c.Name)
		}
	}
	return nil
}

// abort moves to the terminal Aborted state, recording the condition on the
// report. The restart condition adds a directive instead of a fatal line.
func (o *Orchestrator) abort(err error) (*report.Report, error) {
	o.transition(StateAborted)
	if errors.Is(err, errors.ErrRestartRequired) {
		o.report.AddDirective(restartDirective)
	} else {
		o.report.SetFatal(err.Error())
	}
	return o.report, err
}

func (o *Orchestrator) transition(next State) {
	o.opts.Logger.Debug("state transition",
		"from", string(o.state), "to", string(next))
	o.state = next
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, p := range base {
		seen[p] = true
	}
	for _, p := range extra {
		if !seen[p] {
			seen[p] = true
			base = append(base, p)
		}
	}
	return base
}
