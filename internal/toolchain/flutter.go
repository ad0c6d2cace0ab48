package toolchain

import (
	"context"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/git"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/paths"
	"github.com/thoreinstein/rigup/internal/report"
)

// flutterRepo is the upstream SDK; the stable branch is shallow-cloned into
// the fixed user-local directory.
const (
	flutterRepo   = "https://github.com/flutter/flutter.git"
	flutterBranch = "stable"
)

// Flutter bootstraps the Flutter SDK by cloning it and running its own
// doctor. On Windows the strategy declares the boundary of automatic
// remediation and emits a manual directive instead.
type Flutter struct {
	cap capability.Capability
}

// NewFlutter creates the Flutter strategy.
func NewFlutter() *Flutter {
	c, _ := capability.Lookup(capability.Flutter)
	return &Flutter{cap: c}
}

// Capability returns the flutter catalog entry.
func (f *Flutter) Capability() capability.Capability {
	return f.cap
}

// Bootstrap clones the stable branch into ~/flutter if it is not already
// there, then runs `flutter doctor`. This incompleteness on Windows is
// intentional, not a bug.
func (f *Flutter) Bootstrap(ctx context.Context, env *Env) Result {
	if env.Profile.OS == hostenv.Windows {
		return Result{
			Strategy: report.StrategyManualDirective,
			Outcome:  report.SkippedOptional,
			Detail:   "automatic Flutter install is not supported on Windows",
			Directives: []string{
				"Install Flutter manually from https://docs.flutter.dev/get-started/install/windows",
			},
		}
	}

	return execute(ctx, env, f.cap, report.StrategyVersionManagerScript, actions{
		update: func(ctx context.Context, env *Env) error {
			return env.Runner.Run(ctx, "flutter", "doctor")
		},
		install: func(ctx context.Context, env *Env) error {
			if !git.IsRepo(paths.FlutterDir()) {
				if err := git.CloneBranch(ctx, env.Runner, flutterRepo, flutterBranch, paths.FlutterDir(), 1); err != nil {
					return err
				}
			}
			if err := env.Runner.AppendPath(paths.FlutterBin()); err != nil {
				return err
			}
			return env.Runner.Run(ctx, "flutter", "doctor")
		},
		onInstalled: []string{
			"Add " + paths.FlutterBin() + " to PATH in your shell profile (this run exported it temporarily)",
		},
	})
}
