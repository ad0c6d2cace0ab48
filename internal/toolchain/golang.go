package toolchain

import (
	"context"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/pkgmgr"
	"github.com/thoreinstein/rigup/internal/report"
)

// Go bootstraps the Go toolchain. Unlike the other language toolchains it
// has no version manager of its own here; the platform package manager's
// golang package is current enough, so this strategy reuses the generic
// adapter inside the toolchain phase.
type Go struct {
	cap capability.Capability
}

// NewGo creates the Go strategy.
func NewGo() *Go {
	c, _ := capability.Lookup(capability.Go)
	return &Go{cap: c}
}

// Capability returns the go catalog entry.
func (g *Go) Capability() capability.Capability {
	return g.cap
}

// Bootstrap installs the backend's golang package if go is absent.
func (g *Go) Bootstrap(ctx context.Context, env *Env) Result {
	return execute(ctx, env, g.cap, report.StrategyPackageManager, actions{
		install: func(ctx context.Context, env *Env) error {
			pkgs := pkgmgr.PackagesFor(env.Manager, []string{capability.Go})
			return env.Manager.InstallMany(ctx, pkgs)
		},
	})
}
