package toolchain

import (
	"context"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/paths"
	"github.com/thoreinstein/rigup/internal/report"
)

// rustupInstall is the official rustup bootstrap, run non-interactively on
// the stable channel. It needs curl, a C compiler, and TLS headers on PATH,
// which is why the generic package phase must complete first.
const rustupInstall = `curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y --default-toolchain stable`

// Rust bootstraps the Rust toolchain through rustup.
type Rust struct {
	cap capability.Capability
}

// NewRust creates the Rust strategy.
func NewRust() *Rust {
	c, _ := capability.Lookup(capability.Rust)
	return &Rust{cap: c}
}

// Capability returns the rust catalog entry.
func (r *Rust) Capability() capability.Capability {
	return r.cap
}

// Bootstrap installs rustup if absent, or asks it to update itself and the
// stable channel if present. Re-running update on a current install is a
// safe no-op.
func (r *Rust) Bootstrap(ctx context.Context, env *Env) Result {
	return execute(ctx, env, r.cap, report.StrategyVersionManagerScript, actions{
		update: func(ctx context.Context, env *Env) error {
			return env.Runner.Run(ctx, "rustup", "update")
		},
		install: func(ctx context.Context, env *Env) error {
			if err := env.Runner.Run(ctx, "sh", "-c", rustupInstall); err != nil {
				return err
			}
			// Make the new proxies visible to the rest of this run.
			return env.Runner.AppendPath(paths.CargoBin())
		},
		onInstalled: []string{
			"Add " + paths.CargoBin() + " to PATH in your shell profile (this run exported it temporarily)",
		},
	})
}
