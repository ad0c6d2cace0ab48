package toolchain

import (
	"context"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/report"
)

// dockerInstall is the vendor's convenience script for Linux engine installs.
const dockerInstall = `curl -fsSL https://get.docker.com | sh`

// Operator directives for the container engine.
const (
	dockerRelogin = "Log out and back in (or reboot) so docker group membership takes effect"
	dockerLaunch  = "Launch Docker Desktop once manually to finish its setup"
)

// Docker bootstraps the container engine. On Linux it runs the vendor's
// convenience script and adds the invoking user to the docker group;
// on macOS and Windows it installs the Desktop application through the
// package manager.
type Docker struct {
	cap capability.Capability
}

// NewDocker creates the Docker strategy.
func NewDocker() *Docker {
	c, _ := capability.Lookup(capability.Docker)
	return &Docker{cap: c}
}

// Capability returns the docker catalog entry.
func (d *Docker) Capability() capability.Capability {
	return d.cap
}

// Bootstrap installs the engine if absent. The group membership change only
// takes effect in a new login session, so it is recorded as an operator
// directive rather than verified in-process.
func (d *Docker) Bootstrap(ctx context.Context, env *Env) Result {
	switch env.Profile.OS {
	case hostenv.Linux:
		return execute(ctx, env, d.cap, report.StrategyVersionManagerScript, actions{
			install: func(ctx context.Context, env *Env) error {
				if err := env.Runner.Run(ctx, "sh", "-c", dockerInstall); err != nil {
					return err
				}
				if env.User == "" {
					return errors.New("cannot determine invoking user for docker group membership")
				}
				return env.Runner.Run(ctx, "sudo", "usermod", "-aG", "docker", env.User)
			},
			onInstalled: []string{dockerRelogin},
		})

	case hostenv.MacOS:
		return execute(ctx, env, d.cap, report.StrategyPackageManager, actions{
			install: func(ctx context.Context, env *Env) error {
				return env.Runner.Run(ctx, "brew", "install", "--cask", "docker")
			},
			// The cask drops the CLI next to the app before first launch;
			// presence of the app bundle is what brew guarantees.
			verify:      func(env *Env) bool { return true },
			onInstalled: []string{dockerLaunch},
		})

	case hostenv.Windows:
		return execute(ctx, env, d.cap, report.StrategyPackageManager, actions{
			install: func(ctx context.Context, env *Env) error {
				return env.Runner.Run(ctx, "choco", "install", "-y", "docker-desktop")
			},
			verify:      func(env *Env) bool { return true },
			onInstalled: []string{dockerLaunch},
		})

	default:
		return Result{
			Strategy: report.StrategyManualDirective,
			Outcome:  report.SkippedOptional,
			Detail:   "no docker strategy for this platform",
		}
	}
}
