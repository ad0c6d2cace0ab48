package hostenv

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
)

// brewInstall is Homebrew's official bootstrap command. It is the one
// install rigup performs before a package manager exists, so it cannot go
// through an adapter.
const brewInstall = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`

// Detect probes the host for its package manager without mutating anything.
//
// Detection order is deterministic and total:
//   - linux: apt, then yum, then dnf; none of the three is
//     ErrUnsupportedPlatform.
//   - darwin: Homebrew present or ErrPackageManagerMissing.
//   - windows: Chocolatey present or ErrPackageManagerMissing.
//   - anything else: ErrUnsupportedPlatform.
//
// goos is injected (normally runtime.GOOS) so tests can exercise every
// branch on one host.
func Detect(runner execx.Runner, goos string) (*Profile, error) {
	switch goos {
	case "linux":
		for _, candidate := range []struct {
			command string
			manager PackageManager
			family  DistroFamily
		}{
			{"apt", Apt, DebianLike},
			{"yum", Yum, RHELLike},
			{"dnf", Dnf, RHELLike},
		} {
			if _, err := runner.LookPath(candidate.command); err == nil {
				slog.Default().Debug("package manager detected",
					"manager", string(candidate.manager))
				return &Profile{
					OS:             Linux,
					DistroFamily:   candidate.family,
					PackageManager: candidate.manager,
				}, nil
			}
		}
		return nil, errors.Wrap(errors.ErrUnsupportedPlatform,
			"no supported Linux package manager found (need apt, yum, or dnf)")

	case "darwin":
		if _, err := runner.LookPath("brew"); err == nil {
			return &Profile{OS: MacOS, PackageManager: Brew}, nil
		}
		return nil, errors.Wrap(errors.ErrPackageManagerMissing,
			"Homebrew not found")

	case "windows":
		if _, err := runner.LookPath("choco"); err == nil {
			return &Profile{OS: Windows, PackageManager: Choco}, nil
		}
		return nil, errors.Wrap(errors.ErrPackageManagerMissing,
			"Chocolatey not found; install it from an elevated shell first")

	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedPlatform,
			"unknown operating system %q", goos)
	}
}

// Resolve detects the platform profile and, on macOS only, self-installs
// the missing package manager.
//
// If Homebrew is absent, Resolve runs its install script and returns
// ErrRestartRequired — the operator must re-run in a fresh shell so brew
// lands on PATH. If the self-install fails, the condition degrades to
// ErrPackageManagerMissing. Windows never self-installs Chocolatey because
// that needs an elevated shell rigup cannot guarantee.
func Resolve(ctx context.Context, runner execx.Runner, goos string) (*Profile, error) {
	profile, err := Detect(runner, goos)
	if err == nil {
		return profile, nil
	}
	if goos != "darwin" || !errors.Is(err, errors.ErrPackageManagerMissing) {
		return nil, err
	}

	slog.Default().Info("Homebrew not found, installing it")
	if err := runner.Run(ctx, "/bin/bash", "-c", brewInstall); err != nil {
		return nil, errors.Wrap(errors.ErrPackageManagerMissing,
			"Homebrew install script failed")
	}
	// Brew is installed but not on this process's original PATH; a
	// single pass cannot complete from here.
	return nil, errors.Wrap(errors.ErrRestartRequired,
		"Homebrew installed")
}
