// Package pkgmgr adapts the five supported native package managers
// (apt, yum, dnf, brew, choco) behind one interface.
//
// Each backend owns the mapping from semantic capability names to its own
// package names; the orchestrator stays backend-agnostic. Installs are
// issued as one bulk invocation per call to minimize repeated privilege
// prompts.
package pkgmgr

import (
	"context"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
)

// Manager is the uniform contract over package manager backends.
type Manager interface {
	// Name returns the backend identifier (apt, yum, dnf, brew, choco).
	Name() string

	// Refresh updates the local package indices. A refresh failure must be
	// treated as a warning by callers, never as fatal: it should not block
	// the install attempts that follow.
	Refresh(ctx context.Context) error

	// InstallMany installs the given backend package names in a single
	// bulk invocation. Per-capability outcomes are determined by the
	// caller re-probing PATH afterwards, not by parsing backend output.
	InstallMany(ctx context.Context, pkgs []string) error

	// Packages returns the backend-specific package names for a semantic
	// capability name, or nil if the backend has no mapping for it.
	Packages(capName string) []string
}

// manager is the shared backend implementation. The five constructors
// differ only in command prefixes and name maps.
type manager struct {
	name        string
	runner      execx.Runner
	refreshArgv []string // nil means the backend has no index refresh
	installArgv []string // package names are appended
	packages    map[string][]string
}

var _ Manager = (*manager)(nil)

func (m *manager) Name() string {
	return m.name
}

func (m *manager) Refresh(ctx context.Context) error {
	if len(m.refreshArgv) == 0 {
		return nil
	}
	if err := m.runner.Run(ctx, m.refreshArgv[0], m.refreshArgv[1:]...); err != nil {
		return errors.Wrapf(errors.ErrRefreshFailed, "%s: %v", m.name, err)
	}
	return nil
}

func (m *manager) InstallMany(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	argv := append(append([]string{}, m.installArgv...), pkgs...)
	if err := m.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		return errors.Wrapf(err, "%s install", m.name)
	}
	return nil
}

func (m *manager) Packages(capName string) []string {
	return m.packages[capName]
}

// ForProfile selects the backend matching the resolved profile.
func ForProfile(p *hostenv.Profile, runner execx.Runner) (Manager, error) {
	switch p.PackageManager {
	case hostenv.Apt:
		return NewApt(runner), nil
	case hostenv.Yum:
		return NewYum(runner), nil
	case hostenv.Dnf:
		return NewDnf(runner), nil
	case hostenv.Brew:
		return NewBrew(runner), nil
	case hostenv.Choco:
		return NewChoco(runner), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedPlatform,
			"no adapter for package manager %q", p.PackageManager)
	}
}

// PackagesFor flattens and dedupes the backend package names for a set of
// semantic capability names, preserving first-seen order.
func PackagesFor(m Manager, capNames []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, capName := range capNames {
		for _, pkg := range m.Packages(capName) {
			if !seen[pkg] {
				seen[pkg] = true
				out = append(out, pkg)
			}
		}
	}
	return out
}
