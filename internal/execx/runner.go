// Package execx abstracts external process invocation and PATH mutation.
//
// Every component that touches the host machine (package manager adapters,
// toolchain bootstrappers, the platform resolver) receives a Runner instead
// of calling os/exec directly, so tests can substitute a recording fake.
package execx

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/rigup/internal/errors"
)

// Runner is the handle to the host machine's mutable state: its executables,
// its PATH, and process invocation.
type Runner interface {
	// LookPath reports whether name resolves to an executable on PATH.
	// It is side-effect free and safe to call repeatedly.
	LookPath(name string) (string, error)

	// Run executes the command, streaming stdout and stderr to the
	// operator's terminal. Stdin is connected to support interactive
	// prompts (sudo passwords, installer confirmations).
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// AppendPath extends PATH with dir for the remainder of this process.
	// The change is never persisted; the final report flags directories
	// that need a permanent shell-configuration edit.
	AppendPath(dir string) error
}

// System is the Runner backed by the real host.
type System struct{}

var _ Runner = (*System)(nil)

// NewSystem returns a Runner that executes against the real host.
func NewSystem() *System {
	return &System{}
}

// LookPath resolves name via exec.LookPath.
func (s *System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command with inherited stdio.
func (s *System) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", name)
	}
	return nil
}

// Output executes the command and returns trimmed stdout. Stderr is passed
// through so tool diagnostics stay visible.
func (s *System) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "running %s", name)
	}
	return strings.TrimSpace(string(out)), nil
}

// AppendPath extends the process PATH with dir if it is not already present.
func (s *System) AppendPath(dir string) error {
	path := os.Getenv("PATH")
	for _, p := range strings.Split(path, string(os.PathListSeparator)) {
		if p == dir {
			return nil
		}
	}
	return os.Setenv("PATH", path+string(os.PathListSeparator)+dir)
}
