// Package git provides the Git operations the SDK bootstrappers need.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
)

// CloneBranch shallow-clones a single branch of url into dest.
// Output streams to the operator's terminal and stdin stays connected to
// support interactive authentication.
func CloneBranch(ctx context.Context, runner execx.Runner, url, branch, dest string, depth int) error {
	args := []string{
		"clone",
		fmt.Sprintf("--depth=%d", depth),
		"--branch", branch,
		url, dest,
	}
	if err := runner.Run(ctx, "git", args...); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// IsRepo reports whether path holds a git checkout, by the presence of its
// .git directory.
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}
