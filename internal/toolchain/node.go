package toolchain

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/paths"
	"github.com/thoreinstein/rigup/internal/report"
)

// nvmInstall fetches the Node version manager's install script. nvm is a
// shell function, not a binary, so presence is probed via its source file
// rather than PATH.
const nvmInstall = `curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.1/install.sh | bash`

// nodeFloor is the oldest Node release considered current enough to leave
// alone. Anything older gets the LTS install treatment even though the
// binary is present.
var nodeFloor = semver.MustParse("18.0.0")

// Node bootstraps the Node runtime through nvm.
type Node struct {
	cap capability.Capability
}

// NewNode creates the Node strategy.
func NewNode() *Node {
	c, _ := capability.Lookup(capability.Node)
	return &Node{cap: c}
}

// Capability returns the node catalog entry.
func (n *Node) Capability() capability.Capability {
	return n.cap
}

// Bootstrap installs nvm if its script is absent, then requests the
// long-term-support release. nvm itself no-ops on an already-installed
// version, so the whole sequence is idempotent.
func (n *Node) Bootstrap(ctx context.Context, env *Env) Result {
	return execute(ctx, env, n.cap, report.StrategyVersionManagerScript, actions{
		update: func(ctx context.Context, env *Env) error {
			out, err := env.Runner.Output(ctx, "node", "--version")
			if err == nil && atLeast(out, nodeFloor) {
				return nil
			}
			return n.installLTS(ctx, env)
		},
		install: func(ctx context.Context, env *Env) error {
			if !nvmPresent() {
				if err := env.Runner.Run(ctx, "bash", "-c", nvmInstall); err != nil {
					return err
				}
			}
			return n.installLTS(ctx, env)
		},
		verify: func(env *Env) bool {
			if capability.Check(env.Runner, n.cap) {
				return true
			}
			// node lives under NVM_DIR, not this process's PATH; ask a
			// shell that sourced nvm.
			out, err := env.Runner.Output(context.Background(), "bash", "-c", nvmSourced("command -v node"))
			return err == nil && out != ""
		},
		onInstalled: []string{
			"Ensure your shell profile sources " + filepath.Join(paths.NVMDir(), "nvm.sh") + " so node is on PATH in new shells",
		},
	})
}

func (n *Node) installLTS(ctx context.Context, env *Env) error {
	return env.Runner.Run(ctx, "bash", "-c", nvmSourced("nvm install --lts"))
}

// nvmSourced wraps a command so it runs with nvm's shell function loaded.
func nvmSourced(cmd string) string {
	script := filepath.Join(paths.NVMDir(), "nvm.sh")
	return ". " + script + " && " + cmd
}

func nvmPresent() bool {
	_, err := os.Stat(filepath.Join(paths.NVMDir(), "nvm.sh"))
	return err == nil
}
