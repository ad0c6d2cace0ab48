// Package capability defines the static catalog of external tools rigup
// manages and the PATH probe used to test for them.
package capability

import (
	"github.com/thoreinstein/rigup/internal/execx"
)

// Kind distinguishes how a capability is installed.
type Kind string

const (
	// KindPackage capabilities are installed in bulk through the platform's
	// generic package manager.
	KindPackage Kind = "package"

	// KindToolchain capabilities have a dedicated bootstrap strategy that a
	// generic package manager cannot uniformly satisfy.
	KindToolchain Kind = "toolchain"
)

// Capability is a named external tool whose presence or absence drives one
// install decision.
type Capability struct {
	// Name is the semantic identifier used in reports (e.g. "rust").
	Name string

	// Command is the executable probed on PATH (e.g. "rustup").
	Command string

	// Required capabilities abort the run when their install fails;
	// optional ones degrade gracefully.
	Required bool

	// Kind selects the install phase.
	Kind Kind
}

// Check reports whether the capability's command resolves on PATH.
// It is pure and side-effect free; safe to call any number of times.
// It is used both to skip redundant installs and to verify post-install
// success.
func Check(r execx.Runner, c Capability) bool {
	_, err := r.LookPath(c.Command)
	return err == nil
}
