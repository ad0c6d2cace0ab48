package pkgmgr

import (
	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/execx"
)

// NewApt returns the Debian-family backend. apt-get is used instead of apt
// for stable scripting output.
func NewApt(runner execx.Runner) Manager {
	return &manager{
		name:        "apt",
		runner:      runner,
		refreshArgv: []string{"sudo", "apt-get", "update"},
		installArgv: []string{"sudo", "apt-get", "install", "-y"},
		packages: map[string][]string{
			capability.Git:     {"git"},
			capability.Curl:    {"curl"},
			capability.GCC:     {"build-essential"},
			capability.Make:    {"build-essential"},
			capability.OpenSSL: {"libssl-dev", "openssl", "pkg-config"},
			capability.Protoc:  {"protobuf-compiler"},
			capability.Go:      {"golang-go"},
		},
	}
}

// NewYum returns the legacy RHEL-family backend.
func NewYum(runner execx.Runner) Manager {
	return &manager{
		name:        "yum",
		runner:      runner,
		refreshArgv: []string{"sudo", "yum", "makecache"},
		installArgv: []string{"sudo", "yum", "install", "-y"},
		packages:    rhelPackages(),
	}
}

// NewDnf returns the modern RHEL-family backend. Package names are shared
// with yum.
func NewDnf(runner execx.Runner) Manager {
	return &manager{
		name:        "dnf",
		runner:      runner,
		refreshArgv: []string{"sudo", "dnf", "makecache"},
		installArgv: []string{"sudo", "dnf", "install", "-y"},
		packages:    rhelPackages(),
	}
}

func rhelPackages() map[string][]string {
	return map[string][]string{
		capability.Git:     {"git"},
		capability.Curl:    {"curl"},
		capability.GCC:     {"gcc", "gcc-c++"},
		capability.Make:    {"make"},
		capability.OpenSSL: {"openssl-devel", "openssl"},
		capability.Protoc:  {"protobuf-compiler"},
		capability.Go:      {"golang"},
	}
}

// NewBrew returns the macOS backend. brew runs unprivileged.
func NewBrew(runner execx.Runner) Manager {
	return &manager{
		name:        "brew",
		runner:      runner,
		refreshArgv: []string{"brew", "update"},
		installArgv: []string{"brew", "install"},
		packages: map[string][]string{
			capability.Git:     {"git"},
			capability.Curl:    {"curl"},
			capability.GCC:     {"gcc"},
			capability.Make:    {"make"},
			capability.OpenSSL: {"openssl@3", "pkg-config"},
			capability.Protoc:  {"protobuf"},
			capability.Go:      {"go"},
		},
	}
}

// NewChoco returns the Windows backend. Chocolatey has no separate index
// refresh step, so Refresh is a no-op.
func NewChoco(runner execx.Runner) Manager {
	return &manager{
		name:        "choco",
		runner:      runner,
		installArgv: []string{"choco", "install", "-y"},
		packages: map[string][]string{
			capability.Git:     {"git"},
			capability.Curl:    {"curl"},
			capability.GCC:     {"mingw"},
			capability.Make:    {"make"},
			capability.OpenSSL: {"openssl"},
			capability.Protoc:  {"protoc"},
			capability.Go:      {"golang"},
		},
	}
}
