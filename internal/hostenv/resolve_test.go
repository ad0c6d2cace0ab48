package hostenv

import (
	"context"
	"strings"
	"testing"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
)

func TestResolve_LinuxDispatch(t *testing.T) {
	tests := []struct {
		name        string
		present     []string
		wantManager PackageManager
		wantFamily  DistroFamily
	}{
		{
			name:        "apt selected",
			present:     []string{"apt"},
			wantManager: Apt,
			wantFamily:  DebianLike,
		},
		{
			name:        "apt wins over yum and dnf",
			present:     []string{"dnf", "yum", "apt"},
			wantManager: Apt,
			wantFamily:  DebianLike,
		},
		{
			name:        "yum before dnf",
			present:     []string{"dnf", "yum"},
			wantManager: Yum,
			wantFamily:  RHELLike,
		},
		{
			name:        "dnf last",
			present:     []string{"dnf"},
			wantManager: Dnf,
			wantFamily:  RHELLike,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := execx.NewFake(tt.present...)
			profile, err := Resolve(context.Background(), runner, "linux")
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if profile.OS != Linux {
				t.Errorf("OS = %s, want linux", profile.OS)
			}
			if profile.PackageManager != tt.wantManager {
				t.Errorf("PackageManager = %s, want %s", profile.PackageManager, tt.wantManager)
			}
			if profile.DistroFamily != tt.wantFamily {
				t.Errorf("DistroFamily = %s, want %s", profile.DistroFamily, tt.wantFamily)
			}
		})
	}
}

func TestResolve_LinuxNoManager(t *testing.T) {
	runner := execx.NewFake()
	_, err := Resolve(context.Background(), runner, "linux")
	if !errors.Is(err, errors.ErrUnsupportedPlatform) {
		t.Errorf("want ErrUnsupportedPlatform, got %v", err)
	}
}

func TestResolve_DarwinWithBrew(t *testing.T) {
	runner := execx.NewFake("brew")
	profile, err := Resolve(context.Background(), runner, "darwin")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if profile.PackageManager != Brew {
		t.Errorf("PackageManager = %s, want brew", profile.PackageManager)
	}
	if n := len(runner.Calls()); n != 0 {
		t.Errorf("resolver ran %d commands with brew present, want 0", n)
	}
}

func TestDetect_NeverMutates(t *testing.T) {
	// Detect on a bare darwin host reports the missing manager but must
	// not run the install script.
	runner := execx.NewFake()
	_, err := Detect(runner, "darwin")
	if !errors.Is(err, errors.ErrPackageManagerMissing) {
		t.Fatalf("want ErrPackageManagerMissing, got %v", err)
	}
	if n := len(runner.Calls()); n != 0 {
		t.Errorf("Detect ran %d commands, want 0", n)
	}
}

func TestResolve_DarwinBootstrapsBrew(t *testing.T) {
	runner := execx.NewFake()
	_, err := Resolve(context.Background(), runner, "darwin")
	if !errors.Is(err, errors.ErrRestartRequired) {
		t.Fatalf("want ErrRestartRequired, got %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("resolver ran %d commands, want 1", len(calls))
	}
	if !strings.Contains(calls[0].String(), "Homebrew/install") {
		t.Errorf("expected Homebrew install script, got %q", calls[0].String())
	}
}

func TestResolve_DarwinBrewInstallFails(t *testing.T) {
	runner := execx.NewFake()
	runner.FailOn("/bin/bash", errors.New("network down"))

	_, err := Resolve(context.Background(), runner, "darwin")
	if !errors.Is(err, errors.ErrPackageManagerMissing) {
		t.Errorf("want ErrPackageManagerMissing, got %v", err)
	}
}

func TestResolve_WindowsRequiresChoco(t *testing.T) {
	runner := execx.NewFake("choco")
	profile, err := Resolve(context.Background(), runner, "windows")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if profile.PackageManager != Choco {
		t.Errorf("PackageManager = %s, want choco", profile.PackageManager)
	}

	// Missing choco is fatal, never self-installed.
	bare := execx.NewFake()
	_, err = Resolve(context.Background(), bare, "windows")
	if !errors.Is(err, errors.ErrPackageManagerMissing) {
		t.Errorf("want ErrPackageManagerMissing, got %v", err)
	}
	if n := len(bare.Calls()); n != 0 {
		t.Errorf("resolver ran %d commands on windows, want 0", n)
	}
}

func TestResolve_UnknownOS(t *testing.T) {
	runner := execx.NewFake()
	_, err := Resolve(context.Background(), runner, "plan9")
	if !errors.Is(err, errors.ErrUnsupportedPlatform) {
		t.Errorf("want ErrUnsupportedPlatform, got %v", err)
	}
}
