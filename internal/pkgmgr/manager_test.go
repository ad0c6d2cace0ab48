package pkgmgr

import (
	"context"
	"testing"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
)

func TestForProfile_Dispatch(t *testing.T) {
	runner := execx.NewFake()

	tests := []struct {
		manager hostenv.PackageManager
		want    string
	}{
		{hostenv.Apt, "apt"},
		{hostenv.Yum, "yum"},
		{hostenv.Dnf, "dnf"},
		{hostenv.Brew, "brew"},
		{hostenv.Choco, "choco"},
	}

	for _, tt := range tests {
		profile := &hostenv.Profile{PackageManager: tt.manager}
		m, err := ForProfile(profile, runner)
		if err != nil {
			t.Fatalf("ForProfile(%s): %v", tt.manager, err)
		}
		if m.Name() != tt.want {
			t.Errorf("ForProfile(%s).Name() = %s", tt.manager, m.Name())
		}
	}

	_, err := ForProfile(&hostenv.Profile{PackageManager: hostenv.None}, runner)
	if !errors.Is(err, errors.ErrUnsupportedPlatform) {
		t.Errorf("want ErrUnsupportedPlatform for None, got %v", err)
	}
}

func TestInstallMany_SingleInvocation(t *testing.T) {
	runner := execx.NewFake()
	m := NewApt(runner)

	err := m.InstallMany(context.Background(), []string{"git", "curl", "build-essential"})
	if err != nil {
		t.Fatal(err)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("InstallMany issued %d invocations, want 1", len(calls))
	}
	want := "sudo apt-get install -y git curl build-essential"
	if calls[0].String() != want {
		t.Errorf("call = %q, want %q", calls[0].String(), want)
	}
}

func TestInstallMany_EmptyIsNoop(t *testing.T) {
	runner := execx.NewFake()
	m := NewBrew(runner)

	if err := m.InstallMany(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if n := len(runner.Calls()); n != 0 {
		t.Errorf("empty install ran %d commands, want 0", n)
	}
}

func TestRefresh_FailureIsWrapped(t *testing.T) {
	runner := execx.NewFake()
	runner.FailOn("sudo apt-get update", errors.New("mirror unreachable"))
	m := NewApt(runner)

	err := m.Refresh(context.Background())
	if !errors.Is(err, errors.ErrRefreshFailed) {
		t.Errorf("want ErrRefreshFailed, got %v", err)
	}
}

func TestRefresh_ChocoNoop(t *testing.T) {
	runner := execx.NewFake()
	m := NewChoco(runner)

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := len(runner.Calls()); n != 0 {
		t.Errorf("choco refresh ran %d commands, want 0", n)
	}
}

func TestPackages_BackendSpecificNames(t *testing.T) {
	runner := execx.NewFake()

	apt := NewApt(runner)
	if got := apt.Packages(capability.GCC); len(got) != 1 || got[0] != "build-essential" {
		t.Errorf("apt gcc packages = %v", got)
	}

	dnf := NewDnf(runner)
	if got := dnf.Packages(capability.OpenSSL); len(got) == 0 || got[0] != "openssl-devel" {
		t.Errorf("dnf openssl packages = %v", got)
	}

	brew := NewBrew(runner)
	if got := brew.Packages(capability.Protoc); len(got) != 1 || got[0] != "protobuf" {
		t.Errorf("brew protoc packages = %v", got)
	}

	if got := brew.Packages("unknown"); got != nil {
		t.Errorf("unknown capability should map to nil, got %v", got)
	}
}

func TestPackagesFor_Dedupes(t *testing.T) {
	runner := execx.NewFake()
	m := NewApt(runner)

	// gcc and make both map to build-essential on apt; the bulk list must
	// carry it once.
	pkgs := PackagesFor(m, []string{capability.GCC, capability.Make, capability.Git})
	want := []string{"build-essential", "git"}
	if len(pkgs) != len(want) {
		t.Fatalf("PackagesFor = %v, want %v", pkgs, want)
	}
	for i := range want {
		if pkgs[i] != want[i] {
			t.Errorf("PackagesFor[%d] = %s, want %s", i, pkgs[i], want[i])
		}
	}
}
