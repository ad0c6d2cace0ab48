package toolchain

import (
	"context"
	"strings"
	"testing"

	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/logging"
	"github.com/thoreinstein/rigup/internal/pkgmgr"
	"github.com/thoreinstein/rigup/internal/report"
)

func newTestEnv(t *testing.T, runner *execx.Fake, profile *hostenv.Profile) *Env {
	t.Helper()
	var mgr pkgmgr.Manager
	if m, err := pkgmgr.ForProfile(profile, runner); err == nil {
		mgr = m
	}
	return &Env{
		Runner:  runner,
		Profile: profile,
		Manager: mgr,
		Logger:  logging.ForTest(t),
		User:    "dev",
	}
}

func linuxApt() *hostenv.Profile {
	return &hostenv.Profile{
		OS:             hostenv.Linux,
		DistroFamily:   hostenv.DebianLike,
		PackageManager: hostenv.Apt,
	}
}

func hasCall(t *testing.T, runner *execx.Fake, substr string) bool {
	t.Helper()
	for _, c := range runner.Calls() {
		if strings.Contains(c.String(), substr) {
			return true
		}
	}
	return false
}

func TestAll_CatalogOrder(t *testing.T) {
	want := []string{"rust", "node", "flutter", "go", "docker"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("got %d bootstrappers, want %d", len(all), len(want))
	}
	for i, b := range all {
		if b.Capability().Name != want[i] {
			t.Errorf("bootstrapper[%d] = %s, want %s", i, b.Capability().Name, want[i])
		}
	}
}

func TestRust_PresentRequestsUpdate(t *testing.T) {
	runner := execx.NewFake("rustup")
	env := newTestEnv(t, runner, linuxApt())

	res := NewRust().Bootstrap(context.Background(), env)

	if res.Outcome != report.AlreadyPresent {
		t.Errorf("outcome = %s, want already-present", res.Outcome)
	}
	if !hasCall(t, runner, "rustup update") {
		t.Error("present rustup should be asked to update")
	}
	if len(res.Directives) != 0 {
		t.Error("no directives expected when nothing was installed")
	}
}

func TestRust_AbsentInstalls(t *testing.T) {
	runner := execx.NewFake()
	runner.OnRun = func(c execx.Call) {
		if c.Name == "sh" {
			runner.SetPresent("rustup", true)
		}
	}
	env := newTestEnv(t, runner, linuxApt())

	res := NewRust().Bootstrap(context.Background(), env)

	if res.Outcome != report.Installed {
		t.Fatalf("outcome = %s (%s), want installed", res.Outcome, res.Detail)
	}
	if res.Strategy != report.StrategyVersionManagerScript {
		t.Errorf("strategy = %s", res.Strategy)
	}
	if !hasCall(t, runner, "sh.rustup.rs") {
		t.Error("expected the official rustup installer")
	}
	if len(runner.PathAppends()) != 1 {
		t.Error("cargo bin should be exported onto PATH for this run")
	}
	if len(res.Directives) != 1 || !strings.Contains(res.Directives[0], "PATH") {
		t.Errorf("expected a PATH directive, got %v", res.Directives)
	}
}

func TestRust_InstallFailure(t *testing.T) {
	runner := execx.NewFake()
	runner.FailOn("sh -c", errors.New("no network"))
	env := newTestEnv(t, runner, linuxApt())

	res := NewRust().Bootstrap(context.Background(), env)

	if res.Outcome != report.Failed {
		t.Errorf("outcome = %s, want failed", res.Outcome)
	}
	if res.Detail == "" {
		t.Error("failure detail should carry the cause")
	}
}

func TestRust_InstallRunsButToolStillAbsent(t *testing.T) {
	runner := execx.NewFake() // installer "succeeds" but never creates rustup
	env := newTestEnv(t, runner, linuxApt())

	res := NewRust().Bootstrap(context.Background(), env)

	if res.Outcome != report.Failed {
		t.Errorf("re-probe must catch a silent installer failure, got %s", res.Outcome)
	}
}

func TestNode_PresentAndCurrent(t *testing.T) {
	runner := execx.NewFake("node")
	runner.RespondWith("node --version", "v20.11.1")
	env := newTestEnv(t, runner, linuxApt())

	res := NewNode().Bootstrap(context.Background(), env)

	if res.Outcome != report.AlreadyPresent {
		t.Errorf("outcome = %s, want already-present", res.Outcome)
	}
	if hasCall(t, runner, "nvm install") {
		t.Error("current node should not trigger an nvm install")
	}
}

func TestNode_PresentButStale(t *testing.T) {
	runner := execx.NewFake("node")
	runner.RespondWith("node --version", "v16.3.0")
	env := newTestEnv(t, runner, linuxApt())

	res := NewNode().Bootstrap(context.Background(), env)

	if res.Outcome != report.AlreadyPresent {
		t.Errorf("outcome = %s, want already-present", res.Outcome)
	}
	if !hasCall(t, runner, "nvm install --lts") {
		t.Error("stale node should be refreshed via nvm")
	}
}

func TestNode_AbsentInstallsNvmThenLTS(t *testing.T) {
	t.Setenv("NVM_DIR", t.TempDir()) // no nvm.sh inside
	runner := execx.NewFake()
	// verify resolves node through an nvm-sourced shell
	runner.RespondWith("bash -c", "/home/dev/.nvm/versions/node/v22.0.0/bin/node")
	env := newTestEnv(t, runner, linuxApt())

	res := NewNode().Bootstrap(context.Background(), env)

	if res.Outcome != report.Installed {
		t.Fatalf("outcome = %s (%s), want installed", res.Outcome, res.Detail)
	}
	if !hasCall(t, runner, "nvm-sh/nvm") {
		t.Error("expected the nvm install script to be fetched")
	}
	if !hasCall(t, runner, "nvm install --lts") {
		t.Error("expected the LTS release to be requested")
	}
	if len(res.Directives) == 0 {
		t.Error("expected a shell-profile directive")
	}
}

func TestGo_AbsentUsesPackageManager(t *testing.T) {
	runner := execx.NewFake()
	runner.OnRun = func(c execx.Call) {
		if strings.Contains(c.String(), "install") {
			runner.SetPresent("go", true)
		}
	}
	env := newTestEnv(t, runner, linuxApt())

	res := NewGo().Bootstrap(context.Background(), env)

	if res.Outcome != report.Installed {
		t.Fatalf("outcome = %s (%s), want installed", res.Outcome, res.Detail)
	}
	if res.Strategy != report.StrategyPackageManager {
		t.Errorf("strategy = %s, want package-manager", res.Strategy)
	}
	if !hasCall(t, runner, "sudo apt-get install -y golang-go") {
		t.Errorf("expected apt golang install, calls: %v", runner.Calls())
	}
}

func TestGo_Present(t *testing.T) {
	runner := execx.NewFake("go")
	env := newTestEnv(t, runner, linuxApt())

	res := NewGo().Bootstrap(context.Background(), env)

	if res.Outcome != report.AlreadyPresent {
		t.Errorf("outcome = %s, want already-present", res.Outcome)
	}
	if n := len(runner.Calls()); n != 0 {
		t.Errorf("present go ran %d commands, want 0", n)
	}
}
