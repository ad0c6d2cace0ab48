package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("second EnsureDir should be a no-op: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir did not create a directory")
	}
}

func TestNVMDir_EnvOverride(t *testing.T) {
	t.Setenv("NVM_DIR", "/opt/nvm")
	if got := NVMDir(); got != "/opt/nvm" {
		t.Errorf("NVMDir() = %q, want /opt/nvm", got)
	}
}

func TestNVMDir_Default(t *testing.T) {
	t.Setenv("NVM_DIR", "")
	os.Unsetenv("NVM_DIR")
	want := filepath.Join(Home(), ".nvm")
	if got := NVMDir(); got != want {
		t.Errorf("NVMDir() = %q, want %q", got, want)
	}
}

func TestFlutterBin_UnderFlutterDir(t *testing.T) {
	want := filepath.Join(FlutterDir(), "bin")
	if got := FlutterBin(); got != want {
		t.Errorf("FlutterBin() = %q, want %q", got, want)
	}
}
