package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/rigup/internal/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// NVMDir returns the directory where the Node version manager installs itself.
// The install script hard-codes ~/.nvm unless NVM_DIR is exported, so the same
// default is used here.
func NVMDir() string {
	if dir := os.Getenv("NVM_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(Home(), ".nvm")
}

// RustupHome returns the directory the Rust toolchain manager owns.
func RustupHome() string {
	if dir := os.Getenv("RUSTUP_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(Home(), ".rustup")
}

// CargoBin returns the directory rustup places proxy binaries in.
// Newly installed Rust tools live here and need a PATH entry.
func CargoBin() string {
	return filepath.Join(Home(), ".cargo", "bin")
}

// FlutterDir returns the fixed user-local directory the Flutter SDK is
// cloned into.
func FlutterDir() string {
	return filepath.Join(Home(), "flutter")
}

// FlutterBin returns the directory holding the flutter launcher inside the
// SDK clone.
func FlutterBin() string {
	return filepath.Join(FlutterDir(), "bin")
}
