// Package hostenv resolves the host platform profile: operating system,
// Linux distro family, and the native package manager rigup will drive.
package hostenv

// OS identifies the host operating system.
type OS string

const (
	Linux   OS = "linux"
	MacOS   OS = "darwin"
	Windows OS = "windows"
)

// DistroFamily groups Linux distributions by package tooling.
type DistroFamily string

const (
	DebianLike    DistroFamily = "debian-like"
	RHELLike      DistroFamily = "rhel-like"
	FamilyUnknown DistroFamily = "unknown"
)

// PackageManager identifies the native package manager backend.
type PackageManager string

const (
	Apt   PackageManager = "apt"
	Yum   PackageManager = "yum"
	Dnf   PackageManager = "dnf"
	Brew  PackageManager = "brew"
	Choco PackageManager = "choco"
	None  PackageManager = "none"
)

// Profile describes the host once, at process start. It is immutable after
// Resolve returns; everything downstream treats it as an opaque capability
// provider.
type Profile struct {
	OS             OS
	DistroFamily   DistroFamily
	PackageManager PackageManager
}
