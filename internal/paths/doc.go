// Package paths centralizes filesystem path resolution for rigup.
//
// It covers the user's home directory, the XDG config home used for the
// rigup config file, and the fixed directories the toolchain bootstrappers
// create under the home directory (~/.nvm, ~/.rustup, ~/.cargo/bin,
// ~/flutter).
package paths
