// Package errors provides error handling conventions for the rigup CLI.
//
// This package defines sentinel errors for the bootstrap failure taxonomy,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific conditions using
// [errors.Is]:
//
//	if errors.Is(err, rigerrors.ErrRestartRequired) {
//	    // not a failure: ask the operator to re-run
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Run reached Done, optional failures included
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (unsupported platform, required
//     install failure, I/O)
//   - ExitRestart (3): Distinguished non-error stop; re-run after an
//     external bootstrap completed
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As].
package errors
