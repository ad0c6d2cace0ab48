package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, permissions, etc.).
	ExitSystem = 2

	// ExitRestart indicates the run stopped deliberately and must be re-invoked
	// by the operator after an external bootstrap completed (e.g. after the
	// macOS package manager installed itself).
	ExitRestart = 3
)

// Sentinel errors for bootstrap failure conditions.
var (
	// ErrUnsupportedPlatform indicates the host OS has no detectable package
	// manager the orchestrator knows how to drive.
	ErrUnsupportedPlatform = crdberrors.New("unsupported platform")

	// ErrPackageManagerMissing indicates the platform's package manager is
	// absent and cannot be self-installed with sufficient privilege.
	ErrPackageManagerMissing = crdberrors.New("package manager missing")

	// ErrRestartRequired indicates an external bootstrap completed and the
	// operator must re-run the command in a fresh shell. It is a distinguished
	// termination condition, not a failure.
	ErrRestartRequired = crdberrors.New("restart required")

	// ErrRequiredInstallFailed indicates a required capability could not be
	// installed; the run aborts.
	ErrRequiredInstallFailed = crdberrors.New("required install failed")

	// ErrRefreshFailed indicates a package index refresh failed. Callers log
	// it as a warning and continue.
	ErrRefreshFailed = crdberrors.New("package index refresh failed")
)

// Re-exports from cockroachdb/errors so callers need a single import.
var (
	New    = crdberrors.New
	Newf   = crdberrors.Newf
	Wrap   = crdberrors.Wrap
	Wrapf  = crdberrors.Wrapf
	Is     = crdberrors.Is
	As     = crdberrors.As
	Unwrap = crdberrors.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewRestartError creates the distinguished ExitError for ErrRestartRequired.
// The suggestion tells the operator how to resume.
func NewRestartError(suggestion string) *ExitError {
	return &ExitError{
		Err:        ErrRestartRequired,
		Code:       ExitRestart,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
