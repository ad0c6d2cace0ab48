package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "wraps underlying message",
			err:  NewExitError(ErrUnsupportedPlatform, ExitSystem),
			want: "unsupported platform",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewSystemError(ErrRequiredInstallFailed, "re-run with -v for details")
	if !stderrors.Is(err, ErrRequiredInstallFailed) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should find *ExitError")
	}
	if exitErr.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitSystem)
	}
	if exitErr.Suggestion == "" {
		t.Error("Suggestion should be preserved")
	}
}

func TestNewRestartError(t *testing.T) {
	err := NewRestartError("re-run rigup up in a new shell")
	if err.Code != ExitRestart {
		t.Errorf("Code = %d, want %d", err.Code, ExitRestart)
	}
	if !stderrors.Is(err, ErrRestartRequired) {
		t.Error("restart error should wrap ErrRestartRequired")
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrPackageManagerMissing, "resolving platform")
	if !Is(wrapped, ErrPackageManagerMissing) {
		t.Error("Wrap should preserve the sentinel for errors.Is")
	}
}
