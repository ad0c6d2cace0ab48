package toolchain

import (
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"v20.11.1", "20.11.1"},
		{"rustc 1.84.0 (9fc6b4312 2025-01-07)", "1.84.0"},
		{"go version go1.23.4 linux/amd64", "1.23.4"},
		{"Docker version 27.4.0, build bde2b89", "27.4.0"},
	}

	for _, tt := range tests {
		v, err := parseVersion(tt.out)
		if err != nil {
			t.Errorf("parseVersion(%q): %v", tt.out, err)
			continue
		}
		if v.String() != tt.want {
			t.Errorf("parseVersion(%q) = %s, want %s", tt.out, v, tt.want)
		}
	}
}

func TestParseVersion_Garbage(t *testing.T) {
	if _, err := parseVersion("command not found"); err == nil {
		t.Error("garbage output should not parse")
	}
}

func TestAtLeast(t *testing.T) {
	floor := semver.MustParse("18.0.0")

	tests := []struct {
		out  string
		want bool
	}{
		{"v20.11.1", true},
		{"v18.0.0", true},
		{"v16.20.2", false},
		{"nonsense", false},
	}

	for _, tt := range tests {
		if got := atLeast(tt.out, floor); got != tt.want {
			t.Errorf("atLeast(%q) = %v, want %v", tt.out, got, tt.want)
		}
	}
}
