package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	defer func(v, sha, date string) {
		Version, CommitSHA, BuildDate = v, sha, date
	}(Version, CommitSHA, BuildDate)

	tests := []struct {
		version, sha, date string
		want               string
	}{
		{"0.1.0", "dev", "unknown", "0.1.0"},
		{"v0.1.0", "", "unknown", "0.1.0"},
		{"0.2.0", "abc1234", "2026-10-01", "0.2.0 (abc1234, 2026-10-01)"},
	}
	for _, tt := range tests {
		Version, CommitSHA, BuildDate = tt.version, tt.sha, tt.date
		if got := Info(); got != tt.want {
			t.Errorf("Info() = %q, want %q", got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	got := Line()
	if !strings.HasPrefix(got, "uic v") {
		t.Errorf("expected uic v prefix, got %q", got)
	}
	if !strings.HasSuffix(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected platform suffix, got %q", got)
	}
}
