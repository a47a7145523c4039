package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstant(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.TZData == "" {
		t.Error("TZData is empty")
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{
			name:     "without build date",
			info:     Info{Version: "1.2.3", Commit: "abc123", GoVersion: "go1.24.0", Platform: "linux/amd64"},
			expected: "zeitwerk 1.2.3 (abc123, go1.24.0, linux/amd64)",
		},
		{
			name:     "with build date",
			info:     Info{Version: "1.2.3", Commit: "abc123", GoVersion: "go1.24.0", Platform: "linux/amd64", BuildDate: "2026-10-16"},
			expected: "zeitwerk 1.2.3 (abc123, go1.24.0, linux/amd64) built 2026-10-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}

	if !strings.HasPrefix(Get().String(), "zeitwerk "+Version) {
		t.Errorf("Get().String() = %q", Get().String())
	}
}
