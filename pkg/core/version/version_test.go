package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	for _, name := range append(Components(), "platform") {
		t.Run(name, func(t *testing.T) {
			v := ComponentVersion(name)
			if !semverRegex.MatchString(v) {
				t.Errorf("%s version %q is not semantic", name, v)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"number", Number},
		{"reader", Reader},
		{"history", History},
		{"unknown", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "numtower "+Platform) {
		t.Errorf("Info() = %q", info)
	}
	if !strings.Contains(info, GitCommit) {
		t.Errorf("Info() missing commit: %q", info)
	}
}
