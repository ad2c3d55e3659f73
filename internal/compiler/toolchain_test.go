package compiler

import (
	"context"
	"errors"
	"testing"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		tooOld  bool
		version Version
	}{
		{"too old", "rustc 1.70.0 (a28077b28 2023-12-04)", true, Version{1, 70, 0}},
		{"new enough", "rustc 1.74.1 (a28077b28 2023-12-04)", false, Version{1, 74, 1}},
		{"exact minimum", "rustc 1.71.1 (eb26296b5 2023-08-03)\n", false, Version{1, 71, 1}},
		{"older patch", "rustc 1.71.0 (8ede3aae2 2023-07-12)", true, Version{1, 71, 0}},
		{"major bump", "rustc 2.0.0 (0123abc 2030-01-01)", false, Version{2, 0, 0}},
		{"nightly", "rustc 1.76.0-nightly (a1b2c3d4e 2023-12-01)", false, Version{1, 76, 0}},
		{"vendor suffix", "rustc 1.74.1 (a28077b28 2023-12-04) (Homebrew)", false, Version{1, 74, 1}},
		{"no commit info", "rustc 1.72.0", false, Version{1, 72, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, err := CheckVersion(tt.output, MinRustc)
			if probe.Version != tt.version {
				t.Errorf("detected %s, want %s", probe.Version, tt.version)
			}

			var verr *VersionError
			if tt.tooOld {
				if !errors.As(err, &verr) {
					t.Fatalf("expected *VersionError, got %v", err)
				}
				if verr.Detected != tt.version || verr.Minimum != MinRustc || verr.Tool != "rustc" {
					t.Errorf("unexpected error fields %+v", verr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseVersionProbe_Fields(t *testing.T) {
	probe, err := ParseVersionProbe("cargo 1.76.0-beta.2 (c84b36747 2024-01-18)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if probe.Tool != "cargo" || probe.Channel != "beta.2" ||
		probe.Hash != "c84b36747" || probe.Date != "2024-01-18" {
		t.Errorf("unexpected probe %+v", probe)
	}
}

func TestParseVersionProbe_Unrecognized(t *testing.T) {
	for _, out := range []string{"", "rustc", "rustc 1.70", "error: command not found", "rustc v1.x.0"} {
		_, err := ParseVersionProbe(out)
		if !errors.Is(err, ErrUnrecognizedProbe) {
			t.Errorf("ParseVersionProbe(%q) error = %v, want ErrUnrecognizedProbe", out, err)
		}
	}
}

func TestVersionError_Message(t *testing.T) {
	err := &VersionError{Tool: "rustc", Detected: Version{1, 70, 0}, Minimum: Version{1, 71, 1}}
	want := "rustc 1.70.0 is too old: version 1.71.1 or newer is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.71.1")
	if err != nil || v != (Version{1, 71, 1}) {
		t.Errorf("ParseVersion = %v, %v", v, err)
	}
	for _, bad := range []string{"1.71", "1.x.1", "1.2.3.4", "-1.0.0", ""} {
		if _, err := ParseVersion(bad); err == nil {
			t.Errorf("ParseVersion(%q) should fail", bad)
		}
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b     Version
		expected int
	}{
		{Version{1, 70, 0}, Version{1, 71, 1}, -1},
		{Version{1, 71, 1}, Version{1, 71, 1}, 0},
		{Version{1, 72, 0}, Version{1, 71, 9}, 1},
		{Version{2, 0, 0}, Version{1, 99, 99}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.expected {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestRunSingle_NotImplemented(t *testing.T) {
	err := RunSingle(context.Background(), "fn main() {}")
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunSingle(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
