package compiler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// MinRustc is the oldest rustc the generated code is known to build with.
var MinRustc = Version{Major: 1, Minor: 71, Patch: 1}

var (
	// ErrUnrecognizedProbe is returned when version output has an unknown shape.
	ErrUnrecognizedProbe = errors.New("unrecognized toolchain version output")
	// ErrNotImplemented is returned by entry points that exist only as a boundary.
	ErrNotImplemented = errors.New("not implemented")
)

// probePattern matches `<tool> <major>.<minor>.<patch>[-channel] (<hash> <date>)`,
// e.g. "rustc 1.74.1 (a28077b28 2023-12-04)". Vendor suffixes after the
// parenthesized part are ignored.
var probePattern = regexp2.MustCompile(
	`^\s*(?<tool>\S+)\s+(?<major>[0-9]+)\.(?<minor>[0-9]+)\.(?<patch>[0-9]+)`+
		`(?:-(?<channel>[A-Za-z0-9.]+))?`+
		`(?:\s+\((?<hash>[0-9a-f]+)\s+(?<date>[0-9]{4}-[0-9]{2}-[0-9]{2})\))?`,
	regexp2.None)

// Version is a three-part toolchain version.
type Version struct {
	Major, Minor, Patch int
}

// String returns major.minor.patch
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than o.
func (v Version) Compare(o Version) int {
	for _, d := range [3]int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// ParseVersion parses "major.minor.patch".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: bad component %q", s, part)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Probe is the parsed output of `<tool> --version`.
type Probe struct {
	Tool    string
	Version Version
	Channel string // "nightly", "beta" or empty for stable
	Hash    string
	Date    string
}

// ParseVersionProbe extracts the tool name and version from captured
// `--version` output.
func ParseVersionProbe(output string) (Probe, error) {
	m, err := probePattern.FindStringMatch(output)
	if err != nil {
		return Probe{}, fmt.Errorf("matching version output: %w", err)
	}
	if m == nil {
		return Probe{}, fmt.Errorf("%w: %q", ErrUnrecognizedProbe, strings.TrimSpace(output))
	}

	group := func(name string) string {
		if g := m.GroupByName(name); g != nil {
			return g.String()
		}
		return ""
	}
	v, err := ParseVersion(group("major") + "." + group("minor") + "." + group("patch"))
	if err != nil {
		return Probe{}, fmt.Errorf("%w: %v", ErrUnrecognizedProbe, err)
	}
	return Probe{
		Tool:    group("tool"),
		Version: v,
		Channel: group("channel"),
		Hash:    group("hash"),
		Date:    group("date"),
	}, nil
}

// VersionError reports a toolchain older than required.
type VersionError struct {
	Tool     string
	Detected Version
	Minimum  Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s %s is too old: version %s or newer is required",
		e.Tool, e.Detected, e.Minimum)
}

// CheckVersion parses captured version output and compares it against minimum.
// A *VersionError is returned when the detected version is older.
func CheckVersion(output string, minimum Version) (Probe, error) {
	probe, err := ParseVersionProbe(output)
	if err != nil {
		return Probe{}, err
	}
	if probe.Version.Compare(minimum) < 0 {
		return probe, &VersionError{Tool: probe.Tool, Detected: probe.Version, Minimum: minimum}
	}
	return probe, nil
}

// RunSingle would build and run one unit of generated source directly.
// Toolchain invocation lives outside this module.
func RunSingle(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("run single source unit: %w", ErrNotImplemented)
}
