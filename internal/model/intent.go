package model

import (
	"fmt"
	"strings"
)

// windowsRIDPrefix identifies runtime identifiers that target Windows.
// RIDs are free-form strings; prefix matching is the only validation
// applied ("win-x64", "win10-arm64", ... all match).
const windowsRIDPrefix = "win"

// PublishIntent is the normalized record of one publish invocation.
// It is built from CLI flags layered over the settings file, passed
// through Normalize exactly once, and never mutated afterwards.
type PublishIntent struct {
	// Runtime is the target runtime identifier (RID), e.g. "linux-x64".
	// Normalized to trimmed lower case. Empty suppresses the runtime
	// flag pair entirely.
	Runtime string

	// Configuration is the build configuration name, e.g. "Release".
	Configuration string

	// Output is the publish output directory.
	Output string

	// Project is the trailing project-file (or directory) path handed
	// to the toolchain. It is never checked for existence here; the
	// external process reports its own errors for a bad path.
	Project string

	// Portable requests a self-contained build. Overrides NonPortable
	// when both are set (silent override, matching the documented
	// "-p overrides -n" contract).
	Portable bool

	// NonPortable requests a framework-dependent build.
	NonPortable bool

	// SingleFile requests a single-file build.
	SingleFile bool

	// ForceRestore forces dependency restore during publish.
	ForceRestore bool

	// KeepOutput leaves an existing output directory untouched instead
	// of clearing it.
	KeepOutput bool

	// RemoveSymbols controls whether the conditional-compilation symbol
	// is stripped from the configured source files. Meaningful only
	// after Normalize; see RemoveSymbolsSet.
	RemoveSymbols bool

	// RemoveSymbolsSet records whether the caller chose RemoveSymbols
	// explicitly. When false, Normalize derives the value from the
	// Windows-RID heuristic.
	RemoveSymbolsSet bool

	// DryRun reports what would happen without touching the filesystem
	// or launching the external process.
	DryRun bool

	// Verbose enables debug logging.
	Verbose bool
}

// IsWindowsTarget reports whether the (normalized) RID targets Windows.
func (in *PublishIntent) IsWindowsTarget() bool {
	return strings.HasPrefix(in.Runtime, windowsRIDPrefix)
}

// Normalize canonicalizes the intent in place and returns any advisory
// warnings. It must be called exactly once, before the intent is handed
// to the stripper or the command builder.
//
// Rules applied:
//
//   - Runtime is trimmed and lower-cased (RID matching is
//     case-insensitive).
//   - If RemoveSymbols was not set explicitly, it defaults to stripping
//     for non-Windows targets and not stripping for Windows targets.
//   - An explicit choice that disagrees with that heuristic is honored,
//     but produces exactly one advisory warning. Stripping on a Windows
//     target or keeping symbols on a non-Windows target is a footgun,
//     not an error.
//
// Portability conflicts are not resolved here: Portable simply takes
// priority over NonPortable at command-build time.
func (in *PublishIntent) Normalize() []string {
	in.Runtime = strings.ToLower(strings.TrimSpace(in.Runtime))

	if !in.RemoveSymbolsSet {
		in.RemoveSymbols = !in.IsWindowsTarget()
		in.RemoveSymbolsSet = true
		return nil
	}

	var warnings []string
	switch {
	case in.RemoveSymbols && in.IsWindowsTarget():
		warnings = append(warnings, fmt.Sprintf(
			"Target RID %q starts with %q, but WINDOWS symbols are going to be stripped. "+
				"If you did not intend this, remove -L / --not-windows / --remove-windows-symbols "+
				"from the command line arguments.",
			in.Runtime, windowsRIDPrefix))
	case !in.RemoveSymbols && !in.IsWindowsTarget():
		warnings = append(warnings, fmt.Sprintf(
			"Target RID %q does not start with %q, but WINDOWS symbols are not going to be stripped. "+
				"If you did not intend this, add -L / --not-windows / --remove-windows-symbols "+
				"as a command line argument.",
			in.Runtime, windowsRIDPrefix))
	}
	return warnings
}
