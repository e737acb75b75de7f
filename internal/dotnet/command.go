package dotnet

import (
	"strings"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// program is the toolchain binary of the base invocation. Everything
// publishkit runs is `dotnet publish ...`; there is no other entry
// point. A variable rather than a constant so package tests can point
// it at a stand-in binary.
var program = "dotnet"

const publishVerb = "publish"

// Token constants for the publish flag groups. The single-file pair
// uses IncludeNativeLibrariesForSelfExtract rather than
// IncludeAllContentForSelfExtract: the latter mimics the .NET Core 3.x
// packing behavior that the single-file design proposal deprecates.
// Dropping the native-libraries property on Linux leaks an extra
// library into the publish folder, so it is always passed.
var (
	flagsPortable    = [2]string{"--self-contained", "true"}
	flagsNonPortable = [2]string{"--self-contained", "false"}
	flagsSingleFile  = [2]string{"/p:PublishSingleFile=true", "/p:IncludeNativeLibrariesForSelfExtract=true"}
)

// entry is one typed element of the command line: a bare switch
// (value == "") or a flag with its value. Keeping the pair together in
// one element is what guarantees flag/value adjacency in the output.
type entry struct {
	flag  string
	value string
}

// Command is the assembled publish invocation. Flags and the trailing
// project token are kept structured until Tokens serializes them, so
// the ordering contract lives in the type rather than in convention.
type Command struct {
	entries []entry
	project string
}

// Build constructs the publish command line for a normalized intent.
// It is purely deterministic and performs no I/O. Advisory conditions
// discovered while building (currently only the ambiguous-portability
// case) are returned as warnings for the caller to log.
//
// Flag group order: force-restore, configuration, runtime, output,
// single-file, self-contained, then the project token last.
func Build(intent model.PublishIntent) (*Command, []string) {
	cmd := &Command{}
	var warnings []string

	if intent.ForceRestore {
		cmd.add("--force", "")
	}
	if intent.Configuration != "" {
		cmd.add("--configuration", intent.Configuration)
	}
	if intent.Runtime != "" {
		cmd.add("--runtime", intent.Runtime)
	}
	if intent.Output != "" {
		cmd.add("--output", intent.Output)
	}
	if intent.SingleFile {
		cmd.add(flagsSingleFile[0], "")
		cmd.add(flagsSingleFile[1], "")
	}

	// Portable wins over non-portable when both are requested; the
	// override is silent per the documented -p/-n contract. When
	// neither is requested the pair is omitted entirely and the
	// toolchain's framework-dependent default applies.
	switch {
	case intent.Portable:
		cmd.add(flagsPortable[0], flagsPortable[1])
	case intent.NonPortable:
		cmd.add(flagsNonPortable[0], flagsNonPortable[1])
	default:
		warnings = append(warnings,
			"Neither -p / --portable nor -n / --non-portable was requested; "+
				"the toolchain's default (framework-dependent) behavior will apply.")
	}

	cmd.project = intent.Project
	return cmd, warnings
}

func (c *Command) add(flag, value string) {
	c.entries = append(c.entries, entry{flag: flag, value: value})
}

// Tokens serializes the command to the final argv, starting with the
// program and publish verb and ending with the project token when one
// is set. This is the only place structure becomes strings.
func (c *Command) Tokens() []string {
	tokens := make([]string, 0, 2+2*len(c.entries)+1)
	tokens = append(tokens, program, publishVerb)
	for _, e := range c.entries {
		tokens = append(tokens, e.flag)
		if e.value != "" {
			tokens = append(tokens, e.value)
		}
	}
	if c.project != "" {
		tokens = append(tokens, c.project)
	}
	return tokens
}

// String renders the command for display (dry-run output, verbose
// logging). Tokens containing whitespace are double-quoted; this is a
// readability aid, not shell-grade quoting — execution always uses the
// token list directly.
func (c *Command) String() string {
	tokens := c.Tokens()
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		if strings.ContainsAny(tok, " \t") {
			quoted[i] = `"` + tok + `"`
		} else {
			quoted[i] = tok
		}
	}
	return strings.Join(quoted, " ")
}
