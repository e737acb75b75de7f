// Package cli implements the cobra-based command line for publishkit.
//
// Unlike multi-command tools, publishkit exposes a single flat flag
// surface on the root command: one invocation is one publish. root.go
// defines the flags and exit-code handling; publish.go holds the
// orchestration the command runs.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// publishFlags holds the flag values for the root command.
type publishFlags struct {
	runtime       string // -r/--runtime: target RID
	target        string // --target: hidden alias for --runtime
	configuration string // -c/--configuration
	output        string // -o/--output
	configPath    string // --config: explicit settings file
	matrixPath    string // --matrix: release matrix file
	keep          bool   // -k/--keep: don't clear the output directory
	forceRestore  bool   // -f/--force-restore
	portable      bool   // -p/--portable
	nonPortable   bool   // -n/--non-portable
	singleFile    bool   // -s/--single-file
	removeSymbols bool   // -L/--remove-windows-symbols
	notWindows    bool   // --not-windows: hidden alias for -L
	verbose       bool   // -v/--verbose
	dryRun        bool   // --dry-run
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publishkit [project]",
		Short: "dotnet publish wrapper with target-aware symbol stripping",
		Long: `publishkit wraps "dotnet publish" for cross-platform release builds.

It strips the WINDOWS conditional-compilation symbol from configured source
files when the target RID is not Windows, prepares the output directory, and
assembles the publish command line with the requested portability and
single-file modes.

Examples:
  publishkit -r linux-x64 -p -s
  publishkit -r win-x64 -c Debug -o build/win App.csproj
  publishkit --matrix release.yaml --dry-run`,

		// The positional argument is the project file or directory; at
		// most one is accepted.
		Args: cobra.MaximumNArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.runtime, "runtime", "r", "any",
		"Runtime identifier (RID) to target")
	cmd.Flags().StringVar(&flags.target, "target", "any",
		"Alias for --runtime")
	cmd.Flags().StringVarP(&flags.configuration, "configuration", "c", "",
		"Build configuration (default from publish.jsonc, else Release)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output directory (default from publish.jsonc, else build)")
	cmd.Flags().BoolVarP(&flags.keep, "keep", "k", false,
		"Keep existing output directory contents instead of clearing them")
	cmd.Flags().BoolVarP(&flags.forceRestore, "force-restore", "f", false,
		"Force dependency restore during publish")
	cmd.Flags().BoolVarP(&flags.portable, "portable", "p", false,
		"Self-contained build: bundle the runtime with the output (overrides -n)")
	cmd.Flags().BoolVarP(&flags.nonPortable, "non-portable", "n", false,
		"Framework-dependent build: require the runtime to be installed")
	cmd.Flags().BoolVarP(&flags.singleFile, "single-file", "s", false,
		"Merge output artifacts into a single executable")
	cmd.Flags().BoolVarP(&flags.removeSymbols, "remove-windows-symbols", "L", false,
		"Strip WINDOWS conditional-compilation symbols (default: derived from the RID)")
	cmd.Flags().BoolVar(&flags.notWindows, "not-windows", false,
		"Alias for --remove-windows-symbols")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable verbose output")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false,
		"Report what would happen without modifying anything or running dotnet")
	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Settings file (default: ./publish.jsonc when present)")
	cmd.Flags().StringVar(&flags.matrixPath, "matrix", "",
		"Release matrix YAML: publish every listed target in order")

	// The aliases exist for command-line compatibility; the primary
	// spellings are what help output should advertise.
	_ = cmd.Flags().MarkHidden("target")
	_ = cmd.Flags().MarkHidden("not-windows")

	return cmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit codes — including the verbatim
// exit code of the external toolchain when a publish run fails. Other
// errors exit with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			// A message-less CLIError propagates an exit code for a
			// failure that already reported itself (the external
			// toolchain writes to the inherited streams); printing
			// anything on top would be noise.
			if cliErr.Message != "" || cliErr.Err != nil {
				printError(cliErr.Message, cliErr.Err)
			}
			os.Exit(int(cliErr.Code))
		}
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes an error line to stderr. Stdout stays reserved for
// the external toolchain's output.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
