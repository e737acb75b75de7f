// publish.go implements the orchestration behind the root command.
//
// Control flow for one invocation:
//  1. Load settings (publish.jsonc or --config)
//  2. Resolve the publish intent from flags layered over settings
//  3. Normalize the intent (RID canonicalization, symbol heuristic)
//  4. Strip symbols from the configured source files, if requested
//  5. Prepare the output directory
//  6. Build the dotnet publish command line
//  7. Print it (--dry-run) or run it, propagating the exit code
//
// With --matrix, steps 3-7 repeat per matrix target, stopping at the
// first failure.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/publishkit/internal/buildlog"
	"github.com/mmr-tortoise/publishkit/internal/config"
	"github.com/mmr-tortoise/publishkit/internal/dotnet"
	"github.com/mmr-tortoise/publishkit/internal/model"
	"github.com/mmr-tortoise/publishkit/internal/output"
	"github.com/mmr-tortoise/publishkit/internal/symbols"
)

// explicitFlags records which tri-state or aliased flags the user set
// on the command line. Resolved from cobra's Changed tracking and kept
// as plain booleans so intent resolution stays testable without cobra.
type explicitFlags struct {
	runtime       bool
	target        bool
	removeSymbols bool
	notWindows    bool
}

// runPublish is the RunE of the root command.
func runPublish(cmd *cobra.Command, args []string, flags *publishFlags) error {
	log := buildlog.New(os.Stderr, flags.verbose)

	settings, err := loadSettings(flags)
	if err != nil {
		return err
	}

	explicit := explicitFlags{
		runtime:       cmd.Flags().Changed("runtime"),
		target:        cmd.Flags().Changed("target"),
		removeSymbols: cmd.Flags().Changed("remove-windows-symbols"),
		notWindows:    cmd.Flags().Changed("not-windows"),
	}

	var project string
	if len(args) > 0 {
		project = args[0]
	}

	intent := resolveIntent(flags, explicit, settings, project)

	if flags.matrixPath != "" {
		return runMatrix(cmd.Context(), flags.matrixPath, intent, settings, log)
	}

	for _, w := range intent.Normalize() {
		log.Warnf("%s", w)
	}
	return publishOne(cmd.Context(), intent, settings, log)
}

// loadSettings loads the explicit --config file, or falls back to the
// optional publish.jsonc lookup in the working directory.
func loadSettings(flags *publishFlags) (*config.Settings, error) {
	if flags.configPath != "" {
		return config.Load(flags.configPath)
	}
	return config.LoadDefault(".")
}

// resolveIntent layers flag values over settings defaults to produce
// the (not yet normalized) publish intent.
//
// Alias resolution: --target feeds --runtime and --not-windows feeds
// --remove-windows-symbols; the primary flag wins when both are given.
// RemoveSymbolsSet is true only for an explicit user choice — that is
// what separates the heuristic default from an advisory-warning case.
func resolveIntent(flags *publishFlags, explicit explicitFlags, settings *config.Settings, project string) model.PublishIntent {
	runtime := flags.runtime
	if !explicit.runtime && explicit.target {
		runtime = flags.target
	}

	configuration := flags.configuration
	if configuration == "" {
		configuration = settings.Configuration
	}

	out := flags.output
	if out == "" {
		out = settings.Output
	}

	if project == "" {
		project = settings.Project
	}

	removeSet := explicit.removeSymbols || explicit.notWindows
	removeSymbols := flags.removeSymbols
	if !explicit.removeSymbols && explicit.notWindows {
		removeSymbols = flags.notWindows
	}

	return model.PublishIntent{
		Runtime:          runtime,
		Configuration:    configuration,
		Output:           out,
		Project:          project,
		Portable:         flags.portable,
		NonPortable:      flags.nonPortable,
		SingleFile:       flags.singleFile,
		ForceRestore:     flags.forceRestore,
		KeepOutput:       flags.keep,
		RemoveSymbols:    removeSymbols,
		RemoveSymbolsSet: removeSet,
		DryRun:           flags.dryRun,
		Verbose:          flags.verbose,
	}
}

// runMatrix publishes every target of a release matrix in order. The
// matrix is validated up front; per-target intents are derived from the
// base intent and normalized individually so the symbol heuristic
// follows each target's RID.
func runMatrix(ctx context.Context, path string, base model.PublishIntent, settings *config.Settings, log *buildlog.Logger) error {
	matrix, err := config.LoadMatrix(path)
	if err != nil {
		return err
	}
	if err := matrix.Validate(base.Output); err != nil {
		return err
	}

	for i := range matrix.Targets {
		target := &matrix.Targets[i]
		intent := target.Apply(base, base.Output)
		for _, w := range intent.Normalize() {
			log.Warnf("%s", w)
		}
		log.Infof("publishing matrix target %d/%d: %s", i+1, len(matrix.Targets), intent.Runtime)
		if err := publishOne(ctx, intent, settings, log); err != nil {
			return err
		}
	}
	return nil
}

// publishOne executes steps 4-7 for a single normalized intent.
func publishOne(ctx context.Context, intent model.PublishIntent, settings *config.Settings, log *buildlog.Logger) error {
	if intent.RemoveSymbols {
		stripper := symbols.NewStripper(settings.Symbol, log)
		if err := stripper.Strip(settings.SymbolFiles, intent.DryRun); err != nil {
			return err
		}
	}

	if err := output.Prepare(intent.Output, intent.KeepOutput, intent.DryRun, log); err != nil {
		return err
	}

	cmd, warnings := dotnet.Build(intent)
	for _, w := range warnings {
		log.Warnf("%s", w)
	}

	if intent.DryRun {
		log.Infof("dry run: %s", cmd.String())
		return nil
	}

	code, err := dotnet.NewRunner(log).Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		// Propagate the toolchain's exit code verbatim. Its diagnostics
		// already went to the inherited streams, so the error carries no
		// message of its own — nothing extra reaches the shell.
		log.Debugf("dotnet publish exited with code %d", code)
		return &model.CLIError{Code: model.ExitCode(code)}
	}

	log.Infof("published %s to %s", intent.Project, intent.Output)
	return nil
}
