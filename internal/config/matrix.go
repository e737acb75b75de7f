package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// Matrix describes a multi-target release: each entry produces one
// publish invocation derived from the base intent. Targets run in file
// order; the first failure stops the run.
type Matrix struct {
	// Targets is the list of publish targets. Must not be empty.
	Targets []MatrixTarget `yaml:"targets"`
}

// MatrixTarget is one entry of the release matrix. Only RID is
// mandatory; other fields override the base intent when set.
type MatrixTarget struct {
	// RID is the runtime identifier for this target. Required.
	RID string `yaml:"rid"`

	// Configuration overrides the base build configuration when set.
	Configuration string `yaml:"configuration,omitempty"`

	// Output overrides the target's output directory. When empty, a
	// per-RID subdirectory of the base output directory is used so
	// targets never overwrite each other.
	Output string `yaml:"output,omitempty"`

	// Portable, NonPortable, SingleFile, and ForceRestore override the
	// corresponding base intent flags when set. A key left out of the
	// YAML inherits the base value (so `publishkit --matrix m.yaml -p`
	// keeps -p for every target that doesn't say otherwise); pointers
	// distinguish "unset" from an explicit false.
	Portable     *bool `yaml:"portable,omitempty"`
	NonPortable  *bool `yaml:"nonPortable,omitempty"`
	SingleFile   *bool `yaml:"singleFile,omitempty"`
	ForceRestore *bool `yaml:"forceRestore,omitempty"`
}

// LoadMatrix reads and parses a release matrix YAML file. Parsing
// failures and an unreadable file are configuration errors; validation
// is the caller's next step via Matrix.Validate.
func LoadMatrix(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read matrix file %s", path), err)
	}

	m := &Matrix{}
	if err := yaml.Unmarshal(raw, m); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse matrix file %s", path), err)
	}
	return m, nil
}

// Validate checks the matrix invariants against the base output
// directory: at least one target, a RID on every target, and no two
// targets resolving to the same effective output directory. It runs
// before any target is published so a bad matrix never leaves a
// half-finished release behind.
func (m *Matrix) Validate(baseOutput string) error {
	if len(m.Targets) == 0 {
		return model.NewCLIError(model.ExitConfigError, "release matrix has no targets")
	}

	seen := make(map[string]string, len(m.Targets))
	for i, t := range m.Targets {
		if t.RID == "" {
			return model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("release matrix target %d has no rid", i+1))
		}
		out := filepath.Clean(t.EffectiveOutput(baseOutput))
		if prev, dup := seen[out]; dup {
			return model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("release matrix targets %q and %q share output directory %s",
					prev, t.RID, out))
		}
		seen[out] = t.RID
	}
	return nil
}

// EffectiveOutput returns the output directory this target publishes
// into: its explicit Output, or a per-RID subdirectory of baseOutput.
func (t *MatrixTarget) EffectiveOutput(baseOutput string) string {
	if t.Output != "" {
		return t.Output
	}
	return filepath.Join(baseOutput, t.RID)
}

// Apply derives the per-target intent from the base intent. The base is
// copied, the target's RID/configuration/output are substituted, and
// each boolean mode is overridden only when the target sets its key.
//
// When the base choice for RemoveSymbols came from the heuristic, the
// derived intent is left unresolved so Normalize re-derives it from
// this target's RID. An explicit -L on the command line carries
// through the copy and applies to every target.
func (t *MatrixTarget) Apply(base model.PublishIntent, baseOutput string) model.PublishIntent {
	derived := base
	derived.Runtime = t.RID
	derived.Output = t.EffectiveOutput(baseOutput)
	if t.Configuration != "" {
		derived.Configuration = t.Configuration
	}
	if t.Portable != nil {
		derived.Portable = *t.Portable
	}
	if t.NonPortable != nil {
		derived.NonPortable = *t.NonPortable
	}
	if t.SingleFile != nil {
		derived.SingleFile = *t.SingleFile
	}
	if t.ForceRestore != nil {
		derived.ForceRestore = *t.ForceRestore
	}
	if !base.RemoveSymbolsSet {
		derived.RemoveSymbols = false
		derived.RemoveSymbolsSet = false
	}
	return derived
}
