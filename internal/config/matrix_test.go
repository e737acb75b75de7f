package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// writeMatrix is a test helper that writes a matrix YAML file and
// returns its path.
func writeMatrix(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadMatrix verifies YAML parsing of a two-target matrix.
func TestLoadMatrix(t *testing.T) {
	path := writeMatrix(t, `
targets:
  - rid: linux-x64
    portable: true
    singleFile: true
  - rid: win-x64
    configuration: Debug
    output: build/windows
`)

	m, err := LoadMatrix(path)
	require.NoError(t, err)
	require.Len(t, m.Targets, 2)

	assert.Equal(t, "linux-x64", m.Targets[0].RID)
	require.NotNil(t, m.Targets[0].Portable)
	assert.True(t, *m.Targets[0].Portable)
	require.NotNil(t, m.Targets[0].SingleFile)
	assert.True(t, *m.Targets[0].SingleFile)

	assert.Equal(t, "win-x64", m.Targets[1].RID)
	assert.Equal(t, "Debug", m.Targets[1].Configuration)
	assert.Equal(t, "build/windows", m.Targets[1].Output)
	assert.Nil(t, m.Targets[1].Portable, "an omitted key must parse as unset, not false")
}

// boolPtr returns a pointer to b, for building matrix targets in tests.
func boolPtr(b bool) *bool { return &b }

// TestLoadMatrix_Malformed verifies that broken YAML is a configuration
// error.
func TestLoadMatrix_Malformed(t *testing.T) {
	path := writeMatrix(t, "targets: [rid: {")

	_, err := LoadMatrix(path)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestMatrixValidate rejects empty matrices, targets without a RID, and
// output directory collisions — all before any target runs.
func TestMatrixValidate(t *testing.T) {
	empty := &Matrix{}
	assert.Error(t, empty.Validate("build"), "empty matrix should fail validation")

	noRID := &Matrix{Targets: []MatrixTarget{{Output: "out"}}}
	assert.Error(t, noRID.Validate("build"), "target without rid should fail validation")

	collision := &Matrix{Targets: []MatrixTarget{
		{RID: "linux-x64", Output: "dist"},
		{RID: "win-x64", Output: "dist"},
	}}
	err := collision.Validate("build")
	require.Error(t, err, "shared output directory should fail validation")
	assert.Contains(t, err.Error(), "dist")

	ok := &Matrix{Targets: []MatrixTarget{
		{RID: "linux-x64"},
		{RID: "win-x64"},
	}}
	assert.NoError(t, ok.Validate("build"),
		"per-RID default outputs should not collide")
}

// TestMatrixTarget_EffectiveOutput verifies the per-RID subdirectory
// default and the explicit override.
func TestMatrixTarget_EffectiveOutput(t *testing.T) {
	implicit := MatrixTarget{RID: "linux-x64"}
	assert.Equal(t, filepath.Join("build", "linux-x64"), implicit.EffectiveOutput("build"))

	explicit := MatrixTarget{RID: "linux-x64", Output: "dist/linux"}
	assert.Equal(t, "dist/linux", explicit.EffectiveOutput("build"))
}

// TestMatrixTarget_Apply verifies intent derivation: target fields
// override the base, heuristic-resolved symbol choices are re-derived
// per target, and explicit choices carry through.
func TestMatrixTarget_Apply(t *testing.T) {
	base := model.PublishIntent{
		Configuration: "Release",
		Output:        "build",
		Project:       "App.csproj",
		KeepOutput:    true,
	}

	target := MatrixTarget{RID: "win-x64", SingleFile: boolPtr(true)}
	derived := target.Apply(base, base.Output)

	assert.Equal(t, "win-x64", derived.Runtime)
	assert.Equal(t, filepath.Join("build", "win-x64"), derived.Output)
	assert.Equal(t, "Release", derived.Configuration, "unset target fields keep the base value")
	assert.True(t, derived.SingleFile)
	assert.True(t, derived.KeepOutput, "non-target base fields carry through")
	assert.False(t, derived.RemoveSymbolsSet,
		"heuristic choice should be re-derived per target RID")

	derived.Normalize()
	assert.False(t, derived.RemoveSymbols, "win target should keep symbols after re-derivation")

	// Explicit base choice applies to every target.
	base.RemoveSymbols = true
	base.RemoveSymbolsSet = true
	derived = target.Apply(base, base.Output)
	assert.True(t, derived.RemoveSymbolsSet)
	assert.True(t, derived.RemoveSymbols)
}

// TestMatrixTarget_ApplyInheritsBaseModes verifies that boolean modes
// the target leaves unset inherit the base intent — a -p on the command
// line holds for every target that doesn't override it — while explicit
// keys (including an explicit false) still win.
func TestMatrixTarget_ApplyInheritsBaseModes(t *testing.T) {
	base := model.PublishIntent{
		Output:     "build",
		Portable:   true,
		SingleFile: true,
	}

	inherits := MatrixTarget{RID: "linux-x64"}
	derived := inherits.Apply(base, base.Output)
	assert.True(t, derived.Portable, "unset portable key must inherit the base -p")
	assert.True(t, derived.SingleFile, "unset singleFile key must inherit the base -s")

	overrides := MatrixTarget{
		RID:         "win-x64",
		Portable:    boolPtr(false),
		NonPortable: boolPtr(true),
	}
	derived = overrides.Apply(base, base.Output)
	assert.False(t, derived.Portable, "explicit portable: false must override the base")
	assert.True(t, derived.NonPortable)
	assert.True(t, derived.SingleFile, "untouched modes still inherit")
}
