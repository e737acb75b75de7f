package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// writeSettings is a test helper that writes a settings file into a
// temporary directory and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoad_JSONCComments verifies that comments and trailing commas are
// tolerated, matching the JSONC convention for config files.
func TestLoad_JSONCComments(t *testing.T) {
	path := writeSettings(t, `{
		// files carrying WINDOWS-conditional code
		"symbolFiles": ["Cli/Program.cs", "Cli/Tray.cs"],
		"project": "Cli/App.csproj", // trailing comment
	}`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cli/Program.cs", "Cli/Tray.cs"}, s.SymbolFiles)
	assert.Equal(t, "Cli/App.csproj", s.Project)
}

// TestLoad_FillsDefaults verifies that fields omitted from the file fall
// back to the built-in defaults.
func TestLoad_FillsDefaults(t *testing.T) {
	path := writeSettings(t, `{"output": "dist"}`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dist", s.Output, "explicit field should win")
	assert.Equal(t, DefaultSymbol, s.Symbol)
	assert.Equal(t, DefaultConfiguration, s.Configuration)
	assert.Equal(t, DefaultProject, s.Project)
	assert.Equal(t, []string{"Program.cs"}, s.SymbolFiles)
}

// TestLoad_MissingFileIsError verifies that an explicitly requested
// settings path must exist.
func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestLoad_MalformedIsConfigError verifies that a syntactically broken
// file is surfaced as a configuration error, not a crash.
func TestLoad_MalformedIsConfigError(t *testing.T) {
	path := writeSettings(t, `{"symbolFiles": [`)

	_, err := Load(path)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestLoadDefault_MissingYieldsDefaults verifies the optional lookup:
// no publish.jsonc means built-in defaults, not an error.
func TestLoadDefault_MissingYieldsDefaults(t *testing.T) {
	s, err := LoadDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

// TestLoadDefault_ReadsFile verifies the optional lookup picks up an
// existing publish.jsonc.
func TestLoadDefault_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"symbol": "WINDOWS_TRAY"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o644))

	s, err := LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "WINDOWS_TRAY", s.Symbol)
}
