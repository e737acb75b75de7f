package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/publishkit/internal/model"
)

// DefaultFileName is the settings file looked up next to the working
// directory when no --config flag is given.
const DefaultFileName = "publish.jsonc"

// Built-in fallbacks used when the settings file is absent or leaves a
// field empty. These mirror the defaults of the original build script:
// strip the WINDOWS symbol from the main program file and publish the
// Release configuration of the project in the current directory.
const (
	DefaultSymbol        = "WINDOWS"
	DefaultConfiguration = "Release"
	DefaultProject       = "."
	DefaultOutput        = "build"
)

// Settings represents the publish.jsonc file. Only the fields publishkit
// understands are included; other fields are silently ignored during
// parsing.
type Settings struct {
	// Symbol is the conditional-compilation symbol to undefine when
	// stripping, without the directive marker ("WINDOWS", not
	// "#undef WINDOWS").
	Symbol string `json:"symbol"`

	// SymbolFiles lists the C# source files the stripper rewrites.
	// Every entry must end in ".cs"; that invariant is enforced by the
	// stripper's pre-flight check before any file is touched.
	SymbolFiles []string `json:"symbolFiles"`

	// Configuration is the default build configuration name.
	Configuration string `json:"configuration"`

	// Project is the default project file or directory passed to the
	// toolchain when no positional argument is given.
	Project string `json:"project"`

	// Output is the default publish output directory.
	Output string `json:"output"`
}

// DefaultSettings returns the built-in settings used when no
// publish.jsonc exists.
func DefaultSettings() *Settings {
	return &Settings{
		Symbol:        DefaultSymbol,
		SymbolFiles:   []string{"Program.cs"},
		Configuration: DefaultConfiguration,
		Project:       DefaultProject,
		Output:        DefaultOutput,
	}
}

// Load reads and parses the settings file at path. The file may contain
// JSONC comments and trailing commas; comments are stripped before
// parsing with the standard encoding/json library.
//
// Fields left empty in the file fall back to the built-in defaults, so
// a settings file only needs to state what it changes.
//
// A missing or malformed file is a configuration error — Load is for
// explicitly requested paths. Use LoadDefault for the optional lookup.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read settings file %s", path), err)
	}
	return parse(path, raw)
}

// LoadDefault looks for publish.jsonc in dir. A missing file yields the
// built-in defaults; any other failure is reported like Load.
func LoadDefault(dir string) (*Settings, error) {
	path := filepath.Join(dir, DefaultFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read settings file %s", path), err)
	}
	return parse(path, raw)
}

// parse strips JSONC comments, unmarshals over the defaults, and fills
// any fields the file left empty.
func parse(path string, raw []byte) (*Settings, error) {
	s := &Settings{}
	if err := json.Unmarshal(jsonc.ToJSON(raw), s); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse settings file %s", path), err)
	}

	defaults := DefaultSettings()
	if s.Symbol == "" {
		s.Symbol = defaults.Symbol
	}
	if s.SymbolFiles == nil {
		s.SymbolFiles = defaults.SymbolFiles
	}
	if s.Configuration == "" {
		s.Configuration = defaults.Configuration
	}
	if s.Project == "" {
		s.Project = defaults.Project
	}
	if s.Output == "" {
		s.Output = defaults.Output
	}
	return s, nil
}
