// Package model defines the domain types for the publishkit CLI.
//
// This package contains pure data structures with no external
// dependencies. The central entity is PublishIntent — the validated,
// normalized record of what one invocation should do. It is constructed
// once from parsed flags and settings, normalized, and then treated as
// read-only by every downstream component.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
