// Package dotnet assembles and runs the external `dotnet publish`
// command line.
//
// The argument list is built as a structured sequence of typed flag
// entries rather than a flat string slice, so the toolchain's two
// ordering requirements are enforced by construction: every value token
// immediately follows its flag token, and all flags precede the
// trailing project-file token. Serialization to argv happens in one
// explicit final step (Command.Tokens).
//
// Running the command inherits the parent's standard streams and blocks
// until completion. No timeout is applied: a hang in the toolchain
// hangs this tool, which is an accepted limitation of a build wrapper.
package dotnet
