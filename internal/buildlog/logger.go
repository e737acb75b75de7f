package buildlog

import (
	"fmt"
	"io"
	"os"
)

// EnvGitHubActions is the environment variable GitHub Actions sets to
// "true" in workflow runs. Its presence selects the annotated output
// format.
const EnvGitHubActions = "GITHUB_ACTIONS"

// loggerName tags every plain-format line so interleaved toolchain
// output remains attributable to this tool.
const loggerName = "publishkit"

// Level identifies the severity of a log line.
type Level int

const (
	// LevelDebug is trace output, emitted only in verbose mode.
	LevelDebug Level = iota

	// LevelInfo is normal progress output.
	LevelInfo

	// LevelWarning is an advisory condition that does not stop the run.
	LevelWarning

	// LevelError is a fatal condition reported before exiting.
	LevelError
)

// String returns the upper-case level name used in the plain format.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// annotation returns the GitHub Actions workflow command name for the
// level, or "" if the level has no annotation equivalent. GitHub only
// understands debug, warning, and error commands; info is excluded.
func (l Level) annotation() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return ""
	}
}

// Logger writes leveled log lines to a single destination. The zero
// value is not usable; construct loggers with New or a struct literal
// (tests typically point Out at a bytes.Buffer).
type Logger struct {
	// Out receives all log output. The CLI uses os.Stderr so stdout
	// stays reserved for the external toolchain's own output.
	Out io.Writer

	// Annotate enables the GitHub Actions annotation lines.
	Annotate bool

	// Verbose enables Debugf output.
	Verbose bool
}

// New creates a Logger writing to out. The annotation format is chosen
// from the GITHUB_ACTIONS environment flag, matching how CI workflows
// invoke this tool without extra configuration.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{
		Out:      out,
		Annotate: os.Getenv(EnvGitHubActions) == "true",
		Verbose:  verbose,
	}
}

// Debugf logs a debug-level line. Suppressed unless Verbose is set.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.emit(LevelDebug, format, args...)
}

// Infof logs an info-level line.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(LevelInfo, format, args...)
}

// Warnf logs a warning-level line.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(LevelWarning, format, args...)
}

// Errorf logs an error-level line.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(LevelError, format, args...)
}

// emit renders one log record. In annotated mode the workflow command
// line precedes the plain line; the plain line is always written so
// local log readers see consistent output either way.
func (l *Logger) emit(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.Annotate {
		if cmd := level.annotation(); cmd != "" {
			fmt.Fprintf(l.Out, "::%s ::%s\n", cmd, msg)
		}
	}
	fmt.Fprintf(l.Out, "<%s> [%s] %s\n", loggerName, level, msg)
}
