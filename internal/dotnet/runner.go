package dotnet

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/mmr-tortoise/publishkit/internal/buildlog"
	"github.com/mmr-tortoise/publishkit/internal/model"
)

// Runner launches the assembled command as a child process.
type Runner struct {
	log *buildlog.Logger
}

// NewRunner creates a Runner that logs command lines at debug level.
func NewRunner(log *buildlog.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes the command and returns its exit code. The child
// inherits the parent's standard streams — publishkit does not capture
// or interpret the toolchain's output — and runs to completion with no
// timeout.
//
// A non-zero exit from the toolchain is NOT an error here: the code is
// returned as-is for the CLI to propagate to the shell. Only a failure
// to launch the process at all (binary missing, fork failure) is
// reported as an error.
func (r *Runner) Run(ctx context.Context, cmd *Command) (int, error) {
	tokens := cmd.Tokens()
	r.log.Debugf("running: %s", cmd.String())

	// #nosec G204 — the token list is assembled by Build from validated
	// intent, not raw user input.
	proc := exec.CommandContext(ctx, tokens[0], tokens[1:]...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, model.WrapCLIError(model.ExitGeneralError,
			"failed to launch "+tokens[0], err)
	}
	return 0, nil
}
