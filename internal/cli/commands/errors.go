package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/fastapi-gen/internal/cli/ui"
)

var errMissingModelName = errors.New("model name is required")

// reportedError wraps an error whose details were already written to stderr
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// missingName prints the missing-name block for a command and returns an
// error that Execute does not print again
func missingName(cmd *cobra.Command, usage string, noColor bool) error {
	ui.WriteError(cmd.ErrOrStderr(), ui.MissingName("MODEL NAME", usage, noColor))
	return &reportedError{err: errMissingModelName}
}
