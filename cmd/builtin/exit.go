package builtin

import (
	"context"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type ExitCommand struct {
}

func (e *ExitCommand) Name() string {
	return "exit"
}

func (e *ExitCommand) Description() string {
	return "Leave the shell"
}

func (e *ExitCommand) Usage() string {
	return "exit"
}

func (e *ExitCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	return 0, cmd.ErrExit
}

func (e *ExitCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
