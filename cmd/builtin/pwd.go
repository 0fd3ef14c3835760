package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type PwdCommand struct {
}

func (p *PwdCommand) Name() string {
	return "pwd"
}

func (p *PwdCommand) Description() string {
	return "Print the working folder"
}

func (p *PwdCommand) Usage() string {
	return "pwd"
}

func (p *PwdCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	fmt.Fprintln(writer, shell.Cwd)
	return 0, nil
}

func (p *PwdCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
