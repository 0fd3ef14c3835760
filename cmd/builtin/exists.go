package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type ExistsCommand struct {
}

func (e *ExistsCommand) Name() string {
	return "exists"
}

func (e *ExistsCommand) Description() string {
	return "Report whether a path resolves to a file or folder"
}

func (e *ExistsCommand) Usage() string {
	return "exists <path>"
}

func (e *ExistsCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", e.Usage())
	}

	exists, err := shell.Resolve(args.Args[0]).Exists(ctx)
	if err != nil {
		return 1, err
	}

	fmt.Fprintln(writer, exists)
	return 0, nil
}

func (e *ExistsCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
