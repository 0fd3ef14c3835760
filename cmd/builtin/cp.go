package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/cmd"
)

type CpCommand struct {
}

func (c *CpCommand) Name() string {
	return "cp"
}

func (c *CpCommand) Description() string {
	return "Copy a file or folder tree"
}

func (c *CpCommand) Usage() string {
	return "cp <source> <destination>"
}

func (c *CpCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", c.Usage())
	}

	source := shell.Resolve(args.Args[0])
	dest := shell.Resolve(args.Args[1])

	if err := dest.CopyFrom(ctx, source, azvfs.SelectAll); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "copied %s to %s\n", source.Name().URI(), dest.Name().URI())
	return 0, nil
}

func (c *CpCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
