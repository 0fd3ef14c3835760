package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type CatCommand struct {
}

func (c *CatCommand) Name() string {
	return "cat"
}

func (c *CatCommand) Description() string {
	return "Print the content of a file"
}

func (c *CatCommand) Usage() string {
	return "cat <path>"
}

func (c *CatCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", c.Usage())
	}

	obj := shell.Resolve(args.Args[0])

	reader, err := obj.OpenRead(ctx)
	if err != nil {
		return 1, err
	}
	defer reader.Close()

	if _, err := io.Copy(writer, reader); err != nil {
		return 1, err
	}

	return 0, nil
}

func (c *CatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
