package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mwantia/azvfs/cmd"
)

type GetCommand struct {
}

func (g *GetCommand) Name() string {
	return "get"
}

func (g *GetCommand) Description() string {
	return "Download a file to local disk"
}

func (g *GetCommand) Usage() string {
	return "get <path> <local-file>"
}

func (g *GetCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", g.Usage())
	}

	obj := shell.Resolve(args.Args[0])

	reader, err := obj.OpenRead(ctx)
	if err != nil {
		return 1, err
	}
	defer reader.Close()

	local, err := os.Create(args.Args[1])
	if err != nil {
		return 1, err
	}

	written, err := io.Copy(local, reader)
	if err != nil {
		local.Close()
		return 1, err
	}

	if err := local.Close(); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "downloaded %d bytes to %s\n", written, args.Args[1])
	return 0, nil
}

func (g *GetCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
