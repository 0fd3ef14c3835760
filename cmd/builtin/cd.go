package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type CdCommand struct {
}

func (c *CdCommand) Name() string {
	return "cd"
}

func (c *CdCommand) Description() string {
	return "Change the working folder"
}

func (c *CdCommand) Usage() string {
	return "cd [path]"
}

func (c *CdCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	target := "/"
	if len(args.Args) > 0 {
		target = args.Args[0]
	}

	folder := shell.ResolveFolder(target)

	// A slash-terminated name is always a folder by declaration, so folder
	// existence is checked through its children instead.
	if !folder.FileName().IsRoot() {
		names, err := folder.ChildNames(ctx)
		if err != nil {
			return 1, err
		}
		if len(names) == 0 {
			return 1, fmt.Errorf("'%s' does not exist", target)
		}
	}

	shell.Cwd = folder.FileName().Path()
	return 0, nil
}

func (c *CdCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
