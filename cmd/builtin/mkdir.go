package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type MkdirCommand struct {
}

func (m *MkdirCommand) Name() string {
	return "mkdir"
}

func (m *MkdirCommand) Description() string {
	return "Declare a folder; blob folders exist once they have content"
}

func (m *MkdirCommand) Usage() string {
	return "mkdir <path>"
}

func (m *MkdirCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", m.Usage())
	}

	folder := shell.ResolveFolder(args.Args[0])
	if err := folder.CreateFolder(ctx); err != nil {
		return 1, err
	}

	return 0, nil
}

func (m *MkdirCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
