package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
	"github.com/mwantia/azvfs/data"
)

type TouchCommand struct {
}

func (t *TouchCommand) Name() string {
	return "touch"
}

func (t *TouchCommand) Description() string {
	return "Create an empty file, or rewrite an existing one to refresh its timestamp"
}

func (t *TouchCommand) Usage() string {
	return "touch <path>"
}

func (t *TouchCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", t.Usage())
	}

	obj := shell.Resolve(args.Args[0])

	kind, err := obj.Type(ctx)
	if err != nil {
		return 1, err
	}
	if kind == data.FileTypeFolder {
		return 1, fmt.Errorf("'%s' is a folder", obj.Name().URI())
	}

	// Blob modification times are set by the store on commit, so an existing
	// file is refreshed by rewriting its own content.
	var content []byte
	if kind == data.FileTypeFile {
		in, err := obj.OpenRead(ctx)
		if err != nil {
			return 1, err
		}

		content, err = io.ReadAll(in)
		in.Close()
		if err != nil {
			return 1, err
		}
	}

	out, err := obj.OpenWrite(ctx, false)
	if err != nil {
		return 1, err
	}

	if _, err := out.Write(content); err != nil {
		out.Close()
		return 1, err
	}

	if err := out.Close(); err != nil {
		return 1, err
	}

	return 0, nil
}

func (t *TouchCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
