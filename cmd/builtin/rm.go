package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type RmCommand struct {
}

func (r *RmCommand) Name() string {
	return "rm"
}

func (r *RmCommand) Description() string {
	return "Delete a file, or a folder tree with -r"
}

func (r *RmCommand) Usage() string {
	return "rm [-r] <path>"
}

func (r *RmCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", r.Usage())
	}

	obj := shell.Resolve(args.Args[0])

	fileType, err := obj.Type(ctx)
	if err != nil {
		return 1, err
	}
	if !fileType.HasContent() && !fileType.HasChildren() {
		return 1, fmt.Errorf("'%s' does not exist", args.Args[0])
	}

	if args.Bool("recursive") {
		if err := obj.DeleteAll(ctx); err != nil {
			return 1, err
		}

		return 0, nil
	}

	if fileType.HasChildren() {
		return 1, fmt.Errorf("'%s' is a folder, use -r", args.Args[0])
	}

	if err := obj.Delete(ctx); err != nil {
		return 1, err
	}

	return 0, nil
}

func (r *RmCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"recursive": {
				Name:        "recursive",
				Short:       "r",
				Type:        "bool",
				Description: "Delete the folder and every descendant",
			},
		},
	}
}
