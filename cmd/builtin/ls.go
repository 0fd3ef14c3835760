package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwantia/azvfs/cmd"
)

type LsCommand struct {
}

func (ls *LsCommand) Name() string {
	return "ls"
}

func (ls *LsCommand) Description() string {
	return "List the children of a folder"
}

func (ls *LsCommand) Usage() string {
	return "ls [-l] [path]"
}

func (ls *LsCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	target := shell.Cwd
	if len(args.Args) > 0 {
		target = args.Args[0]
	}

	folder := shell.ResolveFolder(target)

	if !args.Bool("long") {
		names, err := folder.ChildNames(ctx)
		if err != nil {
			return 1, err
		}

		for _, name := range names {
			fmt.Fprintln(writer, name)
		}

		return 0, nil
	}

	children, err := folder.Children(ctx)
	if err != nil {
		return 1, err
	}

	for _, child := range children {
		fileType, err := child.Type(ctx)
		if err != nil {
			return 1, err
		}

		size := int64(0)
		modified := ""
		if fileType.HasContent() {
			if size, err = child.ContentSize(ctx); err != nil {
				return 1, err
			}

			millis, err := child.LastModified(ctx)
			if err != nil {
				return 1, err
			}
			if millis > 0 {
				modified = time.UnixMilli(millis).UTC().Format("2006-01-02 15:04:05")
			}
		}

		name := child.Name().Path()
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
		if fileType.HasChildren() {
			name += "/"
		}

		fmt.Fprintf(writer, "%-9s %12d  %-19s  %s\n", fileType, size, modified, name)
	}

	return 0, nil
}

func (ls *LsCommand) GetFlags() *cmd.CommandFlagSet {
	return &cmd.CommandFlagSet{
		Flags: map[string]*cmd.CommandFlag{
			"long": {
				Name:        "long",
				Short:       "l",
				Type:        "bool",
				Description: "Show type, size and modification time",
			},
		},
	}
}
