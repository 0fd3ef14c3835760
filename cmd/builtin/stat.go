package builtin

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mwantia/azvfs/cmd"
)

type StatCommand struct {
}

func (s *StatCommand) Name() string {
	return "stat"
}

func (s *StatCommand) Description() string {
	return "Show type, size and modification time of a path"
}

func (s *StatCommand) Usage() string {
	return "stat <path>"
}

func (s *StatCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return 1, fmt.Errorf("usage: %s", s.Usage())
	}

	obj := shell.Resolve(args.Args[0])

	fileType, err := obj.Type(ctx)
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "uri:  %s\n", obj.Name().URI())
	fmt.Fprintf(writer, "type: %s\n", fileType)

	if fileType.HasContent() {
		size, err := obj.ContentSize(ctx)
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(writer, "size: %d\n", size)

		contentType, err := obj.ContentType(ctx)
		if err != nil {
			return 1, err
		}
		if contentType != "" {
			fmt.Fprintf(writer, "content-type: %s\n", contentType)
		}

		millis, err := obj.LastModified(ctx)
		if err != nil {
			return 1, err
		}
		if millis > 0 {
			fmt.Fprintf(writer, "modified: %s\n", time.UnixMilli(millis).UTC().Format(time.RFC3339))
		}
	}

	return 0, nil
}

func (s *StatCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
