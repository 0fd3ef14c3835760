package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mwantia/azvfs/cmd"
)

type PutCommand struct {
}

func (p *PutCommand) Name() string {
	return "put"
}

func (p *PutCommand) Description() string {
	return "Upload a local file"
}

func (p *PutCommand) Usage() string {
	return "put <local-file> <path>"
}

func (p *PutCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", p.Usage())
	}

	local, err := os.Open(args.Args[0])
	if err != nil {
		return 1, err
	}
	defer local.Close()

	obj := shell.Resolve(args.Args[1])

	out, err := obj.OpenWrite(ctx, false)
	if err != nil {
		return 1, err
	}

	written, err := io.Copy(out, local)
	if err != nil {
		out.Close()
		return 1, err
	}

	if err := out.Close(); err != nil {
		return 1, err
	}

	fmt.Fprintf(writer, "uploaded %d bytes to %s\n", written, obj.Name().URI())
	return 0, nil
}

func (p *PutCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
