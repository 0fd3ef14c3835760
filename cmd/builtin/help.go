package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/azvfs/cmd"
)

type HelpCommand struct {
	registry *cmd.Registry
}

func NewHelpCommand(registry *cmd.Registry) *HelpCommand {
	return &HelpCommand{
		registry: registry,
	}
}

func (h *HelpCommand) Name() string {
	return "help"
}

func (h *HelpCommand) Description() string {
	return "List available commands"
}

func (h *HelpCommand) Usage() string {
	return "help"
}

func (h *HelpCommand) Execute(ctx context.Context, shell *cmd.Shell, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	for _, name := range h.registry.Names() {
		command, _ := h.registry.Get(name)
		fmt.Fprintf(writer, "%-24s %s\n", command.Usage(), command.Description())
	}

	return 0, nil
}

func (h *HelpCommand) GetFlags() *cmd.CommandFlagSet {
	return nil
}
