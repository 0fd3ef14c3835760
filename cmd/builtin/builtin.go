// Package builtin provides the stock shell commands.
package builtin

import "github.com/mwantia/azvfs/cmd"

// InitBuiltin registers every stock command into the registry.
func InitBuiltin(registry *cmd.Registry) error {
	commands := []cmd.Command{
		&LsCommand{},
		&CatCommand{},
		&PutCommand{},
		&GetCommand{},
		&TouchCommand{},
		&CpCommand{},
		&RmCommand{},
		&StatCommand{},
		&ExistsCommand{},
		&MkdirCommand{},
		&CdCommand{},
		&PwdCommand{},
		&ExitCommand{},
		NewHelpCommand(registry),
	}

	for _, command := range commands {
		if err := registry.Register(command); err != nil {
			return err
		}
	}

	return nil
}
