// Package cmd implements the interactive command layer: a small registry of
// shell-style commands executed against one attached filesystem.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrExit signals the surrounding loop to stop. Commands return it wrapped
// in nothing; the loop checks with errors.Is.
var ErrExit = errors.New("cmd: exit requested")

// Command represents one executable shell command.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls [path]")
	Usage() string

	// Execute runs the command with parsed arguments against the shell
	// state. The writer receives command output.
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, shell *Shell, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}

// Registry holds the known commands by name.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

func (r *Registry) Register(command Command) error {
	name := command.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("cmd: command '%s' already registered", name)
	}

	r.commands[name] = command
	return nil
}

func (r *Registry) Get(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Run parses one input line and executes the named command. Unknown
// commands and parse failures report through the writer, not as errors;
// only ErrExit propagates.
func (r *Registry) Run(ctx context.Context, shell *Shell, line []string, writer io.Writer) error {
	if len(line) == 0 {
		return nil
	}

	command, ok := r.Get(line[0])
	if !ok {
		fmt.Fprintf(writer, "unknown command: %s\n", line[0])
		return nil
	}

	flagSet := command.GetFlags()
	if flagSet == nil {
		flagSet = &CommandFlagSet{Flags: map[string]*CommandFlag{}}
	}

	args, err := NewParser(flagSet).Parse(line[1:])
	if err != nil {
		fmt.Fprintf(writer, "%s: %v\n", command.Name(), err)
		return nil
	}

	code, err := command.Execute(ctx, shell, args, writer)
	if err != nil {
		if errors.Is(err, ErrExit) {
			return err
		}

		fmt.Fprintf(writer, "%s: %v\n", command.Name(), err)
	}
	if code != 0 {
		fmt.Fprintf(writer, "%s: exit code %d\n", command.Name(), code)
	}

	return nil
}
