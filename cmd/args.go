package cmd

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// Bool returns the named flag as a bool, false when absent.
func (a *CommandArgs) Bool(name string) bool {
	v, ok := a.Flags[name].(bool)
	return ok && v
}

// String returns the named flag as a string, "" when absent.
func (a *CommandArgs) String(name string) string {
	v, _ := a.Flags[name].(string)
	return v
}

// Int returns the named flag as an int64, 0 when absent.
func (a *CommandArgs) Int(name string) int64 {
	v, _ := a.Flags[name].(int64)
	return v
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string // e.g., "recursive" or "r"
	Short       string // Single-char shorthand (e.g., "r")
	Type        string // "string", "bool", "int"
	Default     any    // Default value
	Required    bool   // Must be provided
	Description string // Help text
}
