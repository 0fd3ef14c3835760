package cmd

import (
	"slices"
	"testing"
)

func testFlagSet() *CommandFlagSet {
	return &CommandFlagSet{
		Flags: map[string]*CommandFlag{
			"recursive": {Name: "recursive", Short: "r", Type: "bool"},
			"long":      {Name: "long", Short: "l", Type: "bool"},
			"limit":     {Name: "limit", Short: "n", Type: "int", Default: int64(10)},
			"output":    {Name: "output", Short: "o", Type: "string"},
		},
	}
}

func TestParserParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       []string
		wantArgs  []string
		wantFlags map[string]any
		wantErr   bool
	}{
		{
			name:      "positional only",
			raw:       []string{"a", "b"},
			wantArgs:  []string{"a", "b"},
			wantFlags: map[string]any{"limit": int64(10)},
		},
		{
			name:      "long bool flag",
			raw:       []string{"--recursive", "path"},
			wantArgs:  []string{"path"},
			wantFlags: map[string]any{"recursive": true, "limit": int64(10)},
		},
		{
			name:      "short bool flags combined",
			raw:       []string{"-rl"},
			wantFlags: map[string]any{"recursive": true, "long": true, "limit": int64(10)},
		},
		{
			name:      "long flag with equals value",
			raw:       []string{"--output=file.txt"},
			wantFlags: map[string]any{"output": "file.txt", "limit": int64(10)},
		},
		{
			name:      "long flag with separate value",
			raw:       []string{"--limit", "25"},
			wantFlags: map[string]any{"limit": int64(25)},
		},
		{
			name:      "short flag with inline value",
			raw:       []string{"-n5"},
			wantFlags: map[string]any{"limit": int64(5)},
		},
		{
			name:      "double dash stops flag parsing",
			raw:       []string{"--", "--recursive"},
			wantArgs:  []string{"--recursive"},
			wantFlags: map[string]any{"limit": int64(10)},
		},
		{
			name:    "unknown long flag",
			raw:     []string{"--bogus"},
			wantErr: true,
		},
		{
			name:    "unknown short flag",
			raw:     []string{"-x"},
			wantErr: true,
		},
		{
			name:    "value flag without value",
			raw:     []string{"--output"},
			wantErr: true,
		},
		{
			name:    "invalid integer value",
			raw:     []string{"--limit", "nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := NewParser(testFlagSet()).Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%v) succeeded, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%v) failed: %v", tt.raw, err)
			}

			if !slices.Equal(args.Args, tt.wantArgs) {
				t.Errorf("Args = %v, want %v", args.Args, tt.wantArgs)
			}

			for name, want := range tt.wantFlags {
				if got := args.Flags[name]; got != want {
					t.Errorf("Flags[%q] = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestParserRequiredFlag(t *testing.T) {
	flagSet := &CommandFlagSet{
		Flags: map[string]*CommandFlag{
			"target": {Name: "target", Short: "t", Type: "string", Required: true},
		},
	}

	if _, err := NewParser(flagSet).Parse(nil); err == nil {
		t.Error("Parse without required flag succeeded, want error")
	}

	args, err := NewParser(flagSet).Parse([]string{"-t", "value"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if args.Flags["target"] != "value" {
		t.Errorf("Flags[target] = %v, want value", args.Flags["target"])
	}
}
