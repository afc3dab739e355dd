package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// prefix is accepted for compatibility with scripts that write "cmd set width 2".
const prefix = "cmd "

// RunFunc executes a command with the positional arguments left after flag parsing.
// The returned message, if any, is shown in the console.
type RunFunc func(args []string) (string, error)

// Command is a subcommand with its own flags and a Run function.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     RunFunc
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a registry with only the built-in "help" command.
func NewRegistry() *Registry {
	r := &Registry{cmds: make(map[string]*Command)}
	r.Register("help", "help - list commands", nil, func([]string) (string, error) {
		return r.Help(), nil
	})
	return r
}

// NewFlagSet returns a FlagSet for a subcommand that reports errors instead of exiting and
// does not print to stderr.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds or replaces a subcommand. fs may be nil for commands without flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run RunFunc) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one usage line per command, sorted by name, joined with "; ".
func (r *Registry) Help() string {
	var parts []string
	for _, n := range r.Names() {
		parts = append(parts, r.cmds[n].Usage)
	}
	return strings.Join(parts, "; ")
}

// Parse splits a console line into arguments. A leading "cmd " is dropped.
// ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, prefix)
	args = strings.Fields(line)
	return args, len(args) > 0
}

// Execute runs the subcommand in args[0] with args[1:] as flags and positional arguments.
// Returns an error for an unknown command, a flag parse error, or from Run.
func (r *Registry) Execute(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("missing command")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return "", fmt.Errorf("unknown command: %s (try help)", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return "", fmt.Errorf("%s: %w (usage: %s)", cmd.Name, err, cmd.Usage)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// ParseSwitch parses an on/off argument. It accepts on, off, true, false, 1 and 0.
func ParseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
