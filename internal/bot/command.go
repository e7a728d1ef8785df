package bot

import "strings"

// Command identifies what an incoming message asks for
type Command int

const (
	// Ignore is any message not addressed to the bot.
	Ignore Command = iota
	// NotACommand is the bare prefix with no subcommand.
	NotACommand
	Help
	Fetch
	Shutdown
	// Malformed is an unknown subcommand or a wrong number of arguments.
	Malformed
)

func (c Command) String() string {
	switch c {
	case NotACommand:
		return "not_a_command"
	case Help:
		return "help"
	case Fetch:
		return "fetch"
	case Shutdown:
		return "shutdown"
	case Malformed:
		return "malformed"
	default:
		return "ignore"
	}
}

var prefixes = map[string]bool{
	"membersfetcher": true,
	"mf":             true,
}

var subcommands = map[string]Command{
	"help":     Help,
	"h":        Help,
	"fetch":    Fetch,
	"run":      Fetch,
	"shutdown": Shutdown,
	"suicide":  Shutdown,
	"kill":     Shutdown,
}

// Invocation is a parsed message
type Invocation struct {
	Command Command
	Args    []string
}

// GuildArg returns the guild id argument of a Fetch invocation
func (inv Invocation) GuildArg() string {
	if len(inv.Args) == 0 {
		return ""
	}
	return inv.Args[0]
}

// FilenameArg returns the optional filename argument of a Fetch invocation
func (inv Invocation) FilenameArg() string {
	if len(inv.Args) < 2 {
		return ""
	}
	return inv.Args[1]
}

// Parse splits content on whitespace and maps it to a command. The prefix and
// subcommand are case-insensitive; arguments keep their case.
func Parse(content string) Invocation {
	fields := strings.Fields(content)
	if len(fields) == 0 || !prefixes[strings.ToLower(fields[0])] {
		return Invocation{Command: Ignore}
	}
	if len(fields) == 1 {
		return Invocation{Command: NotACommand}
	}

	cmd, ok := subcommands[strings.ToLower(fields[1])]
	if !ok {
		return Invocation{Command: Malformed, Args: fields[1:]}
	}

	args := fields[2:]
	if !argCountValid(cmd, len(args)) {
		return Invocation{Command: Malformed, Args: fields[1:]}
	}
	return Invocation{Command: cmd, Args: args}
}

func argCountValid(cmd Command, n int) bool {
	switch cmd {
	case Fetch:
		return n >= 1 && n <= 2
	case Help, Shutdown:
		return n == 0
	default:
		return false
	}
}
