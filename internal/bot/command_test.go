package bot

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Command
		args    []string
	}{
		{"empty", "", Ignore, nil},
		{"whitespace only", "   \t ", Ignore, nil},
		{"unrelated message", "hello there", Ignore, nil},
		{"prefix as substring", "mfx help", Ignore, nil},
		{"bare prefix", "mf", NotACommand, nil},
		{"bare long prefix", "MembersFetcher", NotACommand, nil},
		{"help", "mf help", Help, []string{}},
		{"help alias", "membersfetcher h", Help, []string{}},
		{"help upper case", "MF HELP", Help, []string{}},
		{"help with args", "mf help me", Malformed, []string{"help", "me"}},
		{"fetch guild", "mf fetch 123", Fetch, []string{"123"}},
		{"run alias", "mf run 123 out.csv", Fetch, []string{"123", "out.csv"}},
		{"fetch keeps arg case", "MF FETCH 123 Report.CSV", Fetch, []string{"123", "Report.CSV"}},
		{"fetch collapses whitespace", "  mf   fetch\t123  ", Fetch, []string{"123"}},
		{"fetch without guild", "mf fetch", Malformed, []string{"fetch"}},
		{"fetch too many args", "mf fetch 1 2 3", Malformed, []string{"fetch", "1", "2", "3"}},
		{"shutdown", "mf shutdown", Shutdown, []string{}},
		{"suicide alias", "mf suicide", Shutdown, []string{}},
		{"kill alias", "mf kill", Shutdown, []string{}},
		{"kill with args", "mf kill now", Malformed, []string{"kill", "now"}},
		{"unknown subcommand", "mf dance", Malformed, []string{"dance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content)
			if got.Command != tt.want {
				t.Errorf("Parse(%q).Command = %v, want %v", tt.content, got.Command, tt.want)
			}
			if !slices.Equal(got.Args, tt.args) {
				t.Errorf("Parse(%q).Args = %v, want %v", tt.content, got.Args, tt.args)
			}
		})
	}
}

func TestInvocationArgs(t *testing.T) {
	tests := []struct {
		name         string
		inv          Invocation
		wantGuild    string
		wantFilename string
	}{
		{"no args", Invocation{Command: Fetch}, "", ""},
		{"guild only", Invocation{Command: Fetch, Args: []string{"42"}}, "42", ""},
		{"guild and filename", Invocation{Command: Fetch, Args: []string{"42", "out"}}, "42", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.GuildArg(); got != tt.wantGuild {
				t.Errorf("GuildArg() = %q, want %q", got, tt.wantGuild)
			}
			if got := tt.inv.FilenameArg(); got != tt.wantFilename {
				t.Errorf("FilenameArg() = %q, want %q", got, tt.wantFilename)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := map[Command]string{
		Ignore:      "ignore",
		NotACommand: "not_a_command",
		Help:        "help",
		Fetch:       "fetch",
		Shutdown:    "shutdown",
		Malformed:   "malformed",
	}
	for cmd, want := range tests {
		if got := cmd.String(); got != want {
			t.Errorf("Command(%d).String() = %q, want %q", int(cmd), got, want)
		}
	}
}
