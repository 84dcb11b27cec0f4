package commands

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Every verb that reports errors through output.HandleError must register
// the --json flag, or the JSON error rendering can never trigger.
func TestJSONFlagRegisteredOnEveryVerb(t *testing.T) {
	verbs := []string{
		"list",
		"open",
		"save",
		"new",
		"show",
		"set",
		"move",
		"drop",
		"archive",
		"duplicate",
		"remove",
		"export",
		"logo",
		"health",
		"add day",
		"add calltime",
		"add row",
	}

	root := New()
	for _, verb := range verbs {
		cmd := findCommand(t, root, verb)
		if cmd.Flags().Lookup("json") == nil {
			t.Errorf("command %q has no --json flag", verb)
		}
	}
}

func TestSetRegistersColumnFlags(t *testing.T) {
	cmd := findCommand(t, New(), "set")
	for _, flag := range []string{"column", "width", "header"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("set has no --%s flag", flag)
		}
	}
}

func findCommand(t *testing.T, root *cobra.Command, path string) *cobra.Command {
	t.Helper()
	cmd := root
	for _, name := range strings.Fields(path) {
		var next *cobra.Command
		for _, child := range cmd.Commands() {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			t.Fatalf("command %q not found under %q", name, cmd.Name())
		}
		cmd = next
	}
	return cmd
}
