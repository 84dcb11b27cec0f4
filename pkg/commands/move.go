package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	so := &options.SectionOptions{}

	cmd := &cobra.Command{
		Use:   "move <moved id> <target id>",
		Short: "Move a section, or a row with --section.",
		Long: "Move a section to the slot another section holds. With " +
			"--section, move a row within that section instead. The moved " +
			"element lands where the target was; everything in between " +
			"shifts.",
		Example: `
callsheet move <section id> <other section id>
callsheet move --section <day id> <row id> <other row id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a moved id and a target id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := move.Move{
				Section: so.Section,
				Moved:   args[0],
				Target:  args[1],
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
