package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/drop"
)

func addDrop(topLevel *cobra.Command) {
	so := &options.SectionOptions{}

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Remove a section or row from the working draft.",
		Example: `
callsheet drop --section <section id>
callsheet drop --section <section id> --row <row id>
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := drop.Drop{
				Section: so.Section,
				Row:     so.Row,
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	options.AddRowArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
