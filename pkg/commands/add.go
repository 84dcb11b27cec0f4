package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something to the working draft",
		Example: `
callsheet add day
callsheet add calltime
callsheet add row --section <section id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddDay(cmd)
	addAddCalltime(cmd)
	addAddRow(cmd)

	topLevel.AddCommand(cmd)
}

func addAddDay(topLevel *cobra.Command) {
	date := ""

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Append a shooting day.",
		Example: `
callsheet add day
callsheet add day --date 14-09-2026
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := add.Add{
				Day:     true,
				Date:    date,
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "",
		"Date of the new day, DD-MM-YYYY. Defaults to today.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddCalltime(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "calltime",
		Aliases: []string{"roster"},
		Short:   "Append a calltime roster.",
		Example: `
callsheet add calltime
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := add.Add{
				Calltime: true,
				Session:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddRow(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	text := false

	cmd := &cobra.Command{
		Use:   "row",
		Short: "Append a row to a section.",
		Example: `
callsheet add row --section <section id>
callsheet add row --section <section id> --text
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := add.Add{
				Section: so.Section,
				Text:    text,
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	cmd.Flags().BoolVarP(&text, "text", "t", false,
		"Add a free-text row instead of a scheduled item.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
