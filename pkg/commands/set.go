package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	name := ""
	notes := ""
	date := ""
	title := ""
	column := ""
	width := 0
	header := ""

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set fields on the working draft.",
		Example: `
callsheet set --name "Night Shoot"
callsheet set --notes "unit 2 wraps early"
callsheet set --section <day id> --date 14-09-2026
callsheet set --section <calltime id> --title "Crew Call"
callsheet set --column scene --width 20 --header "Scene / Setup"
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := set.Set{
				Name:    name,
				Notes:   notes,
				Section: so.Section,
				Date:    date,
				Title:   title,
				Column:  column,
				Width:   width,
				Header:  header,
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	cmd.Flags().StringVar(&name, "name", "", "Rename the project.")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace the project notes.")
	cmd.Flags().StringVar(&date, "date", "", "Set the date of a day section, DD-MM-YYYY.")
	cmd.Flags().StringVar(&title, "title", "", "Set the title of a calltime roster.")
	cmd.Flags().StringVar(&column, "column", "", "Day-table column to adjust, e.g. scene.")
	cmd.Flags().IntVar(&width, "width", 0, "Width percentage for the column.")
	cmd.Flags().StringVar(&header, "header", "", "Header label for the column.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
