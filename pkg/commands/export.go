package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	outFile := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a project as CSV.",
		Example: `
callsheet export <project id>
callsheet export <project id> -o schedule.csv
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			r := export.Export{
				ID:     io.ID,
				Output: outFile,
				Client: c,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "",
		"Write the CSV to this file instead of stdout.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
