package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/archive"
)

func addArchive(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "archive",
		Aliases: []string{"unarchive"},
		Short:   "Toggle a project in or out of the archive.",
		Example: `
callsheet archive <project id>
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
			r := archive.Archive{
				ID:     io.ID,
				Client: c,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
