package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ao := &options.ArchiveOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "projects"},
		Short:   "List projects on the backend.",
		Example: `
callsheet list
callsheet list --archived --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := list.List{
				ShowID:          io.ShowID,
				IncludeArchived: ao.IncludeArchived,
				Client:          c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddArchivedArg(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
