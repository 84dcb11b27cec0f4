package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/duplicate"
)

func addDuplicate(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "duplicate",
		Aliases: []string{"copy"},
		Short:   "Copy a project under fresh identities.",
		Example: `
callsheet duplicate <project id>
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
			r := duplicate.Duplicate{
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
