package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	runnernew "github.com/callsheet/callsheet/pkg/runner/new"
)

func addNew(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Start a fresh draft, discarding the current one.",
		Example: `
callsheet new
callsheet new Night Shoot
`,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := runnernew.New{
				Name:    strings.Join(args, " "),
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
