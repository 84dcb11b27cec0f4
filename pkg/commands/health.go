package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/health"
)

func addHealth(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the backend is reachable.",
		Example: `
callsheet health
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			r := health.Health{
				Client: c,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
