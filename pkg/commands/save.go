package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Push the working draft to the backend.",
		Example: `
callsheet save
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			r := save.Save{
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
