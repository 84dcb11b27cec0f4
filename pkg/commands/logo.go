package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/callsheet/callsheet/pkg/commands/options"
	"github.com/callsheet/callsheet/pkg/runner/logo"
)

func addLogo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logo <image file>",
		Short: "Upload a logo and attach it to the working draft.",
		Long: "Upload a JPEG or PNG image, 5MB at most. The backend stores " +
			"the file and the draft records the returned URL.",
		Example: `
callsheet logo poster.png
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an image file")
			}
			return nil
		},

		RunE: func(_ *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s, err := newSession()
			if err != nil {
				return err
			}
			r := logo.Logo{
				Path:    args[0],
				Client:  c,
				Session: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
