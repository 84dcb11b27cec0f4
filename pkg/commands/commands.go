package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/callsheet/callsheet/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "callsheet",
		Short: base.Wrap80("Production schedules on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addShow(topLevel)
	addAdd(topLevel)
	addSet(topLevel)
	addMove(topLevel)
	addDrop(topLevel)
	addOpen(topLevel)
	addSave(topLevel)
	addList(topLevel)
	addArchive(topLevel)
	addDuplicate(topLevel)
	addRemove(topLevel)
	addExport(topLevel)
	addLogo(topLevel)
	addHealth(topLevel)
	addVersion(topLevel)
}
