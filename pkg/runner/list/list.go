package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/printers"
)

type List struct {
	ShowID          bool
	IncludeArchived bool
	Client          *client.Client
}

func (n *List) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list, no backend client")
	}

	projects, err := n.Client.List(ctx, n.IncludeArchived)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	pp.TitleWithCount("Projects", len(projects.Active))
	pp.Projects(projects.Active...)

	if n.IncludeArchived {
		pp.TitleWithCount("Archived", len(projects.Archived))
		pp.Projects(projects.Archived...)
	}

	return nil
}
