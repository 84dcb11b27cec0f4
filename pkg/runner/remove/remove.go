package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/printers"
)

// Remove permanently deletes a project from the backend.
type Remove struct {
	ID     string
	Client *client.Client
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not remove, no backend client")
	}
	if n.ID == "" {
		return errors.New("can not remove, no project id")
	}

	if err := n.Client.Delete(ctx, n.ID); err != nil {
		return err
	}

	projects, err := n.Client.List(ctx, false)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount("Projects", len(projects.Active))
	pp.Projects(projects.Active...)

	return nil
}
