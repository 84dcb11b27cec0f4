// Package archive provides the runner logic for toggling a project in and
// out of the archive.
package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/printers"
)

// Archive flips the archived flag on a project. The backend owns the flag;
// the listing afterwards reflects whatever it reports back.
type Archive struct {
	ID     string
	Client *client.Client
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not archive, no backend client")
	}
	if n.ID == "" {
		return errors.New("can not archive, no project id")
	}

	archived, err := n.Client.ToggleArchive(ctx, n.ID)
	if err != nil {
		return err
	}

	projects, err := n.Client.List(ctx, true)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if archived {
		pp.Title("Archived")
		pp.Projects(projects.Archived...)
	} else {
		pp.Title("Restored")
		pp.Projects(projects.Active...)
	}

	return nil
}
