package duplicate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/callsheet/callsheet/pkg/client"
)

// Duplicate asks the backend to copy a project. The copy gets fresh ids
// throughout; only the server knows them, so we print what it returns.
type Duplicate struct {
	ID     string
	Client *client.Client
}

func (n *Duplicate) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not duplicate, no backend client")
	}
	if n.ID == "" {
		return errors.New("can not duplicate, no project id")
	}

	doc, err := n.Client.Duplicate(ctx, n.ID)
	if err != nil {
		return err
	}

	c := color.New(color.FgGreen)
	_, _ = c.Printf("created %q", doc.Name)
	fmt.Printf("  %s\n", doc.ID)
	return nil
}
