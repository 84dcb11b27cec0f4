package save

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/callsheet/callsheet/pkg/session"
)

// Save pushes the working draft to the backend. A draft that has never
// been saved is created and adopts the server-assigned id.
type Save struct {
	Session *session.Session
}

func (n *Save) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not save, no session")
	}

	doc, err := n.Session.Save(ctx)
	if err != nil {
		return err
	}

	c := color.New(color.FgGreen)
	_, _ = c.Printf("saved %q", doc.Name)
	fmt.Printf("  %s\n", doc.ID)
	return nil
}
