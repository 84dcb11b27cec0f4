// Package open provides the runner logic for loading a project into the
// working draft.
package open

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/session"
)

// Open replaces the working draft with a project fetched from the backend.
type Open struct {
	ID      string
	Session *session.Session
}

func (n *Open) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not open, no session")
	}
	if n.ID == "" {
		return errors.New("can not open, no project id")
	}

	doc, err := n.Session.Open(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Document(doc)
	return nil
}
