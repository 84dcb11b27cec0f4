// Package move provides the runner logic for reordering the working draft.
package move

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/session"
)

// Move relocates a section to another section's slot, or a row within its
// section when Section names the parent. Unknown ids leave the draft as it
// was.
type Move struct {
	Section string
	Moved   string
	Target  string

	Session *session.Session
}

func (n *Move) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not move, no session")
	}
	if n.Moved == "" || n.Target == "" {
		return errors.New("can not move, need both ids")
	}

	if n.Section != "" {
		n.Session.MoveRow(n.Section, n.Moved, n.Target)
	} else {
		n.Session.MoveSection(n.Moved, n.Target)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Document(n.Session.Document())
	return nil
}
