package drop

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/session"
)

// Drop removes a section from the working draft, or a row when Row is set.
// The last day and the last row of any table stay put.
type Drop struct {
	Section string
	Row     string

	Session *session.Session
}

func (n *Drop) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not drop, no session")
	}
	if n.Section == "" {
		return errors.New("can not drop, no section id")
	}

	if n.Row != "" {
		n.Session.RemoveRow(n.Section, n.Row)
	} else {
		if !n.Session.CanRemoveSection(n.Section) {
			return errors.New("a schedule keeps at least one day")
		}
		n.Session.RemoveSection(n.Section)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Document(n.Session.Document())
	return nil
}
