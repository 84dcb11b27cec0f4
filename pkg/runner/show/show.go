package show

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/session"
)

// Show renders the working draft.
type Show struct {
	ShowID  bool
	Session *session.Session
}

func (n *Show) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show, no session")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Document(n.Session.Document())
	return nil
}
