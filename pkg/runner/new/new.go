package new

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/session"
)

// New discards the working draft for a fresh default document: one day
// dated today with a single empty row.
type New struct {
	Name    string
	Session *session.Session
}

func (n *New) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not create, no session")
	}

	n.Session.Reset()
	if n.Name != "" {
		n.Session.SetName(n.Name)
	}

	pp := printers.PrettyPrint{}
	pp.Document(n.Session.Document())
	return nil
}
