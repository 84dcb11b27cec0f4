package add

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/session"
)

// Add grows the working draft: a new day, a new calltime roster, or a row
// inside an existing section.
type Add struct {
	Day      bool
	Calltime bool
	Date     string
	Section  string
	Text     bool

	Session *session.Session
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not add, no session")
	}

	switch {
	case n.Day:
		n.Session.AddDay(n.Date)
	case n.Calltime:
		n.Session.AddCalltime()
	case n.Section != "":
		kind := schedule.RowItem
		if n.Text {
			kind = schedule.RowText
		}
		n.Session.AddRow(n.Section, kind)
	default:
		return errors.New("can not add, nothing selected: use --day, --calltime, or --section")
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Document(n.Session.Document())
	return nil
}
