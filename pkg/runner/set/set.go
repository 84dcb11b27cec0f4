package set

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/callsheet/callsheet/pkg/printers"
	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/session"
)

// Set writes scalar fields on the working draft: the project name or
// notes, a day's date, a roster's title, or one column of the day-table
// layout.
type Set struct {
	Name    string
	Notes   string
	Section string
	Date    string
	Title   string
	Column  string
	Width   int
	Header  string

	Session *session.Session
}

func (n *Set) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not set, no session")
	}

	touched := false
	if n.Name != "" {
		n.Session.SetName(n.Name)
		touched = true
	}
	if n.Notes != "" {
		n.Session.SetNotes(n.Notes)
		touched = true
	}
	if n.Section != "" && n.Date != "" {
		n.Session.SetDayDate(n.Section, n.Date)
		touched = true
	}
	if n.Section != "" && n.Title != "" {
		n.Session.SetCalltimeTitle(n.Section, n.Title)
		touched = true
	}
	if n.Column != "" {
		if err := n.setColumn(); err != nil {
			return err
		}
		touched = true
	}
	if !touched {
		return errors.New("can not set, nothing given")
	}

	pp := printers.PrettyPrint{}
	pp.Document(n.Session.Document())
	return nil
}

func (n *Set) setColumn() error {
	role, err := columnRole(n.Column)
	if err != nil {
		return err
	}
	if n.Width == 0 && n.Header == "" {
		return errors.New("can not set column, need --width or --header")
	}

	spec := n.Session.Document().Layout.Column(role)
	if n.Width != 0 {
		spec.WidthPercent = n.Width
	}
	if n.Header != "" {
		spec.Header = n.Header
	}
	n.Session.SetColumn(role, spec)
	return nil
}

func columnRole(name string) (schedule.ColumnRole, error) {
	for _, role := range schedule.Roles() {
		if string(role) == name {
			return role, nil
		}
	}
	known := make([]string, 0, len(schedule.Roles()))
	for _, role := range schedule.Roles() {
		known = append(known, string(role))
	}
	return "", fmt.Errorf("unknown column %q, one of: %s", name, strings.Join(known, ", "))
}
