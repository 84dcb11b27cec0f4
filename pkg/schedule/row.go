package schedule

import (
	"github.com/callsheet/callsheet/pkg/ident"
	"github.com/callsheet/callsheet/pkg/ordering"
)

// RowKind distinguishes structured item rows from free-text rows.
type RowKind string

const (
	RowItem RowKind = "item"
	RowText RowKind = "text"
)

// ScheduleRow is one entry of a day section's table. The set of kinds is
// closed: ScheduleItemRow and ScheduleTextRow.
type ScheduleRow interface {
	EntryID() string
	isScheduleRow()
}

// ScheduleItemRow is a structured schedule entry.
type ScheduleItemRow struct {
	ID       string
	TimeFrom string
	TimeTo   string
	Scene    string
	Location string
	Cast     string
	Notes    string
}

func (r ScheduleItemRow) EntryID() string { return r.ID }
func (ScheduleItemRow) isScheduleRow()    {}

// ScheduleTextRow spans the full table width as a single annotation.
type ScheduleTextRow struct {
	ID    string
	Notes string
}

func (r ScheduleTextRow) EntryID() string { return r.ID }
func (ScheduleTextRow) isScheduleRow()    {}

// NewScheduleRow returns a blank row of the given kind with a fresh id.
// Unknown kinds fall back to item rows.
func NewScheduleRow(kind RowKind) ScheduleRow {
	if kind == RowText {
		return ScheduleTextRow{ID: ident.New()}
	}
	return ScheduleItemRow{ID: ident.New()}
}

// CalltimeRow is one entry of a calltime roster. The set of kinds is closed:
// CalltimeItemRow and CalltimeTextRow.
type CalltimeRow interface {
	EntryID() string
	isCalltimeRow()
}

// CalltimeItemRow is a time/name pair.
type CalltimeItemRow struct {
	ID   string
	Time string
	Name string
}

func (r CalltimeItemRow) EntryID() string { return r.ID }
func (CalltimeItemRow) isCalltimeRow()    {}

// CalltimeTextRow is a free-text roster annotation.
type CalltimeTextRow struct {
	ID   string
	Name string
}

func (r CalltimeTextRow) EntryID() string { return r.ID }
func (CalltimeTextRow) isCalltimeRow()    {}

// NewCalltimeRow returns a blank roster row of the given kind with a fresh
// id. Unknown kinds fall back to item rows.
func NewCalltimeRow(kind RowKind) CalltimeRow {
	if kind == RowText {
		return CalltimeTextRow{ID: ident.New()}
	}
	return CalltimeItemRow{ID: ident.New()}
}

// removeByID returns list without the entry carrying id. The second return
// reports whether anything was removed.
func removeByID[T ordering.Entry](list []T, id string) ([]T, bool) {
	for i, e := range list {
		if e.EntryID() == id {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
	}
	return list, false
}

// replaceByID swaps the entry carrying id for v. An absent id leaves the
// list untouched: update events always derive their ids from the live list,
// so a miss only means the list changed underneath a stale event.
func replaceByID[T ordering.Entry](list []T, id string, v T) []T {
	for i, e := range list {
		if e.EntryID() == id {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = v
			return out
		}
	}
	return list
}
