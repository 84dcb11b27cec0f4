package schedule

import (
	"github.com/callsheet/callsheet/pkg/ident"
	"github.com/callsheet/callsheet/pkg/ordering"
)

// Section is a top-level, independently orderable block of the document.
// The set of kinds is closed: DaySection and CalltimeSection. Display order
// is governed solely by the position value, never by backing-list index.
type Section interface {
	EntryID() string
	SectionPosition() int
	AtPosition(pos int) Section
	isSection()
}

// CalltimeHeaders holds the editable column labels of a roster.
type CalltimeHeaders struct {
	Time string
	Name string
}

// DefaultCalltimeHeaders returns the labels a fresh roster starts with.
func DefaultCalltimeHeaders() CalltimeHeaders {
	return CalltimeHeaders{Time: "Time", Name: "Name"}
}

// DaySection is one shooting day's schedule table.
type DaySection struct {
	ID   string
	Pos  int
	Date string
	Rows []ScheduleRow
}

// NewDaySection returns a day for the given date with one blank item row.
func NewDaySection(date string) DaySection {
	return DaySection{
		ID:   ident.New(),
		Date: date,
		Rows: []ScheduleRow{NewScheduleRow(RowItem)},
	}
}

func (s DaySection) EntryID() string      { return s.ID }
func (s DaySection) SectionPosition() int { return s.Pos }
func (DaySection) isSection()             {}

func (s DaySection) AtPosition(pos int) Section {
	s.Pos = pos
	return s
}

// AddRow appends a blank row of the given kind.
func (s DaySection) AddRow(kind RowKind) DaySection {
	rows := make([]ScheduleRow, 0, len(s.Rows)+1)
	rows = append(rows, s.Rows...)
	s.Rows = append(rows, NewScheduleRow(kind))
	return s
}

// CanRemoveRow reports whether the section can lose a row without ending up
// as an empty table.
func (s DaySection) CanRemoveRow() bool { return len(s.Rows) > 1 }

// RemoveRow drops the row with the given id. Removing the last remaining
// row leaves the section unchanged.
func (s DaySection) RemoveRow(id string) DaySection {
	if !s.CanRemoveRow() {
		return s
	}
	if rows, ok := removeByID(s.Rows, id); ok {
		s.Rows = rows
	}
	return s
}

// UpdateRow replaces the row with the given id by full value. An absent id
// is a no-op.
func (s DaySection) UpdateRow(id string, row ScheduleRow) DaySection {
	s.Rows = replaceByID(s.Rows, id, row)
	return s
}

// MoveRow relocates the row with movedID to the slot held by targetID. Row
// kind never matters: a text row moves exactly like an item row. Rows carry
// no position values, so list order is the order and the whole list is
// replaced in one assignment.
func (s DaySection) MoveRow(movedID, targetID string) DaySection {
	if rows, changed := ordering.Move(s.Rows, movedID, targetID); changed {
		s.Rows = rows
	}
	return s
}

// CalltimeSection is a crew calltime roster.
type CalltimeSection struct {
	ID      string
	Pos     int
	Title   string
	Headers CalltimeHeaders
	Rows    []CalltimeRow
}

// NewCalltimeSection returns a roster with the default title and one blank
// item row.
func NewCalltimeSection() CalltimeSection {
	return CalltimeSection{
		ID:      ident.New(),
		Title:   "Calltime",
		Headers: DefaultCalltimeHeaders(),
		Rows:    []CalltimeRow{NewCalltimeRow(RowItem)},
	}
}

func (s CalltimeSection) EntryID() string      { return s.ID }
func (s CalltimeSection) SectionPosition() int { return s.Pos }
func (CalltimeSection) isSection()             {}

func (s CalltimeSection) AtPosition(pos int) Section {
	s.Pos = pos
	return s
}

// AddRow appends a blank roster row of the given kind.
func (s CalltimeSection) AddRow(kind RowKind) CalltimeSection {
	rows := make([]CalltimeRow, 0, len(s.Rows)+1)
	rows = append(rows, s.Rows...)
	s.Rows = append(rows, NewCalltimeRow(kind))
	return s
}

// CanRemoveRow reports whether the roster can lose a row.
func (s CalltimeSection) CanRemoveRow() bool { return len(s.Rows) > 1 }

// RemoveRow drops the row with the given id, refusing to empty the roster.
func (s CalltimeSection) RemoveRow(id string) CalltimeSection {
	if !s.CanRemoveRow() {
		return s
	}
	if rows, ok := removeByID(s.Rows, id); ok {
		s.Rows = rows
	}
	return s
}

// UpdateRow replaces the row with the given id by full value. An absent id
// is a no-op.
func (s CalltimeSection) UpdateRow(id string, row CalltimeRow) CalltimeSection {
	s.Rows = replaceByID(s.Rows, id, row)
	return s
}

// MoveRow relocates the row with movedID to the slot held by targetID.
func (s CalltimeSection) MoveRow(movedID, targetID string) CalltimeSection {
	if rows, changed := ordering.Move(s.Rows, movedID, targetID); changed {
		s.Rows = rows
	}
	return s
}
