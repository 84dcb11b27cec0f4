package schedule

import (
	"sort"
	"time"

	"github.com/callsheet/callsheet/pkg/ordering"
)

const dateLayout = "02-01-2006"

// Today returns the current date in the DD-MM-YYYY form the schedule uses.
func Today() string {
	return time.Now().Format(dateLayout)
}

// Document is the aggregate unit of editing and persistence. Day and
// calltime sections live in separate backing lists; position values are the
// single source of display order across both.
//
// An empty ID means the document has never been saved; the backend assigns
// one on creation. CreatedAt, UpdatedAt and Archived are owned by the
// backend and only round-tripped here.
type Document struct {
	ID        string
	Name      string
	Notes     string
	LogoURL   string
	Layout    ColumnLayout
	Days      []DaySection
	Calltimes []CalltimeSection
	CreatedAt string
	UpdatedAt string
	Archived  bool
}

// New returns the document an editing session starts with: one day dated
// today holding one blank item row.
func New() Document {
	return Document{
		Name:   "Untitled Project",
		Layout: DefaultLayout(),
		Days:   []DaySection{NewDaySection(Today())},
	}
}

// Sections returns the merged ordered view of all sections, sorted by
// position. The sort is stable over day-first backing order, which is the
// fallback ordering for legacy documents whose sections never got positions.
func (d Document) Sections() []Section {
	merged := make([]Section, 0, len(d.Days)+len(d.Calltimes))
	for _, day := range d.Days {
		merged = append(merged, day)
	}
	for _, ct := range d.Calltimes {
		merged = append(merged, ct)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SectionPosition() < merged[j].SectionPosition()
	})
	return merged
}

// Section returns the section with the given id from either backing list.
func (d Document) Section(id string) (Section, bool) {
	for _, day := range d.Days {
		if day.ID == id {
			return day, true
		}
	}
	for _, ct := range d.Calltimes {
		if ct.ID == id {
			return ct, true
		}
	}
	return nil, false
}

// Day returns the day section with the given id.
func (d Document) Day(id string) (DaySection, bool) {
	for _, day := range d.Days {
		if day.ID == id {
			return day, true
		}
	}
	return DaySection{}, false
}

// Calltime returns the calltime section with the given id.
func (d Document) Calltime(id string) (CalltimeSection, bool) {
	for _, ct := range d.Calltimes {
		if ct.ID == id {
			return ct, true
		}
	}
	return CalltimeSection{}, false
}

// AddDay appends a new day section at the end of the document.
func (d Document) AddDay(date string) Document {
	day := NewDaySection(date)
	day.Pos = len(d.Days) + len(d.Calltimes)
	days := make([]DaySection, 0, len(d.Days)+1)
	days = append(days, d.Days...)
	d.Days = append(days, day)
	return d.renumbered()
}

// AddCalltime appends a new calltime roster at the end of the document.
func (d Document) AddCalltime() Document {
	ct := NewCalltimeSection()
	ct.Pos = len(d.Days) + len(d.Calltimes)
	calltimes := make([]CalltimeSection, 0, len(d.Calltimes)+1)
	calltimes = append(calltimes, d.Calltimes...)
	d.Calltimes = append(calltimes, ct)
	return d.renumbered()
}

// CanRemoveSection reports whether the section with the given id may be
// removed. The last day section must stay; rosters have no such floor.
func (d Document) CanRemoveSection(id string) bool {
	if _, ok := d.Day(id); ok {
		return len(d.Days) > 1
	}
	_, ok := d.Calltime(id)
	return ok
}

// RemoveSection drops the section with the given id and closes the position
// gap. Removing the sole day section leaves the document unchanged.
func (d Document) RemoveSection(id string) Document {
	if !d.CanRemoveSection(id) {
		return d
	}
	if days, ok := removeByID(d.Days, id); ok {
		d.Days = days
		return d.renumbered()
	}
	if calltimes, ok := removeByID(d.Calltimes, id); ok {
		d.Calltimes = calltimes
		return d.renumbered()
	}
	return d
}

// UpdateDay replaces the day with the given id by full value, keeping the
// position it already holds so an edit can never reorder the document. An
// absent id is a no-op.
func (d Document) UpdateDay(id string, day DaySection) Document {
	if existing, ok := d.Day(id); ok {
		day.Pos = existing.Pos
		d.Days = replaceByID(d.Days, id, day)
	}
	return d
}

// UpdateCalltime replaces the roster with the given id by full value,
// keeping its position. An absent id is a no-op.
func (d Document) UpdateCalltime(id string, ct CalltimeSection) Document {
	if existing, ok := d.Calltime(id); ok {
		ct.Pos = existing.Pos
		d.Calltimes = replaceByID(d.Calltimes, id, ct)
	}
	return d
}

// MoveSection relocates the section with movedID to the slot held by
// targetID in the merged view, renumbers every section densely, and splits
// the result back into the per-kind backing lists. Rows travel with their
// section untouched.
func (d Document) MoveSection(movedID, targetID string) Document {
	reordered, changed := ordering.Reorder(d.Sections(), movedID, targetID)
	if !changed {
		return d
	}
	return d.withSections(reordered)
}

// UpdateLayout replaces the column layout wholesale.
func (d Document) UpdateLayout(layout ColumnLayout) Document {
	d.Layout = layout
	return d
}

// renumbered reassigns dense positions across the merged section view.
func (d Document) renumbered() Document {
	return d.withSections(ordering.Renumber(d.Sections()))
}

func (d Document) withSections(sections []Section) Document {
	days := make([]DaySection, 0, len(d.Days))
	calltimes := make([]CalltimeSection, 0, len(d.Calltimes))
	for _, s := range sections {
		switch s := s.(type) {
		case DaySection:
			days = append(days, s)
		case CalltimeSection:
			calltimes = append(calltimes, s)
		}
	}
	d.Days = days
	d.Calltimes = calltimes
	return d
}
