package wire

import (
	"github.com/callsheet/callsheet/pkg/ident"
	"github.com/callsheet/callsheet/pkg/schedule"
)

const (
	typeItem = "item"
	typeText = "text"
)

// Encode flattens a document into its persisted shape. Sections are written
// in merged position order, so both backing arrays come out sorted by
// position; this is the one place position is consumed rather than stored.
func Encode(d schedule.Document) Document {
	out := Document{
		ID:              d.ID,
		Name:            d.Name,
		Notes:           d.Notes,
		LogoURL:         d.LogoURL,
		ColumnWidths:    encodeWidths(d.Layout),
		ColumnHeaders:   encodeHeaders(d.Layout),
		CalltimeHeaders: encodeCalltimeHeaders(d),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Archived:        d.Archived,
	}

	for _, s := range d.Sections() {
		pos := s.SectionPosition()
		switch s := s.(type) {
		case schedule.DaySection:
			out.Days = append(out.Days, encodeDay(s, pos))
		case schedule.CalltimeSection:
			out.Calltimes = append(out.Calltimes, encodeCalltime(s, pos))
		}
	}
	return out
}

func encodeDay(s schedule.DaySection, pos int) Day {
	day := Day{ID: s.ID, Date: s.Date, Position: &pos}
	for _, r := range s.Rows {
		switch r := r.(type) {
		case schedule.ScheduleItemRow:
			day.Rows = append(day.Rows, Row{
				ID:       r.ID,
				Type:     typeItem,
				TimeFrom: r.TimeFrom,
				TimeTo:   r.TimeTo,
				Scene:    r.Scene,
				Location: r.Location,
				Cast:     r.Cast,
				Notes:    r.Notes,
			})
		case schedule.ScheduleTextRow:
			day.Rows = append(day.Rows, Row{ID: r.ID, Type: typeText, Notes: r.Notes})
		}
	}
	return day
}

func encodeCalltime(s schedule.CalltimeSection, pos int) Calltime {
	headers := CalltimeHeaders{Time: s.Headers.Time, Name: s.Headers.Name}
	ct := Calltime{ID: s.ID, Title: s.Title, Headers: &headers, Position: &pos}
	for _, r := range s.Rows {
		switch r := r.(type) {
		case schedule.CalltimeItemRow:
			ct.Rows = append(ct.Rows, CalltimeRow{ID: r.ID, Type: typeItem, Time: r.Time, Name: r.Name})
		case schedule.CalltimeTextRow:
			ct.Rows = append(ct.Rows, CalltimeRow{ID: r.ID, Type: typeText, Name: r.Name})
		}
	}
	return ct
}

func encodeWidths(l schedule.ColumnLayout) *ColumnWidths {
	return &ColumnWidths{
		TimeFrom: l.Column(schedule.ColumnTimeFrom).WidthPercent,
		TimeTo:   l.Column(schedule.ColumnTimeTo).WidthPercent,
		Scene:    l.Column(schedule.ColumnScene).WidthPercent,
		Location: l.Column(schedule.ColumnLocation).WidthPercent,
		Cast:     l.Column(schedule.ColumnCast).WidthPercent,
		Notes:    l.Column(schedule.ColumnNotes).WidthPercent,
	}
}

func encodeHeaders(l schedule.ColumnLayout) *ColumnHeaders {
	return &ColumnHeaders{
		TimeFrom: l.Column(schedule.ColumnTimeFrom).Header,
		TimeTo:   l.Column(schedule.ColumnTimeTo).Header,
		Scene:    l.Column(schedule.ColumnScene).Header,
		Location: l.Column(schedule.ColumnLocation).Header,
		Cast:     l.Column(schedule.ColumnCast).Header,
		Notes:    l.Column(schedule.ColumnNotes).Header,
	}
}

// encodeCalltimeHeaders fills the project-level compat field older readers
// still expect. The first roster's labels win; defaults otherwise.
func encodeCalltimeHeaders(d schedule.Document) *CalltimeHeaders {
	h := schedule.DefaultCalltimeHeaders()
	if len(d.Calltimes) > 0 {
		h = d.Calltimes[0].Headers
	}
	return &CalltimeHeaders{Time: h.Time, Name: h.Name}
}

// Decode rebuilds the in-memory document. Legacy shapes degrade gracefully:
// missing layouts fall back to defaults, missing positions are assigned by
// array order (days first, then calltimes) as a one-time migration, legacy
// single-column times land in TimeFrom, and rows without ids get fresh ones.
func Decode(w Document) schedule.Document {
	d := schedule.Document{
		ID:        w.ID,
		Name:      w.Name,
		Notes:     w.Notes,
		LogoURL:   w.LogoURL,
		Layout:    decodeLayout(w.ColumnWidths, w.ColumnHeaders),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Archived:  w.Archived,
	}

	migrate := missingAllPositions(w)
	next := 0

	for _, day := range w.Days {
		s := schedule.DaySection{ID: idOrNew(day.ID), Date: day.Date}
		switch {
		case migrate:
			s.Pos = next
			next++
		case day.Position != nil:
			s.Pos = *day.Position
		}
		for _, r := range day.Rows {
			s.Rows = append(s.Rows, decodeRow(r))
		}
		d.Days = append(d.Days, s)
	}

	for _, ct := range w.Calltimes {
		s := schedule.CalltimeSection{
			ID:      idOrNew(ct.ID),
			Title:   ct.Title,
			Headers: decodeCalltimeHeaders(ct.Headers, w.CalltimeHeaders),
		}
		switch {
		case migrate:
			s.Pos = next
			next++
		case ct.Position != nil:
			s.Pos = *ct.Position
		}
		for _, r := range ct.Rows {
			s.Rows = append(s.Rows, decodeCalltimeRow(r))
		}
		d.Calltimes = append(d.Calltimes, s)
	}

	return d
}

// missingAllPositions reports whether no section carries a position, the
// shape of documents that predate the field. Those get dense day-first
// positions assigned. A document where only some sections lack positions is
// not wholesale-renumbered: present positions are kept and absent ones
// default to zero, where the stable day-first merge sorts them.
func missingAllPositions(w Document) bool {
	for _, day := range w.Days {
		if day.Position != nil {
			return false
		}
	}
	for _, ct := range w.Calltimes {
		if ct.Position != nil {
			return false
		}
	}
	return len(w.Days)+len(w.Calltimes) > 0
}

func decodeRow(r Row) schedule.ScheduleRow {
	if r.Type == typeText {
		return schedule.ScheduleTextRow{ID: idOrNew(r.ID), Notes: r.Notes}
	}
	from := r.TimeFrom
	if from == "" {
		from = r.Time
	}
	return schedule.ScheduleItemRow{
		ID:       idOrNew(r.ID),
		TimeFrom: from,
		TimeTo:   r.TimeTo,
		Scene:    r.Scene,
		Location: r.Location,
		Cast:     r.Cast,
		Notes:    r.Notes,
	}
}

func decodeCalltimeRow(r CalltimeRow) schedule.CalltimeRow {
	if r.Type == typeText {
		return schedule.CalltimeTextRow{ID: idOrNew(r.ID), Name: r.Name}
	}
	return schedule.CalltimeItemRow{ID: idOrNew(r.ID), Time: r.Time, Name: r.Name}
}

func decodeLayout(widths *ColumnWidths, headers *ColumnHeaders) schedule.ColumnLayout {
	l := schedule.DefaultLayout()
	if widths != nil {
		set := func(role schedule.ColumnRole, w int) {
			spec := l.Columns[role]
			spec.WidthPercent = w
			l.Columns[role] = spec
		}
		set(schedule.ColumnTimeFrom, widths.TimeFrom)
		set(schedule.ColumnTimeTo, widths.TimeTo)
		set(schedule.ColumnScene, widths.Scene)
		set(schedule.ColumnLocation, widths.Location)
		set(schedule.ColumnCast, widths.Cast)
		set(schedule.ColumnNotes, widths.Notes)
	}
	if headers != nil {
		set := func(role schedule.ColumnRole, h string) {
			spec := l.Columns[role]
			spec.Header = h
			l.Columns[role] = spec
		}
		set(schedule.ColumnTimeFrom, headers.TimeFrom)
		set(schedule.ColumnTimeTo, headers.TimeTo)
		set(schedule.ColumnScene, headers.Scene)
		set(schedule.ColumnLocation, headers.Location)
		set(schedule.ColumnCast, headers.Cast)
		set(schedule.ColumnNotes, headers.Notes)
	}
	return l
}

func decodeCalltimeHeaders(own, project *CalltimeHeaders) schedule.CalltimeHeaders {
	if own != nil {
		return schedule.CalltimeHeaders{Time: own.Time, Name: own.Name}
	}
	if project != nil {
		return schedule.CalltimeHeaders{Time: project.Time, Name: project.Name}
	}
	return schedule.DefaultCalltimeHeaders()
}

func idOrNew(id string) string {
	if id == "" {
		return ident.New()
	}
	return id
}
