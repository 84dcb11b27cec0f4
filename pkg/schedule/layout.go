package schedule

// ColumnRole names one column of the day-schedule table.
type ColumnRole string

const (
	ColumnTimeFrom ColumnRole = "time_from"
	ColumnTimeTo   ColumnRole = "time_to"
	ColumnScene    ColumnRole = "scene"
	ColumnLocation ColumnRole = "location"
	ColumnCast     ColumnRole = "cast"
	ColumnNotes    ColumnRole = "notes"
)

// Roles lists the day-table columns in display order.
func Roles() []ColumnRole {
	return []ColumnRole{
		ColumnTimeFrom,
		ColumnTimeTo,
		ColumnScene,
		ColumnLocation,
		ColumnCast,
		ColumnNotes,
	}
}

// ColumnSpec is the width and header label of one column. Widths are
// percentages but independent of each other; nothing renormalizes them to
// sum to 100, and clamping to a sane range is the caller's concern.
type ColumnSpec struct {
	WidthPercent int
	Header       string
}

// ColumnLayout maps every day-table column to its spec.
type ColumnLayout struct {
	Columns map[ColumnRole]ColumnSpec
}

// DefaultLayout returns the layout a fresh document starts with.
func DefaultLayout() ColumnLayout {
	return ColumnLayout{Columns: map[ColumnRole]ColumnSpec{
		ColumnTimeFrom: {WidthPercent: 8, Header: "Time From"},
		ColumnTimeTo:   {WidthPercent: 8, Header: "Time To"},
		ColumnScene:    {WidthPercent: 15, Header: "Scene"},
		ColumnLocation: {WidthPercent: 20, Header: "Location"},
		ColumnCast:     {WidthPercent: 25, Header: "Cast"},
		ColumnNotes:    {WidthPercent: 24, Header: "Notes"},
	}}
}

// WithColumn returns a copy of the layout with role's spec replaced. The
// receiver's backing map stays untouched.
func (l ColumnLayout) WithColumn(role ColumnRole, spec ColumnSpec) ColumnLayout {
	columns := make(map[ColumnRole]ColumnSpec, len(l.Columns)+1)
	for r, s := range l.Columns {
		columns[r] = s
	}
	columns[role] = spec
	return ColumnLayout{Columns: columns}
}

// Column returns the spec for role, falling back to the default layout for
// roles a legacy document never stored.
func (l ColumnLayout) Column(role ColumnRole) ColumnSpec {
	if spec, ok := l.Columns[role]; ok {
		return spec
	}
	return DefaultLayout().Columns[role]
}
