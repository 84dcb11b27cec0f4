// Package wire defines the flat persisted shape of a document and the
// translation to and from the in-memory model.
package wire

// Document is the backend's project shape. Pointer fields distinguish
// "absent" from "zero" so documents written before a field existed can be
// migrated on read.
type Document struct {
	ID              string           `json:"id,omitempty"`
	Name            string           `json:"name"`
	Notes           string           `json:"notes"`
	LogoURL         string           `json:"logo_url"`
	ColumnWidths    *ColumnWidths    `json:"column_widths,omitempty"`
	ColumnHeaders   *ColumnHeaders   `json:"column_headers,omitempty"`
	CalltimeHeaders *CalltimeHeaders `json:"calltime_headers,omitempty"`
	Days            []Day            `json:"days"`
	Calltimes       []Calltime       `json:"calltimes,omitempty"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	Archived        bool             `json:"archived"`
}

// ColumnWidths holds the day-table column widths in percent.
type ColumnWidths struct {
	TimeFrom int `json:"time_from"`
	TimeTo   int `json:"time_to"`
	Scene    int `json:"scene"`
	Location int `json:"location"`
	Cast     int `json:"cast"`
	Notes    int `json:"notes"`
}

// ColumnHeaders holds the day-table header labels.
type ColumnHeaders struct {
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
	Scene    string `json:"scene"`
	Location string `json:"location"`
	Cast     string `json:"cast"`
	Notes    string `json:"notes"`
}

// CalltimeHeaders holds roster header labels.
type CalltimeHeaders struct {
	Time string `json:"time"`
	Name string `json:"name"`
}

// Day is one day section. Position is a pointer: documents created before
// cross-kind ordering existed have none.
type Day struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Rows     []Row  `json:"rows"`
	Position *int   `json:"position,omitempty"`
}

// Row is one day-table row. Time is the legacy single-column field written
// before the from/to split.
type Row struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	TimeFrom string `json:"time_from,omitempty"`
	TimeTo   string `json:"time_to,omitempty"`
	Time     string `json:"time,omitempty"`
	Scene    string `json:"scene,omitempty"`
	Location string `json:"location,omitempty"`
	Cast     string `json:"cast,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Calltime is one roster section.
type Calltime struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Headers  *CalltimeHeaders `json:"headers,omitempty"`
	Rows     []CalltimeRow    `json:"rows"`
	Position *int             `json:"position,omitempty"`
}

// CalltimeRow is one roster row.
type CalltimeRow struct {
	ID   string `json:"id"`
	Time string `json:"time,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}
