package schedule

import "testing"

func TestAddRowKinds(t *testing.T) {
	day := NewDaySection("01-09-2026")
	day = day.AddRow(RowText)

	if len(day.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(day.Rows))
	}
	if _, ok := day.Rows[0].(ScheduleItemRow); !ok {
		t.Fatalf("default row should be an item row, got %T", day.Rows[0])
	}
	if _, ok := day.Rows[1].(ScheduleTextRow); !ok {
		t.Fatalf("expected a text row, got %T", day.Rows[1])
	}
	if day.Rows[0].EntryID() == day.Rows[1].EntryID() {
		t.Fatal("rows share an id")
	}
}

func TestRemoveRowFloor(t *testing.T) {
	day := NewDaySection("01-09-2026")
	if day.CanRemoveRow() {
		t.Fatal("a one-row section must not advertise removal")
	}

	only := day.Rows[0].EntryID()
	day = day.RemoveRow(only)
	if len(day.Rows) != 1 {
		t.Fatalf("removing the last row must be refused, got %d rows", len(day.Rows))
	}

	day = day.AddRow(RowItem)
	if !day.CanRemoveRow() {
		t.Fatal("a two-row section should allow removal")
	}
	day = day.RemoveRow(only)
	if len(day.Rows) != 1 {
		t.Fatalf("expected 1 row after removal, got %d", len(day.Rows))
	}
	if day.Rows[0].EntryID() == only {
		t.Fatal("wrong row removed")
	}
}

func TestUpdateRowMissingIDIsNoOp(t *testing.T) {
	day := NewDaySection("01-09-2026")
	before := day.Rows[0]

	day = day.UpdateRow("no-such-row", ScheduleItemRow{ID: "no-such-row", Scene: "1A"})
	if len(day.Rows) != 1 || day.Rows[0] != before {
		t.Fatal("update with an unknown id must leave the list unchanged")
	}
}

func TestUpdateRowReplacesFullValue(t *testing.T) {
	day := NewDaySection("01-09-2026")
	id := day.Rows[0].EntryID()

	day = day.UpdateRow(id, ScheduleItemRow{
		ID:       id,
		TimeFrom: "08:00",
		TimeTo:   "10:00",
		Scene:    "1A",
		Location: "Studio A",
	})

	row, ok := day.Rows[0].(ScheduleItemRow)
	if !ok {
		t.Fatalf("expected an item row, got %T", day.Rows[0])
	}
	if row.TimeFrom != "08:00" || row.Scene != "1A" {
		t.Fatalf("row not replaced: %+v", row)
	}
}

func TestMoveRowIsKindBlind(t *testing.T) {
	day := NewDaySection("01-09-2026")
	day = day.AddRow(RowText)
	day = day.AddRow(RowItem)

	item := day.Rows[0].EntryID()
	text := day.Rows[1].EntryID()
	last := day.Rows[2].EntryID()

	// Text row over the leading item row.
	day = day.MoveRow(text, item)
	if day.Rows[0].EntryID() != text || day.Rows[1].EntryID() != item {
		t.Fatalf("text row move mismatch: %s then %s", day.Rows[0].EntryID(), day.Rows[1].EntryID())
	}

	// Item row to the end, same index arithmetic.
	day = day.MoveRow(text, last)
	if day.Rows[2].EntryID() != text {
		t.Fatal("expected the text row at the end")
	}
}

func TestMoveRowUnknownIDIsNoOp(t *testing.T) {
	day := NewDaySection("01-09-2026")
	day = day.AddRow(RowItem)
	first := day.Rows[0].EntryID()

	day = day.MoveRow("gone", first)
	if day.Rows[0].EntryID() != first {
		t.Fatal("move with an unknown id must leave order unchanged")
	}
}

func TestCalltimeSectionDefaults(t *testing.T) {
	ct := NewCalltimeSection()
	if ct.Title != "Calltime" {
		t.Fatalf("unexpected default title %q", ct.Title)
	}
	if ct.Headers != DefaultCalltimeHeaders() {
		t.Fatalf("unexpected default headers %+v", ct.Headers)
	}
	if len(ct.Rows) != 1 {
		t.Fatalf("expected one default row, got %d", len(ct.Rows))
	}

	ct = ct.AddRow(RowText)
	ct = ct.RemoveRow(ct.Rows[0].EntryID())
	if len(ct.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(ct.Rows))
	}
	if _, ok := ct.Rows[0].(CalltimeTextRow); !ok {
		t.Fatalf("expected the text row to remain, got %T", ct.Rows[0])
	}
}
