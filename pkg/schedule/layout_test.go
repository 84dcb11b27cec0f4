package schedule

import "testing"

func TestWithColumnReplacesOneSpec(t *testing.T) {
	l := DefaultLayout()
	got := l.WithColumn(ColumnScene, ColumnSpec{WidthPercent: 30, Header: "Scene / Setup"})

	if got.Column(ColumnScene).WidthPercent != 30 {
		t.Fatalf("got width %d, want 30", got.Column(ColumnScene).WidthPercent)
	}
	if got.Column(ColumnScene).Header != "Scene / Setup" {
		t.Fatalf("got header %q", got.Column(ColumnScene).Header)
	}
	if got.Column(ColumnCast) != l.Column(ColumnCast) {
		t.Fatalf("untouched column changed: %+v", got.Column(ColumnCast))
	}
}

func TestWithColumnLeavesReceiverUntouched(t *testing.T) {
	l := DefaultLayout()
	_ = l.WithColumn(ColumnNotes, ColumnSpec{WidthPercent: 5, Header: "N"})

	if l.Column(ColumnNotes) != DefaultLayout().Column(ColumnNotes) {
		t.Fatalf("receiver mutated: %+v", l.Column(ColumnNotes))
	}
}

func TestColumnFallsBackToDefaults(t *testing.T) {
	l := ColumnLayout{}
	if l.Column(ColumnTimeFrom) != DefaultLayout().Column(ColumnTimeFrom) {
		t.Fatalf("got %+v", l.Column(ColumnTimeFrom))
	}
}
