package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/callsheet/callsheet/pkg/ident"
	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/store"
	"github.com/callsheet/callsheet/pkg/wire"
)

type fakeBackend struct {
	mu      sync.Mutex
	saves   int
	entered chan struct{}
	release chan struct{}
	fail    error
	stored  map[string]schedule.Document
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{stored: map[string]schedule.Document{}}
}

func (f *fakeBackend) Save(_ context.Context, doc schedule.Document) (schedule.Document, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.fail != nil {
		return schedule.Document{}, f.fail
	}
	if doc.ID == "" {
		doc.ID = ident.New()
	}
	f.stored[doc.ID] = doc
	return doc, nil
}

func (f *fakeBackend) Get(_ context.Context, id string) (schedule.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.stored[id]
	if !ok {
		return schedule.Document{}, errors.New("not found")
	}
	return doc, nil
}

func TestEditReorderPersistCycle(t *testing.T) {
	s := New(newFakeBackend())

	doc := s.Document()
	require.Len(t, doc.Days, 1)
	day := doc.Days[0]

	s.AddRow(day.ID, schedule.RowText)
	s.AddCalltime()

	doc = s.Document()
	require.Len(t, doc.Calltimes, 1)
	ct := doc.Calltimes[0]
	require.Equal(t, 1, ct.Pos)

	s.MoveSection(ct.ID, day.ID)

	doc = s.Document()
	raw, err := json.Marshal(wire.Encode(doc))
	require.NoError(t, err)

	var w wire.Document
	require.NoError(t, json.Unmarshal(raw, &w))
	restored := wire.Decode(w)

	gotCT, ok := restored.Calltime(ct.ID)
	require.True(t, ok)
	require.Equal(t, 0, gotCT.Pos)

	gotDay, ok := restored.Day(day.ID)
	require.True(t, ok)
	require.Equal(t, 1, gotDay.Pos)
	require.Len(t, gotDay.Rows, 2)
	require.Equal(t, day.Rows[0].EntryID(), gotDay.Rows[0].EntryID())
}

func TestSaveInFlightGuard(t *testing.T) {
	backend := newFakeBackend()
	backend.entered = make(chan struct{}, 1)
	backend.release = make(chan struct{})

	s := New(backend)

	done := make(chan error, 1)
	go func() {
		_, err := s.Save(context.Background())
		done <- err
	}()
	<-backend.entered

	// Editing stays possible during the in-flight save.
	s.SetName("Night Shoot")

	_, err := s.Save(context.Background())
	require.ErrorIs(t, err, ErrSaveInFlight)

	close(backend.release)
	require.NoError(t, <-done)

	// The guard clears once the save returns.
	backend.entered = nil
	_, err = s.Save(context.Background())
	require.NoError(t, err)
}

func TestSaveAdoptsServerID(t *testing.T) {
	s := New(newFakeBackend())
	require.Empty(t, s.Document().ID)

	saved, err := s.Save(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, saved.ID, s.Document().ID)
}

func TestFailedSaveKeepsDocument(t *testing.T) {
	backend := newFakeBackend()
	backend.fail = errors.New("backend down")

	s := New(backend)
	s.SetName("Day One")

	_, err := s.Save(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSaveInFlight)

	doc := s.Document()
	require.Equal(t, "Day One", doc.Name)
	require.Empty(t, doc.ID)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := New(newFakeBackend())
	before := s.Document()

	s.AddRow("nope", schedule.RowItem)
	s.RemoveSection("nope")
	s.UpdateScheduleRow("nope", "also-nope", schedule.ScheduleItemRow{ID: "also-nope"})
	s.SetDayDate("nope", "01-01-2026")

	require.Equal(t, before, s.Document())
}

func TestSoleDaySurvivesRemoval(t *testing.T) {
	s := New(newFakeBackend())
	day := s.Document().Days[0]

	require.False(t, s.CanRemoveSection(day.ID))
	s.RemoveSection(day.ID)
	require.Len(t, s.Document().Days, 1)
}

func TestSetColumnAdjustsLayout(t *testing.T) {
	s := New(newFakeBackend())

	spec := s.Document().Layout.Column(schedule.ColumnScene)
	spec.WidthPercent = 30
	spec.Header = "Scene / Setup"
	s.SetColumn(schedule.ColumnScene, spec)

	got := s.Document().Layout.Column(schedule.ColumnScene)
	require.Equal(t, 30, got.WidthPercent)
	require.Equal(t, "Scene / Setup", got.Header)

	// Other columns keep their defaults.
	require.Equal(t, schedule.DefaultLayout().Column(schedule.ColumnCast),
		s.Document().Layout.Column(schedule.ColumnCast))
}

func TestSetColumnSurvivesWireRoundTrip(t *testing.T) {
	s := New(newFakeBackend())

	spec := s.Document().Layout.Column(schedule.ColumnCast)
	spec.WidthPercent = 10
	s.SetColumn(schedule.ColumnCast, spec)

	restored := wire.Decode(wire.Encode(s.Document()))
	require.Equal(t, 10, restored.Layout.Column(schedule.ColumnCast).WidthPercent)
}

func TestDraftResumeAndMirror(t *testing.T) {
	cfg := testConfig{path: t.TempDir()}
	drafts, err := store.Load(cfg)
	require.NoError(t, err)

	s := New(newFakeBackend(), WithDrafts(drafts))
	s.SetName("Resumable")
	s.AddCalltime()
	want := s.Document()

	// A second session over the same store resumes the draft.
	drafts2, err := store.Load(cfg)
	require.NoError(t, err)
	s2 := New(newFakeBackend(), WithDrafts(drafts2))
	require.Equal(t, want, s2.Document())
}

type testConfig struct{ path string }

func (c testConfig) BasePath() string { return c.path }
func (c testConfig) Backend() string  { return "http://localhost:8001" }
