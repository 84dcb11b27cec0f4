// Package session owns the live document of one editing session. Every
// mutation funnels through here so the ordering invariants hold before any
// observer sees the result, and so the draft store always mirrors the
// latest state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/store"
)

// ErrSaveInFlight is returned when a save starts while another has not come
// back. Editing stays possible during a save; a second save does not.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Backend is the slice of the persistence adapter the session needs.
type Backend interface {
	Save(ctx context.Context, doc schedule.Document) (schedule.Document, error)
	Get(ctx context.Context, id string) (schedule.Document, error)
}

// Session holds the working document. All methods are safe for concurrent
// use; mutations are atomic from any observer's point of view.
type Session struct {
	mu      sync.Mutex
	doc     schedule.Document
	saving  bool
	backend Backend
	drafts  store.Drafts
	log     zerolog.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithDrafts attaches a local draft store; the session resumes from an
// existing draft and mirrors every mutation into it.
func WithDrafts(d store.Drafts) Option {
	return func(s *Session) { s.drafts = d }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New starts a session on a fresh default document, or on the stored draft
// when one exists.
func New(backend Backend, opts ...Option) *Session {
	s := &Session{
		doc:     schedule.New(),
		backend: backend,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.drafts != nil {
		if doc, ok, err := s.drafts.Load(); err != nil {
			s.log.Warn().Err(err).Msg("draft load failed, starting fresh")
		} else if ok {
			s.doc = doc
		}
	}
	return s
}

// Document returns a snapshot of the working document.
func (s *Session) Document() schedule.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Reset discards the working document for a fresh default one.
func (s *Session) Reset() {
	s.replace(schedule.New())
}

// Open loads the project with the given id from the backend and makes it
// the working document. A failed load leaves the session untouched.
func (s *Session) Open(ctx context.Context, id string) (schedule.Document, error) {
	doc, err := s.backend.Get(ctx, id)
	if err != nil {
		return schedule.Document{}, fmt.Errorf("open project: %w", err)
	}
	s.replace(doc)
	return doc, nil
}

// Save persists the working document. A document without an id is created
// and adopts the server-assigned one; a document with an id is replaced
// wholesale. Only a successful response replaces the in-memory document.
func (s *Session) Save(ctx context.Context) (schedule.Document, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return schedule.Document{}, ErrSaveInFlight
	}
	s.saving = true
	snapshot := s.doc
	s.mu.Unlock()

	saved, err := s.backend.Save(ctx, snapshot)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.doc = saved
		s.autosave()
	}
	s.mu.Unlock()

	if err != nil {
		return schedule.Document{}, fmt.Errorf("save project: %w", err)
	}
	return saved, nil
}

// SetName renames the document.
func (s *Session) SetName(name string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		d.Name = name
		return d
	})
}

// SetNotes replaces the document notes.
func (s *Session) SetNotes(notes string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		d.Notes = notes
		return d
	})
}

// SetLogoURL records the uploaded logo location.
func (s *Session) SetLogoURL(url string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		d.LogoURL = url
		return d
	})
}

// SetLayout replaces the column layout wholesale.
func (s *Session) SetLayout(layout schedule.ColumnLayout) {
	s.mutate(func(d schedule.Document) schedule.Document {
		return d.UpdateLayout(layout)
	})
}

// SetColumn adjusts one column of the day-table layout.
func (s *Session) SetColumn(role schedule.ColumnRole, spec schedule.ColumnSpec) {
	s.mutate(func(d schedule.Document) schedule.Document {
		return d.UpdateLayout(d.Layout.WithColumn(role, spec))
	})
}

// AddDay appends a day section dated date, or today when empty.
func (s *Session) AddDay(date string) {
	if date == "" {
		date = schedule.Today()
	}
	s.mutate(func(d schedule.Document) schedule.Document {
		return d.AddDay(date)
	})
}

// AddCalltime appends a calltime roster.
func (s *Session) AddCalltime() {
	s.mutate(schedule.Document.AddCalltime)
}

// CanRemoveSection reports whether the section may be removed.
func (s *Session) CanRemoveSection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.CanRemoveSection(id)
}

// RemoveSection drops the section with the given id; the sole day section
// stays put.
func (s *Session) RemoveSection(id string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		return d.RemoveSection(id)
	})
}

// MoveSection relocates a section to the slot of another, renumbering all
// positions densely.
func (s *Session) MoveSection(movedID, targetID string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		return d.MoveSection(movedID, targetID)
	})
}

// SetDayDate changes the date of a day section.
func (s *Session) SetDayDate(dayID, date string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		day, ok := d.Day(dayID)
		if !ok {
			s.missed("day", dayID)
			return d
		}
		day.Date = date
		return d.UpdateDay(dayID, day)
	})
}

// SetCalltimeTitle changes the title of a roster.
func (s *Session) SetCalltimeTitle(calltimeID, title string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		ct, ok := d.Calltime(calltimeID)
		if !ok {
			s.missed("calltime", calltimeID)
			return d
		}
		ct.Title = title
		return d.UpdateCalltime(calltimeID, ct)
	})
}

// AddRow appends a blank row of the given kind to the section with the
// given id, whichever kind of section it is.
func (s *Session) AddRow(sectionID string, kind schedule.RowKind) {
	s.mutate(func(d schedule.Document) schedule.Document {
		if day, ok := d.Day(sectionID); ok {
			return d.UpdateDay(sectionID, day.AddRow(kind))
		}
		if ct, ok := d.Calltime(sectionID); ok {
			return d.UpdateCalltime(sectionID, ct.AddRow(kind))
		}
		s.missed("section", sectionID)
		return d
	})
}

// RemoveRow drops a row from its section, refusing to empty the table.
func (s *Session) RemoveRow(sectionID, rowID string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		if day, ok := d.Day(sectionID); ok {
			return d.UpdateDay(sectionID, day.RemoveRow(rowID))
		}
		if ct, ok := d.Calltime(sectionID); ok {
			return d.UpdateCalltime(sectionID, ct.RemoveRow(rowID))
		}
		s.missed("section", sectionID)
		return d
	})
}

// MoveRow relocates a row within its section.
func (s *Session) MoveRow(sectionID, movedID, targetID string) {
	s.mutate(func(d schedule.Document) schedule.Document {
		if day, ok := d.Day(sectionID); ok {
			return d.UpdateDay(sectionID, day.MoveRow(movedID, targetID))
		}
		if ct, ok := d.Calltime(sectionID); ok {
			return d.UpdateCalltime(sectionID, ct.MoveRow(movedID, targetID))
		}
		s.missed("section", sectionID)
		return d
	})
}

// UpdateScheduleRow replaces a day-table row by full value. Unknown ids are
// no-ops: the editing surface always derives ids from the live document.
func (s *Session) UpdateScheduleRow(dayID, rowID string, row schedule.ScheduleRow) {
	s.mutate(func(d schedule.Document) schedule.Document {
		day, ok := d.Day(dayID)
		if !ok {
			s.missed("day", dayID)
			return d
		}
		return d.UpdateDay(dayID, day.UpdateRow(rowID, row))
	})
}

// UpdateCalltimeRow replaces a roster row by full value. Unknown ids are
// no-ops.
func (s *Session) UpdateCalltimeRow(calltimeID, rowID string, row schedule.CalltimeRow) {
	s.mutate(func(d schedule.Document) schedule.Document {
		ct, ok := d.Calltime(calltimeID)
		if !ok {
			s.missed("calltime", calltimeID)
			return d
		}
		return d.UpdateCalltime(calltimeID, ct.UpdateRow(rowID, row))
	})
}

func (s *Session) mutate(fn func(schedule.Document) schedule.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = fn(s.doc)
	s.autosave()
}

func (s *Session) replace(doc schedule.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.autosave()
}

// autosave mirrors the document into the draft store. Failures are logged,
// never surfaced: a broken draft store must not block editing. Callers hold
// s.mu.
func (s *Session) autosave() {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Save(s.doc); err != nil {
		s.log.Warn().Err(err).Msg("draft autosave failed")
	}
}

func (s *Session) missed(kind, id string) {
	s.log.Debug().Str(kind, id).Msg("mutation targeted an id not in the document")
}
