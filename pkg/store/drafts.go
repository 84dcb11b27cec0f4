// Package store keeps the working document on disk between CLI invocations.
// The backend remains the source of truth; a draft is just the editing
// session's scratch state.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/wire"
)

const draftKey = "draft-current"

// Drafts is the local persistence contract for the working document.
type Drafts interface {
	Save(doc schedule.Document) error
	Load() (schedule.Document, bool, error)
	Clear() error
}

// Load creates a Drafts store backed by diskv using the provided config.
func Load(cfg Config) (Drafts, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &drafts{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type drafts struct {
	d *diskv.Diskv
}

func (s *drafts) Save(doc schedule.Document) error {
	data, err := json.Marshal(wire.Encode(doc))
	if err != nil {
		return fmt.Errorf("store: encode draft: %w", err)
	}
	if err := s.d.Write(draftKey, data); err != nil {
		return fmt.Errorf("store: write draft: %w", err)
	}
	return nil
}

func (s *drafts) Load() (schedule.Document, bool, error) {
	if !s.d.Has(draftKey) {
		return schedule.Document{}, false, nil
	}
	data, err := s.d.Read(draftKey)
	if err != nil {
		return schedule.Document{}, false, fmt.Errorf("store: read draft: %w", err)
	}
	var w wire.Document
	if err := json.Unmarshal(data, &w); err != nil {
		return schedule.Document{}, false, fmt.Errorf("store: decode draft: %w", err)
	}
	return wire.Decode(w), true, nil
}

func (s *drafts) Clear() error {
	if !s.d.Has(draftKey) {
		return nil
	}
	return s.d.Erase(draftKey)
}
