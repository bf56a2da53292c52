// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entity

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Store is a concurrency-safe note tree.
type Store struct {
	mu    sync.RWMutex
	notes models.EntityMap

	now   func() time.Time
	newID func() string
}

// Option configures a [Store].
type Option func(*Store)

// WithClock replaces time.Now. Tests use it to control lastModified.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the random part of generated entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore returns a store holding a copy of notes.
func NewStore(notes models.EntityMap, opts ...Option) *Store {
	s := &Store{
		notes: notes.Clone(),
		now:   time.Now,
		newID: func() string { return utils.MustRandomString(utils.DefaultIDLength) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the entity with the given id.
func (s *Store) Get(id string) (models.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.notes[id]
	if !ok {
		return models.Entity{}, false
	}
	return e.Clone(), true
}

// Put stores e under id. The entity is touched when it differs from the one
// already held.
func (s *Store) Put(id string, e models.Entity) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.notes[id]
	s.notes[id] = e.Clone()
	if !ok || !held.Equal(e) {
		s.touch(id)
	}
}

// Delete moves id to the trash. The entity stays in the tree as a tombstone
// so that the deletion replicates.
func (s *Store) Delete(id string) {
	s.SetParent(id, models.TrashID)
}

// Touch sets lastModified of id to the current time.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(id)
}

func (s *Store) touch(id string) {
	e, ok := s.notes[id]
	if !ok {
		return
	}
	e.LastModified = s.now().UnixMilli()
	s.notes[id] = e
}

// Len returns the number of entities, tombstones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.notes)
}

// Children returns the ids whose parent is parentID, sorted.
func (s *Store) Children(parentID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.children(parentID)
}

func (s *Store) children(parentID string) []string {
	var ids []string
	for id, e := range s.notes {
		if e.ParentID == parentID {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// FolderContents returns the children of id that are not deleted.
func (s *Store) FolderContents(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.DeleteFunc(s.children(id), s.isDeleted)
}

// CreateNote adds an empty-titled note with the given text under parentID
// and returns its id.
func (s *Store) CreateNote(parentID, text string) string {
	return s.create("note-", parentID, models.Entity{Content: models.Content{Text: text}})
}

// CreateFolder adds a folder named name under parentID and returns its id.
func (s *Store) CreateFolder(parentID, name string) string {
	return s.create("folder-", parentID, models.Entity{IsFolder: true, Content: models.Content{Text: name}})
}

// CreateFolderWithID adds a folder under a fixed id unless that id is taken.
// It reports whether the folder was created.
func (s *Store) CreateFolderWithID(id, parentID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; ok {
		return false
	}
	now := s.now().UnixMilli()
	s.notes[id] = models.Entity{
		IsFolder:     true,
		Content:      models.Content{Text: name},
		ParentID:     parentID,
		CreatedAt:    now,
		LastModified: now,
	}
	return true
}

func (s *Store) create(prefix, parentID string, e models.Entity) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := prefix + s.newID()
	for {
		if _, taken := s.notes[id]; !taken {
			break
		}
		id = prefix + s.newID()
	}

	now := s.now().UnixMilli()
	e.ParentID = parentID
	e.CreatedAt = now
	e.LastModified = now
	s.notes[id] = e

	return id
}

// Snapshot returns a deep copy of the whole tree.
func (s *Store) Snapshot() models.EntityMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notes.Clone()
}

// Subtree returns a deep copy of rootID and all its descendants.
func (s *Store) Subtree(rootID string) models.EntityMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.EntityMap)
	for _, id := range s.descendants(rootID, true) {
		out[id] = s.notes[id].Clone()
	}
	return out
}

// Replace swaps the whole tree for a copy of notes without touching anything.
// It is used when loading persisted state.
func (s *Store) Replace(notes models.EntityMap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = notes.Clone()
}
