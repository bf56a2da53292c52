package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/merge"
	"github.com/MKhiriev/go-note-keeper/models"
)

// MergeResult describes what applying a remote delta changed.
type MergeResult struct {
	// Changed is set when any entity was added, replaced or dropped.
	Changed bool

	// SelectedChanged is set when the content of the selected entity
	// differs after the merge.
	SelectedChanged bool
}

// Merge applies a delta received from the server. Entities changed locally
// while the round trip was in flight keep their newer version.
func (s *Store) Merge(remote models.EntityMap, selectedID string) MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, hadSelected := s.notes[selectedID]
	full, delta := merge.Merge(s.notes, remote, s.now())

	res := MergeResult{Changed: len(delta) > 0 || len(full) != len(s.notes)}
	s.notes = full

	after, hasSelected := s.notes[selectedID]
	res.SelectedChanged = hadSelected != hasSelected || !contentEqual(before, after)

	return res
}

// MergeContentOnly applies a delta from a shared blob. Only content and
// lastModified of known entities are taken from remote.
func (s *Store) MergeContentOnly(remote models.EntityMap, selectedID string) MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, hadSelected := s.notes[selectedID]
	merged, changed := merge.MergeContentOnly(s.notes, remote)
	s.notes = merged

	after, hasSelected := s.notes[selectedID]
	return MergeResult{
		Changed:         len(changed) > 0,
		SelectedChanged: hadSelected != hasSelected || !contentEqual(before, after),
	}
}

func contentEqual(a, b models.Entity) bool {
	return a.Content.Text == b.Content.Text &&
		a.Content.Title == b.Content.Title &&
		bytes.Equal(a.Content.Strokes, b.Content.Strokes)
}

// Prune moves empty, orphaned and invalid entities to the trash and removes
// tombstones older than [merge.TombstoneRetention]. selectedID is never
// binned. It reports whether anything changed.
func (s *Store) Prune(selectedID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	hasChildren := make(map[string]bool, len(s.notes))
	for _, e := range s.notes {
		hasChildren[e.ParentID] = true
	}

	var expired, binned []string
	for _, id := range s.notes.IDs() {
		e := s.notes[id]
		if merge.IsTombstone(id, s.notes) && merge.Expired(e, now) {
			expired = append(expired, id)
			continue
		}

		empty := strings.TrimSpace(e.Content.Text) == ""
		bin := empty && (!e.IsFolder || !hasChildren[id])
		if e.ParentID != models.RootID {
			if _, ok := s.notes[e.ParentID]; !ok {
				bin = true
			}
		}
		if bin && id != selectedID && !s.isDeleted(id) {
			binned = append(binned, id)
		}
	}

	for _, id := range expired {
		delete(s.notes, id)
	}
	for _, id := range binned {
		e := s.notes[id]
		e.ParentID = models.TrashID
		s.notes[id] = e
		s.touch(id)
	}

	return len(expired) > 0 || len(binned) > 0
}

// Export writes the whole tree as indented JSON.
func (s *Store) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Snapshot())
}

// Import replaces the tree with the one read from r. Every imported entity
// is touched so that it wins the next merge, and entities missing from the
// import are moved to the trash so the removal replicates too.
func (s *Store) Import(r io.Reader) error {
	var imported models.EntityMap
	if err := json.NewDecoder(r).Decode(&imported); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	if imported == nil {
		return ErrInvalidImport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.notes
	s.notes = imported
	for id := range s.notes {
		s.touch(id)
	}
	for id, e := range old {
		if _, ok := s.notes[id]; ok {
			continue
		}
		e.ParentID = models.TrashID
		s.notes[id] = e
		s.touch(id)
	}

	return nil
}
