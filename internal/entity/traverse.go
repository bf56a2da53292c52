package entity

import (
	"github.com/MKhiriev/go-note-keeper/internal/merge"
	"github.com/MKhiriev/go-note-keeper/models"
)

// walk calls fn for id and each of its ancestors until fn returns true or the
// chain reaches the root. A chain that leaves the tree or loops is never
// handed to fn. It reports whether fn returned true.
func (s *Store) walk(id string, fn func(id string, e models.Entity) bool) bool {
	chain := s.ancestry(id)
	for _, cur := range chain {
		if fn(cur, s.notes[cur]) {
			return true
		}
	}
	return false
}

// ancestry returns id followed by its ancestors up to, not including, the
// root. It returns nil when the chain leaves the tree or loops.
func (s *Store) ancestry(id string) []string {
	var chain []string
	visited := make(map[string]struct{})
	for id != models.RootID {
		e, ok := s.notes[id]
		if !ok {
			return nil
		}
		if _, seen := visited[id]; seen {
			return nil
		}
		visited[id] = struct{}{}
		chain = append(chain, id)
		id = e.ParentID
	}
	return chain
}

// Exists reports whether id is a valid entity outside the trash.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isValid(id) && !s.isDeleted(id)
}

// IsValid reports whether id is present and carries non-empty text.
func (s *Store) IsValid(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isValid(id)
}

func (s *Store) isValid(id string) bool {
	e, ok := s.notes[id]
	return ok && e.Content.Text != ""
}

func (s *Store) IsFolder(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notes[id].IsFolder
}

// IsDeleted reports whether the parent chain of id reaches the trash.
func (s *Store) IsDeleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isDeleted(id)
}

func (s *Store) isDeleted(id string) bool {
	return merge.IsTombstone(id, s.notes)
}

// IsHidden reports whether id or any ancestor is hidden.
func (s *Store) IsHidden(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.walk(id, func(_ string, e models.Entity) bool { return e.IsHidden })
}

// LockRoot returns the closest entity at or above id that carries a lock.
func (s *Store) LockRoot(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var root string
	found := s.walk(id, func(cur string, e models.Entity) bool {
		root = cur
		return e.Lock
	})
	if !found {
		return "", false
	}
	return root, true
}

// IsLocked reports whether id or any ancestor is locked.
func (s *Store) IsLocked(id string) bool {
	_, ok := s.LockRoot(id)
	return ok
}

// SharedRoot returns the closest entity at or above id that is shared.
func (s *Store) SharedRoot(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var root string
	found := s.walk(id, func(cur string, e models.Entity) bool {
		root = cur
		return e.Shared
	})
	if !found {
		return "", false
	}
	return root, true
}

// IsShared reports whether id or any ancestor is a collaborative root.
func (s *Store) IsShared(id string) bool {
	_, ok := s.SharedRoot(id)
	return ok
}

// IsDescendant reports whether id is rootID or lies below it.
func (s *Store) IsDescendant(id, rootID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isDescendant(id, rootID)
}

func (s *Store) isDescendant(id, rootID string) bool {
	return s.walk(id, func(cur string, e models.Entity) bool {
		return cur == rootID || e.ParentID == rootID
	})
}

// Descendants returns rootID and every entity below it, sorted. Folders are
// left out when includeFolders is false.
func (s *Store) Descendants(rootID string, includeFolders bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.descendants(rootID, includeFolders)
}

func (s *Store) descendants(rootID string, includeFolders bool) []string {
	var ids []string
	for _, id := range s.notes.IDs() {
		if !s.isDescendant(id, rootID) {
			continue
		}
		if !includeFolders && s.notes[id].IsFolder {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// SortingMode returns the first explicit sorting mode at or above id, or
// [models.SortInherit] when there is none.
func (s *Store) SortingMode(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortingMode(id)
}

func (s *Store) sortingMode(id string) string {
	mode := models.SortInherit
	s.walk(id, func(_ string, e models.Entity) bool {
		if e.SortingMode != "" && e.SortingMode != models.SortInherit {
			mode = e.SortingMode
			return true
		}
		return false
	})
	return mode
}

// NoteCount returns the number of visible notes below the folder rootID.
func (s *Store) NoteCount(rootID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, id := range s.descendants(rootID, false) {
		if id != rootID && !s.isDeleted(id) && !s.hiddenBelow(id, rootID) {
			count++
		}
	}
	return count
}

func (s *Store) hiddenBelow(id, rootID string) bool {
	hidden := false
	s.walk(id, func(cur string, e models.Entity) bool {
		if cur == rootID {
			return true
		}
		hidden = e.IsHidden
		return hidden
	})
	return hidden
}
