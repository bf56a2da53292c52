package entity

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	defaultNoteTitle   = "New Note"
	defaultFolderTitle = "New Folder"
)

// update applies fn to the entity and touches it if fn reports a change.
// Unknown ids are ignored.
func (s *Store) update(id string, fn func(e *models.Entity) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.notes[id]
	if !ok {
		return
	}
	changed := fn(&e)
	s.notes[id] = e
	if changed {
		s.touch(id)
	}
}

// Text returns the trimmed text of id.
func (s *Store) Text(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return strings.TrimSpace(s.notes[id].Content.Text)
}

// SetText replaces the text of id. Whitespace-only differences do not count
// as a change.
func (s *Store) SetText(id, text string) {
	s.update(id, func(e *models.Entity) bool {
		changed := strings.TrimSpace(e.Content.Text) != strings.TrimSpace(text)
		e.Content.Text = text
		return changed
	})
}

// Title returns the explicit title of id, the first line of its text, or a
// placeholder.
func (s *Store) Title(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.title(id)
}

func (s *Store) title(id string) string {
	e := s.notes[id]
	if t := strings.TrimSpace(e.Content.Title); t != "" {
		return t
	}
	text := strings.TrimSpace(e.Content.Text)
	if line, _, _ := strings.Cut(text, "\n"); line != "" {
		return line
	}
	if e.IsFolder {
		return defaultFolderTitle
	}
	return defaultNoteTitle
}

func (s *Store) SetTitle(id, title string) {
	title = strings.TrimSpace(title)
	s.update(id, func(e *models.Entity) bool {
		changed := e.Content.Title != title
		e.Content.Title = title
		return changed
	})
}

// SetParent moves id under parentID without any checks.
func (s *Store) SetParent(id, parentID string) {
	s.update(id, func(e *models.Entity) bool {
		changed := e.ParentID != parentID
		e.ParentID = parentID
		return changed
	})
}

// Move moves id under parentID. A folder cannot be moved below itself.
func (s *Store) Move(id, parentID string) error {
	s.mu.RLock()
	_, ok := s.notes[id]
	cycle := parentID != models.RootID && s.isDescendant(parentID, id)
	s.mu.RUnlock()

	if !ok {
		return ErrEntityNotFound
	}
	if cycle {
		return ErrMoveIntoItself
	}
	s.SetParent(id, parentID)
	return nil
}

func (s *Store) SetPinned(id string, pinned bool) {
	s.update(id, func(e *models.Entity) bool {
		changed := e.IsPinned != pinned
		e.IsPinned = pinned
		return changed
	})
}

func (s *Store) Hide(id string, hidden bool) {
	s.update(id, func(e *models.Entity) bool {
		changed := e.IsHidden != hidden
		e.IsHidden = hidden
		return changed
	})
}

// Lock protects id and its descendants with password.
func (s *Store) Lock(id, password string) {
	s.update(id, func(e *models.Entity) bool {
		changed := !e.Lock || e.Password != password
		e.Lock = true
		e.Password = password
		return changed
	})
}

func (s *Store) RemoveLock(id string) {
	s.update(id, func(e *models.Entity) bool {
		changed := e.Lock || e.Password != ""
		e.Lock = false
		e.Password = ""
		return changed
	})
}

// CheckPassword reports whether password unlocks the lock that covers id.
// Entities that are not locked always pass.
func (s *Store) CheckPassword(id, password string) bool {
	root, ok := s.LockRoot(id)
	if !ok {
		return true
	}
	e, _ := s.Get(root)
	return e.Password == password
}

// SetSortingMode sets the sorting mode of a folder. For a note the mode is
// set on its parent folder.
func (s *Store) SetSortingMode(id, mode string) {
	s.mu.RLock()
	e, ok := s.notes[id]
	s.mu.RUnlock()
	if !ok {
		return
	}
	if !e.IsFolder {
		id = e.ParentID
	}

	s.update(id, func(e *models.Entity) bool {
		changed := e.SortingMode != mode
		e.SortingMode = mode
		return changed
	})
}

// SetShare records sharing state on id. When creds is set the entity becomes
// the root of a collaborative subtree. code is the last produced share code.
func (s *Store) SetShare(id string, creds *models.Credentials, code string) {
	s.update(id, func(e *models.Entity) bool {
		before := *e
		if creds != nil {
			e.Shared = true
			e.SharedID = creds.ID
			e.SharedKey = creds.Key
		}
		e.ShareCode = code
		return before.Shared != e.Shared || before.SharedID != e.SharedID ||
			before.SharedKey != e.SharedKey || before.ShareCode != e.ShareCode
	})
}

// ClearShare removes all sharing state from id.
func (s *Store) ClearShare(id string) {
	s.update(id, func(e *models.Entity) bool {
		changed := e.Shared || e.SharedID != "" || e.SharedKey != "" || e.ShareCode != ""
		e.Shared = false
		e.SharedID = ""
		e.SharedKey = ""
		e.ShareCode = ""
		return changed
	})
}
