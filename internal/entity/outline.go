package entity

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// OutlineItem is one row of the rendered tree.
type OutlineItem struct {
	ID    string
	Depth int
}

// Outline returns the live tree in display order, depth first. Within a
// folder pinned entities come first, then folders by name, then notes in the
// folder's sorting mode. Deleted and orphaned entities are not listed;
// hidden ones are listed unless skipHidden is set.
func (s *Store) Outline(skipHidden bool) []OutlineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byParent := make(map[string][]string)
	for id, e := range s.notes {
		byParent[e.ParentID] = append(byParent[e.ParentID], id)
	}

	var out []OutlineItem
	visited := make(map[string]struct{})
	var visit func(parentID string, depth int)
	visit = func(parentID string, depth int) {
		children := byParent[parentID]
		s.sortSiblings(parentID, children)
		for _, id := range children {
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			if skipHidden && s.notes[id].IsHidden {
				continue
			}
			out = append(out, OutlineItem{ID: id, Depth: depth})
			if s.notes[id].IsFolder {
				visit(id, depth+1)
			}
		}
	}
	visit(models.RootID, 0)

	return out
}

func (s *Store) sortSiblings(parentID string, ids []string) {
	mode := s.sortingMode(parentID)
	slices.SortFunc(ids, func(a, b string) int {
		ea, eb := s.notes[a], s.notes[b]
		if ea.IsPinned != eb.IsPinned {
			return boolFirst(ea.IsPinned)
		}
		if ea.IsFolder != eb.IsFolder {
			return boolFirst(ea.IsFolder)
		}

		var c int
		switch {
		case ea.IsFolder, mode == models.SortByNameAZ:
			c = strings.Compare(strings.ToLower(s.title(a)), strings.ToLower(s.title(b)))
		case mode == models.SortByNameZA:
			c = strings.Compare(strings.ToLower(s.title(b)), strings.ToLower(s.title(a)))
		case mode == models.SortByModificationDate:
			c = cmp.Compare(eb.LastModified, ea.LastModified)
		default:
			c = cmp.Compare(eb.CreatedAt, ea.CreatedAt)
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

func boolFirst(v bool) int {
	if v {
		return -1
	}
	return 1
}
