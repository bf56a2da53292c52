// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"maps"
	"reflect"
	"slices"
)

// TrashID is the sentinel parent of soft-deleted entities. An entity whose
// parent chain reaches it is a tombstone.
const TrashID = "trash"

// RootID marks a top-level entity. It is serialized by omitting parentId.
const RootID = ""

// Sorting modes understood by folders. [SortInherit] defers to the closest
// ancestor that sets one of the others.
const (
	SortInherit            = "inherit"
	SortByCreationDate     = "byCreationDate"
	SortByModificationDate = "byModificationDate"
	SortByNameAZ           = "byNameAZ"
	SortByNameZA           = "byNameZA"
)

// Content is the payload of a note or folder. The merge core treats it as an
// opaque leaf value: it is replaced as a whole, never merged field by field.
type Content struct {
	// Text is the note body or, for folders, the folder name.
	Text string `json:"text"`

	// Title overrides the title derived from the first line of Text.
	Title string `json:"title,omitempty"`

	// Strokes holds freehand drawing data. It is carried verbatim.
	Strokes json.RawMessage `json:"strokes,omitempty"`
}

// Entity is a note or folder record.
//
// Only ParentID and LastModified are interpreted by the merge resolver. Every
// other field, including keys this type does not know about (kept in Extra),
// travels through a merge untouched.
type Entity struct {
	IsFolder     bool    `json:"isFolder,omitempty"`
	Content      Content `json:"content"`
	ParentID     string  `json:"parentId,omitempty"`
	CreatedAt    int64   `json:"createdAt"`
	LastModified int64   `json:"lastModified"`

	IsPinned    bool   `json:"isPinned,omitempty"`
	IsHidden    bool   `json:"isHidden,omitempty"`
	Lock        bool   `json:"lock,omitempty"`
	Password    string `json:"password,omitempty"`
	SortingMode string `json:"sortingMode,omitempty"`

	// Shared marks the root of a collaborative subtree that is replicated
	// to the blob addressed by SharedID/SharedKey.
	Shared    bool   `json:"shared,omitempty"`
	SharedID  string `json:"sharedId,omitempty"`
	SharedKey string `json:"sharedKey,omitempty"`
	ShareCode string `json:"shareCode,omitempty"`

	// Extra keeps unrecognised JSON keys so that entities written by newer
	// clients survive a round trip through this one.
	Extra map[string]json.RawMessage `json:"-"`
}

type entityAlias Entity

// entityWire decodes parentId separately: older clients store the root
// marker as 0 or null instead of omitting it.
type entityWire struct {
	entityAlias
	ParentID json.RawMessage `json:"parentId,omitempty"`
}

var knownEntityKeys = map[string]struct{}{
	"isFolder": {}, "content": {}, "parentId": {}, "createdAt": {}, "lastModified": {},
	"isPinned": {}, "isHidden": {}, "lock": {}, "password": {}, "sortingMode": {},
	"shared": {}, "sharedId": {}, "sharedKey": {}, "shareCode": {},
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *Entity) UnmarshalJSON(b []byte) error {
	var wire entityWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*e = Entity(wire.entityAlias)
	e.ParentID = decodeParentID(wire.ParentID)
	e.Extra = nil
	for k, v := range raw {
		if _, ok := knownEntityKeys[k]; ok {
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]json.RawMessage)
		}
		e.Extra[k] = v
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (e Entity) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(entityAlias(e))
	if err != nil || len(e.Extra) == 0 {
		return known, err
	}

	var out map[string]json.RawMessage
	if err = json.Unmarshal(known, &out); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}

	return json.Marshal(out)
}

func decodeParentID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return RootID
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return RootID
	}
	return s
}

// Equal reports whether two entities carry the same data.
func (e Entity) Equal(o Entity) bool {
	if len(e.Extra) == 0 && len(o.Extra) == 0 {
		e.Extra, o.Extra = nil, nil
	}
	if len(e.Content.Strokes) == 0 && len(o.Content.Strokes) == 0 {
		e.Content.Strokes, o.Content.Strokes = nil, nil
	}
	return reflect.DeepEqual(e, o)
}

// Clone returns a deep copy of e.
func (e Entity) Clone() Entity {
	if e.Content.Strokes != nil {
		e.Content.Strokes = slices.Clone(e.Content.Strokes)
	}
	if e.Extra != nil {
		extra := make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			extra[k] = slices.Clone(v)
		}
		e.Extra = extra
	}
	return e
}

// EntityMap is an owner's note tree keyed by entity id.
type EntityMap map[string]Entity

// UnmarshalJSON implements [json.Unmarshaler]. An empty JSON array decodes
// to an empty map, since that is how older servers encode an empty tree.
func (m *EntityMap) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("[]")) {
		*m = EntityMap{}
		return nil
	}

	var notes map[string]Entity
	if err := json.Unmarshal(b, &notes); err != nil {
		return err
	}
	*m = notes
	return nil
}

// Clone returns a deep copy of m. A nil map clones to an empty one.
func (m EntityMap) Clone() EntityMap {
	out := make(EntityMap, len(m))
	for id, e := range m {
		out[id] = e.Clone()
	}
	return out
}

// IDs returns the keys of m in ascending order.
func (m EntityMap) IDs() []string {
	return slices.Sorted(maps.Keys(m))
}
