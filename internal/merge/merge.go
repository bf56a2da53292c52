// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge reconciles two replicas of a note tree.
//
// The same functions run on the server, when a client uploads its tree, and
// on the client, when it applies the delta the server returned. Keeping one
// implementation for both ends is what makes replicas converge.
//
// Conflicts are resolved per entity by lastModified alone (last writer wins,
// the local side wins ties). Tombstones, entities whose parent chain reaches
// [models.TrashID], are dropped once they are older than
// [TombstoneRetention].
package merge

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// TombstoneRetention is how long a soft-deleted entity keeps replicating
// before any merge that observes it drops it for good.
const TombstoneRetention = 7 * 24 * time.Hour

// Merge reconciles local with remote.
//
// full is the converged tree to persist. delta holds every entry of full that
// the local side does not already hold in exactly that form; the caller must
// merge it into its own tree with this same function rather than overwrite.
// Merge is pure: neither input is modified.
func Merge(local, remote models.EntityMap, now time.Time) (full, delta models.EntityMap) {
	winners := make(models.EntityMap, len(local)+len(remote))
	for id, l := range local {
		winners[id] = l
	}
	for id, r := range remote {
		if l, ok := local[id]; ok && l.LastModified >= r.LastModified {
			continue
		}
		winners[id] = r
	}

	full = make(models.EntityMap, len(winners))
	delta = make(models.EntityMap)
	for id, w := range winners {
		if IsTombstone(id, winners) && Expired(w, now) {
			continue
		}

		full[id] = w.Clone()
		if l, ok := local[id]; !ok || !l.Equal(w) {
			delta[id] = w.Clone()
		}
	}

	return full, delta
}

// MergeContentOnly applies remote to local the way shared subtrees are
// synced: for ids present on both sides only content and lastModified are
// copied, and only when remote is strictly newer, so per-account fields such
// as pin state or sharing credentials stay private. Ids unknown locally are
// inserted whole. Nothing is removed.
//
// It returns the resulting tree and the ids that changed.
func MergeContentOnly(local, remote models.EntityMap) (models.EntityMap, []string) {
	merged := local.Clone()
	var changed []string

	for _, id := range remote.IDs() {
		r := remote[id]
		l, ok := merged[id]
		switch {
		case !ok:
			merged[id] = r.Clone()
		case r.LastModified > l.LastModified:
			l.Content = r.Clone().Content
			l.LastModified = r.LastModified
			merged[id] = l
		default:
			continue
		}
		changed = append(changed, id)
	}

	return merged, changed
}

// IsTombstone reports whether the parent chain of id in m reaches
// [models.TrashID]. A chain that leaves m or loops is not a tombstone.
func IsTombstone(id string, m models.EntityMap) bool {
	visited := make(map[string]struct{})
	for {
		e, ok := m[id]
		if !ok {
			return false
		}
		if e.ParentID == models.TrashID {
			return true
		}
		if e.ParentID == models.RootID {
			return false
		}
		visited[id] = struct{}{}
		id = e.ParentID
		if _, seen := visited[id]; seen {
			return false
		}
	}
}

// Expired reports whether e is older than [TombstoneRetention] at now.
func Expired(e models.Entity, now time.Time) bool {
	return now.UnixMilli()-e.LastModified > TombstoneRetention.Milliseconds()
}
