package models

import "time"

// Namespace separates account note trees from shared-note blobs.
type Namespace string

const (
	NamespaceNotes  Namespace = "notes"
	NamespaceShared Namespace = "shared"
)

// Namespaces lists every blob namespace.
var Namespaces = []Namespace{NamespaceNotes, NamespaceShared}

// BlobInfo describes a stored blob without its payload.
type BlobInfo struct {
	Namespace  Namespace
	ID         string
	AccessedAt time.Time
}
