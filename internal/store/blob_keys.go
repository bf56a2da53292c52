package store

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// checkKey rejects namespaces and ids that cannot address a blob in any
// backend. Ids end up in file paths and object keys, so separators and dot
// segments are refused here regardless of what the transport validated.
func checkKey(ns models.Namespace, id string) error {
	switch ns {
	case models.NamespaceNotes, models.NamespaceShared:
	default:
		return ErrUnknownNamespace
	}

	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`+"\x00") {
		return ErrInvalidBlobID
	}

	return nil
}
