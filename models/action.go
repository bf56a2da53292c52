package models

import (
	"encoding/json"
)

// Action is the discriminator of a data controller request.
type Action string

const (
	ActionRead             Action = "read"
	ActionUploadAndMerge   Action = "uploadAndMerge"
	ActionCreateSharedNote Action = "createSharedNote"
	ActionGetSharedNote    Action = "getSharedNote"
)

// ActionRequest is the single request shape accepted by the data endpoint.
// Which of Body and Content is meaningful depends on Action.
type ActionRequest struct {
	Action Action `json:"action"`
	ID     string `json:"id"`
	Key    string `json:"key"`

	// Body is the caller's full entity map for uploadAndMerge.
	Body EntityMap `json:"body"`

	// Content is the opaque shared-note payload for createSharedNote.
	Content json.RawMessage `json:"content,omitempty"`
}

// MergeResponse answers uploadAndMerge with the delta the caller has to merge
// into its own tree.
type MergeResponse struct {
	Success bool      `json:"success"`
	Body    EntityMap `json:"body"`
}

// SharedNoteResponse answers createSharedNote (ID and Key set) and
// getSharedNote (Body set).
type SharedNoteResponse struct {
	Success bool            `json:"success"`
	ID      string          `json:"id,omitempty"`
	Key     string          `json:"key,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
}

// ErrorResponse is returned for every failed action.
type ErrorResponse struct {
	Error ErrorCode `json:"error"`
}
