package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Presenter is the view the sync client keeps up to date. It is usually the
// TUI, re-rendered from a background goroutine.
type Presenter interface {
	// SelectedID returns the id of the entity currently open in the view,
	// or an empty string.
	SelectedID() string

	// Rerender redraws the view after a merge. selectedChanged is set when
	// the content of the open entity changed underneath the user.
	Rerender(selectedChanged bool)
}

// ClientSyncService replicates the local note tree to the server.
type ClientSyncService interface {
	// LoadCredentials resolves the account credentials. A valid code
	// overrides the stored pair; otherwise the stored pair is used and a new
	// one is generated and persisted when nothing usable is stored.
	LoadCredentials(ctx context.Context, code string) (models.Credentials, error)

	// Credentials returns the credentials currently used by SyncPrimary.
	Credentials() models.Credentials

	// SetPresenter replaces the view notified after merges.
	SetPresenter(p Presenter)

	// SyncPrimary uploads the whole tree and merges the returned delta. A
	// call made while a previous round trip is in flight returns at once.
	SyncPrimary(ctx context.Context) error

	// SyncShared replicates every collaborative subtree to its own blob and
	// merges back content only.
	SyncShared(ctx context.Context) error

	// Save persists the tree to the local database when it changed since
	// the previous save.
	Save(ctx context.Context) error
}

// ClientShareService creates, opens and cancels shared notes.
type ClientShareService interface {
	// ShareNote uploads the subtree of rootID as a shared note and returns
	// its code. collaborative marks the uploaded root so that every client
	// opening it keeps syncing with it. A root already shared returns its
	// existing code.
	ShareNote(ctx context.Context, rootID string, collaborative bool) (string, error)

	// LoadSharedNote fetches the shared note behind code, attaches it under
	// the "Shared Notes" folder and returns the id of its root.
	LoadSharedNote(ctx context.Context, code string) (string, error)

	// CancelCollaboration stops replicating id and forgets its share code.
	CancelCollaboration(id string) error
}

// ClientSyncJob runs the client's background loops.
type ClientSyncJob interface {
	// Start launches the primary and shared sync loops ticking every
	// interval plus the saving loop. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loops and blocks until they have exited.
	Stop()
}
