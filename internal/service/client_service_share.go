package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Folder every opened shared note is attached to.
const (
	SharedFolderID   = "shared"
	SharedFolderName = "Shared Notes"
)

type clientShareService struct {
	notes    *entity.Store
	adapter  adapter.ServerAdapter
	timeout  time.Duration
	newCreds func() (models.Credentials, error)
	logger   *logger.Logger
}

// NewClientShareService creates the sharing side of the client.
func NewClientShareService(notes *entity.Store, serverAdapter adapter.ServerAdapter, timeout time.Duration,
	logger *logger.Logger) ClientShareService {
	return &clientShareService{
		notes:    notes,
		adapter:  serverAdapter,
		timeout:  timeout,
		newCreds: utils.GenerateCredentials,
		logger:   logger,
	}
}

func (s *clientShareService) ShareNote(ctx context.Context, rootID string, collaborative bool) (string, error) {
	root, ok := s.notes.Get(rootID)
	if !ok || s.notes.IsDeleted(rootID) {
		return "", ErrEntityNotFound
	}
	if root.ShareCode != "" {
		return root.ShareCode, nil
	}

	creds, err := s.newCreds()
	if err != nil {
		return "", fmt.Errorf("error generating share credentials: %w", err)
	}

	content := s.notes.Subtree(rootID)
	if collaborative {
		root = content[rootID]
		root.Shared = true
		root.SharedID = creds.ID
		root.SharedKey = creds.Key
		content[rootID] = root
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err = s.adapter.CreateSharedNote(ctx, creds, content); err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("note", rootID).Msg("sharing note failed")
		return "", err
	}

	code := creds.String()
	s.notes.SetShare(rootID, nil, code)
	s.logger.Info().Str("note", rootID).Bool("collaborative", collaborative).Msg("note shared")

	return code, nil
}

func (s *clientShareService) LoadSharedNote(ctx context.Context, code string) (string, error) {
	creds, err := models.ParseCredentials(code)
	if err != nil {
		return "", err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	body, err := s.adapter.GetSharedNote(ctx, creds)
	if err != nil {
		return "", mapAdapterError(err)
	}

	rootID := sharedRoot(body)
	if rootID == "" {
		return "", ErrSharedNoteIsEmpty
	}
	if _, exists := s.notes.Get(rootID); exists {
		return "", ErrAlreadyExists
	}

	s.notes.CreateFolderWithID(SharedFolderID, models.RootID, SharedFolderName)

	for _, id := range body.IDs() {
		if _, exists := s.notes.Get(id); exists && !s.notes.IsDescendant(id, SharedFolderID) {
			continue
		}
		e := body[id]
		if id == rootID {
			e.ParentID = SharedFolderID
		}
		s.notes.Put(id, e)
	}

	return rootID, nil
}

// sharedRoot returns the entity whose parent is not part of body.
func sharedRoot(body models.EntityMap) string {
	for _, id := range body.IDs() {
		if _, ok := body[body[id].ParentID]; !ok {
			return id
		}
	}
	return ""
}

func (s *clientShareService) CancelCollaboration(id string) error {
	if _, ok := s.notes.Get(id); !ok {
		return ErrEntityNotFound
	}
	s.notes.ClearShare(id)
	return nil
}

func (s *clientShareService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
