package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: note store and client services are required")

// TUI is the terminal view of the note tree. It implements
// [service.Presenter] so the sync client can redraw it after a merge.
type TUI struct {
	notes *entity.Store
	sync  service.ClientSyncService
	share service.ClientShareService
	info  models.AppBuildInfo
	sel   *selection

	logger *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(notes *entity.Store, services *service.ClientServices, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if notes == nil || services == nil {
		return nil, errNoServices
	}
	return &TUI{
		notes:  notes,
		sync:   services.SyncService,
		share:  services.ShareService,
		info:   info,
		sel:    &selection{},
		logger: logger,
	}, nil
}

// SelectedID returns the entity under the cursor.
func (t *TUI) SelectedID() string {
	return t.sel.get()
}

// Rerender asks the running program to redraw. It does nothing before Run
// and after the program exits.
func (t *TUI) Rerender(selectedChanged bool) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(rerenderMsg{selectedChanged: selectedChanged})
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newTreeModel(ctx, t.notes, t.sync, t.share, t.info, t.sel)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}
	return nil
}

// selection is the cursor shared between the program and the sync
// goroutines.
type selection struct {
	mu sync.RWMutex
	id string
}

func (s *selection) get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *selection) set(id string) {
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
}
