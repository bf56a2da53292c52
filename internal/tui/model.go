package tui

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	modeTree viewMode = iota
	modeEditText
	modeInput
	modeConfirmDelete
	modeBuildInfo
)

type inputPurpose int

const (
	inputTitle inputPurpose = iota
	inputNewFolder
	inputShareCode
	inputExportPath
)

var inputHeaders = map[inputPurpose]string{
	inputTitle:      "ЗАГОЛОВОК",
	inputNewFolder:  "НОВАЯ ПАПКА",
	inputShareCode:  "ОТКРЫТЬ ОБЩУЮ ЗАМЕТКУ",
	inputExportPath: "ЭКСПОРТ",
}

const defaultExportPath = "notes-export.json"

var sortModes = []string{
	models.SortInherit,
	models.SortByCreationDate,
	models.SortByModificationDate,
	models.SortByNameAZ,
	models.SortByNameZA,
}

const treeHotKeys = "n: заметка  f: папка  e: текст  t: заголовок  d: удалить  p: закрепить  h: скрыть  .: скрытые  m: сортировка\n" +
	"  s: поделиться  S: совместно  c: отменить совместную  o: открыть код  y: код синхронизации  x: экспорт  v: о программе  q: выход"

type treeModel struct {
	ctx   context.Context
	notes *entity.Store
	sync  service.ClientSyncService
	share service.ClientShareService
	info  models.AppBuildInfo
	sel   *selection

	copyToClipboard func(string) error

	items      []entity.OutlineItem
	idx        int
	showHidden bool

	mode    viewMode
	purpose inputPurpose
	editID  string
	editor  textarea.Model
	input   textinput.Model
	sharing bool

	status string
	errMsg string
	width  int
}

func newTreeModel(ctx context.Context, notes *entity.Store, sync service.ClientSyncService,
	share service.ClientShareService, info models.AppBuildInfo, sel *selection) treeModel {
	m := treeModel{
		ctx:             ctx,
		notes:           notes,
		sync:            sync,
		share:           share,
		info:            info,
		sel:             sel,
		copyToClipboard: clipboard.WriteAll,
		width:           80,
	}
	m.refresh()
	return m
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the outline and keeps the cursor on the selected entity
// when it is still listed.
func (m *treeModel) refresh() {
	selected := m.sel.get()
	m.items = m.notes.Outline(!m.showHidden)
	for i, it := range m.items {
		if it.ID == selected {
			m.idx = i
			return
		}
	}
	m.moveCursor(0)
}

func (m *treeModel) moveCursor(delta int) {
	m.idx += delta
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	m.sel.set(m.currentID())
}

func (m *treeModel) selectID(id string) {
	m.sel.set(id)
	m.refresh()
}

func (m treeModel) currentID() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.idx].ID
}

// targetFolder is where new entities go: the selected folder, or the
// parent of the selected note.
func (m treeModel) targetFolder() string {
	id := m.currentID()
	if id == "" {
		return models.RootID
	}
	if m.notes.IsFolder(id) {
		return id
	}
	e, _ := m.notes.Get(id)
	return e.ParentID
}

func (m *treeModel) setError(err error) {
	m.errMsg = humanizeError(err)
	m.status = ""
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.mode == modeEditText {
			m.editor.SetWidth(editorWidth(m.width))
		}
		return m, nil

	case rerenderMsg:
		m.refresh()
		if msg.selectedChanged && m.mode == modeEditText && m.editID == m.sel.get() {
			m.editor.SetValue(m.noteText(m.editID))
			m.status = "Заметка изменена на другом устройстве"
		}
		return m, nil

	case shareDoneMsg:
		m.sharing = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.refresh()
		m.errMsg = ""
		m.status = "Код общей заметки: " + msg.code
		if err := m.copyToClipboard(msg.code); err == nil {
			m.status += " (скопирован)"
		}
		return m, nil

	case loadSharedDoneMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.selectID(msg.id)
		m.errMsg = ""
		m.status = "Общая заметка открыта"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEditText:
			return m.updateEditText(msg)
		case modeInput:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeBuildInfo:
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				m.mode = modeTree
			}
			return m, nil
		default:
			return m.updateTree(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeEditText:
		m.editor, cmd = m.editor.Update(msg)
	case modeInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m treeModel) updateTree(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	id := m.currentID()

	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit
	case key.Matches(k, keys.up):
		m.moveCursor(-1)
	case key.Matches(k, keys.down):
		m.moveCursor(1)

	case key.Matches(k, keys.newNote):
		newID := m.notes.CreateNote(m.targetFolder(), "")
		m.selectID(newID)
		m.startEdit(newID)
	case key.Matches(k, keys.newFolder):
		m.startInput(inputNewFolder, "Название папки", "")
	case key.Matches(k, keys.buildInfo):
		m.mode = modeBuildInfo
	case key.Matches(k, keys.showHidden):
		m.showHidden = !m.showHidden
		m.refresh()
		m.status = map[bool]string{true: "Скрытые показаны", false: "Скрытые не показаны"}[m.showHidden]
	case key.Matches(k, keys.openShared):
		m.startInput(inputShareCode, "<id>#<key>", "")
	case key.Matches(k, keys.copySyncCode):
		creds := m.sync.Credentials()
		if !creds.Valid() {
			m.status = "Нет кода синхронизации"
			return m, nil
		}
		if err := m.copyToClipboard(creds.String()); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Код синхронизации скопирован"
	case key.Matches(k, keys.export):
		m.startInput(inputExportPath, "путь к файлу", defaultExportPath)

	case id == "":
		m.status = "Нет заметок"

	case key.Matches(k, keys.edit):
		if m.notes.IsLocked(id) {
			m.status = "Заметка заблокирована"
			return m, nil
		}
		if m.notes.IsFolder(id) {
			m.startInput(inputTitle, "Заголовок", m.notes.Title(id))
			return m, nil
		}
		m.startEdit(id)
	case key.Matches(k, keys.title):
		m.startInput(inputTitle, "Заголовок", m.notes.Title(id))
	case key.Matches(k, keys.delete):
		m.mode = modeConfirmDelete
	case key.Matches(k, keys.pin):
		e, _ := m.notes.Get(id)
		m.notes.SetPinned(id, !e.IsPinned)
		m.refresh()
	case key.Matches(k, keys.hide):
		e, _ := m.notes.Get(id)
		m.notes.Hide(id, !e.IsHidden)
		m.refresh()
	case key.Matches(k, keys.sortMode):
		mode := nextSortMode(m.notes.SortingMode(id))
		m.notes.SetSortingMode(id, mode)
		m.refresh()
		m.status = "Сортировка: " + mode
	case key.Matches(k, keys.share, keys.collaborate):
		if m.sharing {
			return m, nil
		}
		m.sharing = true
		m.status = "Публикация..."
		return m, m.cmdShare(id, key.Matches(k, keys.collaborate))
	case key.Matches(k, keys.cancelShare):
		if err := m.share.CancelCollaboration(id); err != nil {
			m.setError(err)
			return m, nil
		}
		m.refresh()
		m.status = "Совместное редактирование отменено"
	}

	return m, nil
}

func (m treeModel) updateEditText(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.esc):
		m.mode = modeTree
		m.status = "Изменения отменены"
		return m, nil
	case key.Matches(k, keys.save):
		m.notes.SetText(m.editID, m.editor.Value())
		m.mode = modeTree
		m.refresh()
		m.status = "Сохранено"
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(k)
	return m, cmd
}

func (m treeModel) updateInput(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.esc):
		m.mode = modeTree
		return m, nil
	case key.Matches(k, keys.enter):
		return m.submitInput(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(k)
	return m, cmd
}

func (m treeModel) submitInput(value string) (tea.Model, tea.Cmd) {
	m.mode = modeTree

	switch m.purpose {
	case inputTitle:
		m.notes.SetTitle(m.editID, value)
		m.refresh()
	case inputNewFolder:
		if value == "" {
			m.errMsg = "нужно название"
			return m, nil
		}
		m.selectID(m.notes.CreateFolder(m.targetFolder(), value))
	case inputShareCode:
		if value == "" {
			return m, nil
		}
		m.status = "Загрузка..."
		return m, m.cmdLoadShared(value)
	case inputExportPath:
		if value == "" {
			value = defaultExportPath
		}
		if err := m.export(value); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка экспорта: %v", err)
			return m, nil
		}
		m.status = "Экспортировано в " + value
	}
	return m, nil
}

func (m treeModel) updateConfirmDelete(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.yes):
		m.notes.Delete(m.currentID())
		m.mode = modeTree
		m.refresh()
		m.status = "Перемещено в корзину"
	case key.Matches(k, keys.no):
		m.mode = modeTree
	}
	return m, nil
}

func (m *treeModel) startEdit(id string) {
	ta := textarea.New()
	ta.Placeholder = "Текст заметки"
	ta.SetWidth(editorWidth(m.width))
	ta.SetHeight(12)
	ta.SetValue(m.noteText(id))
	ta.Focus()

	m.editor = ta
	m.editID = id
	m.mode = modeEditText
}

func (m *treeModel) startInput(purpose inputPurpose, placeholder, value string) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 54
	ti.SetValue(value)
	ti.Focus()

	m.input = ti
	m.purpose = purpose
	m.editID = m.currentID()
	m.mode = modeInput
}

func (m treeModel) noteText(id string) string {
	e, _ := m.notes.Get(id)
	return e.Content.Text
}

func (m treeModel) cmdShare(id string, collaborative bool) tea.Cmd {
	ctx, share := m.ctx, m.share
	return func() tea.Msg {
		code, err := share.ShareNote(ctx, id, collaborative)
		return shareDoneMsg{code: code, err: err}
	}
}

func (m treeModel) cmdLoadShared(code string) tea.Cmd {
	ctx, share := m.ctx, m.share
	return func() tea.Msg {
		id, err := share.LoadSharedNote(ctx, code)
		return loadSharedDoneMsg{id: id, err: err}
	}
}

func (m treeModel) export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = m.notes.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nextSortMode(current string) string {
	i := slices.Index(sortModes, current)
	return sortModes[(i+1)%len(sortModes)]
}

func editorWidth(width int) int {
	return max(width-6, 20)
}
