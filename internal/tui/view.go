package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

func (m treeModel) View() string {
	switch m.mode {
	case modeBuildInfo:
		code := ""
		if creds := m.sync.Credentials(); creds.Valid() {
			code = creds.String()
		}
		return renderBuildInfoWindow(m.info, code)
	case modeEditText:
		return renderPage("РЕДАКТИРОВАНИЕ: "+m.notes.Title(m.editID), m.editor.View()+m.statusLine(), "ctrl+s: сохранить  esc: отмена")
	case modeInput:
		return renderPage(inputHeaders[m.purpose], m.input.View()+m.statusLine(), "enter: готово  esc: отмена")
	case modeConfirmDelete:
		return m.treeView() + "\n\n" + m.confirmDelete().View()
	}
	return m.treeView()
}

func (m treeModel) treeView() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("Нет заметок. n: новая заметка, f: новая папка\n")
	}
	for i, it := range m.items {
		e, _ := m.notes.Get(it.ID)
		indent := strings.Repeat("  ", it.Depth)
		line := indent + entityMarker(e) + fitText(m.notes.Title(it.ID), max(m.width-12-len(indent), 10))

		switch {
		case i == m.idx:
			line = selectedStyle.Render(line)
		case e.IsHidden:
			line = hiddenStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())

	return renderPage(fmt.Sprintf("ЗАМЕТКИ (%d)", len(m.items)), b.String(), treeHotKeys)
}

func (m treeModel) statusLine() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render(m.errMsg)
	case m.status != "":
		return "\n" + statusStyle.Render(m.status)
	}
	return ""
}

func entityMarker(e models.Entity) string {
	var b strings.Builder
	if e.IsFolder {
		b.WriteString("▸ ")
	} else {
		b.WriteString("• ")
	}
	if e.IsPinned {
		b.WriteString("* ")
	}
	if e.Lock {
		b.WriteString("[x] ")
	}
	if e.Shared {
		b.WriteString("⇄ ")
	}
	return b.String()
}

func (m treeModel) confirmDelete() confirmModel {
	id := m.currentID()
	c := confirmModel{title: m.notes.Title(id), isFolder: m.notes.IsFolder(id)}
	if c.isFolder {
		c.notes = m.notes.NoteCount(id)
	}
	return c
}
