package tui

import "fmt"

// confirmModel asks before an entity goes to the bin. notes is the number of
// notes that go with a folder.
type confirmModel struct {
	title    string
	isFolder bool
	notes    int
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Удалить %q?", m.title)
	if m.isFolder && m.notes > 0 {
		content += fmt.Sprintf("\nВместе с папкой будет удалено заметок: %d", m.notes)
	}
	content += "\n\ny да    n нет"
	return overlayBoxStyle.Render(content)
}
