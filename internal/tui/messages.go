package tui

// rerenderMsg is sent by the sync client after a merge changed the tree.
type rerenderMsg struct {
	selectedChanged bool
}

type shareDoneMsg struct {
	code string
	err  error
}

type loadSharedDoneMsg struct {
	id  string
	err error
}
