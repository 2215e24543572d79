package tui

// actionDoneMsg is sent when a controller action finishes.
type actionDoneMsg struct {
	err error
}

// refreshedMsg is sent after a background calendar refresh.
type refreshedMsg struct{}
