package browse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type level int

const (
	levelInfo level = iota
	levelError
)

type toast struct {
	id    int
	text  string
	level level
}

type toastMsg struct {
	text  string
	level level
}

type toastExpiredMsg struct{ id int }

func notify(lvl level, text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, level: lvl} }
}

func (s *Shell) addToast(msg toastMsg) tea.Cmd {
	s.nextToast++
	id := s.nextToast
	s.toasts = append(s.toasts, toast{id: id, text: msg.text, level: msg.level})

	return tea.Tick(s.opts.ToastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (s *Shell) dropToast(id int) {
	for i, t := range s.toasts {
		if t.id == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

func (t toast) render() string {
	if t.level == levelError {
		return errorStyle.Render("✗ " + t.text)
	}
	return infoStyle.Render("✓ " + t.text)
}
