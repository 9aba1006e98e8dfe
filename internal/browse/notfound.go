package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferdiebergado/boring/internal/navigation"
)

type notFoundScreen struct {
	path string
}

func (s *Shell) notFoundView(_ context.Context, req navigation.Request) (navigation.Cleanup, error) {
	s.show(&notFoundScreen{path: req.Path})
	return nil, nil
}

func (n *notFoundScreen) Init() tea.Cmd { return nil }

func (n *notFoundScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter":
			return navigate(pathItems)
		}
	}
	return nil
}

func (n *notFoundScreen) View() string {
	return errorStyle.Render("Nothing lives at "+n.path+".") + "\n\n" +
		mutedStyle.Render("enter go to items • q quit")
}
