package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/navigation"
)

type listScreen struct {
	ctx   context.Context
	api   API
	every time.Duration

	items   []item.Item
	cursor  int
	loading bool
}

type itemsLoadedMsg struct {
	owner *listScreen
	items []item.Item
	err   error
}

type refreshMsg struct{ owner *listScreen }

func (s *Shell) listView(ctx context.Context, _ navigation.Request) (navigation.Cleanup, error) {
	ctx, stop := context.WithCancel(ctx)
	s.show(&listScreen{
		ctx:     ctx,
		api:     s.api,
		every:   s.opts.RefreshEvery,
		loading: true,
	})

	// stops the refresh ticker.
	return func(context.Context) error {
		stop()
		return nil
	}, nil
}

func (l *listScreen) Init() tea.Cmd {
	return tea.Batch(l.fetch(), l.tick())
}

func (l *listScreen) fetch() tea.Cmd {
	ctx, api := l.ctx, l.api
	return func() tea.Msg {
		items, err := api.ListItems(ctx)
		return itemsLoadedMsg{owner: l, items: items, err: err}
	}
}

func (l *listScreen) tick() tea.Cmd {
	if l.every <= 0 {
		return nil
	}

	ctx, every := l.ctx, l.every
	return func() tea.Msg {
		t := time.NewTimer(every)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			return refreshMsg{owner: l}
		}
	}
}

func (l *listScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.owner != l || l.ctx.Err() != nil {
			return nil
		}
		l.loading = false
		if msg.err != nil {
			return notify(levelError, errorText(msg.err))
		}
		l.items = msg.items
		l.cursor = min(l.cursor, max(len(l.items)-1, 0))
		return nil
	case refreshMsg:
		if msg.owner != l || l.ctx.Err() != nil {
			return nil
		}
		return tea.Batch(l.fetch(), l.tick())
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.items)-1 {
				l.cursor++
			}
		case "enter":
			if len(l.items) > 0 {
				return navigate(pathItems + "/" + l.items[l.cursor].ID)
			}
		case "n":
			return navigate(pathNewItem)
		case "r":
			l.loading = true
			return l.fetch()
		}
	}
	return nil
}

func (l *listScreen) View() string {
	var b strings.Builder

	switch {
	case l.loading && len(l.items) == 0:
		b.WriteString(mutedStyle.Render("Loading…"))
	case len(l.items) == 0:
		b.WriteString(mutedStyle.Render("No items yet."))
	default:
		for i, it := range l.items {
			line := fmt.Sprintf("  %s", it.Name)
			if i == l.cursor {
				line = selectedStyle.Render("> " + it.Name)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("↑/↓ move • enter open • n new • r refresh • q quit"))
	return b.String()
}
