package browse

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/navigation"
)

type formScreen struct {
	ctx context.Context
	api API

	inputs     []textinput.Model
	focus      int
	submitting bool
}

type itemCreatedMsg struct {
	owner *formScreen
	item  item.Item
	err   error
}

func (s *Shell) formView(ctx context.Context, _ navigation.Request) (navigation.Cleanup, error) {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 200
	name.Width = 40

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 2000
	desc.Width = 40

	s.show(&formScreen{
		ctx:    ctx,
		api:    s.api,
		inputs: []textinput.Model{name, desc},
	})
	return nil, nil
}

func (f *formScreen) capturesInput() bool { return true }

func (f *formScreen) Init() tea.Cmd {
	return tea.Batch(f.inputs[0].Focus(), textinput.Blink)
}

func (f *formScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemCreatedMsg:
		if msg.owner != f || f.ctx.Err() != nil {
			return nil
		}
		f.submitting = false
		if msg.err != nil {
			return notify(levelError, errorText(msg.err))
		}
		return tea.Batch(
			notify(levelInfo, "Created "+msg.item.Name+"."),
			navigate(pathItems+"/"+msg.item.ID),
		)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return back
		case "tab", "shift+tab", "up", "down":
			return f.cycleFocus()
		case "enter":
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formScreen) cycleFocus() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *formScreen) submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	f.submitting = true

	params := item.CreateParams{
		Name:        f.inputs[0].Value(),
		Description: f.inputs[1].Value(),
	}
	ctx, api := f.ctx, f.api
	return func() tea.Msg {
		created, err := api.CreateItem(ctx, params)
		return itemCreatedMsg{owner: f, item: created, err: err}
	}
}

func (f *formScreen) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("New item"))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Saving…"))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("tab next field • enter save • esc cancel"))
	return b.String()
}
