package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferdiebergado/boring/internal/client"
	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/navigation"
)

type detailScreen struct {
	ctx context.Context
	api API
	id  string

	item     *item.Item
	missing  bool
	deleting bool
}

type itemLoadedMsg struct {
	owner *detailScreen
	item  item.Item
	err   error
}

type itemDeletedMsg struct {
	owner *detailScreen
	err   error
}

func (s *Shell) detailView(ctx context.Context, req navigation.Request) (navigation.Cleanup, error) {
	s.show(&detailScreen{
		ctx: ctx,
		api: s.api,
		id:  req.Params.Get("id"),
	})
	return nil, nil
}

func (d *detailScreen) Init() tea.Cmd {
	ctx, api, id := d.ctx, d.api, d.id
	return func() tea.Msg {
		it, err := api.GetItem(ctx, id)
		return itemLoadedMsg{owner: d, item: it, err: err}
	}
}

func (d *detailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemLoadedMsg:
		if msg.owner != d || d.ctx.Err() != nil {
			return nil
		}
		if msg.err != nil {
			if client.IsNotFound(msg.err) {
				d.missing = true
				return nil
			}
			return notify(levelError, errorText(msg.err))
		}
		d.item = &msg.item
		return nil
	case itemDeletedMsg:
		if msg.owner != d || d.ctx.Err() != nil {
			return nil
		}
		d.deleting = false
		if msg.err != nil {
			return notify(levelError, errorText(msg.err))
		}
		return tea.Batch(notify(levelInfo, "Item deleted."), navigate(pathItems))
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "left", "h":
			return back
		case "d":
			if d.item == nil || d.deleting {
				return nil
			}
			d.deleting = true
			ctx, api, id := d.ctx, d.api, d.id
			return func() tea.Msg {
				return itemDeletedMsg{owner: d, err: api.DeleteItem(ctx, id)}
			}
		}
	}
	return nil
}

func (d *detailScreen) View() string {
	var b strings.Builder

	switch {
	case d.missing:
		b.WriteString(errorStyle.Render("Item not found."))
	case d.item == nil:
		b.WriteString(mutedStyle.Render("Loading…"))
	default:
		it := d.item
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Name:       "), it.Name)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Description:"), it.Description)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Created:    "), it.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Updated:    "), it.UpdatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("ID:         "), mutedStyle.Render(it.ID))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("esc back • d delete • q quit"))
	return b.String()
}
