// Package browse is a terminal client for the items API. Screens are views
// mounted by a navigation.Router, so moving between them releases whatever
// the previous screen held.
package browse

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ferdiebergado/boring/internal/client"
	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/navigation"
)

const (
	pathItems   = "/items"
	pathNewItem = "/items/new"
	pathItem    = "/items/:id"

	defaultToastTTL = 4 * time.Second
)

// API is the part of client.Client the screens use.
type API interface {
	ListItems(ctx context.Context) ([]item.Item, error)
	GetItem(ctx context.Context, id string) (item.Item, error)
	CreateItem(ctx context.Context, params item.CreateParams) (item.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

var _ API = (*client.Client)(nil)

type Options struct {
	// Start is the first location shown. Defaults to /items.
	Start string
	// RefreshEvery reloads the list screen periodically. Zero disables it.
	RefreshEvery time.Duration
	// ToastTTL is how long a notification stays on screen.
	ToastTTL time.Duration
}

type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// inputScreen is implemented by screens that consume plain keystrokes.
type inputScreen interface {
	capturesInput() bool
}

type navigateMsg struct{ target string }

type backMsg struct{}

func navigate(target string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target} }
}

func back() tea.Msg { return backMsg{} }

// Shell is the root bubbletea model. It owns the router, the mounted screen
// and the notifications.
type Shell struct {
	ctx    context.Context
	api    API
	opts   Options
	router *navigation.Router

	screen   screen
	mountCmd tea.Cmd

	toasts    []toast
	nextToast int
	width     int
}

var _ tea.Model = (*Shell)(nil)

func New(ctx context.Context, api API, opts Options) *Shell {
	if opts.Start == "" {
		opts.Start = pathItems
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = defaultToastTTL
	}

	s := &Shell{
		ctx:    ctx,
		api:    api,
		opts:   opts,
		router: navigation.New(),
	}

	s.router.Handle(pathItems, s.listView)
	s.router.Handle(pathNewItem, s.formView)
	s.router.Handle(pathItem, s.detailView)
	s.router.NotFound(s.notFoundView)

	return s
}

// Run starts the terminal client and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, api API, opts Options) error {
	s := New(ctx, api, opts)
	defer s.router.Close(context.WithoutCancel(ctx))

	p := tea.NewProgram(s, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Location returns the location of the mounted screen.
func (s *Shell) Location() string {
	return s.router.Current()
}

func (s *Shell) Init() tea.Cmd {
	return navigate(s.opts.Start)
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return s, s.quit()
		case "q":
			if in, ok := s.screen.(inputScreen); !ok || !in.capturesInput() {
				return s, s.quit()
			}
		}
	case navigateMsg:
		return s, s.mount(func(ctx context.Context) error {
			return s.router.Navigate(ctx, msg.target)
		})
	case backMsg:
		return s, s.mount(func(ctx context.Context) error {
			ok, err := s.router.Back(ctx)
			if err == nil && !ok {
				return s.router.Navigate(ctx, pathItems)
			}
			return err
		})
	case toastMsg:
		return s, s.addToast(msg)
	case toastExpiredMsg:
		s.dropToast(msg.id)
		return s, nil
	}

	if s.screen == nil {
		return s, nil
	}
	return s, s.screen.Update(msg)
}

func (s *Shell) quit() tea.Cmd {
	s.router.Close(s.ctx)
	s.screen = nil
	return tea.Quit
}

// mount runs a navigation and returns the Init command of the screen it
// mounted.
func (s *Shell) mount(nav func(ctx context.Context) error) tea.Cmd {
	s.mountCmd = nil
	if err := nav(s.ctx); err != nil {
		return notify(levelError, err.Error())
	}

	cmd := s.mountCmd
	s.mountCmd = nil
	return cmd
}

func (s *Shell) show(sc screen) {
	s.screen = sc
	s.mountCmd = sc.Init()
}

func (s *Shell) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("items"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(s.router.Current()))
	b.WriteString("\n\n")

	if s.screen != nil {
		b.WriteString(s.screen.View())
	}

	if len(s.toasts) > 0 {
		b.WriteString("\n")
		for _, t := range s.toasts {
			b.WriteString("\n")
			b.WriteString(t.render())
		}
	}

	return lipgloss.NewStyle().MaxWidth(s.width).Render(b.String())
}

// errorText prefers the message the server put in the error envelope.
func errorText(err error) string {
	var respErr *client.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode != 0 && respErr.Message != "" {
		return respErr.Message
	}
	return err.Error()
}
