// Package home is the landing screen: the word lists, history and quit.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/study"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Lists   store.ListRepo
	History store.HistoryRepo
	Log     logrus.FieldLogger

	// SessionOptions are applied to every study session, e.g. a seed.
	SessionOptions []session.Option
}

type listsLoadedMsg struct {
	Lists []store.ListSummary
	Err   error
}

type listOpenFailedMsg struct {
	Err error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps   Deps
	lists  []store.ListSummary
	menu   components.Menu
	loaded bool
	errMsg string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.StatusProvider  = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	lists := h.deps.Lists
	return func() tea.Msg {
		all, err := lists.All(context.Background())
		return listsLoadedMsg{Lists: all, Err: err}
	}
}

// Resume reloads the lists so counts stay current.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	if !h.loaded {
		return ""
	}
	if len(h.lists) == 1 {
		return "1 list"
	}
	return fmt.Sprintf("%d lists", len(h.lists))
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listsLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.lists = msg.Lists
		h.menu = h.buildMenu()
		return h, nil

	case listOpenFailedMsg:
		h.errMsg = msg.Err.Error()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) buildMenu() components.Menu {
	prev := h.menu.Selected

	items := make([]components.MenuItem, 0, len(h.lists)+2)
	for _, l := range h.lists {
		items = append(items, components.MenuItem{
			Label:    l.Title,
			Detail:   wordCount(l),
			Action:   h.openList(l.ID),
			Disabled: l.WordCount == 0,
		})
	}
	items = append(items,
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.History)}
			}
		}, Disabled: h.deps.History == nil},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	)

	m := components.NewMenu(items)
	if prev > 0 && prev < len(items) && !items[prev].Disabled {
		m.Selected = prev
	}
	return m
}

// openList loads the list with its words and pushes a study screen.
func (h *HomeScreen) openList(id int64) func() tea.Cmd {
	deps := h.deps
	return func() tea.Cmd {
		return func() tea.Msg {
			list, err := deps.Lists.Get(context.Background(), id)
			if err != nil {
				return listOpenFailedMsg{Err: err}
			}
			return router.PushScreenMsg{
				Screen: study.New(list, deps.History, deps.Log, deps.SessionOptions...),
			}
		}
	}
}

func wordCount(l store.ListSummary) string {
	switch {
	case l.WordCount == 0:
		return "empty"
	case l.SelectedCount > 0:
		return fmt.Sprintf("%d of %d words selected", l.SelectedCount, l.WordCount)
	case l.WordCount == 1:
		return "1 word"
	}
	return fmt.Sprintf("%d words", l.WordCount)
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 64)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Word lists"))

	switch {
	case !h.loaded:
		sections = append(sections, theme.Hint.Render("Loading lists..."))
	case len(h.lists) == 0 && h.errMsg == "":
		sections = append(sections, theme.Hint.Width(cw).Render(
			"No word lists yet. Create one from the command line:\n\n"+
				"  lexiz import animals --input animals.txt"))
	}
	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render("Error: "+h.errMsg))
	}
	if h.loaded {
		sections = append(sections, theme.Card.Width(cw).Render(strings.TrimRight(h.menu.View(), "\n")))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
