// Package ui is the terminal front end of the tournament list: a bubbletea
// model that renders a session.Session and turns key presses into filter,
// join and retry actions.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/session"
)

const defaultLoadTimeout = 10 * time.Second

// NoticeExpired is sent by the program when the join notice times out, so
// that the view is redrawn without it.
type NoticeExpired struct{}

// tournamentsLoaded carries the result of one load back to Update.
type tournamentsLoaded struct {
	tournaments []models.Tournament
	err         error
}

type Options struct {
	// LoadTimeout bounds one list request; zero means 10s.
	LoadTimeout time.Duration
	Keys        *KeyMap
}

type Model struct {
	session *session.Session
	keys    KeyMap

	search textinput.Model
	bar    progress.Model

	cursor      int
	width       int
	loadTimeout time.Duration
}

func NewModel(sess *session.Session, opts Options) Model {
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	timeout := opts.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "tournament name"
	search.CharLimit = 64
	search.SetValue(sess.Search())

	return Model{
		session:     sess,
		keys:        keys,
		search:      search,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage()),
		loadTimeout: timeout,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

// load runs the session's loader off the event loop.
func (m Model) load() tea.Cmd {
	loader := m.session.Loader()
	timeout := m.loadTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tournaments, err := loader.ListTournaments(ctx)
		return tournamentsLoaded{tournaments: tournaments, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tournamentsLoaded:
		m.session.FinishLoad(msg.tournaments, msg.err)
		m.clampCursor()
		return m, nil

	case NoticeExpired:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width/3, 10), 40)
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 10)
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.handleSearchKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.SearchDone):
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.session.SetSearch(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.session.State() {
	case session.StateError:
		if key.Matches(msg, m.keys.Retry) && m.session.CanRetry() {
			m.session.BeginLoad()
			return m, m.load()
		}
		return m, nil
	case session.StateLoading:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Join):
		if card, ok := m.selected(); ok {
			m.session.Join(card.ID)
		}
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		m.search.Reset()
		m.session.SetSearch("")
	case key.Matches(msg, m.keys.CycleStatus):
		m.session.CycleStatus()
	case key.Matches(msg, m.keys.CycleTimeControl):
		m.session.CycleTimeControl()
	}
	m.clampCursor()
	return m, nil
}

// Cursor is the index of the selected card among visible tournaments.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Session() *session.Session { return m.session }

func (m Model) SearchFocused() bool { return m.search.Focused() }

func (m *Model) clampCursor() {
	n := len(m.session.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
