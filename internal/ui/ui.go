package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/catalog"
	"github.com/quaverlabs/quaver/internal/favorites"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/player"
	"github.com/quaverlabs/quaver/internal/session"
)

// view cycle order for the v key.
var viewCycle = []catalog.Kind{catalog.All, catalog.Favorites}

// Model represents the TUI application state: a filterable song list over the
// catalog plus a now-playing line driven by the playback queue.
type Model struct {
	ctx     context.Context
	client  *api.Client
	store   *session.Store
	toggler *favorites.Toggler
	queue   *player.Queue

	width    int
	height   int
	songs    []models.Song
	filter   catalog.Filter
	songList list.Model
	ready    bool
	notice   string
	err      error
	help     help.Model
	keys     keyMap
}

type songsFetchedMsg struct {
	songs []models.Song
	err   error
}

type toggleDoneMsg struct {
	songID models.ID
	result *favorites.Result
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, client *api.Client, store *session.Store, toggler *favorites.Toggler, queue *player.Queue) *Model {
	return &Model{
		ctx:     ctx,
		client:  client,
		store:   store,
		toggler: toggler,
		queue:   queue,
		filter:  catalog.Filter{Kind: catalog.All},
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the catalog fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchSongs()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.ready {
			m.songList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case songsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.songs = msg.songs
		m.rebuildList()
		return m, nil

	case toggleDoneMsg:
		if msg.err != nil {
			m.notice = styles.err.Render(fmt.Sprintf("✗ favorite failed: %v", msg.err))
		} else if msg.result.Added {
			m.notice = styles.ok.Render("♥ added to favorites")
		} else {
			m.notice = styles.warn.Render("removed from favorites")
		}
		m.rebuildList()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if !m.ready {
		return styles.help.Render("Loading catalog...")
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n%s\n%s\n\n%s", m.songList.View(), m.nowPlaying(), m.notice, helpView)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if item, ok := m.selected(); ok {
			m.queue.Load(m.visible(), item.song.ID)
			m.notice = ""
		}
		return m, nil

	case " ":
		m.queue.TogglePause()
		return m, nil

	case "n":
		m.queue.Next()
		return m, nil

	case "p":
		m.queue.Previous()
		return m, nil

	case "f":
		if item, ok := m.selected(); ok {
			return m, m.toggleFavorite(item.song.ID)
		}
		return m, nil

	case "v":
		m.cycleView()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) selected() (songItem, bool) {
	if !m.ready {
		return songItem{}, false
	}
	item, ok := m.songList.SelectedItem().(songItem)
	return item, ok
}

// visible returns the songs currently shown under the active filter.
func (m *Model) visible() []models.Song {
	return catalog.Apply(m.songs, m.filter, m.currentFavorites())
}

func (m *Model) currentFavorites() []models.ID {
	if user := m.store.Current(session.SlotUser); user != nil {
		return user.Favorites
	}
	return nil
}

func (m *Model) cycleView() {
	for i, kind := range viewCycle {
		if m.filter.Kind == kind {
			m.filter.Kind = viewCycle[(i+1)%len(viewCycle)]
			m.rebuildList()
			return
		}
	}
	m.filter.Kind = catalog.All
	m.rebuildList()
}

func (m *Model) rebuildList() {
	favs := m.currentFavorites()
	visible := catalog.Apply(m.songs, m.filter, favs)

	items := make([]list.Item, len(visible))
	for i, song := range visible {
		items[i] = songItem{song: song, favorited: models.ContainsID(favs, song.ID)}
	}

	m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.songList.Title = m.listTitle(len(visible))
	m.songList.SetSize(m.width-4, m.height-8)
	m.ready = true
}

func (m *Model) listTitle(count int) string {
	switch m.filter.Kind {
	case catalog.Favorites:
		return fmt.Sprintf("Favorites (%d)", count)
	default:
		return fmt.Sprintf("Catalog (%d)", count)
	}
}

func (m *Model) nowPlaying() string {
	current := m.queue.Current()
	if current == nil {
		return styles.help.Render("nothing playing")
	}

	state := "▶"
	if !m.queue.Playing() {
		state = "⏸"
	}
	return styles.title.Render(fmt.Sprintf("%s %s — %s", state, current.Title, current.Artist))
}

func (m *Model) fetchSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.client.Songs(m.ctx)
		return songsFetchedMsg{songs: songs, err: err}
	}
}

func (m *Model) toggleFavorite(songID models.ID) tea.Cmd {
	return func() tea.Msg {
		result, err := m.toggler.Toggle(m.ctx, songID)
		return toggleDoneMsg{songID: songID, result: result, err: err}
	}
}
