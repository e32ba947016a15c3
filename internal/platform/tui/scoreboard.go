package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggshot/internal/registry"
	"github.com/vovakirdan/eggshot/internal/storage"
)

const scoreboardRows = 100

// Listing selects which scores the scoreboard shows.
type Listing int

const (
	ListingTop Listing = iota
	ListingRecent
)

func (l Listing) String() string {
	if l == ListingRecent {
		return "Recent"
	}
	return "Top"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Listing  key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Listing, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Listing},
		{k.PrevGame, k.NextGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Listing:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "top/recent")),
		NextGame: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists saved scores per game, either best first or newest first.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	listing    Listing
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

var scoreColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 7},
	{Title: "Eggs", Width: 5},
	{Title: "Golden", Width: 6},
	{Title: "Run", Width: 8},
	{Title: "Date", Width: 12},
}

// newScoreTable sizes the table to the terminal, widening the date column
// when there is room.
func newScoreTable(width, height int) table.Model {
	columns := append([]table.Column(nil), scoreColumns...)
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := width - 6 - used; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// GameID returns the game whose scores are shown, or "" when none is registered.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// Listing returns the current listing.
func (m ScoreboardModel) Listing() Listing {
	return m.listing
}

// reload fetches scores for the current game and listing.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if id := m.GameID(); id != "" && m.store != nil {
		var (
			scores []storage.ScoreEntry
			err    error
		)
		if m.listing == ListingRecent {
			scores, err = m.store.RecentScores(id, scoreboardRows)
		} else {
			scores, err = m.store.TopScores(id, scoreboardRows)
		}
		if err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = scoreRow(i+1, s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func scoreRow(rank int, s storage.ScoreEntry) table.Row {
	date := "-"
	if !s.CreatedAt.IsZero() {
		date = s.CreatedAt.Local().Format("Jan 02 15:04")
	}
	run := s.RunID
	if len(run) > 8 {
		run = run[:8]
	}
	return table.Row{
		strconv.Itoa(rank),
		strconv.Itoa(s.Score),
		strconv.Itoa(s.Eggs),
		strconv.Itoa(s.GoldenEggs),
		run,
		date,
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Listing):
			m.listing = 1 - m.listing
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(delta int) {
	if len(m.games) < 2 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

var (
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = dimStyle.Italic(true).Padding(2, 4).Render("No scores recorded yet.\nCollect some eggs to set a high score!")
	}
	b.WriteString(centerText(boxStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, 2)
	for _, l := range []Listing{ListingTop, ListingRecent} {
		if l == m.listing {
			parts = append(parts, activeTabStyle.Render(l.String()))
		} else {
			parts = append(parts, tabStyle.Render(l.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  %d eggs  |  %d golden",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalEggs, m.stats.GoldenEggs)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
