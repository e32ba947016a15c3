package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/registry"
	"github.com/vovakirdan/eggshot/internal/storage"
)

// MenuItemKind says what selecting a menu entry does.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuScores
	MenuQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Label  string
	Best   int // best stored score for play entries
	Runs   int
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel lists a play entry per registered game, then the
// scoreboard and quit entries. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)

	var stats map[string]*storage.GameStats
	if store != nil {
		// A failed lookup only hides the per-game summary.
		stats, _ = store.GetAllGamesStats()
	}
	for _, g := range games {
		item := MenuItem{Kind: MenuPlay, GameID: g.ID, Label: "Play " + g.Title}
		if gs, ok := stats[g.ID]; ok {
			item.Best = gs.HighScore
			item.Runs = gs.GamesCount
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Kind: MenuScores, Label: "High Scores"},
		MenuItem{Kind: MenuQuit, Label: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuQuit {
			m.quitting = true
		}
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		for _, it := range m.items {
			if it.Kind == MenuScores {
				m.selected = &it
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("E G G   S H O T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("  o   O   @   ■  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Label
		if item.Kind == MenuPlay && item.Runs > 0 {
			line = fmt.Sprintf("%s  (best %d, %s)", item.Label, item.Best, plural(item.Runs, "run"))
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	sel := m.selected
	switch {
	case m.quitting || sel == nil:
		res.Quit = true
	case sel.Kind == MenuScores:
		res.WantsScoreboard = true
	default:
		res.GameID = sel.GameID
	}
	return res
}
