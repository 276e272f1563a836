package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/profile"
	"github.com/vovakirdan/parlor/internal/registry"
)

// AchievementsKeyMap defines the key bindings for the achievements screen.
type AchievementsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AchievementsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AchievementsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultAchievementsKeyMap returns default key bindings.
func DefaultAchievementsKeyMap() AchievementsKeyMap {
	return AchievementsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AchievementsModel lists one game's achievements and their progress.
type AchievementsModel struct {
	title     string
	entries   []achievement.Entry
	table     table.Model
	help      help.Model
	keys      AchievementsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// LoadAchievements returns the catalog of a game with the progress stored
// in its profile.
func LoadAchievements(store core.Storage, gameID string) ([]achievement.Entry, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	a, ok := game.(registry.Achiever)
	if !ok {
		return nil, nil
	}
	tracker, err := profile.New(store, profile.NamespaceFor(gameID)).Achievements(a.Achievements())
	if err != nil {
		logger.Warn("achievement progress reset", "game", gameID, "err", err)
	}
	return tracker.Entries(), nil
}

// NewAchievementsModel creates the achievements screen for a game.
func NewAchievementsModel(title string, entries []achievement.Entry, width, height int) AchievementsModel {
	h := help.New()
	h.ShowAll = false

	m := AchievementsModel{
		title:   title,
		entries: entries,
		help:    h,
		keys:    DefaultAchievementsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

func (m *AchievementsModel) createTable() table.Model {
	descWidth := max(m.width-4-10-22-10-8, 20)
	columns := []table.Column{
		{Title: "Status", Width: 10},
		{Title: "Name", Width: 22},
		{Title: "Description", Width: descWidth},
		{Title: "Progress", Width: 10},
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		status := "locked"
		if e.Unlocked {
			status = "UNLOCKED"
		}
		rows[i] = table.Row{status, e.Name, e.Description, e.Progress()}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	t.SetStyles(tableStyles())
	return t
}

// Unlocked returns how many achievements are unlocked.
func (m AchievementsModel) Unlocked() int {
	n := 0
	for _, e := range m.entries {
		if e.Unlocked {
			n++
		}
	}
	return n
}

// Init initializes the model.
func (m AchievementsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AchievementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the achievements screen.
func (m AchievementsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("ACHIEVEMENTS - %s (%d/%d)", m.title, m.Unlocked(), len(m.entries))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.entries) == 0 {
		b.WriteString(boxStyle.Render("This game has no achievements."))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m AchievementsModel) IsGoingBack() bool {
	return m.goingBack
}

// RunAchievements shows a game's achievements.
// Returns true if user wants to go back to menu, false if quitting.
func RunAchievements(store core.Storage, gameID string, width, height int) (goBack bool, err error) {
	entries, err := LoadAchievements(store, gameID)
	if err != nil {
		return false, err
	}
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	p := tea.NewProgram(
		NewAchievementsModel(title, entries, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(AchievementsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
