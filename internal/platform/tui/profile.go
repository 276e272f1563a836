package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/profile"
	"github.com/vovakirdan/parlor/internal/registry"
)

// Profile screen rows.
const (
	profileRowName = iota
	profileRowSound
	profileRowVolume
	profileRows
)

var (
	profileLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	profileActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	profileNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	profileRowStyle    = lipgloss.NewStyle().Width(40)
)

// ProfileModel edits the player name, sound and volume of a game profile.
type ProfileModel struct {
	gameID    string
	profile   *profile.Profile
	tracker   *achievement.Tracker // nil for games without achievements
	name      textinput.Model
	row       int
	notice    string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProfileModel creates the profile screen for a game.
func NewProfileModel(store core.Storage, gameID string, width, height int) ProfileModel {
	p := profile.New(store, profile.NamespaceFor(gameID))

	ti := textinput.New()
	ti.Placeholder = profile.DefaultPlayerName
	ti.CharLimit = profile.MaxNameLength
	ti.Width = profile.MaxNameLength + 1
	ti.Prompt = ""
	ti.SetValue(p.PlayerName())
	ti.Focus()

	m := ProfileModel{
		gameID:  gameID,
		profile: p,
		name:    ti,
		width:   width,
		height:  height,
	}

	if game, err := registry.Create(gameID); err == nil {
		if a, ok := game.(registry.Achiever); ok {
			tracker, err := p.Achievements(a.Achievements())
			if err != nil {
				logger.Warn("achievement progress reset", "game", gameID, "err", err)
			}
			m.tracker = tracker
		}
	}

	return m
}

// Init starts the cursor blink.
func (m ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m ProfileModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.saveName()
		m.goingBack = true
		return m, tea.Quit
	case "up", "shift+tab":
		m.focus((m.row + profileRows - 1) % profileRows)
		return m, nil
	case "down", "tab":
		m.focus((m.row + 1) % profileRows)
		return m, nil
	}

	switch m.row {
	case profileRowName:
		if msg.Type == tea.KeyEnter {
			m.saveName()
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd

	case profileRowSound:
		switch msg.String() {
		case "enter", " ", "left", "right", "h", "l":
			m.toggleSound()
		case "q", "b":
			m.goingBack = true
			return m, tea.Quit
		}

	case profileRowVolume:
		switch msg.String() {
		case "left", "h", "-":
			m.adjustVolume(-profile.VolumeStep)
		case "right", "l", "+", "=":
			m.adjustVolume(profile.VolumeStep)
		case "q", "b":
			m.goingBack = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// focus moves the selection, storing the name when leaving its field.
func (m *ProfileModel) focus(row int) {
	if m.row == profileRowName && row != profileRowName {
		m.saveName()
		m.name.Blur()
	}
	if row == profileRowName {
		m.name.Focus()
	}
	m.row = row
}

func (m *ProfileModel) saveName() {
	name, err := m.profile.SetPlayerName(m.name.Value())
	if err != nil {
		logger.Error("cannot store player name", "err", err)
		m.notice = "Name not saved"
		return
	}
	m.name.SetValue(name)
	m.notice = "Saved"
}

func (m *ProfileModel) toggleSound() {
	on, err := m.profile.ToggleSound()
	if err != nil {
		logger.Error("cannot store sound setting", "err", err)
		return
	}
	m.notice = "Sound off"
	if on {
		m.notice = "Sound on"
	}

	if m.tracker == nil {
		return
	}
	ev := core.Event{Kind: core.EventSoundToggled}
	if on {
		ev.Value = 1
	}
	for _, d := range m.tracker.Observe(ev) {
		logger.Info("achievement unlocked", "game", m.gameID, "id", d.ID)
		m.notice = "Achievement unlocked: " + d.Name
	}
	if err := m.profile.SaveAchievements(m.tracker); err != nil {
		logger.Error("cannot store achievements", "err", err)
	}
}

func (m *ProfileModel) adjustVolume(delta float64) {
	v, err := m.profile.AdjustVolume(delta)
	if err != nil {
		logger.Error("cannot store volume", "err", err)
		return
	}
	m.notice = fmt.Sprintf("Volume %d%%", int(v*100+0.5))
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("P R O F I L E", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%s  |  Best: %d", m.gameID, m.profile.BestScore()), m.width))
	b.WriteString("\n\n")

	sound := "off"
	if m.profile.SoundEnabled() {
		sound = "on"
	}
	volume := int(m.profile.Volume()*10 + 0.5)
	bar := fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", volume), strings.Repeat(".", 10-volume), volume*10)

	rows := []struct{ label, value string }{
		{"Name", m.name.View()},
		{"Sound", sound},
		{"Volume", bar},
	}
	for i, r := range rows {
		marker, style := "  ", profileLabelStyle
		if i == m.row {
			marker, style = "> ", profileActiveStyle
		}
		line := profileRowStyle.Render(marker + style.Render(fmt.Sprintf("%-8s", r.label)) + " " + r.value)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, profileNoticeStyle.Render(m.notice)))
		b.WriteString("\n")
	}
	b.WriteString(centerText("Up/Down: Field  |  Enter: Save/Toggle  |  Left/Right: Adjust  |  Esc: Back", m.width))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProfileModel) IsGoingBack() bool {
	return m.goingBack
}

// RunProfile runs the profile editor for a game.
// Returns true if user wants to go back to menu, false if quitting.
func RunProfile(store core.Storage, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewProfileModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProfileModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
