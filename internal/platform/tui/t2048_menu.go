package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parlor/internal/core"
)

// T2048Mode represents the selected game mode.
type T2048Mode int

const (
	T2048ModeClassic T2048Mode = iota
	T2048ModeEndless
)

// T2048Selection holds the user's selection from the 2048 menu.
type T2048Selection struct {
	Mode   T2048Mode
	Resume bool // continue the stored game of that mode
}

// GameID returns the registry ID for the selected mode.
func (s T2048Selection) GameID() string {
	if s.Mode == T2048ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

type t2048Option struct {
	label     string
	selection T2048Selection
}

var t2048Options = []t2048Option{
	{"Continue classic", T2048Selection{Mode: T2048ModeClassic, Resume: true}},
	{"New classic game (reach 2048)", T2048Selection{Mode: T2048ModeClassic}},
	{"Continue endless", T2048Selection{Mode: T2048ModeEndless, Resume: true}},
	{"New endless game (no target)", T2048Selection{Mode: T2048ModeEndless}},
}

// T2048ModeModel lets users choose the 2048 mode and whether to resume.
type T2048ModeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection T2048Selection
	choosing  bool
	quitting  bool
	back      bool
}

// NewT2048ModeModel creates a new 2048 mode selection model.
func NewT2048ModeModel(width, height int) T2048ModeModel {
	return T2048ModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m T2048ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m T2048ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m T2048ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(t2048Options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = t2048Options[m.cursor].selection
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m T2048ModeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range t2048Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-30s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m T2048ModeModel) Selected() *T2048Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m T2048ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m T2048ModeModel) WantsBack() bool {
	return m.back
}

// RunT2048ModeSelector runs the 2048 mode selection and returns the selection.
func RunT2048ModeSelector(cfg core.RuntimeConfig) (*T2048Selection, core.RuntimeConfig, error) {
	model := NewT2048ModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(T2048ModeModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
