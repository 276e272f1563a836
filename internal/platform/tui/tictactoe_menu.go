package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/games/tictactoe"
)

// TicTacToeSelection holds the user's selection from the Tic-Tac-Toe menu.
type TicTacToeSelection struct {
	Mode  tictactoe.Mode
	Human tictactoe.Cell // AI mode only
}

// GameID returns the registry ID for the selected mode.
func (s TicTacToeSelection) GameID() string {
	if s.Mode == tictactoe.ModeAI {
		return "tictactoe_ai"
	}
	return "tictactoe"
}

// TicTacToeModeModel lets users choose an opponent and, against the
// computer, a symbol.
type TicTacToeModeModel struct {
	cursor         int
	symbolCursor   int
	inSymbolSelect bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      TicTacToeSelection
	choosing       bool
	quitting       bool
	back           bool
}

// NewTicTacToeModeModel creates a new Tic-Tac-Toe mode selection model.
func NewTicTacToeModeModel(width, height int) TicTacToeModeModel {
	return TicTacToeModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TicTacToeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TicTacToeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inSymbolSelect {
			return m.handleSymbolSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TicTacToeModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Friend, Computer
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 {
			m.choosing = false
			m.selection = TicTacToeSelection{Mode: tictactoe.ModeFriend}
			return m, tea.Quit
		}
		m.inSymbolSelect = true
		m.symbolCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TicTacToeModeModel) handleSymbolSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		m.symbolCursor = 0
	case MenuActionDown, MenuActionRight:
		m.symbolCursor = 1
	case MenuActionSelect:
		human := tictactoe.X
		if m.symbolCursor == 1 {
			human = tictactoe.O
		}
		m.choosing = false
		m.selection = TicTacToeSelection{Mode: tictactoe.ModeAI, Human: human}
		return m, tea.Quit
	case MenuActionBack:
		m.inSymbolSelect = false
	}

	return m, nil
}

// View renders the selection.
func (m TicTacToeModeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I C - T A C - T O E", m.width))
	b.WriteString("\n\n")

	title := "Choose your opponent:"
	options := []string{"Play with a friend", "Play against the computer"}
	cursor := m.cursor
	if m.inSymbolSelect {
		title = "Choose your symbol:"
		options = []string{"Play as X (you start)", "Play as O (computer starts)"}
		cursor = m.symbolCursor
	}

	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	for i, opt := range options {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-28s", marker, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TicTacToeModeModel) Selected() *TicTacToeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m TicTacToeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TicTacToeModeModel) WantsBack() bool {
	return m.back
}

// RunTicTacToeModeSelector runs the Tic-Tac-Toe selection.
func RunTicTacToeModeSelector(cfg core.RuntimeConfig) (*TicTacToeSelection, core.RuntimeConfig, error) {
	model := NewTicTacToeModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(TicTacToeModeModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
