package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/profile"
	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

// toastDuration is how long a status bar notice stays visible.
const toastDuration = 3 * time.Second

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the game and menu screens.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store // nil when scores cannot be recorded
	kv         core.Storage
	profile    *profile.Profile
	tracker    *achievement.Tracker // nil for games without achievements
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over

	best       int
	toast      string
	toastUntil time.Time

	dragging     bool
	dragX, dragY int
}

// NewModel creates a model for the given game, resets it and, when resume
// is set, restores its stored state.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var kv core.Storage = storage.NewMemory()
	if store != nil {
		kv = store
	}

	m := Model{
		game:       game,
		store:      store,
		kv:         kv,
		profile:    profile.New(kv, profile.NamespaceFor(game.ID())),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.best = m.profile.BestScore()

	if a, ok := game.(registry.Achiever); ok {
		tracker, err := m.profile.Achievements(a.Achievements())
		if err != nil {
			logger.Warn("achievement progress reset", "game", game.ID(), "err", err)
		}
		m.tracker = tracker
	}

	game.Reset(m.gameConfig())
	if p, ok := game.(registry.Persistent); ok && resume {
		if p.Restore(kv) {
			logger.Info("resumed saved game", "game", game.ID())
		}
	}
	m.gameState = game.State()
	m.scoreSaved = m.gameState.GameOver

	return m
}

// gameHeight is the screen height left to the game above the status bar.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-1, 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

func (m Model) textMode() bool {
	t, ok := m.game.(registry.TextEntry)
	return ok && t.AcceptsText()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.textMode()

	switch m.keyMapper.MapPlatformKey(msg, text) {
	case PlatformQuit:
		m.save()
		m.quitting = true
		return m, tea.Quit
	case PlatformScreenshot:
		m.saveScreenshot()
		return m, nil
	case PlatformRestart:
		m.restart()
		return m, nil
	case PlatformSoundToggle:
		m.toggleSound()
		return m, nil
	case PlatformVolumeUp:
		m.adjustVolume(profile.VolumeStep)
		return m, nil
	case PlatformVolumeDown:
		m.adjustVolume(-profile.VolumeStep)
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, text)
	return m, nil
}

// handleMouse turns a left-button drag into a swipe and a short press into
// a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if action, ok := core.Swipe(msg.X-m.dragX, msg.Y-m.dragY); ok {
			m.inputFrame.Set(action)
			return m, nil
		}
		if c, ok := m.game.(registry.Clicker); ok {
			m.applyEvents(c.Click(msg.X, msg.Y))
			m.gameState = m.game.State()
			m.save()
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, m.gameHeight())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame
	result := m.game.Step(frame)
	m.applyEvents(result.Events)

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordScore()
	case wasOver && !m.gameState.GameOver && !frame.Has(core.ActionUndo):
		// A new round started inside the game.
		m.scoreSaved = false
	}

	if !frame.Empty() || len(result.Events) > 0 {
		m.save()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart starts a fresh game with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.save()
	logger.Debug("game restarted", "game", m.game.ID())
}

// applyEvents feeds events to the achievement tracker and the best score.
func (m *Model) applyEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}

	for _, ev := range events {
		if ev.Kind == core.EventScore && ev.Value > m.best {
			best, err := m.profile.RecordScore(ev.Value)
			if err != nil {
				logger.Error("cannot store best score", "err", err)
				continue
			}
			m.best = best
		}
	}

	if m.tracker == nil {
		return
	}
	unlocked := m.tracker.ObserveAll(events)
	for _, d := range unlocked {
		logger.Info("achievement unlocked", "game", m.game.ID(), "id", d.ID)
		m.notify("Achievement unlocked: " + d.Name)
	}
	if err := m.profile.SaveAchievements(m.tracker); err != nil {
		logger.Error("cannot store achievements", "err", err)
	}
}

// recordScore saves a finished game's score once.
func (m *Model) recordScore() {
	m.scoreSaved = true
	score := m.gameState.Score
	if score <= 0 {
		return
	}

	best, err := m.profile.RecordScore(score)
	if err != nil {
		logger.Error("cannot store best score", "err", err)
	} else {
		m.best = best
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.profile.PlayerName(), score); err != nil {
		logger.Error("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	logger.Info("score saved", "game", m.game.ID(), "score", score)
}

func (m *Model) toggleSound() {
	on, err := m.profile.ToggleSound()
	if err != nil {
		logger.Error("cannot store sound setting", "err", err)
		return
	}
	ev := core.Event{Kind: core.EventSoundToggled}
	if on {
		ev.Value = 1
		m.notify("Sound on")
	} else {
		m.notify("Sound off")
	}
	// An unlock notice replaces the sound notice
	m.applyEvents([]core.Event{ev})
}

func (m *Model) adjustVolume(delta float64) {
	v, err := m.profile.AdjustVolume(delta)
	if err != nil {
		logger.Error("cannot store volume", "err", err)
		return
	}
	m.notify(fmt.Sprintf("Volume %d%%", int(v*100+0.5)))
}

func (m *Model) notify(text string) {
	m.toast = text
	m.toastUntil = time.Now().Add(toastDuration)
}

// save persists the game state when the game supports it.
func (m *Model) save() {
	p, ok := m.game.(registry.Persistent)
	if !ok {
		return
	}
	if err := p.Save(m.kv); err != nil {
		logger.Error("cannot save game", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".parlor", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Error("cannot write screenshot", "err", err)
		return
	}
	m.notify("Screenshot saved")
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
)

// statusBar renders the player line below the game.
func (m Model) statusBar() string {
	sound := "off"
	if m.profile.SoundEnabled() {
		sound = fmt.Sprintf("on %d%%", int(m.profile.Volume()*100+0.5))
	}
	left := fmt.Sprintf(" %s | Best: %d | Sound: %s ", m.profile.PlayerName(), m.best, sound)
	if u, ok := m.game.(registry.Undoer); ok && u.CanUndo() {
		left += "| Undo ready "
	}

	right := ""
	if m.toast != "" && time.Now().Before(m.toastUntil) {
		right = toastStyle.Render(" " + m.toast + " ")
	}

	gap := max(m.config.ScreenW-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return statusStyle.Render(left+fmt.Sprintf("%*s", gap, "")) + right
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// Run starts the Bubble Tea program for a game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool) error {
	model := NewModel(game, store, cfg, resume)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to swipe, click to select
	)

	_, err := p.Run()
	return err
}
