package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Minimum terminal size for the playfield.
const (
	minLevelWidth  = 30
	minLevelHeight = 12
)

// LevelModel is the Bubble Tea model running one level.
type LevelModel struct {
	level    *invaders.Level
	screen   *core.Screen
	keys     *KeyMapper
	holds    *HoldTracker
	input    core.InputFrame
	reqs     []entity.DrawRequest
	tick     uint64
	tickRate int
	design   ShipDesign
	width    int
	height   int
	quitting bool
	done     bool
}

// NewLevelModel creates a model driving level at tickRate frames per second.
func NewLevelModel(level *invaders.Level, width, height, tickRate int) LevelModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	return LevelModel{
		level:    level,
		screen:   core.NewScreen(width, height),
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(DefaultHoldFrames * tickRate / 60),
		input:    core.NewInputFrame(),
		tickRate: tickRate,
		width:    width,
		height:   height,
	}
}

// WithShipDesign returns the model drawing the player's ship as d.
func (m LevelModel) WithShipDesign(d ShipDesign) LevelModel {
	m.design = d
	return m
}

// Init starts the tick loop.
func (m LevelModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m LevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m LevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
		m.holds.Press(action, m.tick)
	}
	return m, nil
}

// handleTick advances the level by one frame.
func (m LevelModel) handleTick() (tea.Model, tea.Cmd) {
	if m.level.Phase() == invaders.PhasePaused {
		m.holds.Release()
	}
	m.holds.Apply(m.tick, &m.input)

	done := m.level.Step(m.input)
	m.input.Clear()
	m.tick++

	if done {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m LevelModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// render draws the HUD, the playfield and the footer into the screen buffer.
func (m *LevelModel) render() {
	m.screen.Clear()
	w, h := m.screen.Width(), m.screen.Height()
	if w < minLevelWidth || h < minLevelHeight {
		m.screen.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small (need %dx%d)", minLevelWidth, minLevelHeight))
		return
	}

	m.screen.DrawColorText(1, 0, m.hudLine(), core.ColorHUD)

	m.screen.DrawBox(core.NewRect(0, 1, w, h-2))
	worldW, worldH := m.level.World()
	view := Viewport{
		Field:       core.NewRect(1, 2, w-2, h-4),
		WorldWidth:  worldW,
		WorldHeight: worldH,
		Ship:        m.design,
	}
	m.reqs = m.level.Draw(m.reqs[:0])
	view.DrawSprites(m.screen, m.reqs)

	switch m.level.Phase() {
	case invaders.PhasePaused:
		m.screen.DrawTextCentered(h/2, " PAUSED ")
		m.screen.DrawTextCentered(h/2+1, " p: resume   b: main menu   r: restart level ")
	case invaders.PhaseEnding:
		m.screen.DrawTextCentered(h/2, " LEVEL CLEAR ")
	}

	m.screen.DrawColorText(1, h-1, "←/→ move  space fire  x bomb  u ultimate  p pause  q quit", core.ColorHint)
}

func (m *LevelModel) hudLine() string {
	st := m.level.State()
	var b strings.Builder
	fmt.Fprintf(&b, "LEVEL %d  SCORE %d  LIVES %s  BOMBS %d",
		st.Level, st.Score, strings.Repeat("♥", max(st.LivesRemaining, 0)), st.BombsRemaining)

	if left := m.level.UltimateRemaining(); left > 0 {
		fmt.Fprintf(&b, "  ULT %ds", left)
	} else {
		b.WriteString("  ULT ready")
	}
	if hp, ok := m.level.BossHealth(); ok {
		fmt.Fprintf(&b, "  BOSS %s", strings.Repeat("■", hp))
	}
	return b.String()
}

// saveScreenshot saves the current screen to a file.
func (m *LevelModel) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%d_%s.txt", m.level.State().Level, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// Level returns the level being played.
func (m LevelModel) Level() *invaders.Level {
	return m.level
}

// Done reports whether the level finished on its own.
func (m LevelModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the player asked to quit the program.
func (m LevelModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the current terminal size.
func (m LevelModel) Size() (width, height int) {
	return m.width, m.height
}
