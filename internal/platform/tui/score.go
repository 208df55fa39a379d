package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/run"
)

var (
	scoreLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	scoreValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	newBestStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	gameOverStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// ScoreModel shows the summary of a finished run.
type ScoreModel struct {
	state     run.GameState
	won       bool
	highScore int
	keyMapper *KeyMapper
	next      run.ReturnCode
	chosen    bool
	width     int
	height    int
}

// NewScoreModel creates the summary screen for state. won is true when the
// player cleared every level.
func NewScoreModel(state run.GameState, won bool, highScore, width, height int) ScoreModel {
	return ScoreModel{
		state:     state,
		won:       won,
		highScore: highScore,
		keyMapper: NewKeyMapper(),
		next:      run.MainMenu,
		width:     width,
		height:    height,
	}
}

// Init initializes the score model.
func (m ScoreModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the score screen.
func (m ScoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.next, m.chosen = run.Exit, true
			return m, tea.Quit
		case MenuActionSelect, MenuActionBack:
			m.next, m.chosen = run.MainMenu, true
			return m, tea.Quit
		case MenuActionRestart:
			m.next, m.chosen = run.Restart, true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the run summary.
func (m ScoreModel) View() string {
	if m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.won {
		b.WriteString(centerText(titleStyle.Render("ALL LEVELS CLEARED"), m.width))
	} else {
		b.WriteString(centerText(gameOverStyle.Render("GAME OVER"), m.width))
	}
	b.WriteString("\n\n")

	if m.state.Score > 0 && m.state.Score >= m.highScore {
		b.WriteString(centerText(newBestStyle.Render("NEW HIGH SCORE!"), m.width))
		b.WriteString("\n\n")
	}

	for _, row := range m.rows() {
		line := scoreLabelStyle.Render(row[0]) + scoreValueStyle.Render(row[1])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Main menu  |  R: Play again  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m ScoreModel) rows() [][2]string {
	st := m.state
	acc := 0.0
	if st.BulletsShot > 0 {
		acc = float64(st.ShipsDestroyed) / float64(st.BulletsShot) * 100
	}
	return [][2]string{
		{"Score", fmt.Sprintf("%d", st.Score)},
		{"Level reached", fmt.Sprintf("%d", st.Level)},
		{"Lives left", fmt.Sprintf("%d", max(st.LivesRemaining, 0))},
		{"Bullets shot", fmt.Sprintf("%d", st.BulletsShot)},
		{"Ships destroyed", fmt.Sprintf("%d", st.ShipsDestroyed)},
		{"Accuracy", fmt.Sprintf("%.1f%%", acc)},
		{"Ultimates used", fmt.Sprintf("%d", st.UltimateUses)},
		{"High score", fmt.Sprintf("%d", max(m.highScore, st.Score))},
	}
}

// Next returns the screen chosen by the player.
func (m ScoreModel) Next() run.ReturnCode {
	return m.next
}

// Size returns the current terminal size.
func (m ScoreModel) Size() (width, height int) {
	return m.width, m.height
}
