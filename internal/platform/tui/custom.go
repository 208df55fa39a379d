package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/run"
)

// CustomKeyMap adds the ship design picker to the table keys.
type CustomKeyMap struct {
	ScoreboardKeyMap
	Prev key.Binding
	Next key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CustomKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CustomKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultCustomKeyMap returns default key bindings.
func DefaultCustomKeyMap() CustomKeyMap {
	return CustomKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev ship"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next ship"),
		),
		ScoreboardKeyMap: DefaultScoreboardKeyMap(),
	}
}

// CustomModel shows the rules of a run and the level table in effect, and
// lets the player pick the ship design.
type CustomModel struct {
	cfg      config.Config
	design   ShipDesign
	table    table.Model
	help     help.Model
	keys     CustomKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewCustomModel creates the settings screen for cfg with design selected.
func NewCustomModel(cfg config.Config, design ShipDesign, width, height int) CustomModel {
	m := CustomModel{
		cfg:    cfg,
		design: design.valid(),
		help:   help.New(),
		keys:   DefaultCustomKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m CustomModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 5},
		{Title: "Grid", Width: 7},
		{Title: "Speed", Width: 6},
		{Title: "Fire ms", Width: 9},
		{Title: "Kind", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(LevelRows(m.cfg.Levels)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-16, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// LevelRows formats the level table, one row per level starting at 1.
func LevelRows(levels []config.GameSettings) []table.Row {
	rows := make([]table.Row, len(levels))
	for i, s := range levels {
		kind := "-"
		switch {
		case s.Boss:
			kind = "boss"
		case s.Bonus:
			kind = "bonus"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%dx%d", s.FormationWidth, s.FormationHeight),
			fmt.Sprintf("%d", s.BaseSpeed),
			fmt.Sprintf("%d", s.ShootingFrequencyMs),
			kind,
		}
	}
	return rows
}

// Init initializes the settings model.
func (m CustomModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m CustomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.design = m.design.Prev()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.design = m.design.Next()
			return m, nil
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

// View renders the settings screen.
func (m CustomModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	r := m.cfg.Run
	rules := []string{
		fmt.Sprintf("Lives %d, extra life every %d levels", r.MaxLives, r.ExtraLifeFrequency),
		fmt.Sprintf("Bombs %d, ultimate cooldown %ds", r.Bombs, firstOr(r.SkillCooldowns, 0)),
		fmt.Sprintf("World %dx%d at %d fps", r.WorldWidth, r.WorldHeight, r.FPS),
	}
	for _, line := range rules {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	ship := fmt.Sprintf("Ship  < %s %c >", m.design, m.design.Glyph())
	b.WriteString(centerText(cursorStyle.Render(ship), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Edit "+config.FileName+" to change these values"), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Next returns where the player goes from here.
func (m CustomModel) Next() run.ReturnCode {
	if m.quitting {
		return run.Exit
	}
	return run.MainMenu
}

// Design returns the selected ship design.
func (m CustomModel) Design() ShipDesign {
	return m.design
}

// Size returns the current terminal size.
func (m CustomModel) Size() (width, height int) {
	return m.width, m.height
}

func firstOr(vals []int, def int) int {
	if len(vals) == 0 {
		return def
	}
	return vals[0]
}
