package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/run"
)

// MenuItem is one entry of the title menu.
type MenuItem struct {
	Title    string
	Code     run.ReturnCode
	Disabled bool
}

// TitleItems returns the title menu entries. Continue is greyed out when
// there is no saved run.
func TitleItems(hasSave bool) []MenuItem {
	return []MenuItem{
		{Title: "Play", Code: run.Play},
		{Title: "Continue", Code: run.Load, Disabled: !hasSave},
		{Title: "High Scores", Code: run.HighScores},
		{Title: "Settings", Code: run.Custom},
		{Title: "Exit", Code: run.Exit},
	}
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	highScore int
	keyMapper *KeyMapper
	selected  run.ReturnCode
	chosen    bool
}

// NewMenuModel creates a new title menu model.
func NewMenuModel(items []MenuItem, highScore, width, height int) MenuModel {
	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		highScore: highScore,
		keyMapper: NewKeyMapper(),
		selected:  run.Exit,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.selected, m.chosen = run.Exit, true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = m.step(-1)

	case MenuActionDown:
		m.cursor = m.step(1)

	case MenuActionSelect:
		if len(m.items) > 0 && !m.items[m.cursor].Disabled {
			m.selected, m.chosen = m.items[m.cursor].Code, true
			return m, tea.Quit
		}
	}

	return m, nil
}

// step moves the cursor by delta, skipping disabled entries.
func (m MenuModel) step(delta int) int {
	for i := m.cursor + delta; i >= 0 && i < len(m.items); i += delta {
		if !m.items[i].Disabled {
			return i
		}
	}
	return m.cursor
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S P A C E   I N V A D E R S  "), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		switch {
		case item.Disabled:
			line = disabledStyle.Render(line)
		case i == m.cursor:
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the return code chosen by the player. Quitting selects
// Exit.
func (m MenuModel) Selected() run.ReturnCode {
	return m.selected
}

// Size returns the current terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
// Width is measured in cells, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
