package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// colorStyles holds one lipgloss style per core.Color, built from the
// color's ANSI code.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// spriteGlyphs is the fill rune for each sprite. Alternating animation
// frames use different runes so the motion shows up in a terminal.
var spriteGlyphs = map[entity.SpriteTag]rune{
	entity.SpriteShip:          '▲',
	entity.SpriteShipDestroyed: 'x',
	entity.SpriteBullet:        '│',
	entity.SpriteEnemyBullet:   '¦',
	entity.SpriteEnemyA1:       'ж',
	entity.SpriteEnemyA2:       'Ж',
	entity.SpriteEnemyB1:       'ѫ',
	entity.SpriteEnemyB2:       'Ѫ',
	entity.SpriteEnemyC1:       'ѧ',
	entity.SpriteEnemyC2:       'Ѧ',
	entity.SpriteExplosion:     '*',
	entity.SpriteBoss1:         '█',
	entity.SpriteBoss2:         '▓',
	entity.SpriteBoss3:         '█',
	entity.SpriteBoss4:         '▒',
	entity.SpriteBossHpLow1:    '▓',
	entity.SpriteBossHpLow2:    '░',
	entity.SpriteBossDestroyed: '·',
	entity.SpriteItem1:         '1',
	entity.SpriteItem2:         '2',
	entity.SpriteItem3:         '3',
	entity.SpriteItemNeutral:   '+',
}

// Glyph returns the rune drawn for a sprite.
func Glyph(t entity.SpriteTag) rune {
	if r, ok := spriteGlyphs[t]; ok {
		return r
	}
	return '?'
}

// ShipDesign selects how the player's ship is drawn. It is picked on the
// settings screen and kept for every level after that.
type ShipDesign int

// Ship designs, in the order the settings screen cycles through them.
const (
	ShipArrow ShipDesign = iota
	ShipDiamond
	ShipBlock
	numShipDesigns
)

var shipDesigns = [numShipDesigns]struct {
	name  string
	glyph rune
}{
	ShipArrow:   {"Arrow", '▲'},
	ShipDiamond: {"Diamond", '◆'},
	ShipBlock:   {"Block", '■'},
}

func (d ShipDesign) valid() ShipDesign {
	if d < 0 || d >= numShipDesigns {
		return ShipArrow
	}
	return d
}

// String returns the display name of the design.
func (d ShipDesign) String() string {
	return shipDesigns[d.valid()].name
}

// Glyph returns the rune the ship is drawn with.
func (d ShipDesign) Glyph() rune {
	return shipDesigns[d.valid()].glyph
}

// Next returns the following design, wrapping around.
func (d ShipDesign) Next() ShipDesign {
	return (d.valid() + 1) % numShipDesigns
}

// Prev returns the previous design, wrapping around.
func (d ShipDesign) Prev() ShipDesign {
	return (d.valid() + numShipDesigns - 1) % numShipDesigns
}

// Viewport projects world coordinates onto a rectangle of terminal cells.
type Viewport struct {
	Field       core.Rect // cells available to the playfield
	WorldWidth  int
	WorldHeight int
	Ship        ShipDesign
}

// Project maps a world-space box to cells. Every visible entity covers at
// least one cell.
func (v Viewport) Project(x, y, w, h int) core.Rect {
	cx := v.Field.X + core.Scale(x, v.WorldWidth, v.Field.W)
	cy := v.Field.Y + core.Scale(y, v.WorldHeight, v.Field.H)
	cw := max(1, core.Scale(w, v.WorldWidth, v.Field.W))
	ch := max(1, core.Scale(h, v.WorldHeight, v.Field.H))
	return core.NewRect(cx, cy, cw, ch)
}

// DrawSprites paints draw requests into dst, clipped to the field.
func (v Viewport) DrawSprites(dst *core.Screen, reqs []entity.DrawRequest) {
	for _, r := range reqs {
		box := v.Project(r.X, r.Y, r.Width, r.Height)
		cell := core.Cell{Rune: Glyph(r.Sprite), Color: r.Color}
		if r.Sprite == entity.SpriteShip {
			cell.Rune = v.Ship.Glyph()
		}
		for y := box.Y; y < box.Bottom(); y++ {
			for x := box.X; x < box.Right(); x++ {
				if v.Field.Contains(x, y) {
					dst.SetCell(x, y, cell)
				}
			}
		}
	}
}
