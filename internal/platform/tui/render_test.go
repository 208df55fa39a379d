package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

func TestViewportProject(t *testing.T) {
	v := Viewport{
		Field:       core.NewRect(1, 2, 69, 41),
		WorldWidth:  690,
		WorldHeight: 820,
	}

	tests := []struct {
		name       string
		x, y, w, h int
		want       core.Rect
	}{
		{"origin", 0, 0, 10, 20, core.NewRect(1, 2, 1, 1)},
		{"ship", 332, 790, 26, 16, core.NewRect(34, 41, 2, 1)},
		{"boss", 265, 200, 100, 100, core.NewRect(27, 12, 10, 5)},
		{"bullet keeps one cell", 100, 100, 2, 6, core.NewRect(11, 7, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Project(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("Project(%d, %d, %d, %d) = %+v, want %+v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestDrawSpritesClipsToField(t *testing.T) {
	screen := core.NewScreen(12, 8)
	v := Viewport{
		Field:       core.NewRect(1, 1, 10, 6),
		WorldWidth:  100,
		WorldHeight: 60,
	}

	v.DrawSprites(screen, []entity.DrawRequest{
		{Sprite: entity.SpriteShip, X: 0, Y: 50, Width: 20, Height: 10, Color: core.ColorGreen},
		{Sprite: entity.SpriteEnemyA1, X: 95, Y: 0, Width: 30, Height: 10},
	})

	if got := screen.Get(1, 6); got != Glyph(entity.SpriteShip) {
		t.Errorf("ship cell = %q, want %q", got, Glyph(entity.SpriteShip))
	}
	if c := screen.GetCell(2, 6); c.Color != core.ColorGreen {
		t.Errorf("ship colour = %v, want green", c.Color)
	}
	if got := screen.Get(10, 1); got != Glyph(entity.SpriteEnemyA1) {
		t.Errorf("enemy cell = %q, want %q", got, Glyph(entity.SpriteEnemyA1))
	}
	if got := screen.Get(11, 1); got != ' ' {
		t.Errorf("cell outside the field = %q, want blank", got)
	}
}

func TestGlyphUnknown(t *testing.T) {
	if got := Glyph(entity.SpriteTag(-1)); got != '?' {
		t.Errorf("Glyph(unknown) = %q, want '?'", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second},
		{-5, time.Second},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestShipDesign(t *testing.T) {
	tests := []struct {
		design     ShipDesign
		name       string
		glyph      rune
		next, prev ShipDesign
	}{
		{ShipArrow, "Arrow", '▲', ShipDiamond, ShipBlock},
		{ShipDiamond, "Diamond", '◆', ShipBlock, ShipArrow},
		{ShipBlock, "Block", '■', ShipArrow, ShipDiamond},
		{ShipDesign(42), "Arrow", '▲', ShipDiamond, ShipBlock},
	}
	for _, tt := range tests {
		if got := tt.design.String(); got != tt.name {
			t.Errorf("ShipDesign(%d).String() = %q, want %q", tt.design, got, tt.name)
		}
		if got := tt.design.Glyph(); got != tt.glyph {
			t.Errorf("ShipDesign(%d).Glyph() = %q, want %q", tt.design, got, tt.glyph)
		}
		if got := tt.design.Next(); got != tt.next {
			t.Errorf("ShipDesign(%d).Next() = %v, want %v", tt.design, got, tt.next)
		}
		if got := tt.design.Prev(); got != tt.prev {
			t.Errorf("ShipDesign(%d).Prev() = %v, want %v", tt.design, got, tt.prev)
		}
	}
}

func TestDrawSpritesShipDesign(t *testing.T) {
	screen := core.NewScreen(12, 8)
	v := Viewport{
		Field:       core.NewRect(1, 1, 10, 6),
		WorldWidth:  100,
		WorldHeight: 60,
		Ship:        ShipBlock,
	}
	v.DrawSprites(screen, []entity.DrawRequest{
		{Sprite: entity.SpriteShip, X: 0, Y: 50, Width: 20, Height: 10},
		{Sprite: entity.SpriteShipDestroyed, X: 50, Y: 50, Width: 10, Height: 10},
	})
	if got := screen.Get(1, 6); got != '■' {
		t.Errorf("ship cell = %q, want '■'", got)
	}
	if got := screen.Get(6, 6); got != Glyph(entity.SpriteShipDestroyed) {
		t.Errorf("destroyed ship cell = %q, want %q", got, Glyph(entity.SpriteShipDestroyed))
	}
}
