package core

import "strconv"

// Color represents a foreground color for a screen cell.
type Color uint8

// Terminal colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette of the playfield. Sprites pick these rather than raw colors so
// the look of the game is decided in one place.
const (
	ColorPlayer     = ColorGreen
	ColorPlayerShot = ColorBrightGreen
	ColorEnemyShot  = ColorRed
	ColorEnemyA     = ColorYellow
	ColorEnemyB     = ColorCyan
	ColorEnemyC     = ColorMagenta
	ColorBoss       = ColorWhite
	ColorItem       = ColorBrightBlue
	ColorExplosion  = ColorOrange
	ColorHUD        = ColorBrightWhite
	ColorHint       = ColorGray
)

// ansiCodes holds the ANSI 256-color code of every color but the default.
var ansiCodes = [...]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// ANSI returns the ANSI 256-color code as a string, or "" for the
// terminal's default color and unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
