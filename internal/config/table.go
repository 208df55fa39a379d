package config

import (
	"errors"
	"fmt"
)

// Configuration errors. They are reported at startup, never mid-run.
var (
	ErrEmptyTable      = errors.New("config: difficulty table is empty")
	ErrLevelOutOfRange = errors.New("config: level out of range")
	ErrInvalidSettings = errors.New("config: invalid settings")
)

// Table is the read-only, 1-indexed per-level difficulty lookup.
type Table struct {
	levels []GameSettings
}

// NewTable copies levels into a table.
func NewTable(levels []GameSettings) Table {
	return Table{levels: append([]GameSettings(nil), levels...)}
}

// Len returns the number of levels.
func (t Table) Len() int {
	return len(t.levels)
}

// SettingsFor returns the settings of a 1-based level number.
func (t Table) SettingsFor(level int) (GameSettings, error) {
	if level < 1 || level > len(t.levels) {
		return GameSettings{}, fmt.Errorf("%w: %d not in 1..%d", ErrLevelOutOfRange, level, len(t.levels))
	}
	return t.levels[level-1], nil
}

// Levels returns a copy of every level, in play order.
func (t Table) Levels() []GameSettings {
	return append([]GameSettings(nil), t.levels...)
}

// Validate checks the table covers levels 1..numLevels with usable values.
func (t Table) Validate(numLevels int) error {
	if len(t.levels) == 0 {
		return ErrEmptyTable
	}
	if len(t.levels) < numLevels {
		return fmt.Errorf("%w: table has %d levels, run needs %d", ErrLevelOutOfRange, len(t.levels), numLevels)
	}
	for i, s := range t.levels {
		if err := s.validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

func (s GameSettings) validate() error {
	switch {
	case s.FormationWidth <= 0 || s.FormationHeight <= 0:
		return fmt.Errorf("%w: formation %dx%d", ErrInvalidSettings, s.FormationWidth, s.FormationHeight)
	case s.BaseSpeed < 0:
		return fmt.Errorf("%w: base_speed %d", ErrInvalidSettings, s.BaseSpeed)
	case s.ShootingFrequencyMs <= 0:
		return fmt.Errorf("%w: shooting_frequency_ms %d", ErrInvalidSettings, s.ShootingFrequencyMs)
	}
	return nil
}

// Validate checks run rules and the level table.
func (c Config) Validate() error {
	r := c.Run
	switch {
	case r.MaxLives <= 0:
		return fmt.Errorf("%w: max_lives %d", ErrInvalidSettings, r.MaxLives)
	case r.ExtraLifeFrequency <= 0:
		return fmt.Errorf("%w: extra_life_frequency %d", ErrInvalidSettings, r.ExtraLifeFrequency)
	case r.WorldWidth <= 0 || r.WorldHeight <= 0:
		return fmt.Errorf("%w: world %dx%d", ErrInvalidSettings, r.WorldWidth, r.WorldHeight)
	case r.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidSettings, r.FPS)
	case r.Bombs < 0:
		return fmt.Errorf("%w: bombs %d", ErrInvalidSettings, r.Bombs)
	case len(r.SkillCooldowns) > 4:
		return fmt.Errorf("%w: %d skill cooldowns, at most 4", ErrInvalidSettings, len(r.SkillCooldowns))
	}
	return c.Table().Validate(len(c.Levels))
}
