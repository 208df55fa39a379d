package core

// RuntimeConfig describes the terminal a session runs on and how its
// simulation is paced and seeded.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 for a random run
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second with a random seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// LevelSeed derives the seed for one level so every level of a seeded run
// plays differently but reproducibly. It returns 0 when the run is not
// seeded.
func (c RuntimeConfig) LevelSeed(level int) int64 {
	if c.Seed == 0 {
		return 0
	}
	return c.Seed + int64(level)
}
