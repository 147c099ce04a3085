package core

import "time"

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a host hands the game when a run starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Steps per second; 0 means DefaultTickRate
	Seed     int64 // 0 lets the host pick a time-based seed
}

// Rate returns the tick rate, falling back to DefaultTickRate.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// StepDuration is the simulated time covered by one step.
func (c RuntimeConfig) StepDuration() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// GameState is the part of a game's state its host acts on.
type GameState struct {
	Score    int
	GameOver bool // The run has ended; hosts record it and offer a restart
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
