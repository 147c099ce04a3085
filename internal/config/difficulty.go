package config

import "math"

// DifficultyManager calculates dynamic game parameters based on level reached or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// realm is the 1-based level number, ticks the frames since the run started.
func (d *DifficultyManager) Level(realm int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(realm-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns a speed scaled by the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, realm int, ticks int) float64 {
	level := d.Level(realm, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Damage returns the minion damage scaled by the current difficulty level.
func (d *DifficultyManager) Damage(baseDamage int, realm int, ticks int) int {
	level := d.Level(realm, ticks)
	return int(math.Round(float64(baseDamage) * (1.0 + level*d.cfg.Scaling.DamageMultiplier)))
}

// MinBatch returns the lower bound for a minion batch size.
// The bound rises toward maxCount with difficulty but never exceeds it.
func (d *DifficultyManager) MinBatch(minCount, maxCount int, realm int, ticks int) int {
	level := d.Level(realm, ticks)
	lift := int(level * d.cfg.Scaling.CountMultiplier * float64(maxCount-minCount))
	result := minCount + lift
	if result > maxCount {
		result = maxCount
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
