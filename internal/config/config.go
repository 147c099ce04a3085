// Package config provides YAML-based game configuration loading and
// difficulty management for Tree of Realms.
package config

// RealmsConfig contains all configuration for the Tree of Realms game.
// Distances are world units (the playfield is World.Width x World.Height),
// speeds are units per second and durations are milliseconds or frames.
type RealmsConfig struct {
	World      RealmsWorld      `yaml:"world" json:"world"`
	Player     RealmsPlayer     `yaml:"player" json:"player"`
	Combat     RealmsCombat     `yaml:"combat" json:"combat"`
	Minions    RealmsMinions    `yaml:"minions" json:"minions"`
	Levels     RealmsLevels     `yaml:"levels" json:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// RealmsWorld defines the playfield.
type RealmsWorld struct {
	Width   float64 `yaml:"width" json:"width"`
	Height  float64 `yaml:"height" json:"height"`
	Gravity float64 `yaml:"gravity" json:"gravity"`
	GroundY float64 `yaml:"ground_y" json:"ground_y"` // Top edge of the ground slab
}

// RealmsPlayer defines player movement and health.
type RealmsPlayer struct {
	SpawnX     float64 `yaml:"spawn_x" json:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y" json:"spawn_y"`
	Radius     float64 `yaml:"radius" json:"radius"`
	MoveSpeed  float64 `yaml:"move_speed" json:"move_speed"`
	JumpSpeed  float64 `yaml:"jump_speed" json:"jump_speed"`
	ClimbSpeed float64 `yaml:"climb_speed" json:"climb_speed"`
	MaxHealth  int     `yaml:"max_health" json:"max_health"`
}

// RealmsCombat defines melee and ranged attacks.
type RealmsCombat struct {
	MeleeRange       float64 `yaml:"melee_range" json:"melee_range"`
	RangedCooldownMs int     `yaml:"ranged_cooldown_ms" json:"ranged_cooldown_ms"`
	ProjectileSpeed  float64 `yaml:"projectile_speed" json:"projectile_speed"`
	ProjectileTTLMs  int     `yaml:"projectile_ttl_ms" json:"projectile_ttl_ms"`
	ProjectileRadius float64 `yaml:"projectile_radius" json:"projectile_radius"`
}

// RealmsMinions defines minion batches and behavior.
type RealmsMinions struct {
	MinCount     int     `yaml:"min_count" json:"min_count"`
	MaxCount     int     `yaml:"max_count" json:"max_count"`
	SpawnMinX    float64 `yaml:"spawn_min_x" json:"spawn_min_x"`
	SpawnMaxX    float64 `yaml:"spawn_max_x" json:"spawn_max_x"`
	Radius       float64 `yaml:"radius" json:"radius"`
	WanderSpeed  float64 `yaml:"wander_speed" json:"wander_speed"`
	WanderFrames int     `yaml:"wander_frames" json:"wander_frames"`
	HomingChance float64 `yaml:"homing_chance" json:"homing_chance"`
	HomingSpeed  float64 `yaml:"homing_speed" json:"homing_speed"`
	DamageRange  float64 `yaml:"damage_range" json:"damage_range"`
	Damage       int     `yaml:"damage" json:"damage"`
	DamageFrames int     `yaml:"damage_frames" json:"damage_frames"`
}

// RealmsLevels defines progression and level geometry generation.
type RealmsLevels struct {
	Count          int     `yaml:"count" json:"count"`
	TransitionMs   int     `yaml:"transition_ms" json:"transition_ms"`
	MinPlatforms   int     `yaml:"min_platforms" json:"min_platforms"`
	MaxPlatforms   int     `yaml:"max_platforms" json:"max_platforms"`
	PlatformMinW   float64 `yaml:"platform_min_w" json:"platform_min_w"`
	PlatformMaxW   float64 `yaml:"platform_max_w" json:"platform_max_w"`
	PlatformH      float64 `yaml:"platform_h" json:"platform_h"`
	PlatformMinY   float64 `yaml:"platform_min_y" json:"platform_min_y"`
	PlatformMaxY   float64 `yaml:"platform_max_y" json:"platform_max_y"`
	MaxTiltDeg     float64 `yaml:"max_tilt_deg" json:"max_tilt_deg"`
	MinStairs      int     `yaml:"min_stairs" json:"min_stairs"`
	MaxStairs      int     `yaml:"max_stairs" json:"max_stairs"`
	StairW         float64 `yaml:"stair_w" json:"stair_w"`
	StairH         float64 `yaml:"stair_h" json:"stair_h"`
	DoorX          float64 `yaml:"door_x" json:"door_x"`
	DoorY          float64 `yaml:"door_y" json:"door_y"`
	PointsPerKill  int     `yaml:"points_per_kill" json:"points_per_kill"`
	PointsPerLevel int     `yaml:"points_per_level" json:"points_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type" jsonschema:"enum=level,enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" json:"max_at"` // Level or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" json:"speed_multiplier"`   // Added to minion speed at max difficulty
	CountMultiplier  float64 `yaml:"count_multiplier" json:"count_multiplier"`   // Added to batch size at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier" json:"damage_multiplier"` // Added to minion damage at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
