package config

import (
	_ "embed"
)

//go:embed defaults/realms.yaml
var defaultRealmsYAML []byte

// DefaultRealmsConfig returns the default Tree of Realms configuration.
// It mirrors defaults/realms.yaml and is used when the embedded file cannot be parsed.
func DefaultRealmsConfig() RealmsConfig {
	return RealmsConfig{
		World: RealmsWorld{
			Width:   800,
			Height:  600,
			Gravity: 600,
			GroundY: 500,
		},
		Player: RealmsPlayer{
			SpawnX:     100,
			SpawnY:     480,
			Radius:     20,
			MoveSpeed:  200,
			JumpSpeed:  330,
			ClimbSpeed: 200,
			MaxHealth:  100,
		},
		Combat: RealmsCombat{
			MeleeRange:       50,
			RangedCooldownMs: 250,
			ProjectileSpeed:  400,
			ProjectileTTLMs:  1000,
			ProjectileRadius: 5,
		},
		Minions: RealmsMinions{
			MinCount:     10,
			MaxCount:     25,
			SpawnMinX:    200,
			SpawnMaxX:    700,
			Radius:       15,
			WanderSpeed:  100,
			WanderFrames: 60, // ~1s at 60Hz
			HomingChance: 0.3,
			HomingSpeed:  50,
			DamageRange:  30,
			Damage:       5,
			DamageFrames: 60,
		},
		Levels: RealmsLevels{
			Count:          5,
			TransitionMs:   2000,
			MinPlatforms:   4,
			MaxPlatforms:   7,
			PlatformMinW:   80,
			PlatformMaxW:   160,
			PlatformH:      16,
			PlatformMinY:   220,
			PlatformMaxY:   430,
			MaxTiltDeg:     8,
			MinStairs:      1,
			MaxStairs:      2,
			StairW:         30,
			StairH:         180,
			DoorX:          750,
			DoorY:          460,
			PointsPerKill:  10,
			PointsPerLevel: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				CountMultiplier:  0.6,
				DamageMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "realms":
		return defaultRealmsYAML
	default:
		return nil
	}
}
