package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRealms loads Tree of Realms configuration.
// Search order: customPath -> ~/.arcade/configs/realms.yaml -> ./configs/realms.yaml -> embedded default
//
// Files only need to contain the keys they override; everything else keeps
// its default value.
func LoadRealms(customPath string) (RealmsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RealmsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRealms(data)
		if err != nil {
			return RealmsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("realms.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRealms(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "realms.yaml")); err == nil {
		if cfg, err := ParseRealms(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRealms(defaultRealmsYAML)
	if err != nil {
		return DefaultRealmsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRealms decodes YAML on top of the defaults and validates the result.
func ParseRealms(data []byte) (RealmsConfig, error) {
	cfg := DefaultRealmsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RealmsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RealmsConfig{}, err
	}
	return cfg, nil
}

// Validate reports every value that would make the simulation misbehave.
func (c RealmsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.GroundY > 0 && c.World.GroundY <= c.World.Height, "world: ground_y %v outside (0, %v]", c.World.GroundY, c.World.Height)
	check(c.World.Gravity >= 0, "world: gravity must not be negative")

	check(c.Player.Radius > 0, "player: radius must be positive")
	check(c.Player.MoveSpeed > 0, "player: move_speed must be positive")
	check(c.Player.JumpSpeed > 0, "player: jump_speed must be positive")
	check(c.Player.ClimbSpeed > 0, "player: climb_speed must be positive")
	check(c.Player.MaxHealth > 0, "player: max_health must be positive")

	check(c.Combat.MeleeRange > 0, "combat: melee_range must be positive")
	check(c.Combat.RangedCooldownMs >= 0, "combat: ranged_cooldown_ms must not be negative")
	check(c.Combat.ProjectileSpeed > 0, "combat: projectile_speed must be positive")
	check(c.Combat.ProjectileTTLMs > 0, "combat: projectile_ttl_ms must be positive")

	check(c.Minions.MinCount > 0, "minions: min_count must be positive")
	check(c.Minions.MinCount <= c.Minions.MaxCount, "minions: min_count %d > max_count %d", c.Minions.MinCount, c.Minions.MaxCount)
	check(c.Minions.SpawnMinX <= c.Minions.SpawnMaxX, "minions: spawn_min_x > spawn_max_x")
	check(c.Minions.WanderFrames > 0, "minions: wander_frames must be positive")
	check(c.Minions.DamageFrames > 0, "minions: damage_frames must be positive")
	check(c.Minions.HomingChance >= 0 && c.Minions.HomingChance <= 1, "minions: homing_chance %v outside [0, 1]", c.Minions.HomingChance)

	check(c.Levels.Count >= 1, "levels: count must be at least 1")
	check(c.Levels.TransitionMs >= 0, "levels: transition_ms must not be negative")
	check(c.Levels.MinPlatforms <= c.Levels.MaxPlatforms, "levels: min_platforms > max_platforms")
	check(c.Levels.PlatformMinW <= c.Levels.PlatformMaxW, "levels: platform_min_w > platform_max_w")
	check(c.Levels.PlatformMinY <= c.Levels.PlatformMaxY, "levels: platform_min_y > platform_max_y")
	check(c.Levels.MinStairs <= c.Levels.MaxStairs, "levels: min_stairs > max_stairs")

	switch c.Difficulty.Progression.Type {
	case "level", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRealmsPreset modifies the config based on a difficulty preset.
func ApplyRealmsPreset(cfg *RealmsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard realms hit more often
	switch preset {
	case DifficultyEasy:
		cfg.Minions.HomingChance = cfg.Minions.HomingChance / 2
	case DifficultyHard:
		cfg.Minions.DamageFrames = max(cfg.Minions.DamageFrames*3/4, 1)
	}
}
