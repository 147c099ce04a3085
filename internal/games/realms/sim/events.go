package sim

import "fmt"

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventLevelCleared EventKind = iota + 1
	EventLevelStarted
	EventVictory
	EventPlayerDefeated
	EventPlayerHit
	EventMinionDefeated
	EventShotFired
	EventWeaponChanged
)

func (k EventKind) String() string {
	switch k {
	case EventLevelCleared:
		return "level_cleared"
	case EventLevelStarted:
		return "level_started"
	case EventVictory:
		return "victory"
	case EventPlayerDefeated:
		return "player_defeated"
	case EventPlayerHit:
		return "player_hit"
	case EventMinionDefeated:
		return "minion_defeated"
	case EventShotFired:
		return "shot_fired"
	case EventWeaponChanged:
		return "weapon_changed"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a notification produced by Step for the presentation layer.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Level  int    // Level counter after the event
	ID     int    // Minion or projectile id
	Damage int    // PlayerHit
	Health int    // PlayerHit, PlayerDefeated
	Weapon Weapon // WeaponChanged
	Cause  Weapon // MinionDefeated
}

func (e Event) String() string {
	switch e.Kind {
	case EventPlayerHit:
		return fmt.Sprintf("%s damage=%d health=%d", e.Kind, e.Damage, e.Health)
	case EventMinionDefeated:
		return fmt.Sprintf("%s id=%d by=%s", e.Kind, e.ID, e.Cause)
	case EventWeaponChanged:
		return fmt.Sprintf("%s weapon=%s", e.Kind, e.Weapon)
	default:
		return fmt.Sprintf("%s level=%d", e.Kind, e.Level)
	}
}
