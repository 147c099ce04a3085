package sim

import (
	"fmt"
	"math"
	"testing"

	"github.com/vovakirdan/tree-of-realms/internal/config"
)

// shippedConfig is what a run gets with no config file and no preset.
func shippedConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := config.ParseRealms(config.GetDefaultYAML("realms"))
	if err != nil {
		t.Fatalf("ParseRealms(embedded) failed: %v", err)
	}
	return cfg
}

func TestShippedConfigKeepsMinionConstantsInEveryRealm(t *testing.T) {
	tests := []struct {
		level int
	}{
		{1}, {2}, {3}, {4}, {5},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("realm %d", tc.level), func(t *testing.T) {
			cfg := shippedConfig(t)
			mc := cfg.Minions
			if mc.WanderSpeed != 100 || mc.HomingSpeed != 50 || mc.HomingChance != 0.3 {
				t.Fatalf("minion movement = %v/%v/%v, expected 100/50/0.3",
					mc.WanderSpeed, mc.HomingSpeed, mc.HomingChance)
			}
			if mc.Damage != 5 || mc.DamageFrames != 60 {
				t.Fatalf("minion damage = %d every %d frames, expected 5 every 60", mc.Damage, mc.DamageFrames)
			}

			w := New(cfg, 7)
			w.Init(tc.level)
			if w.Level() != tc.level {
				t.Fatalf("level = %d, expected %d", w.Level(), tc.level)
			}

			homing, total := 0, 0
			for range 300 {
				w.updateMinionAI()
				for _, m := range w.reg.minions {
					switch math.Abs(m.VX) {
					case 100:
					case 50, 0:
						homing++
					default:
						t.Fatalf("minion %d VX = %v, expected +-100 or +-50", m.ID, m.VX)
					}
					total++
				}
			}
			if share := float64(homing) / float64(total); share < 0.25 || share > 0.35 {
				t.Errorf("homing share = %.3f over %d rolls, expected about 0.3", share, total)
			}

			p := w.Player()
			m := onlyMinionAt(w, p.X+10, p.Y)
			w.damageTick = 0
			steps, hits := 0, 0
			for hits == 0 && steps < 200 {
				m.X, m.Y = p.X+10, p.Y
				for _, e := range w.Step(Input{}, frame) {
					if e.Kind == EventPlayerHit {
						hits++
						if e.Damage != 5 {
							t.Errorf("damage = %d, expected 5", e.Damage)
						}
					}
				}
				steps++
			}
			if steps != 60 {
				t.Errorf("first hit after %d frames, expected 60", steps)
			}
			if w.Player().Health != 95 {
				t.Errorf("health = %d, expected 95", w.Player().Health)
			}
		})
	}
}
