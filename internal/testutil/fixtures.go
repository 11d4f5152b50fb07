package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Fixtures holds raw game data shared by tests across packages.
var Fixtures = struct {
	// FightingIndex is a pool index.json listing four powers.
	FightingIndex map[string]any
	// Boxing is a melee attack with damage, stun protection and a stun mez.
	Boxing map[string]any
	// Tough is a toggle granting smashing/lethal resistance.
	Tough map[string]any
	// Weave is a toggle granting all-types defense.
	Weave map[string]any
}{
	FightingIndex: map[string]any{
		"display_name":        "Fighting",
		"display_help":        "Hand to hand combat.",
		"icon":                "fighting_set.png",
		"requires":            "",
		"available_level":     []int{3, 3, 13, 13},
		"power_names":         []string{"Pool.Fighting.Boxing", "Pool.Fighting.Kick", "Pool.Fighting.Tough", "Pool.Fighting.Weave"},
		"power_display_names": []string{"Boxing", "Kick", "Tough", "Weave"},
		"power_short_helps":   []string{"Melee, Moderate DMG(Smash)", "Melee, Moderate DMG(Smash)", "Toggle: Self +Res", "Toggle: Self +Def"},
	},
	Boxing: map[string]any{
		"display_name":          "Boxing",
		"display_help":          "Punch your foe.",
		"icon":                  "fighting_boxing.png",
		"type":                  "Click",
		"accuracy":              1.0,
		"range":                 7,
		"recharge_time":         4,
		"endurance_cost":        5.2,
		"activation_time":       1.0,
		"effect_area":           "SingleTarget",
		"max_boosts":            6,
		"boosts_allowed":        []string{"Enhance Damage", "Enhance Accuracy", "Enhance Stun", "Unknown Thing"},
		"allowed_boostset_cats": []string{"Melee Damage", "Stuns"},
		"effects": []map[string]any{
			{"templates": []map[string]any{
				{"attribs": []string{"Smashing_Dmg"}, "aspect": "Absolute", "scale": 1.0, "table": "Melee_Damage"},
				{"attribs": []string{"Stunned"}, "aspect": "Current", "magnitude": 2, "duration": "2 seconds"},
			}},
		},
	},
	Tough: map[string]any{
		"display_name": "Tough",
		"icon":         "fighting_tough.png",
		"type":         "Toggle",
		"effects": []map[string]any{
			{"templates": []map[string]any{
				{"attribs": []string{"Smashing_Dmg", "Lethal_Dmg"}, "aspect": "Resistance", "scale": 1.5, "table": "Melee_Res_Dmg"},
			}},
		},
	},
	Weave: map[string]any{
		"display_name": "Weave",
		"icon":         "fighting_weave.png",
		"type":         "Toggle",
		"effects": []map[string]any{
			{"templates": []map[string]any{
				{"attribs": []string{"Base_Defense"}, "aspect": "Defense", "scale": 0.75, "table": "Melee_Buff_Def"},
			}},
		},
	},
}

// WriteJSON marshals v into path, creating parent directories.
func WriteJSON(tb testing.TB, path string, v any) {
	tb.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		tb.Fatalf("encoding %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
}

// WriteFightingPool lays out <rawRoot>/pool/fighting with the fixture index
// and every power except Kick, whose file is left missing on purpose.
// Returns the pool directory.
func WriteFightingPool(tb testing.TB, rawRoot string) string {
	tb.Helper()

	dir := filepath.Join(rawRoot, "pool", "fighting")
	WriteJSON(tb, filepath.Join(dir, "index.json"), Fixtures.FightingIndex)
	WriteJSON(tb, filepath.Join(dir, "boxing.json"), Fixtures.Boxing)
	WriteJSON(tb, filepath.Join(dir, "tough.json"), Fixtures.Tough)
	WriteJSON(tb, filepath.Join(dir, "weave.json"), Fixtures.Weave)
	return dir
}
