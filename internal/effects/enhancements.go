package effects

// enhancementAliases maps the raw "boosts allowed" names to planner
// enhancement categories.
var enhancementAliases = map[string]string{
	"Enhance Damage":                 "Damage",
	"Enhance Accuracy":               "Accuracy",
	"Enhance Recharge Speed":         "Recharge",
	"Reduce Endurance Cost":          "EnduranceReduction",
	"Enhance Range":                  "Range",
	"Enhance Damage Resistance":      "Resistance",
	"Enhance Defense Buff":           "DefenseBuff",
	"Enhance Defense Debuff":         "DefenseDebuff",
	"Enhance Heal":                   "Heal",
	"Enhance Endurance Modification": "EnduranceModification",
	"Enhance ToHit Buff":             "ToHitBuff",
	"Enhance ToHit Debuff":           "ToHitDeb",
	"Enhance Hold":                   "Hold",
	"Enhance Stun":                   "Stun",
	"Enhance Immobilize":             "Immobilize",
	"Enhance Sleep":                  "Sleep",
	"Enhance Slow":                   "Slow",
	"Enhance Confuse":                "Confuse",
	"Enhance Fear":                   "Fear",
	"Enhance Fly":                    "Flight",
	"Enhance Jump":                   "Jump",
	"Enhance Run Speed":              "Run",
	"Enhance Knockback":              "Knockback",
	"Enhance Taunt":                  "Taunt",
	"Reduce Interrupt Time":          "InterruptReduction",
}

// LookupEnhancement returns the canonical key of a raw enhancement name.
func LookupEnhancement(raw string) (string, bool) {
	key, ok := enhancementAliases[raw]
	return key, ok
}

// MapEnhancements converts raw enhancement names preserving input order.
// Unknown names are dropped. The result is never nil.
func MapEnhancements(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if key, ok := enhancementAliases[name]; ok {
			out = append(out, key)
		}
	}
	return out
}
