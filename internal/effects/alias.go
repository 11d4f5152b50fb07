package effects

import (
	"slices"
	"strings"
	"unicode"
)

// Raw attribute markers.
const (
	damageMarker       = "_Dmg"
	healMarker         = "Heal"
	hitPointsMarker    = "HitPoints"
	baseDefenseAttr    = "Base_Defense"
	recoveryAttr       = "Recovery"
	regenerationAttr   = "Regeneration"
	allTypesKey        = "all"
	negativeEnergyType = "negative_energy"
)

// defenseTypes maps typed defense attributes to defense sub-keys.
var defenseTypes = map[string]string{
	"Smashing_Def":        "smashing",
	"Lethal_Def":          "lethal",
	"Fire_Def":            "fire",
	"Cold_Def":            "cold",
	"Energy_Def":          "energy",
	"Negative_Energy_Def": "negative",
	"Psionic_Def":         "psionic",
	"Toxic_Def":           "toxic",
}

// resistanceTypes maps typed damage attributes to resistance sub-keys.
var resistanceTypes = map[string]string{
	"Smashing_Dmg":        "smashing",
	"Lethal_Dmg":          "lethal",
	"Fire_Dmg":            "fire",
	"Cold_Dmg":            "cold",
	"Energy_Dmg":          "energy",
	"Negative_Energy_Dmg": "negative",
	"Psionic_Dmg":         "psionic",
	"Toxic_Dmg":           "toxic",
}

// statusTypes maps mez attributes to protection keys.
var statusTypes = map[string]string{
	"Held":        "hold",
	"Stunned":     "stun",
	"Sleep":       "sleep",
	"Immobilized": "immobilize",
	"Terrorized":  "fear",
	"Confused":    "confuse",
	"Knockback":   "knockback",
	"Knockup":     "knockup",
	"Repel":       "repel",
}

// movementAxes lists the accepted spellings per axis.
// Slice order is the axis priority when a template names several axes.
var movementAxes = []struct {
	category  Category
	spellings []string
}{
	{CategoryRunSpeed, []string{"RunningSpeed", "SpeedRunning"}},
	{CategoryFlySpeed, []string{"FlyingSpeed", "SpeedFlying"}},
	{CategoryJumpSpeed, []string{"JumpingSpeed", "JumpSpeed"}},
	{CategoryJumpHeight, []string{"JumpHeight"}},
}

// LookupDefense resolves a defense attribute to its sub-key, including the
// generic all-types marker.
func LookupDefense(attr string) (string, bool) {
	if attr == baseDefenseAttr {
		return allTypesKey, true
	}
	key, ok := defenseTypes[attr]
	return key, ok
}

// LookupResistance resolves a typed damage attribute to its resistance sub-key.
func LookupResistance(attr string) (string, bool) {
	key, ok := resistanceTypes[attr]
	return key, ok
}

// LookupStatus resolves a mez attribute to its protection key.
func LookupStatus(attr string) (string, bool) {
	key, ok := statusTypes[attr]
	return key, ok
}

// LookupMovement resolves a movement attribute to its axis category.
func LookupMovement(attr string) (Category, bool) {
	for _, axis := range movementAxes {
		if slices.Contains(axis.spellings, attr) {
			return axis.category, true
		}
	}
	return CategoryNone, false
}

// AttributeKind tags what a raw attribute identifier denotes.
type AttributeKind uint16

const (
	AttrDamage AttributeKind = 1 << iota
	AttrDefense
	AttrResistance
	AttrStatus
	AttrMovement
	AttrHealing
	AttrRecovery
	AttrRegeneration

	AttrUnrecognized AttributeKind = 0
)

// Has reports whether k carries every bit of other.
func (k AttributeKind) Has(other AttributeKind) bool {
	return other != 0 && k&other == other
}

// Attribute is a raw attribute identifier parsed once against the alias tables.
// A raw identifier can carry several readings (Fire_Dmg is both a damage type
// and a resistance type); the aspect decides which one applies.
type Attribute struct {
	Raw  string
	Kind AttributeKind

	DamageType    string   // title-cased display type, set with AttrDamage
	DefenseKey    string   // set with AttrDefense
	ResistanceKey string   // set with AttrResistance
	StatusKey     string   // set with AttrStatus
	Axis          Category // set with AttrMovement
}

// ParseAttribute tags a raw attribute identifier. Unknown identifiers come back
// with Kind == AttrUnrecognized.
func ParseAttribute(raw string) Attribute {
	a := Attribute{Raw: raw}

	if strings.Contains(raw, damageMarker) {
		a.Kind |= AttrDamage
		a.DamageType = damageDisplayType(raw)
	}
	if key, ok := LookupDefense(raw); ok {
		a.Kind |= AttrDefense
		a.DefenseKey = key
	}
	if key, ok := LookupResistance(raw); ok {
		a.Kind |= AttrResistance
		a.ResistanceKey = key
	}
	if key, ok := LookupStatus(raw); ok {
		a.Kind |= AttrStatus
		a.StatusKey = key
	}
	if axis, ok := LookupMovement(raw); ok {
		a.Kind |= AttrMovement
		a.Axis = axis
	}
	if strings.Contains(raw, healMarker) || strings.Contains(raw, hitPointsMarker) {
		a.Kind |= AttrHealing
	}
	switch raw {
	case recoveryAttr:
		a.Kind |= AttrRecovery
	case regenerationAttr:
		a.Kind |= AttrRegeneration
	}

	return a
}

// ParseAttributes parses a template's attribute list preserving order.
func ParseAttributes(raw []string) []Attribute {
	attrs := make([]Attribute, len(raw))
	for i, r := range raw {
		attrs[i] = ParseAttribute(r)
	}
	return attrs
}

// damageDisplayType strips the damage marker, lower-cases and title-cases.
//
//	"Fire_Dmg"            → "Fire"
//	"Negative_Energy_Dmg" → "Negative"
//	"Special_Dmg"         → "Special"
func damageDisplayType(attr string) string {
	typ := strings.ToLower(strings.ReplaceAll(attr, damageMarker, ""))
	if typ == negativeEnergyType {
		typ = "negative"
	}
	return titleCase(typ)
}

// titleCase title-cases every letter that follows a non-letter and lower-cases
// the rest ("fire_cold" → "Fire_Cold", "énergie" → "Énergie").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToTitle(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
