package effects

// Category is a canonical effect bucket.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryDamage
	CategoryDefense
	CategoryResistance
	CategoryHealing
	CategoryRecovery
	CategoryRegeneration
	CategoryRunSpeed
	CategoryFlySpeed
	CategoryJumpSpeed
	CategoryJumpHeight
	CategoryProtection
)

var categoryKeys = [...]string{
	CategoryNone:         "",
	CategoryDamage:       "damage",
	CategoryDefense:      "defense",
	CategoryResistance:   "resistance",
	CategoryHealing:      "healing",
	CategoryRecovery:     "recovery",
	CategoryRegeneration: "regeneration",
	CategoryRunSpeed:     "runSpeed",
	CategoryFlySpeed:     "flySpeed",
	CategoryJumpSpeed:    "jumpSpeed",
	CategoryJumpHeight:   "jumpHeight",
	CategoryProtection:   "protection",
}

// String returns the summary key of the category.
func (c Category) String() string {
	if int(c) < len(categoryKeys) {
		return categoryKeys[c]
	}
	return ""
}

// Scaled is a magnitude resolved later against an external scaling table.
type Scaled struct {
	Scale float64 `json:"scale"`
	Table string  `json:"table"`
}

// Damage is the single damage entry of a power.
type Damage struct {
	Type  string  `json:"type"`
	Scale float64 `json:"scale"`
	Table string  `json:"table"`
}

// Summary is the canonical effect summary of one power.
// Zero scalars and nil categories are omitted from JSON: absence means
// "not specified", never zero. An empty defense or resistance map is kept.
type Summary struct {
	Accuracy       float64 `json:"accuracy,omitempty"`
	Range          float64 `json:"range,omitempty"`
	Recharge       float64 `json:"recharge,omitempty"`
	Endurance      float64 `json:"endurance,omitempty"`
	ActivationTime float64 `json:"activationTime,omitempty"`
	EffectArea     string  `json:"effectArea,omitempty"`
	Radius         float64 `json:"radius,omitempty"`
	Arc            float64 `json:"arc,omitempty"`

	Damage       *Damage            `json:"damage,omitempty"`
	Defense      map[string]Scaled  `json:"defense,omitzero"`
	Resistance   map[string]Scaled  `json:"resistance,omitzero"`
	Healing      *Scaled            `json:"healing,omitempty"`
	Recovery     *Scaled            `json:"recovery,omitempty"`
	Regeneration *Scaled            `json:"regeneration,omitempty"`
	RunSpeed     *Scaled            `json:"runSpeed,omitempty"`
	FlySpeed     *Scaled            `json:"flySpeed,omitempty"`
	JumpSpeed    *Scaled            `json:"jumpSpeed,omitempty"`
	JumpHeight   *Scaled            `json:"jumpHeight,omitempty"`
	Protection   map[string]float64 `json:"protection,omitempty"`
}

// Has reports whether the category is present in the summary.
func (s *Summary) Has(c Category) bool {
	switch c {
	case CategoryDamage:
		return s.Damage != nil
	case CategoryDefense:
		return s.Defense != nil
	case CategoryResistance:
		return s.Resistance != nil
	case CategoryProtection:
		return len(s.Protection) > 0
	case CategoryNone:
		return false
	}
	slot := s.single(c)
	return slot != nil && *slot != nil
}

// Categories lists the present categories in canonical order.
func (s *Summary) Categories() []Category {
	var out []Category
	for c := CategoryDamage; c <= CategoryProtection; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty reports whether neither a scalar nor a category is present.
func (s *Summary) IsEmpty() bool {
	return s.Accuracy == 0 && s.Range == 0 && s.Recharge == 0 && s.Endurance == 0 &&
		s.ActivationTime == 0 && s.EffectArea == "" && s.Radius == 0 && s.Arc == 0 &&
		len(s.Categories()) == 0
}

// single returns the slot of a single-record category, nil for map categories.
func (s *Summary) single(c Category) **Scaled {
	switch c {
	case CategoryHealing:
		return &s.Healing
	case CategoryRecovery:
		return &s.Recovery
	case CategoryRegeneration:
		return &s.Regeneration
	case CategoryRunSpeed:
		return &s.RunSpeed
	case CategoryFlySpeed:
		return &s.FlySpeed
	case CategoryJumpSpeed:
		return &s.JumpSpeed
	case CategoryJumpHeight:
		return &s.JumpHeight
	}
	return nil
}
