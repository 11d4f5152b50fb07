// Package effects normalizes raw power effect templates into a fixed schema of
// effect categories (damage, defense, resistance, healing, recovery,
// regeneration, movement and mez protection).
//
// Classification is pure and order-independent per template; merging into a
// Summary is order-dependent: most categories keep the first value observed,
// protection keeps the last. Callers must feed templates in source order.
package effects

// Aspects recognised by the classifier.
const (
	AspectAbsolute   = "Absolute"
	AspectDefense    = "Defense"
	AspectResistance = "Resistance"
	AspectCurrent    = "Current"
	AspectCur        = "Cur"
)

// Template is one raw effect entry inside an effect group.
type Template struct {
	Attribs   []string
	Aspect    string
	Scale     float64
	Table     string
	Duration  string
	Magnitude float64
}

// Classification is the outcome of classifying a single template.
// Category is CategoryNone when no rule matched.
type Classification struct {
	Category Category

	// Damage is set for CategoryDamage.
	Damage Damage
	// Keys holds resolved sub-keys for defense, resistance and protection,
	// in attribute order.
	Keys []string
	// Value is the scaled payload for every non-protection category.
	Value Scaled
	// Magnitude is the protection value.
	Magnitude float64
}

// Classify decides which category a template belongs to.
// Rules are checked in a fixed order and the first match wins, so a template
// lands in at most one category. Unknown aspects and attributes yield
// CategoryNone.
func Classify(t Template) Classification {
	attrs := ParseAttributes(t.Attribs)
	value := Scaled{Scale: t.Scale, Table: t.Table}

	switch {
	case t.Aspect == AspectAbsolute && anyKind(attrs, AttrDamage):
		// Only the first attribute carrying the marker names the type.
		var dmgType string
		for _, a := range attrs {
			if a.Kind.Has(AttrDamage) {
				dmgType = a.DamageType
				break
			}
		}
		return Classification{
			Category: CategoryDamage,
			Damage:   Damage{Type: dmgType, Scale: t.Scale, Table: t.Table},
			Value:    value,
		}

	case t.Aspect == AspectDefense || (t.Aspect == AspectCurrent && hasRaw(attrs, baseDefenseAttr)):
		c := Classification{Category: CategoryDefense, Value: value}
		for _, a := range attrs {
			if a.Kind.Has(AttrDefense) {
				c.Keys = append(c.Keys, a.DefenseKey)
			}
		}
		return c

	case t.Aspect == AspectResistance:
		c := Classification{Category: CategoryResistance, Value: value}
		for _, a := range attrs {
			if a.Kind.Has(AttrResistance) {
				c.Keys = append(c.Keys, a.ResistanceKey)
			}
		}
		return c

	case t.Aspect == AspectAbsolute && anyKind(attrs, AttrHealing):
		return Classification{Category: CategoryHealing, Value: value}

	case anyKind(attrs, AttrRecovery):
		return Classification{Category: CategoryRecovery, Value: value}

	case anyKind(attrs, AttrRegeneration):
		return Classification{Category: CategoryRegeneration, Value: value}

	case anyKind(attrs, AttrMovement):
		return Classification{Category: movementAxis(attrs), Value: value}

	case isCurrentAspect(t.Aspect) && t.Magnitude > 0:
		c := Classification{Category: CategoryProtection, Magnitude: t.Magnitude}
		for _, a := range attrs {
			if a.Kind.Has(AttrStatus) {
				c.Keys = append(c.Keys, a.StatusKey)
			}
		}
		if len(c.Keys) == 0 {
			return Classification{}
		}
		return c
	}

	return Classification{}
}

// Merge folds a classification into the summary.
//
// Damage and the single-record categories are first-wins. Defense and
// resistance are first-wins per sub-key. Protection is a plain assignment, so
// a later template overwrites an earlier one for the same status key.
func (s *Summary) Merge(c Classification) {
	switch c.Category {
	case CategoryNone:
		return

	case CategoryDamage:
		if s.Damage == nil {
			d := c.Damage
			s.Damage = &d
		}

	case CategoryDefense:
		s.Defense = mergeScaledKeys(s.Defense, c.Keys, c.Value)

	case CategoryResistance:
		s.Resistance = mergeScaledKeys(s.Resistance, c.Keys, c.Value)

	case CategoryProtection:
		for _, key := range c.Keys {
			if s.Protection == nil {
				s.Protection = make(map[string]float64, len(c.Keys))
			}
			s.Protection[key] = c.Magnitude
		}

	default:
		slot := s.single(c.Category)
		if slot != nil && *slot == nil {
			v := c.Value
			*slot = &v
		}
	}
}

// Fold classifies t and merges it into s, returning s.
func Fold(s *Summary, t Template) *Summary {
	s.Merge(Classify(t))
	return s
}

// mergeScaledKeys creates m even when keys is empty: a defense or resistance
// template with no known sub-key still marks the category present.
func mergeScaledKeys(m map[string]Scaled, keys []string, v Scaled) map[string]Scaled {
	if m == nil {
		m = make(map[string]Scaled, len(keys))
	}
	for _, key := range keys {
		if _, ok := m[key]; !ok {
			m[key] = v
		}
	}
	return m
}

func movementAxis(attrs []Attribute) Category {
	for _, axis := range movementAxes {
		for _, a := range attrs {
			if a.Kind.Has(AttrMovement) && a.Axis == axis.category {
				return axis.category
			}
		}
	}
	return CategoryNone
}

func anyKind(attrs []Attribute, kind AttributeKind) bool {
	for _, a := range attrs {
		if a.Kind.Has(kind) {
			return true
		}
	}
	return false
}

func hasRaw(attrs []Attribute, raw string) bool {
	for _, a := range attrs {
		if a.Raw == raw {
			return true
		}
	}
	return false
}

func isCurrentAspect(aspect string) bool {
	return aspect == AspectCurrent || aspect == AspectCur
}
