package effects

// EffectGroup is an ordered group of templates within a power.
type EffectGroup struct {
	Templates []Template
}

// Power is the engine view of one raw power descriptor.
type Power struct {
	Accuracy       float64
	Range          float64
	RechargeTime   float64
	EnduranceCost  float64
	ActivationTime float64
	EffectArea     string
	Radius         float64
	Arc            float64

	EffectGroups  []EffectGroup
	BoostsAllowed []string
}

// Aggregate builds the effect summary of a power.
//
// Scalars are copied only when non-zero: "no accuracy modifier" and "accuracy
// modifier of zero" are not distinguishable in the output. Radius and arc are
// copied only alongside an effect area and only when positive. Templates are
// folded in group order, then template order.
func Aggregate(p Power) Summary {
	var s Summary

	s.Accuracy = p.Accuracy
	s.Range = p.Range
	s.Recharge = p.RechargeTime
	s.Endurance = p.EnduranceCost
	s.ActivationTime = p.ActivationTime

	if p.EffectArea != "" {
		s.EffectArea = p.EffectArea
		if p.Radius > 0 {
			s.Radius = p.Radius
		}
		if p.Arc > 0 {
			s.Arc = p.Arc
		}
	}

	for _, group := range p.EffectGroups {
		for _, t := range group.Templates {
			Fold(&s, t)
		}
	}

	return s
}

// Convert is Aggregate plus MapEnhancements over the power's allowed boosts.
func Convert(p Power) (Summary, []string) {
	return Aggregate(p), MapEnhancements(p.BoostsAllowed)
}
