package effects

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_EndToEnd(t *testing.T) {
	p := Power{
		Accuracy: 1.0,
		EffectGroups: []EffectGroup{
			{Templates: []Template{
				{Aspect: AspectResistance, Attribs: []string{"Fire_Dmg"}, Scale: 0.3, Table: "Melee_Ones"},
			}},
			{Templates: []Template{
				{Aspect: AspectDefense, Attribs: []string{"Base_Defense"}, Scale: 0.15, Table: "Melee_Ones"},
			}},
		},
	}

	got, err := json.Marshal(Aggregate(p))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"accuracy": 1.0,
		"resistance": {"fire": {"scale": 0.3, "table": "Melee_Ones"}},
		"defense": {"all": {"scale": 0.15, "table": "Melee_Ones"}}
	}`, string(got))
}

func TestAggregate_NoEffectGroups(t *testing.T) {
	s := Aggregate(Power{})
	assert.True(t, s.IsEmpty())

	got, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

func TestAggregate_ZeroScalarsOmitted(t *testing.T) {
	s := Aggregate(Power{Accuracy: 0, Range: 80, RechargeTime: 0, EnduranceCost: 5.2, ActivationTime: 1.17})

	got, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"range": 80, "endurance": 5.2, "activationTime": 1.17}`, string(got))
}

func TestAggregate_EmptyDefenseAndResistanceKept(t *testing.T) {
	s := Aggregate(Power{EffectGroups: []EffectGroup{{Templates: []Template{
		{Aspect: AspectDefense, Attribs: []string{"Accuracy"}, Scale: 1, Table: "T"},
		{Aspect: AspectResistance, Attribs: []string{"Special_Dmg"}, Scale: 1, Table: "T"},
	}}}})

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"defense":{},"resistance":{}}`, string(out))
}

func TestAggregate_EffectArea(t *testing.T) {
	tests := []struct {
		name  string
		power Power
		want  Summary
	}{
		{
			name:  "cone keeps positive radius and arc",
			power: Power{EffectArea: "Cone", Radius: 40, Arc: 1.57},
			want:  Summary{EffectArea: "Cone", Radius: 40, Arc: 1.57},
		},
		{
			name:  "sphere drops non-positive arc",
			power: Power{EffectArea: "Sphere", Radius: 15, Arc: -1},
			want:  Summary{EffectArea: "Sphere", Radius: 15},
		},
		{
			name:  "radius ignored without effect area",
			power: Power{Radius: 15, Arc: 2},
			want:  Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Aggregate(tt.power)); diff != "" {
				t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_SourceOrderAcrossGroups(t *testing.T) {
	p := Power{
		EffectGroups: []EffectGroup{
			{Templates: []Template{
				{Aspect: AspectAbsolute, Attribs: []string{"Energy_Dmg"}, Scale: 0.5, Table: "Ranged_Damage"},
				{Aspect: AspectCurrent, Attribs: []string{"Stunned"}, Magnitude: 2},
			}},
			{Templates: []Template{
				{Aspect: AspectAbsolute, Attribs: []string{"Smashing_Dmg"}, Scale: 1.0, Table: "Ranged_Damage"},
				{Aspect: AspectCurrent, Attribs: []string{"Stunned"}, Magnitude: 3},
				{Aspect: AspectDefense, Attribs: []string{"Fire_Def"}, Scale: 0.1, Table: "Def"},
				{Aspect: AspectDefense, Attribs: []string{"Fire_Def"}, Scale: 0.9, Table: "Def"},
			}},
		},
	}

	s := Aggregate(p)
	require.NotNil(t, s.Damage)
	assert.Equal(t, "Energy", s.Damage.Type)
	assert.Equal(t, 3.0, s.Protection["stun"])
	assert.Equal(t, Scaled{Scale: 0.1, Table: "Def"}, s.Defense["fire"])
	assert.Equal(t, []Category{CategoryDamage, CategoryDefense, CategoryProtection}, s.Categories())
}

func TestAggregate_Idempotent(t *testing.T) {
	p := Power{
		Accuracy:   1.2,
		EffectArea: "Sphere",
		Radius:     8,
		EffectGroups: []EffectGroup{{Templates: []Template{
			{Aspect: AspectDefense, Attribs: []string{"Smashing_Def", "Lethal_Def", "Fire_Def", "Cold_Def"}, Scale: 0.05, Table: "T"},
			{Aspect: AspectResistance, Attribs: []string{"Toxic_Dmg", "Psionic_Dmg"}, Scale: 0.2, Table: "T"},
			{Aspect: AspectCur, Attribs: []string{"Held", "Immobilized", "Knockback"}, Magnitude: 10.38},
			{Attribs: []string{"FlyingSpeed"}, Scale: 1, Table: "Fly"},
		}}},
	}

	first, err := json.Marshal(Aggregate(p))
	require.NoError(t, err)
	for range 10 {
		again, err := json.Marshal(Aggregate(p))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestConvert(t *testing.T) {
	s, enh := Convert(Power{
		BoostsAllowed: []string{"Enhance Damage", "Enhance Accuracy"},
		EffectGroups: []EffectGroup{{Templates: []Template{
			{Aspect: AspectAbsolute, Attribs: []string{"Heal"}, Scale: 1, Table: "Heal"},
		}}},
	})

	assert.Equal(t, []string{"Damage", "Accuracy"}, enh)
	require.NotNil(t, s.Healing)
	assert.Equal(t, Scaled{Scale: 1, Table: "Heal"}, *s.Healing)
}
