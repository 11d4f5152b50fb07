package effects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		raw  string
		want Attribute
	}{
		{
			raw: "Fire_Dmg",
			want: Attribute{
				Raw: "Fire_Dmg", Kind: AttrDamage | AttrResistance,
				DamageType: "Fire", ResistanceKey: "fire",
			},
		},
		{
			raw: "Negative_Energy_Dmg",
			want: Attribute{
				Raw: "Negative_Energy_Dmg", Kind: AttrDamage | AttrResistance,
				DamageType: "Negative", ResistanceKey: "negative",
			},
		},
		{
			raw:  "Special_Dmg",
			want: Attribute{Raw: "Special_Dmg", Kind: AttrDamage, DamageType: "Special"},
		},
		{
			raw:  "Base_Defense",
			want: Attribute{Raw: "Base_Defense", Kind: AttrDefense, DefenseKey: "all"},
		},
		{
			raw:  "Psionic_Def",
			want: Attribute{Raw: "Psionic_Def", Kind: AttrDefense, DefenseKey: "psionic"},
		},
		{
			raw:  "Terrorized",
			want: Attribute{Raw: "Terrorized", Kind: AttrStatus, StatusKey: "fear"},
		},
		{
			raw:  "SpeedFlying",
			want: Attribute{Raw: "SpeedFlying", Kind: AttrMovement, Axis: CategoryFlySpeed},
		},
		{
			raw:  "HitPoints",
			want: Attribute{Raw: "HitPoints", Kind: AttrHealing},
		},
		{
			raw:  "Recovery",
			want: Attribute{Raw: "Recovery", Kind: AttrRecovery},
		},
		{
			raw:  "ToHit",
			want: Attribute{Raw: "ToHit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAttribute(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAttribute(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"fire":      "Fire",
		"negative":  "Negative",
		"fire_cold": "Fire_Cold",
		"sMASHING":  "Smashing",
		"":          "",
		"unique2x":  "Unique2X",
		"énergie":   "Énergie",
		"éNERGIE":   "Énergie",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}

func TestDamageDisplayType(t *testing.T) {
	assert.Equal(t, "Fire", damageDisplayType("Fire_Dmg"))
	assert.Equal(t, "Negative", damageDisplayType("Negative_Energy_Dmg"))
	assert.Equal(t, "Énergie", damageDisplayType("Énergie_Dmg"))
}

func TestClassify_Damage(t *testing.T) {
	c := Classify(Template{
		Aspect:  AspectAbsolute,
		Attribs: []string{"ToHit", "Lethal_Dmg", "Fire_Dmg"},
		Scale:   1.64,
		Table:   "Melee_Damage",
	})

	require.Equal(t, CategoryDamage, c.Category)
	assert.Equal(t, Damage{Type: "Lethal", Scale: 1.64, Table: "Melee_Damage"}, c.Damage)
}

func TestClassify_DamageBeforeHealing(t *testing.T) {
	c := Classify(Template{Aspect: AspectAbsolute, Attribs: []string{"HitPoints", "Toxic_Dmg"}})
	assert.Equal(t, CategoryDamage, c.Category)
	assert.Equal(t, "Toxic", c.Damage.Type)
}

func TestClassify_CurrentBaseDefenseIsDefense(t *testing.T) {
	// Base_Defense under a current-value aspect is defense even with a magnitude.
	c := Classify(Template{
		Aspect:    AspectCurrent,
		Attribs:   []string{"Base_Defense", "Held"},
		Scale:     0.1,
		Table:     "Melee_Buff_Def",
		Magnitude: 4,
	})
	require.Equal(t, CategoryDefense, c.Category)
	assert.Equal(t, []string{"all"}, c.Keys)
}

func TestClassify_CurWithoutBaseDefenseIsNotDefense(t *testing.T) {
	c := Classify(Template{Aspect: AspectCur, Attribs: []string{"Base_Defense"}})
	assert.Equal(t, CategoryNone, c.Category)
}

func TestClassify_Resistance(t *testing.T) {
	c := Classify(Template{
		Aspect:  AspectResistance,
		Attribs: []string{"Smashing_Dmg", "Lethal_Dmg", "Special_Dmg"},
		Scale:   0.3,
		Table:   "Melee_Res_Dmg",
	})
	require.Equal(t, CategoryResistance, c.Category)
	assert.Equal(t, []string{"smashing", "lethal"}, c.Keys)
	assert.Equal(t, Scaled{Scale: 0.3, Table: "Melee_Res_Dmg"}, c.Value)
}

func TestClassify_Healing(t *testing.T) {
	c := Classify(Template{Aspect: AspectAbsolute, Attribs: []string{"Heal"}, Scale: 2, Table: "Ranged_Heal"})
	assert.Equal(t, CategoryHealing, c.Category)

	// Healing needs the absolute aspect.
	c = Classify(Template{Aspect: AspectCurrent, Attribs: []string{"HitPoints"}})
	assert.Equal(t, CategoryNone, c.Category)
}

func TestClassify_RecoveryRegenerationMovement(t *testing.T) {
	tests := []struct {
		name    string
		attribs []string
		want    Category
	}{
		{"recovery", []string{"Recovery"}, CategoryRecovery},
		{"recovery beats regeneration", []string{"Regeneration", "Recovery"}, CategoryRecovery},
		{"regeneration", []string{"Regeneration"}, CategoryRegeneration},
		{"run", []string{"RunningSpeed"}, CategoryRunSpeed},
		{"run alt spelling", []string{"SpeedRunning"}, CategoryRunSpeed},
		{"fly", []string{"FlyingSpeed"}, CategoryFlySpeed},
		{"jump speed alt spelling", []string{"JumpSpeed"}, CategoryJumpSpeed},
		{"jump height", []string{"JumpHeight"}, CategoryJumpHeight},
		{"run wins over jump", []string{"JumpHeight", "RunningSpeed"}, CategoryRunSpeed},
		{"partial name", []string{"RunningSpeedMax"}, CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(Template{Aspect: "Strength", Attribs: tt.attribs})
			assert.Equal(t, tt.want, c.Category)
		})
	}
}

func TestClassify_Protection(t *testing.T) {
	c := Classify(Template{Aspect: AspectCur, Attribs: []string{"Held", "Stunned", "ToHit"}, Magnitude: 8.3})
	require.Equal(t, CategoryProtection, c.Category)
	assert.Equal(t, []string{"hold", "stun"}, c.Keys)
	assert.InDelta(t, 8.3, c.Magnitude, 1e-9)

	c = Classify(Template{Aspect: AspectCurrent, Attribs: []string{"Held"}, Magnitude: 0})
	assert.Equal(t, CategoryNone, c.Category, "zero magnitude is not protection")

	c = Classify(Template{Aspect: AspectCurrent, Attribs: []string{"Held"}, Magnitude: -2})
	assert.Equal(t, CategoryNone, c.Category, "negative magnitude is not protection")
}

func TestClassify_Unclassified(t *testing.T) {
	for _, tmpl := range []Template{
		{},
		{Aspect: "Strength", Attribs: []string{"ToHit"}},
		{Aspect: "Maximum", Attribs: []string{"Fire_Def"}},
		{Aspect: AspectAbsolute, Attribs: nil},
	} {
		assert.Equal(t, CategoryNone, Classify(tmpl).Category, "%+v", tmpl)
	}
}

func TestMerge_DamageFirstWins(t *testing.T) {
	var s Summary
	Fold(&s, Template{Aspect: AspectAbsolute, Attribs: []string{"Fire_Dmg"}, Scale: 1, Table: "Ranged_Damage"})
	Fold(&s, Template{Aspect: AspectAbsolute, Attribs: []string{"Cold_Dmg"}, Scale: 2, Table: "Melee_Damage"})

	require.NotNil(t, s.Damage)
	assert.Equal(t, Damage{Type: "Fire", Scale: 1, Table: "Ranged_Damage"}, *s.Damage)
}

func TestMerge_DefenseSubKeyFirstWins(t *testing.T) {
	var s Summary
	Fold(&s, Template{Aspect: AspectDefense, Attribs: []string{"Fire_Def"}, Scale: 0.1, Table: "A"})
	Fold(&s, Template{Aspect: AspectDefense, Attribs: []string{"Fire_Def", "Cold_Def"}, Scale: 0.2, Table: "B"})

	want := map[string]Scaled{
		"fire": {Scale: 0.1, Table: "A"},
		"cold": {Scale: 0.2, Table: "B"},
	}
	if diff := cmp.Diff(want, s.Defense); diff != "" {
		t.Errorf("defense mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_ProtectionLastWins(t *testing.T) {
	var s Summary
	Fold(&s, Template{Aspect: AspectCurrent, Attribs: []string{"Held"}, Magnitude: 4})
	Fold(&s, Template{Aspect: AspectCur, Attribs: []string{"Held", "Sleep"}, Magnitude: 10})

	assert.Equal(t, map[string]float64{"hold": 10, "sleep": 10}, s.Protection)
}

func TestMerge_SingleCategoryFirstWins(t *testing.T) {
	var s Summary
	Fold(&s, Template{Attribs: []string{"Recovery"}, Scale: 0.25, Table: "Melee_Buff"})
	Fold(&s, Template{Attribs: []string{"Recovery"}, Scale: 0.5, Table: "Other"})

	require.NotNil(t, s.Recovery)
	assert.Equal(t, Scaled{Scale: 0.25, Table: "Melee_Buff"}, *s.Recovery)
}

func TestMerge_CategoryPresentWithoutKeys(t *testing.T) {
	var s Summary
	Fold(&s, Template{Aspect: AspectDefense, Attribs: []string{"Accuracy"}, Scale: 1})
	Fold(&s, Template{Aspect: AspectResistance, Attribs: []string{"Special_Dmg"}, Scale: 1})

	require.NotNil(t, s.Defense)
	require.NotNil(t, s.Resistance)
	assert.Empty(t, s.Defense)
	assert.Empty(t, s.Resistance)
	assert.Equal(t, []Category{CategoryDefense, CategoryResistance}, s.Categories())
	assert.False(t, s.IsEmpty())

	// A later keyed template still fills the existing map.
	Fold(&s, Template{Aspect: AspectDefense, Attribs: []string{"Fire_Def"}, Scale: 0.1, Table: "Def"})
	assert.Equal(t, map[string]Scaled{"fire": {Scale: 0.1, Table: "Def"}}, s.Defense)
}

func TestLookupMovement(t *testing.T) {
	tests := []struct {
		attr string
		want Category
		ok   bool
	}{
		{"RunningSpeed", CategoryRunSpeed, true},
		{"SpeedRunning", CategoryRunSpeed, true},
		{"SpeedFlying", CategoryFlySpeed, true},
		{"JumpSpeed", CategoryJumpSpeed, true},
		{"JumpHeight", CategoryJumpHeight, true},
		{"HeightJump", CategoryNone, false},
		{"", CategoryNone, false},
	}
	for _, tt := range tests {
		got, ok := LookupMovement(tt.attr)
		assert.Equal(t, tt.ok, ok, "LookupMovement(%q)", tt.attr)
		assert.Equal(t, tt.want, got, "LookupMovement(%q)", tt.attr)
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "runSpeed", CategoryRunSpeed.String())
	assert.Equal(t, "protection", CategoryProtection.String())
	assert.Equal(t, "", CategoryNone.String())
	assert.Equal(t, "", Category(200).String())
}
