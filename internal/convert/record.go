package convert

import (
	"github.com/udisondev/powerconv/internal/effects"
	"github.com/udisondev/powerconv/internal/rawdata"
	"github.com/udisondev/powerconv/internal/render"
)

// PowerRecord is one power as emitted into a generated module.
// Field order is the key order of the output.
type PowerRecord struct {
	Name                 string          `json:"name"`
	FullName             string          `json:"fullName"`
	Rank                 int             `json:"rank"`
	Available            int             `json:"available"`
	Description          string          `json:"description"`
	ShortHelp            string          `json:"shortHelp"`
	Icon                 string          `json:"icon"`
	PowerType            string          `json:"powerType"`
	Requires             string          `json:"requires"`
	MaxSlots             int             `json:"maxSlots"`
	AllowedEnhancements  []string        `json:"allowedEnhancements"`
	AllowedSetCategories []string        `json:"allowedSetCategories"`
	Effects              effects.Summary `json:"effects"`
}

// SetRecord is a converted pool or powerset.
type SetRecord struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Requires    string        `json:"requires"`
	Archetype   string        `json:"archetype,omitempty"`
	Powers      []PowerRecord `json:"powers"`
}

// SetSpec says what to convert and where the module goes.
type SetSpec struct {
	Kind      render.Kind
	ID        string
	Archetype string
	// RawDir holds index.json and the per-power files.
	RawDir string
	// OutputRel is the module path relative to the output root.
	OutputRel string
}

// String identifies the set in logs and reports.
func (s SetSpec) String() string {
	if s.Archetype != "" {
		return s.Archetype + "/" + s.ID
	}
	return string(s.Kind) + "/" + s.ID
}

func newSetRecord(spec SetSpec, idx rawdata.SetIndex) *SetRecord {
	icon := idx.Icon
	if icon == "" {
		icon = spec.ID + "_set.png"
	}
	return &SetRecord{
		ID:          spec.ID,
		Name:        idx.DisplayName,
		DisplayName: idx.DisplayName,
		Description: idx.DisplayHelp,
		Icon:        icon,
		Requires:    idx.Requires,
		Archetype:   spec.Archetype,
		Powers:      make([]PowerRecord, 0, len(idx.PowerNames)),
	}
}

// BuildPowerRecord assembles the output record of the i-th power of a set.
// Display name, short help and availability come from the set index when it
// has an entry at i, otherwise from the power file.
func BuildPowerRecord(idx rawdata.SetIndex, i int, fullName string, pf rawdata.PowerFile) PowerRecord {
	name := pf.DisplayName
	if i < len(idx.PowerDisplayNames) {
		name = idx.PowerDisplayNames[i]
	}
	shortHelp := pf.DisplayShortHelp
	if i < len(idx.PowerShortHelps) {
		shortHelp = idx.PowerShortHelps[i]
	}
	available := 0
	if i < len(idx.AvailableLevel) {
		available = idx.AvailableLevel[i]
	}

	summary, enhancements := effects.Convert(pf.Power)

	setCats := pf.AllowedBoostsetCats
	if setCats == nil {
		setCats = []string{}
	}

	return PowerRecord{
		Name:                 name,
		FullName:             fullName,
		Rank:                 i + 1,
		Available:            available,
		Description:          pf.DisplayHelp,
		ShortHelp:            shortHelp,
		Icon:                 pf.Icon,
		PowerType:            pf.Type,
		Requires:             pf.Requires,
		MaxSlots:             pf.MaxBoosts,
		AllowedEnhancements:  enhancements,
		AllowedSetCategories: setCats,
		Effects:              summary,
	}
}
