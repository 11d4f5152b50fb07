// Package rawdata reads the raw per-power and per-set JSON files.
//
// Decoding is permissive: missing or mistyped fields fall back to zero values
// (or the documented defaults) and numbers written as strings are accepted.
// Only a document that is not valid JSON is rejected.
package rawdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/udisondev/powerconv/internal/effects"
)

const (
	// IndexFileName is the per-set index file.
	IndexFileName = "index.json"

	defaultDuration   = "0 seconds"
	defaultPowerType  = "Click"
	defaultMaxBoosts  = 6
	powerFileSuffix   = ".json"
	fullNameSeparator = "."
)

// ErrNotFound is returned when a raw file does not exist.
var ErrNotFound = errors.New("raw file not found")

// ErrInvalidJSON is returned for documents gjson cannot parse.
var ErrInvalidJSON = errors.New("invalid json")

// SetIndex is the decoded index.json of a pool or powerset.
type SetIndex struct {
	DisplayName       string
	DisplayHelp       string
	Icon              string
	Requires          string
	AvailableLevel    []int
	PowerNames        []string
	PowerDisplayNames []string
	PowerShortHelps   []string
}

// PowerFile is a decoded per-power file: pass-through fields plus the engine
// view of the power.
type PowerFile struct {
	DisplayName         string
	DisplayHelp         string
	DisplayShortHelp    string
	Icon                string
	Type                string
	Requires            string
	MaxBoosts           int
	AllowedBoostsetCats []string

	Power effects.Power
}

// PowerFileName derives a power file name from a dotted full name:
// "Pool.Fighting.Boxing" → "boxing.json".
func PowerFileName(fullName string) string {
	name := fullName
	if i := strings.LastIndex(fullName, fullNameSeparator); i >= 0 {
		name = fullName[i+1:]
	}
	return strings.ToLower(name) + powerFileSuffix
}

// DecodeSetIndex decodes an index.json document.
func DecodeSetIndex(data []byte) (SetIndex, error) {
	if !gjson.ValidBytes(data) {
		return SetIndex{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)

	return SetIndex{
		DisplayName:       doc.Get("display_name").String(),
		DisplayHelp:       doc.Get("display_help").String(),
		Icon:              doc.Get("icon").String(),
		Requires:          doc.Get("requires").String(),
		AvailableLevel:    readInts(doc.Get("available_level")),
		PowerNames:        readStrings(doc.Get("power_names")),
		PowerDisplayNames: readStrings(doc.Get("power_display_names")),
		PowerShortHelps:   readStrings(doc.Get("power_short_helps")),
	}, nil
}

// DecodePower decodes a per-power document.
func DecodePower(data []byte) (PowerFile, error) {
	if !gjson.ValidBytes(data) {
		return PowerFile{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)

	pf := PowerFile{
		DisplayName:         doc.Get("display_name").String(),
		DisplayHelp:         doc.Get("display_help").String(),
		DisplayShortHelp:    doc.Get("display_short_help").String(),
		Icon:                doc.Get("icon").String(),
		Type:                defaultPowerType,
		Requires:            doc.Get("requires").String(),
		MaxBoosts:           defaultMaxBoosts,
		AllowedBoostsetCats: readStrings(doc.Get("allowed_boostset_cats")),
		Power:               decodeEnginePower(doc),
	}
	if v := doc.Get("type"); v.Exists() {
		pf.Type = v.String()
	}
	if v := doc.Get("max_boosts"); v.Exists() {
		pf.MaxBoosts = int(v.Int())
	}
	return pf, nil
}

func decodeEnginePower(doc gjson.Result) effects.Power {
	p := effects.Power{
		Accuracy:       doc.Get("accuracy").Float(),
		Range:          doc.Get("range").Float(),
		RechargeTime:   doc.Get("recharge_time").Float(),
		EnduranceCost:  doc.Get("endurance_cost").Float(),
		ActivationTime: doc.Get("activation_time").Float(),
		EffectArea:     readEffectArea(doc.Get("effect_area")),
		Radius:         doc.Get("radius").Float(),
		Arc:            doc.Get("arc").Float(),
		BoostsAllowed:  readStrings(doc.Get("boosts_allowed")),
	}

	doc.Get("effects").ForEach(func(_, group gjson.Result) bool {
		var g effects.EffectGroup
		group.Get("templates").ForEach(func(_, t gjson.Result) bool {
			g.Templates = append(g.Templates, decodeTemplate(t))
			return true
		})
		p.EffectGroups = append(p.EffectGroups, g)
		return true
	})

	return p
}

func decodeTemplate(t gjson.Result) effects.Template {
	tmpl := effects.Template{
		Attribs:   readStrings(t.Get("attribs")),
		Aspect:    t.Get("aspect").String(),
		Scale:     t.Get("scale").Float(),
		Table:     t.Get("table").String(),
		Duration:  defaultDuration,
		Magnitude: t.Get("magnitude").Float(),
	}
	if d := t.Get("duration"); d.Exists() {
		tmpl.Duration = d.String()
	}
	return tmpl
}

// readEffectArea treats false, null and zero like an absent area.
func readEffectArea(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		if v.Num != 0 {
			return v.Raw
		}
	case gjson.True:
		return v.Raw
	}
	return ""
}

func readStrings(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, item.String())
	}
	return out
}

func readInts(v gjson.Result) []int {
	if !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]int, len(arr))
	for i, item := range arr {
		out[i] = int(item.Int())
	}
	return out
}

// ReadSetIndex reads <dir>/index.json.
func ReadSetIndex(dir string) (SetIndex, error) {
	path := filepath.Join(dir, IndexFileName)
	data, err := readFile(path)
	if err != nil {
		return SetIndex{}, err
	}
	idx, err := DecodeSetIndex(data)
	if err != nil {
		return SetIndex{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return idx, nil
}

// ReadPower reads and decodes a per-power file.
func ReadPower(path string) (PowerFile, error) {
	data, err := readFile(path)
	if err != nil {
		return PowerFile{}, err
	}
	pf, err := DecodePower(data)
	if err != nil {
		return PowerFile{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return pf, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
