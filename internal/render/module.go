// Package render turns converted sets into the JavaScript data modules loaded
// by the planner, and keeps the output tree up to date.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind selects the registry a module registers into.
type Kind string

const (
	KindPool     Kind = "pool"
	KindPowerset Kind = "powerset"
)

type kindInfo struct {
	title    string
	prefix   string
	registry string
	loader   string
}

var kinds = map[Kind]kindInfo{
	KindPool:     {title: "Power Pool", prefix: "POOL", registry: "POWER_POOLS", loader: "power-pools.js"},
	KindPowerset: {title: "Powerset", prefix: "POWERSET", registry: "POWERSETS", loader: "powersets.js"},
}

// Registry returns the global registry name for the kind.
func (k Kind) Registry() string { return kinds[k].registry }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// ModuleInput describes one generated module.
type ModuleInput struct {
	Kind Kind
	// ID is the set identifier ("fighting", "fiery_aura").
	ID string
	// Name is the display name shown in the header.
	Name string
	// Source is the raw directory the set was read from.
	Source string
	// Data is serialised as the module constant.
	Data any
}

// RegistryKey is the key the set is registered under: pools keep their id,
// powersets use hyphens ("fiery_aura" → "fiery-aura").
func RegistryKey(kind Kind, id string) string {
	if kind == KindPowerset {
		return strings.ReplaceAll(id, "_", "-")
	}
	return id
}

// ConstName is the module constant: "POOL_FORCE_OF_WILL".
func ConstName(kind Kind, id string) string {
	ident := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(id))
	return kinds[kind].prefix + "_" + ident
}

// Module renders the JavaScript module text.
func Module(in ModuleInput) ([]byte, error) {
	info, ok := kinds[in.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown module kind %q", in.Kind)
	}

	payload, err := json.MarshalIndent(in.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s: %w", in.Kind, in.ID, err)
	}

	constName := ConstName(in.Kind, in.ID)
	key := RegistryKey(in.Kind, in.ID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/**\n")
	fmt.Fprintf(&buf, " * City of Heroes: Homecoming - %s\n", info.title)
	fmt.Fprintf(&buf, " * %s: %s\n", info.title, in.Name)
	fmt.Fprintf(&buf, " *\n")
	fmt.Fprintf(&buf, " * Auto-generated from game data\n")
	fmt.Fprintf(&buf, " * Source: %s\n", in.Source)
	fmt.Fprintf(&buf, " */\n\n")
	fmt.Fprintf(&buf, "const %s = %s;\n\n", constName, payload)
	fmt.Fprintf(&buf, "// Register %s\n", strings.ToLower(info.title))
	fmt.Fprintf(&buf, "if (typeof %s !== 'undefined') {\n", info.registry)
	fmt.Fprintf(&buf, "    %s['%s'] = %s;\n", info.registry, key, constName)
	fmt.Fprintf(&buf, "} else {\n")
	fmt.Fprintf(&buf, "    console.error('%s registry not found. Make sure %s is loaded first.');\n", info.registry, info.loader)
	fmt.Fprintf(&buf, "}\n")

	return buf.Bytes(), nil
}
