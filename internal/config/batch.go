package config

// BatchGroup is one archetype's list of powersets under a raw subdirectory.
type BatchGroup struct {
	RawSubdir string   `yaml:"raw_subdir"`
	Archetype string   `yaml:"archetype"`
	Powersets []string `yaml:"powersets"`
}

// DefaultPools returns every power pool shipped with the game data.
func DefaultPools() []string {
	return []string{
		"experimentation", "fighting", "fitness", "flight", "force_of_will",
		"gadgetry", "invisibility", "leadership", "leaping", "manipulation",
		"medicine", "sorcery", "speed", "teleportation", "utility_belt",
	}
}

// DefaultBatch returns the defensive powersets of the melee archetypes.
func DefaultBatch() []BatchGroup {
	return []BatchGroup{
		{
			RawSubdir: "brute_defense",
			Archetype: "brute",
			Powersets: []string{
				"bio_organic_armor", "dark_armor", "electric_armor", "energy_aura",
				"fiery_aura", "ice_armor", "invulnerability", "psionic_armor",
				"radiation_armor", "regeneration", "shield_defense", "stone_armor",
				"super_reflexes", "willpower",
			},
		},
		{
			RawSubdir: "scrapper_defense",
			Archetype: "scrapper",
			Powersets: []string{
				"bio_organic_armor", "dark_armor", "electric_armor", "energy_aura",
				"fiery_aura", "ice_armor", "invulnerability", "ninjitsu",
				"radiation_armor", "regeneration", "shield_defense", "super_reflexes",
				"willpower",
			},
		},
		{
			RawSubdir: "stalker_defense",
			Archetype: "stalker",
			Powersets: []string{
				"bio_organic_armor", "dark_armor", "electric_armor", "energy_aura",
				"ice_armor", "invulnerability", "ninjitsu", "radiation_armor",
				"regeneration", "shield_defense", "super_reflexes", "willpower",
			},
		},
		{
			RawSubdir: "sentinel_defense",
			Archetype: "sentinel",
			Powersets: []string{
				"bio_organic_armor", "dark_armor", "electric_armor", "energy_aura",
				"fiery_aura", "ice_armor", "invulnerability", "ninjitsu",
				"radiation_armor", "regeneration", "super_reflexes", "willpower",
			},
		},
		{
			RawSubdir: "tanker_defense",
			Archetype: "tanker",
			Powersets: []string{
				"bio_organic_armor", "dark_armor", "electric_armor", "energy_aura",
				"fiery_aura", "ice_armor", "invulnerability", "psionic_armor",
				"radiation_armor", "regeneration", "shield_defense", "stone_armor",
				"super_reflexes", "willpower",
			},
		},
	}
}
