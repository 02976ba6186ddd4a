package pokeapi

type Pokemon struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The base experience gained for defeating this Pokémon.
	BaseExperience int `json:"base_experience"`
	// The height of this Pokémon in decimetres.
	Height int `json:"height"`
	// The weight of this Pokémon in hectograms.
	Weight int `json:"weight"`
	// Set for exactly one Pokémon used as the default for each species.
	IsDefault bool `json:"is_default"`
	// A list of abilities this Pokémon could potentially have.
	Abilities []PokemonAbility `json:"abilities"`
	// The species this Pokémon belongs to.
	Species *NamedAPIResource `json:"species"`
	// A list of base stat values for this Pokémon.
	Stats []PokemonStat `json:"stats"`
	// A list of details showing types this Pokémon has.
	Types []PokemonType `json:"types"`
	// A set of sprites used to depict this Pokémon in the game.
	Sprites *PokemonSprites `json:"sprites"`
}

type PokemonAbility struct {
	// Whether or not this is a hidden ability.
	IsHidden bool `json:"is_hidden"`
	// The slot this ability occupies in this Pokémon species.
	Slot int `json:"slot"`
	// The ability the Pokémon may have.
	Ability *NamedAPIResource `json:"ability"`
}

type PokemonStat struct {
	// The stat the Pokémon has.
	Stat *NamedAPIResource `json:"stat"`
	// The effort points (EV) the Pokémon has in the stat.
	Effort int `json:"effort"`
	// The base value of the stat.
	BaseStat int `json:"base_stat"`
}

type PokemonType struct {
	// The order the Pokémon's types are listed in.
	Slot int `json:"slot"`
	// The type the referenced Pokémon has.
	Type *NamedAPIResource `json:"type"`
}

type PokemonSprites struct {
	// The default depiction of this Pokémon from the front in battle.
	FrontDefault string `json:"front_default"`
	// The shiny depiction of this Pokémon from the front in battle.
	FrontShiny string `json:"front_shiny"`
	// Artwork sets from other sources.
	Other *OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork *Artwork `json:"official-artwork"`
}

type Artwork struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

type PokemonSpecies struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The order in which species should be sorted.
	Order int `json:"order"`
	// The base capture rate; up to 255. The higher the number, the easier the catch.
	CaptureRate int `json:"capture_rate"`
	// Whether or not this is a baby Pokémon.
	IsBaby bool `json:"is_baby"`
	// Whether or not this is a legendary Pokémon.
	IsLegendary bool `json:"is_legendary"`
	// Whether or not this is a mythical Pokémon.
	IsMythical bool `json:"is_mythical"`
	// The generation this Pokémon species was introduced in.
	Generation *NamedAPIResource `json:"generation"`
	// The Pokémon species that evolves into this Pokemon_species.
	EvolvesFromSpecies *NamedAPIResource `json:"evolves_from_species"`
	// A list of Pokedexes and the indexes reserved within them for this Pokémon species.
	PokedexNumbers []PokemonSpeciesDexEntry `json:"pokedex_numbers"`
	// A list of flavor text entries for this Pokémon species.
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
	// The genus of this Pokémon species listed in multiple languages.
	Genera []Genus `json:"genera"`
}

type PokemonSpeciesDexEntry struct {
	// The index number within the Pokédex.
	EntryNumber int `json:"entry_number"`
	// The Pokédex the referenced Pokémon species can be found in.
	Pokedex NamedAPIResource `json:"pokedex"`
}

type Genus struct {
	// The localized genus for the referenced Pokémon species.
	Genus string `json:"genus"`
	// The language this genus is in.
	Language NamedAPIResource `json:"language"`
}

type Ability struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// Whether or not this ability originated in the main series of the video games.
	IsMainSeries bool `json:"is_main_series"`
	// The generation this ability originated in.
	Generation *NamedAPIResource `json:"generation"`
	// The effect of this ability listed in different languages.
	EffectEntries []VerboseEffect `json:"effect_entries"`
	// The flavor text of this ability listed in different languages.
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}
