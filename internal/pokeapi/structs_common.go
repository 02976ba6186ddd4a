package pokeapi

type NamedAPIResource struct {
	// The name of the referenced resource.
	Name string `json:"name"`
	// The URL of the referenced resource.
	URL string `json:"url"`
}

type Name struct {
	// The localized name for an API resource in a specific language.
	Name string `json:"name"`
	// The language this name is in.
	Language NamedAPIResource `json:"language"`
}

type VerboseEffect struct {
	// The localized effect text for an API resource in a specific language.
	Effect string `json:"effect"`
	// The localized effect text in brief.
	ShortEffect string `json:"short_effect"`
	// The language this effect is in.
	Language NamedAPIResource `json:"language"`
}

type FlavorText struct {
	// The localized flavor text for an API resource in a specific language.
	FlavorText string `json:"flavor_text"`
	// The language this name is in.
	Language NamedAPIResource `json:"language"`
	// The game version this flavor text is extracted from.
	Version *NamedAPIResource `json:"version"`
	// The version group this flavor text is extracted from. Only set for abilities.
	VersionGroup *NamedAPIResource `json:"version_group"`
}

// English is the language name PokeAPI uses for english entries.
const English = "en"
