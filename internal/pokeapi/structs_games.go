package pokeapi

type Generation struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// A list of abilities that were introduced in this generation.
	Abilities []NamedAPIResource `json:"abilities"`
	// The name of this resource listed in different languages.
	Names []Name `json:"names"`
	// The main region travelled in this generation.
	MainRegion *NamedAPIResource `json:"main_region"`
	// A list of types that were introduced in this generation.
	Types []NamedAPIResource `json:"types"`
	// A list of version groups that were introduced in this generation.
	VersionGroups []NamedAPIResource `json:"version_groups"`
}

type Version struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The name of this resource listed in different languages.
	Names []Name `json:"names"`
	// The version group this version belongs to.
	VersionGroup *NamedAPIResource `json:"version_group"`
}

type VersionGroup struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// Order for sorting. Almost by date of release, except similar versions are grouped together.
	Order int `json:"order"`
	// The generation this version was introduced in.
	Generation *NamedAPIResource `json:"generation"`
	// A list of regions that can be visited in this version group.
	Regions []NamedAPIResource `json:"regions"`
	// The versions this version group owns.
	Versions []NamedAPIResource `json:"versions"`
}
