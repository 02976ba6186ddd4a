package pokeapi

type Move struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The percent value of how likely this move is to be successful.
	Accuracy *int `json:"accuracy"`
	// The percent value of how likely it is this moves effect will happen.
	EffectChance *int `json:"effect_chance"`
	// Power points. The number of times this move can be used.
	PP *int `json:"pp"`
	// A value between -8 and 8. Sets the order in which moves are executed during battle.
	Priority int `json:"priority"`
	// The base power of this move with a value of 0 if it does not have a base power.
	Power *int `json:"power"`
	// The type of damage the move inflicts on the target, e.g. physical.
	DamageClass *NamedAPIResource `json:"damage_class"`
	// The effect of this move listed in different languages.
	EffectEntries []VerboseEffect `json:"effect_entries"`
	// The generation in which this move was introduced.
	Generation *NamedAPIResource `json:"generation"`
	// The elemental type of this move.
	Type *NamedAPIResource `json:"type"`
}

type Type struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// A detail of how effective this type is toward others and vice versa.
	DamageRelations TypeRelations `json:"damage_relations"`
	// The generation this type was introduced in.
	Generation *NamedAPIResource `json:"generation"`
	// The class of damage inflicted by this type.
	MoveDamageClass *NamedAPIResource `json:"move_damage_class"`
}

type TypeRelations struct {
	// A list of types this type has no effect on.
	NoDamageTo []NamedAPIResource `json:"no_damage_to"`
	// A list of types this type is not very effect against.
	HalfDamageTo []NamedAPIResource `json:"half_damage_to"`
	// A list of types this type is very effect against.
	DoubleDamageTo []NamedAPIResource `json:"double_damage_to"`
	// A list of types that have no effect on this type.
	NoDamageFrom []NamedAPIResource `json:"no_damage_from"`
	// A list of types that are not very effective against this type.
	HalfDamageFrom []NamedAPIResource `json:"half_damage_from"`
	// A list of types that are very effective against this type.
	DoubleDamageFrom []NamedAPIResource `json:"double_damage_from"`
}
