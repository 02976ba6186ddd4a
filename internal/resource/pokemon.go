package resource

import (
	"context"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

// StatNames are the six stats every pokemon payload must carry, in display order.
var StatNames = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

type Pokemon struct {
	Header
	// Abilities holds the ids of the non hidden abilities.
	Abilities []int `json:"abilities"`
	// HiddenAbility is 0 when the pokemon has none or it could not be resolved.
	HiddenAbility int `json:"hidden_ability"`
	// SpeciesID is 0 when the species could not be resolved.
	SpeciesID      int               `json:"species_id"`
	BaseStats      map[string]int    `json:"base_stats"`
	EVYield        map[string]int    `json:"ev_yield"`
	Types          []string          `json:"types"`
	ShinyArtwork   string            `json:"shiny_artwork"`
	Height         int               `json:"height"`
	Weight         int               `json:"weight"`
	BaseExperience int               `json:"base_experience"`
	// Locations maps version names to where the pokemon can be found there.
	// nil means no location data could be obtained.
	Locations map[string][]string `json:"locations"`
}

// TotalBaseStats sums the six base stats.
func (p Pokemon) TotalBaseStats() int {
	total := 0
	for _, name := range StatNames {
		total += p.BaseStats[name]
	}
	return total
}

func (r *Registry) newPokemon(ctx context.Context, data *pokeapi.Pokemon) (Pokemon, error) {
	p := Pokemon{
		Header:         Header{ID: data.ID, Name: data.Name},
		Abilities:      []int{},
		BaseStats:      make(map[string]int, len(StatNames)),
		EVYield:        make(map[string]int, len(StatNames)),
		Height:         data.Height,
		Weight:         data.Weight,
		BaseExperience: data.BaseExperience,
	}

	for _, entry := range data.Abilities {
		name := refName(entry.Ability)
		ability, ok := resolve(ctx, r, KindPokemon, r.Ability, name)
		if !ok {
			continue
		}
		if entry.IsHidden {
			p.HiddenAbility = ability.ID
		} else {
			p.Abilities = append(p.Abilities, ability.ID)
		}
	}

	if species, ok := resolve(ctx, r, KindPokemon, r.Species, refName(data.Species)); ok {
		p.SpeciesID = species.ID
	}

	for _, stat := range data.Stats {
		name := refName(stat.Stat)
		if name == "" {
			continue
		}
		p.BaseStats[name] = stat.BaseStat
		p.EVYield[name] = stat.Effort
	}
	for _, name := range StatNames {
		if _, ok := p.BaseStats[name]; !ok {
			return Pokemon{}, &MalformedPayloadError{Kind: KindPokemon, Field: "stats." + name}
		}
	}

	for _, t := range data.Types {
		if name := refName(t.Type); name != "" {
			p.Types = append(p.Types, name)
		}
	}

	if data.Sprites != nil && data.Sprites.Other != nil && data.Sprites.Other.OfficialArtwork != nil {
		p.ShinyArtwork = data.Sprites.Other.OfficialArtwork.FrontShiny
	}

	p.Locations = r.lookupLocations(ctx, p.Name)
	return p, nil
}
