package resource

import (
	"context"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

const nationalDex = "national"

type Species struct {
	Header
	// GenerationID is 0 when the generation could not be resolved.
	GenerationID int    `json:"generation_id"`
	NationalDex  int    `json:"national_dex"`
	Genus        string `json:"genus"`
	FlavorText   string `json:"flavor_text"`
	CaptureRate  int    `json:"capture_rate"`
	IsBaby       bool   `json:"is_baby"`
	IsLegendary  bool   `json:"is_legendary"`
	IsMythical   bool   `json:"is_mythical"`
	EvolvesFrom  string `json:"evolves_from"`
}

func (r *Registry) newSpecies(ctx context.Context, data *pokeapi.PokemonSpecies) (Species, error) {
	s := Species{
		Header:      Header{ID: data.ID, Name: data.Name},
		FlavorText:  latestEnglishFlavorText(data.FlavorTextEntries),
		CaptureRate: data.CaptureRate,
		IsBaby:      data.IsBaby,
		IsLegendary: data.IsLegendary,
		IsMythical:  data.IsMythical,
		EvolvesFrom: refName(data.EvolvesFromSpecies),
	}
	for _, entry := range data.PokedexNumbers {
		if entry.Pokedex.Name == nationalDex {
			s.NationalDex = entry.EntryNumber
		}
	}
	for _, g := range data.Genera {
		if g.Language.Name == pokeapi.English {
			s.Genus = g.Genus
		}
	}
	if gen, ok := resolve(ctx, r, KindSpecies, r.Generation, refName(data.Generation)); ok {
		s.GenerationID = gen.ID
	}
	return s, nil
}
