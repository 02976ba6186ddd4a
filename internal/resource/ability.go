package resource

import (
	"context"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

type Ability struct {
	Header
	Description  string `json:"description"`
	Generation   string `json:"generation"`
	IsMainSeries bool   `json:"is_main_series"`
}

func (r *Registry) newAbility(_ context.Context, data *pokeapi.Ability) (Ability, error) {
	desc := englishShortEffect(data.EffectEntries)
	if desc == "" {
		desc = latestEnglishFlavorText(data.FlavorTextEntries)
	}
	return Ability{
		Header:       Header{ID: data.ID, Name: data.Name},
		Description:  desc,
		Generation:   refName(data.Generation),
		IsMainSeries: data.IsMainSeries,
	}, nil
}
