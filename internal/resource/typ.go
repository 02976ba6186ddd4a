package resource

import (
	"context"
	"slices"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

// TypeNames lists the eighteen battle types in the order they are displayed.
var TypeNames = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

type Type struct {
	Header
	NoDamageTo       []string `json:"no_damage_to"`
	HalfDamageTo     []string `json:"half_damage_to"`
	DoubleDamageTo   []string `json:"double_damage_to"`
	NoDamageFrom     []string `json:"no_damage_from"`
	HalfDamageFrom   []string `json:"half_damage_from"`
	DoubleDamageFrom []string `json:"double_damage_from"`
	Generation       string   `json:"generation"`
	DamageClass      string   `json:"damage_class"`
}

// Multiplier is the damage factor this type takes from an attack of the given type.
func (t Type) Multiplier(attacking string) float64 {
	switch {
	case slices.Contains(t.NoDamageFrom, attacking):
		return 0
	case slices.Contains(t.HalfDamageFrom, attacking):
		return 0.5
	case slices.Contains(t.DoubleDamageFrom, attacking):
		return 2
	}
	return 1
}

func (r *Registry) newType(_ context.Context, data *pokeapi.Type) (Type, error) {
	rel := data.DamageRelations
	return Type{
		Header:           Header{ID: data.ID, Name: data.Name},
		NoDamageTo:       refNames(rel.NoDamageTo),
		HalfDamageTo:     refNames(rel.HalfDamageTo),
		DoubleDamageTo:   refNames(rel.DoubleDamageTo),
		NoDamageFrom:     refNames(rel.NoDamageFrom),
		HalfDamageFrom:   refNames(rel.HalfDamageFrom),
		DoubleDamageFrom: refNames(rel.DoubleDamageFrom),
		Generation:       refName(data.Generation),
		DamageClass:      refName(data.MoveDamageClass),
	}, nil
}
