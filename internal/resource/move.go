package resource

import (
	"context"
	"strconv"
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

type Move struct {
	Header
	TypeName string `json:"type_name"`
	// TypeID is 0 when the type could not be resolved.
	TypeID int `json:"type_id"`
	// Power, Accuracy and PP are 0 when the move has none.
	Power       int    `json:"power"`
	Accuracy    int    `json:"accuracy"`
	PP          int    `json:"pp"`
	Priority    int    `json:"priority"`
	DamageClass string `json:"damage_class"`
	Description string `json:"description"`
	Generation  string `json:"generation"`
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (r *Registry) newMove(ctx context.Context, data *pokeapi.Move) (Move, error) {
	m := Move{
		Header:      Header{ID: data.ID, Name: data.Name},
		TypeName:    refName(data.Type),
		Power:       deref(data.Power),
		Accuracy:    deref(data.Accuracy),
		PP:          deref(data.PP),
		Priority:    data.Priority,
		DamageClass: refName(data.DamageClass),
		Generation:  refName(data.Generation),
	}
	m.Description = englishShortEffect(data.EffectEntries)
	if data.EffectChance != nil {
		m.Description = strings.ReplaceAll(m.Description, "$effect_chance", strconv.Itoa(*data.EffectChance))
	}
	if t, ok := resolve(ctx, r, KindMove, r.Type, m.TypeName); ok {
		m.TypeID = t.ID
	}
	return m, nil
}
