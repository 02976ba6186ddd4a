package resource

import (
	"fmt"
	"strings"
)

// Kind enumerates the resource kinds the registry knows about.
type Kind int

const (
	KindPokemon Kind = iota
	KindAbility
	KindType
	KindMove
	KindVersion
	KindSpecies
	KindVersionGroup
	KindGeneration
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{
	KindPokemon,
	KindAbility,
	KindType,
	KindMove,
	KindVersion,
	KindSpecies,
	KindVersionGroup,
	KindGeneration,
}

func (k Kind) String() string {
	switch k {
	case KindPokemon:
		return "Pokemon"
	case KindAbility:
		return "Ability"
	case KindType:
		return "Type"
	case KindMove:
		return "Move"
	case KindVersion:
		return "Version"
	case KindSpecies:
		return "Species"
	case KindVersionGroup:
		return "VersionGroup"
	case KindGeneration:
		return "Generation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Endpoint is the PokeAPI path segment serving this kind. It also names the
// snapshot file of the kind's store.
func (k Kind) Endpoint() string {
	switch k {
	case KindPokemon:
		return "pokemon"
	case KindAbility:
		return "ability"
	case KindType:
		return "type"
	case KindMove:
		return "move"
	case KindVersion:
		return "version"
	case KindSpecies:
		return "pokemon-species"
	case KindVersionGroup:
		return "version-group"
	case KindGeneration:
		return "generation"
	}
	return ""
}

// ParseKind accepts the display name, the endpoint or a dash-less variant, in any case.
func ParseKind(s string) (Kind, error) {
	needle := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, k := range Kinds {
		if needle == strings.ToLower(k.String()) ||
			needle == k.Endpoint() ||
			needle == strings.ReplaceAll(k.Endpoint(), "-", "") {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}
