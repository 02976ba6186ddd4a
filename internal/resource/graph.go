package resource

import (
	"fmt"
	"slices"
	"strings"
)

// dependencies lists, per kind, the kinds its construction resolves.
// It must stay acyclic; NewRegistry refuses to start otherwise.
var dependencies = map[Kind][]Kind{
	KindPokemon:      {KindAbility, KindSpecies},
	KindSpecies:      {KindGeneration},
	KindGeneration:   {KindVersionGroup},
	KindVersionGroup: {KindVersion},
	KindMove:         {KindType},
}

func dependsOn(deps map[Kind][]Kind, from, to Kind) bool {
	return slices.Contains(deps[from], to)
}

// checkAcyclic returns an error naming the first cycle found in deps.
func checkAcyclic(deps map[Kind][]Kind) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Kind]int, len(deps))
	var path []Kind

	var visit func(k Kind) error
	visit = func(k Kind) error {
		switch state[k] {
		case visiting:
			start := slices.Index(path, k)
			cycle := append(slices.Clone(path[start:]), k)
			names := make([]string, len(cycle))
			for i, c := range cycle {
				names[i] = c.String()
			}
			return fmt.Errorf("resource dependency cycle: %s", strings.Join(names, " -> "))
		case done:
			return nil
		}
		state[k] = visiting
		path = append(path, k)
		for _, next := range deps[k] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[k] = done
		return nil
	}

	for _, k := range Kinds {
		if err := visit(k); err != nil {
			return err
		}
	}
	for k := range deps {
		if err := visit(k); err != nil {
			return err
		}
	}
	return nil
}
