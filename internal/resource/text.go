package resource

import (
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/pokeapi"
)

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func englishName(names []pokeapi.Name) string {
	for _, n := range names {
		if n.Language.Name == pokeapi.English {
			return n.Name
		}
	}
	return ""
}

func englishShortEffect(entries []pokeapi.VerboseEffect) string {
	for _, e := range entries {
		if e.Language.Name == pokeapi.English {
			if e.ShortEffect != "" {
				return cleanText(e.ShortEffect)
			}
			return cleanText(e.Effect)
		}
	}
	return ""
}

// latestEnglishFlavorText picks the last english entry, PokeAPI lists them oldest first.
func latestEnglishFlavorText(entries []pokeapi.FlavorText) string {
	text := ""
	for _, e := range entries {
		if e.Language.Name == pokeapi.English {
			text = e.FlavorText
		}
	}
	return cleanText(text)
}

func refName(r *pokeapi.NamedAPIResource) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func refNames(refs []pokeapi.NamedAPIResource) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}
