package locations

import (
	"strings"
)

// VersionLabels maps the game labels used on pokemondb.net to PokeAPI version names.
var VersionLabels = map[string]string{
	"Red":               "red",
	"Blue":              "blue",
	"Yellow":            "yellow",
	"Gold":              "gold",
	"Silver":            "silver",
	"Crystal":           "crystal",
	"Ruby":              "ruby",
	"Sapphire":          "sapphire",
	"Emerald":           "emerald",
	"FireRed":           "firered",
	"LeafGreen":         "leafgreen",
	"Diamond":           "diamond",
	"Pearl":             "pearl",
	"Platinum":          "platinum",
	"HeartGold":         "heartgold",
	"SoulSilver":        "soulsilver",
	"Black":             "black",
	"White":             "white",
	"Black 2":           "black-2",
	"White 2":           "white-2",
	"X":                 "x",
	"Y":                 "y",
	"Omega Ruby":        "omega-ruby",
	"Alpha Sapphire":    "alpha-sapphire",
	"Sun":               "sun",
	"Moon":              "moon",
	"Ultra Sun":         "ultra-sun",
	"Ultra Moon":        "ultra-moon",
	"Let's Go Pikachu":  "lets-go-pikachu",
	"Let's Go Eevee":    "lets-go-eevee",
	"Sword":             "sword",
	"Shield":            "shield",
	"Brilliant Diamond": "brilliant-diamond",
	"Shining Pearl":     "shining-pearl",
	"Legends: Arceus":   "legends-arceus",
	"Scarlet":           "scarlet",
	"Violet":            "violet",
}

// VersionName maps a game label to a version name. Unknown labels are
// slugified the way PokeAPI names its versions; known reports whether the
// label was in VersionLabels.
func VersionName(label string) (name string, known bool) {
	label = strings.TrimSpace(label)
	if name, ok := VersionLabels[label]; ok {
		return name, true
	}
	slug := strings.NewReplacer("'", "", "’", "", ":", "", ".", "").Replace(strings.ToLower(label))
	return strings.Join(strings.Fields(slug), "-"), false
}
